package main

import (
	"errors"
	"os"

	"github.com/saiwolf/rpn-go/cmd/rpn/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, cmd.ErrEvaluation) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}
