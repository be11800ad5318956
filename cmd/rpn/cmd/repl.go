package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	rpn "github.com/saiwolf/rpn-go"
)

const helpText = `
REPL commands:
  :help    Show this help
  :quit    Exit the REPL

Each line is a complete expression, evaluated with a fresh stack and
memory. Operators: + - * / ^ x ! @ ? &
`

func banner() string {
	return fmt.Sprintf("%s %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.",
		appName, rpn.Version)
}

func runRepl(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	fmt.Fprintln(out, paint(bannerStyle, banner()))

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.HistoryFile
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	log.Debugf("[%s]: repl session started", TAG)

	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}

		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}

		if strings.HasPrefix(code, ":") {
			switch strings.ToLower(code) {
			case ":quit", ":q":
				return nil
			case ":help", ":h":
				fmt.Fprintf(out, "%s\n", helpText)
			default:
				fmt.Fprintln(out, "unknown command. Type :help for help, :quit to exit.")
			}
			continue
		}

		ln.AppendHistory(code)
		_ = evalLine(out, errOut, code)
	}
}
