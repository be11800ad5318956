package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	rpn "github.com/saiwolf/rpn-go"
	"github.com/saiwolf/rpn-go/internal/config"
)

const appName = "rpn"

var (
	// package logger instance
	log = logrus.New()

	TAG = "cli"
)

// SetLogLevelString changes package log level.
func SetLogLevelString(level string) error {
	ll, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	SetLogLevel(ll)
	return nil
}

// SetLogLevel changes package log level.
func SetLogLevel(level logrus.Level) {
	log.Level = level
}

// GetLogLevel gets package log level.
func GetLogLevel() logrus.Level {
	return log.Level
}

// ErrEvaluation marks an expression failure that has already been reported
// to the user; main maps it to exit status 1 (2 for everything else).
var ErrEvaluation = errors.New("evaluation failed")

var (
	cfgFile    string
	verbose    bool
	noColor    bool
	expression string

	cfg          *config.Config
	colorEnabled bool
)

var rootCmd = &cobra.Command{
	Use:   appName + " [expression]",
	Short: "Reverse Polish Notation calculator",
	Long: `rpn evaluates Reverse Polish Notation expressions: numbers and
operator symbols separated by whitespace, operands first.

Operators:
  + - * /   arithmetic (pop b, pop a, push a op b)
  ^         exponentiation (pop exponent, pop base, push base^exponent)
  x         exchange the two top stack values
  !         pop the top value and store it in memory
  @         push a copy of the memory value
  ?         print the current stack, bottom to top
  &         print every value stored so far, oldest first

An expression must reduce to exactly one value. Without an expression,
rpn starts an interactive REPL.`,
	Example: `  rpn -e "2 8 +"
  rpn -e "5 1 2 + 4 * + 3 -"
  rpn 2 8 +
  rpn`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		expr := expression
		if expr == "" && len(args) > 0 {
			expr = strings.Join(args, " ")
		}
		if strings.TrimSpace(expr) == "" {
			return runRepl(cmd)
		}
		return evalLine(cmd.OutOrStdout(), cmd.ErrOrStderr(), expr)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/rpn/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().StringVarP(&expression, "expression", "e", "", "expression to evaluate")
}

// Execute runs the root command. Evaluation failures are already reported
// by the time they reach here; anything else is printed once.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, ErrEvaluation) {
		fmt.Fprintln(os.Stderr, paint(errorStyle, err.Error()))
	}
	return err
}

func setup() error {
	c, err := config.Resolve(cfgFile)
	if err != nil {
		return err
	}
	cfg = c

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	if err := SetLogLevelString(level); err != nil {
		return err
	}
	if err := config.SetLogLevelString(level); err != nil {
		return err
	}

	colorEnabled = cfg.Color && !noColor
	log.WithField("config", cfgFile).Debugf("[%s]: ready", TAG)
	return nil
}

// evalLine evaluates one expression on a fresh machine, prints its dumps
// and then its result, or a caret-annotated error.
func evalLine(out, errOut io.Writer, expr string) error {
	log.WithField("expr", expr).Debugf("[%s]: evaluating", TAG)

	m := rpn.New()
	v, err := m.Eval(expr)
	for _, d := range m.Dumps() {
		fmt.Fprintln(out, paint(dumpStyle, rpn.FormatSnapshot(d)))
	}
	if err != nil {
		fmt.Fprint(errOut, paint(errorStyle, rpn.WrapErrorWithSource(err, expr).Error()))
		return ErrEvaluation
	}
	fmt.Fprintln(out, paint(resultStyle, rpn.Format(v)))
	return nil
}
