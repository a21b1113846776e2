// Package subcmd wraps flag.FlagSet for `songs <cmd>` style subcommands
// that take flags and, optionally, one positional argument.
package subcmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

var ErrMissingArg = errors.New("missing argument")

func New(name, doc string) *Subcommand {
	sc := &Subcommand{
		FlagSet: flag.NewFlagSet(name, flag.ContinueOnError),
	}
	sc.FlagSet.Usage = func() {
		out := sc.FlagSet.Output()
		argSuffix := ""
		if sc.arg != nil {
			argSuffix = fmt.Sprintf(" <%s>", sc.arg.name)
		}
		fmt.Fprintf(out, "\n%s\n\n", doc)
		fmt.Fprintf(out, "  songs %s [flags]%s\n\n", name, argSuffix)
		fmt.Fprintf(out, "flags:\n")
		sc.FlagSet.PrintDefaults()
		if sc.arg != nil {
			fmt.Fprintf(out, "  <%s> %s\n", sc.arg.name, sc.arg.typename)
			fmt.Fprintf(out, "  \t%s\n", sc.arg.usage)
		}
	}
	sc.FlagSet.SetOutput(os.Stderr)
	return sc
}

type Subcommand struct {
	*flag.FlagSet
	arg *arg
}

type arg struct {
	name     string
	typename string
	usage    string
}

func (sc *Subcommand) SetArg(name, typname, usage string) *Subcommand {
	sc.arg = &arg{name, typname, usage}
	return sc
}

func (sc *Subcommand) SetOutput(w io.Writer) *Subcommand {
	sc.FlagSet.SetOutput(w)
	return sc
}

// Parse parses flags, then, if the subcommand takes an argument, checks
// that one was given.
func (sc *Subcommand) Parse(args []string) error {
	if err := sc.FlagSet.Parse(args); err != nil {
		return err
	}
	if sc.arg != nil && sc.Value() == "" {
		sc.FlagSet.Usage()
		return fmt.Errorf("<%s>: %w", sc.arg.name, ErrMissingArg)
	}
	return nil
}

// Value is the positional argument. Everything after the flags is joined
// with spaces, so `songs compare daft punk` works without quotes.
func (sc *Subcommand) Value() string {
	return strings.TrimSpace(strings.Join(sc.FlagSet.Args(), " "))
}
