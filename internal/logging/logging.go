package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger writes leveled, colored output to the terminal. When Sink is
// non-nil every emitted line is also written to it without color codes,
// which is how the session log file is produced.
type Logger struct {
	Verbose bool
	Debug   bool
	Sink    io.Writer
}

func (l Logger) Infof(msg string, args ...any) {
	if l.Verbose || l.Debug {
		fmt.Fprintf(os.Stdout, color.GreenString("[info] ")+msg+"\n", args...)
	}
	l.tee("[info] ", msg, args...)
}

func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		fmt.Fprintf(os.Stdout, color.CyanString("[debug] ")+msg+"\n", args...)
	}
	l.tee("[debug] ", msg, args...)
}

func (l Logger) Warnf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, color.YellowString("[warn] ")+msg+"\n", args...)
	l.tee("[warn] ", msg, args...)
}

func (l Logger) Errorf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, color.RedString("[error] ")+msg+"\n", args...)
	l.tee("[error] ", msg, args...)
}

// ErrorfAndReturn logs an error line and returns it as an error value,
// so commands can do `return Logger.ErrorfAndReturn(...)`.
func (l Logger) ErrorfAndReturn(msg string, args ...any) error {
	l.Errorf(msg, args...)
	return fmt.Errorf(msg, args...)
}

// WarnfUser emits a warning meant for the operator regardless of verbosity.
func (l Logger) WarnfUser(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, color.YellowString("! ")+msg+"\n", args...)
	l.tee("! ", msg, args...)
}

func (l Logger) tee(prefix, msg string, args ...any) {
	if l.Sink == nil {
		return
	}
	fmt.Fprintf(l.Sink, prefix+msg+"\n", args...)
}
