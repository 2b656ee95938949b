package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/reoring/namedtuple"
)

type logger struct {
	w       io.Writer
	verbose bool
	info    *color.Color
	code    *color.Color
}

// newLogger writes to w, in colour only when w is a terminal.
func newLogger(w io.Writer, verbose bool) *logger {
	l := &logger{
		w:       w,
		verbose: verbose,
		info:    color.New(color.FgCyan),
		code:    color.New(color.FgRed, color.Bold),
	}
	if !isTerminal(w) {
		l.info.DisableColor()
		l.code.DisableColor()
	}
	return l
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (l *logger) logf(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.info.Fprintf(l.w, "namedtuplegen: "+format+"\n", args...)
}

// report prints every issue in err on its own line. It reports whether err
// carried issues.
func (l *logger) report(err error) bool {
	iss, ok := namedtuple.AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		l.code.Fprint(l.w, it.Code)
		if it.Key != "" {
			io.WriteString(l.w, " "+it.Key)
		}
		io.WriteString(l.w, ": "+it.Message+"\n")
	}
	return true
}
