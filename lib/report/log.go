package report

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

// LogHandler writes errors to Out, or stderr when Out is nil.
type LogHandler struct {
	// Verbose adds the error kind and stack traces.
	Verbose bool
	// Out overrides the destination. Color is only used for a terminal stderr.
	Out io.Writer
}

func (h *LogHandler) writer() (io.Writer, bool) {
	if h.Out != nil {
		return h.Out, false
	}
	fd := os.Stderr.Fd()
	return os.Stderr, isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func prefix(label string, color bool) string {
	if color {
		return colorRed + "[livedom " + label + "]" + colorReset
	}
	return "[livedom " + label + "]"
}

// HandleError logs an Error.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	w, color := h.writer()
	if h.Verbose {
		fmt.Fprintf(w, "%s %s [%s]: %v\n", prefix("error", color), err.Op, err.Kind, err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
		return
	}
	fmt.Fprintf(w, "%s %s: %v\n", prefix("error", color), err.Op, err.Err)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w, color := h.writer()
	if err.Op != "" {
		fmt.Fprintf(w, "%s %s: %v\n", prefix("panic", color), err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "%s %v\n", prefix("panic", color), err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
