package core

import (
	"fmt"
	"io"
	"os"
)

// Logger receives human-readable progress and diagnostic output.
// The image stream is never written through it.
type Logger interface {
	Printf(format string, args ...interface{})
}

// WriterLogger implements Logger by writing to an io.Writer
type WriterLogger struct {
	w io.Writer
}

// NewWriterLogger creates a logger that writes to w
func NewWriterLogger(w io.Writer) *WriterLogger {
	return &WriterLogger{w: w}
}

// NewDefaultLogger creates a logger that writes to stderr
func NewDefaultLogger() Logger {
	return &WriterLogger{w: os.Stderr}
}

func (l *WriterLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(l.w, format, args...)
}
