// Package rtlog provides the Printf-style logger used by the CLI entry
// point, in the shape of the teacher's pkg/core.Logger.
package rtlog

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Logger is the minimal logging surface: an unadorned Printf plus three
// leveled convenience wrappers.
type Logger interface {
	Printf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// StdLogger writes to an underlying io.Writer, defaulting to stdout.
type StdLogger struct {
	out io.Writer
}

// NewStdLogger builds a Logger writing to out. A nil out defaults to
// os.Stdout.
func NewStdLogger(out io.Writer) *StdLogger {
	if out == nil {
		out = os.Stdout
	}
	return &StdLogger{out: out}
}

// Printf writes a formatted line to the underlying writer, unadorned.
func (l *StdLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(l.out, format, args...)
}

// Infof writes a formatted line prefixed with an info marker.
func (l *StdLogger) Infof(format string, args ...interface{}) {
	fmt.Fprintf(l.out, "INFO: "+format, args...)
}

// Warnf writes a formatted line prefixed with a warning marker.
func (l *StdLogger) Warnf(format string, args ...interface{}) {
	fmt.Fprintf(l.out, "WARN: "+format, args...)
}

// Errorf writes a formatted line prefixed with an error marker.
func (l *StdLogger) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(l.out, "ERROR: "+format, args...)
}

// Elapsed formats a duration the way the renderer reports timings:
// milliseconds with one decimal place.
func Elapsed(d time.Duration) string {
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}
