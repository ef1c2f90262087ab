package motifs

import (
	"fmt"
	"io"

	"github.com/avendramini/hypergraphx/pkg/logging"
)

// ProgressSink receives human-readable progress notifications during
// enumeration and analysis. Implementations must be cheap, non-blocking,
// and safe for concurrent use (parallel null-model runs share one sink);
// the presence or absence of a sink never changes results.
type ProgressSink interface {
	Progressf(format string, args ...any)
}

// WriterSink writes progress lines to an io.Writer.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink creates a sink writing one line per notification.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Progressf implements ProgressSink.
func (s *WriterSink) Progressf(format string, args ...any) {
	fmt.Fprintf(s.w, format+"\n", args...)
}

// LoggerSink adapts a structured logger into a ProgressSink, emitting
// notifications at info level.
func LoggerSink(logger logging.Logger) ProgressSink {
	return &loggerSink{logger: logger}
}

type loggerSink struct {
	logger logging.Logger
}

func (s *loggerSink) Progressf(format string, args ...any) {
	s.logger.Info(fmt.Sprintf(format, args...), logging.Component("motifs"))
}

// progressf forwards to the sink when one is set.
func progressf(sink ProgressSink, format string, args ...any) {
	if sink != nil {
		sink.Progressf(format, args...)
	}
}
