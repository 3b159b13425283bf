package iso2709

import (
	"fmt"
	"strings"

	"gomarc/log"
)

type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Diagnostic describes a problem found while decoding. Position is the
// absolute number of units consumed from the stream when the problem was
// found. ControlNumber is the most recently decoded 001 value, or empty if
// none has been seen yet.
type Diagnostic struct {
	Severity      Severity
	Message       string
	Position      int64
	ControlNumber string
	Tag           string
	FileName      string
}

func (d *Diagnostic) Error() string {
	var b strings.Builder
	b.WriteString(d.Severity.String())
	if d.FileName != "" {
		fmt.Fprintf(&b, " in %s", d.FileName)
	}
	fmt.Fprintf(&b, " at position %d", d.Position)
	if d.ControlNumber != "" {
		fmt.Fprintf(&b, " (control number %s)", d.ControlNumber)
	}
	b.WriteString(": ")
	b.WriteString(d.Message)
	if d.Tag != "" {
		fmt.Fprintf(&b, " [tag %s]", d.Tag)
	}
	return b.String()
}

// ErrorHandler receives diagnostics as they are found. Methods must not
// retain the decoder; they may retain the Diagnostic.
type ErrorHandler interface {
	Warning(d *Diagnostic)
	Error(d *Diagnostic)
	FatalError(d *Diagnostic)
}

func dispatch(eh ErrorHandler, d *Diagnostic) {
	switch d.Severity {
	case SeverityWarning:
		eh.Warning(d)
	case SeverityError:
		eh.Error(d)
	default:
		eh.FatalError(d)
	}
}

// Collector keeps every diagnostic in arrival order.
type Collector struct {
	Diagnostics []*Diagnostic
}

var _ ErrorHandler = (*Collector)(nil)

func (c *Collector) Warning(d *Diagnostic)    { c.Diagnostics = append(c.Diagnostics, d) }
func (c *Collector) Error(d *Diagnostic)      { c.Diagnostics = append(c.Diagnostics, d) }
func (c *Collector) FatalError(d *Diagnostic) { c.Diagnostics = append(c.Diagnostics, d) }

// Count returns the number of collected diagnostics with severity s.
func (c *Collector) Count(s Severity) int {
	var n int
	for _, d := range c.Diagnostics {
		if d.Severity == s {
			n++
		}
	}
	return n
}

// HasErrors reports whether anything more severe than a warning was
// collected.
func (c *Collector) HasErrors() bool {
	return c.Count(SeverityError) > 0 || c.Count(SeverityFatal) > 0
}

type loggingErrorHandler struct {
	lgr log.Logger
}

// NewLoggingErrorHandler logs warnings at warn level and errors and fatal
// errors at error level.
func NewLoggingErrorHandler(lgr log.Logger) ErrorHandler {
	return &loggingErrorHandler{lgr: lgr}
}

func (l *loggingErrorHandler) fields(d *Diagnostic) []interface{} {
	fields := []interface{}{
		"severity", d.Severity.String(),
		"position", d.Position,
		"control_number", d.ControlNumber,
	}
	if d.Tag != "" {
		fields = append(fields, "tag", d.Tag)
	}
	if d.FileName != "" {
		fields = append(fields, "file", d.FileName)
	}
	return fields
}

func (l *loggingErrorHandler) Warning(d *Diagnostic) {
	l.lgr.Warn(d.Message, l.fields(d)...)
}

func (l *loggingErrorHandler) Error(d *Diagnostic) {
	l.lgr.Error(d.Message, l.fields(d)...)
}

func (l *loggingErrorHandler) FatalError(d *Diagnostic) {
	l.lgr.Error(d.Message, l.fields(d)...)
}

// TeeErrorHandler forwards every diagnostic to each handler.
type TeeErrorHandler []ErrorHandler

var _ ErrorHandler = TeeErrorHandler(nil)

func (t TeeErrorHandler) Warning(d *Diagnostic) {
	for _, eh := range t {
		eh.Warning(d)
	}
}

func (t TeeErrorHandler) Error(d *Diagnostic) {
	for _, eh := range t {
		eh.Error(d)
	}
}

func (t TeeErrorHandler) FatalError(d *Diagnostic) {
	for _, eh := range t {
		eh.FatalError(d)
	}
}
