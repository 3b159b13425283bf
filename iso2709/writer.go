package iso2709

import (
	"bufio"
	"io"

	"gomarc/log"
	"gomarc/marc"

	"github.com/pkg/errors"
)

type WriterOption func(w *Writer)

// WithTargetCharset transcodes payloads from UTF-8 into charset while
// writing, so directory lengths count the transcoded bytes.
func WithTargetCharset(charset string) WriterOption {
	return func(w *Writer) {
		w.charset = charset
	}
}

// Writer re-encodes every decoded record to an io.Writer. Records that
// cannot be marshaled are logged and skipped; a partial record is never
// written.
type Writer struct {
	*RecordBuilder

	bw      *bufio.Writer
	charset string
	written int
	skipped int
	lgr     log.Logger
}

var _ Handler = (*Writer)(nil)

func NewWriter(w io.Writer, opts ...WriterOption) *Writer {
	wr := &Writer{
		bw:  bufio.NewWriter(w),
		lgr: log.WithModule("iso2709-writer"),
	}
	wr.RecordBuilder = NewStreamingRecordBuilder(wr.writeRecord)
	for _, opt := range opts {
		opt(wr)
	}
	return wr
}

// Written returns the number of records written so far.
func (w *Writer) Written() int {
	return w.written
}

// Skipped returns the number of records that failed to marshal.
func (w *Writer) Skipped() int {
	return w.skipped
}

func (w *Writer) writeRecord(rec *marc.Record) error {
	b, err := rec.MarshalEncoding(w.charset)
	if err != nil {
		w.skipped++
		w.lgr.Warn("skipping record", "control_number", rec.ControlNumber(), "err", err)
		return nil
	}
	if _, err := w.bw.Write(b); err != nil {
		return errors.Wrap(err, "error writing record")
	}
	w.written++
	return nil
}

func (w *Writer) EndCollection() error {
	return errors.Wrap(w.bw.Flush(), "error flushing records")
}
