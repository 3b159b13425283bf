package iso2709

import (
	"io"

	"gomarc/marc"
)

// ReadAll decodes every record in r into memory. Diagnostics are collected
// and returned alongside the records, and are also forwarded to any
// ErrorHandler given in opts. The error is the one returned by Parse.
func ReadAll(r io.Reader, opts ...DecoderOption) ([]*marc.Record, []*Diagnostic, error) {
	builder := NewRecordBuilder()
	collector := new(Collector)
	dec := NewDecoder(builder, opts...)
	if dec.eh != nil {
		dec.eh = TeeErrorHandler{collector, dec.eh}
	} else {
		dec.eh = collector
	}
	err := dec.Parse(r)
	return builder.Records(), collector.Diagnostics, err
}
