package iso2709

import (
	"bufio"
	"io"

	"gomarc/marc"

	"github.com/pkg/errors"
)

// TaggedWriter prints records as a plain listing:
//
//	Leader 00714cam a2200205 a 4500
//	001 123456
//	245 10$aTitle$cAuthor
//
// followed by a blank line after each record.
type TaggedWriter struct {
	bw *bufio.Writer
}

var _ Handler = (*TaggedWriter)(nil)

func NewTaggedWriter(w io.Writer) *TaggedWriter {
	return &TaggedWriter{
		bw: bufio.NewWriter(w),
	}
}

func (t *TaggedWriter) StartCollection() error {
	return nil
}

func (t *TaggedWriter) StartRecord(leader *marc.Leader) error {
	t.bw.WriteString("Leader ")
	t.bw.WriteString(leader.String())
	return t.bw.WriteByte('\n')
}

func (t *TaggedWriter) ControlField(tag string, data []byte) error {
	t.bw.WriteString(tag)
	t.bw.WriteByte(' ')
	t.bw.Write(data)
	return t.bw.WriteByte('\n')
}

func (t *TaggedWriter) StartDataField(tag string, ind1, ind2 byte) error {
	t.bw.WriteString(tag)
	t.bw.WriteByte(' ')
	t.bw.WriteByte(ind1)
	return t.bw.WriteByte(ind2)
}

func (t *TaggedWriter) Subfield(code byte, data []byte) error {
	t.bw.WriteByte('$')
	t.bw.WriteByte(code)
	_, err := t.bw.Write(data)
	return err
}

func (t *TaggedWriter) EndDataField(tag string) error {
	return t.bw.WriteByte('\n')
}

func (t *TaggedWriter) EndRecord() error {
	return t.bw.WriteByte('\n')
}

func (t *TaggedWriter) EndCollection() error {
	return errors.Wrap(t.bw.Flush(), "error flushing listing")
}
