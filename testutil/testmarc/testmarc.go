package testmarc

import (
	"fmt"
	"strings"
	"testing"

	"gomarc/marc"

	"github.com/stretchr/testify/require"
)

const (
	FT = "\x1e"
	RT = "\x1d"
	US = "\x1f"

	DefaultLeader = "00000cam a2200000 a 4500"
)

// Field is a raw directory tag and field body. Body does not include the
// field terminator unless Raw is set.
type Field struct {
	Tag  string
	Body string
	Raw  bool
}

func Control(tag, data string) Field {
	return Field{Tag: tag, Body: data}
}

// Data builds a data field body. Each subfield is given as its code
// followed by its data, e.g. "aTitle".
func Data(tag string, ind1, ind2 byte, subfields ...string) Field {
	var b strings.Builder
	b.WriteByte(ind1)
	b.WriteByte(ind2)
	for _, sf := range subfields {
		b.WriteString(US)
		b.WriteString(sf)
	}
	return Field{Tag: tag, Body: b.String()}
}

// Wire assembles a well-formed record with DefaultLeader.
func Wire(fields ...Field) []byte {
	return WireWithLeader(DefaultLeader, fields...)
}

// WireWithLeader assembles a record whose record length and base address
// are computed from fields. Every other leader position comes from leader.
func WireWithLeader(leader string, fields ...Field) []byte {
	var dir, body strings.Builder
	for _, f := range fields {
		fb := f.Body
		if !f.Raw {
			fb += FT
		}
		fmt.Fprintf(&dir, "%s%04d%05d", f.Tag, len(fb), body.Len())
		body.WriteString(fb)
	}
	base := marc.LeaderLength + dir.Len() + 1
	total := base + body.Len() + 1

	var out strings.Builder
	fmt.Fprintf(&out, "%05d", total)
	out.WriteString(leader[5:12])
	fmt.Fprintf(&out, "%05d", base)
	out.WriteString(leader[17:24])
	out.WriteString(dir.String())
	out.WriteString(FT)
	out.WriteString(body.String())
	out.WriteString(RT)
	return []byte(out.String())
}

// Book returns a small bibliographic record with a control number, a
// fixed-length data element and title/author fields.
func Book(t *testing.T, controlNumber, title, author string) *marc.Record {
	rec := marc.NewRecord(marc.NewLeader())

	cn, err := marc.NewControlField(marc.ControlNumberTag, []byte(controlNumber))
	require.NoError(t, err)
	require.NoError(t, rec.AddControlField(cn))
	fixed, err := marc.NewControlField("008", []byte("200101s2020    xx            000 0 eng d"))
	require.NoError(t, err)
	require.NoError(t, rec.AddControlField(fixed))

	main, err := marc.NewDataField("100", '1', ' ')
	require.NoError(t, err)
	require.NoError(t, main.AddSubfield(marc.NewSubfield('a', []byte(author))))
	rec.AddDataField(main)

	ti, err := marc.NewDataField("245", '1', '0')
	require.NoError(t, err)
	require.NoError(t, ti.AddSubfield(marc.NewSubfield('a', []byte(title))))
	require.NoError(t, ti.AddSubfield(marc.NewSubfield('c', []byte(author))))
	rec.AddDataField(ti)
	return rec
}

// BookWire is Book marshaled to wire form.
func BookWire(t *testing.T, controlNumber, title, author string) []byte {
	b, err := Book(t, controlNumber, title, author).Marshal()
	require.NoError(t, err)
	return b
}
