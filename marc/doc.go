/*
Package marc implements the in-memory MARC record model and its ISO 2709
wire encoding.

Wire layout:

	- Leader: 24 single-byte units. Record length (5 digits), record status,
	  type of record, 2 implementation-defined units, character coding
	  scheme, indicator count (1 digit), subfield code length (1 digit),
	  base address of data (5 digits), 3 implementation-defined units and
	  a 4-unit entry map.
	- Directory: one 12-unit entry per variable field, encoded as
	  TAG(3) LENGTH(4) OFFSET(5), followed by a field terminator.
	- Variable fields: control fields are data followed by a field
	  terminator. Data fields are two indicators, then for every subfield
	  a subfield delimiter, a code and data, then a field terminator.
	- A record terminator ends the record.

Lengths and offsets are written zero-padded. A length that does not fit in
four digits or an offset that does not fit in five is an error, never a
truncation.

Records are built field by field:

	rec := marc.NewRecord(marc.NewLeader())
	cn, _ := marc.NewControlField("001", []byte("123456"))
	_ = rec.AddControlField(cn)
	title, _ := marc.NewDataField("245", '1', '0')
	title.AddSubfield(marc.NewSubfield('a', []byte("Title")))
	rec.AddDataField(title)
	b, err := rec.Marshal()

Marshal overwrites the leader's record length and base address of data.
Payloads are opaque bytes. MarshalEncoding treats them as UTF-8 text and
transcodes each field into the named charset before computing directory
lengths.
*/
package marc
