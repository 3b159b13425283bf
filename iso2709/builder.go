package iso2709

import (
	"gomarc/marc"

	"github.com/pkg/errors"
)

// RecordBuilder assembles marc.Records from decoder events. Fields rejected
// by the record model are returned as errors, which the Decoder reports as
// warnings before moving on.
type RecordBuilder struct {
	NopHandler

	onRecord func(rec *marc.Record) error
	records  []*marc.Record
	rec      *marc.Record
	df       *marc.DataField
}

var _ Handler = (*RecordBuilder)(nil)

// NewRecordBuilder keeps every record in memory; see Records.
func NewRecordBuilder() *RecordBuilder {
	b := &RecordBuilder{}
	b.onRecord = func(rec *marc.Record) error {
		b.records = append(b.records, rec)
		return nil
	}
	return b
}

// NewStreamingRecordBuilder hands each completed record to cb instead of
// keeping it. An error from cb stops the Decoder.
func NewStreamingRecordBuilder(cb func(rec *marc.Record) error) *RecordBuilder {
	return &RecordBuilder{
		onRecord: cb,
	}
}

func (b *RecordBuilder) Records() []*marc.Record {
	return b.records
}

func (b *RecordBuilder) StartRecord(leader *marc.Leader) error {
	b.rec = marc.NewRecord(leader)
	b.df = nil
	return nil
}

func (b *RecordBuilder) ControlField(tag string, data []byte) error {
	if b.rec == nil {
		return errors.New("control field outside of a record")
	}
	cf, err := marc.NewControlField(tag, data)
	if err != nil {
		return err
	}
	return b.rec.AddControlField(cf)
}

func (b *RecordBuilder) StartDataField(tag string, ind1, ind2 byte) error {
	if b.rec == nil {
		return errors.New("data field outside of a record")
	}
	df, err := marc.NewDataField(tag, ind1, ind2)
	if err != nil {
		b.df = nil
		return err
	}
	b.df = df
	return nil
}

func (b *RecordBuilder) Subfield(code byte, data []byte) error {
	if b.df == nil {
		return errors.New("subfield outside of a data field")
	}
	return b.df.AddSubfield(marc.NewSubfield(code, data))
}

func (b *RecordBuilder) EndDataField(tag string) error {
	if b.df == nil || b.df.Tag() != tag {
		return errors.Errorf("unexpected end of data field %s", tag)
	}
	b.rec.AddDataField(b.df)
	b.df = nil
	return nil
}

func (b *RecordBuilder) EndRecord() error {
	if b.rec == nil {
		return errors.New("end of record without a record")
	}
	rec := b.rec
	b.rec = nil
	b.df = nil
	return b.onRecord(rec)
}
