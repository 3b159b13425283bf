package marc

import (
	"bytes"
	"regexp"

	"github.com/pkg/errors"
)

// VariableField is implemented by ControlField and DataField.
type VariableField interface {
	Tag() string
	// MarshalField returns the field body as written to the wire,
	// including the trailing field terminator.
	MarshalField() []byte
	Find(re *regexp.Regexp) bool
}

var (
	_ VariableField = (*ControlField)(nil)
	_ VariableField = (*DataField)(nil)
)

// ControlField holds raw data under a tag in the 001-009 range.
type ControlField struct {
	tag  string
	data []byte
}

// NewControlField validates tag and data once; the tag cannot change
// afterwards.
func NewControlField(tag string, data []byte) (*ControlField, error) {
	if err := validateTag(tag); err != nil {
		return nil, err
	}
	if !IsControlTag(tag) {
		return nil, errors.Wrapf(ErrInvalidTag, "%s is not a control field tag", tag)
	}
	cf := &ControlField{tag: tag}
	if err := cf.SetData(data); err != nil {
		return nil, err
	}
	return cf, nil
}

func (c *ControlField) Tag() string {
	return c.tag
}

func (c *ControlField) Data() []byte {
	return c.data
}

func (c *ControlField) SetData(data []byte) error {
	if err := checkDataElement(data); err != nil {
		return errors.Wrapf(err, "control field %s", c.tag)
	}
	c.data = data
	return nil
}

func (c *ControlField) MarshalField() []byte {
	out := make([]byte, 0, len(c.data)+1)
	out = append(out, c.data...)
	return append(out, FieldTerminator)
}

// Length returns the number of units the field occupies on the wire.
func (c *ControlField) Length() int {
	return len(c.data) + 1
}

func (c *ControlField) Find(re *regexp.Regexp) bool {
	return re.Match(c.data)
}

func (c *ControlField) Clone() *ControlField {
	return &ControlField{
		tag:  c.tag,
		data: append([]byte(nil), c.data...),
	}
}

func (c *ControlField) String() string {
	return c.tag + " " + string(c.data)
}

// Subfield is a delimiter-introduced code and data pair. LinkCode is carried
// for cross-record linking and is not written to the wire.
type Subfield struct {
	Code     byte
	Data     []byte
	LinkCode string
}

// NewSubfield does not validate the payload; DataField.AddSubfield does.
func NewSubfield(code byte, data []byte) *Subfield {
	return &Subfield{
		Code: code,
		Data: data,
	}
}

func (s *Subfield) MarshalField() []byte {
	out := make([]byte, 0, len(s.Data)+2)
	out = append(out, SubfieldDelimiter, s.Code)
	return append(out, s.Data...)
}

func (s *Subfield) String() string {
	return "$" + string(s.Code) + string(s.Data)
}

func checkSubfield(s *Subfield) error {
	if isStructural(s.Code) {
		return errors.Wrapf(ErrInvalidDataElement, "subfield code 0x%02x", s.Code)
	}
	return checkDataElement(s.Data)
}

// DataField holds two indicators and an ordered list of subfields under a
// tag outside the control field range.
type DataField struct {
	tag       string
	ind1      byte
	ind2      byte
	subfields []*Subfield
}

func NewDataField(tag string, ind1, ind2 byte) (*DataField, error) {
	if err := validateTag(tag); err != nil {
		return nil, err
	}
	if !IsDataTag(tag) {
		return nil, errors.Wrapf(ErrInvalidTag, "%s is not a data field tag", tag)
	}
	df := &DataField{tag: tag}
	if err := df.SetIndicator1(ind1); err != nil {
		return nil, err
	}
	if err := df.SetIndicator2(ind2); err != nil {
		return nil, err
	}
	return df, nil
}

func (d *DataField) Tag() string {
	return d.tag
}

func (d *DataField) Indicator1() byte {
	return d.ind1
}

func (d *DataField) Indicator2() byte {
	return d.ind2
}

func (d *DataField) SetIndicator1(ind byte) error {
	if err := checkIndicator(ind); err != nil {
		return err
	}
	d.ind1 = ind
	return nil
}

func (d *DataField) SetIndicator2(ind byte) error {
	if err := checkIndicator(ind); err != nil {
		return err
	}
	d.ind2 = ind
	return nil
}

// AddSubfield appends s, rejecting payloads that carry structural control
// characters.
func (d *DataField) AddSubfield(s *Subfield) error {
	if err := checkSubfield(s); err != nil {
		return errors.Wrapf(err, "data field %s", d.tag)
	}
	d.subfields = append(d.subfields, s)
	return nil
}

// RemoveSubfield removes s and reports whether it was present.
func (d *DataField) RemoveSubfield(s *Subfield) bool {
	for i, sf := range d.subfields {
		if sf == s {
			d.subfields = append(d.subfields[:i], d.subfields[i+1:]...)
			return true
		}
	}
	return false
}

func (d *DataField) Subfields() []*Subfield {
	return d.subfields
}

// Subfield returns the first subfield with the given code, or nil.
func (d *DataField) Subfield(code byte) *Subfield {
	for _, sf := range d.subfields {
		if sf.Code == code {
			return sf
		}
	}
	return nil
}

// SubfieldsByCode returns every subfield with the given code in order.
func (d *DataField) SubfieldsByCode(code byte) []*Subfield {
	var out []*Subfield
	for _, sf := range d.subfields {
		if sf.Code == code {
			out = append(out, sf)
		}
	}
	return out
}

func (d *DataField) HasSubfield(code byte) bool {
	return d.Subfield(code) != nil
}

func (d *DataField) MarshalField() []byte {
	var buf bytes.Buffer
	buf.WriteByte(d.ind1)
	buf.WriteByte(d.ind2)
	for _, sf := range d.subfields {
		buf.Write(sf.MarshalField())
	}
	buf.WriteByte(FieldTerminator)
	return buf.Bytes()
}

func (d *DataField) Length() int {
	n := 3
	for _, sf := range d.subfields {
		n += len(sf.Data) + 2
	}
	return n
}

func (d *DataField) Find(re *regexp.Regexp) bool {
	for _, sf := range d.subfields {
		if re.Match(sf.Data) {
			return true
		}
	}
	return false
}

func (d *DataField) Clone() *DataField {
	cp := &DataField{
		tag:       d.tag,
		ind1:      d.ind1,
		ind2:      d.ind2,
		subfields: make([]*Subfield, len(d.subfields)),
	}
	for i, sf := range d.subfields {
		cp.subfields[i] = &Subfield{
			Code:     sf.Code,
			Data:     append([]byte(nil), sf.Data...),
			LinkCode: sf.LinkCode,
		}
	}
	return cp
}

func (d *DataField) String() string {
	var buf bytes.Buffer
	buf.WriteString(d.tag)
	buf.WriteByte(' ')
	buf.WriteByte(d.ind1)
	buf.WriteByte(d.ind2)
	for _, sf := range d.subfields {
		buf.WriteString(sf.String())
	}
	return buf.String()
}
