package marc

import (
	"regexp"

	"github.com/pkg/errors"
)

// Record owns a leader, an ordered list of control fields with the control
// number field pinned first, and an ordered list of data fields.
type Record struct {
	Leader *Leader

	controlFields []*ControlField
	dataFields    []*DataField
}

func NewRecord(leader *Leader) *Record {
	return &Record{
		Leader: leader,
	}
}

// AddControlField appends cf. A control number field is inserted in front
// of the other control fields, and only one may exist.
func (r *Record) AddControlField(cf *ControlField) error {
	if !IsControlNumberTag(cf.Tag()) {
		r.controlFields = append(r.controlFields, cf)
		return nil
	}
	if r.HasControlNumberField() {
		return ErrDuplicateControlNumber
	}
	r.controlFields = append([]*ControlField{cf}, r.controlFields...)
	return nil
}

func (r *Record) AddDataField(df *DataField) {
	r.dataFields = append(r.dataFields, df)
}

func (r *Record) ControlFields() []*ControlField {
	return r.controlFields
}

func (r *Record) DataFields() []*DataField {
	return r.dataFields
}

// VariableFields returns the control fields followed by the data fields.
func (r *Record) VariableFields() []VariableField {
	out := make([]VariableField, 0, len(r.controlFields)+len(r.dataFields))
	for _, cf := range r.controlFields {
		out = append(out, cf)
	}
	for _, df := range r.dataFields {
		out = append(out, df)
	}
	return out
}

// RemoveControlField removes cf and reports whether it was present.
func (r *Record) RemoveControlField(cf *ControlField) bool {
	for i, f := range r.controlFields {
		if f == cf {
			r.controlFields = append(r.controlFields[:i], r.controlFields[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveDataField removes df and reports whether it was present.
func (r *Record) RemoveDataField(df *DataField) bool {
	for i, f := range r.dataFields {
		if f == df {
			r.dataFields = append(r.dataFields[:i], r.dataFields[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Record) HasControlNumberField() bool {
	return r.ControlNumberField() != nil
}

func (r *Record) ControlNumberField() *ControlField {
	if len(r.controlFields) == 0 || !IsControlNumberTag(r.controlFields[0].Tag()) {
		return nil
	}
	return r.controlFields[0]
}

// ControlNumber returns the data of the 001 field, or an empty string.
func (r *Record) ControlNumber() string {
	cf := r.ControlNumberField()
	if cf == nil {
		return ""
	}
	return string(cf.Data())
}

// ControlField returns the first control field with the given tag, or nil.
func (r *Record) ControlField(tag string) *ControlField {
	for _, cf := range r.controlFields {
		if cf.Tag() == tag {
			return cf
		}
	}
	return nil
}

// FirstDataField returns the first data field with the given tag, or nil.
func (r *Record) FirstDataField(tag string) *DataField {
	for _, df := range r.dataFields {
		if df.Tag() == tag {
			return df
		}
	}
	return nil
}

func (r *Record) DataFieldsByTag(tag string) []*DataField {
	var out []*DataField
	for _, df := range r.dataFields {
		if df.Tag() == tag {
			out = append(out, df)
		}
	}
	return out
}

// Find returns every variable field whose data matches re. When tags are
// given, only fields with one of those tags are considered.
func (r *Record) Find(re *regexp.Regexp, tags ...string) []VariableField {
	var out []VariableField
	for _, f := range r.VariableFields() {
		if len(tags) > 0 && !containsTag(tags, f.Tag()) {
			continue
		}
		if f.Find(re) {
			out = append(out, f)
		}
	}
	return out
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	cp := &Record{
		controlFields: make([]*ControlField, len(r.controlFields)),
		dataFields:    make([]*DataField, len(r.dataFields)),
	}
	if r.Leader != nil {
		cp.Leader = r.Leader.Clone()
	}
	for i, cf := range r.controlFields {
		cp.controlFields[i] = cf.Clone()
	}
	for i, df := range r.dataFields {
		cp.dataFields[i] = df.Clone()
	}
	return cp
}

func (r *Record) validateForMarshal() error {
	if r.Leader == nil {
		return errors.Wrap(ErrIncompleteRecord, "record contains no leader")
	}
	if !r.HasControlNumberField() {
		return errors.Wrap(ErrIncompleteRecord, "record contains no control number field (tag 001)")
	}
	return nil
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
