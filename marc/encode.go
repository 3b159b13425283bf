package marc

import (
	"bytes"
	"io"

	"gomarc/charconv"

	"github.com/pkg/errors"
)

// Marshal serializes the record in ISO 2709 form. Field lengths are payload
// byte counts. The leader's RecordLength and BaseAddressOfData are
// overwritten with the computed values; on error the leader is untouched and
// no output is produced.
func (r *Record) Marshal() ([]byte, error) {
	return r.marshal(nil)
}

// MarshalEncoding is like Marshal, but transcodes every field from UTF-8
// into the named charset first, so directory lengths and the record length
// are byte counts of the transcoded output.
func (r *Record) MarshalEncoding(charset string) ([]byte, error) {
	if charset == "" {
		return r.marshal(nil)
	}
	conv, err := charconv.NewEncoder(charset)
	if err != nil {
		return nil, errors.Wrap(ErrEncoding, err.Error())
	}
	return r.marshal(conv)
}

// Encode writes the marshaled record to w.
func (r *Record) Encode(w io.Writer) error {
	b, err := r.Marshal()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func (r *Record) marshal(conv charconv.Converter) ([]byte, error) {
	if err := r.validateForMarshal(); err != nil {
		return nil, err
	}

	dir := NewDirectory()
	var body bytes.Buffer
	for _, f := range r.VariableFields() {
		raw := f.MarshalField()
		if conv != nil {
			converted, err := conv.Convert(raw)
			if err != nil {
				return nil, errors.Wrapf(ErrEncoding, "field %s: %v", f.Tag(), err)
			}
			raw = converted
		}
		dir.Add(f.Tag(), len(raw))
		body.Write(raw)
	}

	dirBytes, err := dir.MarshalBinary()
	if err != nil {
		return nil, err
	}

	baseAddress := LeaderLength + len(dirBytes) + 1
	recordLength := baseAddress + body.Len() + 1

	leader := r.Leader.Clone()
	leader.BaseAddressOfData = baseAddress
	leader.RecordLength = recordLength
	leaderBytes, err := leader.MarshalBinary()
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, recordLength)
	out = append(out, leaderBytes...)
	out = append(out, dirBytes...)
	out = append(out, FieldTerminator)
	out = append(out, body.Bytes()...)
	out = append(out, RecordTerminator)

	r.Leader.BaseAddressOfData = baseAddress
	r.Leader.RecordLength = recordLength
	return out, nil
}
