package marc

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Leader is the fixed 24-unit header of a record.
//
// RecordLength and BaseAddressOfData are outputs of Record.Marshal: they
// are recomputed and overwritten on every encode.
type Leader struct {
	RecordLength       int
	RecordStatus       byte
	TypeOfRecord       byte
	ImplDefined1       [2]byte
	CharCodingScheme   byte
	IndicatorCount     int
	SubfieldCodeLength int
	BaseAddressOfData  int
	ImplDefined2       [3]byte
	EntryMap           [4]byte
}

// NewLeader returns a leader for a new bibliographic record. Lengths are
// left at zero until the record is marshaled.
func NewLeader() *Leader {
	return &Leader{
		RecordStatus:       'n',
		TypeOfRecord:       'a',
		ImplDefined1:       [2]byte{'m', ' '},
		CharCodingScheme:   ' ',
		IndicatorCount:     2,
		SubfieldCodeLength: 2,
		ImplDefined2:       [3]byte{' ', ' ', ' '},
		EntryMap:           [4]byte{'4', '5', '0', '0'},
	}
}

// ParseLeader decodes the first 24 units of b.
func ParseLeader(b []byte) (*Leader, error) {
	l := new(Leader)
	if err := l.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return l, nil
}

// UnmarshalBinary decodes a leader from b. Numeric positions that are not
// digit strings decode to 0 (record length, base address) or 2 (indicator
// count, subfield code length) instead of failing.
func (l *Leader) UnmarshalBinary(b []byte) error {
	if len(b) < LeaderLength {
		return errors.Wrapf(ErrMalformedLeader, "need %d units, got %d", LeaderLength, len(b))
	}
	b = b[:LeaderLength]

	l.RecordLength = parseNumber(b[0:5], 0)
	l.RecordStatus = b[5]
	l.TypeOfRecord = b[6]
	copy(l.ImplDefined1[:], b[7:9])
	l.CharCodingScheme = b[9]
	l.IndicatorCount = parseNumber(b[10:11], 2)
	l.SubfieldCodeLength = parseNumber(b[11:12], 2)
	l.BaseAddressOfData = parseNumber(b[12:17], 0)
	copy(l.ImplDefined2[:], b[17:20])
	copy(l.EntryMap[:], b[20:24])
	return nil
}

// MarshalBinary encodes the leader into exactly 24 units.
func (l *Leader) MarshalBinary() ([]byte, error) {
	if l.RecordLength < 0 || l.RecordLength > maxRecordLength {
		return nil, errors.Wrapf(ErrRecordTooLong, "record length %d", l.RecordLength)
	}
	if l.BaseAddressOfData < 0 || l.BaseAddressOfData > maxRecordLength {
		return nil, errors.Wrapf(ErrRecordTooLong, "base address of data %d", l.BaseAddressOfData)
	}
	if l.IndicatorCount < 0 || l.IndicatorCount > 9 {
		return nil, errors.Errorf("indicator count %d is not a single digit", l.IndicatorCount)
	}
	if l.SubfieldCodeLength < 0 || l.SubfieldCodeLength > 9 {
		return nil, errors.Errorf("subfield code length %d is not a single digit", l.SubfieldCodeLength)
	}

	out := make([]byte, 0, LeaderLength)
	out = append(out, fmt.Sprintf("%05d", l.RecordLength)...)
	out = append(out, l.RecordStatus, l.TypeOfRecord)
	out = append(out, l.ImplDefined1[:]...)
	out = append(out, l.CharCodingScheme)
	out = append(out, byte('0'+l.IndicatorCount), byte('0'+l.SubfieldCodeLength))
	out = append(out, fmt.Sprintf("%05d", l.BaseAddressOfData)...)
	out = append(out, l.ImplDefined2[:]...)
	out = append(out, l.EntryMap[:]...)
	return out, nil
}

func (l *Leader) Encode(w io.Writer) error {
	b, err := l.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func (l *Leader) Decode(r io.Reader) error {
	buf := make([]byte, LeaderLength)
	if _, err := io.ReadFull(r, buf); err != nil {
		return err
	}
	return l.UnmarshalBinary(buf)
}

// Clone returns an independent copy of the leader.
func (l *Leader) Clone() *Leader {
	cp := *l
	return &cp
}

func (l *Leader) String() string {
	b, err := l.MarshalBinary()
	if err != nil {
		return fmt.Sprintf("<invalid leader: %v>", err)
	}
	return string(b)
}

// parseNumber decodes an unsigned decimal, returning def when b is empty or
// contains anything but digits.
func parseNumber(b []byte, def int) int {
	if len(b) == 0 {
		return def
	}
	n := 0
	for _, c := range b {
		if !isDigit(c) {
			return def
		}
		n = n*10 + int(c-'0')
	}
	return n
}
