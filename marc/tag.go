package marc

import "github.com/pkg/errors"

// IsValidTag reports whether tag is exactly three ASCII digits.
func IsValidTag(tag string) bool {
	if len(tag) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if !isDigit(tag[i]) {
			return false
		}
	}
	return true
}

// IsControlTag reports whether tag identifies a control field (001-009).
func IsControlTag(tag string) bool {
	return IsValidTag(tag) && tag[0] == '0' && tag[1] == '0' && tag[2] != '0'
}

// IsDataTag reports whether tag identifies a data field.
func IsDataTag(tag string) bool {
	return IsValidTag(tag) && !IsControlTag(tag)
}

// IsControlNumberTag reports whether tag is the control number tag 001.
func IsControlNumberTag(tag string) bool {
	return tag == ControlNumberTag
}

func validateTag(tag string) error {
	if !IsValidTag(tag) {
		return errors.Wrapf(ErrInvalidTag, "tag %q", tag)
	}
	return nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isStructural(b byte) bool {
	return b == RecordTerminator || b == FieldTerminator || b == SubfieldDelimiter
}

// checkDataElement rejects payloads that would corrupt the record structure
// when written to the wire.
func checkDataElement(data []byte) error {
	for i, b := range data {
		if isStructural(b) {
			return errors.Wrapf(ErrInvalidDataElement, "control character 0x%02x at offset %d", b, i)
		}
	}
	return nil
}

func checkIndicator(ind byte) error {
	switch {
	case ind == Blank:
	case isDigit(ind):
	case ind >= 'a' && ind <= 'z':
	case ind >= 'A' && ind <= 'Z':
	default:
		return errors.Wrapf(ErrInvalidIndicator, "indicator %q", ind)
	}
	return nil
}
