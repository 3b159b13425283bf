package marc

import "github.com/pkg/errors"

var (
	// ErrMalformedLeader is returned when a leader is shorter than 24 units
	// or carries a structural control character.
	ErrMalformedLeader = errors.New("malformed leader")

	// ErrInvalidTag is returned for tags that are not three digits, or that
	// are used for the wrong kind of field.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrInvalidIndicator is returned for indicators that are not a letter,
	// a digit or a blank.
	ErrInvalidIndicator = errors.New("invalid indicator")

	// ErrInvalidDataElement is returned when a payload contains a record
	// terminator, field terminator or subfield delimiter.
	ErrInvalidDataElement = errors.New("invalid data element")

	ErrDuplicateControlNumber = errors.New("control number field already exists")

	// ErrFieldTooLong is returned when a field's length does not fit the
	// four digits of a directory entry.
	ErrFieldTooLong = errors.New("field too long")

	// ErrOffsetOverflow is returned when a field's starting offset does not
	// fit the five digits of a directory entry.
	ErrOffsetOverflow = errors.New("field offset overflow")

	// ErrRecordTooLong is returned when a record length or base address
	// does not fit the five digits of the leader.
	ErrRecordTooLong = errors.New("record too long")

	// ErrIncompleteRecord is returned when marshaling a record without a
	// leader or without a control number field.
	ErrIncompleteRecord = errors.New("incomplete record")

	// ErrEncoding is returned when a payload cannot be represented in the
	// requested target encoding.
	ErrEncoding = errors.New("encoding error")
)
