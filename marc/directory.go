package marc

import (
	"fmt"

	"github.com/pkg/errors"
)

// DirectoryEntry locates one variable field inside the record body.
type DirectoryEntry struct {
	Tag    string
	Length int
	Offset int
}

// Directory is an ordered list of entries whose offsets follow from the
// running total of the lengths added so far.
type Directory struct {
	entries []DirectoryEntry
	next    int
}

func NewDirectory() *Directory {
	return &Directory{}
}

// Add appends an entry for a field of the given length, starting where the
// previous field ended.
func (d *Directory) Add(tag string, length int) {
	d.entries = append(d.entries, DirectoryEntry{
		Tag:    tag,
		Length: length,
		Offset: d.next,
	})
	d.next += length
}

func (d *Directory) Entries() []DirectoryEntry {
	return d.entries
}

func (d *Directory) Len() int {
	return len(d.entries)
}

// Size returns the serialized size of the entries, excluding the directory
// terminator.
func (d *Directory) Size() int {
	return len(d.entries) * DirectoryEntryLength
}

// MarshalBinary encodes every entry as TAG(3) LENGTH(4) OFFSET(5). The
// directory terminator is not included.
func (d *Directory) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, d.Size())
	for _, e := range d.entries {
		b, err := e.MarshalBinary()
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

func (e DirectoryEntry) MarshalBinary() ([]byte, error) {
	if err := validateTag(e.Tag); err != nil {
		return nil, err
	}
	if e.Length < 0 || e.Length > maxFieldLength {
		return nil, errors.Wrapf(ErrFieldTooLong, "tag %s has length %d", e.Tag, e.Length)
	}
	if e.Offset < 0 || e.Offset > maxFieldOffset {
		return nil, errors.Wrapf(ErrOffsetOverflow, "tag %s starts at %d", e.Tag, e.Offset)
	}
	return []byte(fmt.Sprintf("%s%04d%05d", e.Tag, e.Length, e.Offset)), nil
}

// ParseDirectoryEntry decodes one 12-unit entry. A length or offset that is
// not a digit string is returned as zero together with an error, so callers
// can report it and keep going.
func ParseDirectoryEntry(b []byte) (DirectoryEntry, error) {
	if len(b) < DirectoryEntryLength {
		return DirectoryEntry{}, errors.Errorf("directory entry needs %d units, got %d", DirectoryEntryLength, len(b))
	}
	e := DirectoryEntry{
		Tag:    string(b[0:3]),
		Length: parseNumber(b[3:7], -1),
		Offset: parseNumber(b[7:12], 0),
	}
	if e.Length < 0 {
		e.Length = 0
		return e, errors.Errorf("invalid length %q for tag %q", b[3:7], e.Tag)
	}
	return e, nil
}
