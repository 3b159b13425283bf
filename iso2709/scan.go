package iso2709

import (
	"bufio"
	"io"
	"io/ioutil"

	"gomarc/marc"

	"github.com/pkg/errors"
)

// DirectoryFunc receives the leader and raw directory of one record.
type DirectoryFunc func(leader *marc.Leader, entries []marc.DirectoryEntry) error

// ScanDirectories walks r record by record using only the leader and the
// directory, skipping field bodies by the leader's record length. It is
// meant for inspecting the layout of a file, so any structural problem is
// returned as an error instead of being recovered from.
func ScanDirectories(r io.Reader, fn DirectoryFunc) error {
	cr := NewCountingReader(bufio.NewReader(r))
	for {
		ldr := make([]byte, marc.LeaderLength)
		if _, err := io.ReadFull(cr, ldr); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil
			}
			return errors.Wrap(err, "error reading leader")
		}
		leader, err := marc.ParseLeader(ldr)
		if err != nil {
			return errors.Wrapf(err, "at position %d", cr.Count())
		}

		dirLength := leader.BaseAddressOfData - (marc.LeaderLength + 1)
		if dirLength < 0 || dirLength%marc.DirectoryEntryLength != 0 {
			return errors.Errorf("invalid directory length %d at position %d", dirLength, cr.Count())
		}
		if leader.RecordLength < leader.BaseAddressOfData {
			return errors.Errorf("record length %d is shorter than base address %d", leader.RecordLength, leader.BaseAddressOfData)
		}
		raw, err := cr.ReadN(dirLength + 1)
		if err != nil {
			return errors.Wrap(err, "error reading directory")
		}

		entries := make([]marc.DirectoryEntry, dirLength/marc.DirectoryEntryLength)
		for i := range entries {
			off := i * marc.DirectoryEntryLength
			e, err := marc.ParseDirectoryEntry(raw[off : off+marc.DirectoryEntryLength])
			if err != nil {
				return errors.Wrapf(err, "at position %d", cr.Count())
			}
			entries[i] = e
		}
		if err := fn(leader, entries); err != nil {
			return err
		}

		rest := int64(leader.RecordLength - leader.BaseAddressOfData)
		if _, err := io.CopyN(ioutil.Discard, cr, rest); err != nil {
			return errors.Wrap(err, "error skipping record body")
		}
	}
}
