package store

import (
	"bytes"
	"io"
	"time"

	"gomarc/crypto"
	"gomarc/iso2709"
	"gomarc/marc"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var (
	ErrRecordNotFound  = errors.New("record not found")
	ErrNoControlNumber = errors.New("record has no control number")
	ErrBadChecksum     = errors.New("stored record does not match its checksum")
)

var (
	recordsPrefix    = Prefixer("records")
	recordRawPrefix  = Prefixer(string(recordsPrefix("raw")))
	recordInfoPrefix = Prefixer(string(recordsPrefix("info")))
)

// RecordInfo is the metadata kept next to every stored record.
type RecordInfo struct {
	ControlNumber string      `json:"control_number"`
	Leader        string      `json:"leader"`
	FieldCount    int         `json:"field_count"`
	Checksum      crypto.Hash `json:"checksum"`
	Source        string      `json:"source"`
	ImportedAt    time.Time   `json:"imported_at"`
}

// PutRecord stores rec under its control number. When skipUnchanged is set
// and the stored copy has the same checksum, nothing is written. The return
// value reports whether the record was written.
func PutRecord(db *leveldb.DB, rec *marc.Record, source string, skipUnchanged bool) (bool, error) {
	var written bool
	err := WithTx(db, func(tx *leveldb.Transaction) error {
		var err error
		written, err = PutRecordTx(tx, rec, source, skipUnchanged)
		return err
	})
	return written, err
}

func PutRecordTx(tx *leveldb.Transaction, rec *marc.Record, source string, skipUnchanged bool) (bool, error) {
	cn := rec.ControlNumber()
	if cn == "" {
		return false, ErrNoControlNumber
	}
	raw, err := rec.Marshal()
	if err != nil {
		return false, errors.Wrapf(err, "error marshaling record %s", cn)
	}
	checksum := crypto.Blake2B256(raw)

	if skipUnchanged {
		existing, err := tx.Get(recordInfoPrefix(cn), nil)
		if err != nil && !errors.Is(err, leveldb.ErrNotFound) {
			return false, errors.Wrap(err, "error getting record info")
		}
		if err == nil {
			info := new(RecordInfo)
			mustUnmarshalJSON(existing, info)
			if info.Checksum == checksum {
				return false, nil
			}
		}
	}

	info := &RecordInfo{
		ControlNumber: cn,
		Leader:        rec.Leader.String(),
		FieldCount:    len(rec.ControlFields()) + len(rec.DataFields()),
		Checksum:      checksum,
		Source:        source,
		ImportedAt:    time.Now(),
	}
	if err := tx.Put(recordRawPrefix(cn), raw, nil); err != nil {
		return false, errors.Wrap(err, "error inserting record")
	}
	if err := tx.Put(recordInfoPrefix(cn), mustMarshalJSON(info), nil); err != nil {
		return false, errors.Wrap(err, "error inserting record info")
	}
	return true, nil
}

// GetRecord decodes the stored copy of a record after checking it against
// its checksum.
func GetRecord(db *leveldb.DB, cn string) (*marc.Record, error) {
	raw, err := getVerifiedRawRecord(db, cn)
	if err != nil {
		return nil, err
	}
	records, diags, err := iso2709.ReadAll(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrapf(err, "error decoding record %s", cn)
	}
	for _, d := range diags {
		logger.Warn("stored record has diagnostics", "control_number", cn, "diag", d.Message)
	}
	if len(records) != 1 {
		return nil, errors.Errorf("expected one stored record for %s, got %d", cn, len(records))
	}
	return records[0], nil
}

func GetRawRecord(db *leveldb.DB, cn string) ([]byte, error) {
	raw, err := db.Get(recordRawPrefix(cn), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, errors.Wrapf(ErrRecordNotFound, "%q", cn)
	}
	if err != nil {
		return nil, errors.Wrap(err, "error getting record")
	}
	return raw, nil
}

// VerifyRecord rehashes the stored wire bytes of a record and compares them
// with the checksum recorded at import.
func VerifyRecord(db *leveldb.DB, cn string) error {
	_, err := getVerifiedRawRecord(db, cn)
	return err
}

func getVerifiedRawRecord(db *leveldb.DB, cn string) ([]byte, error) {
	info, err := GetRecordInfo(db, cn)
	if err != nil {
		return nil, err
	}
	if info.Checksum.IsZero() {
		return nil, errors.Wrapf(ErrBadChecksum, "%q has no checksum", cn)
	}
	raw, err := GetRawRecord(db, cn)
	if err != nil {
		return nil, err
	}
	sum, err := crypto.Blake2B256Reader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	if sum != info.Checksum {
		return nil, errors.Wrapf(ErrBadChecksum, "%q", cn)
	}
	return raw, nil
}

func GetRecordInfo(db *leveldb.DB, cn string) (*RecordInfo, error) {
	res, err := db.Get(recordInfoPrefix(cn), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, errors.Wrapf(ErrRecordNotFound, "%q", cn)
	}
	if err != nil {
		return nil, errors.Wrap(err, "error getting record info")
	}
	info := new(RecordInfo)
	mustUnmarshalJSON(res, info)
	return info, nil
}

type RecordInfoStream struct {
	iter iterator.Iterator
}

func (s *RecordInfoStream) Next() (*RecordInfo, error) {
	if !s.iter.Next() {
		return nil, nil
	}

	info := new(RecordInfo)
	mustUnmarshalJSON(s.iter.Value(), info)
	return info, nil
}

func (s *RecordInfoStream) Close() error {
	s.iter.Release()
	return s.iter.Error()
}

// StreamRecordInfo iterates record info in control number order, starting
// after start when it is not empty.
func StreamRecordInfo(db *leveldb.DB, start string) (*RecordInfoStream, error) {
	if start == "" {
		return &RecordInfoStream{
			iter: db.NewIterator(util.BytesPrefix(recordInfoPrefix()), nil),
		}, nil
	}

	iterRange := &util.Range{
		Start: recordInfoPrefix(start),
		Limit: recordInfoPrefix(string([]byte{0xff})),
	}
	last := iterRange.Start[len(iterRange.Start)-1]
	iterRange.Start[len(iterRange.Start)-1] = last + 1
	return &RecordInfoStream{
		iter: db.NewIterator(iterRange, nil),
	}, nil
}

func CountRecords(db *leveldb.DB) (int, error) {
	iter := db.NewIterator(util.BytesPrefix(recordInfoPrefix()), nil)
	var count int
	for iter.Next() {
		count++
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return 0, errors.Wrap(err, "error counting records")
	}
	return count, nil
}

// ExportRecords writes every stored record to w in control number order and
// returns how many were written.
func ExportRecords(db *leveldb.DB, w io.Writer) (int, error) {
	iter := db.NewIterator(util.BytesPrefix(recordRawPrefix()), nil)
	defer iter.Release()
	var count int
	for iter.Next() {
		if _, err := w.Write(iter.Value()); err != nil {
			return count, errors.Wrap(err, "error writing record")
		}
		count++
	}
	if err := iter.Error(); err != nil {
		return count, errors.Wrap(err, "error iterating records")
	}
	return count, nil
}

func DeleteRecord(db *leveldb.DB, cn string) error {
	return WithTx(db, func(tx *leveldb.Transaction) error {
		has, err := tx.Has(recordInfoPrefix(cn), nil)
		if err != nil {
			return errors.Wrap(err, "error checking record")
		}
		if !has {
			return errors.Wrapf(ErrRecordNotFound, "%q", cn)
		}
		if err := tx.Delete(recordRawPrefix(cn), nil); err != nil {
			return errors.Wrap(err, "error deleting record")
		}
		if err := tx.Delete(recordInfoPrefix(cn), nil); err != nil {
			return errors.Wrap(err, "error deleting record info")
		}
		return nil
	})
}

func TruncateRecordStore(db *leveldb.DB) error {
	err := WithTx(db, func(tx *leveldb.Transaction) error {
		iter := tx.NewIterator(util.BytesPrefix(recordsPrefix()), nil)
		for iter.Next() {
			if err := tx.Delete(iter.Key(), nil); err != nil {
				return errors.Wrap(err, "error deleting record store key")
			}
		}
		iter.Release()
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "error truncating record store")
	}
	return nil
}
