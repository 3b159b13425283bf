package iso2709

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"gomarc/log"
	"gomarc/marc"

	"github.com/pkg/errors"
)

var (
	ErrNoHandler = errors.New("no handler")
)

const (
	msgUnparsableLeader   = "unable to parse leader"
	msgInvalidFile        = "invalid MARC file"
	msgUnexpectedEOF      = "unexpected end of stream"
	msgInvalidDirLength   = "invalid directory length"
	msgInvalidDirEntry    = "invalid directory entry"
	msgDirNotTerminated   = "directory not terminated"
	msgFieldNotTerminated = "field not terminated"
	msgTrailingChars      = "characters after terminator"
	msgRecNotTerminated   = "record not terminated"
	msgLengthMismatch     = "record length mismatch"
	msgNoDataElements     = "no data elements"
	msgExpectedDelimiter  = "expected delimiter"
	msgInvalidTag         = "invalid tag"
	msgInvalidControl     = "control field is not valid"
	msgInvalidData        = "data field is not valid"
)

type DecoderOption func(d *Decoder)

func WithErrorHandler(eh ErrorHandler) DecoderOption {
	return func(d *Decoder) {
		d.eh = eh
	}
}

// WithFileName sets the file name carried by diagnostics. ParseFile sets it
// automatically.
func WithFileName(name string) DecoderOption {
	return func(d *Decoder) {
		d.fileName = name
	}
}

// Decoder turns a stream of ISO 2709 records into Handler events.
type Decoder struct {
	h             Handler
	eh            ErrorHandler
	fileName      string
	cr            *CountingReader
	controlNumber string
	lgr           log.Logger
}

func NewDecoder(h Handler, opts ...DecoderOption) *Decoder {
	d := &Decoder{
		h:   h,
		lgr: log.WithModule("iso2709"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Position returns the number of bytes consumed by the current or last
// Parse call.
func (d *Decoder) Position() int64 {
	if d.cr == nil {
		return 0
	}
	return d.cr.Count()
}

// ControlNumber returns the most recently decoded 001 value.
func (d *Decoder) ControlNumber() string {
	return d.controlNumber
}

func (d *Decoder) ParseFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "error opening records file")
	}
	defer f.Close()
	d.fileName = path
	return d.Parse(f)
}

// Parse decodes every record in r. It returns a *Diagnostic when the stream
// stopped on a fatal problem or an invalid directory length, or a wrapped
// error when reading r or a Handler call failed. Parse does not call
// EndCollection after such a failure.
func (d *Decoder) Parse(r io.Reader) error {
	if d.h == nil {
		return ErrNoHandler
	}
	d.cr = NewCountingReader(bufio.NewReader(r))
	d.controlNumber = ""

	lgr := d.lgr
	if d.fileName != "" {
		lgr = lgr.Sub("file", d.fileName)
	}
	lgr.Debug("starting collection")
	if err := d.h.StartCollection(); err != nil {
		return errors.Wrap(err, "error starting collection")
	}

	var records int
	for {
		more, err := d.parseRecord()
		if err != nil {
			if diag, ok := err.(*Diagnostic); ok {
				lgr.Warn("stopped decoding", "reason", diag.Message, "position", diag.Position, "records", records)
			}
			return err
		}
		if !more {
			break
		}
		records++
	}

	if err := d.h.EndCollection(); err != nil {
		return errors.Wrap(err, "error ending collection")
	}
	lgr.Debug("finished collection", "records", records, "bytes", d.cr.Count())
	return nil
}

func (d *Decoder) parseRecord() (bool, error) {
	start := d.cr.Count()

	ldr := make([]byte, marc.LeaderLength)
	if _, err := io.ReadFull(d.cr, ldr); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return false, nil
		}
		return false, errors.Wrap(err, "error reading leader")
	}
	leader, err := marc.ParseLeader(ldr)
	if err != nil {
		return false, d.report(SeverityFatal, msgUnparsableLeader, "")
	}
	if leader.BaseAddressOfData == 0 || leader.RecordLength == 0 {
		return false, d.report(SeverityFatal, msgInvalidFile, "")
	}
	if err := d.h.StartRecord(leader); err != nil {
		return false, errors.Wrap(err, "error starting record")
	}

	dirLength := leader.BaseAddressOfData - (marc.LeaderLength + 1)
	if dirLength < 0 || dirLength%marc.DirectoryEntryLength != 0 {
		return false, d.report(SeverityError, msgInvalidDirLength, "")
	}
	entries, err := d.readDirectory(dirLength / marc.DirectoryEntryLength)
	if err != nil {
		return false, err
	}

	for _, e := range entries {
		body, err := d.cr.ReadN(e.Length)
		if err != nil {
			return false, d.readFailure(err)
		}
		d.checkFieldTerminator(e.Tag, body)

		switch {
		case !marc.IsValidTag(e.Tag):
			d.report(SeverityWarning, msgInvalidTag, e.Tag)
		case marc.IsControlTag(e.Tag):
			d.parseControlField(e.Tag, body)
		default:
			if err := d.parseDataField(e.Tag, body); err != nil {
				return false, err
			}
		}
	}

	rt, err := d.cr.ReadByte()
	if err != nil {
		return false, d.readFailure(err)
	}
	if rt != marc.RecordTerminator {
		d.report(SeverityError, msgRecNotTerminated, "")
	}
	if d.cr.Count()-start != int64(leader.RecordLength) {
		d.report(SeverityError, msgLengthMismatch, "")
	}

	if err := d.h.EndRecord(); err != nil {
		return false, errors.Wrap(err, "error ending record")
	}
	return true, nil
}

func (d *Decoder) readDirectory(n int) ([]marc.DirectoryEntry, error) {
	raw, err := d.cr.ReadN(n * marc.DirectoryEntryLength)
	if err != nil {
		return nil, d.readFailure(err)
	}
	entries := make([]marc.DirectoryEntry, n)
	for i := range entries {
		off := i * marc.DirectoryEntryLength
		e, err := marc.ParseDirectoryEntry(raw[off : off+marc.DirectoryEntryLength])
		if err != nil {
			d.report(SeverityError, msgInvalidDirEntry, e.Tag)
		}
		entries[i] = e
	}

	ft, err := d.cr.ReadByte()
	if err != nil {
		return nil, d.readFailure(err)
	}
	if ft != marc.FieldTerminator {
		d.report(SeverityError, msgDirNotTerminated, "")
	}
	return entries, nil
}

func (d *Decoder) checkFieldTerminator(tag string, body []byte) {
	pos := bytes.LastIndexByte(body, marc.FieldTerminator)
	if pos < 0 {
		d.report(SeverityError, msgFieldNotTerminated, tag)
		return
	}
	for _, c := range body[pos+1:] {
		if c != 0 {
			d.report(SeverityError, msgTrailingChars, tag)
			return
		}
	}
}

func (d *Decoder) parseControlField(tag string, body []byte) {
	if len(body) < 2 {
		d.report(SeverityWarning, msgNoDataElements, tag)
		return
	}
	data := body
	if i := bytes.IndexByte(body, marc.FieldTerminator); i >= 0 {
		data = body[:i]
	}
	if marc.IsControlNumberTag(tag) {
		d.controlNumber = string(data)
	}
	if err := d.h.ControlField(tag, data); err != nil {
		d.report(SeverityWarning, msgInvalidControl, tag)
	}
}

// parseDataField only returns an error when EndDataField fails. A rejected
// StartDataField or Subfield abandons the field with a warning.
func (d *Decoder) parseDataField(tag string, body []byte) error {
	if len(body) < 4 {
		d.report(SeverityWarning, msgNoDataElements, tag)
		return nil
	}
	if err := d.h.StartDataField(tag, body[0], body[1]); err != nil {
		d.report(SeverityWarning, msgInvalidData, tag)
		return nil
	}
	if body[2] != marc.SubfieldDelimiter {
		d.report(SeverityWarning, msgExpectedDelimiter, tag)
	}

	var (
		code    byte
		data    []byte
		pending bool
	)
	flush := func() error {
		if !pending {
			return nil
		}
		pending = false
		return d.h.Subfield(code, data)
	}

tokens:
	for i := 2; i < len(body); i++ {
		switch c := body[i]; c {
		case marc.SubfieldDelimiter:
			if err := flush(); err != nil {
				d.report(SeverityWarning, msgInvalidData, tag)
				return nil
			}
			if i+1 >= len(body) || body[i+1] == marc.FieldTerminator {
				break tokens
			}
			i++
			code = body[i]
			data = make([]byte, 0)
			pending = true
		case marc.FieldTerminator:
			break tokens
		default:
			if pending {
				data = append(data, c)
			}
		}
	}
	if err := flush(); err != nil {
		d.report(SeverityWarning, msgInvalidData, tag)
		return nil
	}

	if err := d.h.EndDataField(tag); err != nil {
		return errors.Wrap(err, "error ending data field")
	}
	return nil
}

func (d *Decoder) readFailure(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return d.report(SeverityFatal, msgUnexpectedEOF, "")
	}
	return errors.Wrap(err, "error reading record")
}

func (d *Decoder) report(sev Severity, msg string, tag string) *Diagnostic {
	diag := &Diagnostic{
		Severity:      sev,
		Message:       msg,
		Position:      d.cr.Count(),
		ControlNumber: d.controlNumber,
		Tag:           tag,
		FileName:      d.fileName,
	}
	if d.eh != nil {
		dispatch(d.eh, diag)
	}
	return diag
}
