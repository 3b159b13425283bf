package iso2709

import (
	"gomarc/marc"
)

// Handler receives the structural events of a record stream.
//
// An error from ControlField, StartDataField or Subfield rejects that field:
// the decoder reports a warning and moves on to the next field without
// calling EndDataField. An error from any other method stops decoding and
// is returned from Parse.
type Handler interface {
	StartCollection() error
	StartRecord(leader *marc.Leader) error
	ControlField(tag string, data []byte) error
	StartDataField(tag string, ind1, ind2 byte) error
	Subfield(code byte, data []byte) error
	EndDataField(tag string) error
	EndRecord() error
	EndCollection() error
}

// NopHandler ignores every event. Embed it to implement only the events
// you care about.
type NopHandler struct{}

var _ Handler = NopHandler{}

func (NopHandler) StartCollection() error { return nil }
func (NopHandler) StartRecord(*marc.Leader) error { return nil }
func (NopHandler) ControlField(string, []byte) error { return nil }
func (NopHandler) StartDataField(string, byte, byte) error { return nil }
func (NopHandler) Subfield(byte, []byte) error { return nil }
func (NopHandler) EndDataField(string) error { return nil }
func (NopHandler) EndRecord() error { return nil }
func (NopHandler) EndCollection() error { return nil }

// MultiHandler forwards every event to each handler in order, stopping at
// the first error.
type MultiHandler []Handler

var _ Handler = MultiHandler(nil)

func (m MultiHandler) each(fn func(h Handler) error) error {
	for _, h := range m {
		if err := fn(h); err != nil {
			return err
		}
	}
	return nil
}

func (m MultiHandler) StartCollection() error {
	return m.each(func(h Handler) error { return h.StartCollection() })
}

func (m MultiHandler) StartRecord(leader *marc.Leader) error {
	return m.each(func(h Handler) error { return h.StartRecord(leader) })
}

func (m MultiHandler) ControlField(tag string, data []byte) error {
	return m.each(func(h Handler) error { return h.ControlField(tag, data) })
}

func (m MultiHandler) StartDataField(tag string, ind1, ind2 byte) error {
	return m.each(func(h Handler) error { return h.StartDataField(tag, ind1, ind2) })
}

func (m MultiHandler) Subfield(code byte, data []byte) error {
	return m.each(func(h Handler) error { return h.Subfield(code, data) })
}

func (m MultiHandler) EndDataField(tag string) error {
	return m.each(func(h Handler) error { return h.EndDataField(tag) })
}

func (m MultiHandler) EndRecord() error {
	return m.each(func(h Handler) error { return h.EndRecord() })
}

func (m MultiHandler) EndCollection() error {
	return m.each(func(h Handler) error { return h.EndCollection() })
}
