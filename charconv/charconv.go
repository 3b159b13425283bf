// Package charconv converts field payloads between UTF-8 and the charsets
// registered with IANA. Only payload bytes pass through a Converter; leader
// and directory bytes are always ASCII.
package charconv

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

var (
	ErrUnknownCharset     = errors.New("unknown charset")
	ErrUnsupportedCharset = errors.New("unsupported charset")
	ErrInvalidUTF8        = errors.New("payload is not valid UTF-8")
)

// Converter transforms a payload byte sequence.
type Converter interface {
	Convert(data []byte) ([]byte, error)
}

// ConverterFunc adapts a function to the Converter interface.
type ConverterFunc func(data []byte) ([]byte, error)

func (f ConverterFunc) Convert(data []byte) ([]byte, error) {
	return f(data)
}

// Lookup resolves an IANA charset name or alias, such as "ISO-8859-1",
// "latin1" or "UTF-8".
func Lookup(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownCharset, "%q", name)
	}
	if enc == nil {
		return nil, errors.Wrapf(ErrUnsupportedCharset, "%q", name)
	}
	return enc, nil
}

// NewDecoder returns a Converter that turns payloads in the named charset
// into UTF-8.
func NewDecoder(name string) (Converter, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return ConverterFunc(func(data []byte) ([]byte, error) {
		out, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return nil, errors.Wrapf(err, "error decoding %s payload", name)
		}
		return out, nil
	}), nil
}

// NewEncoder returns a Converter that turns UTF-8 payloads into the named
// charset. Payloads that are not valid UTF-8 and runes the charset cannot
// represent are an error.
func NewEncoder(name string) (Converter, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return ConverterFunc(func(data []byte) ([]byte, error) {
		if !utf8.Valid(data) {
			return nil, errors.Wrapf(ErrInvalidUTF8, "cannot encode as %s", name)
		}
		out, err := enc.NewEncoder().Bytes(data)
		if err != nil {
			return nil, errors.Wrapf(err, "error encoding payload as %s", name)
		}
		return out, nil
	}), nil
}
