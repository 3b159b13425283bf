package cli

import (
	"io"
	"io/ioutil"
	"os"

	"gomarc/charconv"
	"gomarc/iso2709"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

var ErrInteractiveInput = errors.New("refusing to read records from a terminal")

const stdinName = "<stdin>"

// OpenInput opens path for reading, or stdin when path is empty or "-".
// The returned name is used in diagnostics.
func OpenInput(path string) (io.ReadCloser, string, error) {
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, "", errors.Wrap(err, "error opening input")
		}
		return f, path, nil
	}

	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return nil, "", ErrInteractiveInput
	}
	return ioutil.NopCloser(os.Stdin), stdinName, nil
}

// WithSourceCharset converts payloads from charset to UTF-8 before they
// reach h. An empty charset returns h unchanged.
func WithSourceCharset(h iso2709.Handler, charset string) (iso2709.Handler, error) {
	if charset == "" {
		return h, nil
	}
	conv, err := charconv.NewDecoder(charset)
	if err != nil {
		return nil, errors.Wrap(err, "error configuring source charset")
	}
	return iso2709.NewConvertingHandler(h, conv), nil
}
