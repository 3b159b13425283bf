package iso2709

import (
	"io"
	"sync/atomic"
)

// CountingReader tracks how many bytes have been consumed from r. Count may
// be read from another goroutine to report progress.
type CountingReader struct {
	r     io.Reader
	count int64
	buf   [1]byte
}

func NewCountingReader(r io.Reader) *CountingReader {
	return &CountingReader{
		r: r,
	}
}

func (c *CountingReader) Count() int64 {
	return atomic.LoadInt64(&c.count)
}

func (c *CountingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	atomic.AddInt64(&c.count, int64(n))
	return n, err
}

func (c *CountingReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(c, c.buf[:]); err != nil {
		return 0, err
	}
	return c.buf[0], nil
}

// ReadN reads exactly n bytes into a new slice.
func (c *CountingReader) ReadN(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(c, buf); err != nil {
		return buf, err
	}
	return buf, nil
}
