package event

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Log records encoded events in emission order so a run can be replayed or diffed
// later. It is not safe for concurrent use.
type Log struct {
	buf   bytes.Buffer
	count int
}

// Append encodes the event and adds it to the log.
func (l *Log) Append(ev Event) {
	l.buf.Write(ev.Encode())
	l.count++
}

// Len returns the number of events recorded.
func (l *Log) Len() int {
	return l.count
}

// Events decodes every event recorded so far.
func (l *Log) Events() ([]Event, error) {
	return DecodeEvents(l.buf.Bytes())
}

// WriteTo writes the log to w as a zstd stream. The count returned is the number of
// compressed bytes written to w.
func (l *Log) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	enc, err := zstd.NewWriter(cw, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return 0, fmt.Errorf("create zstd writer: %w", err)
	}
	if _, err := enc.Write(l.buf.Bytes()); err != nil {
		enc.Close()
		return cw.n, fmt.Errorf("write events: %w", err)
	}
	if err := enc.Close(); err != nil {
		return cw.n, fmt.Errorf("flush events: %w", err)
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// ReadLog decodes a zstd stream written by Log.WriteTo.
func ReadLog(r io.Reader) ([]Event, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("create zstd reader: %w", err)
	}
	defer dec.Close()

	dat, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}
	return DecodeEvents(dat)
}
