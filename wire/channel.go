package wire

import (
	"fmt"
	"io"
)

// ByteSender is the transfer channel towards the filter engine. SendByte
// blocks until the byte is accepted; delivery is ordered.
type ByteSender interface {
	SendByte(b byte) error
}

// SenderFunc adapts a function to [ByteSender].
type SenderFunc func(b byte) error

// SendByte calls f(b).
func (f SenderFunc) SendByte(b byte) error { return f(b) }

// Send pushes frame through ch one byte at a time, waiting for each byte to
// be accepted before issuing the next.
func Send(ch ByteSender, frame []byte) error {
	for i, b := range frame {
		if err := ch.SendByte(b); err != nil {
			return fmt.Errorf("wire: send byte %d of %d: %w", i, len(frame), err)
		}
	}

	return nil
}

// WriterSender sends each byte as a separate one-byte write to W, e.g. a
// serial port or SPI device node.
type WriterSender struct {
	W   io.Writer
	buf [1]byte
}

// SendByte writes b to the underlying writer.
func (s *WriterSender) SendByte(b byte) error {
	s.buf[0] = b
	n, err := s.W.Write(s.buf[:])
	if err != nil {
		return err
	}

	if n != 1 {
		return io.ErrShortWrite
	}

	return nil
}

// Recorder captures everything sent through it. The zero value is ready to
// use.
type Recorder struct {
	Bytes []byte
}

// SendByte appends b.
func (r *Recorder) SendByte(b byte) error {
	r.Bytes = append(r.Bytes, b)
	return nil
}

// Reset drops the recorded bytes.
func (r *Recorder) Reset() {
	r.Bytes = r.Bytes[:0]
}
