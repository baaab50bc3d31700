package wire

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cwbudde/algo-eqctl/dsp/fixed"
)

const (
	// Sync0 and Sync1 open every frame.
	Sync0 byte = 0xAA
	Sync1 byte = 0x55

	// SyncLen is the size of the sync preamble in bytes.
	SyncLen = 2
	// SampleBytes is the size of one raw sample.
	SampleBytes = 2
	// BandBytes is the size of one band's five coefficients.
	BandBytes = 10
)

var (
	ErrShortFrame = errors.New("wire: frame too short")
	ErrSync       = errors.New("wire: missing sync bytes")
)

// FrameLen returns the encoded size of a frame with nRaw samples and nBands
// bands.
func FrameLen(nRaw, nBands int) int {
	return SyncLen + nRaw*SampleBytes + nBands*BandBytes
}

// Encode returns a new frame holding raw and set.
func Encode(raw []uint16, set fixed.BandSet) []byte {
	return AppendFrame(make([]byte, 0, FrameLen(len(raw), len(set))), raw, set)
}

// AppendFrame appends the encoding of raw and set to dst and returns the
// extended slice. It does not allocate when dst has enough capacity.
func AppendFrame(dst []byte, raw []uint16, set fixed.BandSet) []byte {
	dst = append(dst, Sync0, Sync1)

	for _, s := range raw {
		dst = binary.BigEndian.AppendUint16(dst, s)
	}

	for _, b := range set {
		for _, w := range b.Words() {
			dst = binary.BigEndian.AppendUint16(dst, uint16(w))
		}
	}

	return dst
}

// Frame is a decoded frame.
type Frame struct {
	Raw   []uint16
	Bands fixed.BandSet
}

// Decode parses a frame carrying nRaw samples and nBands bands. Trailing
// bytes beyond the expected length are ignored.
func Decode(frame []byte, nRaw, nBands int) (Frame, error) {
	want := FrameLen(nRaw, nBands)
	if len(frame) < want {
		return Frame{}, fmt.Errorf("%w: %d bytes, want %d", ErrShortFrame, len(frame), want)
	}

	if frame[0] != Sync0 || frame[1] != Sync1 {
		return Frame{}, fmt.Errorf("%w: got % X", ErrSync, frame[:SyncLen])
	}

	p := frame[SyncLen:]
	out := Frame{
		Raw:   make([]uint16, nRaw),
		Bands: make(fixed.BandSet, nBands),
	}

	for i := range out.Raw {
		out.Raw[i] = binary.BigEndian.Uint16(p)
		p = p[SampleBytes:]
	}

	for i := range out.Bands {
		var w [5]int16
		for k := range w {
			w[k] = int16(binary.BigEndian.Uint16(p))
			p = p[2:]
		}

		out.Bands[i] = fixed.Biquad{B0: w[0], B1: w[1], B2: w[2], A1: w[3], A2: w[4]}
	}

	return out, nil
}
