package eq

import (
	"bytes"
	"errors"
	"testing"

	"github.com/cwbudde/algo-eqctl/dsp/fixed"
	"github.com/cwbudde/algo-eqctl/wire"
)

func TestPipeline_DefaultRouting(t *testing.T) {
	c := mustNew(t)
	var rec wire.Recorder

	p, err := NewPipeline(c, StaticSource{10, 20, 30}, &rec)
	if err != nil {
		t.Fatal(err)
	}

	set, err := p.Step()
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(rec.Bytes, wire.Encode([]uint16{10, 20, 30}, set)) {
		t.Fatalf("sent % X", rec.Bytes)
	}

	if !bytes.Equal(p.LastFrame(), rec.Bytes) {
		t.Fatal("LastFrame differs from transmitted bytes")
	}

	if len(rec.Bytes) != wire.FrameLen(3, 3) {
		t.Fatalf("frame length %d", len(rec.Bytes))
	}
}

func TestPipeline_ChannelMap(t *testing.T) {
	c := mustNew(t)
	var rec wire.Recorder

	// Five channels acquired; low, mid and high knobs sit on channels 2, 1, 3.
	src := StaticSource{111, 4095, 0, 4095, 222}
	p, err := NewPipeline(c, src, &rec, WithChannels(5), WithSlotChannels(2, 1, 3))
	if err != nil {
		t.Fatal(err)
	}

	for range 5 {
		rec.Reset()
		if _, err := p.Step(); err != nil {
			t.Fatal(err)
		}
	}

	if len(rec.Bytes) != 2+10+30 {
		t.Fatalf("frame length %d, want 42", len(rec.Bytes))
	}

	f, err := wire.Decode(rec.Bytes, 5, 3)
	if err != nil {
		t.Fatal(err)
	}

	for i, want := range src {
		if f.Raw[i] != want {
			t.Fatalf("raw[%d] = %d, want %d", i, f.Raw[i], want)
		}
	}

	if f.Bands[0].IsIdentity() {
		t.Fatal("low band reads channel 2 (zero) and should cut")
	}

	if !f.Bands[1].IsIdentity() || !f.Bands[2].IsIdentity() {
		t.Fatalf("mid/high read full scale and should be identity: %v", f.Bands)
	}
}

func TestPipeline_Errors(t *testing.T) {
	c := mustNew(t)
	var rec wire.Recorder

	if _, err := NewPipeline(nil, StaticSource{}, &rec); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("nil composer: %v", err)
	}

	if _, err := NewPipeline(c, StaticSource{}, &rec, WithSlotChannels(0, 1)); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("short map: %v", err)
	}

	if _, err := NewPipeline(c, StaticSource{}, &rec, WithSlotChannels(0, 1, 3)); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("channel out of range: %v", err)
	}

	if _, err := NewPipeline(c, StaticSource{}, &rec, WithChannels(0)); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("zero channels: %v", err)
	}

	adcFault := errors.New("adc timeout")
	p, err := NewPipeline(c, SourceFunc(func([]uint16) error { return adcFault }), &rec)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := p.Step(); !errors.Is(err, adcFault) {
		t.Fatalf("source error: %v", err)
	}

	busFault := errors.New("spi busy")
	p, err = NewPipeline(c, StaticSource{1, 2, 3}, wire.SenderFunc(func(byte) error { return busFault }))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := p.Step(); !errors.Is(err, busFault) {
		t.Fatalf("channel error: %v", err)
	}
}

func TestStaticSource_ZeroFillsMissingChannels(t *testing.T) {
	dst := []uint16{9, 9, 9}
	if err := (StaticSource{1}).Read(dst); err != nil {
		t.Fatal(err)
	}

	if dst[0] != 1 || dst[1] != 0 || dst[2] != 0 {
		t.Fatalf("dst = %v", dst)
	}
}

func TestPipeline_StepReusesBandSet(t *testing.T) {
	c := mustNew(t)
	p, err := NewPipeline(c, StaticSource{4095, 4095, 4095}, &wire.Recorder{})
	if err != nil {
		t.Fatal(err)
	}

	a, _ := p.Step()
	b, _ := p.Step()
	if &a[0] != &b[0] {
		t.Fatal("Step allocated a new BandSet")
	}

	if a[0] != fixed.Identity() {
		t.Fatalf("band 0 = %v", a[0])
	}
}
