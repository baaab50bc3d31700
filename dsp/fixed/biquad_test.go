package fixed

import (
	"testing"

	"github.com/cwbudde/algo-eqctl/dsp/filter/biquad"
)

func TestQuantize_Identity(t *testing.T) {
	q := Quantize(biquad.Identity())
	if q != Identity() || !q.IsIdentity() {
		t.Fatalf("Quantize(identity) = %+v", q)
	}

	if q.B0 != 0x4000 {
		t.Fatalf("B0 = %#x", q.B0)
	}
}

func TestQuantize_FieldsIndependent(t *testing.T) {
	c := biquad.Coefficients{B0: 0.25, B1: -0.5, B2: 3, A1: -1.75, A2: -4}
	got := Quantize(c)
	want := Biquad{B0: 4096, B1: -8192, B2: 32767, A1: -28672, A2: -32768}

	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestHardwareSignConvention(t *testing.T) {
	c := biquad.Coefficients{B0: 0.9, B1: -1.8, B2: 0.9, A1: -1.7, A2: 0.75}
	h := HardwareSignConvention(c)

	if h.B0 != c.B0 || h.B1 != c.B1 || h.B2 != c.B2 {
		t.Fatal("feedforward terms changed")
	}

	if h.A1 != 1.7 || h.A2 != -0.75 {
		t.Fatalf("feedback terms = %v, %v", h.A1, h.A2)
	}

	if c.A1 != -1.7 {
		t.Fatal("input modified")
	}

	q := Quantize(h)
	back := q.Float(true)
	if back.A1 >= 0 || back.A2 <= 0 {
		t.Fatalf("Float(true) did not restore textbook signs: %+v", back)
	}
}

func TestBiquad_WordsAndString(t *testing.T) {
	b := Biquad{B0: 0x4000, B1: -1, B2: 2, A1: -0x4000, A2: 0}
	if w := b.Words(); w != [5]int16{0x4000, -1, 2, -0x4000, 0} {
		t.Fatalf("Words = %v", w)
	}

	if s := b.String(); s != "4000 FFFF 0002 C000 0000" {
		t.Fatalf("String = %q", s)
	}
}

func TestBandSet_Float(t *testing.T) {
	set := BandSet{Identity(), {B0: 0x2000}}
	fl := set.Float(false)

	if len(fl) != 2 || !fl[0].IsIdentity() || fl[1].B0 != 0.5 {
		t.Fatalf("Float = %+v", fl)
	}
}
