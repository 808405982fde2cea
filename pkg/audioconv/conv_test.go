package audioconv

import (
	"math"
	"testing"
)

func TestDownmixAveragesChannels(t *testing.T) {
	in := []float32{1, 0, 0.5, 0.5, -1, 1}
	got := downmix(in, 2)
	want := []float32{0.5, 0.5, 0}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Errorf("frame %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestResampleHalvesSampleCount(t *testing.T) {
	in := make([]float32, 480)
	for i := range in {
		in[i] = float32(i) / float32(len(in))
	}
	got := resample(in, 48000, 16000)
	if len(got) != 160 {
		t.Fatalf("len = %d, want 160", len(got))
	}
	// A monotonic ramp must stay monotonic after linear interpolation.
	for i := 1; i < len(got); i++ {
		if got[i] < got[i-1] {
			t.Fatalf("output not monotonic at sample %d", i)
		}
	}
}

func TestResampleSameRateIsIdentity(t *testing.T) {
	in := []float32{0.1, 0.2, 0.3}
	got := resample(in, 16000, 16000)
	if len(got) != len(in) {
		t.Fatalf("len = %d, want %d", len(got), len(in))
	}
	for i := range in {
		if got[i] != in[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], in[i])
		}
	}
}

func TestInt16ConversionRange(t *testing.T) {
	got := int16sToFloat32([]int16{-32768, 0, 32767})
	if got[0] != -1 {
		t.Errorf("min = %v, want -1", got[0])
	}
	if got[1] != 0 {
		t.Errorf("zero = %v, want 0", got[1])
	}
	if got[2] <= 0.999 || got[2] > 1 {
		t.Errorf("max = %v, want just under 1", got[2])
	}
}

func TestIntConversionClips(t *testing.T) {
	got := intsToFloat32([]int{40000, -40000}, 16)
	if got[0] != 1 || got[1] != -1 {
		t.Errorf("got %v, want clipped to [1 -1]", got)
	}
}
