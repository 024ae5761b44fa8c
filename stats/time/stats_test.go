package time

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-waveform/dsp/core"
)

const tolerance = 1e-10

func almostEqual(a, b, tol float64) bool {
	if math.IsInf(a, -1) && math.IsInf(b, -1) {
		return true
	}
	if math.IsInf(a, 1) && math.IsInf(b, 1) {
		return true
	}
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return math.Abs(a-b) <= tol
}

// generateSine creates a sine wave with the given amplitude, frequency, and sample rate.
// It generates exactly numCycles full cycles.
func generateSine(amplitude, freq, sampleRate float64, numCycles int) []float64 {
	samplesPerCycle := int(sampleRate / freq)
	n := samplesPerCycle * numCycles
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*freq*float64(i)/sampleRate)
	}
	return out
}

// generateDC creates a constant signal.
func generateDC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// generateSquare creates a +val/-val alternating square wave.
func generateSquare(val float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		if i%2 == 0 {
			out[i] = val
		} else {
			out[i] = -val
		}
	}
	return out
}

func TestCalculate_DCSignal(t *testing.T) {
	signal := generateDC(1.0, 1000)
	s := Calculate(signal)

	if s.Length != 1000 {
		t.Errorf("Length: got %d, want 1000", s.Length)
	}
	if !almostEqual(s.DC, 1.0, tolerance) {
		t.Errorf("DC: got %g, want 1.0", s.DC)
	}
	if !almostEqual(s.RMS, 1.0, tolerance) {
		t.Errorf("RMS: got %g, want 1.0", s.RMS)
	}
	if !almostEqual(s.Peak, 1.0, tolerance) {
		t.Errorf("Peak: got %g, want 1.0", s.Peak)
	}
	if !almostEqual(s.CrestFactor, 1.0, tolerance) {
		t.Errorf("CrestFactor: got %g, want 1.0", s.CrestFactor)
	}
	if s.RisingEdges != 0 {
		t.Errorf("RisingEdges: got %d, want 0", s.RisingEdges)
	}
	if !almostEqual(s.DCdB(), 0, tolerance) {
		t.Errorf("DCdB: got %g, want 0", s.DCdB())
	}
	if !almostEqual(s.RMSdB(), 0, tolerance) {
		t.Errorf("RMSdB: got %g, want 0", s.RMSdB())
	}
	if !almostEqual(s.CrestFactordB(), 0, tolerance) {
		t.Errorf("CrestFactordB: got %g, want 0", s.CrestFactordB())
	}
}

func TestCalculate_SineWave(t *testing.T) {
	// 1000 Hz sine at 48000 SR, 10 full cycles.
	signal := generateSine(1.0, 1000, 48000, 10)
	s := Calculate(signal)

	expectedRMS := 1.0 / math.Sqrt(2)
	if !almostEqual(s.RMS, expectedRMS, 1e-6) {
		t.Errorf("RMS: got %g, want %g", s.RMS, expectedRMS)
	}
	if !almostEqual(s.DC, 0, 1e-10) {
		t.Errorf("DC: got %g, want ~0", s.DC)
	}
	if !almostEqual(s.Peak, 1.0, 1e-12) {
		t.Errorf("Peak: got %g, want 1.0", s.Peak)
	}
	if s.PeakPos != 12 {
		t.Errorf("PeakPos: got %d, want 12", s.PeakPos)
	}
	if !almostEqual(s.CrestFactor, math.Sqrt2, 1e-6) {
		t.Errorf("CrestFactor: got %g, want %g", s.CrestFactor, math.Sqrt2)
	}
	if !almostEqual(s.CrestFactordB(), 20*math.Log10(math.Sqrt2), 1e-5) {
		t.Errorf("CrestFactordB: got %g, want ~3.0103", s.CrestFactordB())
	}
	// The signal starts on zero going up, so only the nine interior
	// negative-to-positive transitions count.
	if s.RisingEdges != 9 {
		t.Errorf("RisingEdges: got %d, want 9", s.RisingEdges)
	}
}

func TestCalculate_SquareWave(t *testing.T) {
	signal := generateSquare(1.0, 1000)
	s := Calculate(signal)

	if !almostEqual(s.DC, 0, tolerance) {
		t.Errorf("DC: got %g, want 0", s.DC)
	}
	if !almostEqual(s.RMS, 1.0, tolerance) {
		t.Errorf("RMS: got %g, want 1.0", s.RMS)
	}
	if !almostEqual(s.CrestFactor, 1.0, tolerance) {
		t.Errorf("CrestFactor: got %g, want 1.0", s.CrestFactor)
	}
	if s.RisingEdges != 499 {
		t.Errorf("RisingEdges: got %d, want 499", s.RisingEdges)
	}
}

func TestCalculate_EmptySignal(t *testing.T) {
	s := Calculate(nil)

	if s.Length != 0 || s.DC != 0 || s.RMS != 0 || s.Peak != 0 {
		t.Errorf("got %+v, want zero Stats", s)
	}
	if !math.IsInf(s.RMSdB(), -1) {
		t.Errorf("RMSdB: got %g, want -Inf", s.RMSdB())
	}
	if !math.IsInf(s.PeakdB(), -1) {
		t.Errorf("PeakdB: got %g, want -Inf", s.PeakdB())
	}
	if !math.IsInf(s.CrestFactordB(), -1) {
		t.Errorf("CrestFactordB: got %g, want -Inf", s.CrestFactordB())
	}
}

func TestCalculate_ZeroSignal(t *testing.T) {
	s := Calculate(make([]float64, 100))

	if s.RMS != 0 || s.Peak != 0 {
		t.Errorf("RMS/Peak: got %g/%g, want 0/0", s.RMS, s.Peak)
	}
	if s.CrestFactor != 0 {
		t.Errorf("CrestFactor: got %g, want 0", s.CrestFactor)
	}
}

func TestCalculate_NegativePeak(t *testing.T) {
	s := Calculate([]float64{0.1, -0.9, 0.5})

	if !almostEqual(s.Peak, 0.9, tolerance) || s.PeakPos != 1 {
		t.Errorf("Peak: got %g at %d, want 0.9 at 1", s.Peak, s.PeakPos)
	}
	if !almostEqual(s.PeakdB(), 20*math.Log10(0.9), tolerance) {
		t.Errorf("PeakdB: got %g", s.PeakdB())
	}
}

func TestDC_KahanPrecision(t *testing.T) {
	signal := make([]float64, 100001)
	for i := range signal {
		signal[i] = 1e8
	}
	signal[0] = 1e8 + 100001*1e-3

	want := 1e8 + 1e-3
	if got := DC(signal); !almostEqual(got, want, 1e-7) {
		t.Fatalf("DC: got %.10f want %.10f", got, want)
	}
}

func TestDCMatchesRemoveDC(t *testing.T) {
	signal := generateSine(0.7, 440, 44100, 5)
	for i := range signal {
		signal[i] += 0.05
	}

	dc := DC(signal)
	removed := core.RemoveDC(signal)
	for i := range signal {
		if removed[i] != signal[i]-dc {
			t.Fatalf("sample %d: got %v want %v", i, removed[i], signal[i]-dc)
		}
	}
	if got := DC(removed); !almostEqual(got, 0, 1e-15) {
		t.Fatalf("DC after removal: got %g want 0", got)
	}
}

func TestStandaloneFunctionsMatchCalculate(t *testing.T) {
	signal := generateSine(0.7, 440, 44100, 5)
	for i := range signal {
		signal[i] += 0.05
	}

	s := Calculate(signal)

	if got := RMS(signal); !almostEqual(got, s.RMS, 1e-12) {
		t.Errorf("RMS: got %g want %g", got, s.RMS)
	}
	if got := DC(signal); !almostEqual(got, s.DC, 1e-12) {
		t.Errorf("DC: got %g want %g", got, s.DC)
	}
	if got := Peak(signal); !almostEqual(got, s.Peak, 1e-12) {
		t.Errorf("Peak: got %g want %g", got, s.Peak)
	}
	if got := CrestFactor(signal); !almostEqual(got, s.CrestFactor, 1e-12) {
		t.Errorf("CrestFactor: got %g want %g", got, s.CrestFactor)
	}
}

func TestStandaloneFunctionsEmpty(t *testing.T) {
	if RMS(nil) != 0 || DC(nil) != 0 || Peak(nil) != 0 || CrestFactor(nil) != 0 {
		t.Fatal("empty input should yield zeros")
	}
	if RisingEdges(nil) != nil || RisingEdges([]float64{-1}) != nil {
		t.Fatal("short input should yield no edges")
	}
}

func TestRisingEdges(t *testing.T) {
	tests := []struct {
		name   string
		signal []float64
		want   []int
	}{
		{"alternating", []float64{-1, 0, 1, 0, -1, 0, 1, 0}, []int{0, 4}},
		{"falling only", []float64{1, 0.5, 0, -0.5, -1}, nil},
		{"zero is non-negative", []float64{-1, 0, -1, 0}, []int{0, 2}},
		{"zero to positive is not an edge", []float64{0, 1, 0, 1}, nil},
		{"step", []float64{-3, -2, 5}, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RisingEdges(tt.signal)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v want %v", got, tt.want)
				}
			}
		})
	}
}
