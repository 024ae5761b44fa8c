package bilinear

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-waveform/dsp/filter/analog"
	"github.com/cwbudde/algo-waveform/internal/testutil"
)

// bandpass is a sixth-order prototype with real and complex poles and
// zeros at DC, similar in shape to the weighting curves.
func bandpass() analog.Prototype {
	p := analog.Prototype{
		Zeros: []complex128{0, 0, 0},
		Poles: []complex128{
			complex(-2*math.Pi*30, 0),
			complex(-2*math.Pi*30, 0),
			complex(-4000, 9000),
			complex(-4000, -9000),
			complex(-2*math.Pi*9000, 0),
			complex(-2*math.Pi*300, 0),
		},
		Gain: 1,
	}

	p, err := p.Normalize(1000, 0)
	if err != nil {
		panic(err)
	}

	return p
}

func warped(f, fs float64) float64 {
	return fs / math.Pi * math.Tan(math.Pi*f/fs)
}

func TestTransformSinglePole(t *testing.T) {
	const fs = 48000.0
	wc := 2 * math.Pi * 1000
	p := analog.Prototype{Poles: []complex128{complex(-wc, 0)}, Gain: wc}

	zpk, err := Transform(p, fs)
	if err != nil {
		t.Fatal(err)
	}

	tf, err := zpk.TF()
	if err != nil {
		t.Fatal(err)
	}

	k := wc / (wc + 2*fs)
	wantB := []float64{k, k}
	wantA := []float64{1, (wc - 2*fs) / (wc + 2*fs)}

	testutil.RequireSliceNearlyEqual(t, tf.B, wantB, 1e-12)
	testutil.RequireSliceNearlyEqual(t, tf.A, wantA, 1e-12)
}

func TestDigitalMatchesAnalogAtWarpedFrequency(t *testing.T) {
	p := bandpass()

	for _, fs := range []float64{44100, 48000, 96000} {
		zpk, err := Transform(p, fs)
		if err != nil {
			t.Fatal(err)
		}

		for _, f := range []float64{20, 100, 1000, 5000, 15000} {
			got := zpk.Response(f)
			want := p.Response(warped(f, fs))
			if cmplx.Abs(got-want) > 1e-9*cmplx.Abs(want) {
				t.Fatalf("fs=%v f=%v: got %v want %v", fs, f, got, want)
			}
		}
	}
}

func TestFormsAgree(t *testing.T) {
	const fs = 48000.0
	p := bandpass()

	filters := make(map[Form]Filter)
	for _, form := range []Form{FormTF, FormZPK, FormSOS} {
		f, err := Discretize(p, fs, form)
		if err != nil {
			t.Fatalf("%v: %v", form, err)
		}
		if f.Form() != form {
			t.Fatalf("Form() = %v, want %v", f.Form(), form)
		}
		filters[form] = f
	}

	for f := 100.0; f <= 16000; f *= 1.25 {
		ref := filters[FormZPK].MagnitudeDB(f)
		for _, form := range []Form{FormTF, FormSOS} {
			if got := filters[form].MagnitudeDB(f); math.Abs(got-ref) > 1e-6 {
				t.Fatalf("f=%v: %v gives %v dB, zpk %v dB", f, form, got, ref)
			}
		}
	}

	noise := testutil.DeterministicNoise(7, 1, 2048)
	sos := filters[FormSOS].Filter(noise)
	zpk := filters[FormZPK].Filter(noise)
	tf := filters[FormTF].Filter(noise)

	if d, _ := testutil.MaxAbsDiff(sos, zpk); d > 1e-12 {
		t.Fatalf("sos vs zpk filter output differs by %v", d)
	}
	if d, _ := testutil.MaxAbsDiff(sos, tf); d > 1e-6 {
		t.Fatalf("sos vs tf filter output differs by %v", d)
	}
}

func TestSOSStructure(t *testing.T) {
	const fs = 48000.0

	zpk, err := Transform(bandpass(), fs)
	if err != nil {
		t.Fatal(err)
	}

	sos, err := zpk.SOS()
	if err != nil {
		t.Fatal(err)
	}

	if len(sos.Sections) != 3 {
		t.Fatalf("sections: got %d want 3", len(sos.Sections))
	}

	chain := sos.Chain()
	if !chain.Stable() {
		t.Fatal("unstable cascade")
	}
	if chain.Order() != 6 {
		t.Fatalf("order: got %d want 6", chain.Order())
	}

	// The pole closest to the unit circle must sit in the last section.
	worst := 0.0
	for _, p := range zpk.Poles {
		worst = math.Max(worst, cmplx.Abs(p))
	}

	last := sos.Sections[len(sos.Sections)-1].Poles()
	if got := math.Max(cmplx.Abs(last[0]), cmplx.Abs(last[1])); math.Abs(got-worst) > 1e-12 {
		t.Fatalf("last section pole radius %v, want %v", got, worst)
	}
}

func TestSOSOddOrder(t *testing.T) {
	p := analog.Prototype{
		Zeros: []complex128{0},
		Poles: []complex128{complex(-100, 0), complex(-2000, 3000), complex(-2000, -3000)},
		Gain:  5000,
	}

	zpk, err := Transform(p, 48000)
	if err != nil {
		t.Fatal(err)
	}

	sos, err := zpk.SOS()
	if err != nil {
		t.Fatal(err)
	}

	if len(sos.Sections) != 2 {
		t.Fatalf("sections: got %d want 2", len(sos.Sections))
	}
	if got := sos.Chain().Order(); got != 3 {
		t.Fatalf("order: got %d want 3", got)
	}

	for _, f := range []float64{50, 500, 5000} {
		if d := math.Abs(sos.MagnitudeDB(f) - zpk.MagnitudeDB(f)); d > 1e-9 {
			t.Fatalf("f=%v: sos and zpk differ by %v dB", f, d)
		}
	}
}

func TestFlatPrototype(t *testing.T) {
	f, err := Discretize(analog.Prototype{Gain: 2}, 48000, FormSOS)
	if err != nil {
		t.Fatal(err)
	}

	out := f.Filter([]float64{1, -1, 0.5})
	testutil.RequireSliceNearlyEqual(t, out, []float64{2, -2, 1}, 0)
}

func TestDiscretizeInvalid(t *testing.T) {
	good := bandpass()

	tests := []struct {
		name string
		p    analog.Prototype
		fs   float64
		form Form
	}{
		{name: "zero rate", p: good, fs: 0, form: FormSOS},
		{name: "negative rate", p: good, fs: -48000, form: FormSOS},
		{name: "NaN rate", p: good, fs: math.NaN(), form: FormTF},
		{name: "infinite rate", p: good, fs: math.Inf(1), form: FormTF},
		{name: "unknown form", p: good, fs: 48000, form: Form(9)},
		{name: "zero form", p: good, fs: 48000},
		{name: "unpaired pole", p: analog.Prototype{Poles: []complex128{complex(-1, 1)}, Gain: 1}, fs: 48000, form: FormZPK},
		{name: "improper", p: analog.Prototype{Zeros: []complex128{0, 0}, Poles: []complex128{-1}, Gain: 1}, fs: 48000, form: FormZPK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Discretize(tt.p, tt.fs, tt.form); !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("got %v want ErrInvalidArgument", err)
			}
		})
	}
}

func TestParseForm(t *testing.T) {
	for in, want := range map[string]Form{"tf": FormTF, "ZPK": FormZPK, " sos ": FormSOS} {
		got, err := ParseForm(in)
		if err != nil || got != want {
			t.Fatalf("ParseForm(%q) = %v, %v; want %v", in, got, err, want)
		}
		if got.String() != want.String() {
			t.Fatalf("String mismatch for %q", in)
		}
	}

	if _, err := ParseForm("ba"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("ParseForm(ba): got %v want ErrInvalidArgument", err)
	}
}
