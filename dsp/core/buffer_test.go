package core

import "testing"

func TestCloneIsIndependent(t *testing.T) {
	src := []float64{1, 2, 3}
	out := Clone(src)
	out[0] = 42

	if src[0] != 1 {
		t.Fatalf("source modified: %#v", src)
	}
}

func TestZeroPad(t *testing.T) {
	out := ZeroPad([]float64{1, 2}, 4)
	want := []float64{1, 2, 0, 0}
	if len(out) != len(want) {
		t.Fatalf("len = %d, want %d", len(out), len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}

	if got := ZeroPad([]float64{1, 2, 3}, 2); len(got) != 3 {
		t.Fatalf("shorter target truncated input: len = %d", len(got))
	}
}

func TestRemoveDC(t *testing.T) {
	src := []float64{1, 2, 3, 6}
	out := RemoveDC(src)

	sum := 0.0
	for _, v := range out {
		sum += v
	}
	if !NearlyEqual(sum, 0, 1e-12) {
		t.Fatalf("sum after DC removal = %v, want 0", sum)
	}
	if src[0] != 1 {
		t.Fatalf("source modified: %#v", src)
	}
	if len(RemoveDC(nil)) != 0 {
		t.Fatal("expected empty result for empty input")
	}
}

func TestMean(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want float64
	}{
		{"empty", nil, 0},
		{"single", []float64{-2.5}, -2.5},
		{"ramp", []float64{1, 2, 3, 6}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mean(tt.in); got != tt.want {
				t.Fatalf("Mean = %v, want %v", got, tt.want)
			}
		})
	}
}
