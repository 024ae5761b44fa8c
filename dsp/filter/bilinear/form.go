package bilinear

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument reports an invalid sample rate, form or prototype.
var ErrInvalidArgument = errors.New("bilinear: invalid argument")

// Form selects the representation returned by Discretize.
type Form int

const (
	FormTF Form = iota + 1
	FormZPK
	FormSOS
)

func (f Form) String() string {
	switch f {
	case FormTF:
		return "tf"
	case FormZPK:
		return "zpk"
	case FormSOS:
		return "sos"
	default:
		return fmt.Sprintf("Form(%d)", int(f))
	}
}

func (f Form) valid() bool {
	return f >= FormTF && f <= FormSOS
}

// ParseForm maps "tf", "zpk" and "sos" (case-insensitive) to a Form.
func ParseForm(s string) (Form, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tf":
		return FormTF, nil
	case "zpk":
		return FormZPK, nil
	case "sos":
		return FormSOS, nil
	default:
		return 0, fmt.Errorf("%w: unknown filter form %q", ErrInvalidArgument, s)
	}
}

// Filter is a discretized filter in any of the three forms. All forms of
// the same design agree on Response and, up to rounding, on Filter.
type Filter interface {
	// Form reports the representation.
	Form() Form
	// Response returns H(e^jw) at freqHz.
	Response(freqHz float64) complex128
	// MagnitudeDB returns 20·log10|H| at freqHz.
	MagnitudeDB(freqHz float64) float64
	// Filter returns a filtered copy of signal, starting from zero state.
	Filter(signal []float64) []float64
}
