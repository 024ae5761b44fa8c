// Package audiofile decodes audio files into per-channel float buffers for
// the analyzers. Only the CLI reads files; the measurement packages work on
// plain slices.
package audiofile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrUnsupportedFormat is returned for file extensions without a
	// registered decoder.
	ErrUnsupportedFormat = errors.New("audiofile: unsupported format")
	// ErrInvalidFile is returned when a stream cannot be decoded.
	ErrInvalidFile = errors.New("audiofile: invalid file")
)

// Clip is a fully decoded recording. Samples are scaled to [-1, 1).
type Clip struct {
	SampleRate int
	Channels   [][]float64
	BitDepth   int
	Format     string
}

// Frames returns the number of samples per channel.
func (c *Clip) Frames() int {
	if len(c.Channels) == 0 {
		return 0
	}
	return len(c.Channels[0])
}

// View is one channel selected for analysis.
type View struct {
	Label   string
	Samples []float64
}

// Views returns the channels to analyze. A mono clip and a stereo clip with
// identical channels yield a single view.
func (c *Clip) Views() []View {
	switch {
	case len(c.Channels) == 0:
		return nil
	case len(c.Channels) == 1:
		return []View{{Label: "Mono", Samples: c.Channels[0]}}
	case len(c.Channels) == 2 && equal(c.Channels[0], c.Channels[1]):
		return []View{{Label: "Stereo (identical channels)", Samples: c.Channels[0]}}
	}

	views := make([]View, len(c.Channels))
	for i, ch := range c.Channels {
		views[i] = View{Label: channelLabel(i, len(c.Channels)), Samples: ch}
	}
	return views
}

func channelLabel(i, n int) string {
	if n == 2 {
		return [...]string{"Left", "Right"}[i]
	}
	return fmt.Sprintf("Channel %d", i+1)
}

func equal(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Decoder turns an encoded stream into a Clip.
type Decoder interface {
	Decode(r io.ReadSeeker) (*Clip, error)
	Extensions() []string
}

// Registry maps lower-case file extensions (without dot) to decoders.
type Registry struct {
	decoders map[string]Decoder
}

// NewRegistry returns a registry with the WAV and FLAC decoders.
func NewRegistry() *Registry {
	r := &Registry{decoders: make(map[string]Decoder)}
	r.Register(WAVDecoder{})
	r.Register(FLACDecoder{})
	return r
}

// Register adds d for all its extensions, replacing earlier registrations.
func (r *Registry) Register(d Decoder) {
	for _, ext := range d.Extensions() {
		r.decoders[strings.ToLower(strings.TrimPrefix(ext, "."))] = d
	}
}

// Extensions lists the registered extensions in sorted order.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.decoders))
	for ext := range r.decoders {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Lookup returns the decoder for path's extension.
func (r *Registry) Lookup(path string) (Decoder, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return nil, fmt.Errorf("%w: no file extension: %s", ErrUnsupportedFormat, path)
	}

	d, ok := r.decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: .%s", ErrUnsupportedFormat, ext)
	}
	return d, nil
}

// Open decodes the file at path.
func (r *Registry) Open(path string) (*Clip, error) {
	d, err := r.Lookup(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	clip, err := d.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return clip, nil
}

// Open decodes path with the default registry.
func Open(path string) (*Clip, error) {
	return NewRegistry().Open(path)
}

// scale converts integer PCM to float with full scale at 1 << (bits-1).
func scale(bits int) (float64, error) {
	if bits < 1 || bits > 32 {
		return 0, fmt.Errorf("%w: unsupported bit depth %d", ErrInvalidFile, bits)
	}
	return float64(int64(1) << uint(bits-1)), nil
}
