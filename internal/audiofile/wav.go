package audiofile

import (
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WAV format tags.
const (
	wavFormatPCM   = 1
	wavFormatFloat = 3
)

// WAVDecoder decodes integer PCM and 32-bit float WAV files.
type WAVDecoder struct{}

// Extensions implements Decoder.
func (WAVDecoder) Extensions() []string { return []string{"wav"} }

// Decode implements Decoder.
func (WAVDecoder) Decode(r io.ReadSeeker) (*Clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: not a WAV stream", ErrInvalidFile)
	}

	channels := int(dec.NumChans)
	if channels < 1 {
		return nil, fmt.Errorf("%w: no channels", ErrInvalidFile)
	}

	bits := int(dec.BitDepth)
	convert, err := wavSampleFunc(int(dec.WavAudioFormat), bits)
	if err != nil {
		return nil, err
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	return &Clip{
		SampleRate: int(dec.SampleRate),
		Channels:   deinterleave(buf.Data, channels, convert),
		BitDepth:   bits,
		Format:     "WAV",
	}, nil
}

// wavSampleFunc returns the conversion from a decoded sample to [-1, 1).
// 8-bit PCM is unsigned with its midpoint at 128; float samples arrive as
// the raw IEEE 754 bit pattern.
func wavSampleFunc(format, bits int) (func(int) float64, error) {
	switch format {
	case wavFormatFloat:
		if bits != 32 {
			return nil, fmt.Errorf("%w: unsupported %d-bit float samples", ErrInvalidFile, bits)
		}
		return func(v int) float64 {
			return float64(math.Float32frombits(uint32(v)))
		}, nil
	case wavFormatPCM, 0xFFFE:
	default:
		return nil, fmt.Errorf("%w: unsupported WAV format tag %d", ErrInvalidFile, format)
	}

	fullScale, err := scale(bits)
	if err != nil {
		return nil, err
	}
	if bits == 8 {
		return func(v int) float64 { return float64(v-128) / fullScale }, nil
	}
	return func(v int) float64 { return float64(v) / fullScale }, nil
}

func deinterleave(data []int, channels int, convert func(int) float64) [][]float64 {
	frames := len(data) / channels
	out := make([][]float64, channels)
	for ch := range out {
		out[ch] = make([]float64, frames)
	}
	for i := 0; i < frames; i++ {
		for ch := 0; ch < channels; ch++ {
			out[ch][i] = convert(data[i*channels+ch])
		}
	}
	return out
}

// WriteWAV encodes clip as integer PCM at clip.BitDepth. Samples outside
// [-1, 1) are clipped.
func WriteWAV(w io.WriteSeeker, clip *Clip) error {
	if len(clip.Channels) == 0 {
		return fmt.Errorf("%w: no channels", ErrInvalidFile)
	}

	fullScale, err := scale(clip.BitDepth)
	if err != nil {
		return err
	}
	offset := 0
	if clip.BitDepth == 8 {
		offset = 128
	}

	channels := len(clip.Channels)
	frames := clip.Frames()
	data := make([]int, frames*channels)
	for ch, samples := range clip.Channels {
		if len(samples) != frames {
			return fmt.Errorf("%w: channel %d has %d samples, want %d", ErrInvalidFile, ch, len(samples), frames)
		}
		for i, v := range samples {
			data[i*channels+ch] = quantize(v, fullScale) + offset
		}
	}

	enc := wav.NewEncoder(w, clip.SampleRate, clip.BitDepth, channels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: clip.SampleRate},
		Data:           data,
		SourceBitDepth: clip.BitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}

func quantize(v, fullScale float64) int {
	q := v * fullScale
	switch {
	case q >= fullScale:
		q = fullScale - 1
	case q < -fullScale:
		q = -fullScale
	}
	if q < 0 {
		return int(q - 0.5)
	}
	return int(q + 0.5)
}
