package audiofile

import (
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"
)

// maxPrealloc bounds the per-channel capacity taken from the stream header.
const maxPrealloc = 1 << 22

// preallocFrames returns the initial buffer capacity for a header sample
// count. The count is unverified; buffers grow past it as frames arrive.
func preallocFrames(headerSamples uint64) int {
	return int(min(headerSamples, maxPrealloc))
}

// FLACDecoder decodes FLAC streams.
type FLACDecoder struct{}

// Extensions implements Decoder.
func (FLACDecoder) Extensions() []string { return []string{"flac"} }

// Decode implements Decoder.
func (FLACDecoder) Decode(r io.ReadSeeker) (*Clip, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	defer stream.Close()

	info := stream.Info
	channels := int(info.NChannels)
	if channels < 1 {
		return nil, fmt.Errorf("%w: no channels", ErrInvalidFile)
	}

	bits := int(info.BitsPerSample)
	fullScale, err := scale(bits)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, channels)
	prealloc := preallocFrames(info.NSamples)
	for ch := range out {
		out[ch] = make([]float64, 0, prealloc)
	}

	for {
		frame, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
		}

		for ch := 0; ch < channels && ch < len(frame.Subframes); ch++ {
			for _, s := range frame.Subframes[ch].Samples {
				out[ch] = append(out[ch], float64(s)/fullScale)
			}
		}
	}

	return &Clip{
		SampleRate: int(info.SampleRate),
		Channels:   out,
		BitDepth:   bits,
		Format:     "FLAC",
	}, nil
}
