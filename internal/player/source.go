package player

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/olivier-w/barvis/internal/media"
)

// framesPerRead is the number of interleaved sample frames pulled per Next
// call, roughly one display frame of audio at 44.1 kHz.
const framesPerRead = 2048

// SampleFormat tags how a Frame carries its samples.
type SampleFormat uint8

const (
	FormatS16 SampleFormat = iota
	FormatF32
)

// Frame is one decoded buffer of interleaved samples.
type Frame struct {
	Format   SampleFormat
	Channels int
	S16      []int16
	F32      []float32
}

// Empty reports whether the frame carries no samples.
func (f Frame) Empty() bool {
	return len(f.S16) == 0 && len(f.F32) == 0
}

// Mono returns channel 0 as normalized float32 samples in [-1, 1].
func (f Frame) Mono() ([]float32, error) {
	ch := f.Channels
	if ch < 1 {
		ch = 1
	}
	switch f.Format {
	case FormatS16:
		out := make([]float32, len(f.S16)/ch)
		for i := range out {
			out[i] = float32(f.S16[i*ch]) / 32768.0
		}
		return out, nil
	case FormatF32:
		out := make([]float32, len(f.F32)/ch)
		for i := range out {
			out[i] = f.F32[i*ch]
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported sample format: %d", f.Format)
	}
}

// Source pulls fixed-size decoded frames from a media file.
type Source struct {
	dec  sampleDecoder
	file *os.File
}

// Open selects a decoder for path by extension. Formats without a native
// decoder fall back to ffmpeg when it is installed.
func Open(path string) (*Source, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !media.IsSupportedExt(ext) {
		dec, err := newFFmpegDecoder(path)
		if err != nil {
			return nil, fmt.Errorf("unsupported format %q: %w", ext, err)
		}
		return &Source{dec: dec}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	dec, err := newDecoder(f, ext)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &Source{dec: dec, file: f}, nil
}

func (s *Source) SampleRate() int   { return s.dec.SampleRate() }
func (s *Source) ChannelCount() int { return s.dec.ChannelCount() }

// Next returns the next decoded frame. It returns io.EOF once the stream is
// exhausted; a non-empty frame may accompany the final error.
func (s *Source) Next() (Frame, error) {
	channels := s.dec.ChannelCount()
	if channels < 1 {
		channels = 1
	}
	want := framesPerRead * channels

	switch dec := s.dec.(type) {
	case f32Decoder:
		buf := make([]float32, want)
		n, err := dec.ReadFloats(buf)
		return Frame{Format: FormatF32, Channels: channels, F32: buf[:n]}, err
	case s16Decoder:
		buf := make([]int16, want)
		n, err := dec.ReadSamples(buf)
		return Frame{Format: FormatS16, Channels: channels, S16: buf[:n]}, err
	default:
		return Frame{}, fmt.Errorf("decoder yields no samples")
	}
}

// Close releases the decoder and its backing file.
func (s *Source) Close() error {
	var err error
	if c, ok := s.dec.(io.Closer); ok {
		err = c.Close()
	}
	if s.file != nil {
		if cerr := s.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
