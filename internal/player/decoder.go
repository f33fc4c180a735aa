package player

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	mp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	"github.com/mewkiz/flac"
)

// sampleDecoder describes one decoded audio stream.
type sampleDecoder interface {
	SampleRate() int
	ChannelCount() int
}

// s16Decoder yields interleaved signed 16-bit samples.
type s16Decoder interface {
	sampleDecoder
	ReadSamples(dst []int16) (int, error)
}

// f32Decoder yields interleaved normalized float32 samples.
type f32Decoder interface {
	sampleDecoder
	ReadFloats(dst []float32) (int, error)
}

// newDecoder selects a native decoder by file extension.
func newDecoder(f *os.File, ext string) (sampleDecoder, error) {
	switch ext {
	case ".mp3":
		return newMP3Decoder(f)
	case ".wav":
		return newWAVDecoder(f)
	case ".flac":
		return newFLACDecoder(f)
	case ".ogg":
		return newOGGDecoder(f)
	default:
		return nil, fmt.Errorf("no native decoder for %s", ext)
	}
}

// --- MP3 decoder ---

type mp3Decoder struct {
	dec *mp3.Decoder
	buf []byte
}

func newMP3Decoder(f *os.File) (*mp3Decoder, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("decoding MP3: %w", err)
	}
	return &mp3Decoder{dec: dec}, nil
}

func (d *mp3Decoder) SampleRate() int { return d.dec.SampleRate() }

// go-mp3 always emits two channels.
func (d *mp3Decoder) ChannelCount() int { return 2 }

func (d *mp3Decoder) ReadSamples(dst []int16) (int, error) {
	want := len(dst) * 2
	if len(d.buf) < want {
		d.buf = make([]byte, want)
	}
	n, err := d.dec.Read(d.buf[:want])
	for i := 0; i < n/2; i++ {
		dst[i] = int16(binary.LittleEndian.Uint16(d.buf[i*2:]))
	}
	return n / 2, err
}

// --- WAV decoder ---

type wavDecoder struct {
	dec    *wav.Decoder
	intBuf *audio.IntBuffer
}

func newWAVDecoder(f *os.File) (*wavDecoder, error) {
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file")
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("reading WAV PCM data: %w", err)
	}
	return &wavDecoder{dec: dec}, nil
}

func (d *wavDecoder) SampleRate() int   { return int(d.dec.SampleRate) }
func (d *wavDecoder) ChannelCount() int { return int(d.dec.NumChans) }

func (d *wavDecoder) ReadSamples(dst []int16) (int, error) {
	if d.intBuf == nil || len(d.intBuf.Data) != len(dst) {
		d.intBuf = &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: int(d.dec.NumChans),
				SampleRate:  int(d.dec.SampleRate),
			},
			Data: make([]int, len(dst)),
		}
	}

	n, err := d.dec.PCMBuffer(d.intBuf)
	if n == 0 && err == nil {
		return 0, io.EOF
	}

	bitDepth := int(d.dec.BitDepth)
	for i := 0; i < n; i++ {
		v := d.intBuf.Data[i]
		switch bitDepth {
		case 8:
			// 8-bit WAV is unsigned
			v = (v - 128) << 8
		case 24:
			v >>= 8
		case 32:
			v >>= 16
		}
		if v > 32767 {
			v = 32767
		} else if v < -32768 {
			v = -32768
		}
		dst[i] = int16(v)
	}
	return n, err
}

// --- FLAC decoder ---

type flacDecoder struct {
	stream  *flac.Stream
	pending []int16
}

func newFLACDecoder(f *os.File) (*flacDecoder, error) {
	stream, err := flac.New(f)
	if err != nil {
		return nil, fmt.Errorf("decoding FLAC: %w", err)
	}
	return &flacDecoder{stream: stream}, nil
}

func (d *flacDecoder) SampleRate() int   { return int(d.stream.Info.SampleRate) }
func (d *flacDecoder) ChannelCount() int { return int(d.stream.Info.NChannels) }

func (d *flacDecoder) ReadSamples(dst []int16) (int, error) {
	if len(d.pending) == 0 {
		frame, err := d.stream.ParseNext()
		if err != nil {
			return 0, err
		}

		channels := len(frame.Subframes)
		nSamples := int(frame.Subframes[0].NSamples)
		bps := int(d.stream.Info.BitsPerSample)

		interleaved := make([]int16, 0, nSamples*channels)
		for i := 0; i < nSamples; i++ {
			for ch := 0; ch < channels; ch++ {
				s := int(frame.Subframes[ch].Samples[i])
				switch {
				case bps > 16:
					s >>= bps - 16
				case bps < 16:
					s <<= 16 - bps
				}
				if s > 32767 {
					s = 32767
				} else if s < -32768 {
					s = -32768
				}
				interleaved = append(interleaved, int16(s))
			}
		}
		d.pending = interleaved
	}

	n := copy(dst, d.pending)
	d.pending = d.pending[n:]
	return n, nil
}

// --- OGG Vorbis decoder ---

type oggDecoder struct {
	reader *oggvorbis.Reader
}

func newOGGDecoder(f *os.File) (*oggDecoder, error) {
	reader, err := oggvorbis.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("decoding OGG: %w", err)
	}
	return &oggDecoder{reader: reader}, nil
}

func (d *oggDecoder) SampleRate() int   { return d.reader.SampleRate() }
func (d *oggDecoder) ChannelCount() int { return d.reader.Channels() }

func (d *oggDecoder) ReadFloats(dst []float32) (int, error) {
	return d.reader.Read(dst)
}
