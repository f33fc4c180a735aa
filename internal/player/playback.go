package player

import (
	"encoding/binary"
	"io"
	"sync"

	"github.com/ebitengine/oto/v3"
)

var (
	otoCtx     *oto.Context
	otoOnce    sync.Once
	otoInitErr error
)

func initOto(sampleRate, channels int) (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channels,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		otoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr == nil {
			<-ready
		}
	})
	return otoCtx, otoInitErr
}

// Playback feeds decoded frames to the sound card while the visual loop
// runs. Writes block on the pipe until the device drains them, which keeps
// the feed near real time.
type Playback struct {
	player *oto.Player
	pw     *io.PipeWriter
	buf    []byte
}

// NewPlayback opens an audio device matching the source stream.
func NewPlayback(sampleRate, channels int) (*Playback, error) {
	ctx, err := initOto(sampleRate, channels)
	if err != nil {
		return nil, err
	}

	pr, pw := io.Pipe()
	player := ctx.NewPlayer(pr)
	player.Play()
	return &Playback{player: player, pw: pw}, nil
}

// Write pushes one frame's samples to the device as s16le bytes.
func (p *Playback) Write(frame Frame) error {
	var raw []byte
	switch frame.Format {
	case FormatS16:
		raw = p.scratch(len(frame.S16) * 2)
		for i, s := range frame.S16 {
			binary.LittleEndian.PutUint16(raw[i*2:], uint16(s))
		}
	case FormatF32:
		raw = p.scratch(len(frame.F32) * 2)
		for i, s := range frame.F32 {
			if s > 1 {
				s = 1
			} else if s < -1 {
				s = -1
			}
			binary.LittleEndian.PutUint16(raw[i*2:], uint16(int16(s*32767)))
		}
	default:
		return nil
	}

	_, err := p.pw.Write(raw)
	return err
}

// scratch is safe to reuse across writes: an io.Pipe write returns only
// after the reader has consumed the bytes.
func (p *Playback) scratch(n int) []byte {
	if cap(p.buf) < n {
		p.buf = make([]byte, n)
	}
	return p.buf[:n]
}

// Close stops the device feed.
func (p *Playback) Close() error {
	_ = p.pw.Close()
	return p.player.Close()
}
