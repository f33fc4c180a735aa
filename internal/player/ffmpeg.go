package player

import (
	"encoding/binary"
	"fmt"
	"io"
	"os/exec"
	"sync"
)

const (
	ffmpegSampleRate = 44100
	ffmpegChannels   = 2
)

// ffmpegDecoder shells out to ffmpeg for formats without a native decoder,
// reading raw s16le PCM from its stdout.
type ffmpegDecoder struct {
	cmd       *exec.Cmd
	stdout    io.ReadCloser
	buf       []byte
	waitDone  chan struct{}
	closeOnce sync.Once
}

func newFFmpegDecoder(path string) (*ffmpegDecoder, error) {
	ffmpeg, err := exec.LookPath("ffmpeg")
	if err != nil {
		return nil, fmt.Errorf("ffmpeg not found (required for this format)")
	}

	cmd := exec.Command(
		ffmpeg,
		"-nostdin",
		"-hide_banner",
		"-loglevel", "error",
		"-i", path,
		"-vn",
		"-ac", "2",
		"-ar", "44100",
		"-f", "s16le",
		"pipe:1",
	)
	cmd.Stdin = nil
	cmd.Stderr = io.Discard

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("setting up ffmpeg: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting ffmpeg: %w", err)
	}

	d := &ffmpegDecoder{cmd: cmd, stdout: stdout, waitDone: make(chan struct{})}
	go func() {
		_ = cmd.Wait()
		close(d.waitDone)
	}()
	return d, nil
}

func (d *ffmpegDecoder) SampleRate() int   { return ffmpegSampleRate }
func (d *ffmpegDecoder) ChannelCount() int { return ffmpegChannels }

func (d *ffmpegDecoder) ReadSamples(dst []int16) (int, error) {
	want := len(dst) * 2
	if len(d.buf) < want {
		d.buf = make([]byte, want)
	}
	n, err := io.ReadFull(d.stdout, d.buf[:want])
	if err == io.ErrUnexpectedEOF {
		err = io.EOF
	}
	for i := 0; i < n/2; i++ {
		dst[i] = int16(binary.LittleEndian.Uint16(d.buf[i*2:]))
	}
	return n / 2, err
}

func (d *ffmpegDecoder) Close() error {
	d.closeOnce.Do(func() {
		_ = d.stdout.Close()
		if d.cmd.Process != nil {
			_ = d.cmd.Process.Kill()
		}
		<-d.waitDone
	})
	return nil
}
