package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/integrii/flaggy"
	"github.com/olivier-w/barvis/internal/media"
	"github.com/olivier-w/barvis/internal/player"
	"github.com/olivier-w/barvis/internal/util"
	"github.com/olivier-w/barvis/internal/visualizer"
)

const (
	appName = "barvis"
	appDesc = "terminal bipolar bar visualizer for audio files"
)

var version = "unknown"

var (
	summaryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"})

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#AAAAAA"})
)

func main() {
	log.SetFlags(0)

	var (
		path    string
		play    bool
		noTitle bool
	)

	parser := flaggy.NewParser(appName)
	parser.Description = appDesc
	parser.AdditionalHelpPrepend = "natively decoded formats: " + media.SupportedExtsList() +
		" (others via ffmpeg when installed)"
	parser.Version = version
	parser.AddPositionalValue(&path, "file", 1, true, "audio file to visualize")
	parser.Bool(&play, "p", "play", "also play the audio while visualizing")
	parser.Bool(&noTitle, "T", "no-title", "do not set the terminal window title")
	chk(parser.Parse(), "failed to parse arguments")

	info, err := os.Stat(path)
	chk(err, "cannot open input")
	if info.IsDir() {
		log.Fatalln(path + " is a directory")
	}

	src, err := player.Open(path)
	chk(err, "failed to open audio source")
	defer src.Close()

	meta := player.ReadMetadata(path)
	if !noTitle {
		setTerminalTitle(os.Stdout, meta.Display())
	}

	var sink *player.Playback
	if play {
		sink, err = player.NewPlayback(src.SampleRate(), src.ChannelCount())
		chk(err, "failed to open audio device")
		defer sink.Close()
	}

	vis := visualizer.New(os.Stdout)
	start := time.Now()

	// Decode one frame, render it, sleep, repeat. The fixed sleep is the
	// only pacing for the display; with --play the device drain adds
	// backpressure on top of it.
	for {
		frame, err := src.Next()
		if !frame.Empty() {
			mono, merr := frame.Mono()
			if merr != nil {
				fmt.Fprintf(os.Stderr, "skipping frame: %v\n", merr)
			} else {
				chk(vis.Render(mono), "failed to write frame")
			}
			if sink != nil {
				if werr := sink.Write(frame); werr != nil {
					fmt.Fprintf(os.Stderr, "playback stopped: %v\n", werr)
					sink = nil
				}
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			chk(err, "decode error")
		}
		time.Sleep(visualizer.FrameDelay)
	}

	fmt.Printf("\x1b[0m\n%s %s\n",
		summaryStyle.Render(meta.Display()),
		detailStyle.Render("("+util.FormatDuration(time.Since(start))+")"))
}

// setTerminalTitle puts s in the terminal window title, where track info
// survives the full-screen repaint of every frame.
func setTerminalTitle(w io.Writer, s string) {
	fmt.Fprintf(w, "\x1b]2;%s\x07", s)
}

func chk(err error, wrap string) {
	if err != nil {
		log.Fatalln(wrap+":", err)
	}
}
