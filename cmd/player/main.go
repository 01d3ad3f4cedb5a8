// Command player is a thin host around the engine: it builds a graph from
// a PCM file, drives it through the output stager, and queues the result
// to a live SDL2 audio device, the way internal/ui/ui.go queued emulator
// audio samples.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/veandco/go-sdl2/sdl"

	"nitro-core-dx/graphaudio/internal/debug"
	"nitro-core-dx/graphaudio/internal/dsp"
	"nitro-core-dx/graphaudio/internal/graph"
	"nitro-core-dx/graphaudio/internal/pcm"
	"nitro-core-dx/graphaudio/internal/processor"
	"nitro-core-dx/graphaudio/internal/stager"
)

func main() {
	file := pflag.StringP("file", "f", "", "PCM file to play (header format per internal/pcm)")
	device := pflag.StringP("device", "d", "", "SDL audio device name (empty = system default)")
	gain := pflag.Float32P("gain", "g", 1.0, "linear output gain applied at the root")
	verbose := pflag.BoolP("verbose", "v", false, "log graph-management calls to stderr")
	pflag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "player: --file is required")
		os.Exit(2)
	}

	logger := debug.NewLogger(debug.LevelInfo)
	if !*verbose {
		logger = nil
	}

	err := run(*file, *device, *gain, logger)
	for _, e := range logger.Entries() {
		fmt.Fprintln(os.Stderr, e.Format())
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "player:", err)
		os.Exit(1)
	}
}

func run(file, device string, gain float32, logger *debug.Logger) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("open %s: %w", file, err)
	}
	defer f.Close()

	src, err := pcm.Open(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", file, err)
	}

	m := graph.NewManager()
	m.SetLogger(logger)
	rootGainID, err := m.AddNode(0, processor.NewGain(gain))
	if err != nil {
		return fmt.Errorf("build graph: %w", err)
	}

	if _, err := m.AddNode(rootGainID, processor.NewPcm(src)); err != nil {
		return fmt.Errorf("build graph: %w", err)
	}

	if err := sdl.Init(sdl.INIT_AUDIO); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	defer sdl.Quit()

	spec := sdl.AudioSpec{
		Freq:     dsp.SampleRate,
		Format:   sdl.AUDIO_S16SYS,
		Channels: 2,
		Samples:  dsp.LaneCount * 32,
	}
	dev, err := sdl.OpenAudioDevice(device, false, &spec, nil, 0)
	if err != nil {
		return fmt.Errorf("open audio device: %w", err)
	}
	defer sdl.CloseAudioDevice(dev)
	sdl.PauseAudioDevice(dev, false)

	st := stager.New(m)
	buf := make([]int16, spec.Samples*2)
	bytes := make([]byte, len(buf)*2)
	maxQueuedBytes := uint32(len(bytes) * 4)

	for {
		st.Write(buf)
		packLittleEndian(buf, bytes)
		for sdl.GetQueuedAudioSize(dev) >= maxQueuedBytes {
			sdl.Delay(1)
		}
		if err := sdl.QueueAudio(dev, bytes); err != nil {
			return fmt.Errorf("queue audio: %w", err)
		}
		if st.AtEOS() {
			break
		}
	}
	for sdl.GetQueuedAudioSize(dev) > 0 {
		sdl.Delay(5)
	}
	return nil
}

func packLittleEndian(in []int16, out []byte) {
	for i, v := range in {
		out[2*i] = byte(v)
		out[2*i+1] = byte(v >> 8)
	}
}
