// SPDX-License-Identifier: EPL-2.0

// Command audfeed plays an audio file (or a test tone) through the mixing
// pipeline. In a terminal it shows a small control screen; otherwise it plays
// the track once and exits.
//
// Settings come from AUDFEED_* environment variables and can be overridden
// with flags:
//
//	audfeed -track shot.wav -device beep -gain -6
//	audfeed -render -track music.ogg -out mixed.wav
//	audfeed -inspect asset.wav
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ik5/audfeed"
	"github.com/ik5/audfeed/audio"
	"github.com/ik5/audfeed/device"
	"github.com/ik5/audfeed/formats/wav"
	"github.com/ik5/audfeed/internal/config"
	"golang.org/x/sync/errgroup"
)

func main() {
	log.SetFlags(log.Ltime)
	log.SetPrefix("audfeed: ")

	cfg := config.Load()

	var (
		tone    = flag.Float64("tone", 440, "test tone frequency in Hz when no track is given")
		wave    = flag.String("wave", "sine", "test tone shape: sine or saw")
		render  = flag.Bool("render", false, "render offline to the wav device as fast as possible")
		inspect = flag.String("inspect", "", "print the header of a WAV file and exit")
	)
	flag.StringVar(&cfg.Device, "device", cfg.Device, "output device: oto, beep, wav or null")
	flag.StringVar(&cfg.Track, "track", cfg.Track, "audio file to play (wav, mp3, ogg, aiff)")
	flag.Float64Var(&cfg.GainDB, "gain", cfg.GainDB, "initial gain in dB")
	flag.IntVar(&cfg.SampleRate, "rate", cfg.SampleRate, "device sample rate in Hz")
	flag.DurationVar(&cfg.SubmitAhead, "ahead", cfg.SubmitAhead, "submit-ahead window")
	flag.DurationVar(&cfg.DeviceBuffer, "buffer", cfg.DeviceBuffer, "requested device buffer")
	flag.DurationVar(&cfg.Tick, "tick", cfg.Tick, "tick loop period")
	flag.StringVar(&cfg.Output, "out", cfg.Output, "output file for the wav device")
	flag.Parse()

	if *inspect != "" {
		if err := inspectFile(*inspect); err != nil {
			log.Fatalf("inspect: %v", err)
		}
		return
	}

	if *render {
		cfg.Device = device.KindWAV
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	track, err := loadTrack(cfg, *tone, *wave)
	if err != nil {
		log.Fatalf("track: %v", err)
	}

	dev, err := device.Open(cfg.Device, cfg.DeviceOptions())
	if err != nil {
		log.Fatalf("device: %v", err)
	}

	actx, err := audio.NewContext(dev, audio.Options{SubmitAhead: cfg.SubmitAhead, GainDB: cfg.GainDB})
	if err != nil {
		_ = dev.Close()
		log.Fatalf("audio: %v", err)
	}

	p := newPlayer(actx, track)

	switch {
	case *render:
		err = runRender(p, cfg)
	case interactive():
		err = runInteractive(p, cfg)
	default:
		err = runHeadless(p, cfg)
	}

	if cerr := actx.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}

func loadTrack(cfg config.Config, freq float64, shape string) (*audio.Track, error) {
	if cfg.Track != "" {
		track, err := audfeed.LoadTrackFile(cfg.Track, cfg.SampleRate)
		if err != nil {
			return nil, err
		}
		log.Printf("loaded %s: %d frames, %.2fs", filepath.Base(cfg.Track), track.Frames, track.Duration())
		return track, nil
	}

	var w audio.Waveform
	switch shape {
	case "sine":
		w = audio.SineWave
	case "saw":
		w = audio.SawtoothWave
	default:
		return nil, fmt.Errorf("unknown wave %q", shape)
	}

	log.Printf("no track given, using a %.0f Hz %s tone", freq, shape)
	return audio.NewToneTrack(cfg.SampleRate, 1, freq, w, 0.5)
}

func inspectFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := wav.Inspect(f)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s\n", path, info)
	if !info.Playable {
		fmt.Println("not playable: audfeed needs 16-bit stereo PCM")
	}

	return nil
}

func runRender(p *player, cfg config.Config) error {
	d, err := p.render(cfg.Tick)
	if err != nil {
		return err
	}

	log.Printf("rendered %s of audio to %s", d, cfg.Output)
	return nil
}

func runHeadless(p *player, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p.once = true
	p.st.Play(p.track)

	log.Printf("playing on %s", cfg.Device)
	if err := p.loop(ctx, cfg.Tick, nil, nil); err != nil {
		return err
	}
	log.Println("done")

	return nil
}

func runInteractive(p *player, cfg config.Config) error {
	title := "audfeed: " + cfg.Device
	if cfg.Track != "" {
		title += " - " + filepath.Base(cfg.Track)
	}

	u, err := newUI(title)
	if err != nil {
		return err
	}

	// The screen owns the terminal; hold log output until it is released.
	var logBuf bytes.Buffer
	log.SetOutput(&logBuf)
	defer func() {
		log.SetOutput(os.Stderr)
		_, _ = os.Stderr.Write(logBuf.Bytes())
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cmds := make(chan command, 8)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		return p.loop(gctx, cfg.Tick, cmds, u.draw)
	})
	g.Go(func() error {
		u.pollInput(gctx, cmds)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		u.close()
		return nil
	})

	err = g.Wait()
	if errors.Is(err, errQuit) {
		return nil
	}

	return err
}
