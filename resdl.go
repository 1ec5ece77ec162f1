// This file is part of Resdl.
//
// Resdl is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Resdl is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Resdl.  If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/resdl/resdl/config"
	"github.com/resdl/resdl/engine"
	"github.com/resdl/resdl/games"
	"github.com/resdl/resdl/headless"
	"github.com/resdl/resdl/input"
	"github.com/resdl/resdl/logger"
	"github.com/resdl/resdl/monitor"
	"github.com/resdl/resdl/profile"
	"github.com/resdl/resdl/random"
	"github.com/resdl/resdl/sdlinput"
	"github.com/resdl/resdl/sdlwindow"
	"github.com/resdl/resdl/sound"
	"github.com/resdl/resdl/statsview"
	"github.com/resdl/resdl/termkeys"
	"github.com/resdl/resdl/version"
	"github.com/spf13/pflag"
)

// frame rate of the headless platform
const headlessRefresh = 60

// how long to wait for the monitor to shutdown
const shutdownTimeout = time.Second

// the terminal used for keyboard input in headless mode. replaceable for
// testing
var openTerminal = func() (*termkeys.Keyboard, error) {
	return termkeys.Open("/dev/tty")
}

// #mainthread
func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

func launch(args []string, output io.Writer) int {
	cfg, err := config.Load(args, output)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(output, "* %v\n", err)
		return 10
	}

	if cfg.Version {
		fmt.Fprintln(output, version.String())
		return 0
	}

	if cfg.EchoLog {
		logger.SetEcho(os.Stderr, false)
	}

	logger.Logf(logger.Allow, "resdl", "%s: %s", version.String(), cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Headless {
		err = runHeadless(ctx, cfg, output)
	} else {
		err = runWindow(ctx, cfg, output)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(output, "* error in %s mode: %v\n", cfg.Mode, err)
		return 20
	}

	return 0
}

func runWindow(ctx context.Context, cfg config.Config, output io.Writer) error {
	win, err := sdlwindow.NewWindow(fmt.Sprintf("%s: %s", version.ApplicationName, cfg.Mode), cfg.Width, cfg.Height, cfg.PixelAspect, cfg.Scale)
	if err != nil {
		return err
	}
	defer func() {
		if err := win.Destroy(); err != nil {
			logger.Logf(logger.Allow, "resdl", "%v", err)
		}
	}()

	in := input.NewManager(sdlinput.NewKeyboard())
	defer in.Close()

	eng, prof, err := setup(cfg, win, in)
	if err != nil {
		return err
	}

	// devices are bound as they are found. including devices that are
	// attached after the program has started
	devices := sdlinput.NewDevices(in.Devices, func(id input.DeviceID, kind input.DeviceKind) {
		err := prof.ApplyDevice(in.Bindings, id, kind)
		if err != nil {
			logger.Logf(logger.Allow, "resdl", "%v", err)
		}
	})
	devices.Scan()
	eng.Events.SetHandler(engine.EventDeviceAdded, func(_ engine.Event) {
		devices.Scan()
	})

	if cfg.Music != "" {
		ply, err := playMusic(cfg.Music)
		if err != nil {
			logger.Logf(logger.Allow, "resdl", "%v", err)
		} else {
			defer ply.Close()
			if _, err := eng.Add(ply); err != nil {
				return err
			}
		}
	}

	return run(ctx, cfg, eng, in, output)
}

func runHeadless(ctx context.Context, cfg config.Config, output io.Writer) error {
	plt, err := headless.NewPlatform(cfg.Width, cfg.Height, cfg.FrameDir, headlessRefresh)
	if err != nil {
		return err
	}
	defer func() {
		if err := plt.Destroy(); err != nil {
			logger.Logf(logger.Allow, "resdl", "%v", err)
		}
	}()

	in := input.NewManager(nil)
	defer in.Close()

	kb, err := openTerminal()
	if err != nil {
		logger.Logf(logger.Allow, "resdl", "no keyboard: %v", err)
	} else {
		defer kb.Close()
		kb.OnInterrupt(func() {
			plt.Post(engine.Event{Kind: engine.EventQuit})
		})
		in.Aggregator.SetKeyboard(kb)
	}

	if cfg.Music != "" {
		logger.Log(logger.Allow, "resdl", "music is not played in headless mode")
	}

	eng, _, err := setup(cfg, plt, in)
	if err != nil {
		return err
	}

	err = run(ctx, cfg, eng, in, output)
	logger.Logf(logger.Allow, "resdl", "%d frames, digest %s", eng.Frame(), plt.Digest().Hash())

	return err
}

// setup creates the engine and the game and applies the binding profile.
// Device bindings in the profile are applied to devices already in the
// registry.
func setup(cfg config.Config, plt engine.Platform, in *input.Manager) (*engine.Engine, *profile.Profile, error) {
	eng := engine.NewEngine(plt, in)
	eng.FrameLimit = cfg.Frames

	game, err := games.New(cfg.Mode, eng, random.NewRandom(eng))
	if err != nil {
		return nil, nil, err
	}

	prof := game.Profile()
	if cfg.Profile != "" {
		prof, err = profile.Load(cfg.Profile)
		if err != nil {
			return nil, nil, err
		}
		logger.Logf(logger.Allow, "resdl", "using profile %s", cfg.Profile)
	}

	err = prof.Apply(in)
	if err != nil {
		return nil, nil, err
	}

	return eng, prof, nil
}

// run the engine with the optional debugging services.
func run(ctx context.Context, cfg config.Config, eng *engine.Engine, in *input.Manager, output io.Writer) error {
	if cfg.DumpBindings != "" {
		err := dumpBindings(cfg.DumpBindings, in)
		if err != nil {
			return err
		}
	}

	if cfg.Monitor != "" {
		mon := monitor.NewMonitor()
		err := mon.Start(cfg.Monitor)
		if err != nil {
			return err
		}
		in.Observe(mon.Publish)
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := mon.Shutdown(sctx); err != nil {
				logger.Logf(logger.Allow, "resdl", "%v", err)
			}
		}()
	}

	in.Observe(func(*input.Snapshot) {
		for _, err := range in.Disconnected() {
			logger.Logf(logger.Allow, "resdl", "%v", err)
		}
	})

	if cfg.Statsview != "" {
		stop := statsview.Launch(output, cfg.Statsview)
		defer stop()
	}

	return eng.Run(ctx)
}

func dumpBindings(filename string, in *input.Manager) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = err
		}
	}()

	input.DumpGraph(f, in.Bindings, in.Devices)
	logger.Logf(logger.Allow, "resdl", "bindings written to %s", filename)

	return nil
}

func playMusic(filename string) (*sound.Player, error) {
	clip, err := sound.Load(filename)
	if err != nil {
		return nil, err
	}

	ply, err := sound.NewPlayer("", clip.SampleRate, clip.Channels)
	if err != nil {
		return nil, err
	}

	err = ply.Loop(clip)
	if err != nil {
		ply.Close()
		return nil, err
	}
	ply.Resume()

	return ply, nil
}
