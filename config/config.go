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

package config

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/resdl/resdl/curated"
	"github.com/resdl/resdl/paths"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Sentinal error patterns.
const (
	ConfigError = "config: %v"
	UnknownMode = "config: unknown mode (%s)"
	BadValue    = "config: %s must be greater than zero"
)

// Modes is the list of valid values for the Mode field.
var Modes = []string{"game1", "goose"}

// Config is the complete set of settings.
type Config struct {
	// the demo to run
	Mode string `mapstructure:"mode"`

	// size of the render target in pixels
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`

	// the aspect ratio of a single pixel of the render target
	PixelAspect float64 `mapstructure:"pixel-aspect"`

	// scaling of the window relative to the render target
	Scale int `mapstructure:"scale"`

	// run without a window. frames are drawn by software into memory and
	// the keyboard is read from the terminal
	Headless bool `mapstructure:"headless"`

	// stop after the number of frames. zero means no limit
	Frames int `mapstructure:"frames"`

	// directory for PNG images of each frame. headless mode only
	FrameDir string `mapstructure:"frame-dir"`

	// binding profile to use instead of the default bindings
	Profile string `mapstructure:"profile"`

	// address of the websocket input monitor. disabled if empty
	Monitor string `mapstructure:"monitor"`

	// address of the statsview server. disabled if empty
	Statsview string `mapstructure:"statsview"`

	// file to write a graphviz description of the binding table to
	DumpBindings string `mapstructure:"dump-bindings"`

	// music file to play. disabled if empty
	Music string `mapstructure:"music"`

	// echo log entries to stderr as they are created
	EchoLog bool `mapstructure:"echo-log"`

	// print version information and exit
	Version bool `mapstructure:"version"`
}

// DefaultFile is the name of the configuration file in the resource
// directory. The file is read if no other configuration file is specified.
const DefaultFile = "config.yaml"

// Defaults returns the default settings.
func Defaults() Config {
	return Config{
		Mode:        "game1",
		Width:       320,
		Height:      180,
		PixelAspect: 1.0,
		Scale:       3,
	}
}

func (cfg Config) String() string {
	return fmt.Sprintf("%s %dx%d (aspect %.2f) headless=%v", cfg.Mode, cfg.Width, cfg.Height, cfg.PixelAspect, cfg.Headless)
}

// Validate the settings.
func (cfg Config) Validate() error {
	if !slices.Contains(Modes, cfg.Mode) {
		return curated.Errorf(UnknownMode, cfg.Mode)
	}
	if cfg.Width <= 0 {
		return curated.Errorf(BadValue, "width")
	}
	if cfg.Height <= 0 {
		return curated.Errorf(BadValue, "height")
	}
	if cfg.PixelAspect <= 0 {
		return curated.Errorf(BadValue, "pixel-aspect")
	}
	if cfg.Scale <= 0 {
		return curated.Errorf(BadValue, "scale")
	}
	if cfg.Frames < 0 {
		return curated.Errorf(BadValue, "frames")
	}
	return nil
}

// Flags returns the flag set for the command line. Default values for the
// flags are taken from the def argument.
func Flags(def Config) *pflag.FlagSet {
	fs := pflag.NewFlagSet("resdl", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.String("config", "", "YAML configuration file")
	fs.String("mode", def.Mode, fmt.Sprintf("demo to run (%s)", strings.Join(Modes, ", ")))
	fs.Int("width", def.Width, "width of the render target")
	fs.Int("height", def.Height, "height of the render target")
	fs.Float64("pixel-aspect", def.PixelAspect, "aspect ratio of a single pixel")
	fs.Int("scale", def.Scale, "initial window scale")
	fs.Bool("headless", def.Headless, "run without a window")
	fs.Int("frames", def.Frames, "number of frames to run for (0 is unlimited)")
	fs.String("frame-dir", def.FrameDir, "save frames as PNG files to the directory (headless only)")
	fs.String("profile", def.Profile, "binding profile")
	fs.String("monitor", def.Monitor, "address for the websocket input monitor")
	fs.String("statsview", def.Statsview, "address for the runtime statistics viewer")
	fs.String("dump-bindings", def.DumpBindings, "write binding graph to file")
	fs.String("music", def.Music, "music file to play (WAV or MP3)")
	fs.Bool("echo-log", def.EchoLog, "echo log to stderr")
	fs.Bool("version", false, "print version information and exit")
	return fs
}

// Load settings from the command line arguments, the environment and the
// configuration file. The configuration file is the one named by the --config
// flag or, if there is no flag, the DefaultFile in the resource directory.
// The first positional argument, if present, is used as the mode.
//
// Usage information is written to the output if the arguments contain the
// help flag. In that case the returned error satisfies errors.Is(err,
// pflag.ErrHelp).
func Load(args []string, output io.Writer) (Config, error) {
	def := Defaults()

	fs := Flags(def)
	fs.SetOutput(output)
	err := fs.Parse(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return def, err
		}
		return def, curated.Errorf(ConfigError, err)
	}

	v := viper.New()
	v.SetEnvPrefix("RESDL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	err = v.BindPFlags(fs)
	if err != nil {
		return def, curated.Errorf(ConfigError, err)
	}

	fn := v.GetString("config")
	if fn == "" && paths.Exists(DefaultFile) {
		fn = paths.ResourcePath(DefaultFile)
	}
	if fn != "" {
		v.SetConfigFile(fn)
		v.SetConfigType("yaml")
		err = v.ReadInConfig()
		if err != nil {
			return def, curated.Errorf(ConfigError, err)
		}
	}

	cfg := def
	err = v.Unmarshal(&cfg)
	if err != nil {
		return def, curated.Errorf(ConfigError, err)
	}

	if fs.NArg() > 0 {
		cfg.Mode = strings.ToLower(fs.Arg(0))
	}

	err = cfg.Validate()
	if err != nil {
		return def, err
	}

	return cfg, nil
}
