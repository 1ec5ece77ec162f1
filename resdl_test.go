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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/resdl/resdl/termkeys"
	"github.com/resdl/resdl/test"
	"github.com/resdl/resdl/version"
)

func noTerminal(t *testing.T) {
	t.Helper()
	prev := openTerminal
	openTerminal = func() (*termkeys.Keyboard, error) {
		return nil, errors.New("no terminal")
	}
	t.Cleanup(func() {
		openTerminal = prev
	})
}

func TestHeadless(t *testing.T) {
	noTerminal(t)

	dir := t.TempDir()
	frames := filepath.Join(dir, "frames")
	dump := filepath.Join(dir, "bindings.dot")

	out := &test.CompareWriter{}
	code := launch([]string{
		"--headless", "--frames", "3",
		"--frame-dir", frames,
		"--dump-bindings", dump,
		"--monitor", "127.0.0.1:0",
		"goose",
	}, out)
	test.ExpectEquality(t, code, 0, out.String())

	entries, err := os.ReadDir(frames)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(entries), 3)

	data, err := os.ReadFile(dump)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "digraph"))
}

func TestProfileFile(t *testing.T) {
	noTerminal(t)

	fn := filepath.Join(t.TempDir(), "profile.yaml")
	err := os.WriteFile(fn, []byte("keyboard:\n  keys:\n    - {key: Space, axis: MainX, value: 1}\n"), 0o644)
	test.DemandSuccess(t, err)

	out := &test.CompareWriter{}
	code := launch([]string{"--headless", "--frames", "1", "--profile", fn}, out)
	test.ExpectEquality(t, code, 0, out.String())

	out.Clear()
	code = launch([]string{"--headless", "--frames", "1", "--profile", filepath.Join(t.TempDir(), "missing.yaml")}, out)
	test.ExpectEquality(t, code, 20)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "* error in game1 mode"))
}

func TestBadArguments(t *testing.T) {
	out := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"--width", "0"}, out), 10)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "* "))

	out.Clear()
	test.ExpectEquality(t, launch([]string{"pong"}, out), 10)

	out.Clear()
	test.ExpectEquality(t, launch([]string{"--help"}, out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "--headless"))
}

func TestVersion(t *testing.T) {
	out := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"--version"}, out), 0)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), version.ApplicationName))
}
