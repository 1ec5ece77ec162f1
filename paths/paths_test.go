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


package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/resdl/resdl/paths"
	"github.com/resdl/resdl/test"
)

func TestPaths(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".resdl", 0o700))

	test.ExpectEquality(t, paths.ResourcePath("foo/bar", "baz"), ".resdl/foo/bar/baz")
	test.ExpectEquality(t, paths.ResourcePath("foo/bar", ""), ".resdl/foo/bar")
	test.ExpectEquality(t, paths.ResourcePath("", "baz"), ".resdl/baz")
	test.ExpectEquality(t, paths.ResourcePath("", ""), ".resdl")

	test.ExpectFailure(t, paths.Exists("config.yaml"))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(".resdl", "config.yaml"), nil, 0o600))
	test.ExpectSuccess(t, paths.Exists("config.yaml"))
}

func TestUserConfigDir(t *testing.T) {
	t.Chdir(t.TempDir())

	cnf, err := os.UserConfigDir()
	if err != nil {
		t.Skip("no user configuration directory")
	}
	test.ExpectEquality(t, paths.ResourcePath("profile.yaml"), filepath.Join(cnf, "resdl", "profile.yaml"))
}
