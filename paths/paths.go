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


package paths

import (
	"os"
	"path/filepath"
)

// name of the resource directory in the current working directory
const localResourcePath = ".resdl"

// name of the resource directory in the user's configuration directory
const configResourcePath = "resdl"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the resource directory.
func ResourcePath(resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, basePath())
	p = append(p, resource...)
	return filepath.Join(p...)
}

// Exists returns true if the named resource exists.
func Exists(resource ...string) bool {
	_, err := os.Stat(ResourcePath(resource...))
	return err == nil
}

func basePath() string {
	if fi, err := os.Stat(localResourcePath); err == nil && fi.IsDir() {
		return localResourcePath
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return localResourcePath
	}
	return filepath.Join(cnf, configResourcePath)
}
