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


package sdlwindow

import (
	"fmt"

	"github.com/resdl/resdl/logger"
)

// drawing errors are not returned by the render.Surface interface. they are
// logged instead, repeated failures collapse into a single log entry
func logError(op string, err error) {
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "%s: %v", op, err)
	}
}

// teardown runs every step even if an earlier step fails. the first error is
// returned
func teardown(steps ...func() error) error {
	var first error
	for _, f := range steps {
		if err := f(); err != nil {
			logError("destroy", err)
			if first == nil {
				first = fmt.Errorf("sdl: %w", err)
			}
		}
	}
	return first
}
