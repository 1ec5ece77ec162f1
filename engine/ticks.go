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

package engine

import "time"

// Ticks measures the time elapsed since a baseline.
type Ticks struct {
	baseline time.Time
	now      func() time.Time
}

// NewTicks is the preferred method of initialisation for the Ticks type. The
// now function is used to read the current time. If it is nil then
// time.Now() is used.
func NewTicks(now func() time.Time) Ticks {
	if now == nil {
		now = time.Now
	}
	return Ticks{
		baseline: now(),
		now:      now,
	}
}

// Elapsed returns the time since the baseline.
func (t *Ticks) Elapsed() time.Duration {
	return t.now().Sub(t.baseline)
}

// Lap returns the time since the baseline and resets the baseline to the
// current time.
func (t *Ticks) Lap() time.Duration {
	now := t.now()
	d := now.Sub(t.baseline)
	t.baseline = now
	return d
}
