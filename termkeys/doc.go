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

// Package termkeys implements the input.Keyboard interface for a terminal in
// raw mode. It is used when there is no window to receive keyboard events
// from.
//
// A terminal only reports that a key has been typed. There is no release
// event, so a key is considered held for a fixed number of ticks after the
// most recent byte for that key arrives. Keyboard auto-repeat keeps a key held
// for as long as it is physically held down.
//
// Only keys that produce a byte sequence can be detected. The modifier keys
// cannot be detected.
package termkeys
