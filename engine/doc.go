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

// Package engine implements the game loop. The Engine type owns the objects
// of a game, polls platform events, ticks the input manager and updates and
// renders the objects once per frame.
//
// The platform (a window or a headless equivalent) is abstracted by the
// Platform interface. All functions in this package must be called from the
// same goroutine, which for SDL platforms must be the main thread.
package engine
