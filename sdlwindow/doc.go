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

// Package sdlwindow implements the engine.Platform interface with an SDL
// window. Game objects draw to a render target texture of a fixed size. At
// the end of each frame the texture is copied to the window, scaled to fit
// and with letter or pillar boxes as required.
//
// The package must be used from the main thread.
package sdlwindow
