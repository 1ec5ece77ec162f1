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


// Package games contains the demonstration games. Each game is a collection
// of objects added to an engine.Engine together with handlers registered
// with the engine's input dispatcher.
//
// Game1 moves a square around the screen. Goose flies a goose through
// parallax clouds. Both games come with a default binding profile, which is
// used when no other profile has been specified.
package games
