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


// Package monitor serves the resolved input snapshot to websocket clients.
// It is a debugging aid: point a websocket client at ws://address/ws and
// every change to the logical input state is received as a JSON message.
//
// Publishing never blocks the game loop. A client that does not keep up with
// the messages is disconnected.
package monitor
