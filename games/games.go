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


package games

import (
	"github.com/resdl/resdl/curated"
	"github.com/resdl/resdl/engine"
	"github.com/resdl/resdl/profile"
	"github.com/resdl/resdl/random"
)

// Sentinal error patterns.
const (
	UnknownGame = "games: unknown game (%s)"
	NoInput     = "games: engine has no input manager"
)

// Game is implemented by every game in the package.
type Game interface {
	// the default binding profile for the game
	Profile() *profile.Profile
}

// New creates the named game and adds its objects to the engine. The random
// number generator is used by games that need one.
func New(name string, eng *engine.Engine, rnd *random.Random) (Game, error) {
	switch name {
	case "game1":
		g, err := NewGame1(eng)
		if err != nil {
			return nil, err
		}
		return g, nil
	case "goose":
		g, err := NewGoose(eng, rnd)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	return nil, curated.Errorf(UnknownGame, name)
}

func off(v float64) *float64 {
	return &v
}
