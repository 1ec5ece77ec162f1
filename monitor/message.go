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


package monitor

import (
	"time"

	"github.com/resdl/resdl/input"
)

// Message types.
const (
	TypeFull   = "full"
	TypeUpdate = "update"
)

// Message is sent to clients as JSON. A "full" message is sent to a client
// when it connects. An "update" message is sent whenever the snapshot
// changes.
type Message struct {
	Type      string                `json:"type"`
	Seq       int64                 `json:"seq"`
	Timestamp int64                 `json:"timestamp"`
	Axes      map[string]float64    `json:"axes"`
	Radials   map[string][2]float64 `json:"radials"`
	Buttons   []string              `json:"buttons"`
}

// NewMessage creates a message from the snapshot. Only axes and radials with
// a value are included. Buttons lists the names of the buttons that are
// down.
func NewMessage(typ string, seq int64, snap *input.Snapshot) *Message {
	msg := &Message{
		Type:      typ,
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Axes:      make(map[string]float64),
		Radials:   make(map[string][2]float64),
		Buttons:   make([]string, 0),
	}

	for a := input.Axis(0); a < input.NumAxes; a++ {
		if v, ok := snap.Axis(a); ok {
			msg.Axes[a.String()] = v
		}
	}
	for r := input.Radial(0); r < input.NumRadials; r++ {
		if v, ok := snap.Radial(r); ok {
			msg.Radials[r.String()] = v
		}
	}
	for b := input.Button(0); b < input.NumButtons; b++ {
		if snap.Button(b) {
			msg.Buttons = append(msg.Buttons, b.String())
		}
	}

	return msg
}
