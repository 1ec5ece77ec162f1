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

package input

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

type graphBinding struct {
	Source  string
	Layer   string
	Logical string
}

type graphTable struct {
	Bindings []graphBinding
}

// DumpGraph writes a graphviz dot description of the binding table. Device
// bindings are labelled with the layer they are resolved in, which requires
// the registry.
func DumpGraph(w io.Writer, tab *Table, devices *Registry) {
	g := graphTable{
		Bindings: make([]graphBinding, 0, tab.Len()),
	}

	for _, src := range tab.order {
		layer := LayerKeyboard
		if id, ok := src.device(); ok {
			layer = LayerJoystick
			if devices != nil {
				if kind, err := devices.Kind(id); err == nil && kind == Controller {
					layer = LayerController
				}
			}
		}
		g.Bindings = append(g.Bindings, graphBinding{
			Source:  src.String(),
			Layer:   layer.String(),
			Logical: tab.bindings[src].logical(),
		})
	}

	memviz.Map(w, &g)
}
