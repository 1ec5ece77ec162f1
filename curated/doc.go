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

// Package curated is a helper package for the error type. Curated errors are
// created with a pattern string and values, in the same way as fmt.Errorf().
// The pattern is retained and can be used to identify the error later with
// the Is() and Has() functions.
//
// Patterns should be declared as exported constants by the package that
// raises the error. For example:
//
//	const DeviceDisconnected = "device %d (%s) disconnected"
//
//	return curated.Errorf(DeviceDisconnected, id, name)
//
// And tested for with:
//
//	if curated.Is(err, input.DeviceDisconnected) {
//		...
//	}
//
// The Error() function normalises the message by removing adjacent duplicate
// parts of the message chain. This means that code wrapping an error does not
// need to know whether the wrapped error already carries the same prefix.
//
//	e := curated.Errorf("profile: %v", curated.Errorf("profile: %v", "bad key"))
//	e.Error() == "profile: bad key"
package curated
