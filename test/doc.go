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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect* functions report a failure with t.Errorf() and allow the test
// to continue. The Demand* functions report with t.Fatalf() and should be used
// when the rest of the test depends on the value being correct. For example,
// testing that the length of a slice is as expected before indexing it.
//
// The success and failure functions understand bool and error values. The nil
// value is considered a success because that is how errors are usually
// interpreted.
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output. The String() function can then be used with
// ExpectEquality().
package test
