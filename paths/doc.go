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


// Package paths contains functions to prepare paths for resdl resources.
//
// The resource path is the directory used for the configuration file and for
// binding profiles. If a directory called ".resdl" exists in the current
// working directory then that directory is used. Otherwise the "resdl"
// directory in the user's configuration directory is used. On Linux this is
// usually "$HOME/.config/resdl".
//
// Directories are not created by this package.
package paths
