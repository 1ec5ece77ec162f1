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

// Package config collects the settings for the demo programs. Settings are
// taken, in order of precedence, from the command line, from RESDL_*
// environment variables, from an optional YAML configuration file, and
// finally from the values returned by Defaults().
package config
