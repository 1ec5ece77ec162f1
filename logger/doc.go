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

// Package logger is the central logging facility for resdl. Entries are made
// of a tag (usually the name of the package or subsystem making the entry)
// and a detail string.
//
// Consecutive entries with the same tag and detail are folded into a single
// entry with a repeat count. This is important for code that runs every tick
// (the input manager for example) because a noisy condition would otherwise
// push every other entry out of the log.
//
// Logging is permissive by default but every call requires a Permission. The
// Allow value should be used when an entry must always be made.
//
// The package level functions operate on a single central log. Instances of
// Logger can be created with NewLogger() for testing purposes.
package logger
