// This file is part of Trifade.
//
// Trifade is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Trifade is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Trifade.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central log for the application. Entries are made up of
// a tag and a detail string. The tag indicates the part of the program that
// is making the entry:
//
//	logger.Logf(env, "fader", "pwm width %d", w)
//
// Every request to the log must be accompanied by a Permission. Logging will
// only take place if the Permission allows it. This is useful when the same
// code is being used by the main emulation and by some secondary process, such
// as an analysis pass, which would otherwise fill the log with noise. The
// Allow value can be used when permission should always be granted.
//
// Consecutive entries with the same tag and detail are folded into a single
// entry with a repeat count.
package logger
