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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Arguments are given to NewArgs() and then parsed with Parse(), which takes no
// arguments. Non-flag arguments are then available with RemainingArgs() or
// GetArg():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	ticks := md.AddInt("ticks", 10000, "number of ticks to trace")
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
// A mode is a command line argument that puts the program into a different
// mode of operation, in the same way as the go command has build, doc, test
// and so on. Each mode has its own set of flags. Sub-modes are added with
// AddSubMode() before the call to Parse(). The first sub-mode added is the
// default sub-mode:
//
//	md.AddSubMode("run", "display the LEDs on the terminal")
//	md.AddSubMode("trace", "write a trace of the pads")
//
// After Parse() the selected mode is returned by Mode(). The flags and
// arguments for the selected mode are parsed by calling NewMode(), adding the
// flags for that mode and calling Parse() again.
//
// If an unrecognised flag is found while sub-modes are defined, the default
// sub-mode is selected and the flag is left to be parsed by that mode. This
// means that flags for the default mode can be given without naming the mode.
//
// Sub-mode comparisons are case insensitive. Modes are always reported in
// upper case.
package modalflag
