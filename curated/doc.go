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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function. The pattern string
// is kept alongside the values and is used to identify the error later on
// with the Is() and Has() functions:
//
//	const ChannelMismatch = "config: channel count mismatch: %d (must be %d)"
//
//	func validate(n int) error {
//		if n != 8 {
//			return curated.Errorf(ChannelMismatch, n, 8)
//		}
//		return nil
//	}
//
//	if curated.Is(err, ChannelMismatch) {
//		...
//	}
//
// Has() is similar to Is() but also searches the values of the error for a
// curated error with the pattern. It is useful for when an error has been
// wrapped by another curated error, as happens when errors are passed up
// through the packages:
//
//	err := curated.Errorf("trace: %v", err)
//	curated.Has(err, ChannelMismatch) // true
//
// The Error() function removes duplicate adjacent parts of the error message,
// where a part is the sub-string between ': ' separators. This means that a
// package can prefix its name to an error without worrying about whether the
// error has already been prefixed with the same name.
//
// Curated errors implement Unwrap() so the errors.Is() and errors.As()
// functions from the standard library continue to work with any error that
// has been passed as a value.
package curated
