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

package modalflag

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// helpWriter collects the output from the flag package so that it can be
// amended before being shown to the user.
type helpWriter struct {
	buffer []byte
}

// Write buffers all output.
func (hw *helpWriter) Write(p []byte) (n int, err error) {
	hw.buffer = append(hw.buffer, p...)
	return len(p), nil
}

func (hw *helpWriter) help(output io.Writer, banner string, subModes []SubMode, additionalHelp string) {
	if output == nil {
		return
	}

	s := strings.TrimSuffix(string(hw.buffer), "\n")
	helpLines := strings.Split(s, "\n")

	// flag package prints only the usage line if there are no flags
	if len(helpLines) <= 1 && len(subModes) == 0 && additionalHelp == "" {
		if banner != "" {
			fmt.Fprintf(output, "No help available for %s\n", banner)
		} else {
			fmt.Fprintln(output, "No help available")
		}
		return
	}

	if banner != "" {
		fmt.Fprintf(output, "%s for %s mode\n", helpLines[0], banner)
	} else {
		fmt.Fprintln(output, helpLines[0])
	}

	for _, l := range helpLines[1:] {
		fmt.Fprintln(output, l)
	}

	if len(subModes) > 0 {
		if len(helpLines) > 1 {
			fmt.Fprintln(output)
		}

		fmt.Fprintln(output, "  available sub-modes:")
		w := tabwriter.NewWriter(output, 0, 4, 2, ' ', 0)
		for _, m := range subModes {
			fmt.Fprintf(w, "    %s\t%s\n", m.Name, m.Description)
		}
		w.Flush()
		fmt.Fprintf(output, "  default: %s\n", subModes[0].Name)
	}

	if additionalHelp != "" {
		fmt.Fprintln(output)
		fmt.Fprintln(output, additionalHelp)
	}
}
