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

// Package ansi defines the ANSI control codes used to draw the LEDs on a
// terminal.
package ansi

import (
	"fmt"
	"strings"
)

// ansi color.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
	colDefault = 9
)

var colors = map[string]int{
	"BLACK":   colBlack,
	"RED":     colRed,
	"GREEN":   colGreen,
	"YELLOW":  colYellow,
	"BLUE":    colBlue,
	"MAGENTA": colMagenta,
	"CYAN":    colCyan,
	"WHITE":   colWhite,
	"NORMAL":  colDefault,
}

// ansi target.
const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

// ansi attribute.
const (
	attrBold      = 1
	attrDim       = 2
	attrUnderline = 4
	attrInverse   = 7
)

var attributes = map[string]int{
	"BOLD":      attrBold,
	"DIM":       attrDim,
	"UNDERLINE": attrUnderline,
	"INVERSE":   attrInverse,
}

// Pens is the table of colors to be used for text.
var Pens map[string]string

// DimPens is the table of pastel colors to be used for text.
var DimPens map[string]string

// NormalPen is the CSI sequence for regular text.
var NormalPen string

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)

	NormalPen, _ = ColorBuild("", "", "", false, false)

	for _, c := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		Pens[c], _ = ColorBuild(c, "", "bold", true, false)
		DimPens[c], _ = ColorBuild(c, "", "dim", false, false)
	}
}

func target(s *strings.Builder, t int, name string, kind string) error {
	if name == "" {
		return nil
	}
	c, ok := colors[strings.ToUpper(name)]
	if !ok {
		return fmt.Errorf("unknown ANSI %s (%s)", kind, name)
	}
	if s.Len() > 2 {
		s.WriteString(";")
	}
	fmt.Fprintf(s, "%d%d", t, c)
	return nil
}

// ColorBuild creates the ANSI sequence to create the pen with the correct
// foreground/background color and attribute.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	s := strings.Builder{}
	s.Grow(32)
	s.WriteString("\033[")

	t := targetPen
	if brightPen {
		t = targetBrightPen
	}
	if err := target(&s, t, pen, "pen"); err != nil {
		return "", err
	}

	t = targetPaper
	if brightPaper {
		t = targetBrightPaper
	}
	if err := target(&s, t, paper, "paper"); err != nil {
		return "", err
	}

	if attribute != "" && !strings.EqualFold(attribute, "normal") {
		a, ok := attributes[strings.ToUpper(attribute)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
		}
		if s.Len() > 2 {
			s.WriteString(";")
		}
		fmt.Fprintf(&s, "%d", a)
	}

	s.WriteString("m")

	return s.String(), nil
}

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

// CursorHide is the CSI sequence to stop the cursor being drawn.
const CursorHide = "\033[?25l"

// CursorShow is the CSI sequence to start drawing the cursor again.
const CursorShow = "\033[?25h"
