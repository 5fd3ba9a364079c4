// Copyright (c) 2026 blairtcg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package strand

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// SGR control sequences appended by the styling helpers. These byte
// sequences are an external contract with the terminal and must not change.
const (
	boldOn   = "\x1b[1m"
	boldOff  = "\x1b[22m"
	sgrReset = "\x1b[0m"
)

// fgCodes and bgCodes are indexed by Color; their order matches the Color
// declaration order exactly.
var fgCodes = [numColors]string{
	"\x1b[39m", // default
	"\x1b[30m", // black
	"\x1b[34m", // blue
	"\x1b[36m", // cyan
	"\x1b[32m", // green
	"\x1b[35m", // magenta
	"\x1b[31m", // red
	"\x1b[37m", // white
	"\x1b[33m", // yellow
}

var bgCodes = [numColors]string{
	"\x1b[49m", // default
	"\x1b[40m", // black
	"\x1b[44m", // blue
	"\x1b[46m", // cyan
	"\x1b[42m", // green
	"\x1b[45m", // magenta
	"\x1b[41m", // red
	"\x1b[47m", // white
	"\x1b[43m", // yellow
}

// AddBold appends the control code that enables or disables bold text.
//
// Control codes are not visible text and do not count toward the width.
func (s *String) AddBold(bold bool) *String {
	if bold {
		return s.addString(boldOn, false)
	}
	return s.addString(boldOff, false)
}

// AddForeground appends the control code that sets the foreground color.
//
// Control codes are not visible text and do not count toward the width.
// Passing a value outside the declared Color range is a caller contract
// violation and panics.
func (s *String) AddForeground(color Color) *String {
	if color >= numColors {
		panic(fmt.Sprintf("strand: invalid foreground color %d", color))
	}
	return s.addString(fgCodes[color], false)
}

// AddBackground appends the control code that sets the background color.
//
// Control codes are not visible text and do not count toward the width.
// Passing a value outside the declared Color range is a caller contract
// violation and panics.
func (s *String) AddBackground(color Color) *String {
	if color >= numColors {
		panic(fmt.Sprintf("strand: invalid background color %d", color))
	}
	return s.addString(bgCodes[color], false)
}

// AddReset appends the control code that turns off all text attributes.
//
// Control codes are not visible text and do not count toward the width.
func (s *String) AddReset() *String {
	return s.addString(sgrReset, false)
}

// AddStyled renders text through a lipgloss style and appends the result.
//
// Only the text bytes count toward the width; the control sequences the
// style emits do not. The style must only apply terminal attributes such as
// color, bold, or faint. Styles that pad, wrap, or truncate their input will
// skew the width accounting.
func (s *String) AddStyled(style lipgloss.Style, text string) *String {
	if text == "" {
		return s
	}
	s.addString(style.Render(text), false)
	s.width += len(text)
	return s
}
