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
	"bytes"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color selects one of the fixed terminal colors understood by the
// AddForeground and AddBackground helpers.
//
// The declaration order is significant: it indexes the control code tables.
type Color uint8

const (
	// Default restores the terminal's default color.
	Default Color = iota
	// Black is ANSI color 0.
	Black
	// Blue is ANSI color 4.
	Blue
	// Cyan is ANSI color 6.
	Cyan
	// Green is ANSI color 2.
	Green
	// Magenta is ANSI color 5.
	Magenta
	// Red is ANSI color 1.
	Red
	// White is ANSI color 7.
	White
	// Yellow is ANSI color 3.
	Yellow

	numColors
)

// String returns the lowercase ASCII name of the color.
func (c Color) String() string {
	switch c {
	case Default:
		return "default"
	case Black:
		return "black"
	case Blue:
		return "blue"
	case Cyan:
		return "cyan"
	case Green:
		return "green"
	case Magenta:
		return "magenta"
	case Red:
		return "red"
	case White:
		return "white"
	case Yellow:
		return "yellow"
	default:
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
}

// MarshalText serializes the Color to text.
//
// It returns the lowercase name of the color (e.g., "red").
func (c Color) MarshalText() ([]byte, error) {
	if c >= numColors {
		return nil, fmt.Errorf("unrecognized color: %d", uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText deserializes text into a Color.
//
// It accepts lowercase or uppercase color names (e.g., "red" or "RED"). This
// facilitates configuring colors via YAML, TOML, or JSON.
func (c *Color) UnmarshalText(text []byte) error {
	if c == nil {
		return errors.New("can't unmarshal a nil *Color")
	}
	if !c.unmarshalText(text) && !c.unmarshalText(bytes.ToLower(text)) {
		return fmt.Errorf("unrecognized color: %q", text)
	}
	return nil
}

func (c *Color) unmarshalText(text []byte) bool {
	switch string(text) {
	case "default", "DEFAULT", "": // make the zero value useful
		*c = Default
	case "black", "BLACK":
		*c = Black
	case "blue", "BLUE":
		*c = Blue
	case "cyan", "CYAN":
		*c = Cyan
	case "green", "GREEN":
		*c = Green
	case "magenta", "MAGENTA":
		*c = Magenta
	case "red", "RED":
		*c = Red
	case "white", "WHITE":
		*c = White
	case "yellow", "YELLOW":
		*c = Yellow
	default:
		return false
	}
	return true
}

// ParseColor converts a string into a Color.
//
// It accepts lowercase or uppercase color names. It returns an error if the
// string does not match a known color.
func ParseColor(text string) (Color, error) {
	var c Color
	err := c.UnmarshalText([]byte(text))
	return c, err
}

// ansiIndex maps each Color to its base ANSI palette entry, for bridging
// into styling libraries. Default has no palette entry.
var ansiIndex = [numColors]string{
	Black:   "0",
	Red:     "1",
	Green:   "2",
	Yellow:  "3",
	Blue:    "4",
	Magenta: "5",
	Cyan:    "6",
	White:   "7",
}

// Style returns a lipgloss style that renders text in the color.
//
// Default yields an unstyled lipgloss.Style. Use this to compose the fixed
// palette with richer lipgloss styling before handing the result to
// AddStyled.
func (c Color) Style() lipgloss.Style {
	if c == Default || c >= numColors {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ansiIndex[c]))
}
