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
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestControlCodes(t *testing.T) {
	t.Run("Foreground", func(t *testing.T) {
		tests := []struct {
			color Color
			want  string
		}{
			{Default, "\x1b[39m"},
			{Black, "\x1b[30m"},
			{Blue, "\x1b[34m"},
			{Cyan, "\x1b[36m"},
			{Green, "\x1b[32m"},
			{Magenta, "\x1b[35m"},
			{Red, "\x1b[31m"},
			{White, "\x1b[37m"},
			{Yellow, "\x1b[33m"},
		}

		for _, tt := range tests {
			s := New("").AddForeground(tt.color)
			if got := s.String(); got != tt.want {
				t.Errorf("AddForeground(%s) = %q, want %q", tt.color, got, tt.want)
			}
			s.Free()
		}
	})

	t.Run("Background", func(t *testing.T) {
		tests := []struct {
			color Color
			want  string
		}{
			{Default, "\x1b[49m"},
			{Black, "\x1b[40m"},
			{Blue, "\x1b[44m"},
			{Cyan, "\x1b[46m"},
			{Green, "\x1b[42m"},
			{Magenta, "\x1b[45m"},
			{Red, "\x1b[41m"},
			{White, "\x1b[47m"},
			{Yellow, "\x1b[43m"},
		}

		for _, tt := range tests {
			s := New("").AddBackground(tt.color)
			if got := s.String(); got != tt.want {
				t.Errorf("AddBackground(%s) = %q, want %q", tt.color, got, tt.want)
			}
			s.Free()
		}
	})

	t.Run("Bold", func(t *testing.T) {
		s := New("").AddBold(true)
		if got := s.String(); got != "\x1b[1m" {
			t.Errorf("AddBold(true) = %q, want %q", got, "\x1b[1m")
		}
		s.Free()

		s = New("").AddBold(false)
		if got := s.String(); got != "\x1b[22m" {
			t.Errorf("AddBold(false) = %q, want %q", got, "\x1b[22m")
		}
		s.Free()
	})

	t.Run("Reset", func(t *testing.T) {
		s := New("").AddReset()
		defer s.Free()

		if got := s.String(); got != "\x1b[0m" {
			t.Errorf("AddReset() = %q, want %q", got, "\x1b[0m")
		}
	})
}

func TestStylingWidth(t *testing.T) {
	t.Run("CodesOnly", func(t *testing.T) {
		s := New("").
			AddBold(true).
			AddForeground(Green).
			AddBackground(Black).
			AddReset()
		defer s.Free()

		if s.Width() != 0 {
			t.Errorf("width %d after styling only, want 0", s.Width())
		}
		if s.Size() == 1 {
			t.Error("size did not grow with styling codes")
		}
	})

	t.Run("CodesAroundText", func(t *testing.T) {
		s := New("test").AddBold(true)
		defer s.Free()

		if s.Width() != 4 {
			t.Errorf("width %d, want 4", s.Width())
		}
		// size counts the value, the bold code, and the terminator
		if s.Size() != 4+len("\x1b[1m")+1 {
			t.Errorf("size %d, want %d", s.Size(), 4+len("\x1b[1m")+1)
		}
	})

	t.Run("InterleavedAccounting", func(t *testing.T) {
		s := New("")
		defer s.Free()

		visible := 0
		for _, word := range []string{"red", "green", "blue"} {
			s.AddForeground(Red).AddText(word).AddReset()
			visible += len(word)
		}
		if s.Width() != visible {
			t.Errorf("width %d, want %d", s.Width(), visible)
		}
	})
}

func TestStylingPanics(t *testing.T) {
	t.Run("ForegroundOutOfRange", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("AddForeground with an invalid color did not panic")
			}
		}()
		New("").AddForeground(numColors)
	})

	t.Run("BackgroundOutOfRange", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("AddBackground with an invalid color did not panic")
			}
		}()
		New("").AddBackground(Color(200))
	})
}

func TestAddStyled(t *testing.T) {
	t.Run("WidthCountsTextOnly", func(t *testing.T) {
		s := New("")
		defer s.Free()

		s.AddStyled(lipgloss.NewStyle().Bold(true), "hello")
		if s.Width() != 5 {
			t.Errorf("width %d, want 5", s.Width())
		}
		if !strings.Contains(s.String(), "hello") {
			t.Errorf("value %q does not contain the styled text", s.String())
		}
	})

	t.Run("EmptyTextIsNoOp", func(t *testing.T) {
		s := New("test")
		defer s.Free()

		s.AddStyled(lipgloss.NewStyle().Bold(true), "")
		if got := s.String(); got != "test" {
			t.Errorf("value %q, want %q", got, "test")
		}
		if s.Width() != 4 {
			t.Errorf("width %d, want 4", s.Width())
		}
	})
}
