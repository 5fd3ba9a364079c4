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

// Command strand-demo exercises the strand library end to end: building and
// formatting values, width and size accounting, basename caching, copying,
// and the full foreground/background attribute matrix.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"strand"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

func section(name string) {
	fmt.Println()
	fmt.Println(labelStyle.Render(name))
}

func main() {
	section("values and formatting")

	s := strand.New("/var/log/")
	s.Addf("%s-%d.log", "demo", 3)
	fmt.Printf("value:    %s\n", s)
	fmt.Printf("width:    %d\n", s.Width())
	fmt.Printf("size:     %d\n", s.Size())
	fmt.Printf("basename: %s\n", s.Basename())

	section("copies are independent")

	c := s.Copy()
	c.SetText("replaced")
	fmt.Printf("original: %s\n", s)
	fmt.Printf("copy:     %s\n", c)
	c.Free()

	section("a String is an io.Writer")

	w := strand.New("")
	fmt.Fprintf(w, "pid=%d argv0=%s", os.Getpid(), os.Args[0])
	fmt.Printf("value: %s\n", w)
	fmt.Printf("width: %d\n", w.Width())
	w.Free()
	s.Free()

	section("attribute matrix")

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(faintStyle.Render("stdout is not a terminal; skipping colors"))
		return
	}

	colors := []strand.Color{
		strand.Default, strand.Black, strand.Blue, strand.Cyan, strand.Green,
		strand.Magenta, strand.Red, strand.White, strand.Yellow,
	}

	row := strand.New("")
	for _, fg := range colors {
		row.SetText("")
		row.Addf("%8s ", fg)
		for _, bg := range colors {
			row.AddForeground(fg)
			row.AddBackground(bg)
			row.AddText("X")
			row.AddBold(true)
			row.AddText("X")
			row.AddBold(false)
			row.AddText("X")
		}
		row.AddBold(true)
		row.AddReset()
		fmt.Println(row)
	}
	row.Free()
}
