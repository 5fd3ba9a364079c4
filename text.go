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

import "fmt"

// SetText replaces the value with the given text.
//
// It is equivalent to Reset followed by AddText: the width becomes the byte
// length of text and any styling codes previously in the value are gone.
func (s *String) SetText(text string) *String {
	s.Reset()
	return s.AddText(text)
}

// Setf replaces the value with text rendered from a printf-style format
// string. The rendered bytes count fully toward the width.
func (s *String) Setf(format string, args ...any) *String {
	s.Reset()
	return s.Addf(format, args...)
}

// AddText appends text to the value.
//
// Every appended byte counts toward the width. Appending the empty string is
// a pure no-op that leaves the value, width, and basename cache untouched.
func (s *String) AddText(text string) *String {
	return s.addString(text, true)
}

// Addf renders a printf-style format string and appends the result.
//
// Rendering follows the fmt package's verb semantics, including %% for a
// literal percent. All rendered bytes count toward the width. An empty
// format string appends nothing and is not an error.
//
// The text is rendered completely in a pooled scratch buffer before any part
// of the String changes, so a failure while formatting arguments can never
// leave the value half mutated.
func (s *String) Addf(format string, args ...any) *String {
	if format == "" {
		return s
	}
	b := getScratch()
	b.B = fmt.Appendf(b.B, format, args...)
	if len(b.B) == 0 {
		// a formatted append invalidates the cache even when it renders
		// zero bytes
		s.base, s.hasBase = "", false
	} else {
		s.add(b.B, true)
	}
	putScratch(b)
	return s
}
