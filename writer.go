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

import "io"

// Write appends p to the value as visible text. It implements io.Writer and
// never returns an error, so a String can be the target of fmt.Fprintf.
func (s *String) Write(p []byte) (int, error) {
	s.add(p, true)
	return len(p), nil
}

// WriteString appends str to the value as visible text. It implements
// io.StringWriter and never returns an error.
func (s *String) WriteString(str string) (int, error) {
	s.addString(str, true)
	return len(str), nil
}

// WriteByte appends a single byte to the value as visible text. It
// implements io.ByteWriter and never returns an error.
func (s *String) WriteByte(c byte) error {
	var p [1]byte
	p[0] = c
	s.add(p[:], true)
	return nil
}

// WriteTo writes the value, without the terminator, to w. It implements
// io.WriterTo.
func (s *String) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.Bytes())
	return int64(n), err
}
