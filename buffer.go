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
	"math"
	"sync"
)

const growFactor = 2

// available returns the number of unused bytes in the backing buffer.
func (s *String) available() int {
	return cap(s.buf) - len(s.buf)
}

// grow doubles the backing buffer's capacity, preserving the used bytes.
//
// Growth is the only place the buffer is reallocated, so any slice
// previously returned by Bytes is invalidated here. A buffer already at the
// maximum representable size is a non-recoverable fault.
func (s *String) grow() {
	c := cap(s.buf)
	if c == math.MaxInt {
		panic("strand: string buffer at maximum size")
	}
	nc := c * growFactor
	if c > math.MaxInt/growFactor {
		nc = math.MaxInt
	}
	data := make([]byte, len(s.buf), nc)
	copy(data, s.buf)
	s.buf = data
}

// add appends raw bytes to the value, growing the buffer as needed.
//
// The new bytes land over the old terminator slot and the terminator is
// rewritten after them. Appended bytes count toward the width only when
// visible is true. Appending nothing is a pure no-op and leaves the basename
// cache intact; every other call invalidates it.
func (s *String) add(p []byte, visible bool) *String {
	if len(p) == 0 {
		return s
	}
	for s.available() < len(p) {
		s.grow()
	}
	n := len(s.buf) - 1
	s.buf = s.buf[:n+len(p)+1]
	copy(s.buf[n:], p)
	s.buf[len(s.buf)-1] = 0
	if visible {
		s.width += len(p)
	}
	s.base, s.hasBase = "", false
	return s
}

// addString is add for string input, avoiding a []byte conversion.
func (s *String) addString(str string, visible bool) *String {
	if len(str) == 0 {
		return s
	}
	for s.available() < len(str) {
		s.grow()
	}
	n := len(s.buf) - 1
	s.buf = s.buf[:n+len(str)+1]
	copy(s.buf[n:], str)
	s.buf[len(s.buf)-1] = 0
	if visible {
		s.width += len(str)
	}
	s.base, s.hasBase = "", false
	return s
}

// scratch is a pooled byte buffer used to fully render formatted text before
// it is committed to a String.
type scratch struct {
	B []byte
}

var scratchPool = sync.Pool{
	New: func() any {
		return &scratch{B: make([]byte, 0, 256)}
	},
}

func getScratch() *scratch {
	return scratchPool.Get().(*scratch)
}

func putScratch(b *scratch) {
	if cap(b.B) > 64*1024 {
		return
	}
	b.B = b.B[:0]
	scratchPool.Put(b)
}
