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

// Package strand implements a dynamically growable byte string with first
// class support for embedded ANSI terminal styling codes.
//
// A String manages its own backing buffer, grows on demand with amortized
// doubling, and tracks two independent length metrics: the total number of
// bytes used and the width, the number of bytes contributed by visible text.
// Styling codes added with AddBold, AddForeground, AddBackground, and
// AddReset are stored in the value but never count toward the width, so a
// colorized value can still be measured and aligned by its visible content.
//
// A String is a single-owner object. No method is safe to call concurrently
// on the same String without external synchronization.
package strand

import "sync"

// String is a growable, terminator-backed byte string.
//
// The zero value is not usable; create a String with New or NewBytes and
// release it with Free. Every mutating method returns its receiver so calls
// can be chained:
//
//	s := strand.New("error: ").
//		AddForeground(strand.Red).
//		Addf("%d of %d failed", n, total).
//		AddReset()
type String struct {
	// buf holds the value followed by a single NUL terminator byte, so
	// len(buf) is always at least 1 while the String is live. cap(buf) is
	// the allocated size and never shrinks.
	buf []byte

	// width counts the bytes contributed by visible text. Styling control
	// codes and the terminator are excluded.
	width int

	// cached basename, valid only while hasBase is set. Cleared by every
	// mutation.
	base    string
	hasBase bool
}

// minCapacity is the smallest backing buffer ever allocated for a String.
const minCapacity = 64

var strPool = sync.Pool{
	New: func() any {
		return new(String)
	},
}

// New creates a String initialized with the given text.
//
// An empty text produces an empty value. The returned String should be
// released with Free when it is no longer needed, though leaving it to the
// garbage collector is safe and only forgoes pooling.
func New(text string) *String {
	s := newEmpty()
	return s.AddText(text)
}

// NewBytes creates a String initialized with the given bytes.
//
// A nil or empty slice produces an empty value. The String does not retain b.
func NewBytes(b []byte) *String {
	s := newEmpty()
	return s.add(b, true)
}

func newEmpty() *String {
	s := strPool.Get().(*String)
	// Free drops the buffer, so a pooled object always needs a fresh one.
	// The terminator is the zeroed first byte.
	s.buf = make([]byte, 1, minCapacity)
	s.width = 0
	s.base, s.hasBase = "", false
	return s
}

// Copy returns an independent deep copy of the String.
//
// The copy has the same value, width, and buffer capacity, but an empty
// basename cache. Mutating either String never affects the other.
func (s *String) Copy() *String {
	c := strPool.Get().(*String)
	c.buf = make([]byte, len(s.buf), cap(s.buf))
	copy(c.buf, s.buf)
	c.width = s.width
	c.base, c.hasBase = "", false
	return c
}

// Free releases the String's buffer and cache and recycles the object.
//
// After Free the String holds the released representation and must not be
// used again, with one exception: calling Free a second time, or on a nil
// String, is a safe no-op.
func (s *String) Free() {
	if s == nil || s.buf == nil {
		return
	}
	s.buf = nil
	s.width = 0
	s.base, s.hasBase = "", false
	strPool.Put(s)
}

// Reset rewinds the value to empty.
//
// The backing buffer keeps its capacity, which avoids reallocation churn for
// build-and-clear loops. The width returns to zero and the basename cache is
// invalidated.
func (s *String) Reset() *String {
	s.buf = s.buf[:1]
	s.buf[0] = 0
	s.width = 0
	s.base, s.hasBase = "", false
	return s
}

// Size returns the number of bytes used by the value, including the
// terminator byte. It is always one greater than the length of Bytes.
func (s *String) Size() int {
	return len(s.buf)
}

// Width returns the visible width of the value in bytes.
//
// Only bytes appended as text or formatted text count; styling control codes
// and the terminator do not. Multi-byte UTF-8 sequences count one per byte,
// not per rune.
func (s *String) Width() int {
	return s.width
}

// Bytes returns the value without the trailing terminator.
//
// The slice aliases internal storage: it is read-only and valid only until
// the next mutating call or Free. Its capacity is clamped so that appending
// to it cannot corrupt the String.
func (s *String) Bytes() []byte {
	if len(s.buf) == 0 {
		return nil
	}
	n := len(s.buf) - 1
	return s.buf[:n:n]
}

// String returns an independent copy of the value. It implements
// fmt.Stringer, and the returned string remains valid after the String is
// mutated or freed.
func (s *String) String() string {
	return string(s.Bytes())
}
