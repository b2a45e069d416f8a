package globe

/*------------------------------------------------------------------
 *
 * Purpose:   	Circular byte buffer between the serial reader and the
 *		foreground parsing loop.
 *
 * Description:	The reader goroutine plays the part of the DMA transfer
 *		complete interrupt: it deposits fixed-size chunks and
 *		advances the write cursor.  The foreground loop never
 *		writes; it derives read offsets of its own and searches
 *		the ring with wrap-aware helpers.
 *
 *		The cursor, the wrap counter and the running byte count
 *		are the only state shared between the two contexts, so
 *		they are atomics.  Everything else is plain memory.
 *
 *---------------------------------------------------------------*/

import (
	"bytes"
	"sync/atomic"
)

const (
	MAIN_BUFF_SIZE = 2048 /* Default ring capacity. */
	READ_SIZE      = 16   /* Bytes per serial read, like one DMA transfer. */
)

type RingBuffer struct {
	buf  []byte /* capacity + 1 so byte [capacity] is always NUL */
	size int

	writeIdx     atomic.Uint32
	totalRead    atomic.Uint64
	nCompletions atomic.Uint32
}

func NewRingBuffer(capacity int) *RingBuffer {
	if capacity <= 0 {
		capacity = MAIN_BUFF_SIZE
	}

	return &RingBuffer{
		buf:  make([]byte, capacity+1),
		size: capacity,
	}
}

func (rb *RingBuffer) Cap() int {
	return rb.size
}

/* The only mutable cursor.  Readers snapshot it and compute offsets of their own. */
func (rb *RingBuffer) WriteIndex() int {
	return int(rb.writeIdx.Load())
}

/* Total bytes ever written.  Lets a reader detect overrun across a wrap. */
func (rb *RingBuffer) TotalRead() uint64 {
	return rb.totalRead.Load()
}

func (rb *RingBuffer) Completions() int {
	return int(rb.nCompletions.Load())
}

func (rb *RingBuffer) At(idx int) byte {
	return rb.buf[((idx%rb.size)+rb.size)%rb.size]
}

/*-------------------------------------------------------------------
 *
 * Name:	Write
 *
 * Purpose:	Deposit one chunk of received bytes, advancing the write
 *		cursor modulo the capacity.
 *
 * Description:	Called from the serial reader goroutine only.  Does
 *		nothing but copies and atomic stores so it stays safe
 *		in an interrupt-like context.  A chunk larger than the
 *		space before the seam is split across it; every time
 *		the cursor passes the end the completion counter is
 *		bumped.
 *
 *--------------------------------------------------------------------*/

func (rb *RingBuffer) Write(chunk []byte) {
	var idx = int(rb.writeIdx.Load())

	for len(chunk) > 0 {
		var n = copy(rb.buf[idx:rb.size], chunk)
		chunk = chunk[n:]
		idx += n

		if idx >= rb.size {
			idx = 0
			rb.nCompletions.Add(1)
		}

		rb.totalRead.Add(uint64(n))
	}

	rb.writeIdx.Store(uint32(idx))
}

/*-------------------------------------------------------------------
 *
 * Name:	Find
 *
 * Purpose:	Wrap-aware scan for a byte pattern.
 *
 * Inputs:	needle	- Pattern to look for.
 *		start	- Ring index to begin the scan at.
 *
 * Returns:	Ring index of the first match, or -1 and false.
 *
 * Description:	Every candidate offset in [0, size) from start is
 *		tried, with all indexing done modulo the capacity, so a
 *		needle split across the seam is still found wherever
 *		the scan starts.  O(N*M) on purpose - the ring is small
 *		and simplicity wins.
 *
 *--------------------------------------------------------------------*/

func (rb *RingBuffer) Find(needle []byte, start int) (int, bool) {
	if len(needle) == 0 || len(needle) > rb.size {
		return -1, false
	}

	for i := 0; i < rb.size; i++ {
		var matched = true

		for j := 0; j < len(needle); j++ {
			if rb.buf[(start+i+j)%rb.size] != needle[j] {
				matched = false
				break
			}
		}

		if matched {
			return (start + i) % rb.size, true
		}
	}

	return -1, false
}

/*-------------------------------------------------------------------
 *
 * Name:	CopyOut
 *
 * Purpose:	Locate a pattern and copy destLen contiguous bytes
 *		starting at it, unwrapping across the seam.
 *
 * Returns:	A freshly owned buffer, or nil if the pattern is absent
 *		or the request does not fit in the ring.
 *
 *--------------------------------------------------------------------*/

func (rb *RingBuffer) CopyOut(needle []byte, destLen int, start int) []byte {
	if destLen <= 0 || destLen > rb.size {
		return nil
	}

	var found, ok = rb.Find(needle, start)
	if !ok {
		return nil
	}

	return rb.CopyRange(found, destLen)
}

/* Copy destLen bytes beginning at a ring index, unwrapped into a linear buffer. */
func (rb *RingBuffer) CopyRange(start int, destLen int) []byte {
	var out = make([]byte, destLen)

	for i := 0; i < destLen; i++ {
		out[i] = rb.buf[(start+i)%rb.size]
	}

	return out
}

/*-------------------------------------------------------------------
 *
 * Name:	Split
 *
 * Purpose:	Rotate the ring so start maps to offset 0 and cut the
 *		whole capacity at each occurrence of delim.
 *
 * Inputs:	delim	- Delimiter byte sequence, e.g. CRLF.
 *		start	- Ring index the rotation begins at.
 *
 * Returns:	The n+1 sections for n delimiter occurrences, and the
 *		offset (relative to start) of the final section.  If
 *		the rotated data ends with the delimiter the final
 *		section is empty and is kept: its offset is how a
 *		resumable reader recovers the index past the last
 *		complete record.
 *
 *		The sections alias one scratch copy of the ring; they
 *		stay valid independently of later producer writes.
 *
 *--------------------------------------------------------------------*/

func (rb *RingBuffer) Split(delim []byte, start int) ([][]byte, int) {
	if len(delim) == 0 || rb.size <= len(delim) {
		return nil, 0
	}

	/* Unwrap into a contiguous scratch buffer, start -> 0. */
	var scratch = make([]byte, rb.size)
	start = ((start % rb.size) + rb.size) % rb.size
	var n = copy(scratch, rb.buf[start:rb.size])
	copy(scratch[n:], rb.buf[:start])

	var parts [][]byte
	var from = 0

	for {
		var rel = bytes.Index(scratch[from:], delim)
		if rel < 0 {
			break
		}

		parts = append(parts, scratch[from:from+rel])
		from += rel + len(delim)
	}

	/* The section past the last delimiter, empty or not. */
	parts = append(parts, scratch[from:])

	return parts, from
}
