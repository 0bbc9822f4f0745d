/******************************************************************************\
* The Erlinda Virtual Machine                                                  *
*                                                                              *
* Copyright 2024-2026 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package erlutil

import (
	"io"
	"strings"
	"sync"
)

// A Mouth is something that can produce output for Erlinda. It is the
// abstraction representing how the VM outputs data (both the values printed by
// hosted programs and, if enabled, the execution trace). A Mouth never returns
// an error, which is technically wrong but should be true enough for the uses
// cases that matter.
//
// A Mouth is not safe for concurrent use. Erlinda processes run concurrently,
// so the VM serializes its Say/Flush pairs with its own lock.
type Mouth interface {
	// Say outputs the given string. In fact, it buffers the string, and only
	// outputs it when Flush is called.
	Say(string)

	// Flush outputs all strings buffered by calls to Say.
	Flush()
}

//
// writerMouth
//

// NewWriterMouth creates a new Mouth that outputs to the given io.Writer.
func NewWriterMouth(w io.Writer) Mouth {
	return &writerMouth{w: w}
}

// writerMouth is a Mouth that outputs to an io.Writer.
type writerMouth struct {
	w       io.Writer
	buffer  strings.Builder
	hasData bool
}

// Say buffers the given string; Flush writes it to the underlying io.Writer.
func (wm *writerMouth) Say(s string) {
	// WriteString() always returns a nil error.
	wm.buffer.WriteString(s)
	wm.hasData = true
}

// Flush effectively outputs the strings previously Say()ed.
func (wm *writerMouth) Flush() {
	if !wm.hasData {
		return
	}

	s := wm.buffer.String()
	wm.buffer.Reset()

	// Ignore errors. Hopefully this will not be too bad for the envisioned use
	// cases (std output and in-memory buffers).
	_, _ = wm.w.Write([]byte(s))
	wm.hasData = false
}

//
// memoryMouth
//

// MemoryMouth is a Mouth that stores all output in memory so we can check it
// later. Good for testing.
type MemoryMouth struct {
	Outputs []string
	buffer  strings.Builder
	hasData bool
}

// Say stores the said string in memory.
func (mm *MemoryMouth) Say(s string) {
	mm.hasData = true
	mm.buffer.WriteString(s)
}

// Flush outputs the buffered strings previously Say()ed.
func (mm *MemoryMouth) Flush() {
	if !mm.hasData {
		return
	}
	s := mm.buffer.String()
	mm.buffer.Reset()
	mm.Outputs = append(mm.Outputs, s)
	mm.hasData = false
}

//
// syncWriter
//

// NewSyncWriter wraps w so that each Write call is serialized by a mutex.
// Erlinda processes run on separate goroutines but share the trace sink; this
// wrapper keeps each trace line in one piece.
func NewSyncWriter(w io.Writer) io.Writer {
	return &syncWriter{w: w}
}

// syncWriter is an io.Writer with a mutex around each Write.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// Write fulfills the io.Writer interface.
func (sw *syncWriter) Write(p []byte) (int, error) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.w.Write(p)
}
