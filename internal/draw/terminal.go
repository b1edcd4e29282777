package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// maxChunkSize keeps single writes under a typical MTU so frames stream
// smoothly over SSH.
const maxChunkSize = 1400

// ANSI control sequences.
const (
	clearScreen = "\033[H\033[2J"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// Frame accumulates one frame of terminal output and writes it in chunks.
// Canvas.Render writes into it through io.Writer.
type Frame struct {
	buf    strings.Builder
	out    *bufio.Writer
	numBuf [20]byte
}

var _ io.Writer = (*Frame)(nil)

// NewFrame creates a frame that flushes to w.
func NewFrame(w io.Writer) *Frame {
	return &Frame{out: bufio.NewWriterSize(w, 8192)}
}

// Write implements io.Writer.
func (f *Frame) Write(p []byte) (int, error) {
	return f.buf.Write(p)
}

// WriteString appends s.
func (f *Frame) WriteString(s string) {
	f.buf.WriteString(s)
}

// MoveCursor appends a cursor move to the 1-based (col, row).
func (f *Frame) MoveCursor(col, row int) {
	f.buf.WriteString("\033[")
	f.buf.Write(strconv.AppendInt(f.numBuf[:0], int64(row), 10))
	f.buf.WriteByte(';')
	f.buf.Write(strconv.AppendInt(f.numBuf[:0], int64(col), 10))
	f.buf.WriteByte('H')
}

// WriteAt writes s starting at the 1-based (col, row).
func (f *Frame) WriteAt(col, row int, s string) {
	f.MoveCursor(col, row)
	f.buf.WriteString(s)
}

// Clear appends a clear-screen sequence.
func (f *Frame) Clear() {
	f.buf.WriteString(clearScreen)
}

// HideCursor appends a hide-cursor sequence.
func (f *Frame) HideCursor() {
	f.buf.WriteString(hideCursor)
}

// ShowCursor appends a show-cursor sequence.
func (f *Frame) ShowCursor() {
	f.buf.WriteString(showCursor)
}

// Flush writes the accumulated output and resets the frame.
func (f *Frame) Flush() error {
	data := f.buf.String()
	f.buf.Reset()
	for len(data) > 0 {
		chunk := data[:min(len(data), maxChunkSize)]
		if _, err := f.out.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return f.out.Flush()
}

// TermSizeFunc reports the terminal size in cells.
type TermSizeFunc func() (cols, rows int, err error)

// StdoutSize reads the size of the terminal attached to stdout.
func StdoutSize() (cols, rows int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}
