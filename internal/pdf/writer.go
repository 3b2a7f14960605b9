package pdf

import (
	"bytes"
	"fmt"
)

// writer serialises numbered PDF objects and tracks their byte offsets so
// the cross-reference table can be emitted at the end. Objects must be
// written in ascending number order starting from 1.
type writer struct {
	buf     bytes.Buffer
	offsets []int64
}

func newWriter() *writer {
	w := &writer{}
	w.buf.WriteString("%PDF-1.4\n")
	return w
}

func (w *writer) writeObject(num int, body string) {
	w.recordOffset(num)
	fmt.Fprintf(&w.buf, "%d 0 obj\n%s\nendobj\n", num, body)
}

// writeStreamObject writes a stream object. dictFormat must contain exactly
// one %d verb, which receives the stream length.
func (w *writer) writeStreamObject(num int, dictFormat string, stream []byte) {
	w.recordOffset(num)
	fmt.Fprintf(&w.buf, "%d 0 obj\n", num)
	fmt.Fprintf(&w.buf, dictFormat, len(stream))
	w.buf.WriteString("\nstream\n")
	w.buf.Write(stream)
	w.buf.WriteString("\nendstream\nendobj\n")
}

func (w *writer) recordOffset(num int) {
	// grow the offset table to hold object numbers written out of order
	for len(w.offsets) < num {
		w.offsets = append(w.offsets, 0)
	}
	w.offsets[num-1] = int64(w.buf.Len())
}

// finish writes the xref table and trailer and returns the full document.
func (w *writer) finish(rootRef int) []byte {
	xrefOffset := w.buf.Len()

	fmt.Fprintf(&w.buf, "xref\n0 %d\n", len(w.offsets)+1)
	w.buf.WriteString("0000000000 65535 f \n")
	for _, off := range w.offsets {
		fmt.Fprintf(&w.buf, "%010d 00000 n \n", off)
	}

	fmt.Fprintf(&w.buf,
		"trailer\n<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(w.offsets)+1, rootRef, xrefOffset)

	return w.buf.Bytes()
}
