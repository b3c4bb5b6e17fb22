package pdfstamp

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"sort"
)

// updateWriter appends an incremental update to an existing PDF: new and
// replaced objects, a cross-reference section covering only them, and a
// trailer chained to the previous section through /Prev.
type updateWriter struct {
	buf     bytes.Buffer
	offsets map[uint32]int64
	gens    map[uint32]uint16
	next    uint32
}

func newUpdateWriter(original []byte, firstFree uint32) *updateWriter {
	w := &updateWriter{
		offsets: map[uint32]int64{},
		gens:    map[uint32]uint16{},
		next:    firstFree,
	}
	w.buf.Grow(len(original) + 64*1024)
	w.buf.Write(original)
	if n := len(original); n == 0 || (original[n-1] != '\n' && original[n-1] != '\r') {
		w.buf.WriteByte('\n')
	}
	return w
}

func (w *updateWriter) alloc() objRef {
	ref := objRef{id: w.next}
	w.next++
	return ref
}

func (w *updateWriter) begin(ref objRef) {
	w.offsets[ref.id] = int64(w.buf.Len())
	w.gens[ref.id] = ref.gen
	fmt.Fprintf(&w.buf, "%d %d obj\n", ref.id, ref.gen)
}

func (w *updateWriter) writeObject(ref objRef, body string) {
	w.begin(ref)
	w.buf.WriteString(body)
	w.buf.WriteString("\nendobj\n")
}

// writeStream writes data Flate-compressed. entries must not carry /Length
// or /Filter.
func (w *updateWriter) writeStream(ref objRef, entries map[string]string, data []byte) error {
	compressed, err := deflate(data)
	if err != nil {
		return err
	}
	dict := make(map[string]string, len(entries)+2)
	for k, v := range entries {
		dict[k] = v
	}
	dict["Filter"] = "/FlateDecode"
	dict["Length"] = fmt.Sprint(len(compressed))

	w.begin(ref)
	w.buf.WriteString(dictionary(dict))
	w.buf.WriteString("\nstream\n")
	w.buf.Write(compressed)
	w.buf.WriteString("\nendstream\nendobj\n")
	return nil
}

func deflate(data []byte) ([]byte, error) {
	var b bytes.Buffer
	zw := zlib.NewWriter(&b)
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func (w *updateWriter) ids() []uint32 {
	ids := make([]uint32, 0, len(w.offsets))
	for id := range w.offsets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// subsections groups sorted ids into runs of consecutive numbers.
func subsections(ids []uint32) [][]uint32 {
	var runs [][]uint32
	for i, id := range ids {
		if i == 0 || id != ids[i-1]+1 {
			runs = append(runs, nil)
		}
		runs[len(runs)-1] = append(runs[len(runs)-1], id)
	}
	return runs
}

func (w *updateWriter) size() uint32 {
	return w.next
}

// finishTable ends the update with a classic xref table and trailer.
func (w *updateWriter) finishTable(trailer map[string]string, prev int64) []byte {
	start := w.buf.Len()
	w.buf.WriteString("xref\n")
	for _, run := range subsections(w.ids()) {
		fmt.Fprintf(&w.buf, "%d %d\n", run[0], len(run))
		for _, id := range run {
			fmt.Fprintf(&w.buf, "%010d %05d n \n", w.offsets[id], w.gens[id])
		}
	}

	entries := copyEntries(trailer)
	entries["Size"] = fmt.Sprint(w.size())
	entries["Prev"] = fmt.Sprint(prev)
	w.buf.WriteString("trailer\n")
	w.buf.WriteString(dictionary(entries))
	fmt.Fprintf(&w.buf, "\nstartxref\n%d\n%%%%EOF\n", start)
	return w.buf.Bytes()
}

// finishStream ends the update with a cross-reference stream, required when
// the file being updated already uses them.
func (w *updateWriter) finishStream(trailer map[string]string, prev int64) ([]byte, error) {
	ref := w.alloc()
	start := int64(w.buf.Len())
	w.offsets[ref.id] = start
	w.gens[ref.id] = 0

	var index bytes.Buffer
	var rows bytes.Buffer
	for i, run := range subsections(w.ids()) {
		if i > 0 {
			index.WriteByte(' ')
		}
		fmt.Fprintf(&index, "%d %d", run[0], len(run))
		for _, id := range run {
			row := make([]byte, 7)
			row[0] = 1
			binary.BigEndian.PutUint32(row[1:5], uint32(w.offsets[id]))
			binary.BigEndian.PutUint16(row[5:7], w.gens[id])
			rows.Write(row)
		}
	}

	entries := copyEntries(trailer)
	entries["Type"] = "/XRef"
	entries["Size"] = fmt.Sprint(w.size())
	entries["Prev"] = fmt.Sprint(prev)
	entries["W"] = "[1 4 2]"
	entries["Index"] = "[" + index.String() + "]"

	if err := w.writeStream(ref, entries, rows.Bytes()); err != nil {
		return nil, err
	}
	fmt.Fprintf(&w.buf, "startxref\n%d\n%%%%EOF\n", start)
	return w.buf.Bytes(), nil
}

func copyEntries(src map[string]string) map[string]string {
	out := make(map[string]string, len(src)+6)
	for k, v := range src {
		out[k] = v
	}
	return out
}
