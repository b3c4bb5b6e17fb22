package pdfstamp

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"github.com/digitorus/pdf"
)

type objRef struct {
	id  uint32
	gen uint16
}

func (r objRef) String() string {
	return fmt.Sprintf("%d %d R", r.id, r.gen)
}

func refOf(v pdf.Value) objRef {
	ptr := v.GetPtr()
	return objRef{id: ptr.GetID(), gen: ptr.GetGen()}
}

// serialize renders v back to PDF syntax. A value resolved from the same
// object as its container is written inline, anything else is an indirect
// object and is written as a reference.
func serialize(v pdf.Value, container objRef) string {
	var b bytes.Buffer
	writeValue(&b, v, container)
	return b.String()
}

func writeValue(b *bytes.Buffer, v pdf.Value, container objRef) {
	own := refOf(v)
	if v.Kind() == pdf.Stream || (own.id != 0 && own != container && v.Kind() != pdf.Null) {
		b.WriteString(own.String())
		return
	}

	switch v.Kind() {
	case pdf.Null:
		b.WriteString("null")
	case pdf.Bool:
		b.WriteString(strconv.FormatBool(v.Bool()))
	case pdf.Integer:
		b.WriteString(strconv.FormatInt(v.Int64(), 10))
	case pdf.Real:
		b.WriteString(formatNumber(v.Float64()))
	case pdf.String:
		fmt.Fprintf(b, "<%X>", v.RawString())
	case pdf.Name:
		b.WriteString(nameToken(v.Name()))
	case pdf.Array:
		b.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeValue(b, v.Index(i), own)
		}
		b.WriteByte(']')
	case pdf.Dict:
		entries := map[string]string{}
		for _, key := range v.Keys() {
			entries[key] = serialize(v.Key(key), own)
		}
		b.WriteString(dictionary(entries))
	default:
		b.WriteString("null")
	}
}

// dictionary writes entries with sorted keys so output never depends on map
// order.
func dictionary(entries map[string]string) string {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b bytes.Buffer
	b.WriteString("<<")
	for _, k := range keys {
		b.WriteString(nameToken(k))
		b.WriteByte(' ')
		b.WriteString(entries[k])
	}
	b.WriteString(">>")
	return b.String()
}

func nameToken(name string) string {
	var b bytes.Buffer
	b.WriteByte('/')
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c < 0x21 || c > 0x7e || bytes.IndexByte([]byte("()<>[]{}/%#"), c) >= 0 {
			fmt.Fprintf(&b, "#%02X", c)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func number(v pdf.Value) (float64, bool) {
	switch v.Kind() {
	case pdf.Integer:
		return float64(v.Int64()), true
	case pdf.Real:
		return v.Float64(), true
	}
	return 0, false
}

// inherited looks key up on the page and then up its /Parent chain, the way
// MediaBox and Resources are resolved for a page. It also returns the node
// the value was found on, which is the container to serialize it against.
func inherited(page pdf.Value, key string) (pdf.Value, objRef) {
	node := page
	for depth := 0; depth < 64 && node.Kind() == pdf.Dict; depth++ {
		if v := node.Key(key); v.Kind() != pdf.Null {
			return v, refOf(node)
		}
		node = node.Key("Parent")
	}
	return pdf.Value{}, objRef{}
}
