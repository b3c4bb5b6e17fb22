package pdfstamp

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/digitorus/pdf"
)

// Template is a parsed single-page PDF. Everything Merge needs is extracted
// at load time, so a Template is immutable and safe for concurrent use.
type Template struct {
	raw []byte

	width   float64
	height  float64
	originX float64
	originY float64

	page      objRef
	pageDict  map[string]string
	contents  []objRef
	resources map[string]string
	fonts     map[string]string
	xobjects  map[string]string

	trailer    map[string]string
	size       uint32
	prevXref   int64
	xrefStream bool
}

// Load parses raw as a template document.
func Load(raw []byte) (t *Template, err error) {
	// the reader panics on some malformed input instead of returning errors
	defer func() {
		if r := recover(); r != nil {
			t = nil
			err = fmt.Errorf("%w: %v", ErrUnreadable, r)
		}
	}()

	data := make([]byte, len(raw))
	copy(data, raw)

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	trailer := reader.Trailer()
	if trailer.Key("Encrypt").Kind() != pdf.Null {
		return nil, ErrEncrypted
	}
	if n := reader.NumPage(); n != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrPageCount, n)
	}

	page := reader.Page(1).V
	if page.Kind() != pdf.Dict {
		return nil, fmt.Errorf("%w: page 1 is not a dictionary", ErrUnreadable)
	}

	t = &Template{
		raw:       data,
		page:      refOf(page),
		pageDict:  map[string]string{},
		resources: map[string]string{},
		fonts:     map[string]string{},
		xobjects:  map[string]string{},
		trailer:   map[string]string{},
	}
	if t.page.id == 0 {
		return nil, fmt.Errorf("%w: page is not an indirect object", ErrUnreadable)
	}

	if err := t.readMediaBox(page); err != nil {
		return nil, err
	}
	t.readPage(page)
	resources, _ := inherited(page, "Resources")
	t.readResources(resources)

	if err := t.readTrailer(trailer); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Template) Width() float64  { return t.width }
func (t *Template) Height() float64 { return t.height }

func (t *Template) readMediaBox(page pdf.Value) error {
	box, container := inherited(page, "MediaBox")
	if box.Kind() != pdf.Array || box.Len() != 4 {
		return fmt.Errorf("%w: missing MediaBox", ErrUnreadable)
	}
	var c [4]float64
	for i := range c {
		v, ok := number(box.Index(i))
		if !ok {
			return fmt.Errorf("%w: MediaBox entry %d is not a number", ErrUnreadable, i)
		}
		c[i] = v
	}
	t.originX = math.Min(c[0], c[2])
	t.originY = math.Min(c[1], c[3])
	t.width = math.Abs(c[2] - c[0])
	t.height = math.Abs(c[3] - c[1])
	if t.width <= 0 || t.height <= 0 {
		return fmt.Errorf("%w: empty MediaBox", ErrUnreadable)
	}
	t.pageDict["MediaBox"] = serialize(box, container)
	return nil
}

func (t *Template) readPage(page pdf.Value) {
	for _, key := range page.Keys() {
		switch key {
		case "Contents":
			contents := page.Key(key)
			switch contents.Kind() {
			case pdf.Stream:
				t.contents = append(t.contents, refOf(contents))
			case pdf.Array:
				for i := 0; i < contents.Len(); i++ {
					if item := contents.Index(i); item.Kind() == pdf.Stream {
						t.contents = append(t.contents, refOf(item))
					}
				}
			}
		case "Resources", "MediaBox":
		default:
			t.pageDict[key] = serialize(page.Key(key), t.page)
		}
	}
}

func (t *Template) readResources(res pdf.Value) {
	if res.Kind() != pdf.Dict {
		return
	}
	container := refOf(res)
	for _, key := range res.Keys() {
		v := res.Key(key)
		switch {
		case key == "Font" && v.Kind() == pdf.Dict:
			readEntries(v, t.fonts)
		case key == "XObject" && v.Kind() == pdf.Dict:
			readEntries(v, t.xobjects)
		default:
			t.resources[key] = serialize(v, container)
		}
	}
}

func readEntries(dict pdf.Value, into map[string]string) {
	container := refOf(dict)
	for _, key := range dict.Keys() {
		into[key] = serialize(dict.Key(key), container)
	}
}

func (t *Template) readTrailer(trailer pdf.Value) error {
	container := refOf(trailer)
	for _, key := range []string{"Root", "Info", "ID"} {
		if v := trailer.Key(key); v.Kind() != pdf.Null {
			t.trailer[key] = serialize(v, container)
		}
	}
	if _, ok := t.trailer["Root"]; !ok {
		return fmt.Errorf("%w: trailer has no Root", ErrUnreadable)
	}

	size := trailer.Key("Size").Int64()
	if size <= int64(t.page.id) {
		size = int64(t.page.id) + 1
	}
	t.size = uint32(size)

	prev, err := lastStartXref(t.raw)
	if err != nil {
		return err
	}
	t.prevXref = prev
	t.xrefStream = !bytes.HasPrefix(bytes.TrimLeft(t.raw[prev:], " \t\r\n"), []byte("xref"))
	return nil
}

func lastStartXref(raw []byte) (int64, error) {
	i := bytes.LastIndex(raw, []byte("startxref"))
	if i < 0 {
		return 0, fmt.Errorf("%w: missing startxref", ErrUnreadable)
	}
	fields := bytes.Fields(raw[i+len("startxref"):])
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: empty startxref", ErrUnreadable)
	}
	off, err := strconv.ParseInt(string(fields[0]), 10, 64)
	if err != nil || off < 0 || off >= int64(len(raw)) {
		return 0, fmt.Errorf("%w: bad startxref offset", ErrUnreadable)
	}
	return off, nil
}

// Merge draws overlay on top of the template page and returns the complete
// document. The template bytes are kept as they are and the overlay is
// appended as an incremental update, so the result is deterministic.
func (t *Template) Merge(overlay *Page) ([]byte, error) {
	if overlay == nil {
		return nil, fmt.Errorf("%w: nil overlay", ErrInvalidElement)
	}
	if math.Abs(overlay.Width-t.width) > 0.01 || math.Abs(overlay.Height-t.height) > 0.01 {
		return nil, fmt.Errorf("%w: overlay %gx%g, template %gx%g",
			ErrSizeMismatch, overlay.Width, overlay.Height, t.width, t.height)
	}

	w := newUpdateWriter(t.raw, t.size)

	fonts := copyEntries(t.fonts)
	xobjects := copyEntries(t.xobjects)
	fontNames := map[Font]string{}
	imageNames := map[int]string{}

	for i, el := range overlay.elements {
		switch el.Kind {
		case TextElement:
			if _, ok := fontNames[el.Font]; ok {
				continue
			}
			ref := w.alloc()
			w.writeObject(ref, dictionary(map[string]string{
				"Type":     "/Font",
				"Subtype":  "/Type1",
				"BaseFont": nameToken(el.Font.BaseFont()),
				"Encoding": "/WinAnsiEncoding",
			}))
			name := freeName("KoaF", fonts)
			fonts[name] = ref.String()
			fontNames[el.Font] = name
		case ImageElement:
			ref, err := writeImage(w, overlay.images[i])
			if err != nil {
				return nil, err
			}
			name := freeName("KoaIm", xobjects)
			xobjects[name] = ref.String()
			imageNames[i] = name
		}
	}

	var body bytes.Buffer
	if t.originX != 0 || t.originY != 0 {
		fmt.Fprintf(&body, "1 0 0 1 %s %s cm\n", formatNumber(t.originX), formatNumber(t.originY))
	}
	overlay.content(&body, fontNames, imageNames)

	open := w.alloc()
	if err := w.writeStream(open, nil, []byte("q\n")); err != nil {
		return nil, err
	}
	closing := w.alloc()
	if err := w.writeStream(closing, nil, append([]byte("Q\n"), body.Bytes()...)); err != nil {
		return nil, err
	}

	contents := []string{open.String()}
	for _, ref := range t.contents {
		contents = append(contents, ref.String())
	}
	contents = append(contents, closing.String())

	resources := copyEntries(t.resources)
	if len(fonts) > 0 {
		resources["Font"] = dictionary(fonts)
	}
	if len(xobjects) > 0 {
		resources["XObject"] = dictionary(xobjects)
	}

	page := copyEntries(t.pageDict)
	page["Contents"] = "[" + joinRefs(contents) + "]"
	page["Resources"] = dictionary(resources)
	w.writeObject(t.page, dictionary(page))

	if t.xrefStream {
		return w.finishStream(t.trailer, t.prevXref)
	}
	return w.finishTable(t.trailer, t.prevXref), nil
}

func writeImage(w *updateWriter, img *encodedImage) (objRef, error) {
	entries := map[string]string{
		"Type":             "/XObject",
		"Subtype":          "/Image",
		"Width":            strconv.Itoa(img.width),
		"Height":           strconv.Itoa(img.height),
		"ColorSpace":       "/DeviceRGB",
		"BitsPerComponent": "8",
	}
	if img.alpha != nil {
		mask := w.alloc()
		err := w.writeStream(mask, map[string]string{
			"Type":             "/XObject",
			"Subtype":          "/Image",
			"Width":            strconv.Itoa(img.width),
			"Height":           strconv.Itoa(img.height),
			"ColorSpace":       "/DeviceGray",
			"BitsPerComponent": "8",
		}, img.alpha)
		if err != nil {
			return objRef{}, err
		}
		entries["SMask"] = mask.String()
	}
	ref := w.alloc()
	if err := w.writeStream(ref, entries, img.rgb); err != nil {
		return objRef{}, err
	}
	return ref, nil
}

func freeName(prefix string, taken map[string]string) string {
	for i := 1; ; i++ {
		name := prefix + strconv.Itoa(i)
		if _, ok := taken[name]; !ok {
			return name
		}
	}
}

func joinRefs(refs []string) string {
	var b bytes.Buffer
	for i, r := range refs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(r)
	}
	return b.String()
}
