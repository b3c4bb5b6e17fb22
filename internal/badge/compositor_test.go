package badge

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestCompositor_Compose(t *testing.T) {
	c := NewCompositor(DefaultLayout())

	jpegPhoto := func() []byte {
		var buf bytes.Buffer
		require.NoError(t, jpeg.Encode(&buf, solidPhoto(400, 300, color.NRGBA{R: 10, G: 120, B: 200, A: 255}), nil))
		return buf.Bytes()
	}

	tests := []struct {
		name    string
		photo   []byte
		wantErr error
	}{
		{name: "png portrait", photo: pngBytes(t, solidPhoto(300, 500, color.NRGBA{R: 200, A: 255}))},
		{name: "jpeg landscape", photo: jpegPhoto()},
		{name: "tiny photo is not upscaled", photo: pngBytes(t, solidPhoto(3, 3, color.Black))},
		{name: "empty payload", photo: nil, wantErr: ErrDecode},
		{name: "not an image", photo: []byte("definitely not a photo"), wantErr: ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := c.Compose(tt.photo)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, out)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 120, 130), out.Bounds())
		})
	}
}

func TestCompositor_TinyPhotoIsCentred(t *testing.T) {
	out := NewCompositor(DefaultLayout()).ComposeImage(solidPhoto(2, 2, color.Black))

	// 110x120 inner area, 2x2 photo at (54,59), shifted by the 5px border
	assert.Equal(t, color.NRGBA{A: 255}, out.NRGBAAt(59, 64))
	assert.Equal(t, color.NRGBA{A: 255}, out.NRGBAAt(60, 65))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, out.NRGBAAt(58, 64))
}

func TestCompositor_Properties(t *testing.T) {
	layout := DefaultLayout()
	c := NewCompositor(layout)

	rapid.Check(t, func(t *rapid.T) {
		w := rapid.IntRange(1, 640).Draw(t, "width")
		h := rapid.IntRange(1, 640).Draw(t, "height")
		fill := color.NRGBA{
			R: rapid.Uint8().Draw(t, "r"),
			G: rapid.Uint8().Draw(t, "g"),
			B: rapid.Uint8().Draw(t, "b"),
			A: 255,
		}

		out := c.ComposeImage(solidPhoto(w, h, fill))

		if out.Bounds() != image.Rect(0, 0, layout.PortraitWidth, layout.PortraitHeight) {
			t.Fatalf("bounds %v", out.Bounds())
		}
		for _, p := range []image.Point{{0, 0}, {119, 0}, {0, 129}, {119, 129}} {
			if got := out.NRGBAAt(p.X, p.Y); got != (color.NRGBA{}) {
				t.Fatalf("corner %v not cleared: %v", p, got)
			}
		}
		// straight parts of the border ring stay white
		for _, p := range []image.Point{{2, 65}, {117, 65}, {60, 2}, {60, 127}} {
			if got := out.NRGBAAt(p.X, p.Y); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
				t.Fatalf("border pixel %v is %v", p, got)
			}
		}
		if a := out.NRGBAAt(60, 65).A; a != 255 {
			t.Fatalf("centre alpha %d", a)
		}
		for i := 3; i < len(out.Pix); i += 4 {
			if a := out.Pix[i]; a != 0 && a != 255 {
				t.Fatalf("partial alpha %d at %d", a, i/4)
			}
		}
	})
}

func TestRoundedMask(t *testing.T) {
	mask := roundedMask(40, 30, 10)

	assert.Equal(t, uint8(0), mask.AlphaAt(0, 0).A)
	assert.Equal(t, uint8(0xff), mask.AlphaAt(20, 15).A)
	assert.Equal(t, uint8(0xff), mask.AlphaAt(0, 15).A)
	assert.Equal(t, uint8(0xff), mask.AlphaAt(20, 0).A)
}
