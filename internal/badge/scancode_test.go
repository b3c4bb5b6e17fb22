package badge

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicURL(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{base: "https://koa.org.in/member", want: "https://koa.org.in/member/KOA-1001/"},
		{base: "https://koa.org.in/member/", want: "https://koa.org.in/member/KOA-1001/"},
		{base: "https://koa.org.in/member//", want: "https://koa.org.in/member/KOA-1001/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PublicURL(tt.base, "KOA-1001"))
	}
}

func TestQREncoder_Encode(t *testing.T) {
	enc := NewQREncoder(DefaultLayout())

	img, err := enc.Encode("https://koa.org.in/member/KOA-1001/")
	require.NoError(t, err)

	// version 4 is 33 modules, plus a 4 module quiet zone each side, 10px per module
	b := img.Bounds()
	assert.Equal(t, 410, b.Dx())
	assert.Equal(t, b.Dx(), b.Dy())

	r, g, bl, _ := img.At(0, 0).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, bl}, "quiet zone is white")
	// top-left finder pattern starts right after the quiet zone
	assert.Equal(t, color.RGBAModel.Convert(color.Black), color.RGBAModel.Convert(img.At(45, 45)))
}

func TestQREncoder_Deterministic(t *testing.T) {
	enc := NewQREncoder(DefaultLayout())

	a, err := enc.Encode("https://koa.org.in/member/KOA-1001/")
	require.NoError(t, err)
	b, err := enc.Encode("https://koa.org.in/member/KOA-1001/")
	require.NoError(t, err)

	assert.Equal(t, pngBytes(t, a), pngBytes(t, b))
}

func TestQREncoder_Capacity(t *testing.T) {
	tests := []struct {
		name    string
		version int
		content string
	}{
		{name: "empty", version: 4, content: ""},
		{name: "too long for version 4", version: 4, content: "https://koa.org.in/member/" + strings.Repeat("x", 200) + "/"},
		{name: "version 1 cannot hold a profile URL", version: 1, content: "https://koa.org.in/member/KOA-1001/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := DefaultLayout()
			layout.ScanVersion = tt.version

			img, err := NewQREncoder(layout).Encode(tt.content)

			require.ErrorIs(t, err, ErrCapacity)
			assert.Nil(t, img)
		})
	}
}
