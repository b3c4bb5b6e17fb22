package util

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePhoto(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0x01}
	encoded := base64.StdEncoding.EncodeToString(raw)

	testCases := []struct {
		name    string
		stored  string
		want    []byte
		wantErr bool
	}{
		{name: "empty", stored: "", want: nil},
		{name: "whitespace only", stored: "  \n", want: nil},
		{name: "plain base64", stored: encoded, want: raw},
		{name: "data URL", stored: "data:image/png;base64," + encoded, want: raw},
		{name: "wrapped lines", stored: encoded[:4] + "\n" + encoded[4:], want: raw},
		{name: "missing padding", stored: base64.RawStdEncoding.EncodeToString(raw), want: raw},
		{name: "data URL without comma", stored: "data:image/png;base64", wantErr: true},
		{name: "data URL not base64", stored: "data:text/plain,hello", wantErr: true},
		{name: "not base64", stored: "!!!not base64!!!", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodePhoto(tc.stored)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// 1x1 transparent PNG
const pixelPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

func TestValidatePhoto(t *testing.T) {
	testCases := []struct {
		name    string
		stored  string
		wantErr bool
	}{
		{name: "cleared", stored: ""},
		{name: "png", stored: pixelPNG},
		{name: "png data URL", stored: "data:image/png;base64," + pixelPNG},
		{name: "not base64", stored: "!!!", wantErr: true},
		{name: "base64 but not an image", stored: base64.StdEncoding.EncodeToString([]byte("hello")), wantErr: true},
		{name: "too large", stored: base64.StdEncoding.EncodeToString(make([]byte, MaxPhotoBytes+1)), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePhoto(tc.stored)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
