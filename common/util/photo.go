package util

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
)

// MaxPhotoBytes bounds an uploaded photo after base64 decoding.
const MaxPhotoBytes = 5 << 20

// DecodePhoto turns a stored member photo into raw image bytes. The stored
// value is base64, with or without a data URL prefix. An empty value yields
// nil and no error.
func DecodePhoto(stored string) ([]byte, error) {
	data := strings.TrimSpace(stored)
	if data == "" {
		return nil, nil
	}

	if strings.HasPrefix(data, "data:") {
		comma := strings.IndexByte(data, ',')
		if comma < 0 {
			return nil, fmt.Errorf("malformed data URL")
		}
		if !strings.HasSuffix(data[:comma], ";base64") {
			return nil, fmt.Errorf("data URL is not base64 encoded")
		}
		data = data[comma+1:]
	}

	data = strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', ' ', '\t':
			return -1
		}
		return r
	}, data)

	if decoded, err := base64.StdEncoding.DecodeString(data); err == nil {
		return decoded, nil
	}
	decoded, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(data, "="))
	if err != nil {
		return nil, fmt.Errorf("failed to decode photo: %w", err)
	}
	return decoded, nil
}

// ValidatePhoto checks an uploaded photo before it is stored: it must decode
// the same way a badge render will decode it, and be a readable image.
func ValidatePhoto(stored string) error {
	raw, err := DecodePhoto(stored)
	if err != nil {
		return err
	}
	if raw == nil {
		return nil
	}
	if len(raw) > MaxPhotoBytes {
		return fmt.Errorf("photo is larger than %d bytes", MaxPhotoBytes)
	}
	if _, err := imaging.Decode(bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("photo is not a readable image: %w", err)
	}
	return nil
}
