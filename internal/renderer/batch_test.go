package renderer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunthewhat/koa-member-api/internal/badge"
	"github.com/sunthewhat/koa-member-api/type/shared/model"
)

type stubRenderer struct {
	mu    sync.Mutex
	calls []string
	fail  map[string]error
}

func (s *stubRenderer) Render(ctx context.Context, in badge.MemberBadgeInput) (*badge.RenderedBadge, error) {
	s.mu.Lock()
	s.calls = append(s.calls, in.Identifier)
	s.mu.Unlock()

	if err := s.fail[in.Identifier]; err != nil {
		return nil, err
	}
	return &badge.RenderedBadge{Content: []byte(in.Identifier), Filename: "KOA_Badge_" + in.Identifier + ".pdf"}, nil
}

func TestMemberInput(t *testing.T) {
	tests := []struct {
		name      string
		photo     string
		wantPhoto bool
	}{
		{name: "data url photo", photo: "data:image/png;base64,iVBORw0KGgo=", wantPhoto: true},
		{name: "no photo"},
		{name: "undecodable photo", photo: "data:image/png,raw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := MemberInput(&model.Member{KoalmNumber: "KOA-1001", Name: "Dr. A. Kumar", Photo: tt.photo})
			assert.Equal(t, "KOA-1001", in.Identifier)
			assert.Equal(t, "Dr. A. Kumar", in.Name)
			assert.Equal(t, tt.wantPhoto, in.Photo != nil)
		})
	}
}

func TestRenderAll(t *testing.T) {
	members := []*model.Member{
		{KoalmNumber: "KOA-1001", Name: "Dr. A. Kumar"},
		{KoalmNumber: "KOA-1002", Name: "Dr. B. Nair"},
		{KoalmNumber: "KOA-1003", Name: "Dr. D. Pillai"},
		{KoalmNumber: "KOA-1004", Name: "Dr. E. Varma"},
	}
	stub := &stubRenderer{fail: map[string]error{"KOA-1003": badge.ErrCapacity}}

	var written []string
	results := RenderAll(context.Background(), stub, members, func(rendered *badge.RenderedBadge) error {
		written = append(written, rendered.Filename)
		if rendered.Filename == "KOA_Badge_KOA-1004.pdf" {
			return errors.New("disk full")
		}
		return nil
	})

	require.Len(t, results, 4)
	assert.Len(t, stub.calls, 4)
	for i, member := range members {
		assert.Equal(t, member.KoalmNumber, results[i].KoalmNumber, "results keep member order")
	}

	assert.NoError(t, results[0].Error)
	assert.NoError(t, results[1].Error)
	assert.ErrorIs(t, results[2].Error, badge.ErrCapacity)
	assert.EqualError(t, results[3].Error, "disk full")
	assert.ElementsMatch(t, []string{"KOA_Badge_KOA-1001.pdf", "KOA_Badge_KOA-1002.pdf", "KOA_Badge_KOA-1004.pdf"}, written)
}

func TestRenderAll_NoMembers(t *testing.T) {
	assert.Empty(t, RenderAll(context.Background(), &stubRenderer{}, nil, nil))
}

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{name: "badge filename", filename: "KOA_Badge_KOA-1001.pdf"},
		{name: "empty", filename: "", wantErr: true},
		{name: "parent dir", filename: "..", wantErr: true},
		{name: "traversal", filename: "KOA_Badge_../../../tmp/x.pdf", wantErr: true},
		{name: "absolute", filename: "/etc/passwd", wantErr: true},
		{name: "backslash", filename: `KOA_Badge_..\x.pdf`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SafeFilename(tt.filename)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsafeFilename)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRenderAll_DirWriterStaysInDir(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "out")
	require.NoError(t, os.Mkdir(dir, 0o755))

	members := []*model.Member{
		{KoalmNumber: "KOA-1001", Name: "Dr. A. Kumar"},
		{KoalmNumber: "../escaped", Name: "Dr. B. Nair"},
	}

	results := RenderAll(context.Background(), &stubRenderer{}, members, DirWriter(dir))
	require.Len(t, results, 2)

	assert.NoError(t, results[0].Error)
	written, err := os.ReadFile(filepath.Join(dir, "KOA_Badge_KOA-1001.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "KOA-1001", string(written))

	assert.ErrorIs(t, results[1].Error, ErrUnsafeFilename)
	_, err = os.Stat(filepath.Join(root, "escaped.pdf"))
	assert.True(t, os.IsNotExist(err))
}
