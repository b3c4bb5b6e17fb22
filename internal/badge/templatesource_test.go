package badge

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sunthewhat/koa-member-api/internal/badge/mocks"
)

func TestFileTemplateSource(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "badge.pdf")
	require.NoError(t, os.WriteFile(good, templateBytes(t, 250, 500), 0o644))
	corrupt := filepath.Join(dir, "corrupt.pdf")
	require.NoError(t, os.WriteFile(corrupt, []byte("%PDF-1.4 truncated"), 0o644))

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "valid template", path: good},
		{name: "missing file", path: filepath.Join(dir, "nope.pdf"), wantErr: ErrTemplateNotFound},
		{name: "unparseable file", path: corrupt, wantErr: ErrTemplateNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl, err := NewFileTemplateSource(tt.path).Template(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, tpl)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, 250, tpl.Width(), 0.01)
			assert.InDelta(t, 500, tpl.Height(), 0.01)
		})
	}
}

func TestMinioTemplateSource_NoClient(t *testing.T) {
	_, err := NewMinioTemplateSource(nil, "templates", "badge.pdf").Template(context.Background())
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestCachedTemplateSource(t *testing.T) {
	tpl := loadedTemplate(t, 250, 500)

	t.Run("caches success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner := mocks.NewMockTemplateSource(ctrl)
		inner.EXPECT().Template(gomock.Any()).Return(tpl, nil).Times(1)

		cached := NewCachedTemplateSource(inner)
		for i := 0; i < 3; i++ {
			got, err := cached.Template(context.Background())
			require.NoError(t, err)
			assert.Same(t, tpl, got)
		}
	})

	t.Run("retries after failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner := mocks.NewMockTemplateSource(ctrl)
		gomock.InOrder(
			inner.EXPECT().Template(gomock.Any()).Return(nil, errors.Join(ErrTemplateNotFound, os.ErrNotExist)),
			inner.EXPECT().Template(gomock.Any()).Return(tpl, nil),
		)

		cached := NewCachedTemplateSource(inner)
		_, err := cached.Template(context.Background())
		require.ErrorIs(t, err, ErrTemplateNotFound)

		got, err := cached.Template(context.Background())
		require.NoError(t, err)
		assert.Same(t, tpl, got)
	})
}
