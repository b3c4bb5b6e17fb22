package badge

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/sunthewhat/koa-member-api/internal/pdfstamp"
)

// FileTemplateSource reads the template from the local filesystem on every
// call.
type FileTemplateSource struct {
	path string
}

func NewFileTemplateSource(path string) *FileTemplateSource {
	return &FileTemplateSource{path: path}
}

func (s *FileTemplateSource) Template(ctx context.Context) (*pdfstamp.Template, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateNotFound, err)
	}
	return loadTemplate(raw, s.path)
}

// MinioTemplateSource reads the template object from a bucket.
type MinioTemplateSource struct {
	client *minio.Client
	bucket string
	object string
}

func NewMinioTemplateSource(client *minio.Client, bucket, object string) *MinioTemplateSource {
	return &MinioTemplateSource{client: client, bucket: bucket, object: object}
}

func (s *MinioTemplateSource) Template(ctx context.Context) (*pdfstamp.Template, error) {
	if s.client == nil {
		return nil, fmt.Errorf("%w: minio client not initialized", ErrTemplateNotFound)
	}
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateNotFound, err)
	}
	defer obj.Close()

	raw, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateNotFound, err)
	}
	return loadTemplate(raw, s.bucket+"/"+s.object)
}

func loadTemplate(raw []byte, origin string) (*pdfstamp.Template, error) {
	tpl, err := pdfstamp.Load(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, origin, err)
	}
	return tpl, nil
}

// CachedTemplateSource keeps the first successfully loaded template. Failures
// are not cached, so a template that appears later is picked up.
type CachedTemplateSource struct {
	source TemplateSource

	mu       sync.Mutex
	template *pdfstamp.Template
}

func NewCachedTemplateSource(source TemplateSource) *CachedTemplateSource {
	return &CachedTemplateSource{source: source}
}

func (s *CachedTemplateSource) Template(ctx context.Context) (*pdfstamp.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.template != nil {
		return s.template, nil
	}
	tpl, err := s.source.Template(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("Badge template loaded", "width", tpl.Width(), "height", tpl.Height())
	s.template = tpl
	return tpl, nil
}
