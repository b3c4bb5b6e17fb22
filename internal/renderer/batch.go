package renderer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/sunthewhat/koa-member-api/common/util"
	"github.com/sunthewhat/koa-member-api/internal/badge"
	"github.com/sunthewhat/koa-member-api/type/shared/model"
)

// BadgeRenderer produces a badge document for one member.
type BadgeRenderer interface {
	Render(ctx context.Context, in badge.MemberBadgeInput) (*badge.RenderedBadge, error)
}

// MemberInput converts a stored member into render input. A photo that cannot
// be decoded is dropped so the badge still renders without a portrait.
func MemberInput(member *model.Member) badge.MemberBadgeInput {
	photo, err := util.DecodePhoto(member.Photo)
	if err != nil {
		slog.Warn("Member photo could not be decoded", "error", err, "koalm", member.KoalmNumber)
		photo = nil
	}

	return badge.MemberBadgeInput{
		Identifier: member.KoalmNumber,
		Name:       member.Name,
		Photo:      photo,
	}
}

type BatchResult struct {
	KoalmNumber string
	Badge       *badge.RenderedBadge
	Error       error
}

// RenderAll renders the badges of many members in parallel and hands every
// finished badge to write. Results come back in member order.
func RenderAll(ctx context.Context, r BadgeRenderer, members []*model.Member, write func(*badge.RenderedBadge) error) []BatchResult {
	results := make([]BatchResult, len(members))
	if len(members) == 0 {
		return results
	}

	numWorkers := min(runtime.NumCPU(), len(members))
	slog.Info("Starting batch badge render", "workers", numWorkers, "members", len(members))

	jobChan := make(chan int, len(members))

	var wg sync.WaitGroup
	var writeMu sync.Mutex
	for range numWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobChan {
				member := members[i]
				result := BatchResult{KoalmNumber: member.KoalmNumber}

				result.Badge, result.Error = r.Render(ctx, MemberInput(member))
				if result.Error == nil && write != nil {
					writeMu.Lock()
					result.Error = write(result.Badge)
					writeMu.Unlock()
				}

				results[i] = result
			}
		}()
	}

	for i := range members {
		jobChan <- i
	}
	close(jobChan)
	wg.Wait()

	failed := 0
	for _, result := range results {
		if result.Error != nil {
			slog.Warn("Batch badge render failed", "koalm", result.KoalmNumber, "error", result.Error)
			failed++
		}
	}

	slog.Info("Completed batch badge render", "total", len(members), "successful", len(members)-failed, "errors", failed)
	return results
}

var ErrUnsafeFilename = errors.New("badge filename is not a plain file name")

// SafeFilename rejects names that would resolve outside the directory they
// are joined to. Member numbers come from imported data and end up in the name.
func SafeFilename(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("%w: %q", ErrUnsafeFilename, name)
	}
	return nil
}

// DirWriter writes every badge into dir under its own filename.
func DirWriter(dir string) func(*badge.RenderedBadge) error {
	return func(rendered *badge.RenderedBadge) error {
		if err := SafeFilename(rendered.Filename); err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(dir, rendered.Filename), rendered.Content, 0o644)
	}
}
