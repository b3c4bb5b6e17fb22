package util

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sunthewhat/koa-member-api/internal/badge"
)

// BadgeArchive keeps a copy of every rendered badge in a MinIO bucket.
type BadgeArchive struct {
	bucket string
}

func NewBadgeArchive(bucket string) *BadgeArchive {
	return &BadgeArchive{bucket: bucket}
}

// ArchiveObjectName is the key a badge is stored under: one folder per member,
// one random name per render.
func ArchiveObjectName(koalm string, id uuid.UUID) string {
	return fmt.Sprintf("%s/%s.pdf", koalm, id.String())
}

func (a *BadgeArchive) Archive(ctx context.Context, koalm string, content []byte) (string, error) {
	return UploadBytes(ctx, a.bucket, ArchiveObjectName(koalm, uuid.New()), content, badge.ContentType)
}

// StartArchiveCleanupJob starts a background job that deletes archived
// badges older than maxAge.
func StartArchiveCleanupJob(bucket string, maxAge time.Duration) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("Panic occurred in archive cleanup job", "panic", r)
			}
		}()

		// Run immediately on startup to clean up any old badges
		slog.Info("Archive cleanup job: Initial run starting")
		CleanupOldArchives(context.Background(), bucket, maxAge)

		// Then run every 24 hours
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			slog.Info("Archive cleanup job: Scheduled run starting")
			CleanupOldArchives(context.Background(), bucket, maxAge)
		}
	}()

	slog.Info("Archive cleanup job started successfully", "bucket", bucket, "maxAge", maxAge.String())
}

// CleanupOldArchives removes archived badges older than maxAge.
func CleanupOldArchives(ctx context.Context, bucket string, maxAge time.Duration) {
	startTime := time.Now()

	keys, err := ListObjectsBefore(ctx, bucket, "", startTime.Add(-maxAge))
	if err != nil {
		slog.Error("CleanupOldArchives: Listing failed", "error", err, "bucket", bucket)
		return
	}

	removed := 0
	for _, key := range keys {
		if err := DeleteFile(ctx, bucket, key); err != nil {
			slog.Warn("CleanupOldArchives: Delete failed", "error", err, "object", key)
			continue
		}
		removed++
	}

	slog.Info("CleanupOldArchives: Completed", "removed", removed, "candidates", len(keys), "duration", time.Since(startTime))
}
