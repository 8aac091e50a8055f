package cache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"orbit-ads/internal/core/domain"
	"orbit-ads/internal/core/port"
	"orbit-ads/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestSnapshotReady checks Snapshot reports not-ready until one refresh
// succeeds, then serves the loaded candidates.
func TestSnapshotReady(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	c := NewAdCache(repo, discardLogger(), time.Hour)

	if _, ok := c.Snapshot(); ok {
		t.Fatal("snapshot must not be ready before the first refresh")
	}

	want := []port.AdCandidate{{Ad: domain.Ad{ID: 1}}, {Ad: domain.Ad{ID: 2}}}
	repo.EXPECT().ListActiveCandidates(mock.Anything).Return(want, nil)

	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh error: %v", err)
	}

	got, ok := c.Snapshot()
	if !ok {
		t.Fatal("snapshot must be ready after a successful refresh")
	}
	if len(got) != 2 || got[0].Ad.ID != 1 || got[1].Ad.ID != 2 {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
}

// TestRefreshFailureKeepsSnapshot ensures a failed reload leaves the
// previous candidates in place.
func TestRefreshFailureKeepsSnapshot(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	c := NewAdCache(repo, discardLogger(), time.Hour)

	repo.EXPECT().ListActiveCandidates(mock.Anything).
		Return([]port.AdCandidate{{Ad: domain.Ad{ID: 1}}}, nil).
		Once()
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh error: %v", err)
	}

	repo.EXPECT().ListActiveCandidates(mock.Anything).
		Return(nil, errors.New("connection refused")).
		Once()
	if err := c.Refresh(context.Background()); err == nil {
		t.Fatal("expected refresh error")
	}

	got, ok := c.Snapshot()
	if !ok || len(got) != 1 || got[0].Ad.ID != 1 {
		t.Fatalf("previous snapshot must survive a failed refresh: %+v", got)
	}
}

// TestStartStop exercises the refresh loop lifecycle.
func TestStartStop(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	repo.EXPECT().ListActiveCandidates(mock.Anything).Return([]port.AdCandidate{}, nil)

	c := NewAdCache(repo, discardLogger(), 10*time.Millisecond)
	c.Start(context.Background())

	if _, ok := c.Snapshot(); !ok {
		t.Fatal("snapshot must be ready after Start")
	}
	c.Stop()
}
