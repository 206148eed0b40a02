// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/models"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run()
}

// sweeperRepository counts ClearStaleResetTokens calls and records the
// olderThan cutoff it last received.
type sweeperRepository struct {
	calls atomic.Int64
}

func (r *sweeperRepository) CreateUser(context.Context, string, string) (models.User, error) {
	return models.User{}, nil
}

func (r *sweeperRepository) FindUserBy(context.Context, map[store.UserField]any) (models.User, error) {
	return models.User{}, store.ErrNoUserWasFound
}

func (r *sweeperRepository) UpdateUser(context.Context, int64, map[store.UserField]any) error {
	return nil
}

func (r *sweeperRepository) ClearStaleResetTokens(_ context.Context, olderThan time.Time) (int64, error) {
	if time.Since(olderThan) < time.Hour {
		return 0, nil
	}
	r.calls.Add(1)
	return 1, nil
}

func TestResetTokenSweeper_Sweeps(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := &sweeperRepository{}
	sweeper := &resetTokenSweeper{
		repository: repo,
		ttl:        24 * time.Hour,
		interval:   5 * time.Millisecond,
		ctx:        ctx,
		logger:     logger.Nop(),
	}

	sweeper.Run()

	deadline := time.After(2 * time.Second)
	for repo.calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("sweeper never called ClearStaleResetTokens")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
}

func TestNewWorkers_SweeperDisabled(t *testing.T) {
	cfg := &config.StructuredConfig{}
	cfg.Workers.CleanupInterval = time.Hour
	// ResetTokenTTL left zero: sweeping must be off

	ws := NewWorkers(context.Background(), &store.Storages{}, cfg, logger.Nop())

	if len(ws.workers) != 0 {
		t.Fatalf("expected no workers, got %d", len(ws.workers))
	}
}

func TestNewWorkers_SweeperEnabled(t *testing.T) {
	cfg := &config.StructuredConfig{}
	cfg.Workers.CleanupInterval = time.Hour
	cfg.App.ResetTokenTTL = 24 * time.Hour

	ws := NewWorkers(context.Background(), &store.Storages{UserRepository: &sweeperRepository{}}, cfg, logger.Nop())

	if len(ws.workers) != 1 {
		t.Fatalf("expected one worker, got %d", len(ws.workers))
	}
}
