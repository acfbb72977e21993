// Package scanner drives discovery over the whole media tree. It runs one scan
// at a time; requests arriving during a scan cancel it and queue one follow-up.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/openmediastation/mediaserver/pkg/discovery"
	"github.com/openmediastation/mediaserver/pkg/library"
	"github.com/openmediastation/mediaserver/pkg/logger"
	"github.com/openmediastation/mediaserver/pkg/machine"
	"go.uber.org/zap"
)

//go:generate mockgen -package mocks -destination mocks/mock_scanner.go github.com/openmediastation/mediaserver/pkg/scanner MediaFinder,Discovery

type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateCancelled State = "cancelled"
	StateError     State = "error"
)

var ErrScanInProgress = errors.New("scan already in progress")

// MediaFinder enumerates the media files currently on disk
type MediaFinder interface {
	FindMedia(ctx context.Context) (library.MediaSet, error)
}

// Discovery turns paths into inventory items and cleans up removed files
type Discovery interface {
	Create(ctx context.Context, path string) error
	MoveToBinIfDeleted(ctx context.Context, present library.MediaSet) error
}

// Result summarizes one scan. Skipped counts paths outside a known category
// and paths discovery could not parse.
type Result struct {
	StartedAt  time.Time     `json:"startedAt"`
	Duration   time.Duration `json:"duration"`
	Discovered int           `json:"discovered"`
	Failed     int           `json:"failed"`
	Skipped    int           `json:"skipped"`
}

// Status is a snapshot of the scanner
type Status struct {
	State      State   `json:"state"`
	Pending    bool    `json:"pending"`
	LastResult *Result `json:"lastResult,omitempty"`
	LastError  string  `json:"lastError,omitempty"`
}

type Scanner struct {
	media     MediaFinder
	discovery Discovery
	mediaRoot string
	state     *machine.StateMachine[State]

	// requests holds at most one pending scan
	requests chan struct{}

	mu         sync.Mutex
	cancelScan context.CancelFunc
	lastResult *Result
	lastErr    error
}

func New(mediaRoot string, media MediaFinder, discovery Discovery) *Scanner {
	return &Scanner{
		media:     media,
		discovery: discovery,
		mediaRoot: mediaRoot,
		requests:  make(chan struct{}, 1),
		state: machine.New(StateIdle,
			machine.From(StateIdle).To(StateRunning),
			machine.From(StateRunning).To(StateIdle, StateCancelled, StateError),
			machine.From(StateCancelled).To(StateRunning),
			machine.From(StateError).To(StateRunning),
		),
	}
}

// ActiveScan enumerates the media root, reconciles removed files and then
// discovers every path. A failing path is counted and logged; the scan goes on.
func (s *Scanner) ActiveScan(ctx context.Context) (Result, error) {
	if err := s.state.ToState(StateRunning); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrScanInProgress, err)
	}

	scanID := uuid.NewString()
	log := logger.FromCtx(ctx).With("scan", scanID)
	ctx = logger.WithCtx(ctx, log)

	result := Result{StartedAt: time.Now()}
	err := s.scan(ctx, &result)
	result.Duration = time.Since(result.StartedAt)

	next := StateIdle
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		next = StateCancelled
		log.Infow("scan cancelled", "discovered", result.Discovered)
	case err != nil:
		next = StateError
		log.Errorw("scan failed", "error", err)
	default:
		log.Infow("scan finished",
			"discovered", result.Discovered,
			"failed", result.Failed,
			"skipped", result.Skipped,
			"duration", result.Duration)
	}

	s.mu.Lock()
	s.lastResult = &result
	s.lastErr = err
	s.mu.Unlock()

	if stateErr := s.state.ToState(next); stateErr != nil {
		log.Error("failed to leave running state", zap.Error(stateErr))
	}

	return result, err
}

func (s *Scanner) scan(ctx context.Context, result *Result) error {
	log := logger.FromCtx(ctx)

	present, err := s.media.FindMedia(ctx)
	if err != nil {
		return fmt.Errorf("failed to enumerate media: %w", err)
	}
	log.Debugw("media found", "count", present.Len())

	if err := s.discovery.MoveToBinIfDeleted(ctx, present); err != nil {
		return fmt.Errorf("failed to reconcile inventory: %w", err)
	}

	for _, path := range present.Paths() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := library.Classify(path, s.mediaRoot); err != nil {
			log.Debugw("path outside known categories", "path", path, "error", err)
			result.Skipped++
			continue
		}

		if err := s.discovery.Create(ctx, path); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, discovery.ErrSkipped) {
				log.Debugw("path skipped by discovery", "path", path, "error", err)
				result.Skipped++
				continue
			}
			log.Warn("failed to discover path", zap.String("path", path), zap.Error(err))
			result.Failed++
			continue
		}

		result.Discovered++
	}

	return nil
}

// Trigger requests a rescan. A running scan is cancelled and at most one
// request stays pending, however often Trigger is called.
func (s *Scanner) Trigger() {
	s.mu.Lock()
	if s.cancelScan != nil {
		s.cancelScan()
	}
	s.mu.Unlock()

	select {
	case s.requests <- struct{}{}:
	default:
	}
}

// Run serves triggered scans until ctx is done
func (s *Scanner) Run(ctx context.Context) error {
	log := logger.FromCtx(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.requests:
		}

		scanCtx, cancel := context.WithCancel(ctx)
		s.mu.Lock()
		s.cancelScan = cancel
		s.mu.Unlock()

		if _, err := s.ActiveScan(scanCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Warnw("triggered scan did not complete", "error", err)
		}

		s.mu.Lock()
		s.cancelScan = nil
		s.mu.Unlock()
		cancel()
	}
}

func (s *Scanner) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := Status{
		State:   s.state.Current(),
		Pending: len(s.requests) > 0,
	}
	if s.lastResult != nil {
		r := *s.lastResult
		status.LastResult = &r
	}
	if s.lastErr != nil {
		status.LastError = s.lastErr.Error()
	}
	return status
}
