package service

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// =============================================================================
// Errors
// =============================================================================

// ErrViewNotFound is returned for unknown or already closed view ids.
var ErrViewNotFound = errors.New("directory view not found")

// =============================================================================
// Constants
// =============================================================================

const (
	// Upper bound for how often idle views are swept
	maxCleanupInterval = time.Minute

	// Lower bound so tiny TTLs do not spin the ticker
	minCleanupInterval = time.Second
)

// =============================================================================
// Types
// =============================================================================

// ViewRegistry owns every open DirectoryView.
//
// A view lives from Open until Close, Stop, or until it has been idle longer
// than idleTTL. Closing a view cancels its context so in-flight upstream calls
// are aborted and their results dropped.
type ViewRegistry struct {
	views   sync.Map // map[uuid.UUID]*DirectoryView
	idleTTL time.Duration
	log     *logrus.Logger

	// Graceful shutdown
	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// =============================================================================
// Constructor
// =============================================================================

// NewViewRegistry creates a registry and starts the idle sweep goroutine.
// Call Stop() during graceful shutdown.
func NewViewRegistry(idleTTL time.Duration, log *logrus.Logger) *ViewRegistry {
	r := &ViewRegistry{
		idleTTL:  idleTTL,
		log:      log,
		stopChan: make(chan struct{}),
	}

	r.wg.Add(1)
	go r.cleanupLoop()

	return r
}

// =============================================================================
// Lifecycle Methods
// =============================================================================

// Stop closes every view and ends the sweep goroutine.
// Safe to call multiple times.
func (r *ViewRegistry) Stop() {
	if r.stopped.CompareAndSwap(false, true) {
		close(r.stopChan)
		r.wg.Wait()

		r.views.Range(func(key, value any) bool {
			if view, ok := value.(*DirectoryView); ok {
				view.close()
			}
			r.views.Delete(key)
			return true
		})
		r.log.Info("ViewRegistry stopped")
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// Open registers a new view. The caller starts its loader.
func (r *ViewRegistry) Open() *DirectoryView {
	view := newDirectoryView()
	r.views.Store(view.ID, view)
	r.log.Debugf("Opened directory view %s", view.ID)
	return view
}

// Get returns an open view and marks it as used.
func (r *ViewRegistry) Get(id uuid.UUID) (*DirectoryView, error) {
	value, ok := r.views.Load(id)
	if !ok {
		return nil, ErrViewNotFound
	}
	view := value.(*DirectoryView)
	view.touch()
	return view, nil
}

// Close tears a view down and forgets it.
func (r *ViewRegistry) Close(id uuid.UUID) error {
	value, ok := r.views.LoadAndDelete(id)
	if !ok {
		return ErrViewNotFound
	}
	value.(*DirectoryView).close()
	r.log.Debugf("Closed directory view %s", id)
	return nil
}

// Len returns the number of open views.
func (r *ViewRegistry) Len() int {
	n := 0
	r.views.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// =============================================================================
// Private Helper Methods
// =============================================================================

func (r *ViewRegistry) cleanupInterval() time.Duration {
	interval := r.idleTTL / 2
	if interval > maxCleanupInterval {
		return maxCleanupInterval
	}
	if interval < minCleanupInterval {
		return minCleanupInterval
	}
	return interval
}

// cleanupLoop runs in background to close idle views
func (r *ViewRegistry) cleanupLoop() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.cleanupInterval())
	defer ticker.Stop()

	for {
		select {
		case <-r.stopChan:
			r.log.Debug("View cleanup goroutine stopping")
			return
		case <-ticker.C:
			r.closeIdleViews(time.Now().Add(-r.idleTTL).Unix())
		}
	}
}

// closeIdleViews closes views whose last use is older than cutoff (Unix seconds).
func (r *ViewRegistry) closeIdleViews(cutoff int64) int {
	var closed int

	r.views.Range(func(key, value any) bool {
		view, ok := value.(*DirectoryView)
		if !ok {
			return true
		}
		if view.lastUsed.Load() < cutoff {
			if _, loaded := r.views.LoadAndDelete(key); loaded {
				view.close()
				closed++
			}
		}
		return true
	})

	if closed > 0 {
		r.log.Infof("Closed %d idle directory views", closed)
	}
	return closed
}
