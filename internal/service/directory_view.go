package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"doctor-directory-bff/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrViewClosed is returned when a view was closed while work was pending.
	ErrViewClosed = errors.New("directory view is closed")
	// ErrDoctorNotLoaded is returned for keys the view has not loaded.
	ErrDoctorNotLoaded = errors.New("doctor is not in the loaded list")
	// ErrSlotNotOffered is returned when a doctor does not offer the slot.
	ErrSlotNotOffered = errors.New("slot is not offered by this doctor")
	// ErrStaleLoad is returned when a newer load started after this one.
	ErrStaleLoad = errors.New("a newer load superseded this one")
)

// DirectoryView is the state behind one open doctor list screen.
//
// All mutations happen under mu. Network calls must never run while mu is
// held; callers read what they need, release, call out, then write back.
type DirectoryView struct {
	ID uuid.UUID

	ctx    context.Context
	cancel context.CancelFunc

	mu            sync.Mutex
	doctors       []entity.DoctorRecord
	loading       bool
	loadGen       uint64
	loadedAt      time.Time
	counts        *entity.SubscriberCounter
	selectedSlots map[string]string
	closed        bool

	lastUsed atomic.Int64 // Unix timestamp
}

// ViewSnapshot is a consistent copy of a view's state.
type ViewSnapshot struct {
	ID            uuid.UUID
	Loading       bool
	LoadedAt      time.Time
	Doctors       []entity.DoctorRecord
	Counts        map[string]int
	SelectedSlots map[string]string
}

func newDirectoryView() *DirectoryView {
	ctx, cancel := context.WithCancel(context.Background())
	v := &DirectoryView{
		ID:            uuid.New(),
		ctx:           ctx,
		cancel:        cancel,
		doctors:       []entity.DoctorRecord{},
		loading:       true,
		counts:        entity.NewSubscriberCounter(),
		selectedSlots: make(map[string]string),
	}
	v.touch()
	return v
}

// Context is cancelled when the view closes. Upstream calls made on behalf of
// the view should derive from it.
func (v *DirectoryView) Context() context.Context {
	return v.ctx
}

// BeginLoading raises the loading flag before a (re)load and returns the
// load's generation. Only the latest generation may write results back.
func (v *DirectoryView) BeginLoading() (uint64, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return 0, ErrViewClosed
	}
	v.loadGen++
	v.loading = true
	return v.loadGen, nil
}

// FinishLoading lowers the loading flag whatever the load outcome was, unless
// a newer load is still running.
func (v *DirectoryView) FinishLoading(gen uint64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if gen == v.loadGen {
		v.loading = false
	}
}

// ReplaceDoctors swaps in a freshly fetched list and reseeds the counts when
// the list is non-empty. Results for a closed view or from a superseded load
// are dropped.
func (v *DirectoryView) ReplaceDoctors(gen uint64, doctors []entity.DoctorRecord) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return ErrViewClosed
	}
	if gen != v.loadGen {
		return ErrStaleLoad
	}
	if doctors == nil {
		doctors = []entity.DoctorRecord{}
	}
	v.doctors = doctors
	v.loadedAt = time.Now()
	v.counts.Seed(doctors)
	return nil
}

// Like increments the count for email and returns the new value.
func (v *DirectoryView) Like(email string) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return 0, ErrViewClosed
	}
	return v.counts.Like(email), nil
}

// Count returns the displayed count for email, 0 when unknown.
func (v *DirectoryView) Count(email string) int {
	v.mu.Lock()
	defer v.mu.Unlock()

	n, _ := v.counts.Count(email)
	return n
}

// Doctor returns a copy of the loaded record for email.
func (v *DirectoryView) Doctor(email string) (entity.DoctorRecord, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	d := entity.FindDoctor(v.doctors, email)
	if d == nil {
		return entity.DoctorRecord{}, false
	}
	return *d, true
}

// RecordSubscribe applies a confirmed subscription. It returns the count
// read just before the increment.
func (v *DirectoryView) RecordSubscribe(doctorEmail, userEmail string) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return 0, ErrViewClosed
	}
	before, _ := v.counts.Count(doctorEmail)
	v.counts.RecordSubscribe(doctorEmail, userEmail)
	return before, nil
}

// SelectSlot remembers the slot picked for a doctor.
func (v *DirectoryView) SelectSlot(doctorEmail, slot string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return ErrViewClosed
	}
	d := entity.FindDoctor(v.doctors, doctorEmail)
	if d == nil {
		return ErrDoctorNotLoaded
	}
	if !d.OffersSlot(slot) {
		return ErrSlotNotOffered
	}
	v.selectedSlots[doctorEmail] = slot
	return nil
}

// Snapshot copies the view state.
func (v *DirectoryView) Snapshot() ViewSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	doctors := make([]entity.DoctorRecord, len(v.doctors))
	copy(doctors, v.doctors)
	slots := make(map[string]string, len(v.selectedSlots))
	for k, s := range v.selectedSlots {
		slots[k] = s
	}

	return ViewSnapshot{
		ID:            v.ID,
		Loading:       v.loading,
		LoadedAt:      v.loadedAt,
		Doctors:       doctors,
		Counts:        v.counts.Snapshot(),
		SelectedSlots: slots,
	}
}

// Closed reports whether the view has been torn down.
func (v *DirectoryView) Closed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.closed
}

// close cancels in-flight work and rejects further writes. Safe to call twice.
func (v *DirectoryView) close() {
	v.mu.Lock()
	v.closed = true
	v.mu.Unlock()
	v.cancel()
}

func (v *DirectoryView) touch() {
	v.lastUsed.Store(time.Now().Unix())
}
