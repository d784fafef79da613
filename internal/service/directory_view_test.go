package service

import (
	"sync"
	"testing"

	"doctor-directory-bff/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedView(t *testing.T) *DirectoryView {
	t.Helper()
	v := newDirectoryView()
	gen, err := v.BeginLoading()
	require.NoError(t, err)
	require.NoError(t, v.ReplaceDoctors(gen, []entity.DoctorRecord{
		{Email: "kislay@example.com", Subscribers: []string{"a@x.com"}, Slots: []string{"10:30 AM", "12:30 PM"}},
		{Email: "ritesh@example.com"},
	}))
	v.FinishLoading(gen)
	return v
}

func TestDirectoryView_ReplaceDoctorsSeedsCounts(t *testing.T) {
	v := loadedView(t)

	snap := v.Snapshot()
	assert.False(t, snap.Loading)
	assert.Len(t, snap.Doctors, 2)
	assert.Equal(t, map[string]int{"kislay@example.com": 1, "ritesh@example.com": 0}, snap.Counts)
}

func TestDirectoryView_SupersededLoadIsDropped(t *testing.T) {
	v := newDirectoryView()

	first, err := v.BeginLoading()
	require.NoError(t, err)
	second, err := v.BeginLoading()
	require.NoError(t, err)
	assert.Greater(t, second, first)

	require.NoError(t, v.ReplaceDoctors(second, []entity.DoctorRecord{{Email: "new@example.com"}}))
	v.FinishLoading(second)

	// The older load returns late and must not overwrite the newer list.
	err = v.ReplaceDoctors(first, []entity.DoctorRecord{{Email: "old@example.com"}})
	assert.ErrorIs(t, err, ErrStaleLoad)
	v.FinishLoading(first)

	snap := v.Snapshot()
	assert.False(t, snap.Loading)
	require.Len(t, snap.Doctors, 1)
	assert.Equal(t, "new@example.com", snap.Doctors[0].Email)
}

func TestDirectoryView_OlderLoadDoesNotClearLoadingFlag(t *testing.T) {
	v := newDirectoryView()

	first, err := v.BeginLoading()
	require.NoError(t, err)
	second, err := v.BeginLoading()
	require.NoError(t, err)

	v.FinishLoading(first)
	assert.True(t, v.Snapshot().Loading)

	v.FinishLoading(second)
	assert.False(t, v.Snapshot().Loading)
}

func TestDirectoryView_RecordSubscribeReturnsPriorCount(t *testing.T) {
	v := loadedView(t)

	before, err := v.RecordSubscribe("kislay@example.com", "me@x.com")
	require.NoError(t, err)
	assert.Equal(t, 1, before)
	assert.Equal(t, 2, v.Count("kislay@example.com"))
}

func TestDirectoryView_ConcurrentLikesAreNotLost(t *testing.T) {
	v := loadedView(t)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = v.Like("ritesh@example.com")
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, v.Count("ritesh@example.com"))
	assert.Equal(t, 1, v.Count("kislay@example.com"))
}

func TestDirectoryView_SelectSlot(t *testing.T) {
	v := loadedView(t)

	assert.NoError(t, v.SelectSlot("kislay@example.com", "12:30 PM"))
	assert.ErrorIs(t, v.SelectSlot("kislay@example.com", "9:00 PM"), ErrSlotNotOffered)
	assert.ErrorIs(t, v.SelectSlot("nobody@example.com", "12:30 PM"), ErrDoctorNotLoaded)

	assert.Equal(t, map[string]string{"kislay@example.com": "12:30 PM"}, v.Snapshot().SelectedSlots)
}

func TestDirectoryView_SnapshotIsACopy(t *testing.T) {
	v := loadedView(t)

	snap := v.Snapshot()
	snap.Doctors[0].Email = "changed@example.com"
	snap.Counts["kislay@example.com"] = 99

	d, ok := v.Doctor("kislay@example.com")
	assert.True(t, ok)
	assert.Equal(t, "kislay@example.com", d.Email)
	assert.Equal(t, 1, v.Count("kislay@example.com"))
}
