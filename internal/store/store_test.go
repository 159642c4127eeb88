package store

import (
	"path/filepath"
	"testing"
	"time"

	"dsa_tracker_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestActivity(userID uint) *model.Activity {
	return &model.Activity{
		UserID:   userID,
		Date:     time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		Category: "Linked Lists",
		Duration: 45,
		Value:    3,
	}
}

func runStoreSuite(t *testing.T, s ActivityStore) {
	a := newTestActivity(1)
	require.NoError(t, s.Create(a))
	require.NotEmpty(t, a.ID)

	got, err := s.FindByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Linked Lists", got.Category)

	b := newTestActivity(1)
	b.Date = b.Date.AddDate(0, 0, 1)
	require.NoError(t, s.Create(b))
	require.NoError(t, s.Create(newTestActivity(2)))

	list, err := s.FindByUser(1)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	// 按日期降序
	assert.Equal(t, b.ID, list[0].ID)

	got.Duration = 90
	require.NoError(t, s.Update(got))
	updated, err := s.FindByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 90, updated.Duration)

	require.NoError(t, s.Delete(a.ID))
	_, err = s.FindByID(a.ID)
	assert.ErrorIs(t, err, ErrActivityNotFound)

	assert.ErrorIs(t, s.Delete("missing"), ErrActivityNotFound)
	assert.ErrorIs(t, s.Update(&model.Activity{UUIDBase: model.UUIDBase{ID: "missing"}}), ErrActivityNotFound)
}

func TestMemoryStore(t *testing.T) {
	runStoreSuite(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.json")
	s, err := NewFileStore(path)
	require.NoError(t, err)
	runStoreSuite(t, s)
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.json")
	s1, err := NewFileStore(path)
	require.NoError(t, err)

	a := newTestActivity(7)
	require.NoError(t, s1.Create(a))

	s2, err := NewFileStore(path)
	require.NoError(t, err)
	list, err := s2.FindByUser(7)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, a.ID, list[0].ID)
}
