package service

import (
	"testing"
	"time"

	"dsa_tracker_backend/internal/store"
	"dsa_tracker_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRequest() *ActivityRequest {
	return &ActivityRequest{
		Date:     time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		Category: "Arrays & Strings",
		Duration: 45,
		Value:    3,
	}
}

func TestActivityCreate(t *testing.T) {
	svc := NewActivityService(store.NewMemoryStore())

	activity, err := svc.Create(1, newTestRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, activity.ID)
	assert.Equal(t, uint(1), activity.UserID)
	assert.Equal(t, "Arrays & Strings", activity.Category)

	got, err := svc.GetByID(1, activity.ID)
	require.NoError(t, err)
	assert.Equal(t, activity.ID, got.ID)
}

func TestActivityCreateValidation(t *testing.T) {
	svc := NewActivityService(store.NewMemoryStore())

	req := newTestRequest()
	req.Date = time.Time{}
	_, err := svc.Create(1, req)
	assert.ErrorIs(t, err, util.ErrInvalidDate)

	req = newTestRequest()
	req.Value = 0
	_, err = svc.Create(1, req)
	assert.ErrorIs(t, err, util.ErrInvalidValue)

	req = newTestRequest()
	req.Value = 5
	_, err = svc.Create(1, req)
	assert.ErrorIs(t, err, util.ErrInvalidValue)

	req = newTestRequest()
	req.Duration = -10
	_, err = svc.Create(1, req)
	assert.ErrorIs(t, err, util.ErrInvalidDuration)
}

func TestActivityOwnership(t *testing.T) {
	svc := NewActivityService(store.NewMemoryStore())

	activity, err := svc.Create(1, newTestRequest())
	require.NoError(t, err)

	_, err = svc.GetByID(2, activity.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	err = svc.Delete(2, activity.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	_, err = svc.Update(2, activity.ID, newTestRequest())
	assert.ErrorIs(t, err, util.ErrPermissionDenied)
}

func TestActivityUpdate(t *testing.T) {
	svc := NewActivityService(store.NewMemoryStore())

	activity, err := svc.Create(1, newTestRequest())
	require.NoError(t, err)

	req := newTestRequest()
	req.Category = "Dynamic Programming"
	req.Value = 4
	topic := "DP"
	req.DSATopic = &topic

	updated, err := svc.Update(1, activity.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Dynamic Programming", updated.Category)
	assert.Equal(t, 4, updated.Value)
	require.NotNil(t, updated.DSATopic)
	assert.Equal(t, "DP", *updated.DSATopic)
}

func TestActivityDelete(t *testing.T) {
	svc := NewActivityService(store.NewMemoryStore())

	activity, err := svc.Create(1, newTestRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(1, activity.ID))

	_, err = svc.GetByID(1, activity.ID)
	assert.ErrorIs(t, err, store.ErrActivityNotFound)

	err = svc.Delete(1, "no-such-id")
	assert.ErrorIs(t, err, store.ErrActivityNotFound)
}

func TestActivityListByUser(t *testing.T) {
	svc := NewActivityService(store.NewMemoryStore())

	for i := 0; i < 3; i++ {
		_, err := svc.Create(1, newTestRequest())
		require.NoError(t, err)
	}
	_, err := svc.Create(2, newTestRequest())
	require.NoError(t, err)

	list, err := svc.ListByUser(1)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}
