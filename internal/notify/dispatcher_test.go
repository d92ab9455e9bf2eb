package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/testutil"
)

type mockSink struct {
	mock.Mock
}

func (m *mockSink) Name() string { return "mock" }

func (m *mockSink) Deliver(ctx context.Context, ev models.OutboxEvent) error {
	return m.Called(ev.ID).Error(0)
}

func newStore(t *testing.T) (*repository.NotificationGormRepository, func(salonID uuid.UUID, typ string) uuid.UUID) {
	t.Helper()
	gdb := testutil.NewDB(t)
	store := repository.NewNotificationGormRepository(gdb)

	base := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	count := 0
	add := func(salonID uuid.UUID, typ string) uuid.UUID {
		count++
		row := &models.OutboxEvent{
			SalonID:   salonID,
			Type:      typ,
			Title:     typ,
			Message:   "m",
			CreatedAt: base.Add(time.Duration(count) * time.Second),
		}
		require.NoError(t, gdb.Create(row).Error)
		return row.ID
	}
	return store, add
}

func TestFlushDeliversToInAppOnce(t *testing.T) {
	store, add := newStore(t)
	salon := uuid.New()
	first := add(salon, "appointment_booked")
	add(salon, "low_stock")

	d := NewDispatcher(store, zap.NewNop(), Options{}, NewInAppSink(store))

	n, err := d.Flush(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = d.Flush(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	list, err := store.ListNotifications(context.Background(), salon, false, 20)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "low_stock", list[0].Type)
	assert.Equal(t, first, list[1].ID)

	unread, err := store.UnreadCount(context.Background(), salon)
	require.NoError(t, err)
	assert.EqualValues(t, 2, unread)
}

func TestFlushRetriesUntilMaxAttempts(t *testing.T) {
	store, add := newStore(t)
	salon := uuid.New()
	id := add(salon, "appointment_cancelled")

	sink := &mockSink{}
	sink.On("Deliver", id).Return(errors.New("smtp down"))

	d := NewDispatcher(store, zap.NewNop(), Options{MaxAttempts: 3}, NewInAppSink(store), sink)

	for i := 0; i < 5; i++ {
		n, err := d.Flush(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	}

	sink.AssertNumberOfCalls(t, "Deliver", 3)

	pending, err := store.PendingOutbox(context.Background(), 3, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)

	pending, err = store.PendingOutbox(context.Background(), 100, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, 3, pending[0].Attempts)
	assert.Contains(t, pending[0].LastError, "mock: smtp down")

	// the in-app row was written on the first attempt and never duplicated
	list, err := store.ListNotifications(context.Background(), salon, false, 20)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestFlushRecoversAfterTransientFailure(t *testing.T) {
	store, add := newStore(t)
	id := add(uuid.New(), "payment_succeeded")

	sink := &mockSink{}
	sink.On("Deliver", id).Return(errors.New("timeout")).Once()
	sink.On("Deliver", id).Return(nil)

	d := NewDispatcher(store, zap.NewNop(), Options{}, sink)

	n, err := d.Flush(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = d.Flush(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	sink.AssertExpectations(t)
}

func TestWorkerDeliversOnWakeAndDrainsOnStop(t *testing.T) {
	store, add := newStore(t)
	salon := uuid.New()

	d := NewDispatcher(store, zap.NewNop(), Options{PollInterval: time.Hour}, NewInAppSink(store))
	d.Start()

	add(salon, "appointment_booked")
	d.Wake()
	d.Wake()

	assert.Eventually(t, func() bool {
		n, _ := store.UnreadCount(context.Background(), salon)
		return n == 1
	}, 2*time.Second, 10*time.Millisecond)

	add(salon, "low_stock")
	d.Stop()
	d.Stop()

	n, err := store.UnreadCount(context.Background(), salon)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestStopWithoutStart(t *testing.T) {
	store, _ := newStore(t)
	d := NewDispatcher(store, zap.NewNop(), Options{})

	done := make(chan struct{})
	go func() {
		d.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked")
	}
}
