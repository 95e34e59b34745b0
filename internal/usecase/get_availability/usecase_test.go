package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

type fakeRepo struct {
	reservations []*domain.Reservation
	err          error
	calls        int
	lastFilter   domain.ReservationsFilter
}

func (f *fakeRepo) List(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	f.calls++
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.reservations, nil
}

type countingMetrics struct {
	degraded int
}

func (m *countingMetrics) IncAvailabilityDegraded() { m.degraded++ }

var testDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]domain.Service{
		{ID: "portrait", Name: "Portrait session", DurationHours: 2},
		{ID: "event", Name: "Event coverage", DurationHours: 4},
		{ID: "mini", Name: "Mini session", DurationHours: 1},
		{ID: "edit", Name: "Video editing", DurationHours: 0},
	})
	require.NoError(t, err)
	return c
}

func newGrid(t *testing.T, values ...string) *catalog.SlotGrid {
	t.Helper()
	if len(values) == 0 {
		values = domain.DefaultSlotGrid
	}
	g, err := catalog.NewSlotGrid(values)
	require.NoError(t, err)
	return g
}

func reservationAt(slot, serviceID string, hours int, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ServiceID:     serviceID,
		Date:          testDate,
		TimeSlot:      types.TimeString(slot),
		DurationHours: hours,
		Status:        status,
	}
}

func availabilityMap(slots []Slot) map[string]bool {
	out := make(map[string]bool, len(slots))
	for _, s := range slots {
		out[s.StartTime.String()] = s.Available
	}
	return out
}

func TestExecute_ScenarioPortraitAt13(t *testing.T) {
	repo := &fakeRepo{reservations: []*domain.Reservation{
		reservationAt("13:00", "portrait", 2, domain.StatusPending),
	}}
	uc := NewUseCase(repo, newCatalog(t), newGrid(t), time.Second, nil, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, ServiceID: "portrait"})
	require.NoError(t, err)

	assert.False(t, resp.Degraded)
	assert.Equal(t, []Slot{
		{StartTime: "09:00", Available: true},
		{StartTime: "11:00", Available: true},
		{StartTime: "13:00", Available: false},
		{StartTime: "15:00", Available: true},
		{StartTime: "17:00", Available: true},
	}, resp.Slots)
}

func TestExecute_ReturnsEveryGridSlotInOrder(t *testing.T) {
	grid := newGrid(t)
	repo := &fakeRepo{reservations: []*domain.Reservation{
		reservationAt("09:00", "event", 4, domain.StatusConfirmed),
	}}
	uc := NewUseCase(repo, newCatalog(t), grid, 0, nil, logger.Nop())

	for _, serviceID := range []string{"portrait", "event", "mini", "edit"} {
		resp, err := uc.Execute(context.Background(), &Request{Date: testDate, ServiceID: serviceID})
		require.NoError(t, err)
		require.Len(t, resp.Slots, len(grid.CandidateSlots()))
		for i, slot := range grid.CandidateSlots() {
			assert.Equal(t, slot, resp.Slots[i].StartTime)
		}
	}
}

func TestExecute_NoReservationsAllAvailable(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, newCatalog(t), newGrid(t), 0, nil, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, ServiceID: "event"})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available, slot.StartTime)
	}
}

func TestExecute_TwoHourReservationBlocksOverlappingHour(t *testing.T) {
	grid := newGrid(t, "09:00", "10:00", "11:00", "12:00", "13:00")
	repo := &fakeRepo{reservations: []*domain.Reservation{
		reservationAt("09:00", "portrait", 2, domain.StatusConfirmed),
	}}
	uc := NewUseCase(repo, newCatalog(t), grid, 0, nil, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, ServiceID: "portrait"})
	require.NoError(t, err)

	assert.Equal(t, map[string]bool{
		"09:00": false,
		"10:00": false,
		"11:00": true,
		"12:00": true,
		"13:00": true,
	}, availabilityMap(resp.Slots))
}

func TestExecute_LongServiceBlockedByLaterReservation(t *testing.T) {
	repo := &fakeRepo{reservations: []*domain.Reservation{
		reservationAt("13:00", "mini", 1, domain.StatusPending),
	}}
	uc := NewUseCase(repo, newCatalog(t), newGrid(t), 0, nil, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, ServiceID: "event"})
	require.NoError(t, err)

	// event 4h: 11:00-15:00 и 13:00-17:00 задевают 13:00-14:00, 09:00-13:00 только граничит
	assert.Equal(t, map[string]bool{
		"09:00": true,
		"11:00": false,
		"13:00": false,
		"15:00": true,
		"17:00": true,
	}, availabilityMap(resp.Slots))
}

func TestExecute_CancelledReservationNeverBlocks(t *testing.T) {
	repo := &fakeRepo{reservations: []*domain.Reservation{
		reservationAt("09:00", "event", 4, domain.StatusCancelled),
		reservationAt("13:00", "portrait", 2, domain.StatusCancelled),
	}}
	uc := NewUseCase(repo, newCatalog(t), newGrid(t), 0, nil, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, ServiceID: "portrait"})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available, slot.StartTime)
	}
}

func TestExecute_ZeroDurationTreatedAsOneHour(t *testing.T) {
	grid := newGrid(t, "09:00", "10:00", "11:00")

	t.Run("requested service without duration", func(t *testing.T) {
		repo := &fakeRepo{reservations: []*domain.Reservation{
			reservationAt("10:00", "mini", 1, domain.StatusPending),
		}}
		uc := NewUseCase(repo, newCatalog(t), grid, 0, nil, logger.Nop())

		resp, err := uc.Execute(context.Background(), &Request{Date: testDate, ServiceID: "edit"})
		require.NoError(t, err)
		assert.Equal(t, map[string]bool{"09:00": true, "10:00": false, "11:00": true}, availabilityMap(resp.Slots))
	})

	t.Run("reservation duration falls back to catalog", func(t *testing.T) {
		repo := &fakeRepo{reservations: []*domain.Reservation{
			reservationAt("09:00", "portrait", 0, domain.StatusPending),
		}}
		uc := NewUseCase(repo, newCatalog(t), grid, 0, nil, logger.Nop())

		resp, err := uc.Execute(context.Background(), &Request{Date: testDate, ServiceID: "mini"})
		require.NoError(t, err)
		assert.Equal(t, map[string]bool{"09:00": false, "10:00": false, "11:00": true}, availabilityMap(resp.Slots))
	})

	t.Run("unknown service without duration blocks one hour", func(t *testing.T) {
		repo := &fakeRepo{reservations: []*domain.Reservation{
			reservationAt("09:00", "retired", 0, domain.StatusPending),
		}}
		uc := NewUseCase(repo, newCatalog(t), grid, 0, nil, logger.Nop())

		resp, err := uc.Execute(context.Background(), &Request{Date: testDate, ServiceID: "mini"})
		require.NoError(t, err)
		assert.Equal(t, map[string]bool{"09:00": false, "10:00": true, "11:00": true}, availabilityMap(resp.Slots))
	})
}

func TestExecute_ReservationWithoutSlotIgnored(t *testing.T) {
	repo := &fakeRepo{reservations: []*domain.Reservation{
		{ServiceID: "edit", Date: testDate, Status: domain.StatusPending},
	}}
	uc := NewUseCase(repo, newCatalog(t), newGrid(t), 0, nil, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, ServiceID: "portrait"})
	require.NoError(t, err)
	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
	}
}

func TestExecute_StoreFailureDegradesToAllAvailable(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection refused")}
	m := &countingMetrics{}
	uc := NewUseCase(repo, newCatalog(t), newGrid(t), time.Second, m, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, ServiceID: "portrait"})
	require.NoError(t, err)

	assert.True(t, resp.Degraded)
	assert.Equal(t, 1, m.degraded)
	require.Len(t, resp.Slots, 5)
	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
	}
}

func TestExecute_QueriesByDateExcludingCancelled(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewUseCase(repo, newCatalog(t), newGrid(t), 0, nil, logger.Nop())

	withTime := time.Date(2025, 6, 1, 18, 45, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{Date: withTime, ServiceID: "portrait"})
	require.NoError(t, err)

	assert.Equal(t, testDate, resp.Date)
	require.Equal(t, 1, repo.calls)
	require.NotNil(t, repo.lastFilter.Date)
	assert.Equal(t, testDate, *repo.lastFilter.Date)
	assert.True(t, repo.lastFilter.ExcludeCancelled)
}

func TestExecute_InvalidInput(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewUseCase(repo, newCatalog(t), newGrid(t), 0, nil, logger.Nop())

	_, err := uc.Execute(context.Background(), &Request{ServiceID: "portrait"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: testDate, ServiceID: "wedding-deluxe"})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	assert.Zero(t, repo.calls)
}
