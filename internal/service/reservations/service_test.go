package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-StudioBooking/internal/service/reservations/models"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
	"github.com/m04kA/SMC-StudioBooking/pkg/ptr"
)

type fakeRepo struct {
	items      map[int64]*domain.Reservation
	listErr    error
	lastFilter domain.ReservationsFilter
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.items[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRepo) List(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	f.lastFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*domain.Reservation, 0, len(f.items))
	for _, r := range f.items {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	r, ok := f.items[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	r.Status = status
	return nil
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newService(items ...*domain.Reservation) (*Service, *fakeRepo) {
	repo := &fakeRepo{items: make(map[int64]*domain.Reservation)}
	for _, r := range items {
		repo.items[r.ID] = r
	}
	return NewService(repo, passthroughTx{}, logger.Nop()), repo
}

func pending(id int64) *domain.Reservation {
	return &domain.Reservation{
		ID:          id,
		ServiceID:   "portrait",
		ServiceName: "Portrait session",
		Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		TimeSlot:    "13:00",
		Status:      domain.StatusPending,
	}
}

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		from, to domain.ReservationStatus
		wantErr  error
	}{
		{domain.StatusPending, domain.StatusConfirmed, nil},
		{domain.StatusPending, domain.StatusCancelled, nil},
		{domain.StatusConfirmed, domain.StatusCancelled, nil},
		{domain.StatusConfirmed, domain.StatusPending, ErrInvalidTransition},
		{domain.StatusCancelled, domain.StatusConfirmed, ErrInvalidTransition},
		{domain.StatusPending, domain.StatusPending, ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			r := pending(1)
			r.Status = tt.from
			svc, repo := newService(r)

			resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: string(tt.to)})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.from, repo.items[1].Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, string(tt.to), resp.Status)
			assert.Equal(t, tt.to, repo.items[1].Status)
		})
	}
}

func TestUpdateStatus_UnknownStatusAndReservation(t *testing.T) {
	svc, _ := newService(pending(1))

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "archived"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetByID(t *testing.T) {
	svc, _ := newService(pending(7))

	resp, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", resp.Date)
	require.NotNil(t, resp.TimeSlot)
	assert.Equal(t, "13:00", *resp.TimeSlot)

	_, err = svc.GetByID(context.Background(), 8)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestList_Filters(t *testing.T) {
	svc, repo := newService(pending(1), pending(2))

	resp, err := svc.List(context.Background(), &models.ListReservationsRequest{Status: ptr.Ptr("pending")})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusPending, *repo.lastFilter.Status)

	_, err = svc.List(context.Background(), &models.ListReservationsRequest{Status: ptr.Ptr("bogus")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo.listErr = errors.New("db down")
	_, err = svc.List(context.Background(), &models.ListReservationsRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}
