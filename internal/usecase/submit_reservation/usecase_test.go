package submit_reservation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/notify"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
	"github.com/m04kA/SMC-StudioBooking/internal/usecase/get_availability"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

type fakeRepo struct {
	existing  []*domain.Reservation
	listErr   error
	createErr error
	created   []*domain.Reservation
	listCalls int
	nextID    int64
}

func (f *fakeRepo) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	r.ID = f.nextID
	r.CreatedAt = time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
	f.created = append(f.created, r)
	return r, nil
}

func (f *fakeRepo) List(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append(f.existing, f.created...), nil
}

type fakeTx struct {
	calls int
}

func (f *fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeNotifier struct {
	sent   []notify.Notification
	accept bool
}

func (f *fakeNotifier) Dispatch(n notify.Notification) bool {
	f.sent = append(f.sent, n)
	return f.accept
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

var now = time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)

type fixture struct {
	repo     *fakeRepo
	tx       *fakeTx
	notifier *fakeNotifier
	catalog  *catalog.Catalog
	grid     *catalog.SlotGrid
	uc       *UseCase
}

func newFixture(t *testing.T, strict bool) *fixture {
	t.Helper()

	c, err := catalog.New([]domain.Service{
		{ID: "portrait", Name: "Portrait session", DurationHours: 2},
		{ID: "edit", Name: "Video editing", DurationHours: 0},
	})
	require.NoError(t, err)

	grid, err := catalog.NewSlotGrid(domain.DefaultSlotGrid)
	require.NoError(t, err)

	f := &fixture{
		repo:     &fakeRepo{},
		tx:       &fakeTx{},
		notifier: &fakeNotifier{accept: true},
		catalog:  c,
		grid:     grid,
	}
	f.uc = NewUseCase(f.repo, f.tx, c, grid, f.notifier, nil, Options{
		StrictSlotCheck: strict,
		NotifyTo:        "studio@example.com",
	}, logger.Nop())
	f.uc.timeProvider = fixedTime{now: now}

	return f
}

func validDraft() *Request {
	return &Request{
		CustomerName:  "Thandi Nkosi",
		CustomerEmail: "thandi@example.com",
		CustomerPhone: "+27 82 000 0000",
		ServiceID:     "portrait",
		Date:          time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		TimeSlot:      "13:00",
		Location:      "Umhlanga",
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(t, false)

	resp, err := f.uc.Execute(context.Background(), validDraft())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, domain.StatusPending, resp.Status)
	assert.Equal(t, "Portrait session", resp.ServiceName)
	assert.Equal(t, 2, resp.DurationHours)
	require.NotNil(t, resp.TimeSlot)
	assert.Equal(t, types.TimeString("13:00"), *resp.TimeSlot)
	assert.False(t, resp.CreatedAt.IsZero())

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, notify.KindBooking, f.notifier.sent[0].Kind)
	assert.Equal(t, "studio@example.com", f.notifier.sent[0].To)
	assert.Equal(t, "thandi@example.com", f.notifier.sent[0].ReplyTo)

	assert.Zero(t, f.tx.calls)
	assert.Zero(t, f.repo.listCalls)
}

func TestExecute_EmptyEmailIsValidationErrorWithoutWrite(t *testing.T) {
	for _, email := range []string{"", "   "} {
		f := newFixture(t, false)
		draft := validDraft()
		draft.CustomerEmail = email

		_, err := f.uc.Execute(context.Background(), draft)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Empty(t, f.repo.created)
		assert.Empty(t, f.notifier.sent)
	}
}

func TestExecute_OverlongEmailIsValidationErrorWithoutWrite(t *testing.T) {
	f := newFixture(t, false)
	draft := validDraft()
	draft.CustomerEmail = strings.Repeat("a", 64) + "@" + strings.Repeat("b", 260) + ".com"

	_, err := f.uc.Execute(context.Background(), draft)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, f.repo.created)
	assert.Empty(t, f.notifier.sent)
	assert.Zero(t, f.tx.calls)
}

func TestExecute_ValidationRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"missing name", func(r *Request) { r.CustomerName = "" }},
		{"missing phone", func(r *Request) { r.CustomerPhone = " " }},
		{"malformed email", func(r *Request) { r.CustomerEmail = "thandi-at-example" }},
		{"unknown service", func(r *Request) { r.ServiceID = "drone" }},
		{"missing date", func(r *Request) { r.Date = time.Time{} }},
		{"date today", func(r *Request) { r.Date = time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC) }},
		{"date in past", func(r *Request) { r.Date = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }},
		{"date beyond horizon", func(r *Request) { r.Date = time.Date(2025, 8, 21, 0, 0, 0, 0, time.UTC) }},
		{"missing slot", func(r *Request) { r.TimeSlot = "" }},
		{"slot off grid", func(r *Request) { r.TimeSlot = "10:00" }},
		{"slot malformed", func(r *Request) { r.TimeSlot = "1pm" }},
		{"slot for service without duration", func(r *Request) { r.ServiceID = "edit" }},
		{"location too long", func(r *Request) { r.Location = strings.Repeat("a", 501) }},
		{"message too long", func(r *Request) { r.Message = strings.Repeat("ж", 2001) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, false)
			draft := validDraft()
			tt.mutate(draft)

			_, err := f.uc.Execute(context.Background(), draft)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, f.repo.created)
		})
	}
}

func TestExecute_DateWindowBoundaries(t *testing.T) {
	for _, date := range []time.Time{
		time.Date(2025, 5, 21, 0, 0, 0, 0, time.UTC), // завтра
		time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC), // сегодня + 3 месяца
	} {
		f := newFixture(t, false)
		draft := validDraft()
		draft.Date = date

		_, err := f.uc.Execute(context.Background(), draft)
		assert.NoError(t, err, date.Format(domain.DateFormat))
	}
}

func TestExecute_MultibyteTextWithinLimits(t *testing.T) {
	f := newFixture(t, false)
	draft := validDraft()
	draft.Message = strings.Repeat("ж", 2000)

	_, err := f.uc.Execute(context.Background(), draft)
	assert.NoError(t, err)
}

func TestExecute_ServiceWithoutDurationNeedsNoSlot(t *testing.T) {
	f := newFixture(t, false)
	draft := validDraft()
	draft.ServiceID = "edit"
	draft.TimeSlot = ""

	resp, err := f.uc.Execute(context.Background(), draft)
	require.NoError(t, err)
	assert.Nil(t, resp.TimeSlot)
}

func TestExecute_SucceedsWhileAvailabilityIsDegraded(t *testing.T) {
	f := newFixture(t, false)
	f.repo.listErr = errors.New("store unreachable")

	availability := get_availability.NewUseCase(f.repo, f.catalog, f.grid, time.Second, nil, logger.Nop())
	slots, err := availability.Execute(context.Background(), &get_availability.Request{
		Date:      validDraft().Date,
		ServiceID: "portrait",
	})
	require.NoError(t, err)
	require.True(t, slots.Degraded)

	resp, err := f.uc.Execute(context.Background(), validDraft())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, resp.Status)
	assert.Len(t, f.repo.created, 1)
}

func TestExecute_NotificationFailureDoesNotAffectResult(t *testing.T) {
	f := newFixture(t, false)
	f.notifier.accept = false

	resp, err := f.uc.Execute(context.Background(), validDraft())
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Len(t, f.notifier.sent, 1)
}

func TestExecute_StoreFailureIsWriteError(t *testing.T) {
	f := newFixture(t, false)
	f.repo.createErr = errors.New("connection reset")

	_, err := f.uc.Execute(context.Background(), validDraft())
	assert.ErrorIs(t, err, ErrWrite)
	assert.Empty(t, f.notifier.sent)
}

func TestExecute_AdvisoryModeAllowsDoubleBooking(t *testing.T) {
	f := newFixture(t, false)

	_, err := f.uc.Execute(context.Background(), validDraft())
	require.NoError(t, err)
	_, err = f.uc.Execute(context.Background(), validDraft())
	require.NoError(t, err)

	assert.Len(t, f.repo.created, 2)
}

func TestExecute_StrictModeRejectsOverlap(t *testing.T) {
	f := newFixture(t, true)
	f.repo.existing = []*domain.Reservation{{
		ServiceID:     "portrait",
		Date:          validDraft().Date,
		TimeSlot:      "11:00",
		DurationHours: 2,
		Status:        domain.StatusConfirmed,
	}}

	draft := validDraft()
	draft.TimeSlot = "11:00"
	_, err := f.uc.Execute(context.Background(), draft)
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, f.repo.created)
	assert.Equal(t, 1, f.tx.calls)

	// 13:00 только граничит с 11:00-13:00
	_, err = f.uc.Execute(context.Background(), validDraft())
	require.NoError(t, err)
	assert.Len(t, f.repo.created, 1)
}

func TestExecute_StrictModeIgnoresCancelled(t *testing.T) {
	f := newFixture(t, true)
	f.repo.existing = []*domain.Reservation{{
		ServiceID:     "portrait",
		Date:          validDraft().Date,
		TimeSlot:      "13:00",
		DurationHours: 2,
		Status:        domain.StatusCancelled,
	}}

	_, err := f.uc.Execute(context.Background(), validDraft())
	require.NoError(t, err)
}

func TestExecute_StrictModeReadFailureIsWriteError(t *testing.T) {
	f := newFixture(t, true)
	f.repo.listErr = errors.New("timeout")

	_, err := f.uc.Execute(context.Background(), validDraft())
	assert.ErrorIs(t, err, ErrWrite)
	assert.Empty(t, f.repo.created)
}
