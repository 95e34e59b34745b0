package get_availability

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailability "github.com/m04kA/SMC-StudioBooking/internal/usecase/get_availability"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	gotReq *getAvailability.Request
	resp   *getAvailability.Response
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

func slot(t *testing.T, s string, available bool) getAvailability.Slot {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return getAvailability.Slot{StartTime: ts, Available: available}
}

func TestHandle_Degraded(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailability.Response{ServiceID: "portrait", Degraded: true}}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?serviceId=portrait&date=2025-05-21", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "portrait", uc.gotReq.ServiceID)
	assert.Equal(t, "2025-05-21", uc.gotReq.Date.Format("2006-01-02"))

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Degraded)
	assert.Empty(t, body.Slots)
}

func TestHandle_SlotsInGridOrder(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailability.Response{
		ServiceID: "portrait",
		Slots: []getAvailability.Slot{
			slot(t, "09:00", true),
			slot(t, "11:00", true),
			slot(t, "13:00", false),
			slot(t, "15:00", true),
			slot(t, "17:00", true),
		},
	}}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/availability?serviceId=portrait&date=2025-05-21", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Slots, 5)
	assert.Equal(t, SlotResponse{StartTime: "13:00", Available: false}, body.Slots[2])
	assert.Equal(t, "09:00", body.Slots[0].StartTime)
	assert.False(t, body.Degraded)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		err        error
		wantStatus int
	}{
		{name: "missing service", query: "date=2025-05-21", wantStatus: http.StatusBadRequest},
		{name: "bad date", query: "serviceId=portrait&date=21-05-2025", wantStatus: http.StatusBadRequest},
		{
			name:       "unknown service",
			query:      "serviceId=wedding&date=2025-05-21",
			err:        fmt.Errorf("%w: wedding", getAvailability.ErrServiceNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unexpected",
			query:      "serviceId=portrait&date=2025-05-21",
			err:        fmt.Errorf("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/availability?"+tt.query, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
