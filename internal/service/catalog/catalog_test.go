package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

func TestNew_PreservesOrder(t *testing.T) {
	c, err := New([]domain.Service{
		{ID: "wedding", Name: "Wedding Photography", DurationHours: 8},
		{ID: "portrait", Name: "Portrait Photography", DurationHours: 2},
		{ID: "video-edit", Name: "Video Editing Only", DurationHours: 0},
	})
	require.NoError(t, err)

	services := c.ListServices()
	require.Len(t, services, 3)
	assert.Equal(t, "wedding", services[0].ID)
	assert.Equal(t, "portrait", services[1].ID)
	assert.False(t, services[2].RequiresSlot())

	services[0].Name = "mutated"
	again := c.ListServices()
	assert.Equal(t, "Wedding Photography", again[0].Name)

	s, ok := c.Get("portrait")
	assert.True(t, ok)
	assert.Equal(t, 2, s.DurationHours)

	_, ok = c.Get("drone")
	assert.False(t, ok)
}

func TestNew_Rejects(t *testing.T) {
	_, err := New([]domain.Service{{ID: "a", Name: "A"}, {ID: "a", Name: "B"}})
	assert.ErrorIs(t, err, ErrDuplicateService)

	_, err = New([]domain.Service{{ID: "", Name: "A"}})
	assert.ErrorIs(t, err, ErrInvalidService)

	_, err = New([]domain.Service{{ID: "a", Name: "A", DurationHours: -1}})
	assert.ErrorIs(t, err, ErrInvalidService)
}

func TestNewSlotGrid(t *testing.T) {
	g, err := NewSlotGrid([]string{"09:00", "11:00", "13:00", "15:00", "17:00"})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"09:00", "11:00", "13:00", "15:00", "17:00"}, g.CandidateSlots())
	assert.True(t, g.Contains("13:00"))
	assert.False(t, g.Contains("10:00"))
}

func TestNewSlotGrid_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		values []string
	}{
		{name: "empty", values: nil},
		{name: "half hour", values: []string{"09:00", "09:30"}},
		{name: "unsorted", values: []string{"11:00", "09:00"}},
		{name: "duplicate", values: []string{"09:00", "09:00"}},
		{name: "garbage", values: []string{"morning"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSlotGrid(tt.values)
			assert.ErrorIs(t, err, ErrInvalidSlotGrid)
		})
	}
}
