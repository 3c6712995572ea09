package services_test

import (
	"context"
	"testing"

	"vesselhub/internal/adapters/persistence/memory"
	"vesselhub/internal/core/domain"
	"vesselhub/internal/core/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAssignmentUnknownVessel(t *testing.T) {
	store := memory.NewStore()
	svc := services.NewCrewingService(store.Assignments(), store.Vessels())
	ctx := context.Background()

	_, err := svc.Create(ctx, 3, &services.AssignmentInput{
		VesselID:  9999,
		Position:  "Deckhand",
		StartDate: "2026-03-01",
	})
	assert.ErrorIs(t, err, domain.ErrVesselNotFound)
}

func TestCreateAssignmentReplacesActive(t *testing.T) {
	store := memory.NewStore()
	svc := services.NewCrewingService(store.Assignments(), store.Vessels())
	ctx := context.Background()

	second, err := store.Vessels().Create(ctx, domain.Vessel{
		Name: "MV Northern Star", VesselType: "Bulk Carrier", FlagState: "Liberia", IsActive: true,
	})
	require.NoError(t, err)

	first, err := svc.Create(ctx, 3, &services.AssignmentInput{
		VesselID:  1,
		Position:  "Second Officer",
		StartDate: "2026-01-15",
	})
	require.NoError(t, err)
	assert.True(t, first.IsActive)

	// A new assignment deactivates the previous one
	replacement, err := svc.Create(ctx, 3, &services.AssignmentInput{
		VesselID:  second.ID,
		Position:  "Chief Officer",
		StartDate: "2026-06-01",
	})
	require.NoError(t, err)
	assert.True(t, replacement.IsActive)

	all, err := svc.List(ctx, 3, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)

	activeCount := 0
	for _, a := range all {
		if a.IsActive {
			activeCount++
		}
	}
	assert.Equal(t, 1, activeCount)

	active, err := store.Assignments().GetActiveByUser(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, replacement.ID, active.ID)
}

func TestCurrentAssignment(t *testing.T) {
	store := memory.NewStore()
	svc := services.NewCrewingService(store.Assignments(), store.Vessels())
	ctx := context.Background()

	// Unassigned user gets nil, not an error
	current, err := svc.Current(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, current)

	created, err := svc.Create(ctx, 7, &services.AssignmentInput{
		VesselID:  1,
		Position:  "Bosun",
		StartDate: "2026-02-01",
	})
	require.NoError(t, err)

	current, err = svc.Current(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, created.ID, current.Assignment.ID)
	assert.Equal(t, "MV Ocean Explorer", current.Vessel.Name)
}
