//go:build unit

package commands_test

import (
	"context"
	"testing"

	"innkeeper/internal/domain/maintenance"
	"innkeeper/internal/domain/room"
	"innkeeper/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleMaintenance_ScheduleShapes(t *testing.T) {
	roomRepo := newFakeRoomRepo(mustRoomType(t, "Suite", 1000, 2, room.PricePerRoom))
	repo := newFakeMaintenanceRepo()
	cmds := commands.NewMaintenanceCommands(repo, roomRepo)

	start, end := day(2026, 5, 10), day(2026, 5, 12)
	due := day(2026, 5, 20)

	tests := []struct {
		name     string
		params   commands.ScheduleMaintenanceParams
		wantKind maintenance.ScheduleKind
	}{
		{
			name: "explicit range wins over due date",
			params: commands.ScheduleMaintenanceParams{
				RoomTypeName: "Suite", Issue: "leaky faucet",
				Start: &start, End: &end, DueDate: &due,
			},
			wantKind: maintenance.KindRange,
		},
		{
			name: "due date without range",
			params: commands.ScheduleMaintenanceParams{
				RoomTypeName: "Suite", Issue: "leaky faucet", DueDate: &due,
			},
			wantKind: maintenance.KindDueDate,
		},
		{
			name: "start alone is not a range",
			params: commands.ScheduleMaintenanceParams{
				RoomTypeName: "Suite", Issue: "leaky faucet", Start: &start,
			},
			wantKind: maintenance.KindUndated,
		},
		{
			name: "no dates at all",
			params: commands.ScheduleMaintenanceParams{
				RoomTypeName: "Suite", Issue: "leaky faucet",
			},
			wantKind: maintenance.KindUndated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := cmds.ScheduleMaintenance(context.Background(), tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, w.Schedule().Kind())
			assert.Equal(t, maintenance.StatusPending, w.Status())
		})
	}
}

func TestScheduleMaintenance_Validation(t *testing.T) {
	roomRepo := newFakeRoomRepo(mustRoomType(t, "Suite", 1000, 2, room.PricePerRoom))
	cmds := commands.NewMaintenanceCommands(newFakeMaintenanceRepo(), roomRepo)

	t.Run("unknown room type", func(t *testing.T) {
		_, err := cmds.ScheduleMaintenance(context.Background(), commands.ScheduleMaintenanceParams{
			RoomTypeName: "Penthouse", Issue: "broken lock",
		})
		assert.ErrorIs(t, err, commands.ErrRoomTypeNotFound)
	})

	t.Run("inverted range", func(t *testing.T) {
		start, end := day(2026, 5, 12), day(2026, 5, 10)
		_, err := cmds.ScheduleMaintenance(context.Background(), commands.ScheduleMaintenanceParams{
			RoomTypeName: "Suite", Issue: "broken lock", Start: &start, End: &end,
		})
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("empty issue", func(t *testing.T) {
		_, err := cmds.ScheduleMaintenance(context.Background(), commands.ScheduleMaintenanceParams{
			RoomTypeName: "Suite",
		})
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("default priority is medium", func(t *testing.T) {
		w, err := cmds.ScheduleMaintenance(context.Background(), commands.ScheduleMaintenanceParams{
			RoomTypeName: "Suite", Issue: "squeaky door",
		})
		require.NoError(t, err)
		assert.Equal(t, maintenance.PriorityMedium, w.Priority())
	})
}

func TestMaintenanceUpdateStatus(t *testing.T) {
	roomRepo := newFakeRoomRepo(mustRoomType(t, "Suite", 1000, 2, room.PricePerRoom))
	repo := newFakeMaintenanceRepo()
	cmds := commands.NewMaintenanceCommands(repo, roomRepo)

	w, err := cmds.ScheduleMaintenance(context.Background(), commands.ScheduleMaintenanceParams{
		RoomTypeName: "Suite", Issue: "repaint",
	})
	require.NoError(t, err)

	inProgress, err := cmds.UpdateStatus(context.Background(), w.ID(), maintenance.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, maintenance.StatusInProgress, inProgress.Status())

	completed, err := cmds.UpdateStatus(context.Background(), w.ID(), maintenance.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, maintenance.StatusCompleted, completed.Status())

	// Completed windows cannot be reopened.
	_, err = cmds.UpdateStatus(context.Background(), w.ID(), maintenance.StatusPending)
	assert.ErrorIs(t, err, commands.ErrInvalidTransition)
}

func TestDeleteMaintenance(t *testing.T) {
	roomRepo := newFakeRoomRepo(mustRoomType(t, "Suite", 1000, 2, room.PricePerRoom))
	repo := newFakeMaintenanceRepo()
	cmds := commands.NewMaintenanceCommands(repo, roomRepo)

	w, err := cmds.ScheduleMaintenance(context.Background(), commands.ScheduleMaintenanceParams{
		RoomTypeName: "Suite", Issue: "repaint",
	})
	require.NoError(t, err)

	require.NoError(t, cmds.DeleteMaintenance(context.Background(), w.ID()))
	assert.Equal(t, w.ID(), repo.deleted)

	err = cmds.DeleteMaintenance(context.Background(), w.ID())
	assert.ErrorIs(t, err, commands.ErrMaintenanceNotFound)
}
