//go:build unit

package commands_test

import (
	"context"
	"testing"

	"innkeeper/internal/domain/room"
	"innkeeper/internal/infra"
	"innkeeper/internal/usecase/commands"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoomType(t *testing.T) {
	repo := newFakeRoomRepo()
	cmds := commands.NewRoomTypeCommands(repo)

	rt, err := cmds.CreateRoomType(context.Background(), commands.CreateRoomTypeParams{
		Name:        "Garden Suite",
		NightlyRate: decimal.NewFromInt(1500),
		Capacity:    3,
		PricingMode: room.PricePerRoom,
	})
	require.NoError(t, err)
	assert.Equal(t, "garden-suite", rt.Slug())

	t.Run("duplicate name", func(t *testing.T) {
		repo.createErr = infra.RepositoryError{Kind: infra.KindDuplicateKey}
		_, err := cmds.CreateRoomType(context.Background(), commands.CreateRoomTypeParams{
			Name:        "Garden Suite",
			NightlyRate: decimal.NewFromInt(1500),
			Capacity:    3,
			PricingMode: room.PricePerRoom,
		})
		assert.ErrorIs(t, err, commands.ErrDuplicateRoom)
	})

	t.Run("invalid rate", func(t *testing.T) {
		_, err := cmds.CreateRoomType(context.Background(), commands.CreateRoomTypeParams{
			Name:        "Broken",
			NightlyRate: decimal.Zero,
			Capacity:    2,
			PricingMode: room.PricePerRoom,
		})
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}

func TestUpdateRoomType_PartialEdit(t *testing.T) {
	rt := mustRoomType(t, "Suite", 1000, 2, room.PricePerRoom)
	repo := newFakeRoomRepo(rt)
	cmds := commands.NewRoomTypeCommands(repo)

	newRate := decimal.NewFromInt(1200)
	updated, err := cmds.UpdateRoomType(context.Background(), commands.UpdateRoomTypeParams{
		Name:        "Suite",
		NightlyRate: &newRate,
	})
	require.NoError(t, err)
	assert.True(t, updated.NightlyRate().Equal(newRate))
	assert.Equal(t, 2, updated.Capacity(), "untouched fields keep their values")
	require.NotNil(t, repo.updated)

	t.Run("description only keeps image", func(t *testing.T) {
		desc := "renovated"
		updated, err := cmds.UpdateRoomType(context.Background(), commands.UpdateRoomTypeParams{
			Name:        "Suite",
			Description: &desc,
		})
		require.NoError(t, err)
		assert.Equal(t, "renovated", updated.Description())
	})

	t.Run("unknown room", func(t *testing.T) {
		_, err := cmds.UpdateRoomType(context.Background(), commands.UpdateRoomTypeParams{Name: "Penthouse"})
		assert.ErrorIs(t, err, commands.ErrRoomTypeNotFound)
	})
}

func TestDeleteRoomType(t *testing.T) {
	repo := newFakeRoomRepo(mustRoomType(t, "Suite", 1000, 2, room.PricePerRoom))
	cmds := commands.NewRoomTypeCommands(repo)

	require.NoError(t, cmds.DeleteRoomType(context.Background(), "Suite"))
	assert.Equal(t, "Suite", repo.deleted)

	err := cmds.DeleteRoomType(context.Background(), "Suite")
	assert.ErrorIs(t, err, commands.ErrRoomTypeNotFound)
}
