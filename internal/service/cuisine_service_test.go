package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCuisineReplaceAndList(t *testing.T) {
	svc := NewCuisineService(newFakeCuisineRepo())
	ctx := context.Background()
	alice := uuid.New()

	input := map[string][]string{
		"italian":  {"pizza", "carbonara"},
		"japanese": {"ramen"},
	}
	require.NoError(t, svc.ReplaceCategories(ctx, alice, input))

	categories, err := svc.Categories(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"italian":  {"carbonara", "pizza"},
		"japanese": {"ramen"},
	}, categories)

	// A second replace swaps the whole catalog.
	require.NoError(t, svc.ReplaceCategories(ctx, alice, map[string][]string{"thai": {"pad thai"}}))
	categories, err = svc.Categories(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"thai": {"pad thai"}}, categories)
}

func TestCuisineRandom(t *testing.T) {
	svc := NewCuisineService(newFakeCuisineRepo())
	ctx := context.Background()
	alice := uuid.New()

	_, err := svc.Random(ctx, alice)
	assert.ErrorIs(t, err, ErrNoDishes)

	require.NoError(t, svc.ReplaceCategories(ctx, alice, map[string][]string{
		"italian": {"pizza", "carbonara"},
	}))

	for i := 0; i < 20; i++ {
		dish, err := svc.Random(ctx, alice)
		require.NoError(t, err)
		assert.Contains(t, []string{"pizza", "carbonara"}, dish)
	}
}

func TestCuisineHistoryLimit(t *testing.T) {
	svc := NewCuisineService(newFakeCuisineRepo())
	ctx := context.Background()
	alice := uuid.New()

	for i := 0; i < 15; i++ {
		require.NoError(t, svc.AddHistory(ctx, alice, "12:00", fmt.Sprintf("dish-%d", i)))
	}

	history, err := svc.History(ctx, alice)
	require.NoError(t, err)
	require.Len(t, history, 10)
	// Newest first.
	assert.Equal(t, "dish-14", history[0].Content)

	require.NoError(t, svc.ClearHistory(ctx, alice))
	history, err = svc.History(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, history)
}
