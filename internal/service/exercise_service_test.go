package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExerciseLifecycle(t *testing.T) {
	svc := NewExerciseService(newFakeExerciseRepo())
	ctx := context.Background()
	alice := uuid.New()

	created, err := svc.Create(ctx, alice, ExerciseInput{
		Name:      "morning run",
		Type:      "cardio",
		Duration:  30,
		Intensity: "medium",
	})
	require.NoError(t, err)
	assert.False(t, created.Completed)

	updated, err := svc.Update(ctx, alice, created.ID, ExerciseInput{
		Name:     "evening run",
		Type:     "cardio",
		Duration: 45,
	})
	require.NoError(t, err)
	assert.Equal(t, "evening run", updated.Name)

	completed, err := svc.SetCompleted(ctx, alice, created.ID, true)
	require.NoError(t, err)
	assert.True(t, completed.Completed)

	require.NoError(t, svc.Delete(ctx, alice, created.ID))

	all, err := svc.List(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestExerciseScopedToUser(t *testing.T) {
	svc := NewExerciseService(newFakeExerciseRepo())
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	created, err := svc.Create(ctx, alice, ExerciseInput{Name: "run", Type: "cardio"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, bob, created.ID, ExerciseInput{Name: "steal"})
	assert.ErrorIs(t, err, ErrExerciseNotFound)

	_, err = svc.SetCompleted(ctx, bob, created.ID, true)
	assert.ErrorIs(t, err, ErrExerciseNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, bob, created.ID), ErrExerciseNotFound)
}

func TestExerciseDeleteMissing(t *testing.T) {
	svc := NewExerciseService(newFakeExerciseRepo())
	ctx := context.Background()
	alice := uuid.New()

	assert.ErrorIs(t, svc.Delete(ctx, alice, uuid.New()), ErrExerciseNotFound)

	created, err := svc.Create(ctx, alice, ExerciseInput{Name: "run", Type: "cardio"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, alice, created.ID))

	// Second delete of the same row reports the row as gone.
	assert.ErrorIs(t, svc.Delete(ctx, alice, created.ID), ErrExerciseNotFound)
}

func TestExerciseTypes(t *testing.T) {
	svc := NewExerciseService(newFakeExerciseRepo())
	ctx := context.Background()
	alice := uuid.New()

	_, err := svc.AddType(ctx, alice, "cardio")
	require.NoError(t, err)
	_, err = svc.AddType(ctx, alice, "strength")
	require.NoError(t, err)

	_, err = svc.AddType(ctx, alice, "cardio")
	assert.ErrorIs(t, err, ErrExerciseTypeExists)

	types, err := svc.ListTypes(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, []string{"cardio", "strength"}, types)
}

func TestReminderDefault(t *testing.T) {
	svc := NewExerciseService(newFakeExerciseRepo())
	ctx := context.Background()
	alice := uuid.New()

	reminder, err := svc.Reminder(ctx, alice)
	require.NoError(t, err)
	assert.False(t, reminder.Enabled)
	assert.Equal(t, "09:00", reminder.Time)

	saved, err := svc.SaveReminder(ctx, alice, ReminderInput{Enabled: true, Time: "07:30"})
	require.NoError(t, err)
	assert.True(t, saved.Enabled)

	reminder, err = svc.Reminder(ctx, alice)
	require.NoError(t, err)
	assert.True(t, reminder.Enabled)
	assert.Equal(t, "07:30", reminder.Time)
}
