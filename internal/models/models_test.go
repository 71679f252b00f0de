package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaskStartsPending(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	task := NewTask(1, "Fix bug", "desc", "alice", created)

	assert.Equal(t, StatusPending, task.Status)
	assert.Equal(t, created, task.CreatedAt)
	assert.Nil(t, task.CompletedAt)
}

func TestTaskTransitions(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		from     TaskStatus
		wantErr  error
		wantNext TaskStatus
	}{
		{name: "pending to in progress", from: StatusPending, wantNext: StatusInProgress},
		{name: "in progress again", from: StatusInProgress, wantErr: ErrInvalidTransition, wantNext: StatusInProgress},
		{name: "completed cannot restart", from: StatusCompleted, wantErr: ErrInvalidTransition, wantNext: StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := NewTask(1, "t", "", "alice", created)
			task.Status = tt.from

			err := task.Start()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantNext, task.Status)
		})
	}
}

func TestCompleteIsIdempotent(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	first := created.Add(time.Hour)
	second := created.Add(2 * time.Hour)

	task := NewTask(1, "t", "", "alice", created)
	require.NoError(t, task.Start())

	task.Complete(first)
	require.NotNil(t, task.CompletedAt)
	assert.Equal(t, StatusCompleted, task.Status)
	assert.Equal(t, first, *task.CompletedAt)

	task.Complete(second)
	assert.Equal(t, StatusCompleted, task.Status)
	assert.Equal(t, first, *task.CompletedAt)
}

func TestIsAssignedToIsCaseSensitive(t *testing.T) {
	task := NewTask(1, "t", "", "alice", time.Now())

	assert.True(t, task.IsAssignedTo("alice"))
	assert.False(t, task.IsAssignedTo("Alice"))
	assert.False(t, task.IsAssignedTo("alice "))
}

func TestUserAssignTask(t *testing.T) {
	u := NewUser("alice", "pw1")
	assert.Empty(t, u.AssignedTasks)

	u.AssignTask(3)
	u.AssignTask(5)
	assert.Equal(t, []int64{3, 5}, u.AssignedTasks)
}
