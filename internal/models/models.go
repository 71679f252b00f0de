package models

import (
	"errors"
	"time"
)

// ErrInvalidTransition is returned when a status change would move a task backwards.
var ErrInvalidTransition = errors.New("invalid status transition")

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "Pending"
	StatusInProgress TaskStatus = "InProgress"
	StatusCompleted  TaskStatus = "Completed"
)

// Task represents a unit of work tracked for the current run.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Assignee    string     `json:"assignee"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// NewTask builds a pending task stamped with the given creation time.
func NewTask(id int64, title, description, assignee string, now time.Time) *Task {
	return &Task{
		ID:          id,
		Title:       title,
		Description: description,
		Assignee:    assignee,
		Status:      StatusPending,
		CreatedAt:   now,
	}
}

// Start moves a pending task to InProgress.
func (t *Task) Start() error {
	if t.Status != StatusPending {
		return ErrInvalidTransition
	}
	t.Status = StatusInProgress
	return nil
}

// Complete marks the task as done. Completing twice keeps the first timestamp.
func (t *Task) Complete(now time.Time) {
	if t.Status == StatusCompleted {
		return
	}
	t.Status = StatusCompleted
	t.CompletedAt = &now
}

// IsAssignedTo reports whether the assignee matches username exactly.
func (t *Task) IsAssignedTo(username string) bool {
	return t.Assignee == username
}

// User is the authenticated session user.
type User struct {
	Username      string  `json:"username"`
	Password      string  `json:"-"`
	AssignedTasks []int64 `json:"assigned_tasks"`
}

// NewUser returns a user with no assigned tasks.
func NewUser(username, password string) *User {
	return &User{Username: username, Password: password, AssignedTasks: []int64{}}
}

// AssignTask records a task id on the user.
func (u *User) AssignTask(id int64) {
	u.AssignedTasks = append(u.AssignedTasks, id)
}
