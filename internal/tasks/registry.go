package tasks

import (
	"errors"
	"time"

	"taskmanager/internal/models"
)

var (
	// ErrTaskNotFound is returned when no task has the requested id.
	ErrTaskNotFound = errors.New("task not found")
	// ErrNotAssigned is returned when the task exists but belongs to someone else.
	ErrNotAssigned = errors.New("task found but not assigned to you")
)

// Registry holds the tasks created during a run, keyed by id.
type Registry struct {
	byID  map[int64]*models.Task
	order []int64
	now   func() time.Time
}

// NewRegistry returns an empty registry. A nil clock falls back to time.Now.
func NewRegistry(now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	return &Registry{
		byID: make(map[int64]*models.Task),
		now:  now,
	}
}

// Create appends a pending task whose id is the current count plus one.
func (r *Registry) Create(title, description, assignee string) *models.Task {
	id := int64(len(r.order) + 1)
	task := models.NewTask(id, title, description, assignee, r.now())
	r.byID[id] = task
	r.order = append(r.order, id)
	return task
}

// List returns every task in creation order.
func (r *Registry) List() []*models.Task {
	out := make([]*models.Task, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// ForAssignee returns the tasks whose assignee equals username exactly.
func (r *Registry) ForAssignee(username string) []*models.Task {
	out := []*models.Task{}
	for _, task := range r.List() {
		if task.IsAssignedTo(username) {
			out = append(out, task)
		}
	}
	return out
}

// Get looks up a task by id.
func (r *Registry) Get(id int64) (*models.Task, bool) {
	task, ok := r.byID[id]
	return task, ok
}

// Len reports how many tasks have been created.
func (r *Registry) Len() int {
	return len(r.order)
}

// Complete marks the task done if it is assigned to username.
func (r *Registry) Complete(username string, id int64) (*models.Task, error) {
	task, err := r.owned(username, id)
	if err != nil {
		return task, err
	}
	task.Complete(r.now())
	return task, nil
}

// Start moves the task to InProgress if it is assigned to username.
func (r *Registry) Start(username string, id int64) (*models.Task, error) {
	task, err := r.owned(username, id)
	if err != nil {
		return task, err
	}
	if err := task.Start(); err != nil {
		return task, err
	}
	return task, nil
}

// owned resolves the task first and only then checks who it belongs to.
func (r *Registry) owned(username string, id int64) (*models.Task, error) {
	task, ok := r.byID[id]
	if !ok {
		return nil, ErrTaskNotFound
	}
	if !task.IsAssignedTo(username) {
		return task, ErrNotAssigned
	}
	return task, nil
}
