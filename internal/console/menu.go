package console

import (
	"context"
	"errors"
	"log/slog"

	"taskmanager/internal/tasks"
)

// Loop shows the main menu until the user exits or input ends.
func (a *App) Loop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.println()
		a.println("Options:")
		a.println("1. Create task")
		a.println("2. List tasks")
		a.println("3. View my tasks")
		a.println("4. Mark task as completed")
		a.println("5. Exit")

		option, err := a.readInt("Choose an option: ")
		if err != nil {
			return err
		}

		switch option {
		case 1:
			err = a.createTask()
		case 2:
			a.listTasks()
		case 3:
			a.viewMyTasks()
		case 4:
			err = a.markTaskAsCompleted()
		case 5:
			a.println("Exiting...")
			return nil
		default:
			a.println("Invalid option. Try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) createTask() error {
	title, err := a.readLine("Task title: ")
	if err != nil {
		return err
	}
	description, err := a.readLine("Task description: ")
	if err != nil {
		return err
	}
	assignee, err := a.readLine("Assignee username: ")
	if err != nil {
		return err
	}

	task := a.registry.Create(title, description, assignee)
	if a.user != nil && task.IsAssignedTo(a.user.Username) {
		a.user.AssignTask(task.ID)
	}

	a.logger.Info("task created", slog.Int64("id", task.ID), slog.String("assignee", assignee))
	a.printf("Task created successfully! (ID %d)\n", task.ID)
	return nil
}

func (a *App) listTasks() {
	a.println()
	a.println("Task list:")
	all := a.registry.List()
	if len(all) == 0 {
		a.println("No tasks yet.")
		return
	}
	for _, task := range all {
		writeTask(a.out, task)
	}
}

func (a *App) viewMyTasks() {
	if a.user == nil {
		a.println("You need to be logged in to view your tasks.")
		return
	}

	a.println()
	a.println("My tasks:")
	mine := a.registry.ForAssignee(a.user.Username)
	if len(mine) == 0 {
		a.println("No tasks found for you.")
		return
	}
	for _, task := range mine {
		writeTask(a.out, task)
	}
}

func (a *App) markTaskAsCompleted() error {
	if a.user == nil {
		a.println("You need to be logged in to complete tasks.")
		return nil
	}

	a.listTasks()

	id, err := a.readInt("ID of the task to mark as completed: ")
	if err != nil {
		return err
	}

	err = a.CompleteTask(id)
	switch {
	case err == nil:
		a.println("Task marked as completed!")
	case errors.Is(err, tasks.ErrNotAssigned):
		a.println("Task found, but not assigned to you.")
	case errors.Is(err, tasks.ErrTaskNotFound):
		a.println("Task not found.")
	default:
		return err
	}
	return nil
}

// CompleteTask completes a task on behalf of the session user.
func (a *App) CompleteTask(id int64) error {
	if a.user == nil {
		return ErrNotAuthenticated
	}
	task, err := a.registry.Complete(a.user.Username, id)
	if err != nil {
		a.logger.Info("task completion rejected", slog.Int64("id", id), slog.String("reason", err.Error()))
		return err
	}
	a.logger.Info("task completed", slog.Int64("id", task.ID))
	return nil
}

// StartTask moves a task owned by the session user to InProgress.
func (a *App) StartTask(id int64) error {
	if a.user == nil {
		return ErrNotAuthenticated
	}
	if _, err := a.registry.Start(a.user.Username, id); err != nil {
		return err
	}
	a.logger.Info("task started", slog.Int64("id", id))
	return nil
}
