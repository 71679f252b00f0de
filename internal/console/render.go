package console

import (
	"fmt"
	"io"

	"taskmanager/internal/models"
)

const timeLayout = "2006-01-02 15:04:05"

func writeTask(w io.Writer, task *models.Task) {
	fmt.Fprintf(w, "ID: %d\n", task.ID)
	fmt.Fprintf(w, "Title: %s\n", task.Title)
	fmt.Fprintf(w, "Description: %s\n", task.Description)
	fmt.Fprintf(w, "Assignee: %s\n", task.Assignee)
	fmt.Fprintf(w, "Created: %s\n", task.CreatedAt.Format(timeLayout))
	fmt.Fprintf(w, "Status: %s\n", task.Status)
	if task.CompletedAt != nil {
		fmt.Fprintf(w, "Completed: %s\n", task.CompletedAt.Format(timeLayout))
	}
	fmt.Fprintln(w, "----------------------------------")
}
