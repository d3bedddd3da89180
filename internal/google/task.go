package google

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"google.golang.org/api/tasks/v1"

	"calbridge/internal/models"
)

const (
	taskCompleted   = "completed"
	taskNeedsAction = "needsAction"
)

// MapTask converts a Google task from the list taskListID to the domain Task.
func MapTask(accountID, taskListID string, t *tasks.Task) (*models.Task, error) {
	if t == nil || t.Id == "" {
		return nil, missing("task", "id", "")
	}

	task := &models.Task{
		ID:               t.Id,
		Title:            t.Title,
		Description:      t.Notes,
		ProviderID:       models.ProviderGoogle,
		AccountID:        accountID,
		TaskCollectionID: taskListID,
	}

	switch t.Status {
	case taskCompleted:
		done := true
		task.Completed = &done
	case taskNeedsAction:
		done := false
		task.Completed = &done
	}

	if t.Due != "" {
		due, err := parseDueDate(t.Due)
		if err != nil {
			return nil, fmt.Errorf("task %s: invalid due date: %w", t.Id, err)
		}
		task.Due = &due
	}

	return task, nil
}

// The Tasks API stores only the date part of due; the time is always midnight UTC.
func parseDueDate(s string) (civil.Date, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return civil.DateOf(t.UTC()), nil
	}
	return civil.ParseDate(s)
}

// EncodeTask converts a domain TaskInput to the Google request shape.
func (a *Adapter) EncodeTask(in models.TaskInput) (*tasks.Task, error) {
	if err := a.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid task input: %w", err)
	}

	t := &tasks.Task{
		Title: in.Title,
		Notes: in.Description,
	}
	if in.IsUpdate() {
		t.Id = in.ID
	}
	if in.Completed != nil {
		t.Status = taskNeedsAction
		if *in.Completed {
			t.Status = taskCompleted
		}
	}
	if in.Due != nil {
		t.Due = in.Due.String() + "T00:00:00.000Z"
	}
	return t, nil
}
