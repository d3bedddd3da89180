package models

import "cloud.google.com/go/civil"

// Task is a provider-agnostic to-do item. TaskCollectionID names the list it belongs to.
type Task struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Completed        *bool       `json:"completed,omitempty"`
	Description      string      `json:"description,omitempty"`
	Due              *civil.Date `json:"due,omitempty"`
	ProviderID       ProviderID  `json:"providerId"`
	AccountID        string      `json:"accountId"`
	TaskCollectionID string      `json:"taskCollectionId"`
}

// TaskInput creates a task when ID is empty and updates it otherwise.
type TaskInput struct {
	ID          string      `json:"id,omitempty"`
	Title       string      `json:"title" validate:"required"`
	Completed   *bool       `json:"completed,omitempty"`
	Description string      `json:"description,omitempty"`
	Due         *civil.Date `json:"due,omitempty"`
}

// IsUpdate reports whether the input targets an existing task.
func (in TaskInput) IsUpdate() bool {
	return in.ID != ""
}
