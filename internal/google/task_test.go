package google

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/tasks/v1"

	"calbridge/internal/models"
)

func TestMapTask(t *testing.T) {
	task, err := MapTask("acc", "list1", &tasks.Task{
		Id:     "t1",
		Title:  "File taxes",
		Notes:  "before April",
		Status: "completed",
		Due:    "2024-04-15T00:00:00.000Z",
	})
	require.NoError(t, err)

	assert.Equal(t, "t1", task.ID)
	assert.Equal(t, "File taxes", task.Title)
	assert.Equal(t, "before April", task.Description)
	assert.Equal(t, models.ProviderGoogle, task.ProviderID)
	assert.Equal(t, "acc", task.AccountID)
	assert.Equal(t, "list1", task.TaskCollectionID)
	require.NotNil(t, task.Completed)
	assert.True(t, *task.Completed)
	require.NotNil(t, task.Due)
	assert.Equal(t, civil.Date{Year: 2024, Month: time.April, Day: 15}, *task.Due)
}

func TestMapTask_Optional(t *testing.T) {
	task, err := MapTask("acc", "list1", &tasks.Task{Id: "t2", Status: "needsAction"})
	require.NoError(t, err)
	require.NotNil(t, task.Completed)
	assert.False(t, *task.Completed)
	assert.Nil(t, task.Due)

	task, err = MapTask("acc", "list1", &tasks.Task{Id: "t3"})
	require.NoError(t, err)
	assert.Nil(t, task.Completed)
}

func TestMapTask_Errors(t *testing.T) {
	_, err := MapTask("acc", "list1", &tasks.Task{Title: "no id"})
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = MapTask("acc", "list1", &tasks.Task{Id: "t4", Due: "someday"})
	assert.Error(t, err)
}

func TestEncodeTask(t *testing.T) {
	a := newTestAdapter()
	done := true
	due := civil.Date{Year: 2024, Month: time.April, Day: 15}

	body, err := a.EncodeTask(models.TaskInput{Title: "File taxes", Completed: &done, Due: &due, Description: "forms"})
	require.NoError(t, err)
	assert.Empty(t, body.Id)
	assert.Equal(t, "completed", body.Status)
	assert.Equal(t, "2024-04-15T00:00:00.000Z", body.Due)
	assert.Equal(t, "forms", body.Notes)

	done = false
	body, err = a.EncodeTask(models.TaskInput{ID: "t1", Title: "File taxes", Completed: &done})
	require.NoError(t, err)
	assert.Equal(t, "t1", body.Id)
	assert.Equal(t, "needsAction", body.Status)
	assert.Empty(t, body.Due)

	_, err = a.EncodeTask(models.TaskInput{})
	assert.Error(t, err)
}

func TestTask_DueRoundTrip(t *testing.T) {
	a := newTestAdapter()
	due := civil.Date{Year: 2025, Month: time.January, Day: 31}

	body, err := a.EncodeTask(models.TaskInput{Title: "x", Due: &due})
	require.NoError(t, err)
	body.Id = "t9"

	task, err := MapTask("acc", "list1", body)
	require.NoError(t, err)
	require.NotNil(t, task.Due)
	assert.Equal(t, due, *task.Due)
}

func dateRef(year int, month time.Month, day int) *civil.Date {
	return &civil.Date{Year: year, Month: month, Day: day}
}
