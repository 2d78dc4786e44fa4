package pdf

import (
	"bytes"
	"sync"
	"testing"

	"tasktracker/internal/models"
)

func sampleTask() *models.TaskResponse {
	return &models.TaskResponse{
		Title:       "deploy",
		Description: "roll out the new build",
		Status:      models.StatusInProgress,
		Priority:    models.PriorityHigh,
		Author:      "admin",
		Executor:    "worker",
		Comments: []models.CommentResponse{
			{Author: "worker", Date: "2026-09-01", Text: "started"},
		},
	}
}

func TestTaskCard(t *testing.T) {
	g := NewTaskReportGenerator("")
	data, err := g.TaskCard(sampleTask())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not look like a pdf: %q...", data[:min(8, len(data))])
	}
}

// Один генератор обслуживает параллельные экспорты.
func TestTaskCardConcurrent(t *testing.T) {
	g := NewTaskReportGenerator("")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := g.TaskCard(sampleTask())
			if err != nil {
				t.Errorf("render: %v", err)
				return
			}
			if !bytes.HasPrefix(data, []byte("%PDF")) {
				t.Error("output does not look like a pdf")
			}
		}()
	}
	wg.Wait()
}
