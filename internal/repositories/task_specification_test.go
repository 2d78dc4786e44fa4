package repositories

import (
	"reflect"
	"testing"

	"tasktracker/internal/models"
)

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func statusPtr(s models.TaskStatus) *models.TaskStatus { return &s }

func priorityPtr(p models.TaskPriority) *models.TaskPriority { return &p }

func TestBuildTaskSpecEmpty(t *testing.T) {
	conditions, args := BuildTaskSpec(models.TaskCriteria{})
	if len(conditions) != 0 || len(args) != 0 {
		t.Fatalf("empty criteria produced %v / %v", conditions, args)
	}
	if got := whereClause(conditions); got != "" {
		t.Errorf("whereClause = %q, want empty", got)
	}
}

func TestBuildTaskSpecSingleFields(t *testing.T) {
	cases := []struct {
		name     string
		criteria models.TaskCriteria
		wantCond string
		wantArg  interface{}
	}{
		{"status", models.TaskCriteria{Status: statusPtr(models.StatusPending)}, "t.status = $1", models.StatusPending},
		{"nonStatus", models.TaskCriteria{NonStatus: statusPtr(models.StatusCompleted)}, "t.status <> $1", models.StatusCompleted},
		{"priority", models.TaskCriteria{Priority: priorityPtr(models.PriorityHigh)}, "t.priority = $1", models.PriorityHigh},
		{"nonPriority", models.TaskCriteria{NonPriority: priorityPtr(models.PriorityLow)}, "t.priority <> $1", models.PriorityLow},
		{"author", models.TaskCriteria{Author: strPtr("admin")}, "au.username = $1", "admin"},
		{"executor", models.TaskCriteria{Executor: strPtr("worker")}, "ex.username = $1", "worker"},
		{"commentsLess", models.TaskCriteria{CountCommentsLess: intPtr(3)}, commentCount + " <= $1", 3},
		{"commentsGreater", models.TaskCriteria{CountCommentsGreater: intPtr(3)}, commentCount + " > $1", 3},
		{"commentsEqual", models.TaskCriteria{CountCommentsEqual: intPtr(3)}, commentCount + " = $1", 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			conditions, args := BuildTaskSpec(tc.criteria)
			if len(conditions) != 1 || conditions[0] != tc.wantCond {
				t.Errorf("conditions = %v, want [%s]", conditions, tc.wantCond)
			}
			if len(args) != 1 || !reflect.DeepEqual(args[0], tc.wantArg) {
				t.Errorf("args = %v, want [%v]", args, tc.wantArg)
			}
		})
	}
}

func TestBuildTaskSpecArgNumbering(t *testing.T) {
	criteria := models.TaskCriteria{
		Status:               statusPtr(models.StatusPending),
		Priority:             priorityPtr(models.PriorityMedium),
		Executor:             strPtr("worker"),
		CountCommentsGreater: intPtr(1),
	}
	conditions, args := BuildTaskSpec(criteria)
	want := []string{
		"t.status = $1",
		"t.priority = $2",
		"ex.username = $3",
		commentCount + " > $4",
	}
	if !reflect.DeepEqual(conditions, want) {
		t.Errorf("conditions = %v, want %v", conditions, want)
	}
	if len(args) != 4 {
		t.Fatalf("len(args) = %d, want 4", len(args))
	}

	clause := whereClause(conditions)
	wantClause := " WHERE t.status = $1 AND t.priority = $2 AND ex.username = $3 AND " + commentCount + " > $4"
	if clause != wantClause {
		t.Errorf("whereClause = %q, want %q", clause, wantClause)
	}
}

// Противоречивые критерии собираются без ошибки, выборка просто пустая.
func TestBuildTaskSpecContradiction(t *testing.T) {
	criteria := models.TaskCriteria{
		Status:    statusPtr(models.StatusPending),
		NonStatus: statusPtr(models.StatusPending),
	}
	conditions, _ := BuildTaskSpec(criteria)
	want := []string{"t.status = $1", "t.status <> $2"}
	if !reflect.DeepEqual(conditions, want) {
		t.Errorf("conditions = %v, want %v", conditions, want)
	}
}
