package repositories

import (
	"reflect"
	"strings"
	"testing"

	"tasktracker/internal/models"
)

// offset — номер страницы: страница 1 при limit=20 начинается со строки 20.
func TestAppendPagingPageToRowOffset(t *testing.T) {
	cases := []struct {
		name          string
		limit, offset int
		wantRowOffset int
	}{
		{"first page", 20, 0, 0},
		{"second page", 20, 1, 20},
		{"third page of 50", 50, 2, 100},
		{"single row pages", 1, 7, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, args := appendPaging(taskSelect, nil, tc.limit, tc.offset)
			if !strings.HasSuffix(q, " ORDER BY t.id LIMIT $1 OFFSET $2") {
				t.Errorf("query = %q, want LIMIT $1 OFFSET $2 suffix", q)
			}
			want := []interface{}{tc.limit, tc.wantRowOffset}
			if !reflect.DeepEqual(args, want) {
				t.Errorf("args = %v, want %v", args, want)
			}
		})
	}
}

func TestAppendPagingContinuesArgNumbering(t *testing.T) {
	criteria := models.TaskCriteria{
		Status:   statusPtr(models.StatusPending),
		Executor: strPtr("worker"),
	}
	conditions, args := BuildTaskSpec(criteria)
	q, args := appendPaging(taskSelect+whereClause(conditions), args, 20, 1)

	if !strings.HasSuffix(q, " ORDER BY t.id LIMIT $3 OFFSET $4") {
		t.Errorf("query = %q, want LIMIT $3 OFFSET $4 suffix", q)
	}
	want := []interface{}{models.StatusPending, "worker", 20, 20}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args = %v, want %v", args, want)
	}
}
