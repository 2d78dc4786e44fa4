package repositories

import (
	"fmt"
	"strings"

	"tasktracker/internal/models"
)

// commentCount — коррелирующий подзапрос по числу комментариев задачи.
// Алиасы t/au/ex совпадают с базовым запросом taskRepository.
const commentCount = `(SELECT COUNT(*) FROM comments c WHERE c.task_id = t.id)`

// BuildTaskSpec переводит разреженный набор критериев в список SQL-условий и
// аргументов. Незаполненное поле не ограничивает выборку; все заполненные
// условия соединяются через AND. Взаимоисключающие комбинации (например
// status = PENDING и nonStatus = PENDING) строятся как есть и просто дают
// пустой результат.
//
// Операторы по числу комментариев: less — включительно (<=), greater —
// строго (>), equal — точное равенство. Несимметричность намеренная.
func BuildTaskSpec(criteria models.TaskCriteria) (conditions []string, args []interface{}) {
	argID := 1
	add := func(cond string, arg interface{}) {
		conditions = append(conditions, fmt.Sprintf(cond, argID))
		args = append(args, arg)
		argID++
	}

	if criteria.Status != nil {
		add("t.status = $%d", *criteria.Status)
	}
	if criteria.NonStatus != nil {
		add("t.status <> $%d", *criteria.NonStatus)
	}
	if criteria.Priority != nil {
		add("t.priority = $%d", *criteria.Priority)
	}
	if criteria.NonPriority != nil {
		add("t.priority <> $%d", *criteria.NonPriority)
	}
	if criteria.Author != nil {
		add("au.username = $%d", *criteria.Author)
	}
	if criteria.Executor != nil {
		add("ex.username = $%d", *criteria.Executor)
	}
	if criteria.CountCommentsLess != nil {
		add(commentCount+" <= $%d", *criteria.CountCommentsLess)
	}
	if criteria.CountCommentsGreater != nil {
		add(commentCount+" > $%d", *criteria.CountCommentsGreater)
	}
	if criteria.CountCommentsEqual != nil {
		add(commentCount+" = $%d", *criteria.CountCommentsEqual)
	}
	return conditions, args
}

// whereClause собирает условия в готовый фрагмент WHERE (пустая строка,
// если условий нет).
func whereClause(conditions []string) string {
	if len(conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conditions, " AND ")
}
