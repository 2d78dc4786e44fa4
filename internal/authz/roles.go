package authz

import "tasktracker/internal/models"

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// IsAdmin — членство "ADMIN" в наборе ролей; иерархии ролей нет.
func IsAdmin(roles []string) bool {
	for _, r := range roles {
		if r == RoleAdmin {
			return true
		}
	}
	return false
}

// CanModifyTask gates status edits and comment creation: admin override or
// the caller is the task's executor (сравнение по id, не по ссылке).
// Правки приоритета/исполнителя и удаление проверяются не здесь, а
// admin-маршрутами на транспортном уровне.
func CanModifyTask(caller *models.User, task *models.Task) bool {
	if caller == nil || task == nil {
		return false
	}
	return IsAdmin(caller.Roles) || caller.ID == task.ExecutorID
}
