// Package cache holds a read-through cache of task projections keyed by
// title. Записи живут до явной инвалидации: правка перезаписывает запись,
// удаление вычищает её; TTL нет.
package cache

import (
	"sync"

	"tasktracker/internal/models"
)

type TaskCache struct {
	mu    sync.RWMutex
	items map[string]*models.TaskResponse
}

func NewTaskCache() *TaskCache {
	return &TaskCache{items: make(map[string]*models.TaskResponse)}
}

func (c *TaskCache) Get(title string) (*models.TaskResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[title]
	return v, ok
}

func (c *TaskCache) Set(title string, task *models.TaskResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[title] = task
}

func (c *TaskCache) Evict(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, title)
}
