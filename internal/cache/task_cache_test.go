package cache

import (
	"sync"
	"testing"

	"tasktracker/internal/models"
)

func TestTaskCacheGetSetEvict(t *testing.T) {
	c := NewTaskCache()

	if _, ok := c.Get("deploy"); ok {
		t.Fatal("empty cache must miss")
	}

	resp := &models.TaskResponse{Title: "deploy", Status: models.StatusPending}
	c.Set("deploy", resp)

	got, ok := c.Get("deploy")
	if !ok || got.Title != "deploy" {
		t.Fatalf("Get after Set = %v, %v", got, ok)
	}

	updated := &models.TaskResponse{Title: "deploy", Status: models.StatusCompleted}
	c.Set("deploy", updated)
	if got, _ := c.Get("deploy"); got.Status != models.StatusCompleted {
		t.Errorf("Set must overwrite, got status %q", got.Status)
	}

	c.Evict("deploy")
	if _, ok := c.Get("deploy"); ok {
		t.Error("Get after Evict must miss")
	}

	// повторный Evict безопасен
	c.Evict("deploy")
	c.Evict("ghost")
}

func TestTaskCacheConcurrentAccess(t *testing.T) {
	c := NewTaskCache()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Set("deploy", &models.TaskResponse{Title: "deploy"})
				c.Get("deploy")
				c.Evict("deploy")
			}
		}()
	}
	wg.Wait()
}
