package models

import "time"

// Comment belongs to exactly one task; комментарии только добавляются,
// редактирование и отдельное удаление не поддерживаются.
type Comment struct {
	ID             int64     `json:"id"`
	TaskID         int64     `json:"task_id"`
	AuthorID       int64     `json:"author_id"`
	AuthorUsername string    `json:"author"`
	Date           time.Time `json:"date"`
	Text           string    `json:"text"`
}

// CommentResponse is the comment projection inside TaskResponse.
type CommentResponse struct {
	Author string `json:"author"`
	Date   string `json:"date"` // YYYY-MM-DD
	Text   string `json:"text"`
}
