package book

import "context"

// 图书变更事件的Routing Key
const (
	EventCreated = "book.created"
	EventUpdated = "book.updated"
	EventDeleted = "book.deleted"
)

// Event 图书变更事件
// 事务提交后发布,下游据此同步检索索引等
type Event struct {
	Type      string `json:"type"`
	BookID    uint   `json:"book_id"`
	Title     string `json:"title,omitempty"`
	Owned     *int   `json:"owned,omitempty"`
	Available *int   `json:"available,omitempty"`
}

// NewEvent 根据图书当前状态构造事件
func NewEvent(eventType string, b *Book) Event {
	e := Event{Type: eventType, BookID: b.ID, Title: b.Title}
	if b.Inventory != nil {
		owned, available := b.Inventory.Owned, b.Inventory.Available
		e.Owned = &owned
		e.Available = &available
	}
	return e
}

// EventPublisher 事件发布接口
// 实现位于infrastructure/events(RabbitMQ或空实现)
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}
