package memory

import (
	"context"
	"sync"

	"github.com/rakhadian/sportsday/internal/domain/event"
)

type EventRepository struct {
	mu     sync.RWMutex
	events []event.Event
}

func NewEventRepository(events []event.Event) *EventRepository {
	return &EventRepository{events: append([]event.Event(nil), events...)}
}

func (r *EventRepository) List(_ context.Context) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]event.Event, 0, len(r.events))
	out = append(out, r.events...)

	return out, nil
}

func (r *EventRepository) GetByID(_ context.Context, eventID int64) (event.Event, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.events {
		if item.ID == eventID {
			return item, true, nil
		}
	}

	return event.Event{}, false, nil
}
