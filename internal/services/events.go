package services

import "mudanzasBack/internal/models"

// EventPublisher fans events out to live websocket subscribers. The hub in
// cmd implements it; a nil publisher silently drops events so services stay
// usable in tests and one-shot tools.
type EventPublisher interface {
	Publish(event models.Event)
}

func publish(p EventPublisher, eventType, topic string, payload interface{}) {
	if p == nil {
		return
	}
	p.Publish(models.Event{Type: eventType, Topic: topic, Payload: payload})
}
