package pubsub

import "churchadmin/internal/domain/service"

// eventAttributes are the message attributes subscribers filter on.
func eventAttributes(event *service.DomainEvent) map[string]string {
	attributes := map[string]string{
		"type":        event.Type,
		"entity_type": event.EntityType,
		"entity_id":   event.EntityID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
