package events

import "log/slog"

// Publish sends event on client and logs a failure instead of returning it.
// Change notifications never block the mutation that caused them. A nil
// client is skipped, as in tests that do not wire a bus.
func Publish(client EventPublisher, event Event) {
	if client == nil {
		return
	}

	if err := client.SendEvent(event); err != nil {
		slog.Warn("event publish failed",
			"event_type", event.Type,
			"module_id", event.ModuleID,
			"item_id", event.ItemID,
			"error", err)
	}
}
