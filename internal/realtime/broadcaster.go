package realtime

// Broadcaster fans an event out to every connected realtime client.
// Delivery is best-effort, at-most-once, unscoped: there is no per-board
// or per-project filtering and no replay for late subscribers.
type Broadcaster interface {
	Publish(event string, payload any)
}

// Event is the frame sent over the wire.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Event names emitted by the task mutation flow.
const (
	EventNewTask    = "new_task"
	EventUpdateTask = "update_task"
	EventDeleteTask = "delete_task"
)
