package models

// Event names published to the progress stream
const (
	EventExerciseUpdated = "exercise_updated"
	EventDayAdvanced     = "day_advanced"
)

// ProgressEvent represents a progress notification published to Kafka
// whenever a user reports completed reps or advances to the next day.
type ProgressEvent struct {
	EventID       string  `json:"event_id"`                 // Unique event identifier
	Timestamp     int64   `json:"timestamp"`                // Unix timestamp (seconds) of the event
	Username      string  `json:"username"`                 // User the event belongs to
	Day           int     `json:"day"`                      // Plan day the event refers to
	Event         string  `json:"event"`                    // One of the Event* constants
	Exercise      string  `json:"exercise,omitempty"`       // Exercise kind for exercise_updated events
	CompletedReps int     `json:"completed_reps,omitempty"` // Reported reps for exercise_updated events
	Completion    float64 `json:"completion,omitempty"`     // Completion percent after the update
}
