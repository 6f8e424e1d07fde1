package models

// Exercise identifies one of the supported exercise kinds.
// Values double as the column-name prefix in the exercise_plan table,
// but user input never reaches SQL directly: ParseExercise is the only
// way to obtain an Exercise from a string.
type Exercise string

// Supported exercise kinds
const (
	Pushups Exercise = "pushups"
	Situps  Exercise = "situps"
	Squats  Exercise = "squats"
)

// Exercises returns all supported exercise kinds in a fixed order.
func Exercises() []Exercise {
	return []Exercise{Pushups, Situps, Squats}
}

// ParseExercise validates a raw exercise name against the allow-list.
func ParseExercise(s string) (Exercise, bool) {
	switch Exercise(s) {
	case Pushups, Situps, Squats:
		return Exercise(s), true
	}
	return "", false
}

// ExercisePlanDB represents one day's exercise plan row.
// Targets are immutable after creation; only the completed counters and
// the completion percentage change.
type ExercisePlanDB struct {
	Username         string  `json:"username" db:"username"`
	Day              int     `json:"day" db:"day"`
	Pushups          int     `json:"pushups" db:"pushups"`                     // Target push-up reps
	Situps           int     `json:"situps" db:"situps"`                       // Target sit-up reps
	Squats           int     `json:"squats" db:"squats"`                       // Target squat reps
	PushupsCompleted int     `json:"pushups_completed" db:"pushups_completed"` // Completed push-up reps
	SitupsCompleted  int     `json:"situps_completed" db:"situps_completed"`   // Completed sit-up reps
	SquatsCompleted  int     `json:"squats_completed" db:"squats_completed"`   // Completed squat reps
	Completion       float64 `json:"completion" db:"completion"`               // Percent complete, averaged over the three exercises
}

// Target returns the target rep count for the given exercise.
func (p *ExercisePlanDB) Target(e Exercise) int {
	switch e {
	case Pushups:
		return p.Pushups
	case Situps:
		return p.Situps
	case Squats:
		return p.Squats
	}
	return 0
}

// Completed returns the completed rep count for the given exercise.
func (p *ExercisePlanDB) Completed(e Exercise) int {
	switch e {
	case Pushups:
		return p.PushupsCompleted
	case Situps:
		return p.SitupsCompleted
	case Squats:
		return p.SquatsCompleted
	}
	return 0
}

// SetCompleted overwrites the completed rep count for the given exercise.
func (p *ExercisePlanDB) SetCompleted(e Exercise, reps int) {
	switch e {
	case Pushups:
		p.PushupsCompleted = reps
	case Situps:
		p.SitupsCompleted = reps
	case Squats:
		p.SquatsCompleted = reps
	}
}
