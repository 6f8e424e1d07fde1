package models

import "time"

// PersonalDetailsDB represents a user's personal details row.
// All measurable fields are nullable: a profile is seeded empty at
// registration and filled in later. Height is stored in meters.
type PersonalDetailsDB struct {
	Username string     `json:"username" db:"username"` // Primary key
	DOB      *time.Time `json:"dob" db:"dob"`           // Date of birth
	WeightKG *float64   `json:"weight" db:"weight"`     // Weight in kilograms
	HeightM  *float64   `json:"height" db:"height"`     // Height in meters
}
