package db

import "time"

// Plan represents a stored plan header. Document holds the full plan as JSON.
type Plan struct {
	ID            string
	Title         string
	TotalDays     int
	SceneCount    int
	RouteCost     float64
	HasViolations bool
	CalendarStart time.Time
	Document      []byte
	CreatedAt     time.Time
}

// Strip represents one scene placed on a shoot day
type Strip struct {
	PlanID      string
	Day         int
	Position    int
	ShootDate   time.Time
	SceneNumber string
	Location    string
	TimeOfDay   string
	Color       string
	Eighths     string
	Hours       float64
}

// PersonDay represents one DOOP grid cell that is not blank
type PersonDay struct {
	PlanID   string
	PersonID string
	Day      int
	Code     string
}

// Violation represents a compliance finding
type Violation struct {
	PlanID   string
	Day      int
	Kind     string
	Subject  string
	Severity string
	Detail   string
}

// PlanRows is everything written for one plan
type PlanRows struct {
	Plan       Plan
	Strips     []Strip
	PersonDays []PersonDay
	Violations []Violation
}
