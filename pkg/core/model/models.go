package model

type LocationType string

const (
	LocationInterior LocationType = "INT"
	LocationExterior LocationType = "EXT"
)

func (t LocationType) IsValid() bool {
	return t == LocationInterior || t == LocationExterior
}

type TimeOfDay string

const (
	TimeDay   TimeOfDay = "DAY"
	TimeNight TimeOfDay = "NIGHT"
	TimeDusk  TimeOfDay = "DUSK"
	TimeDawn  TimeOfDay = "DAWN"
)

func (t TimeOfDay) IsValid() bool {
	switch t {
	case TimeDay, TimeNight, TimeDusk, TimeDawn:
		return true
	}
	return false
}

// Location is where a scene is set. Scenes sharing both name and type are shot together.
type Location struct {
	Name string       `yaml:"name" json:"name" validate:"required"`
	Type LocationType `yaml:"type" json:"type" validate:"required,oneof=INT EXT"`
}

// SceneRecord is a structured scene as produced by the script structuring step.
// Records are frozen after Ingest; every other view is derived from them.
type SceneRecord struct {
	SceneNumber string    `yaml:"scene_number" json:"scene_number" validate:"required"`
	Location    Location  `yaml:"location" json:"location"`
	TimeOfDay   TimeOfDay `yaml:"time_of_day" json:"time_of_day" validate:"required,oneof=DAY NIGHT DUSK DAWN"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`

	// Eighths overrides the description-based length estimate when set
	Eighths *float64 `yaml:"eighths,omitempty" json:"eighths,omitempty" validate:"omitempty,gt=0"`

	TechnicalCues []string `yaml:"technical_cues,omitempty" json:"technical_cues,omitempty" validate:"dive,required"`
	Cast          []string `yaml:"cast,omitempty" json:"cast,omitempty" validate:"dive,required"`
	DialogueCount int      `yaml:"dialogue_count" json:"dialogue_count" validate:"min=0"`

	// Department notes used by the resource rules
	Props               []string `yaml:"props,omitempty" json:"props,omitempty" validate:"dive,required"`
	WardrobeNotes       []string `yaml:"wardrobe,omitempty" json:"wardrobe,omitempty" validate:"dive,required"`
	SpecialRequirements []string `yaml:"special_requirements,omitempty" json:"special_requirements,omitempty" validate:"dive,required"`
}

// LocationKey returns the key scenes are clustered by
func (s SceneRecord) LocationKey() LocationKey {
	return LocationKey{Name: s.Location.Name, Type: s.Location.Type}
}

// Person is a cast or crew directory entry. Cast members are also picked up
// from SceneRecord.Cast, so SceneNumbers only needs the extra associations.
type Person struct {
	ID           string   `yaml:"id" json:"id" validate:"required"`
	Name         string   `yaml:"name,omitempty" json:"name,omitempty"`
	Role         string   `yaml:"role,omitempty" json:"role,omitempty"`
	SceneNumbers []string `yaml:"scenes,omitempty" json:"scenes,omitempty" validate:"dive,required"`
}

// Production is the full engine input
type Production struct {
	Title  string        `yaml:"title,omitempty" json:"title,omitempty"`
	Scenes []SceneRecord `yaml:"scenes" json:"scenes"`
	People []Person      `yaml:"people,omitempty" json:"people,omitempty"`
}

// ComplexityResult breaks a scene's complexity multiplier into its factors
type ComplexityResult struct {
	SceneNumber string  `json:"scene_number"`
	Base        float64 `json:"base"`
	Technical   float64 `json:"technical"`
	Exterior    float64 `json:"exterior"`
	TimeOfDay   float64 `json:"time_of_day"`
	Cast        float64 `json:"cast"`
	Dialogue    float64 `json:"dialogue"`

	// Total is the capped sum of all factors, always within [1.0, 3.0]
	Total float64 `json:"total"`
}

// SceneEighths is the length and time estimate for a scene
type SceneEighths struct {
	SceneNumber     string  `json:"scene_number"`
	WordCount       int     `json:"word_count"`
	PageCount       float64 `json:"page_count"`
	BaseEighths     float64 `json:"base_eighths"`
	AdjustedEighths float64 `json:"adjusted_eighths"`
	ShootHours      float64 `json:"shoot_hours"`
	SetupHours      float64 `json:"setup_hours"`
	WrapHours       float64 `json:"wrap_hours"`
	TotalHours      float64 `json:"total_hours"`
}

// SceneEstimate pairs a scene with its derived complexity and eighths
type SceneEstimate struct {
	Scene      SceneRecord      `json:"scene"`
	Complexity ComplexityResult `json:"complexity"`
	Eighths    SceneEighths     `json:"eighths"`
}

// ConsecutiveBlock is a maximal run of consecutive work days
type ConsecutiveBlock struct {
	Start  int `json:"start"`
	End    int `json:"end"`
	Length int `json:"length"`
}

// Day-out-of-days codes
const (
	DayCodeStartWork       = "SW"
	DayCodeWork            = "W"
	DayCodeWorkFinish      = "WF"
	DayCodeStartWorkFinish = "SWF"
	DayCodeHold            = "H"
	DayCodeTravel          = "T"
)

// PersonScheduleRecord is the Day-Out-of-Days report for one person
type PersonScheduleRecord struct {
	PersonID          string             `json:"person_id"`
	WorkDays          []int              `json:"work_days"`
	TravelDays        []int              `json:"travel_days"`
	HoldDays          []int              `json:"hold_days"`
	ConsecutiveBlocks []ConsecutiveBlock `json:"consecutive_blocks"`
	LongestBreak      int                `json:"longest_break"`
	Efficiency        float64            `json:"efficiency"`

	// DayCodes has one entry per shoot day (index 0 is day 1); empty when the person is off
	DayCodes []string `json:"day_codes"`
}

// LocationCluster groups the scenes shot at one location
type LocationCluster struct {
	Key             LocationKey `json:"key"`
	SceneNumbers    []string    `json:"scene_numbers"`
	ComplexityScore float64     `json:"complexity_score"`
	EstimatedDays   int         `json:"estimated_days"`
}

// SceneCount returns the number of scenes in the cluster
func (c LocationCluster) SceneCount() int {
	return len(c.SceneNumbers)
}

type Involvement string

const (
	InvolvementNone     Involvement = "none"
	InvolvementBasic    Involvement = "basic"
	InvolvementModerate Involvement = "moderate"
	InvolvementHeavy    Involvement = "heavy"
)

// Rank orders involvement levels so they can be compared and raised
func (i Involvement) Rank() int {
	switch i {
	case InvolvementBasic:
		return 1
	case InvolvementModerate:
		return 2
	case InvolvementHeavy:
		return 3
	}
	return 0
}

// SceneInvolvement records how heavily a department is used on one scene
type SceneInvolvement struct {
	SceneNumber string      `json:"scene_number"`
	Level       Involvement `json:"level"`
}

// DepartmentRequirement is the aggregated need of one department over the shoot
type DepartmentRequirement struct {
	Department     string             `json:"department"`
	Involvement    []SceneInvolvement `json:"involvement"`
	Equipment      []string           `json:"equipment"`
	SpecialNeeds   []string           `json:"special_needs"`
	EstimatedHours float64            `json:"estimated_hours"`
	CrewSize       int                `json:"crew_size"`
}

// IsInvolved reports whether the department works on the given scene
func (d DepartmentRequirement) IsInvolved(sceneNumber string) bool {
	for _, inv := range d.Involvement {
		if inv.SceneNumber == sceneNumber {
			return inv.Level != InvolvementNone
		}
	}
	return false
}

type ViolationKind string

const (
	ViolationExcessiveConsecutiveDays ViolationKind = "excessive_consecutive_days"
	ViolationInsufficientTurnaround   ViolationKind = "insufficient_turnaround"
	ViolationMissingMealBreak         ViolationKind = "missing_meal_break"
)

type Severity string

const (
	SeverityWarning   Severity = "warning"
	SeverityViolation Severity = "violation"
)

// ComplianceViolation is a rule breach found in a plan. It is data, not an error:
// callers decide whether a given severity blocks the schedule.
type ComplianceViolation struct {
	Kind     ViolationKind `json:"kind"`
	Subject  string        `json:"subject"`
	Day      int           `json:"day"`
	Severity Severity      `json:"severity"`
	Detail   string        `json:"detail"`
}
