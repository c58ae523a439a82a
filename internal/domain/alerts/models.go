package alerts

// TeamScope selects which side of a match a condition inspects.
type TeamScope string

const (
	TeamAny  TeamScope = "any"
	TeamHome TeamScope = "home"
	TeamAway TeamScope = "away"
	// TeamOther refers back to the opposite of the team resolved from the
	// first condition of the same alert. It is only meaningful on the
	// second and later conditions.
	TeamOther TeamScope = "other"
)

// Comparison is the operator applied between an extracted value and a
// condition's threshold.
type Comparison string

const (
	CompareEquals         Comparison = "equals"
	CompareGreaterOrEqual Comparison = "greaterOrEqual"
	CompareLessOrEqual    Comparison = "lessOrEqual"

	// compareGreaterLegacy is the historical token for greaterOrEqual;
	// stored preferences written by older clients still carry it.
	compareGreaterLegacy Comparison = "greaterThan"
)

// Normalize maps legacy comparison tokens onto their current spelling.
func (c Comparison) Normalize() Comparison {
	if c == compareGreaterLegacy {
		return CompareGreaterOrEqual
	}
	return c
}

// Operator combines per-condition results for a composite alert.
type Operator string

const (
	OperatorAnd Operator = "AND"
	OperatorOr  Operator = "OR"
)

// Condition is one atomic test of an extracted match value against a
// threshold. EventType keys into the sport's alertable-event catalog.
type Condition struct {
	EventType  string     `json:"eventType"`
	Team       TeamScope  `json:"team"`
	Threshold  int        `json:"threshold"`
	Comparison Comparison `json:"comparison"`
}

// Alert is a named, user-toggleable rule composed of zero or more
// conditions. An alert with no conditions never fires.
type Alert struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Enabled    bool        `json:"enabled"`
	Conditions []Condition `json:"conditions"`
	Operator   Operator    `json:"operator"`
}

// SportSettings holds the built-in alert configuration for one sport.
type SportSettings struct {
	GoalAlerts          bool            `json:"goalAlerts"`
	RedCardAlerts       bool            `json:"redCardAlerts"`
	YellowCardAlerts    bool            `json:"yellowCardAlerts"`
	DifferenceAlerts    bool            `json:"differenceAlerts"`
	DifferenceThreshold int             `json:"differenceThreshold"`
	LateGameAlerts      bool            `json:"lateGameAlerts"`
	LateGameMinute      int             `json:"lateGameMinute"`
	HalfTimeAlerts      bool            `json:"halfTimeAlerts"`
	FullTimeAlerts      bool            `json:"fullTimeAlerts"`
	Leagues             map[string]bool `json:"leagues,omitempty"`
}

// AlertPreferences is the per-user aggregate of selected sports, per-sport
// built-in settings, and custom alerts. Exactly one record exists per user;
// it is defaulted on first load and merged into on every save.
type AlertPreferences struct {
	Sports       map[string]bool          `json:"sports"`
	Settings     map[string]SportSettings `json:"settings"`
	CustomAlerts []Alert                  `json:"customAlerts"`
}

// Defaults returns the preferences handed to a user who has never saved any:
// no sports selected, built-in thresholds at their conventional values.
func Defaults() AlertPreferences {
	return AlertPreferences{
		Sports:       map[string]bool{},
		Settings:     map[string]SportSettings{},
		CustomAlerts: []Alert{},
	}
}

// DefaultSportSettings returns the built-in configuration applied when a
// sport is enabled for the first time.
func DefaultSportSettings() SportSettings {
	return SportSettings{
		GoalAlerts:          true,
		DifferenceThreshold: 2,
		LateGameMinute:      80,
	}
}
