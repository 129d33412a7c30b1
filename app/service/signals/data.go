package signals

// Availability is the visitor's stated scheduling preference, if any.
// Empty fields mean nothing was stated.
type Availability struct {
	Day       string `json:"day,omitempty"`
	TimeOfDay string `json:"timeOfDay,omitempty"`
}

func (a Availability) HasDay() bool {
	return a.Day != ""
}

// Signals are the per-request dialogue signals derived from the transcript.
// Like FactSet they are recomputed fresh on every call.
type Signals struct {
	IsGreeting  bool `json:"isGreeting"`
	IsSmallTalk bool `json:"isSmallTalk"`

	AskedToSchedule  bool `json:"askedToSchedule"`
	SaidNoToSchedule bool `json:"saidNoToSchedule"`
	SaidNoToContact  bool `json:"saidNoToContact"`

	RefusalCount int          `json:"refusalCount"`
	Availability Availability `json:"availability"`
	TurnCount    int          `json:"turnCount"`
}
