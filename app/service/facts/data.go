package facts

type Project string

const (
	ProjectKitchen  Project = "kitchen"
	ProjectBath     Project = "bath"
	ProjectDeck     Project = "deck"
	ProjectRoofing  Project = "roofing"
	ProjectConcrete Project = "concrete"
	ProjectAddition Project = "addition"
	ProjectNewHome  Project = "new_home"
	ProjectUnknown  Project = "unknown"
)

// FactSet holds everything the qualification flow has learned from the
// transcript so far. It is recomputed from scratch on every request.
type FactSet struct {
	HasName    bool    `json:"hasName"`
	HasPhone   bool    `json:"hasPhone"`
	HasEmail   bool    `json:"hasEmail"`
	HasAddress bool    `json:"hasAddress"`
	Project    Project `json:"project"`

	HasTimeline bool `json:"hasTimeline"`
	HasPlans    bool `json:"hasPlans"`
	HasBudget   bool `json:"hasBudget"`
}
