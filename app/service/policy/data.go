package policy

// Goal is the single next conversational objective chosen for a turn.
type Goal string

const (
	GoalAskProject       Goal = "ask_project"
	GoalAskProjectDetail Goal = "ask_project_detail"
	GoalAskNamePhone     Goal = "ask_name_phone"
	GoalAskAddress       Goal = "ask_address"
	GoalAskTimeline      Goal = "ask_timeline"
	GoalAskPlans         Goal = "ask_plans"
	GoalAskBudget        Goal = "ask_budget"
	GoalAskEmail         Goal = "ask_email"
	GoalAskEmailSoft     Goal = "ask_email_soft"
	GoalOfferSlots       Goal = "offer_slots"
	GoalValueAdd         Goal = "value_add"
)

const refusalSoftLimit = 2
