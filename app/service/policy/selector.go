package policy

import (
	"fmt"

	"mariachat/app/service/facts"
	"mariachat/app/service/signals"
)

// Selector implements the priority decision procedure: a strict, ordered
// table evaluated top to bottom, followed by consent-gate downgrades. It
// returns exactly one goal per request plus a guidance string for the
// generation prompt.
type Selector struct {
	bank *QuestionBank
}

func NewSelector(bank *QuestionBank) *Selector {
	return &Selector{bank: bank}
}

func (s *Selector) Select(fs facts.FactSet, sig signals.Signals) (Goal, string) {
	goal := selectFromTable(fs, sig)

	// Consent is a hard gate: never re-offer something already declined.
	if goal == GoalOfferSlots && (sig.RefusalCount >= refusalSoftLimit || sig.SaidNoToSchedule) {
		if !fs.HasEmail {
			goal = GoalAskEmailSoft
		} else {
			goal = GoalValueAdd
		}
	}
	if sig.SaidNoToContact && (goal == GoalAskNamePhone || goal == GoalAskEmail) {
		goal = projectGoal(fs)
	}

	return goal, s.guidance(goal, fs)
}

func selectFromTable(fs facts.FactSet, sig signals.Signals) Goal {
	// Greeting guard: always re-anchor on intent before qualifying.
	if sig.IsGreeting || sig.TurnCount <= 1 {
		return projectGoal(fs)
	}

	// Explicit scheduling intent jumps the queue; the downgrades above still
	// apply if the visitor has since backed off.
	if sig.AskedToSchedule {
		return GoalOfferSlots
	}

	if fs.Project == facts.ProjectUnknown {
		return GoalAskProject
	}

	if !(fs.HasName && fs.HasPhone) {
		if sig.SaidNoToContact {
			return projectGoal(fs)
		}
		return GoalAskNamePhone
	}

	if !fs.HasAddress {
		return GoalAskAddress
	}
	if !fs.HasTimeline {
		return GoalAskTimeline
	}
	if !fs.HasPlans {
		return GoalAskPlans
	}
	if !fs.HasBudget {
		return GoalAskBudget
	}

	allowedToOfferSlots := sig.AskedToSchedule ||
		(fs.HasAddress && fs.HasTimeline && fs.HasPlans && fs.HasBudget &&
			sig.RefusalCount < refusalSoftLimit && !sig.SaidNoToSchedule)

	if allowedToOfferSlots {
		return GoalOfferSlots
	}
	if !fs.HasEmail {
		return GoalAskEmail
	}

	return GoalValueAdd
}

// projectGoal is the fallback ask when qualification cannot proceed: ask
// what the project is, or dig into detail when that is already known.
func projectGoal(fs facts.FactSet) Goal {
	if fs.Project == facts.ProjectUnknown {
		return GoalAskProject
	}

	return GoalAskProjectDetail
}

func (s *Selector) guidance(goal Goal, fs facts.FactSet) string {
	switch goal {
	case GoalAskProject:
		return "Answer the visitor's question first, then ask what kind of project they have in mind. Ask exactly one question."
	case GoalAskProjectDetail:
		return fmt.Sprintf("Answer the visitor's question first, then ask this and only this: %q", s.bank.Pick(fs.Project))
	case GoalAskNamePhone:
		return "Answer first, then ask for their name and the best phone number to reach them. One question only."
	case GoalAskAddress:
		return "Answer first, then ask for their full address (street, city, state, ZIP). One question only."
	case GoalAskTimeline:
		return "Answer first, then ask when they are hoping to get started. One question only."
	case GoalAskPlans:
		return "Answer first, then ask whether they have anything drawn up already. One question only. Avoid the words plan, blueprint and architect in your own reply."
	case GoalAskBudget:
		return "Answer first, then gently ask what rough figure they have in mind for the investment. One question only. Avoid the word budget and avoid quoting numbers."
	case GoalAskEmail:
		return "Answer first, then ask for a good email for estimates and reports. One question only."
	case GoalAskEmailSoft:
		return "The visitor is hesitant. Do not push. Softly offer to send ideas by email if they'd like to share one. One question only."
	case GoalOfferSlots:
		return "Answer first, then offer two concrete time options for a visit. If the visitor already stated a day or time of day, use it instead of defaults."
	case GoalValueAdd:
		return "Everything needed is collected. Do not ask for anything new; share one helpful, relevant tip and at most one light follow-up question."
	default:
		return "Answer the visitor helpfully and ask at most one question."
	}
}
