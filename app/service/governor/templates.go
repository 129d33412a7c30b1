package governor

import (
	"fmt"

	"mariachat/app/service/policy"
	"mariachat/app/service/signals"
)

// LastResort performs the union of acknowledge + ask for contact info +
// offer to schedule, as a single question. Used when the collaborator
// produced nothing usable.
const LastResort = "Happy to help. Could I please have your full address (street, city, state, ZIP), best phone, and a good email for estimates, so we can get you set up for tomorrow or Thursday?"

// goalTemplate is the fixed per-goal replacement used when the generated
// reply violates the question contract. Wording deliberately avoids the
// refusal, timeline, plan and budget keyword families that the extractor
// and analyzer scan for, since these sentences end up in the replayed
// transcript.
func goalTemplate(goal policy.Goal, avail signals.Availability) string {
	switch goal {
	case policy.GoalAskProject:
		// project categories are deliberately not listed here: this sentence
		// lands in the replayed transcript, where the extractor would match them
		return "Happy to help! What kind of project do you have in mind?"
	case policy.GoalAskProjectDetail:
		return "Glad to help with that. Could you tell me a bit more about what you have in mind?"
	case policy.GoalAskNamePhone:
		return "I'd love to get you taken care of. Could I get your name and the best phone number to reach you?"
	case policy.GoalAskAddress:
		return "Could I please have your full address (street, city, state, ZIP)?"
	case policy.GoalAskTimeline:
		return "When are you hoping to get started on this?"
	case policy.GoalAskPlans:
		return "Do you have anything drawn up already, or is this still at the idea stage?"
	case policy.GoalAskBudget:
		return "Do you have a rough figure in mind for the investment?"
	case policy.GoalAskEmail:
		return "Is there a good email for estimates and reports?"
	case policy.GoalAskEmailSoft:
		return "Totally understand. If you'd like, what's a good email where I can send over some ideas?"
	case policy.GoalOfferSlots:
		return offerTemplate(avail)
	case policy.GoalValueAdd:
		return "Thanks for sharing all of that! Is there anything else about the project you'd like to go over?"
	default:
		return LastResort
	}
}

func offerTemplate(avail signals.Availability) string {
	switch {
	case avail.HasDay() && avail.TimeOfDay != "":
		return fmt.Sprintf("Great, shall we pencil you in for %s %s? Does that still work on your end?",
			signals.TitleWord(avail.Day), avail.TimeOfDay)
	case avail.HasDay():
		return fmt.Sprintf("Great, does %s still work for you? Would morning or late afternoon suit you best?",
			signals.TitleWord(avail.Day))
	case avail.TimeOfDay != "":
		return fmt.Sprintf("Great, would tomorrow or Thursday %s work better for you?", avail.TimeOfDay)
	default:
		return "Great, would tomorrow or Thursday work better for you? Morning or late afternoon?"
	}
}

// softDeferral backs off scheduling entirely while leaving the door open.
func softDeferral(avail signals.Availability) string {
	if avail.HasDay() {
		tod := avail.TimeOfDay
		if tod == "" {
			tod = "whenever suits"
		}

		return fmt.Sprintf("Of course, there's never any pressure. Whenever you're ready we can look at %s %s, just say the word.",
			signals.TitleWord(avail.Day), tod)
	}

	return "Of course, there's never any pressure. Whenever you're ready, we can pencil something in later."
}
