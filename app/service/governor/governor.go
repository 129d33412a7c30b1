package governor

import (
	"regexp"
	"strings"

	"mariachat/app/service/policy"
	"mariachat/app/service/signals"
)

// The generation collaborator may ignore formatting instructions entirely,
// so its output is re-validated here and overwritten where needed. Every
// path returns a usable reply string; nothing is ever surfaced as an error.

var schedulingVocabPattern = regexp.MustCompile(`(?i)\bschedule|appointment|\bbook\b|meeting|tomorrow|monday|tuesday|wednesday|thursday|friday|saturday|sunday`)

var dayMentionPattern = regexp.MustCompile(`(?i)\b(tomorrow|monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)

// Repair enforces the output contract on a raw generated message:
// exactly one question (two allowed when offering slots), no scheduling
// push after a refusal, and the visitor's stated day over any default.
func Repair(goal policy.Goal, sig signals.Signals, message string) string {
	result := strings.TrimSpace(message)
	if result == "" {
		// the substitute still goes through the repairs below: it names
		// default days, which must not survive a refusal or a stated day
		result = LastResort
	}

	if violatesQuestionContract(goal, result) {
		result = goalTemplate(goal, sig.Availability)
	}

	declined := sig.SaidNoToSchedule || sig.RefusalCount >= 2
	if declined && schedulingVocabPattern.MatchString(result) {
		result = softDeferral(sig.Availability)
	}

	if goal == policy.GoalOfferSlots && sig.Availability.HasDay() && contradictsStatedDay(result, sig.Availability.Day) {
		result = offerTemplate(sig.Availability)
	}

	return result
}

func violatesQuestionContract(goal policy.Goal, message string) bool {
	questions := strings.Count(message, "?")

	if goal == policy.GoalOfferSlots {
		// presenting two time options legitimately needs two question marks
		return questions < 1 || questions > 2
	}

	return questions != 1
}

// contradictsStatedDay reports whether the reply names a day other than the
// one the visitor already stated.
func contradictsStatedDay(message, statedDay string) bool {
	for _, mention := range dayMentionPattern.FindAllString(message, -1) {
		if !strings.EqualFold(mention, statedDay) {
			return true
		}
	}

	return false
}
