package signals

import (
	"regexp"
	"strings"

	"mariachat/app/service/transcript"

	"github.com/elliotchance/pie/v2"
)

var (
	greetingPattern  = regexp.MustCompile(`^\s*(?:hi|hello|hey|howdy|good (?:morning|afternoon|evening))\b`)
	smallTalkPattern = regexp.MustCompile(`how are you|how'?s it going|nice to meet|what'?s up`)

	refusalPattern = regexp.MustCompile(`\bno\b|\bnot yet\b|\bdon'?t want\b|\bwon'?t\b|\bcan'?t\b|\bprefer not\b`)

	schedulingWordPattern = regexp.MustCompile(`\bschedule|appointment|\bbook\b|meeting|monday|tuesday|wednesday|thursday|friday|saturday|sunday`)
	contactWordPattern    = regexp.MustCompile(`phone|number|email|contact`)
	scheduleIntentPattern = regexp.MustCompile(`\bschedule|appointment|\bbook\b|come out|site visit|set up a time`)

	dayPattern       = regexp.MustCompile(`\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	timeOfDayPattern = regexp.MustCompile(`\b(morning|afternoon|evening|noon)\b`)
)

// Analyze derives the dialogue signals for the current turn. Greeting and
// small talk are scoped to the latest visitor message so a "hi" said three
// turns ago does not keep suppressing the qualification flow. Refusal words
// are counted across the whole transcript; visitor-intent signals (consent,
// scheduling intent, availability) only look at visitor turns, since the
// assistant's own replies mention days and contact fields all the time.
func Analyze(t transcript.Transcript) Signals {
	corpus := t.Corpus()
	userCorpus := t.UserCorpus()
	latest, _ := t.LatestUser()

	result := Signals{
		IsGreeting:      greetingPattern.MatchString(latest),
		IsSmallTalk:     smallTalkPattern.MatchString(latest),
		AskedToSchedule: scheduleIntentPattern.MatchString(userCorpus),
		RefusalCount:    len(refusalPattern.FindAllString(corpus, -1)),
		Availability:    detectAvailability(userCorpus),
		TurnCount:       t.UserTurnCount(),
	}

	userMessages := t.UserMessages()
	result.SaidNoToSchedule = pie.Any(userMessages, func(msg string) bool {
		return refusalPattern.MatchString(msg) && schedulingWordPattern.MatchString(msg)
	})
	result.SaidNoToContact = pie.Any(userMessages, func(msg string) bool {
		return refusalPattern.MatchString(msg) && contactWordPattern.MatchString(msg)
	})

	return result
}

// detectAvailability picks the first day name and the first time-of-day word
// independently; if the visitor mentioned two days, the first one wins.
func detectAvailability(userCorpus string) Availability {
	var result Availability

	if day := dayPattern.FindString(userCorpus); day != "" {
		result.Day = day
	}
	if tod := timeOfDayPattern.FindString(userCorpus); tod != "" {
		result.TimeOfDay = tod
	}

	return result
}

// TitleWord capitalizes a detected day or time-of-day word for reply text.
func TitleWord(word string) string {
	if word == "" {
		return ""
	}

	return strings.ToUpper(word[:1]) + word[1:]
}
