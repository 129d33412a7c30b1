package facts

import (
	"regexp"
	"strings"

	"mariachat/app/service/transcript"

	"github.com/elliotchance/pie/v2"
)

var (
	phonePattern = regexp.MustCompile(`(?:\+?1[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}\b`)
	emailPattern = regexp.MustCompile(`\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`)

	// house number + street-type suffix, or a bare ZIP
	streetPattern = regexp.MustCompile(`\b\d{1,6}\s+[a-z0-9]+(?:\s+[a-z0-9]+){0,2}\s+(?:st|street|ave|avenue|rd|road|dr|drive|ln|lane|blvd|boulevard|ct|court|cir|circle|way|ter|terrace|pl|place|pkwy|parkway)\b`)
	zipPattern    = regexp.MustCompile(`\b\d{5}(?:-\d{4})?\b`)

	namePattern = regexp.MustCompile(`(?:my name is|i am|i'm|this is)\s+[a-z][a-z'\-]*\s+[a-z][a-z'\-]*`)

	budgetPattern = regexp.MustCompile(`\$\s?\d[\d,]*(?:\.\d{1,2})?|\b\d{1,4}\s?k\b|\bbudget\b`)
)

// projectFamilies is evaluated in order; the first family with a hit wins
// regardless of where its keyword appears in the text.
var projectFamilies = []struct {
	project  Project
	keywords []string
}{
	{ProjectDeck, []string{"deck", "patio", "pergola"}},
	{ProjectKitchen, []string{"kitchen"}},
	{ProjectBath, []string{"bath", "shower remodel"}},
	{ProjectRoofing, []string{"roof", "soffit", "fascia", "shingle"}},
	{ProjectConcrete, []string{"concrete", "slab", "driveway"}},
	{ProjectAddition, []string{"addition", "extension", "add a room"}},
	{ProjectNewHome, []string{"new home", "new build", "new construction", "custom home", "site prep"}},
}

var timelineKeywords = []string{
	"asap", "urgent", "emergency", "right away", "immediately",
	"this week", "next week", "this month", "next month", "next year",
	"this spring", "this summer", "this fall", "this winter",
	"couple of months", "few months", "soon",
}

var plansKeywords = []string{
	"blueprint", "architect", "engineer", "plans", "drawings", "floor plan",
}

// Extract scans the full transcript for qualification facts. Detection is
// order-independent: a phone number mentioned three turns ago still counts.
func Extract(t transcript.Transcript) FactSet {
	corpus := t.Corpus()

	return FactSet{
		HasName:     namePattern.MatchString(corpus),
		HasPhone:    phonePattern.MatchString(corpus),
		HasEmail:    emailPattern.MatchString(corpus),
		HasAddress:  streetPattern.MatchString(corpus) || zipPattern.MatchString(corpus),
		Project:     detectProject(corpus),
		HasTimeline: containsAny(corpus, timelineKeywords),
		HasPlans:    containsAny(corpus, plansKeywords),
		HasBudget:   budgetPattern.MatchString(corpus),
	}
}

func detectProject(corpus string) Project {
	for _, family := range projectFamilies {
		if containsAny(corpus, family.keywords) {
			return family.project
		}
	}

	return ProjectUnknown
}

func containsAny(corpus string, keywords []string) bool {
	return pie.Any(keywords, func(keyword string) bool {
		return strings.Contains(corpus, keyword)
	})
}
