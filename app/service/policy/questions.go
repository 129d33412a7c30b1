package policy

import (
	"math/rand"
	"sync"

	"mariachat/app/service/facts"
)

// QuestionBank picks a project-specific follow-up question. Selection is
// seedable so the choice can be asserted in tests.
type QuestionBank struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewQuestionBank(seed int64) *QuestionBank {
	return &QuestionBank{rng: rand.New(rand.NewSource(seed))}
}

var projectQuestions = map[facts.Project][]string{
	facts.ProjectDeck: {
		"Are you thinking wood or composite for the deck?",
		"Roughly how big a deck are you picturing?",
		"Is this a new deck or replacing an existing one?",
	},
	facts.ProjectKitchen: {
		"Is this a full kitchen remodel or more of a refresh?",
		"Are you keeping the current kitchen layout or opening it up?",
	},
	facts.ProjectBath: {
		"Is this the main bathroom or a guest bath?",
		"Are you thinking tub, walk-in shower, or both?",
	},
	facts.ProjectRoofing: {
		"Is the roof actively leaking or is this preventive?",
		"Do you know roughly how old the current roof is?",
	},
	facts.ProjectConcrete: {
		"Is this a driveway, a slab for a structure, or something else?",
		"Roughly what square footage are we talking about?",
	},
	facts.ProjectAddition: {
		"What kind of space are you hoping to add?",
		"Is this a single room or a larger addition?",
	},
	facts.ProjectNewHome: {
		"Do you already own the lot you'd be building on?",
		"How far along are you in the design process?",
	},
}

const genericDetailQuestion = "Could you tell me a bit more about what you have in mind?"

func (b *QuestionBank) Pick(project facts.Project) string {
	questions, ok := projectQuestions[project]
	if !ok || len(questions) == 0 {
		return genericDetailQuestion
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	return questions[b.rng.Intn(len(questions))]
}
