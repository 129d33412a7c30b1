package facts

import (
	"testing"

	"mariachat/app/service/transcript"

	"github.com/stretchr/testify/assert"
)

func userTurn(content string) transcript.Turn {
	return transcript.Turn{Role: transcript.RoleUser, Content: content}
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"dashed", "call me at 555-123-4567", true},
		{"dotted", "555.123.4567 works", true},
		{"parens", "it's (941) 555-0188", true},
		{"country code", "+1 941 555 0188", true},
		{"bare digits", "9415550188", true},
		{"too short", "call me at 555-1234", false},
		{"no digits", "call me whenever", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := Extract(transcript.Transcript{userTurn(tt.content)})
			assert.Equal(t, tt.want, fs.HasPhone)
		})
	}
}

func TestExtractEmailAndAddress(t *testing.T) {
	fs := Extract(transcript.Transcript{
		userTurn("I'm at 1420 Palm Harbor Blvd, reach me at joe.smith@example.com"),
	})

	assert.True(t, fs.HasEmail)
	assert.True(t, fs.HasAddress)
}

func TestExtractZipCountsAsAddress(t *testing.T) {
	fs := Extract(transcript.Transcript{userTurn("we're in 34287")})
	assert.True(t, fs.HasAddress)
}

func TestPhoneDoesNotTripZip(t *testing.T) {
	fs := Extract(transcript.Transcript{userTurn("call 555-123-4567")})
	assert.False(t, fs.HasAddress)
}

func TestExtractName(t *testing.T) {
	assert.True(t, Extract(transcript.Transcript{userTurn("Hi, my name is John Smith")}).HasName)
	assert.True(t, Extract(transcript.Transcript{userTurn("This is Maria Lopez calling")}).HasName)
	assert.False(t, Extract(transcript.Transcript{userTurn("I'm interested")}).HasName)
}

func TestProjectFamilyPriority(t *testing.T) {
	// deck family outranks kitchen even when kitchen appears first in text
	fs := Extract(transcript.Transcript{userTurn("we want a kitchen upgrade and a new deck")})
	assert.Equal(t, ProjectDeck, fs.Project)
}

func TestProjectDetection(t *testing.T) {
	tests := []struct {
		content string
		want    Project
	}{
		{"do you do decks?", ProjectDeck},
		{"kitchen remodel quote please", ProjectKitchen},
		{"our bathroom needs work", ProjectBath},
		{"roof leak after the storm", ProjectRoofing},
		{"need a concrete slab poured", ProjectConcrete},
		{"thinking about an addition", ProjectAddition},
		{"we're planning a new build", ProjectNewHome},
		{"hello there", ProjectUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			fs := Extract(transcript.Transcript{userTurn(tt.content)})
			assert.Equal(t, tt.want, fs.Project)
		})
	}
}

func TestTimelinePlansBudget(t *testing.T) {
	fs := Extract(transcript.Transcript{
		userTurn("we'd like to start next month, already have blueprints, budget is around $40,000"),
	})

	assert.True(t, fs.HasTimeline)
	assert.True(t, fs.HasPlans)
	assert.True(t, fs.HasBudget)
}

func TestBudgetKSuffix(t *testing.T) {
	assert.True(t, Extract(transcript.Transcript{userTurn("we can do about 50k")}).HasBudget)
	assert.False(t, Extract(transcript.Transcript{userTurn("sounds good")}).HasBudget)
}

func TestExtractIsDeterministic(t *testing.T) {
	tr := transcript.Transcript{
		userTurn("Hey, my name is Ann Lee, kitchen remodel, 555-123-4567"),
		{Role: transcript.RoleAssistant, Content: "Great, could I have your address?"},
		userTurn("12 Oak St, 34287, ann@lee.io"),
	}

	assert.Equal(t, Extract(tr), Extract(tr))
}

func TestDetectionIsMonotonic(t *testing.T) {
	base := transcript.Transcript{userTurn("call me at 555-123-4567")}
	assert.True(t, Extract(base).HasPhone)

	superset := append(transcript.Transcript{
		userTurn("hello"),
		{Role: transcript.RoleAssistant, Content: "hi, how can I help?"},
	}, base...)
	assert.True(t, Extract(superset).HasPhone)
}
