package conversation

import (
	"context"
	"testing"

	"mariachat/app/config"
	"mariachat/app/service/facts"
	"mariachat/app/service/generate"
	"mariachat/app/service/policy"
	"mariachat/app/service/transcript"

	"github.com/samber/do"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// degraded builds a service without an OpenAI token, so every turn uses the
// deterministic fallback path and no network is touched.
func degraded(t *testing.T) *Service {
	t.Helper()

	di := do.New()
	do.ProvideValue(di, &config.Config{})
	do.Provide(di, generate.New)

	svc := newWithSelector(
		do.MustInvoke[*generate.Service](di),
		policy.NewSelector(policy.NewQuestionBank(1)),
	)

	return svc
}

func userTurn(content string) transcript.Turn {
	return transcript.Turn{Role: transcript.RoleUser, Content: content}
}

func TestMissingCredentialYieldsExactFallback(t *testing.T) {
	svc := degraded(t)

	resp := svc.HandleTurn(context.Background(), ChatRequest{
		Messages: transcript.Transcript{userTurn("Do you do decks?")},
	})

	assert.Equal(t, generate.MissingCredentialFallback, resp.Answer)
	assert.False(t, resp.Persisted)
}

func TestMetaIsPopulated(t *testing.T) {
	svc := degraded(t)

	resp := svc.HandleTurn(context.Background(), ChatRequest{
		Messages: transcript.Transcript{
			userTurn("Do you do decks? My number is 555-123-4567"),
			{Role: transcript.RoleAssistant, Content: "Yes!"},
			userTurn("Monday afternoon works for a visit"),
		},
	})

	require.NotNil(t, resp.Meta)
	assert.Equal(t, facts.ProjectDeck, resp.Meta.FactSet.Project)
	assert.True(t, resp.Meta.FactSet.HasPhone)
	assert.Equal(t, "monday", resp.Meta.Availability.Day)
	assert.Equal(t, "afternoon", resp.Meta.Availability.TimeOfDay)
}

func TestGoalReportedForFirstDeckQuestion(t *testing.T) {
	svc := degraded(t)

	resp := svc.HandleTurn(context.Background(), ChatRequest{
		Messages: transcript.Transcript{userTurn("Do you do decks?")},
	})

	require.NotNil(t, resp.Meta)
	assert.Equal(t, policy.GoalAskProjectDetail, resp.Meta.Goal)
}

func TestConsentGateReflectedInGoal(t *testing.T) {
	svc := degraded(t)

	resp := svc.HandleTurn(context.Background(), ChatRequest{
		Messages: transcript.Transcript{
			userTurn("We want a kitchen remodel"),
			{Role: transcript.RoleAssistant, Content: "Could I get your name and best number?"},
			userTurn("I don't want to share my phone yet"),
		},
	})

	require.NotNil(t, resp.Meta)
	assert.NotEqual(t, policy.GoalAskNamePhone, resp.Meta.Goal)
	assert.NotEqual(t, policy.GoalAskEmail, resp.Meta.Goal)
}

func TestHandleTurnEmptyTranscript(t *testing.T) {
	svc := degraded(t)

	resp := svc.HandleTurn(context.Background(), ChatRequest{})
	assert.NotEmpty(t, resp.Answer)
}
