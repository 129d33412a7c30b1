package generate

import "github.com/sashabaranov/go-openai"

// Fixed few-shot exchanges enforcing the answer-first habit. The assistant
// contents are the exact JSON shape the model is expected to produce.
const fewshotDeckAnswer = `{"message":"Yes, we build both wood and composite decks. Could I please have your full address (street, city, state, ZIP)?","language":"en","english_log":"Yes, we build both wood and composite decks. Could I please have your full address (street, city, state, ZIP)?","scratchpad":{"intent":"service_inquiry:decks","style_guess":"Unknown","confidence":0.85,"next_step":"Collect address, then phone/email","pain_point":"wants a deck","solution_given":"confirm we do decks","followup_due":"schedule site visit"}}`

const fewshotRoofAnswer = `{"message":"That's stressful, sorry you're dealing with that. We do roof leak diagnostics and repairs. Could I get your full address (street, city, state, ZIP)?","language":"en","english_log":"That's stressful, sorry you're dealing with that. We do roof leak diagnostics and repairs. Could I get your full address (street, city, state, ZIP)?","scratchpad":{"intent":"issue:roof_leak","style_guess":"Amiable","confidence":0.85,"next_step":"collect contact, then schedule","pain_point":"roof leak after storm","solution_given":"inspection and repair path","followup_due":"book inspection"}}`

func fewshotMessages() []openai.ChatCompletionMessage {
	return []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: "Do you do decks?"},
		{Role: openai.ChatMessageRoleAssistant, Content: fewshotDeckAnswer},
		{Role: openai.ChatMessageRoleUser, Content: "I'm worried about a roof leak after last night's storm."},
		{Role: openai.ChatMessageRoleAssistant, Content: fewshotRoofAnswer},
	}
}
