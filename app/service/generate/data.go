package generate

// Reply is the structured output expected from the generation collaborator.
// Every field except Message is optional; Message itself may still be empty
// when the collaborator misbehaved, in which case the governor substitutes
// the last-resort sentence.
type Reply struct {
	Message    string         `json:"message"`
	Language   string         `json:"language,omitempty"`
	EnglishLog string         `json:"english_log,omitempty"`
	Scratchpad map[string]any `json:"scratchpad,omitempty"`
}

// MissingCredentialFallback is returned verbatim when no OpenAI token is
// configured. The absence of a credential is a first-class degraded mode,
// not an error.
const MissingCredentialFallback = "Absolutely, happy to help. Could I please have your full address (street, city, state, ZIP), the best phone number, and a good email for estimates? Then we can get you set up, would tomorrow or Thursday work better, morning or late afternoon?"

// CallFailureFallback is used as the raw message when the upstream call
// fails outright; it still passes through the governor like any other reply.
const CallFailureFallback = "Understood. Could I please have your full address (street, city, state, ZIP), best phone, and a good email, so I can get you taken care of?"
