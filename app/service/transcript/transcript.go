package transcript

import "strings"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Transcript is the full caller-supplied conversation history, oldest first.
// The caller replays it on every request; nothing is retained server-side.
type Transcript []Turn

// Corpus returns the lower-cased concatenation of all turn contents.
func (t Transcript) Corpus() string {
	var builder strings.Builder

	for _, turn := range t {
		builder.WriteString(strings.ToLower(turn.Content))
		builder.WriteString("\n")
	}

	return builder.String()
}

// UserCorpus is like Corpus but limited to visitor turns.
func (t Transcript) UserCorpus() string {
	var builder strings.Builder

	for _, turn := range t {
		if turn.Role != RoleUser {
			continue
		}

		builder.WriteString(strings.ToLower(turn.Content))
		builder.WriteString("\n")
	}

	return builder.String()
}

// UserMessages returns the lower-cased contents of visitor turns, in order.
func (t Transcript) UserMessages() []string {
	result := make([]string, 0, len(t))

	for _, turn := range t {
		if turn.Role == RoleUser {
			result = append(result, strings.ToLower(turn.Content))
		}
	}

	return result
}

// LatestUser returns the lower-cased content of the most recent visitor turn.
func (t Transcript) LatestUser() (string, bool) {
	for i := len(t) - 1; i >= 0; i-- {
		if t[i].Role == RoleUser {
			return strings.ToLower(t[i].Content), true
		}
	}

	return "", false
}

func (t Transcript) UserTurnCount() int {
	count := 0

	for _, turn := range t {
		if turn.Role == RoleUser {
			count++
		}
	}

	return count
}
