package generate

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mariachat/app/config"
	"mariachat/app/service/transcript"

	_ "embed"

	"github.com/samber/do"
	"github.com/sashabaranov/go-openai"
	"github.com/tidwall/gjson"
)

//go:embed system_prompt.txt
var systemPromptTemplate string

const (
	defaultTemperature = 0.4
	maxDraftDuration   = 30 * time.Second
	maxReplyTokens     = 500
)

type Service struct {
	cfg    *config.Config
	client *openai.Client
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)

	s := &Service{cfg: cfg}

	if cfg.OpenAI.Token != "" {
		clientConfig := openai.DefaultConfig(cfg.OpenAI.Token)
		clientConfig.BaseURL = cfg.OpenAI.BaseURL
		clientConfig.HTTPClient = &http.Client{
			Timeout: maxDraftDuration,
		}

		s.client = openai.NewClientWithConfig(clientConfig)
	}

	return s, nil
}

// Enabled reports whether the generation collaborator is reachable at all.
func (s *Service) Enabled() bool {
	return s.client != nil
}

// Draft asks the collaborator for a structured reply. The caller decides
// what to do on error; every error path still has a deterministic fallback.
func (s *Service) Draft(ctx context.Context, t transcript.Transcript, guidance, pageURL string) (Reply, error) {
	if s.client == nil {
		return Reply{Message: MissingCredentialFallback}, nil
	}

	messages := s.buildMessages(t, guidance, pageURL)

	ctx, cancel := context.WithTimeout(ctx, maxDraftDuration)
	defer cancel()

	aiResponse, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:               s.cfg.OpenAI.Model,
			Messages:            messages,
			Temperature:         defaultTemperature,
			MaxCompletionTokens: maxReplyTokens,
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
		},
	)
	if err != nil {
		return Reply{}, fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(aiResponse.Choices) == 0 {
		return Reply{}, fmt.Errorf("no chat completion found")
	}

	return parseReply(aiResponse.Choices[0].Message.Content), nil
}

func (s *Service) buildMessages(t transcript.Transcript, guidance, pageURL string) []openai.ChatCompletionMessage {
	templateValues := map[string]any{
		"company":      s.cfg.Business.Company,
		"license":      s.cfg.Business.License,
		"service_area": s.cfg.Business.ServiceArea,
	}

	prompt := systemPromptTemplate
	for key, value := range templateValues {
		prompt = strings.ReplaceAll(prompt, "{"+key+"}", fmt.Sprint(value))
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: prompt},
	}
	messages = append(messages, fewshotMessages()...)

	for _, turn := range t {
		role := openai.ChatMessageRoleUser
		if turn.Role == transcript.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}

		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: turn.Content,
		})
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: "FOCUS FOR THIS TURN: " + guidance,
	})

	if pageURL == "" {
		pageURL = "unknown"
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: "Page: " + pageURL,
	})

	return messages
}

// parseReply is deliberately tolerant: models wrap JSON in code fences, send
// plain text, or drop optional fields, and none of that should lose a reply.
func parseReply(raw string) Reply {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.Trim(cleaned, "`")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimPrefix(cleaned, "json")
	cleaned = strings.TrimSpace(cleaned)

	if !gjson.Valid(cleaned) {
		// plain text sent accidentally: use it as the message
		return Reply{Message: cleaned}
	}

	result := Reply{
		Message:    strings.TrimSpace(gjson.Get(cleaned, "message").String()),
		Language:   gjson.Get(cleaned, "language").String(),
		EnglishLog: gjson.Get(cleaned, "english_log").String(),
	}

	if scratchpad, ok := gjson.Get(cleaned, "scratchpad").Value().(map[string]any); ok {
		result.Scratchpad = scratchpad
	}

	return result
}
