package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/devfolio/internal/db"
	"github.com/go-resty/resty/v2"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ChatService answers visitor questions through an OpenAI-compatible chat
// completion API. The system prompt is assembled from the portfolio's own
// data so the assistant speaks with current facts.
type ChatService struct {
	settings    *SettingService
	experiences *ExperienceService
	projects    *ProjectService
	client      *resty.Client
	baseURL     string
	model       string
	fallbackKey string
}

// NewChatService creates a ChatService instance. fallbackKey is used when
// no key is stored in site settings.
func NewChatService(settings *SettingService, experiences *ExperienceService, projects *ProjectService, model, fallbackKey string) *ChatService {
	return &ChatService{
		settings:    settings,
		experiences: experiences,
		projects:    projects,
		client:      resty.New().SetTimeout(60 * time.Second),
		baseURL:     "https://api.openai.com/v1",
		model:       model,
		fallbackKey: strings.TrimSpace(fallbackKey),
	}
}

// SetBaseURL overrides the completion endpoint, mainly for tests.
func (s *ChatService) SetBaseURL(base string) {
	s.baseURL = strings.TrimRight(strings.TrimSpace(base), "/")
}

// Reply sends the visitor's message with the assembled system prompt and
// returns the assistant's answer. No retries: a provider failure surfaces
// to the caller as-is.
func (s *ChatService) Reply(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", &ValidationError{Field: "message", Reason: "must not be empty"}
	}

	apiKey, err := s.apiKey()
	if err != nil {
		return "", err
	}
	if apiKey == "" {
		return "", ErrChatNotConfigured
	}

	prompt, err := s.systemPrompt()
	if err != nil {
		return "", err
	}

	payload := chatCompletionRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: prompt},
			{Role: "user", Content: message},
		},
		MaxTokens:   512,
		Temperature: 0.7,
	}

	var completion chatCompletionResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&completion).
		SetError(&completion).
		Post(s.baseURL + "/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}

	if resp.IsError() {
		if completion.Error != nil && completion.Error.Message != "" {
			return "", fmt.Errorf("chat provider error: %s", completion.Error.Message)
		}
		return "", fmt.Errorf("chat provider error: %s", resp.Status())
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("chat provider returned no choices")
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

func (s *ChatService) apiKey() (string, error) {
	stored, err := s.settings.GetString(db.SettingKeyOpenAIAPIKey)
	if err != nil {
		return "", err
	}
	if key := strings.TrimSpace(stored); key != "" {
		return key, nil
	}
	return s.fallbackKey, nil
}

// systemPrompt builds the assistant persona from stored settings plus the
// live experience and project lists. A stored override wins wholesale.
func (s *ChatService) systemPrompt() (string, error) {
	if override, err := s.settings.GetString(db.SettingKeyChatSystemPrompt); err != nil {
		return "", err
	} else if strings.TrimSpace(override) != "" {
		return override, nil
	}

	siteName, err := s.settings.GetString(db.SettingKeySiteName)
	if err != nil {
		return "", err
	}
	if siteName == "" {
		siteName = "this portfolio"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are the assistant for %s. Answer in first person, warm and concise.\n", siteName)

	if experiences, err := s.experiences.List(); err == nil && len(experiences) > 0 {
		b.WriteString("\nExperience:\n")
		for _, exp := range experiences {
			end := exp.EndDate
			if exp.IsCurrent {
				end = "present"
			}
			fmt.Fprintf(&b, "- %s at %s (%s - %s)\n", exp.Position, exp.Company, exp.StartDate, end)
		}
	}

	if projects, err := s.projects.List(); err == nil && len(projects) > 0 {
		b.WriteString("\nProjects:\n")
		for _, project := range projects {
			fmt.Fprintf(&b, "- %s: %s\n", project.Title, project.ShortDescription)
		}
	}

	b.WriteString("\nOnly answer questions about the portfolio owner and their work.")
	return b.String(), nil
}
