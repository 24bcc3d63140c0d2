package services

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"

	"wayfare/internal/models/domain_models"
	"wayfare/pkg/utils"
)

// AdvisorServiceInterface produces short AI-written travel tips for a built
// itinerary. It is strictly additive: the planner core never depends on it,
// and any error just means the itinerary goes out without extra tips.
type AdvisorServiceInterface interface {
	SuggestTripNotes(ctx context.Context, itinerary domain_models.Itinerary) (string, error)
}

// NewAdvisorFromEnv picks a provider from AI_PROVIDER and the available API
// keys. Without a key the advisor is disabled, mirroring the rule-based
// fallback path.
func NewAdvisorFromEnv() AdvisorServiceInterface {
	provider := strings.ToLower(os.Getenv("AI_PROVIDER"))

	if provider == "openai" || (provider == "" && os.Getenv("OPENAI_API_KEY") != "") {
		if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			return NewOpenAIAdvisor(key, os.Getenv("OPENAI_MODEL"))
		}
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		advisor, err := NewGeminiAdvisor(key, os.Getenv("GEMINI_MODEL"))
		if err == nil {
			return advisor
		}
		utils.GetLogger().Warn("gemini advisor unavailable: " + err.Error())
	}
	return &disabledAdvisor{}
}

type disabledAdvisor struct{}

func (d *disabledAdvisor) SuggestTripNotes(ctx context.Context, itinerary domain_models.Itinerary) (string, error) {
	return "", utils.ErrAdvisorDisabled
}

// -------------- Gemini provider ---------------

type GeminiAdvisor struct {
	client *genai.Client
	model  string
}

func NewGeminiAdvisor(apiKey, model string) (AdvisorServiceInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiAdvisor{client: client, model: model}, nil
}

func (g *GeminiAdvisor) SuggestTripNotes(ctx context.Context, itinerary domain_models.Itinerary) (string, error) {
	m := g.client.GenerativeModel(g.model)
	m.SetTemperature(0.4)
	m.SetTopP(0.5)

	resp, err := m.GenerateContent(ctx, genai.Text(buildAdvisorPrompt(itinerary)))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content")
	}

	return strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])), nil
}

// -------------- OpenAI provider ---------------

type OpenAIAdvisor struct {
	client *openai.Client
	model  string
}

func NewOpenAIAdvisor(apiKey, model string) AdvisorServiceInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIAdvisor{client: openai.NewClient(apiKey), model: model}
}

func (o *OpenAIAdvisor) SuggestTripNotes(ctx context.Context, itinerary domain_models.Itinerary) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a concise travel assistant. Reply with 2-3 short practical tips, plain text only.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildAdvisorPrompt(itinerary),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func buildAdvisorPrompt(itinerary domain_models.Itinerary) string {
	trip := itinerary.TripRequest

	var days strings.Builder
	for _, day := range itinerary.Days {
		names := make([]string, 0, len(day.Places))
		for _, place := range day.Places {
			names = append(names, place.Name)
		}
		fmt.Fprintf(&days, "Day %d: %s\n", day.DayIndex, strings.Join(names, ", "))
	}

	return fmt.Sprintf(`Give 2-3 short practical tips for this trip. Plain text, no markdown.

City: %s
Days: %d, pace: %s, travelers: %d
Interests: %s
Planned places:
%s`,
		trip.City, trip.NumDays(), trip.Pace, trip.GroupSize,
		strings.Join(trip.Interests, ", "), days.String())
}
