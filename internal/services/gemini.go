package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"mandi-backend/internal/models"
)

// GeminiService is the stateless client for translation and negotiation
// completions. Every call is a fresh request under a bounded timeout; there is
// no retry and no caching at this layer.
type GeminiService struct {
	client   *genai.Client
	model    *genai.GenerativeModel
	timeout  time.Duration
	rateChan chan struct{} // Token bucket
}

func NewGeminiService(apiKey string, concurrentReqs, timeoutSecs int) (*GeminiService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-3-flash-preview")
	model.SetTemperature(0.3)
	model.SetTopP(0.95)

	// Token bucket for rate limiting
	rateChan := make(chan struct{}, concurrentReqs)
	for i := 0; i < concurrentReqs; i++ {
		rateChan <- struct{}{}
	}

	return &GeminiService{
		client:   client,
		model:    model,
		timeout:  time.Duration(timeoutSecs) * time.Second,
		rateChan: rateChan,
	}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

// acquireRate blocks until a rate slot is available
func (s *GeminiService) acquireRate(ctx context.Context) error {
	select {
	case <-s.rateChan:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(5 * time.Minute):
		return &RateLimitError{Message: "timeout waiting for Gemini rate slot"}
	}
}

func (s *GeminiService) releaseRate() {
	s.rateChan <- struct{}{}
}

// Translate renders the source text in the target language. Identical source
// and target languages short-circuit without touching the network.
func (s *GeminiService) Translate(ctx context.Context, req models.TranslationRequest) (string, error) {
	if strings.TrimSpace(req.SourceText) == "" {
		return "", &InvalidRequestError{Message: "source text is empty"}
	}
	if !req.SourceLanguage.Valid() || !req.TargetLanguage.Valid() {
		return "", &InvalidRequestError{
			Message: "unsupported language",
			Fields: map[string]string{
				"source_language": string(req.SourceLanguage),
				"target_language": string(req.TargetLanguage),
			},
		}
	}
	if req.SourceLanguage == req.TargetLanguage {
		return req.SourceText, nil
	}

	prompt := buildTranslationPrompt(req.SourceLanguage, req.TargetLanguage, req.SourceText)
	return s.generate(ctx, prompt)
}

// Negotiate produces the assistant's reply for one negotiation turn.
func (s *GeminiService) Negotiate(ctx context.Context, nc models.NegotiationContext, message string, history []*models.NegotiationMessage) (string, error) {
	if strings.TrimSpace(nc.Commodity) == "" {
		return "", &InvalidRequestError{Message: "commodity is required"}
	}
	if strings.TrimSpace(message) == "" {
		return "", &InvalidRequestError{Message: "message is required"}
	}
	if nc.ProposedPrice < 0 || nc.MarketReferencePrice < 0 {
		return "", &InvalidRequestError{Message: "prices cannot be negative"}
	}

	prompt := buildNegotiationPrompt(nc, message, history)
	return s.generate(ctx, prompt)
}

// generate runs one completion under the configured timeout.
func (s *GeminiService) generate(ctx context.Context, prompt string) (string, error) {
	if err := s.acquireRate(ctx); err != nil {
		return "", err
	}
	defer s.releaseRate()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &AIServiceError{Cause: err}
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return "", &AIServiceError{Cause: fmt.Errorf("empty completion")}
	}
	return text, nil
}

// Helper functions

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}

func buildTranslationPrompt(source, target models.Language, text string) string {
	var b strings.Builder

	// Layer 1 — Role
	b.WriteString("You are a professional translator for Indian agricultural trade. ")
	b.WriteString(fmt.Sprintf("Translate the following text from %s to %s.\n\n", source, target))

	// Layer 2 — Domain rules
	b.WriteString("Rules:\n")
	b.WriteString("- Preserve crop names, numbers, units (quintal), and currency amounts (₹) exactly.\n")
	b.WriteString("- Use everyday mandi vocabulary a trader would use, not formal literary language.\n")
	b.WriteString("- Return ONLY the translated text. No preamble, no notes, no quotes.\n\n")

	// Layer 3 — Text
	b.WriteString("---TEXT START---\n")
	b.WriteString(text)
	b.WriteString("\n---TEXT END---\n")

	return b.String()
}

func buildNegotiationPrompt(nc models.NegotiationContext, message string, history []*models.NegotiationMessage) string {
	var b strings.Builder

	// Layer 1 — Role
	b.WriteString("You are a fair and practical negotiation assistant at an Indian agricultural mandi. ")
	b.WriteString(fmt.Sprintf("You are advising a %s.\n\n", nc.Role))

	// Layer 2 — Market context
	b.WriteString(fmt.Sprintf("Commodity: %s\n", nc.Commodity))
	b.WriteString(fmt.Sprintf("Current market rate: ₹%.2f\n", nc.MarketReferencePrice))
	if nc.ProposedPrice > 0 {
		b.WriteString(fmt.Sprintf("Price proposed by the trader: ₹%.2f\n", nc.ProposedPrice))
	}
	if nc.Trend != "" {
		b.WriteString(fmt.Sprintf("Price trend: %s\n", nc.Trend))
	}
	b.WriteString("\n")

	// Layer 3 — Behavior
	b.WriteString("Guidelines:\n")
	b.WriteString("- Ground every price suggestion in the market rate above.\n")
	b.WriteString("- A fair band is roughly 5% either side of the market rate.\n")
	b.WriteString("- Be concise (2-4 sentences) and concrete; name actual rupee amounts.\n")
	b.WriteString("- Never invent market data that is not given here.\n\n")

	// Layer 4 — Language
	if nc.Language != "" && nc.Language != models.LanguageEnglish {
		b.WriteString(fmt.Sprintf("Respond entirely in %s.\n\n", nc.Language))
	}

	// Layer 5 — Conversation
	if len(history) > 0 {
		b.WriteString("---CONVERSATION SO FAR---\n")
		for _, m := range history {
			b.WriteString(fmt.Sprintf("%s: %s\n", m.Sender, m.Content))
		}
		b.WriteString("---END---\n\n")
	}

	b.WriteString(fmt.Sprintf("The %s now says: %s\n", nc.Role, message))

	return b.String()
}
