package services

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"

	"mandi-backend/internal/models"
	"mandi-backend/internal/repository"
)

// priceNegotiator is the slice of GeminiService the assistant needs.
type priceNegotiator interface {
	Negotiate(ctx context.Context, nc models.NegotiationContext, message string, history []*models.NegotiationMessage) (string, error)
}

// NegotiationAssistant runs AI-assisted price negotiations: one session per
// crop and trader role, with the conversation and the final deal persisted.
type NegotiationAssistant struct {
	negotiator priceNegotiator
	sessions   *repository.NegotiationRepo
	market     *MarketRateService
}

func NewNegotiationAssistant(negotiator priceNegotiator, sessions *repository.NegotiationRepo, market *MarketRateService) *NegotiationAssistant {
	return &NegotiationAssistant{
		negotiator: negotiator,
		sessions:   sessions,
		market:     market,
	}
}

// Start opens a session after checking the crop is actually traded here.
func (a *NegotiationAssistant) Start(ctx context.Context, req models.StartNegotiationRequest) (*models.NegotiationSession, error) {
	if req.Role != models.RoleBuyer && req.Role != models.RoleSeller {
		return nil, &InvalidRequestError{Message: "role must be buyer or seller"}
	}
	if !req.Language.Valid() {
		return nil, &InvalidRequestError{Message: "unsupported language"}
	}
	if strings.TrimSpace(req.Crop) == "" {
		return nil, &InvalidRequestError{Message: "crop is required"}
	}

	if _, err := a.market.GetRate(ctx, req.Crop); err != nil {
		return nil, err
	}

	session := &models.NegotiationSession{
		Crop:     req.Crop,
		Role:     req.Role,
		Language: req.Language,
	}
	if err := a.sessions.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession returns a session with its message history attached.
func (a *NegotiationAssistant) GetSession(ctx context.Context, id uuid.UUID) (*models.NegotiationSession, []*models.NegotiationMessage, error) {
	session, err := a.sessions.GetSession(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil, &NotFoundError{Message: "negotiation session not found"}
	}
	if err != nil {
		return nil, nil, err
	}

	messages, err := a.sessions.ListMessages(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return session, messages, nil
}

// ProcessMessage sends one trader message through the assistant and stores
// both sides of the exchange. The trader's message is only persisted after
// the AI reply succeeds, so a failed call leaves the session unchanged.
func (a *NegotiationAssistant) ProcessMessage(ctx context.Context, sessionID uuid.UUID, req models.NegotiationMessageRequest) (string, error) {
	if strings.TrimSpace(req.Message) == "" {
		return "", &InvalidRequestError{Message: "message is required"}
	}
	if req.ProposedPrice < 0 {
		return "", &InvalidRequestError{Message: "proposed price cannot be negative"}
	}

	session, err := a.sessions.GetSession(ctx, sessionID)
	if errors.Is(err, repository.ErrNotFound) {
		return "", &NotFoundError{Message: "negotiation session not found"}
	}
	if err != nil {
		return "", err
	}
	if session.Status == models.NegotiationCompleted {
		return "", &ConflictError{Message: "negotiation is already completed"}
	}

	rate, err := a.market.GetRate(ctx, session.Crop)
	if err != nil {
		return "", err
	}

	history, err := a.sessions.ListMessages(ctx, sessionID)
	if err != nil {
		return "", err
	}

	nc := models.NegotiationContext{
		Commodity:            rate.CropName,
		ProposedPrice:        req.ProposedPrice,
		MarketReferencePrice: rate.CurrentPrice,
		Trend:                rate.Trend,
		Role:                 session.Role,
		Language:             session.Language,
	}

	reply, err := a.negotiator.Negotiate(ctx, nc, req.Message, history)
	if err != nil {
		return "", err
	}

	userMsg := &models.NegotiationMessage{SessionID: sessionID, Sender: session.Role, Content: req.Message}
	if err := a.sessions.AddMessage(ctx, userMsg); err != nil {
		return "", err
	}
	aiMsg := &models.NegotiationMessage{SessionID: sessionID, Sender: "assistant", Content: reply}
	if err := a.sessions.AddMessage(ctx, aiMsg); err != nil {
		return "", err
	}

	return reply, nil
}

// SuggestFairPrice computes the opening-price advice for the session's role.
func (a *NegotiationAssistant) SuggestFairPrice(ctx context.Context, sessionID uuid.UUID) (*models.PriceSuggestion, error) {
	session, err := a.sessions.GetSession(ctx, sessionID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Message: "negotiation session not found"}
	}
	if err != nil {
		return nil, err
	}

	rate, err := a.market.GetRate(ctx, session.Crop)
	if err != nil {
		return nil, err
	}

	return &models.PriceSuggestion{
		Crop:           session.Crop,
		Role:           session.Role,
		MarketPrice:    rate.CurrentPrice,
		SuggestedPrice: SuggestPrice(rate.CurrentPrice, session.Role, rate.Trend),
		Trend:          rate.Trend,
		Unit:           rate.Unit,
	}, nil
}

// FinalizeDeal closes an open session at the agreed price.
func (a *NegotiationAssistant) FinalizeDeal(ctx context.Context, sessionID uuid.UUID, agreedPrice float64) (*models.DealSummary, error) {
	if agreedPrice < 0 {
		return nil, &InvalidRequestError{Message: "agreed price cannot be negative"}
	}

	session, err := a.sessions.GetSession(ctx, sessionID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Message: "negotiation session not found"}
	}
	if err != nil {
		return nil, err
	}
	if session.Status == models.NegotiationCompleted {
		return nil, &ConflictError{Message: "negotiation is already completed"}
	}

	completedAt, err := a.sessions.CompleteSession(ctx, sessionID, agreedPrice)
	if errors.Is(err, repository.ErrNotFound) {
		// Lost the race to another finalize.
		return nil, &ConflictError{Message: "negotiation is already completed"}
	}
	if err != nil {
		return nil, err
	}

	return &models.DealSummary{
		SessionID:   sessionID,
		Crop:        session.Crop,
		AgreedPrice: agreedPrice,
		Status:      models.NegotiationCompleted,
		CompletedAt: completedAt,
	}, nil
}

// SuggestPrice is the opening-price rule: buyers open 5% below the market
// rate, sellers 5% above, shifted one point in the trend's direction.
func SuggestPrice(marketPrice float64, role, trend string) float64 {
	factor := 0.95
	if role == models.RoleSeller {
		factor = 1.05
	}

	switch trend {
	case models.TrendUp:
		factor += 0.01
	case models.TrendDown:
		factor -= 0.01
	}

	return math.Round(marketPrice*factor*100) / 100
}
