package models

import (
	"time"

	"github.com/google/uuid"
)

// Trader roles in a negotiation.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

// Negotiation session statuses.
const (
	NegotiationOpen      = "open"
	NegotiationCompleted = "completed"
)

// NegotiationContext is the market framing passed to the AI assistant.
type NegotiationContext struct {
	Commodity            string   `json:"commodity"`
	ProposedPrice        float64  `json:"proposed_price"`
	MarketReferencePrice float64  `json:"market_reference_price"`
	Trend                string   `json:"trend"`
	Role                 string   `json:"role"`
	Language             Language `json:"language"`
}

// NegotiationSession is one buyer/seller conversation about a crop.
type NegotiationSession struct {
	ID          uuid.UUID  `json:"id"`
	Crop        string     `json:"crop"`
	Role        string     `json:"role"`
	Language    Language   `json:"language"`
	Status      string     `json:"status"`
	AgreedPrice *float64   `json:"agreed_price,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// NegotiationMessage is a single turn in a session, from the trader or the assistant.
type NegotiationMessage struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"session_id"`
	Sender    string    `json:"sender"` // "buyer" | "seller" | "assistant"
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// StartNegotiationRequest opens a session for a crop.
type StartNegotiationRequest struct {
	Crop     string   `json:"crop"`
	Role     string   `json:"role"`
	Language Language `json:"language"`
}

// NegotiationMessageRequest sends one trader message to the assistant.
type NegotiationMessageRequest struct {
	Message       string  `json:"message"`
	ProposedPrice float64 `json:"proposed_price,omitempty"`
}

type NegotiationMessageResponse struct {
	Reply     string    `json:"reply"`
	SessionID uuid.UUID `json:"session_id"`
}

// PriceSuggestion is the assistant's opening-price advice.
type PriceSuggestion struct {
	Crop           string  `json:"crop"`
	Role           string  `json:"role"`
	MarketPrice    float64 `json:"market_price"`
	SuggestedPrice float64 `json:"suggested_price"`
	Trend          string  `json:"trend"`
	Unit           string  `json:"unit"`
}

// FinalizeDealRequest closes a session at an agreed price.
type FinalizeDealRequest struct {
	AgreedPrice float64 `json:"agreed_price"`
}

// DealSummary is returned when a negotiation is finalized.
type DealSummary struct {
	SessionID   uuid.UUID `json:"session_id"`
	Crop        string    `json:"crop"`
	AgreedPrice float64   `json:"agreed_price"`
	Status      string    `json:"status"`
	CompletedAt time.Time `json:"completed_at"`
}
