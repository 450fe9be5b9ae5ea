package reservation

import (
	"time"

	"github.com/google/uuid"
)

// CustomerInfo is collected on the wizard's customer step. Validation tags
// drive the required-field gating; company is the only optional field.
type CustomerInfo struct {
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	Company    string `json:"company"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required,dutch_postcode"`
}

// FullName joins first and last name for payment metadata and persistence.
func (ci CustomerInfo) FullName() string {
	if ci.FirstName == "" {
		return ci.LastName
	}
	if ci.LastName == "" {
		return ci.FirstName
	}
	return ci.FirstName + " " + ci.LastName
}

// Preferences are the non-binding wishes collected alongside customer info.
type Preferences struct {
	MoveInDate string `json:"moveInDate,omitempty"`
	Duration   string `json:"duration,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// Draft is the in-progress reservation state accumulated across wizard steps.
// It lives in Redis keyed by session, is mutated in place by whichever step is
// active, and is deleted on confirmation. Abandoned drafts expire with the key
// TTL and leave no other trace.
type Draft struct {
	ProjectSlug     string       `json:"projectSlug"`
	UnitNumber      *int         `json:"unitNumber"`
	Customer        CustomerInfo `json:"customer"`
	Preferences     Preferences  `json:"preferences"`
	TermsAccepted   bool         `json:"termsAccepted"`
	ScrolledToEnd   bool         `json:"scrolledToEnd"`
	SignatureData   string       `json:"signatureData,omitempty"` // base64 image
	PaymentIntentID string       `json:"paymentIntentId,omitempty"`
	IdempotencyKey  string       `json:"idempotencyKey"`
	Step            Step         `json:"step"`
	CreatedAt       time.Time    `json:"createdAt"`
}

// NewDraft creates an empty draft for a project. The idempotency key is fixed
// for the lifetime of the attempt so intent creation retries reuse one intent.
func NewDraft(projectSlug string) *Draft {
	return &Draft{
		ProjectSlug:    projectSlug,
		IdempotencyKey: uuid.New().String(),
		Step:           StepPropertyInfo,
		CreatedAt:      time.Now().UTC(),
	}
}
