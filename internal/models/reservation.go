package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ReservationStatus is the lifecycle state of a persisted reservation.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

// Reservation is the system of record for a paid reservation. A row exists only
// after Stripe confirmed the charge; the unique index on payment_intent_id makes
// confirm + webhook idempotent against each other.
type Reservation struct {
	ReservationID   uuid.UUID         `gorm:"column:reservation_id;type:uuid;primaryKey" json:"reservation_id"`
	ProjectSlug     string            `gorm:"column:project_slug;not null;index" json:"project_slug"`
	UnitNumber      int               `gorm:"column:unit_number;not null" json:"unit_number"`
	CustomerName    string            `gorm:"column:customer_name;not null" json:"customer_name"`
	CustomerEmail   string            `gorm:"column:customer_email;not null;index" json:"customer_email"`
	CustomerPhone   string            `gorm:"column:customer_phone" json:"customer_phone"`
	CompanyName     string            `gorm:"column:company_name" json:"company_name"`
	Address         string            `gorm:"column:address" json:"address"`
	City            string            `gorm:"column:city" json:"city"`
	PostalCode      string            `gorm:"column:postal_code" json:"postal_code"`
	PaymentIntentID string            `gorm:"column:payment_intent_id;not null;uniqueIndex" json:"payment_intent_id"`
	IdempotencyKey  string            `gorm:"column:idempotency_key" json:"idempotency_key"`
	AmountCents     int64             `gorm:"column:amount_cents;not null" json:"amount_cents"`
	Currency        string            `gorm:"column:currency;not null;default:eur" json:"currency"`
	Status          ReservationStatus `gorm:"column:status;not null;default:pending" json:"status"`
	DraftSnapshot   datatypes.JSON    `gorm:"column:draft_snapshot" json:"draft_snapshot,omitempty"`
	RawIntent       datatypes.JSON    `gorm:"column:raw_intent" json:"-"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

func (Reservation) TableName() string {
	return "reservations"
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ReservationID == uuid.Nil {
		r.ReservationID = uuid.New()
	}
	return nil
}
