package reservation

import (
	"context"
	"encoding/json"
	"errors"

	"steiger-backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrReservationNotFound = errors.New("Reservation not found")

// Service persists confirmed reservations. Money has moved by the time it is
// called, so creation is idempotent on the payment intent id: the synchronous
// confirm and the webhook backstop can both run without creating duplicates.
type Service struct {
	DB *gorm.DB
}

// Confirm creates the reservation row for a charged payment intent. A second
// call with the same intent id returns the existing row unchanged.
func (s *Service) Confirm(ctx context.Context, d *Draft, intentID string, amountCents int64) (*models.Reservation, error) {
	if intentID == "" {
		return nil, errors.New("Missing payment intent id")
	}
	if d.UnitNumber == nil {
		return nil, ErrNoUnitSelected
	}

	snapshot, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}

	var out models.Reservation
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Reservation
		if err := tx.Where("payment_intent_id = ?", intentID).First(&existing).Error; err == nil {
			out = existing
			return nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		out = models.Reservation{
			ProjectSlug:     d.ProjectSlug,
			UnitNumber:      *d.UnitNumber,
			CustomerName:    d.Customer.FullName(),
			CustomerEmail:   d.Customer.Email,
			CustomerPhone:   d.Customer.Phone,
			CompanyName:     d.Customer.Company,
			Address:         d.Customer.Address,
			City:            d.Customer.City,
			PostalCode:      d.Customer.PostalCode,
			PaymentIntentID: intentID,
			IdempotencyKey:  d.IdempotencyKey,
			AmountCents:     amountCents,
			Currency:        "eur",
			Status:          models.ReservationConfirmed,
			DraftSnapshot:   datatypes.JSON(snapshot),
		}
		return tx.Create(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByPaymentIntent fetches the reservation backing a confirmation view.
func (s *Service) FindByPaymentIntent(ctx context.Context, intentID string) (*models.Reservation, error) {
	var r models.Reservation
	if err := s.DB.WithContext(ctx).Where("payment_intent_id = ?", intentID).First(&r).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return &r, nil
}

// ListByEmail returns a customer's reservations, newest first.
func (s *Service) ListByEmail(ctx context.Context, email string) ([]models.Reservation, error) {
	var out []models.Reservation
	if err := s.DB.WithContext(ctx).Where("customer_email = ?", email).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
