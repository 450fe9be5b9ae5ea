package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"steiger-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// WebhookHandler processes Stripe events. It is the backstop for the one
// genuinely dangerous failure mode: a charge succeeded but the synchronous
// reservation confirm never reached the database. payment_intent.succeeded
// re-creates the reservation from intent metadata, idempotently.
type WebhookHandler struct {
	DB            *gorm.DB
	WebhookSecret string
}

type stripeEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

type paymentIntentObject struct {
	ID             string            `json:"id"`
	AmountReceived int64             `json:"amount_received"`
	Currency       string            `json:"currency"`
	Status         string            `json:"status"`
	Metadata       map[string]string `json:"metadata"`
}

// HandleWebhook POST /api/v1/stripe/webhook — raw body, signature verification, then process.
func (wh *WebhookHandler) HandleWebhook(c *fiber.Ctx) error {
	rawBody := c.BodyRaw()
	sig := c.Get("Stripe-Signature")

	if len(rawBody) == 0 {
		log.Warn().Msg("Stripe webhook received empty body (ensure no global body parser consumes the webhook body)")
		return c.Status(400).SendString("Webhook Error: empty body")
	}

	if err := verifyStripeSignature(rawBody, sig, wh.WebhookSecret); err != nil {
		log.Warn().Err(err).Bool("has_sig", sig != "").Bool("has_secret", wh.WebhookSecret != "").Msg("Stripe webhook signature verification failed")
		return c.Status(400).SendString(fmt.Sprintf("Webhook Error: %s", err.Error()))
	}

	var event stripeEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		log.Warn().Err(err).Msg("Stripe webhook JSON parse failed")
		return c.Status(400).SendString(fmt.Sprintf("Webhook Error: %s", err.Error()))
	}

	if event.Type == "payment_intent.succeeded" {
		var pi paymentIntentObject
		if err := json.Unmarshal(event.Data.Object, &pi); err != nil {
			return c.Status(200).SendString("ok")
		}
		if err := wh.handlePaymentIntentSucceeded(pi, rawBody); err != nil {
			// Return 200 so Stripe does not retry domain errors forever; the
			// failure itself is logged loudly for the alerting pipeline.
			log.Error().Err(err).Str("payment_intent_id", pi.ID).Msg("reservation backstop failed after successful charge")
			return c.Status(200).SendString("ok")
		}
	}

	return c.Status(200).SendString("ok")
}

func (wh *WebhookHandler) handlePaymentIntentSucceeded(pi paymentIntentObject, rawBody []byte) error {
	slug := pi.Metadata["projectSlug"]
	unitStr := pi.Metadata["unitNumber"]
	email := pi.Metadata["customerEmail"]
	name := pi.Metadata["customerName"]

	if slug == "" || unitStr == "" || email == "" {
		// Not one of ours (other products share the Stripe account); skip.
		return nil
	}
	unitNumber, err := strconv.Atoi(unitStr)
	if err != nil {
		return fmt.Errorf("bad unitNumber metadata %q: %w", unitStr, err)
	}

	return wh.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Reservation
		if err := tx.Where("payment_intent_id = ?", pi.ID).First(&existing).Error; err == nil {
			return nil // already persisted by the synchronous confirm
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		reservation := models.Reservation{
			ProjectSlug:     slug,
			UnitNumber:      unitNumber,
			CustomerName:    name,
			CustomerEmail:   email,
			PaymentIntentID: pi.ID,
			AmountCents:     pi.AmountReceived,
			Currency:        pi.Currency,
			Status:          models.ReservationConfirmed,
			RawIntent:       rawBody,
		}
		return tx.Create(&reservation).Error
	})
}

// verifyStripeSignature verifies the Stripe-Signature header using the webhook secret.
func verifyStripeSignature(payload []byte, sigHeader, secret string) error {
	if sigHeader == "" || secret == "" {
		return errors.New("missing signature or secret")
	}

	var timestamp string
	var signatures []string

	for _, part := range strings.Split(sigHeader, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			timestamp = kv[1]
		case "v1":
			signatures = append(signatures, kv[1])
		}
	}

	if timestamp == "" || len(signatures) == 0 {
		return errors.New("invalid signature format")
	}

	signedPayload := timestamp + "." + string(payload)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(signedPayload))
	expectedSig := hex.EncodeToString(mac.Sum(nil))

	for _, sig := range signatures {
		if hmac.Equal([]byte(sig), []byte(expectedSig)) {
			// Reject stale events (5 minute tolerance).
			ts, err := strconv.ParseInt(timestamp, 10, 64)
			if err != nil {
				return errors.New("invalid timestamp")
			}
			diff := time.Now().Unix() - ts
			if diff < 0 {
				diff = -diff
			}
			if diff > 300 {
				return errors.New("timestamp too old")
			}
			return nil
		}
	}

	return errors.New("signature mismatch")
}
