package reservation

import (
	"errors"
	"strconv"

	"steiger-backend/internal/catalog"
	"steiger-backend/internal/middleware"
	"steiger-backend/internal/payments"
	"steiger-backend/internal/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Handlers drives the reservation wizard over HTTP. The draft lives in Redis
// per session; every endpoint loads it, applies one step's worth of change and
// saves it back.
type Handlers struct {
	Repo       catalog.Repository
	Drafts     *DraftStore
	Service    *Service
	Intents    payments.PaymentIntentCreator
	SessionCfg middleware.SessionConfig
}

// Start POST /api/v1/reservations/:slug/start?unit=<n>&step=<1-4>
// Creates the draft when the wizard mounts (or resumes an existing one) and
// applies the deep-link parameters once.
func (h *Handlers) Start(c *fiber.Ctx) error {
	proj, ok := h.Repo.FindBySlug(c.Params("slug"))
	if !ok {
		return response.Error(c, "Project not found", fiber.StatusNotFound, nil)
	}

	sessionID := middleware.EnsureSessionID(c, h.SessionCfg)
	d, err := h.Drafts.Get(c.Context(), sessionID)
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	if d == nil || d.ProjectSlug != proj.Slug {
		d = NewDraft(proj.Slug)
	}

	ApplyDeepLink(d, c.Query("unit"), c.Query("step"), middleware.IsAuthenticated(c))
	h.prefillEmail(c, d)

	if err := h.Drafts.Save(c.Context(), sessionID, d); err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return h.state(c, proj, d)
}

// State GET /api/v1/reservations/:slug — the wizard's current step and draft.
func (h *Handlers) State(c *fiber.Ctx) error {
	proj, d, errResp := h.load(c)
	if errResp != nil {
		return errResp(c)
	}
	return h.state(c, proj, d)
}

// SelectUnit POST /api/v1/reservations/:slug/select-unit {unitNumber}
func (h *Handlers) SelectUnit(c *fiber.Ctx) error {
	proj, d, errResp := h.load(c)
	if errResp != nil {
		return errResp(c)
	}
	var body struct {
		UnitNumber int `json:"unitNumber"`
	}
	if err := c.BodyParser(&body); err != nil || body.UnitNumber == 0 {
		return response.Error(c, "unitNumber is required", fiber.StatusBadRequest, nil)
	}
	unit, available := proj.AvailableUnit(body.UnitNumber)
	if unit == nil {
		return response.Error(c, "Unit not found", fiber.StatusNotFound, nil)
	}
	if !available {
		return response.Error(c, "Unit is no longer available", fiber.StatusConflict, nil)
	}
	d.UnitNumber = &unit.UnitNumber
	if err := h.save(c, d); err != nil {
		return err
	}
	return h.state(c, proj, d)
}

// Advance POST /api/v1/reservations/:slug/advance — one forward transition.
// Gate failures come back as 400 with the step unchanged; the draft survives.
func (h *Handlers) Advance(c *fiber.Ctx) error {
	proj, d, errResp := h.load(c)
	if errResp != nil {
		return errResp(c)
	}
	if _, err := Advance(d, middleware.IsAuthenticated(c)); err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, ErrAuthRequired) {
			status = fiber.StatusUnauthorized
		}
		return response.Error(c, err.Error(), status, fiber.Map{"step": d.Step})
	}
	if err := h.save(c, d); err != nil {
		return err
	}
	return h.state(c, proj, d)
}

// Back POST /api/v1/reservations/:slug/back — one backward transition; the
// auth step is skipped on the way back.
func (h *Handlers) Back(c *fiber.Ctx) error {
	proj, d, errResp := h.load(c)
	if errResp != nil {
		return errResp(c)
	}
	Back(d)
	if err := h.save(c, d); err != nil {
		return err
	}
	return h.state(c, proj, d)
}

// CustomerInfo PUT /api/v1/reservations/:slug/customer-info
// Stores the details; field-level validation errors come back as 400 details.
func (h *Handlers) CustomerInfo(c *fiber.Ctx) error {
	proj, d, errResp := h.load(c)
	if errResp != nil {
		return errResp(c)
	}
	var body struct {
		Customer    CustomerInfo `json:"customer"`
		Preferences Preferences  `json:"preferences"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	if err := validate.Struct(body.Customer); err != nil {
		return response.Error(c, "Customer details incomplete", fiber.StatusBadRequest, fieldErrors(err))
	}
	d.Customer = body.Customer
	d.Preferences = body.Preferences
	if err := h.save(c, d); err != nil {
		return err
	}
	return h.state(c, proj, d)
}

// Terms PUT /api/v1/reservations/:slug/terms
// Records the three gate conditions; advancing still requires all of them.
func (h *Handlers) Terms(c *fiber.Ctx) error {
	proj, d, errResp := h.load(c)
	if errResp != nil {
		return errResp(c)
	}
	var body struct {
		TermsAccepted bool   `json:"termsAccepted"`
		ScrolledToEnd bool   `json:"scrolledToEnd"`
		SignatureData string `json:"signatureData"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	d.TermsAccepted = body.TermsAccepted
	d.ScrolledToEnd = body.ScrolledToEnd
	d.SignatureData = body.SignatureData
	if err := h.save(c, d); err != nil {
		return err
	}
	return h.state(c, proj, d)
}

// PaymentIntent POST /api/v1/reservations/:slug/payment-intent
// Sizes the intent by the fixed fee schedule and returns the client secret.
// The draft's idempotency key makes a double-submit reuse the same intent.
func (h *Handlers) PaymentIntent(c *fiber.Ctx) error {
	proj, d, errResp := h.load(c)
	if errResp != nil {
		return errResp(c)
	}
	if d.Step != StepPayment {
		return response.Error(c, "Not at the payment step", fiber.StatusBadRequest, fiber.Map{"step": d.Step})
	}
	if d.UnitNumber == nil {
		return response.Error(c, ErrNoUnitSelected.Error(), fiber.StatusBadRequest, nil)
	}

	fee := payments.ComputeFee(proj.IsStorageBox())
	pi, err := h.Intents.Create(payments.CreateIntentInput{
		AmountCents:    fee.TotalCents(),
		Currency:       "eur",
		IdempotencyKey: d.IdempotencyKey,
		Metadata: map[string]string{
			"projectSlug":   d.ProjectSlug,
			"unitNumber":    strconv.Itoa(*d.UnitNumber),
			"customerEmail": d.Customer.Email,
			"customerName":  d.Customer.FullName(),
		},
	})
	if err != nil {
		log.Error().Err(err).Str("project_slug", d.ProjectSlug).Msg("payment intent creation failed")
		return response.Error(c, "Failed to create payment intent", fiber.StatusBadGateway, nil)
	}

	d.PaymentIntentID = pi.ID
	if err := h.save(c, d); err != nil {
		return err
	}
	return response.Success(c, "Payment intent created", fiber.Map{
		"payment_intent_id": pi.ID,
		"client_secret":     pi.ClientSecret,
		"fee":               fee,
	}, nil)
}

// Confirm POST /api/v1/reservations/:slug/confirm {paymentIntentId}
// Persists the reservation synchronously. A persistence failure after the
// charge is an error the caller sees; the Stripe webhook is the retry backstop.
func (h *Handlers) Confirm(c *fiber.Ctx) error {
	proj, d, errResp := h.load(c)
	if errResp != nil {
		return errResp(c)
	}
	var body struct {
		PaymentIntentID string `json:"paymentIntentId"`
	}
	if err := c.BodyParser(&body); err != nil || body.PaymentIntentID == "" {
		return response.Error(c, "paymentIntentId is required", fiber.StatusBadRequest, nil)
	}
	if d.PaymentIntentID == "" || body.PaymentIntentID != d.PaymentIntentID {
		return response.Error(c, "Unknown payment intent for this reservation", fiber.StatusConflict, nil)
	}

	fee := payments.ComputeFee(proj.IsStorageBox())
	r, err := h.Service.Confirm(c.Context(), d, d.PaymentIntentID, fee.TotalCents())
	if err != nil {
		log.Error().Err(err).Str("payment_intent_id", d.PaymentIntentID).
			Msg("reservation persistence failed after successful charge")
		return response.Error(c, "Reservation could not be saved; our team has been notified", fiber.StatusInternalServerError, nil)
	}

	if sid := middleware.GetSessionID(c); sid != "" {
		if err := h.Drafts.Delete(c.Context(), sid); err != nil {
			log.Warn().Err(err).Msg("draft cleanup failed after confirm")
		}
	}
	return response.SuccessCreated(c, "Reservation confirmed", fiber.Map{
		"reservation": r,
		"redirect":    "/reserveren/bevestiging/" + r.PaymentIntentID,
	}, nil)
}

// Confirmation GET /api/v1/reservations/confirmation/:intent_id — the record
// behind the confirmation view.
func (h *Handlers) Confirmation(c *fiber.Ctx) error {
	r, err := h.Service.FindByPaymentIntent(c.Context(), c.Params("intent_id"))
	if err != nil {
		if errors.Is(err, ErrReservationNotFound) {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Reservation fetched", fiber.Map{"reservation": r}, nil)
}

// MyReservations GET /api/v1/reservations — the signed-in customer's history.
func (h *Handlers) MyReservations(c *fiber.Ctx) error {
	email := middleware.SessionEmail(c)
	if email == "" {
		return response.Unauthorized(c, "Unauthorized")
	}
	list, err := h.Service.ListByEmail(c.Context(), email)
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Reservations fetched", fiber.Map{"reservations": list}, nil)
}

// load fetches the project and the session's draft; it returns a deferred
// error response when either is missing.
func (h *Handlers) load(c *fiber.Ctx) (*catalog.Project, *Draft, func(*fiber.Ctx) error) {
	proj, ok := h.Repo.FindBySlug(c.Params("slug"))
	if !ok {
		return nil, nil, func(c *fiber.Ctx) error {
			return response.Error(c, "Project not found", fiber.StatusNotFound, nil)
		}
	}
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		return nil, nil, func(c *fiber.Ctx) error {
			return response.Error(c, "No reservation in progress", fiber.StatusNotFound, nil)
		}
	}
	d, err := h.Drafts.Get(c.Context(), sessionID)
	if err != nil {
		return nil, nil, func(c *fiber.Ctx) error {
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	if d == nil || d.ProjectSlug != proj.Slug {
		return nil, nil, func(c *fiber.Ctx) error {
			return response.Error(c, "No reservation in progress", fiber.StatusNotFound, nil)
		}
	}
	return proj, d, nil
}

func (h *Handlers) save(c *fiber.Ctx, d *Draft) error {
	if err := h.Drafts.Save(c.Context(), middleware.GetSessionID(c), d); err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return nil
}

func (h *Handlers) state(c *fiber.Ctx, proj *catalog.Project, d *Draft) error {
	fee := payments.ComputeFee(proj.IsStorageBox())
	return response.Success(c, "Reservation state", fiber.Map{
		"step":          d.Step,
		"draft":         d,
		"authenticated": middleware.IsAuthenticated(c),
		"fee":           fee,
	}, nil)
}

// prefillEmail copies the session user's email into an empty draft so the
// customer step starts filled in for signed-in users.
func (h *Handlers) prefillEmail(c *fiber.Ctx, d *Draft) {
	if d.Customer.Email != "" {
		return
	}
	if email := middleware.SessionEmail(c); email != "" {
		d.Customer.Email = email
	}
}

func fieldErrors(err error) fiber.Map {
	out := fiber.Map{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out[fe.Field()] = fe.Tag()
		}
	}
	return out
}
