package reservation

import (
	"errors"
	"strconv"

	"steiger-backend/internal/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// Step is a wizard state. The conditional auth step is a first-class state,
// not a fractional step number: transitions are listed explicitly below.
type Step string

const (
	StepPropertyInfo Step = "property_info"
	StepAuth         Step = "auth"
	StepCustomerInfo Step = "customer_info"
	StepTerms        Step = "terms"
	StepPayment      Step = "payment"
)

var (
	ErrNoUnitSelected   = errors.New("No unit selected")
	ErrAuthRequired     = errors.New("Authentication required")
	ErrCustomerInfo     = errors.New("Customer details incomplete")
	ErrTermsIncomplete  = errors.New("Terms must be accepted, read to the end and signed")
	ErrAlreadyAtPayment = errors.New("Already at the payment step")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("dutch_postcode", func(fl validator.FieldLevel) bool {
		return validation.IsValidPostalCode(fl.Field().String())
	})
	return v
}

// Advance moves the draft one step forward, enforcing each step's gate:
//
//	property_info -> auth            (unit selected, not authenticated)
//	property_info -> customer_info   (unit selected, authenticated)
//	auth          -> customer_info   (authenticated)
//	customer_info -> terms           (required fields valid)
//	terms         -> payment         (accepted AND scrolled AND signed)
//
// The payment step is terminal for Advance; leaving it happens through a
// confirmed payment, not a step transition.
func Advance(d *Draft, authenticated bool) (Step, error) {
	switch d.Step {
	case StepPropertyInfo:
		if d.UnitNumber == nil {
			return d.Step, ErrNoUnitSelected
		}
		if !authenticated {
			d.Step = StepAuth
		} else {
			d.Step = StepCustomerInfo
		}
	case StepAuth:
		if !authenticated {
			return d.Step, ErrAuthRequired
		}
		d.Step = StepCustomerInfo
	case StepCustomerInfo:
		if err := validate.Struct(d.Customer); err != nil {
			return d.Step, ErrCustomerInfo
		}
		d.Step = StepTerms
	case StepTerms:
		if !TermsComplete(d) {
			return d.Step, ErrTermsIncomplete
		}
		d.Step = StepPayment
	case StepPayment:
		return d.Step, ErrAlreadyAtPayment
	default:
		d.Step = StepPropertyInfo
	}
	return d.Step, nil
}

// Back moves one step backwards. The auth step is never revisited: back from
// customer_info lands on property_info regardless of how the user got there.
func Back(d *Draft) Step {
	switch d.Step {
	case StepPayment:
		d.Step = StepTerms
	case StepTerms:
		d.Step = StepCustomerInfo
	case StepCustomerInfo, StepAuth:
		d.Step = StepPropertyInfo
	}
	return d.Step
}

// TermsComplete reports the triple gate on the terms step: explicit acceptance,
// proof the text was scrolled to its end, and a captured signature. All three.
func TermsComplete(d *Draft) bool {
	return d.TermsAccepted && d.ScrolledToEnd && d.SignatureData != ""
}

// CustomerInfoValid reports whether the draft's customer details pass the
// required-field validation (the "next" control is disabled until they do).
func CustomerInfoValid(d *Draft) bool {
	return validate.Struct(d.Customer) == nil
}

// ParseStep maps the ?step=<1-4> deep-link parameter onto a wizard state.
// The auth step is not addressable from a URL.
func ParseStep(raw string) (Step, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return "", false
	}
	switch n {
	case 1:
		return StepPropertyInfo, true
	case 2:
		return StepCustomerInfo, true
	case 3:
		return StepTerms, true
	case 4:
		return StepPayment, true
	}
	return "", false
}

// FurthestStep replays the gates and returns the furthest step the draft's
// accumulated state can justify. Deep links are clamped to this so a shared
// ?step=4 URL cannot skip the form.
func FurthestStep(d *Draft, authenticated bool) Step {
	if d.UnitNumber == nil {
		return StepPropertyInfo
	}
	if !authenticated {
		return StepAuth
	}
	if !CustomerInfoValid(d) {
		return StepCustomerInfo
	}
	if !TermsComplete(d) {
		return StepTerms
	}
	return StepPayment
}

// ApplyDeepLink restores a pending unit selection and a requested step from
// URL query parameters, applied once when the wizard mounts. The requested
// step is clamped to what the draft has actually earned.
func ApplyDeepLink(d *Draft, unitParam, stepParam string, authenticated bool) {
	if unitParam != "" {
		if n, err := strconv.Atoi(unitParam); err == nil {
			d.UnitNumber = &n
		}
	}
	if stepParam == "" {
		return
	}
	requested, ok := ParseStep(stepParam)
	if !ok {
		return
	}
	furthest := FurthestStep(d, authenticated)
	if stepRank(requested) <= stepRank(furthest) {
		d.Step = requested
	} else {
		d.Step = furthest
	}
}

func stepRank(s Step) int {
	switch s {
	case StepPropertyInfo:
		return 1
	case StepAuth:
		return 2
	case StepCustomerInfo:
		return 3
	case StepTerms:
		return 4
	case StepPayment:
		return 5
	}
	return 0
}
