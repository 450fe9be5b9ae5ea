package payments

import "math"

// Reservation fee schedule, in whole euros. Storage boxes carry a lower fee
// than business units; VAT is added at the Dutch high rate.
const (
	BusinessUnitFeeEuros = 250
	StorageBoxFeeEuros   = 50
	vatRate              = 0.21
)

// Fee is a computed reservation fee. All amounts are whole euros; VAT is
// rounded half-up to the nearest euro before summing.
type Fee struct {
	FeeEuros   int64 `json:"fee_euros"`
	TaxEuros   int64 `json:"tax_euros"`
	TotalEuros int64 `json:"total_euros"`
}

// ComputeFee returns the deterministic fee for a product type:
// fee = 50 (opslagbox) or 250 (bedrijfsunit), tax = round(fee * 0.21),
// total = fee + tax.
func ComputeFee(isStorageBox bool) Fee {
	fee := int64(BusinessUnitFeeEuros)
	if isStorageBox {
		fee = StorageBoxFeeEuros
	}
	tax := int64(math.Round(float64(fee) * vatRate))
	return Fee{
		FeeEuros:   fee,
		TaxEuros:   tax,
		TotalEuros: fee + tax,
	}
}

// TotalCents is the charge amount in minor units, as Stripe expects it.
func (f Fee) TotalCents() int64 {
	return f.TotalEuros * 100
}
