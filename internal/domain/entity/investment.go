// Package entity defines the core business entities for the domain layer.
package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the ISO-8601 day layout used for every date in the system.
const DateLayout = "2006-01-02"

// PerpetualTerm is the sentinel used in place of a term date for open-ended holdings.
const PerpetualTerm = "perpetual"

// PayoutFrequency represents how often an investment pays interest.
type PayoutFrequency string

const (
	PayoutSemiAnnual PayoutFrequency = "semi-annual"
	PayoutAnnual     PayoutFrequency = "annual"
	PayoutEndOfTerm  PayoutFrequency = "end-of-term"
)

// IsValid reports whether the payout frequency is one of the known values.
func (f PayoutFrequency) IsValid() bool {
	return f == PayoutSemiAnnual || f == PayoutAnnual || f == PayoutEndOfTerm
}

// IntervalMonths returns the number of months between two coupons, or 0 when the
// investment pays once at the end of its term.
func (f PayoutFrequency) IntervalMonths() int {
	switch f {
	case PayoutSemiAnnual:
		return 6
	case PayoutAnnual:
		return 12
	}
	return 0
}

// InterestType represents how interest accrues.
type InterestType string

const (
	InterestSimple   InterestType = "simple"
	InterestCompound InterestType = "compound"
)

// IsValid reports whether the interest type is one of the known values.
func (t InterestType) IsValid() bool {
	return t == InterestSimple || t == InterestCompound
}

// TermDate is the maturity of an investment: either a day or perpetual.
type TermDate struct {
	Date      time.Time
	Perpetual bool
}

// Perpetual returns a term date with no maturity.
func Perpetual() TermDate {
	return TermDate{Perpetual: true}
}

// MaturesOn returns a term date maturing on the given day.
func MaturesOn(day time.Time) TermDate {
	return TermDate{Date: day}
}

// ParseTermDate parses a YYYY-MM-DD date or the "perpetual" sentinel.
// An empty string is read as perpetual.
func ParseTermDate(s string) (TermDate, error) {
	if s == "" || s == PerpetualTerm {
		return Perpetual(), nil
	}
	day, err := time.Parse(DateLayout, s)
	if err != nil {
		return TermDate{}, fmt.Errorf("invalid term date %q: %w", s, err)
	}
	return MaturesOn(day), nil
}

// String returns the YYYY-MM-DD form of the date or "perpetual".
func (t TermDate) String() string {
	if t.Perpetual {
		return PerpetualTerm
	}
	return t.Date.Format(DateLayout)
}

// MarshalJSON encodes the term date as a string.
func (t TermDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a YYYY-MM-DD string or "perpetual".
func (t *TermDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTermDate(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Investment represents a held asset position with its interest terms.
type Investment struct {
	ID              string          `json:"id"`
	Type            string          `json:"type"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	PurchaseDate    time.Time       `json:"purchaseDate"`
	TermDate        TermDate        `json:"termDate"`
	InterestRate    decimal.Decimal `json:"interestRate"` // percent
	PayoutFrequency PayoutFrequency `json:"payoutFrequency"`
	InterestType    InterestType    `json:"interestType"`
	Comment         string          `json:"comment,omitempty"`
}

// PerpetualHorizon is the projection window used for perpetual holdings.
const PerpetualHorizon = 365 * 24 * time.Hour

// Maturity returns the end of the projection window: the term date, or exactly
// 365 days after purchase for perpetual holdings.
func (i *Investment) Maturity() time.Time {
	if i.TermDate.Perpetual {
		return i.PurchaseDate.Add(PerpetualHorizon)
	}
	return i.TermDate.Date
}
