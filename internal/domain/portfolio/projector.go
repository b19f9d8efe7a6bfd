// Package portfolio derives read-only views over investments: the payout
// calendar and the per-type portfolio breakdown.
package portfolio

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finapple/backend/internal/domain/entity"
)

// DefaultPayoutCalendarSize is the number of events shown in the payout calendar.
const DefaultPayoutCalendarSize = 5

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// PayoutEvent is a projected interest disbursement.
type PayoutEvent struct {
	InvestmentID string          `json:"investmentId"`
	Date         time.Time       `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	Name         string          `json:"name"`
	Currency     string          `json:"currency"`
}

// ISODate returns the event date as YYYY-MM-DD.
func (e PayoutEvent) ISODate() string {
	return e.Date.Format(entity.DateLayout)
}

// ProjectPayouts returns every payout event of the given investments, sorted
// ascending by date. Investments without a positive rate produce no events.
//
// Periodic coupons are principal * rate/100 * months/12, emitted every 6 or 12
// months after purchase up to and including maturity. An end-of-term investment
// pays principal * rate/100 once, at maturity. Interest type does not change the
// formula.
func ProjectPayouts(investments []entity.Investment) []PayoutEvent {
	events := make([]PayoutEvent, 0)
	for i := range investments {
		events = append(events, project(&investments[i])...)
	}
	sort.SliceStable(events, func(a, b int) bool {
		return events[a].ISODate() < events[b].ISODate()
	})
	return events
}

// UpcomingPayouts returns the first limit events of ProjectPayouts.
// A non-positive limit uses DefaultPayoutCalendarSize.
func UpcomingPayouts(investments []entity.Investment, limit int) []PayoutEvent {
	if limit <= 0 {
		limit = DefaultPayoutCalendarSize
	}
	events := ProjectPayouts(investments)
	return events[:min(limit, len(events))]
}

func project(inv *entity.Investment) []PayoutEvent {
	if !inv.InterestRate.IsPositive() {
		return nil
	}

	end := inv.Maturity()
	annual := inv.Amount.Mul(inv.InterestRate).Div(hundred)

	if inv.PayoutFrequency == entity.PayoutEndOfTerm {
		return []PayoutEvent{newEvent(inv, end, annual)}
	}

	months := inv.PayoutFrequency.IntervalMonths()
	if months == 0 {
		return nil
	}
	coupon := annual.Mul(decimal.NewFromInt(int64(months))).Div(twelve).Round(2)

	var events []PayoutEvent
	for current := inv.PurchaseDate; current.Before(end); {
		current = current.AddDate(0, months, 0)
		if !current.After(end) {
			events = append(events, newEvent(inv, current, coupon))
		}
	}
	return events
}

func newEvent(inv *entity.Investment, date time.Time, amount decimal.Decimal) PayoutEvent {
	return PayoutEvent{
		InvestmentID: inv.ID,
		Date:         date,
		Amount:       amount.Round(2),
		Name:         inv.Name,
		Currency:     inv.Currency,
	}
}
