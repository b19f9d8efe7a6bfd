package portfolio

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finapple/backend/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	d, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func bond() entity.Investment {
	return entity.Investment{
		ID:              "inv1",
		Type:            "Bond",
		Name:            "OVDP 2025",
		Amount:          dec("45000"),
		Currency:        "UAH",
		PurchaseDate:    day("2024-01-15"),
		TermDate:        entity.MaturesOn(day("2025-06-20")),
		InterestRate:    dec("15.5"),
		PayoutFrequency: entity.PayoutSemiAnnual,
		InterestType:    entity.InterestSimple,
	}
}

func TestProjectPayouts_SemiAnnualCoupon(t *testing.T) {
	events := ProjectPayouts([]entity.Investment{bond()})

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d: %+v", len(events), events)
	}
	if events[0].ISODate() != "2024-07-15" {
		t.Errorf("expected first event on 2024-07-15, got %s", events[0].ISODate())
	}
	if events[1].ISODate() != "2025-01-15" {
		t.Errorf("expected second event on 2025-01-15, got %s", events[1].ISODate())
	}
	for _, e := range events {
		if !e.Amount.Equal(dec("3487.50")) {
			t.Errorf("expected coupon 3487.50, got %s", e.Amount)
		}
		if e.Name != "OVDP 2025" || e.Currency != "UAH" || e.InvestmentID != "inv1" {
			t.Errorf("unexpected event metadata: %+v", e)
		}
	}
}

func TestProjectPayouts_Frequencies(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*entity.Investment)
		dates  []string
		amount string
	}{
		{
			name: "annual coupon",
			mutate: func(i *entity.Investment) {
				i.PayoutFrequency = entity.PayoutAnnual
				i.TermDate = entity.MaturesOn(day("2026-01-15"))
			},
			dates:  []string{"2025-01-15", "2026-01-15"},
			amount: "6975",
		},
		{
			name: "end of term pays once at maturity",
			mutate: func(i *entity.Investment) {
				i.PayoutFrequency = entity.PayoutEndOfTerm
			},
			dates:  []string{"2025-06-20"},
			amount: "6975",
		},
		{
			name: "perpetual end of term matures after 365 days",
			mutate: func(i *entity.Investment) {
				i.PayoutFrequency = entity.PayoutEndOfTerm
				i.TermDate = entity.Perpetual()
			},
			dates:  []string{"2025-01-14"},
			amount: "6975",
		},
		{
			name: "perpetual semi-annual within one year",
			mutate: func(i *entity.Investment) {
				i.TermDate = entity.Perpetual()
			},
			dates:  []string{"2024-07-15"},
			amount: "3487.5",
		},
		{
			name: "compound is projected like simple",
			mutate: func(i *entity.Investment) {
				i.InterestType = entity.InterestCompound
			},
			dates:  []string{"2024-07-15", "2025-01-15"},
			amount: "3487.5",
		},
		{
			name: "zero rate yields nothing",
			mutate: func(i *entity.Investment) {
				i.InterestRate = decimal.Zero
			},
		},
		{
			name: "negative rate yields nothing",
			mutate: func(i *entity.Investment) {
				i.InterestRate = dec("-1")
			},
		},
		{
			name: "term before purchase yields nothing",
			mutate: func(i *entity.Investment) {
				i.TermDate = entity.MaturesOn(day("2023-01-01"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := bond()
			tt.mutate(&inv)
			events := ProjectPayouts([]entity.Investment{inv})

			if len(events) != len(tt.dates) {
				t.Fatalf("expected %d events, got %d: %+v", len(tt.dates), len(events), events)
			}
			for i, d := range tt.dates {
				if events[i].ISODate() != d {
					t.Errorf("event %d: expected %s, got %s", i, d, events[i].ISODate())
				}
				if !events[i].Amount.Equal(dec(tt.amount)) {
					t.Errorf("event %d: expected amount %s, got %s", i, tt.amount, events[i].Amount)
				}
			}
		})
	}
}

func TestProjectPayouts_MergedOrdering(t *testing.T) {
	a := bond()
	b := bond()
	b.ID = "inv2"
	b.PurchaseDate = day("2024-03-01")
	b.TermDate = entity.MaturesOn(day("2027-03-01"))
	b.PayoutFrequency = entity.PayoutAnnual
	c := bond()
	c.ID = "inv3"
	c.PayoutFrequency = entity.PayoutEndOfTerm
	c.TermDate = entity.MaturesOn(day("2024-02-01"))

	events := ProjectPayouts([]entity.Investment{a, b, c})
	if len(events) != 6 {
		t.Fatalf("expected 6 events, got %d", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i-1].ISODate() > events[i].ISODate() {
			t.Errorf("events out of order at %d: %s > %s", i, events[i-1].ISODate(), events[i].ISODate())
		}
	}
	if events[0].InvestmentID != "inv3" {
		t.Errorf("expected end-of-term payout first, got %s", events[0].InvestmentID)
	}

	t.Run("upcoming payouts are capped", func(t *testing.T) {
		upcoming := UpcomingPayouts([]entity.Investment{a, b, c}, 0)
		if len(upcoming) != DefaultPayoutCalendarSize {
			t.Errorf("expected %d events, got %d", DefaultPayoutCalendarSize, len(upcoming))
		}
		if got := UpcomingPayouts([]entity.Investment{a, b, c}, 2); len(got) != 2 {
			t.Errorf("expected 2 events, got %d", len(got))
		}
		if got := UpcomingPayouts(nil, 5); len(got) != 0 {
			t.Errorf("expected no events, got %d", len(got))
		}
	})
}

func TestAggregateByType(t *testing.T) {
	investments := []entity.Investment{
		{ID: "1", Type: "Bond", Amount: dec("41000"), Currency: "UAH"},
		{ID: "2", Type: "Stock", Amount: dec("100"), Currency: "EUR"},
		{ID: "3", Type: "Bond", Amount: dec("50"), Currency: "USD"},
		{ID: "4", Type: "Crypto", Amount: dec("3"), Currency: "BTC"},
	}

	groups := AggregateByType(investments)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}

	expected := []struct {
		typ, usd, original, currency, color string
		count                               int
	}{
		{"Bond", "1050", "41050", "USD", entity.AccentColors[0], 2},
		{"Stock", "108", "100", "EUR", entity.AccentColors[1], 1},
		{"Crypto", "3", "3", "BTC", entity.AccentColors[2], 1},
	}
	for i, want := range expected {
		g := groups[i]
		if g.Type != want.typ {
			t.Errorf("group %d: expected type %s, got %s", i, want.typ, g.Type)
		}
		if !g.USDValue.Equal(dec(want.usd)) {
			t.Errorf("%s: expected usd value %s, got %s", want.typ, want.usd, g.USDValue)
		}
		if !g.OriginalSum.Equal(dec(want.original)) {
			t.Errorf("%s: expected original sum %s, got %s", want.typ, want.original, g.OriginalSum)
		}
		if g.DisplayCurrency != want.currency {
			t.Errorf("%s: expected display currency %s, got %s", want.typ, want.currency, g.DisplayCurrency)
		}
		if g.Color != want.color {
			t.Errorf("%s: expected color %s, got %s", want.typ, want.color, g.Color)
		}
		if g.Count != want.count {
			t.Errorf("%s: expected count %d, got %d", want.typ, want.count, g.Count)
		}
	}

	if total := TotalUSD(groups); !total.Equal(dec("1161")) {
		t.Errorf("expected total 1161, got %s", total)
	}
}

func TestAggregateByType_Conservation(t *testing.T) {
	investments := []entity.Investment{
		{Type: "Bond", Amount: dec("45000"), Currency: "UAH"},
		{Type: "Real Estate", Amount: dec("120000.55"), Currency: "UAH"},
		{Type: "Bond", Amount: dec("0.45"), Currency: "UAH"},
		{Type: "Stock", Amount: dec("999"), Currency: "UAH"},
	}

	sum := decimal.Zero
	for _, g := range AggregateByType(investments) {
		sum = sum.Add(g.OriginalSum)
	}
	if !sum.Equal(dec("166000")) {
		t.Errorf("expected original sums to add up to 166000, got %s", sum)
	}
}

func TestInvestmentsOfType(t *testing.T) {
	investments := []entity.Investment{
		{ID: "1", Type: "Bond"},
		{ID: "2", Type: "Stock"},
		{ID: "3", Type: "Bond"},
	}
	got := InvestmentsOfType(investments, "Bond")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("unexpected result: %+v", got)
	}
	if got := InvestmentsOfType(investments, "Gold"); len(got) != 0 {
		t.Errorf("expected empty, got %+v", got)
	}
}
