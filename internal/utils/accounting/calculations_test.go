package accounting

import (
	"testing"

	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestFoldSideFormula(t *testing.T) {
	// remaining = freight + charges(add) - charges(deduct) - advances - balance paid
	advances := []domain.Advance{
		{Side: domain.SideParty, Amount: dec("1000")},
		{Side: domain.SideParty, Amount: dec("500")},
		{Side: domain.SideSupplier, Amount: dec("9999")}, // other side, ignored
	}
	charges := []domain.Charge{
		{Side: domain.SideParty, Operation: domain.OperationAdd, Amount: dec("200")},
		{Side: domain.SideParty, Operation: domain.OperationDeduct, Amount: dec("50")},
		{Side: domain.SideSupplier, Operation: domain.OperationAdd, Amount: dec("777")},
	}
	payments := []domain.BalancePayment{
		{Side: domain.SideParty, Amount: dec("3000")},
		{Side: domain.SideSupplier, Amount: dec("123")},
	}

	totals := FoldSide(domain.SideParty, dec("10000"), advances, charges, payments)

	assert.True(t, totals.AdvancesTotal.Equal(dec("1500")))
	assert.True(t, totals.ChargesAdd.Equal(dec("200")))
	assert.True(t, totals.ChargesDeduct.Equal(dec("50")))
	assert.True(t, totals.BalancePaid.Equal(dec("3000")))
	// 10000 + 200 - 50 - 1500 - 3000 = 5650
	assert.True(t, totals.BalanceRemaining.Equal(dec("5650")))
}

func TestFoldSideOrderIndependent(t *testing.T) {
	advances := []domain.Advance{
		{Side: domain.SideParty, Amount: dec("100")},
		{Side: domain.SideParty, Amount: dec("250.50")},
		{Side: domain.SideParty, Amount: dec("49.50")},
	}
	reversed := []domain.Advance{advances[2], advances[1], advances[0]}

	a := FoldSide(domain.SideParty, dec("1000"), advances, nil, nil)
	b := FoldSide(domain.SideParty, dec("1000"), reversed, nil, nil)

	assert.True(t, a.AdvancesTotal.Equal(b.AdvancesTotal))
	assert.True(t, a.BalanceRemaining.Equal(b.BalanceRemaining))
	assert.True(t, a.BalanceRemaining.Equal(dec("600")))
}

func TestFoldSideNegativeRemainderNotClamped(t *testing.T) {
	// Overpayment leaves a negative remainder, which is reported as-is.
	payments := []domain.BalancePayment{
		{Side: domain.SideSupplier, Amount: dec("1200")},
	}

	totals := FoldSide(domain.SideSupplier, dec("1000"), nil, nil, payments)

	assert.True(t, totals.BalanceRemaining.Equal(dec("-200")))
}

func TestFoldSideEmptyLedger(t *testing.T) {
	totals := FoldSide(domain.SideParty, dec("4200"), nil, nil, nil)

	assert.True(t, totals.AdvancesTotal.IsZero())
	assert.True(t, totals.ChargesAdd.IsZero())
	assert.True(t, totals.ChargesDeduct.IsZero())
	assert.True(t, totals.BalancePaid.IsZero())
	assert.True(t, totals.BalanceRemaining.Equal(dec("4200")))
}

func TestComputeTripBalancesBothSides(t *testing.T) {
	trip := domain.Trip{
		TripID:          "trip-1",
		FreightParty:    dec("10000"),
		FreightSupplier: dec("9000"),
	}
	advances := []domain.Advance{
		{Side: domain.SideParty, Amount: dec("2000")},
		{Side: domain.SideSupplier, Amount: dec("4000")},
	}
	charges := []domain.Charge{
		{Side: domain.SideParty, Operation: domain.OperationAdd, Amount: dec("150")},
		{Side: domain.SideSupplier, Operation: domain.OperationDeduct, Amount: dec("850")},
	}
	payments := []domain.BalancePayment{
		{Side: domain.SideParty, Amount: dec("4000")},
	}

	balances := ComputeTripBalances(trip, advances, charges, payments)

	assert.Equal(t, "trip-1", balances.TripID)
	// party: 10000 + 150 - 0 - 2000 - 4000 = 4150
	assert.True(t, balances.PartyBalanceRemaining.Equal(dec("4150")))
	// supplier: 9000 + 0 - 850 - 4000 - 0 = 4150
	assert.True(t, balances.SupplierBalanceRemaining.Equal(dec("4150")))

	// Recomputing from the same inputs yields the same summary.
	again := ComputeTripBalances(trip, advances, charges, payments)
	assert.True(t, balances.PartyBalanceRemaining.Equal(again.PartyBalanceRemaining))
	assert.True(t, balances.SupplierBalanceRemaining.Equal(again.SupplierBalanceRemaining))
}

func TestCanAddBalancePayment(t *testing.T) {
	noPod := domain.Trip{PodUploaded: false}
	withPod := domain.Trip{PodUploaded: true}

	// Supplier side is gated on the POD flag.
	assert.False(t, CanAddBalancePayment(noPod, domain.SideSupplier))
	assert.True(t, CanAddBalancePayment(withPod, domain.SideSupplier))

	// Party side is never gated.
	assert.True(t, CanAddBalancePayment(noPod, domain.SideParty))
	assert.True(t, CanAddBalancePayment(withPod, domain.SideParty))
}
