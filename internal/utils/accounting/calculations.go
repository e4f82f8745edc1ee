package accounting

import (
	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SideTotals is the folded ledger of one side of a trip.
type SideTotals struct {
	AdvancesTotal    decimal.Decimal
	ChargesAdd       decimal.Decimal
	ChargesDeduct    decimal.Decimal
	BalancePaid      decimal.Decimal
	BalanceRemaining decimal.Decimal
}

// FoldSide sums one side's transactions and computes the remaining balance:
//
//	remaining = freight + charges(add) - charges(deduct) - advances - balance paid
//
// The fold is commutative, so input ordering never affects the result, and a
// negative remainder (overpayment) is returned as-is rather than clamped.
func FoldSide(side domain.TransactionSide, freight decimal.Decimal, advances []domain.Advance, charges []domain.Charge, payments []domain.BalancePayment) SideTotals {
	t := SideTotals{
		AdvancesTotal: decimal.Zero,
		ChargesAdd:    decimal.Zero,
		ChargesDeduct: decimal.Zero,
		BalancePaid:   decimal.Zero,
	}

	for _, a := range advances {
		if a.Side == side {
			t.AdvancesTotal = t.AdvancesTotal.Add(a.Amount)
		}
	}
	for _, c := range charges {
		if c.Side != side {
			continue
		}
		if c.Operation == domain.OperationAdd {
			t.ChargesAdd = t.ChargesAdd.Add(c.Amount)
		} else {
			t.ChargesDeduct = t.ChargesDeduct.Add(c.Amount)
		}
	}
	for _, p := range payments {
		if p.Side == side {
			t.BalancePaid = t.BalancePaid.Add(p.Amount)
		}
	}

	t.BalanceRemaining = freight.
		Add(t.ChargesAdd).
		Sub(t.ChargesDeduct).
		Sub(t.AdvancesTotal).
		Sub(t.BalancePaid)
	return t
}

// ComputeTripBalances folds a trip's full transaction sets into its balance
// summary. It is a pure function of its inputs: callers re-invoke it after
// every ledger mutation instead of patching a cached copy, which is what
// keeps the summary drift-free.
func ComputeTripBalances(trip domain.Trip, advances []domain.Advance, charges []domain.Charge, payments []domain.BalancePayment) domain.TripBalances {
	party := FoldSide(domain.SideParty, trip.FreightParty, advances, charges, payments)
	supplier := FoldSide(domain.SideSupplier, trip.FreightSupplier, advances, charges, payments)

	return domain.TripBalances{
		TripID:          trip.TripID,
		FreightParty:    trip.FreightParty,
		FreightSupplier: trip.FreightSupplier,

		PartyAdvancesTotal:    party.AdvancesTotal,
		PartyChargesAdd:       party.ChargesAdd,
		PartyChargesDeduct:    party.ChargesDeduct,
		PartyBalancePaid:      party.BalancePaid,
		PartyBalanceRemaining: party.BalanceRemaining,

		SupplierAdvancesTotal:    supplier.AdvancesTotal,
		SupplierChargesAdd:       supplier.ChargesAdd,
		SupplierChargesDeduct:    supplier.ChargesDeduct,
		SupplierBalancePaid:      supplier.BalancePaid,
		SupplierBalanceRemaining: supplier.BalanceRemaining,
	}
}

// CanAddBalancePayment is the POD gate: supplier-side balance payments are
// blocked until the trip's POD has been uploaded. Party-side payments, and
// advances and charges on either side, are never gated.
func CanAddBalancePayment(trip domain.Trip, side domain.TransactionSide) bool {
	if side == domain.SideSupplier && !trip.PodUploaded {
		return false
	}
	return true
}
