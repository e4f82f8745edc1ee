package domain_test

import (
	"testing"

	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStatusForPodFlag(t *testing.T) {
	tests := []struct {
		name        string
		current     domain.TripStatus
		podUploaded bool
		want        domain.TripStatus
	}{
		{
			name:        "open trip gains pod",
			current:     domain.StatusOpen,
			podUploaded: true,
			want:        domain.StatusPodReceived,
		},
		{
			name:        "pod_received trip loses pod",
			current:     domain.StatusPodReceived,
			podUploaded: false,
			want:        domain.StatusOpen,
		},
		{
			name:        "open trip stays open without pod",
			current:     domain.StatusOpen,
			podUploaded: false,
			want:        domain.StatusOpen,
		},
		{
			name:        "pod_received trip stays with pod",
			current:     domain.StatusPodReceived,
			podUploaded: true,
			want:        domain.StatusPodReceived,
		},
		{
			name:        "settled trip ignores pod set",
			current:     domain.StatusSettled,
			podUploaded: true,
			want:        domain.StatusSettled,
		},
		{
			name:        "settled trip ignores pod clear",
			current:     domain.StatusSettled,
			podUploaded: false,
			want:        domain.StatusSettled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.StatusForPodFlag(tt.current, tt.podUploaded)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTrip_FreightFor(t *testing.T) {
	trip := domain.Trip{
		FreightParty:    decimal.NewFromInt(10000),
		FreightSupplier: decimal.NewFromInt(9000),
	}

	assert.True(t, trip.FreightFor(domain.SideParty).Equal(decimal.NewFromInt(10000)))
	assert.True(t, trip.FreightFor(domain.SideSupplier).Equal(decimal.NewFromInt(9000)))
}
