package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/intellij1704/mobile-display-sub002/models"
)

func TestUnitPrice(t *testing.T) {
	tests := []struct {
		name      string
		listPrice float64
		salePrice float64
		expected  float64
	}{
		{"Sale price wins when below list", 1500, 1200, 1200},
		{"No sale price falls back to list", 1500, 0, 1500},
		{"Sale price equal to list is ignored", 1500, 1500, 1500},
		{"Sale price above list is ignored", 1500, 1600, 1500},
		{"Negative sale price is ignored", 1500, -10, 1500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UnitPrice(tt.listPrice, tt.salePrice))
		})
	}
}

func TestComputeTotals_COD(t *testing.T) {
	settings := models.DefaultShippingSetting()

	totals := ComputeTotals(1200, models.DeliveryTypePaid, true, settings)

	assert.Equal(t, 1200.0, totals.Subtotal)
	assert.Equal(t, 99.0, totals.DeliveryFee)
	assert.Equal(t, 20.0, totals.CODFee)
	assert.Equal(t, 1319.0, totals.Total)
	assert.Equal(t, 131.9, totals.Advance)
	assert.Equal(t, 1187.1, totals.Remaining)
	assert.Equal(t, totals.Total, totals.Advance+totals.Remaining)
}

func TestComputeTotals_Prepaid(t *testing.T) {
	settings := models.DefaultShippingSetting()

	totals := ComputeTotals(1200, models.DeliveryTypePaid, false, settings)

	assert.Equal(t, 0.0, totals.CODFee)
	assert.Equal(t, 1299.0, totals.Total)
	assert.Equal(t, totals.Total, totals.Advance)
	assert.Equal(t, 0.0, totals.Remaining)
}

func TestComputeTotals_FreeDelivery(t *testing.T) {
	settings := models.DefaultShippingSetting()
	settings.FreeDeliveryAbove = 999

	totals := ComputeTotals(1200, models.DeliveryTypePaid, false, settings)
	assert.Equal(t, 0.0, totals.DeliveryFee)
	assert.Equal(t, 1200.0, totals.Total)

	// Below the threshold the fee still applies
	totals = ComputeTotals(500, models.DeliveryTypePaid, false, settings)
	assert.Equal(t, 99.0, totals.DeliveryFee)
}

func TestComputeTotals_FreeDeliveryType(t *testing.T) {
	settings := models.DefaultShippingSetting()

	totals := ComputeTotals(500, models.DeliveryTypeFree, false, settings)
	assert.Equal(t, 0.0, totals.DeliveryFee)
	assert.Equal(t, 500.0, totals.Total)
}

func TestComputeTotals_RoundsToPaise(t *testing.T) {
	settings := models.DefaultShippingSetting()
	settings.DeliveryFee = 0
	settings.CODFee = 0
	settings.AdvancePercent = 10

	totals := ComputeTotals(333.333, models.DeliveryTypePaid, true, settings)

	assert.Equal(t, 333.33, totals.Subtotal)
	assert.Equal(t, 33.33, totals.Advance)
	assert.Equal(t, 300.0, totals.Remaining)
}
