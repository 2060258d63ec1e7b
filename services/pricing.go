package services

import (
	"github.com/intellij1704/mobile-display-sub002/models"
	"github.com/intellij1704/mobile-display-sub002/utils"
)

// UnitPrice returns the effective selling price: the sale price wins whenever
// it is set below the list price, otherwise the list price applies.
func UnitPrice(listPrice, salePrice float64) float64 {
	if salePrice > 0 && salePrice < listPrice {
		return salePrice
	}
	return listPrice
}

// CheckoutTotals is the computed amount breakdown of a checkout session
type CheckoutTotals struct {
	Subtotal    float64
	DeliveryFee float64
	CODFee      float64
	Total       float64
	Advance     float64
	Remaining   float64
}

// ComputeTotals derives the full amount breakdown for a checkout.
// The COD fee applies only to cash-on-delivery checkouts; the advance is the
// online-collected share of a COD total (the full total for prepaid).
func ComputeTotals(subtotal float64, deliveryType string, cod bool, settings models.ShippingSetting) CheckoutTotals {
	t := CheckoutTotals{Subtotal: utils.Round2(subtotal)}

	if deliveryType == models.DeliveryTypePaid {
		t.DeliveryFee = settings.DeliveryFee
	}
	if settings.FreeDeliveryAbove > 0 && subtotal >= settings.FreeDeliveryAbove {
		t.DeliveryFee = 0
	}
	if cod {
		t.CODFee = settings.CODFee
	}

	t.Total = utils.Round2(t.Subtotal + t.DeliveryFee + t.CODFee)
	if cod {
		t.Advance = utils.Round2(t.Total * settings.AdvancePercent / 100)
		t.Remaining = utils.Round2(t.Total - t.Advance)
	} else {
		t.Advance = t.Total
		t.Remaining = 0
	}
	return t
}
