package services

import (
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"github.com/intellij1704/mobile-display-sub002/config"
	"github.com/intellij1704/mobile-display-sub002/models"
)

// Price revision errors surfaced to controllers
var (
	ErrInvalidPercent   = errors.New("percentage must be a finite non-negative number")
	ErrCategoryRequired = errors.New("category is required")
	ErrRevisionNotFound = errors.New("price revision not found")
)

var revisionLog = componentLogger("revision")

// scalePrices multiplies the price fields of every product and variation in
// a category by the given factor.
func scalePrices(tx *gorm.DB, categoryID uint, factor float64) error {
	if err := tx.Model(&models.Product{}).Where("category_id = ?", categoryID).
		Updates(map[string]interface{}{
			"list_price": gorm.Expr("list_price * ?", factor),
			"sale_price": gorm.Expr("sale_price * ?", factor),
		}).Error; err != nil {
		return fmt.Errorf("failed to revise product prices: %w", err)
	}

	if err := tx.Model(&models.Variation{}).
		Where("product_id IN (?)", tx.Session(&gorm.Session{NewDB: true}).
			Model(&models.Product{}).Select("id").Where("category_id = ?", categoryID)).
		Updates(map[string]interface{}{
			"list_price": gorm.Expr("list_price * ?", factor),
			"sale_price": gorm.Expr("sale_price * ?", factor),
		}).Error; err != nil {
		return fmt.Errorf("failed to revise variation prices: %w", err)
	}

	return nil
}

// ApplyPriceRevision applies a percentage adjustment to every price in a
// category and records a history row. The percentage is validated here,
// regardless of what the admin form already checked.
func ApplyPriceRevision(categoryID uint, percent float64) (*models.PriceRevision, error) {
	if categoryID == 0 {
		return nil, ErrCategoryRequired
	}
	if math.IsNaN(percent) || math.IsInf(percent, 0) || percent < 0 {
		return nil, ErrInvalidPercent
	}

	db := config.GetDB()

	var category models.Category
	if err := db.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryRequired
		}
		return nil, err
	}

	factor := 1 + percent/100
	revision := &models.PriceRevision{
		CategoryID: categoryID,
		Percent:    percent,
		Factor:     factor,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := scalePrices(tx, categoryID, factor); err != nil {
			return err
		}
		return tx.Create(revision).Error
	})
	if err != nil {
		return nil, err
	}

	revisionLog.Infof("applied %+.2f%% to category %q", percent, category.Name)
	return revision, nil
}

// RevertPriceRevision reverses (or re-applies) a recorded revision. A
// revision that has not been reverted is undone by dividing the same price
// fields by its stored factor; an already-reverted one is applied again.
// The flag flips each time, so the same revision can never be applied or
// reverted twice in a row.
func RevertPriceRevision(revisionID uint) (*models.PriceRevision, error) {
	db := config.GetDB()

	var revision models.PriceRevision
	if err := db.First(&revision, revisionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRevisionNotFound
		}
		return nil, err
	}

	factor := 1 / revision.Factor
	if revision.Reverted {
		factor = revision.Factor
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := scalePrices(tx, revision.CategoryID, factor); err != nil {
			return err
		}
		return tx.Model(&revision).Update("reverted", !revision.Reverted).Error
	})
	if err != nil {
		return nil, err
	}

	revision.Reverted = !revision.Reverted
	revisionLog.Infof("revision %d now reverted=%t", revision.ID, revision.Reverted)
	return &revision, nil
}
