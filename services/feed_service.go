package services

import (
	"encoding/xml"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/intellij1704/mobile-display-sub002/models"
)

// FeedItem is one <item> entry in the Google Shopping feed. A variable
// product contributes one entry per variation; a simple product contributes
// exactly one.
type FeedItem struct {
	ID                   string   `xml:"g:id"`
	Title                string   `xml:"title"`
	Description          string   `xml:"description,omitempty"`
	Link                 string   `xml:"link"`
	ImageLink            string   `xml:"g:image_link,omitempty"`
	AdditionalImageLinks []string `xml:"g:additional_image_link,omitempty"`
	Availability         string   `xml:"g:availability"`
	Price                string   `xml:"g:price"`
	SalePrice            string   `xml:"g:sale_price,omitempty"`
	Brand                string   `xml:"g:brand,omitempty"`
	ProductType          string   `xml:"g:product_type,omitempty"`
	Condition            string   `xml:"g:condition"`
	ItemGroupID          string   `xml:"g:item_group_id,omitempty"`
	Color                string   `xml:"g:color,omitempty"`
}

type feedChannel struct {
	Title       string     `xml:"title"`
	Link        string     `xml:"link"`
	Description string     `xml:"description"`
	Items       []FeedItem `xml:"item"`
}

type feedRSS struct {
	XMLName xml.Name    `xml:"rss"`
	Version string      `xml:"version,attr"`
	XMLNSG  string      `xml:"xmlns:g,attr"`
	Channel feedChannel `xml:"channel"`
}

func feedPrice(amount float64) string {
	return fmt.Sprintf("%.2f INR", amount)
}

func availability(stock int) string {
	if stock > 0 {
		return "in_stock"
	}
	return "out_of_stock"
}

// buildFeedItem assembles the shared parts of an entry: brand/category
// lookups, link and images come from the product regardless of variation.
func buildFeedItem(siteDomain string, p models.Product) FeedItem {
	item := FeedItem{
		Title:       p.Title,
		Description: p.Description,
		Link:        fmt.Sprintf("%s/product/%s", siteDomain, p.Slug),
		Brand:       p.Brand.Name,
		ProductType: p.Category.Name,
		Condition:   "new",
	}
	if p.Model != nil {
		item.Title = fmt.Sprintf("%s for %s", p.Title, p.Model.Name)
	}
	for i, img := range p.Images {
		if i == 0 {
			item.ImageLink = img.URL
		} else {
			item.AdditionalImageLinks = append(item.AdditionalImageLinks, img.URL)
		}
	}
	return item
}

// GenerateFeed renders the whole catalog as a Google Shopping RSS feed
func GenerateFeed(db *gorm.DB, siteDomain string) ([]byte, error) {
	var products []models.Product
	if err := db.Preload("Brand").Preload("Category").Preload("Model").
		Preload("Images", "variation_id IS NULL").Preload("Variations").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load products for feed: %w", err)
	}

	var items []FeedItem
	for _, p := range products {
		if p.IsVariable && len(p.Variations) > 0 {
			for _, v := range p.Variations {
				item := buildFeedItem(siteDomain, p)
				item.ID = fmt.Sprintf("%d-%d", p.ID, v.ID)
				item.ItemGroupID = fmt.Sprintf("%d", p.ID)
				item.Availability = availability(v.Stock)
				item.Price = feedPrice(v.ListPrice)
				if v.SalePrice > 0 && v.SalePrice < v.ListPrice {
					item.SalePrice = feedPrice(v.SalePrice)
				}
				item.Color = v.Color
				if v.Quality != "" {
					item.Title = fmt.Sprintf("%s (%s)", item.Title, v.Quality)
				}
				items = append(items, item)
			}
			continue
		}

		item := buildFeedItem(siteDomain, p)
		item.ID = fmt.Sprintf("%d", p.ID)
		item.Availability = availability(p.Stock)
		item.Price = feedPrice(p.ListPrice)
		if p.SalePrice > 0 && p.SalePrice < p.ListPrice {
			item.SalePrice = feedPrice(p.SalePrice)
		}
		items = append(items, item)
	}

	feed := feedRSS{
		Version: "2.0",
		XMLNSG:  "http://base.google.com/ns/1.0",
		Channel: feedChannel{
			Title:       "Mobile Display",
			Link:        siteDomain,
			Description: "Mobile spare parts product feed",
			Items:       items,
		},
	}

	var b strings.Builder
	b.WriteString(xml.Header)
	enc := xml.NewEncoder(&b)
	enc.Indent("", "  ")
	if err := enc.Encode(feed); err != nil {
		return nil, fmt.Errorf("failed to encode feed: %w", err)
	}
	return []byte(b.String()), nil
}
