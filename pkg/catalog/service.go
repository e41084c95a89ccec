package catalog

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/threestrands/threestrands/internal/utils"
)

type Service struct {
	client Client
	cache  *Cache
	clock  utils.Clock
}

func NewService(client Client, cache *Cache, clock utils.Clock) *Service {
	return &Service{client: client, cache: cache, clock: clock}
}

// GetCatalog returns the combined item/category payload, served from cache
// while fresh. A stale cache triggers a full pagination sweep of items and
// categories; the entry is replaced atomically only after the whole sweep
// succeeds, so an upstream failure leaves the previous entry untouched and
// is reported as an error for this request.
func (s *Service) GetCatalog(ctx context.Context) (*Catalog, error) {
	if payload, ok := s.cache.Get(); ok {
		return payload, nil
	}

	items, err := s.fetchItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog items: %w", err)
	}
	categories, err := s.fetchCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog categories: %w", err)
	}

	for i := range items {
		if name, ok := categories[items[i].CategoryID]; ok && items[i].CategoryID != "" {
			items[i].CategoryName = name
		}
	}

	payload := &Catalog{
		Items:      items,
		Categories: categories,
		UpdatedAt:  s.clock.Now().UTC().Format(time.RFC3339),
	}
	s.cache.Put(payload)
	log.Debugf("catalog refreshed: %d items, %d categories", len(items), len(categories))
	return payload, nil
}

// GetItem fetches one item directly from upstream, bypassing the cache.
func (s *Service) GetItem(ctx context.Context, itemID string) (*Item, error) {
	obj, err := s.client.GetObject(ctx, itemID)
	if err != nil {
		return nil, err
	}
	item := flattenItem(*obj)
	return &item, nil
}

func (s *Service) fetchItems(ctx context.Context) ([]Item, error) {
	items := []Item{}
	cursor := ""
	for {
		page, err := s.client.ListCatalog(ctx, "ITEM", cursor)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Objects {
			items = append(items, flattenItem(obj))
		}
		if page.Cursor == "" {
			return items, nil
		}
		cursor = page.Cursor
	}
}

func (s *Service) fetchCategories(ctx context.Context) (map[string]string, error) {
	categories := map[string]string{}
	cursor := ""
	for {
		page, err := s.client.ListCatalog(ctx, "CATEGORY", cursor)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Objects {
			name := ""
			if obj.CategoryData != nil {
				name = obj.CategoryData.Name
			}
			categories[obj.ID] = name
		}
		if page.Cursor == "" {
			return categories, nil
		}
		cursor = page.Cursor
	}
}

func flattenItem(obj ObjectData) Item {
	item := Item{ID: obj.ID, Variations: []Variation{}}
	if obj.ItemData == nil {
		return item
	}
	item.Name = obj.ItemData.Name
	item.Description = obj.ItemData.Description
	item.CategoryID = obj.ItemData.CategoryID
	for _, v := range obj.ItemData.Variations {
		variation := Variation{ID: v.ID, PricingType: "FIXED_PRICING"}
		if v.ItemVariationData != nil {
			variation.Name = v.ItemVariationData.Name
			if v.ItemVariationData.PricingType != "" {
				variation.PricingType = v.ItemVariationData.PricingType
			}
			if v.ItemVariationData.PriceMoney != nil {
				variation.PriceMoney = &Money{
					Amount:   v.ItemVariationData.PriceMoney.Amount,
					Currency: v.ItemVariationData.PriceMoney.Currency,
				}
			}
		}
		item.Variations = append(item.Variations, variation)
	}
	return item
}
