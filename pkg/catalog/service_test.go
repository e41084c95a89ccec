package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/threestrands/threestrands/internal/utils"
)

func stubItems() []ObjectData {
	return []ObjectData{
		{
			ID:   "ITEM1",
			Type: "ITEM",
			ItemData: &ItemData{
				Name:        "Ground Beef",
				Description: "1 lb pack",
				CategoryID:  "CAT1",
				Variations: []VariationObject{
					{
						ID: "VAR1",
						ItemVariationData: &VariationData{
							Name:        "Regular",
							PriceMoney:  &MoneyData{Amount: 899, Currency: "USD"},
							PricingType: "FIXED_PRICING",
						},
					},
				},
			},
		},
		{
			ID:   "ITEM2",
			Type: "ITEM",
			ItemData: &ItemData{
				Name:       "Mystery Cooler",
				CategoryID: "CAT2",
				Variations: []VariationObject{
					{
						ID:                "VAR2",
						ItemVariationData: &VariationData{Name: "Large"},
					},
				},
			},
		},
		{
			ID:       "ITEM3",
			Type:     "ITEM",
			ItemData: &ItemData{Name: "Uncategorized Jerky"},
		},
	}
}

func stubCategories() []ObjectData {
	return []ObjectData{
		{ID: "CAT1", Type: "CATEGORY", CategoryData: &CategoryData{Name: "Beef"}},
		{ID: "CAT2", Type: "CATEGORY", CategoryData: &CategoryData{Name: "Bundles"}},
	}
}

func setupServiceTest(t *testing.T, pageSize int) (*Service, *ClientStub, *utils.MockClock) {
	client := NewClientStub(stubItems(), stubCategories(), pageSize)
	clock := &utils.MockClock{FixedNow: time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC)}
	cache := NewCache(5*time.Minute, clock)
	return NewService(client, cache, clock), client, clock
}

func TestGetCatalog_FlattensAndJoins(t *testing.T) {
	service, _, _ := setupServiceTest(t, 100)

	catalog, err := service.GetCatalog(context.Background())
	assert.NoError(t, err)

	assert.Len(t, catalog.Items, 3)
	assert.Equal(t, "2026-05-02T12:00:00Z", catalog.UpdatedAt)
	assert.Equal(t, map[string]string{"CAT1": "Beef", "CAT2": "Bundles"}, catalog.Categories)

	beef := catalog.Items[0]
	assert.Equal(t, "Ground Beef", beef.Name)
	assert.Equal(t, "CAT1", beef.CategoryID)
	assert.Equal(t, "Beef", beef.CategoryName)
	assert.Len(t, beef.Variations, 1)
	assert.Equal(t, int64(899), beef.Variations[0].PriceMoney.Amount)
	assert.Equal(t, "USD", beef.Variations[0].PriceMoney.Currency)
	assert.Equal(t, "FIXED_PRICING", beef.Variations[0].PricingType)

	// Variation without a price keeps the pricing-type default and nil money.
	cooler := catalog.Items[1]
	assert.Nil(t, cooler.Variations[0].PriceMoney)
	assert.Equal(t, "FIXED_PRICING", cooler.Variations[0].PricingType)

	// No category id means no resolved name.
	assert.Empty(t, catalog.Items[2].CategoryName)
}

func TestGetCatalog_PaginatesToExhaustion(t *testing.T) {
	service, client, _ := setupServiceTest(t, 1)

	catalog, err := service.GetCatalog(context.Background())
	assert.NoError(t, err)
	assert.Len(t, catalog.Items, 3)
	assert.Len(t, catalog.Categories, 2)
	// 3 item pages + 2 category pages with page size 1.
	assert.Equal(t, 5, client.ListCalls())
}

func TestGetCatalog_CacheHitSkipsUpstream(t *testing.T) {
	service, client, clock := setupServiceTest(t, 100)

	first, err := service.GetCatalog(context.Background())
	assert.NoError(t, err)
	callsAfterFirst := client.ListCalls()

	clock.SetNow(clock.FixedNow.Add(4 * time.Minute))
	second, err := service.GetCatalog(context.Background())
	assert.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, callsAfterFirst, client.ListCalls(), "a fresh cache must not touch upstream")
}

func TestGetCatalog_ExpiryTriggersFullResweep(t *testing.T) {
	service, client, clock := setupServiceTest(t, 100)

	first, err := service.GetCatalog(context.Background())
	assert.NoError(t, err)
	callsAfterFirst := client.ListCalls()

	clock.SetNow(clock.FixedNow.Add(6 * time.Minute))
	second, err := service.GetCatalog(context.Background())
	assert.NoError(t, err)

	assert.Greater(t, client.ListCalls(), callsAfterFirst)
	assert.NotEqual(t, first.UpdatedAt, second.UpdatedAt)
	assert.Equal(t, "2026-05-02T12:06:00Z", second.UpdatedAt)
}

func TestGetCatalog_UpstreamFailureIsAHardError(t *testing.T) {
	service, client, clock := setupServiceTest(t, 100)

	_, err := service.GetCatalog(context.Background())
	assert.NoError(t, err)

	clock.SetNow(clock.FixedNow.Add(6 * time.Minute))
	client.FailWith(errors.New("square is down"))

	_, err = service.GetCatalog(context.Background())
	assert.Error(t, err, "a failed refresh must not serve the stale entry")

	// Once upstream recovers, the next request succeeds again.
	client.FailWith(nil)
	catalog, err := service.GetCatalog(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "2026-05-02T12:06:00Z", catalog.UpdatedAt)
}

func TestGetItem(t *testing.T) {
	service, _, _ := setupServiceTest(t, 100)

	item, err := service.GetItem(context.Background(), "ITEM1")
	assert.NoError(t, err)
	assert.Equal(t, "Ground Beef", item.Name)

	_, err = service.GetItem(context.Background(), "ITEM999")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}
