package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const (
	productionBaseURL = "https://connect.squareup.com"
	sandboxBaseURL    = "https://connect.squareupsandbox.com"
	squareVersion     = "2024-01-18"
)

var ErrObjectNotFound = errors.New("catalog object not found")

// Wire types for the Square Catalog API.

type ObjectData struct {
	ID           string        `json:"id"`
	Type         string        `json:"type"`
	ItemData     *ItemData     `json:"item_data"`
	CategoryData *CategoryData `json:"category_data"`
}

type ItemData struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	CategoryID  string            `json:"category_id"`
	Variations  []VariationObject `json:"variations"`
}

type VariationObject struct {
	ID                string         `json:"id"`
	ItemVariationData *VariationData `json:"item_variation_data"`
}

type VariationData struct {
	Name        string     `json:"name"`
	PriceMoney  *MoneyData `json:"price_money"`
	PricingType string     `json:"pricing_type"`
}

type MoneyData struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type CategoryData struct {
	Name string `json:"name"`
}

type ListPage struct {
	Objects []ObjectData `json:"objects"`
	Cursor  string       `json:"cursor"`
}

// Client is the slice of the Square Catalog API this service consumes.
type Client interface {
	ListCatalog(ctx context.Context, types string, cursor string) (*ListPage, error) // GET /v2/catalog/list
	GetObject(ctx context.Context, objectID string) (*ObjectData, error)             // GET /v2/catalog/object/{id}
}

type ClientImpl struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a Square client authenticated with a static bearer
// token. baseURL overrides the environment default when non-empty, which the
// tests use to point at a local server.
func NewClient(accessToken, environment, baseURL string) *ClientImpl {
	if baseURL == "" {
		if environment == "sandbox" {
			baseURL = sandboxBaseURL
		} else {
			baseURL = productionBaseURL
		}
	}
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	return &ClientImpl{
		baseURL:    baseURL,
		httpClient: oauth2.NewClient(context.Background(), tokenSource),
	}
}

// ListCatalog fetches one page of catalog objects of the given types.
func (c *ClientImpl) ListCatalog(ctx context.Context, types string, cursor string) (*ListPage, error) {
	q := url.Values{}
	q.Set("types", types)
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	endpoint := fmt.Sprintf("%s/v2/catalog/list?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		log.Errorf("Failed to create request: %v", err)
		return nil, err
	}
	req.Header.Set("Square-Version", squareVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("Failed to execute request: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("Square API returned non-OK status: %d", resp.StatusCode)
		log.Error(err)
		return nil, err
	}

	var page ListPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		log.Errorf("Failed to decode response: %v", err)
		return nil, err
	}
	return &page, nil
}

// GetObject fetches a single catalog object by id.
func (c *ClientImpl) GetObject(ctx context.Context, objectID string) (*ObjectData, error) {
	endpoint := fmt.Sprintf("%s/v2/catalog/object/%s", c.baseURL, url.PathEscape(objectID))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		log.Errorf("Failed to create request: %v", err)
		return nil, err
	}
	req.Header.Set("Square-Version", squareVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("Failed to execute request: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrObjectNotFound
	}
	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("Square API returned non-OK status: %d", resp.StatusCode)
		log.Error(err)
		return nil, err
	}

	var body struct {
		Object *ObjectData `json:"object"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Errorf("Failed to decode response: %v", err)
		return nil, err
	}
	if body.Object == nil {
		return nil, ErrObjectNotFound
	}
	return body.Object, nil
}
