package catalog

import (
	"context"
	"sync"
)

// ClientStub pages through pre-scripted catalog objects and counts upstream
// calls so cache tests can assert how many fetches happened.
type ClientStub struct {
	mu         sync.Mutex
	items      []ObjectData
	categories []ObjectData
	pageSize   int
	err        error
	listCalls  int
}

func NewClientStub(items, categories []ObjectData, pageSize int) *ClientStub {
	if pageSize <= 0 {
		pageSize = 100
	}
	return &ClientStub{items: items, categories: categories, pageSize: pageSize}
}

func (c *ClientStub) FailWith(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
}

func (c *ClientStub) ListCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.listCalls
}

func (c *ClientStub) ListCatalog(ctx context.Context, types string, cursor string) (*ListPage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listCalls++
	if c.err != nil {
		return nil, c.err
	}

	source := c.items
	if types == "CATEGORY" {
		source = c.categories
	}

	offset := 0
	if cursor != "" {
		for i := range source {
			if source[i].ID == cursor {
				offset = i
				break
			}
		}
	}

	end := offset + c.pageSize
	if end > len(source) {
		end = len(source)
	}
	page := &ListPage{Objects: source[offset:end]}
	if end < len(source) {
		page.Cursor = source[end].ID
	}
	return page, nil
}

func (c *ClientStub) GetObject(ctx context.Context, objectID string) (*ObjectData, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	for i := range c.items {
		if c.items[i].ID == objectID {
			return &c.items[i], nil
		}
	}
	for i := range c.categories {
		if c.categories[i].ID == objectID {
			return &c.categories[i], nil
		}
	}
	return nil, ErrObjectNotFound
}
