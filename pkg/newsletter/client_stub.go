package newsletter

import "context"

// ClientStub records subscriptions for tests.
type ClientStub struct {
	Subscribed []string
	Err        error
}

func (c *ClientStub) Subscribe(ctx context.Context, email string) error {
	if c.Err != nil {
		return c.Err
	}
	c.Subscribed = append(c.Subscribed, email)
	return nil
}
