package newsletter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ErrAlreadySubscribed = errors.New("email is already subscribed")

// Client adds members to the configured mailing list.
type Client interface {
	Subscribe(ctx context.Context, email string) error
}

// MailchimpClient talks to the Mailchimp marketing API list-members
// endpoint. The API key authenticates via basic auth; the server prefix
// ("us21" etc.) selects the datacenter host.
type MailchimpClient struct {
	baseURL    string
	apiKey     string
	listID     string
	httpClient *http.Client
}

func NewMailchimpClient(apiKey, serverPrefix, listID, baseURL string) *MailchimpClient {
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.api.mailchimp.com/3.0", serverPrefix)
	}
	return &MailchimpClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		listID:     listID,
		httpClient: http.DefaultClient,
	}
}

func (c *MailchimpClient) Subscribe(ctx context.Context, email string) error {
	body, err := json.Marshal(map[string]string{
		"email_address": email,
		"status":        "subscribed",
	})
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/lists/%s/members", c.baseURL, c.listID)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))
	if err != nil {
		log.Errorf("Failed to create request: %v", err)
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth("anystring", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("Failed to execute request: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return nil
	}

	var apiErr struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Title == "Member Exists" {
		return ErrAlreadySubscribed
	}
	return fmt.Errorf("mailing list API returned status %d: %s", resp.StatusCode, apiErr.Detail)
}
