package newsletter

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscribe(t *testing.T) {
	client := &ClientStub{}
	handler := NewHandler(client)

	req := httptest.NewRequest(http.MethodPost, "/api/subscribe",
		strings.NewReader(`{"email_address":"ranch.fan@example.com"}`))
	w := httptest.NewRecorder()
	handler.Subscribe(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, []string{"ranch.fan@example.com"}, client.Subscribed)
}

func TestSubscribe_MissingEmail(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"empty body object", `{}`},
		{"blank email", `{"email_address":"   "}`},
		{"not an email", `{"email_address":"nope"}`},
		{"invalid json", `{`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := &ClientStub{}
			handler := NewHandler(client)

			req := httptest.NewRequest(http.MethodPost, "/api/subscribe", strings.NewReader(tc.body))
			w := httptest.NewRecorder()
			handler.Subscribe(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, client.Subscribed)
		})
	}
}

func TestSubscribe_AlreadySubscribed(t *testing.T) {
	client := &ClientStub{Err: ErrAlreadySubscribed}
	handler := NewHandler(client)

	req := httptest.NewRequest(http.MethodPost, "/api/subscribe",
		strings.NewReader(`{"email_address":"ranch.fan@example.com"}`))
	w := httptest.NewRecorder()
	handler.Subscribe(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, true, resp["success"])
	assert.Contains(t, resp["message"], "already")
}

func TestSubscribe_ProviderFailure(t *testing.T) {
	client := &ClientStub{Err: errors.New("mailchimp is down")}
	handler := NewHandler(client)

	req := httptest.NewRequest(http.MethodPost, "/api/subscribe",
		strings.NewReader(`{"email_address":"ranch.fan@example.com"}`))
	w := httptest.NewRecorder()
	handler.Subscribe(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp map[string]any
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, false, resp["success"])
}
