package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/send", r.URL.Path)
		assert.Equal(t, "Bearer key_test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key_test")
	err := c.Send(context.Background(), TemplateWelcome, map[string]string{
		"name":  "Trang",
		"email": "trang@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, TemplateWelcome, got.TemplateID)
	assert.Equal(t, "Trang", got.Params["name"])
}

func TestSendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key_test")
	err := c.Send(context.Background(), TemplateOrderConfirm, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
