package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/tokens", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

		var req tokenizeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "VND", req.Currency)
		assert.Equal(t, int64(533000), req.Amount)
		assert.Equal(t, "4242424242424242", req.Card.Number)

		json.NewEncoder(w).Encode(Token{ID: "tok_abc", Last4: "4242"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test")
	tok, err := c.Tokenize(context.Background(), Card{
		HolderName: "NGUYEN VAN A",
		Number:     "4242424242424242",
		ExpMonth:   "12",
		ExpYear:    "28",
		CVC:        "123",
	}, 533000, "ref-1")
	require.NoError(t, err)
	assert.Equal(t, "tok_abc", tok.ID)
	assert.Equal(t, "4242", tok.Last4)
}

func TestTokenizeRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		json.NewEncoder(w).Encode(Error{Code: "card_declined", Message: "Thẻ bị từ chối, vui lòng thử thẻ khác."})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test")
	_, err := c.Tokenize(context.Background(), Card{Number: "4000000000000002"}, 189000, "ref-2")
	require.Error(t, err)

	var gwErr *Error
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, "card_declined", gwErr.Code)
	assert.Equal(t, "Thẻ bị từ chối, vui lòng thử thẻ khác.", gwErr.Message)
}

func TestTokenizeOpaqueFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test")
	_, err := c.Tokenize(context.Background(), Card{}, 1000, "ref-3")
	require.Error(t, err)

	var gwErr *Error
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, "gateway_error", gwErr.Code)
	assert.NotEmpty(t, gwErr.Message)
}
