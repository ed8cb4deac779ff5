// Package payment wraps the card gateway's client-side tokenization API.
// The shop only ever sees a token handle or a structured rejection; raw
// card data is posted straight to the gateway and never stored or logged.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Card carries the fields the customer types on the payment step.
type Card struct {
	HolderName string `json:"holder_name"`
	Number     string `json:"number"`
	ExpMonth   string `json:"exp_month"`
	ExpYear    string `json:"exp_year"`
	CVC        string `json:"cvc"`
}

// Token is the gateway's handle for a successfully tokenized card.
type Token struct {
	ID    string `json:"token"`
	Last4 string `json:"last4"`
}

// Error is a structured rejection. Message is written by the gateway for
// display to the customer and is surfaced verbatim.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("payment: %s (%s)", e.Message, e.Code)
}

// Tokenizer is implemented by the gateway client and by test fakes.
type Tokenizer interface {
	Tokenize(ctx context.Context, card Card, amount int64, reference string) (Token, error)
}

// Client talks to the gateway over HTTPS.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

type tokenizeRequest struct {
	Card      Card   `json:"card"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Reference string `json:"reference"`
}

// Tokenize exchanges card details for a token. A non-2xx response with a
// decodable body becomes an *Error; transport failures are returned as-is.
func (c *Client) Tokenize(ctx context.Context, card Card, amount int64, reference string) (Token, error) {
	body, err := json.Marshal(tokenizeRequest{
		Card:      card,
		Amount:    amount,
		Currency:  "VND",
		Reference: reference,
	})
	if err != nil {
		return Token{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/tokens", bytes.NewReader(body))
	if err != nil {
		return Token{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return Token{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var gwErr Error
		if err := json.NewDecoder(resp.Body).Decode(&gwErr); err != nil || gwErr.Message == "" {
			gwErr = Error{Code: "gateway_error", Message: fmt.Sprintf("thanh toán thất bại (HTTP %d)", resp.StatusCode)}
		}
		return Token{}, &gwErr
	}

	var tok Token
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return Token{}, err
	}
	return tok, nil
}
