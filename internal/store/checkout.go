package store

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"moso_shop/internal/models"
	"moso_shop/internal/money"
	"moso_shop/internal/notify"
	"moso_shop/internal/payment"
)

// BankInstructions is shown on the bank-transfer payment path. The order
// id is appended as the transfer note.
const BankInstructions = "Vietcombank - CN Sài Gòn\nSTK 0071000123456 - CT TNHH MOSO\nNội dung chuyển khoản: MOSO"

// CheckoutRequest carries both checkout steps as one explicit record:
// the shipping form and the chosen payment method (with card details when
// the method is card).
type CheckoutRequest struct {
	Shipping models.ShippingInfo  `json:"shipping"`
	Method   models.PaymentMethod `json:"method"`
	Card     payment.Card         `json:"card"`
}

// CheckoutResult reports a completed checkout.
type CheckoutResult struct {
	Order            models.Order `json:"order"`
	BankInstructions string       `json:"bank_instructions,omitempty"`
}

// Checkout runs the shipping→payment flow: validate the shipping form,
// run the chosen payment path, then snapshot the cart into a new ledger
// order, remember the shipping info for pre-fill, clear the cart and
// queue a confirmation email. On a payment rejection the state is left
// untouched so the customer can retry from the payment step.
//
// Nothing deduplicates concurrent submissions: two calls racing on the
// same cart both snapshot it before either clears it, and both create an
// order.
func (s *Store) Checkout(ctx context.Context, vid string, req CheckoutRequest) (CheckoutResult, error) {
	if missing := missingShippingFields(req.Shipping); len(missing) > 0 {
		return CheckoutResult{}, fmt.Errorf("%w: %s", ErrInvalidShipping, strings.Join(missing, ", "))
	}
	if !req.Method.Valid() {
		return CheckoutResult{}, ErrUnknownPayment
	}

	s.mu.Lock()
	lines := copyLines(s.visitor(vid).cart)
	s.mu.Unlock()
	if len(lines) == 0 {
		return CheckoutResult{}, ErrEmptyCart
	}
	total := cartTotal(lines)

	if req.Method == models.PayCard {
		if s.tokenizer == nil {
			return CheckoutResult{}, ErrUnknownPayment
		}
		ref := uuid.NewString()
		if _, err := s.tokenizer.Tokenize(ctx, req.Card, total, ref); err != nil {
			return CheckoutResult{}, err
		}
	}

	// Simulated processing delay shared by all three payment paths.
	time.Sleep(s.delay)

	order := models.Order{
		ID:        newOrderID(),
		CreatedAt: time.Now().Format(models.OrderTimeFormat),
		Status:    models.StatusPending,
		Items:     lines,
		Total:     total,
		Shipping:  req.Shipping,
		Payment:   req.Method.Label(),
	}

	s.mu.Lock()
	s.orders = append([]models.Order{order}, s.orders...)
	vs := s.visitor(vid)
	ship := req.Shipping
	vs.lastShipping = &ship
	vs.cart = nil
	vs.cartOpen = false
	s.mu.Unlock()

	if order.Shipping.Email != "" {
		s.enqueueMail(notify.TemplateOrderConfirm, map[string]string{
			"name":     order.Shipping.FullName,
			"email":    order.Shipping.Email,
			"phone":    order.Shipping.Phone,
			"order_id": order.ID,
			"total":    money.Format(order.Total),
			"time":     order.CreatedAt,
		})
	}

	res := CheckoutResult{Order: order}
	if req.Method == models.PayBank {
		res.BankInstructions = BankInstructions + order.ID
	}
	return res, nil
}

// LastShipping returns the shipping info cached from the visitor's most
// recent successful checkout, used to pre-fill the form.
func (s *Store) LastShipping(vid string) (models.ShippingInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ship := s.visitor(vid).lastShipping
	if ship == nil {
		return models.ShippingInfo{}, false
	}
	return *ship, true
}

func missingShippingFields(ship models.ShippingInfo) []string {
	var missing []string
	required := []struct{ name, value string }{
		{"full_name", ship.FullName},
		{"phone", ship.Phone},
		{"address", ship.Address},
		{"city", ship.City},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// newOrderID returns a random 6-digit id. Uniqueness is not guaranteed.
func newOrderID() string {
	return fmt.Sprintf("%06d", rand.Intn(900000)+100000)
}
