package store

import (
	"moso_shop/internal/models"
	"moso_shop/internal/money"
)

// Cart returns a copy of the visitor's cart lines.
func (s *Store) Cart(vid string) []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyLines(s.visitor(vid).cart)
}

// AddItem puts qty units of a product in the cart. An existing line for
// the same product is incremented instead of duplicated; there is no
// upper bound. Adding also opens the cart panel.
func (s *Store) AddItem(vid, productID string, qty int) error {
	p, ok := s.byID[productID]
	if !ok {
		return ErrUnknownProduct
	}
	if qty < 1 {
		qty = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	vs := s.visitor(vid)
	vs.cartOpen = true
	for i := range vs.cart {
		if vs.cart[i].Product.ID == productID {
			vs.cart[i].Quantity += qty
			return nil
		}
	}
	vs.cart = append(vs.cart, models.CartLine{Product: p, Quantity: qty})
	return nil
}

// UpdateQuantity applies a delta to a line's quantity, clamped at 1.
// A missing line is a no-op.
func (s *Store) UpdateQuantity(vid, productID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vs := s.visitor(vid)
	for i := range vs.cart {
		if vs.cart[i].Product.ID == productID {
			q := vs.cart[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			vs.cart[i].Quantity = q
			return
		}
	}
}

// RemoveItem deletes a line. Removing an absent line is a no-op.
func (s *Store) RemoveItem(vid, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vs := s.visitor(vid)
	for i := range vs.cart {
		if vs.cart[i].Product.ID == productID {
			vs.cart = append(vs.cart[:i], vs.cart[i+1:]...)
			return
		}
	}
}

// CartTotal sums unit price × quantity over every line, in integer VND.
// Lines whose price string cannot be parsed contribute 0.
func (s *Store) CartTotal(vid string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cartTotal(s.visitor(vid).cart)
}

// CartPanelOpen reports whether the slide-in cart panel is showing.
func (s *Store) CartPanelOpen(vid string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visitor(vid).cartOpen
}

// SetCartPanel opens or closes the cart panel.
func (s *Store) SetCartPanel(vid string, open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visitor(vid).cartOpen = open
}

func cartTotal(lines []models.CartLine) int64 {
	var total int64
	for _, line := range lines {
		total += money.Parse(line.Product.Price) * int64(line.Quantity)
	}
	return total
}

func copyLines(lines []models.CartLine) []models.CartLine {
	cp := make([]models.CartLine, len(lines))
	copy(cp, lines)
	return cp
}
