package store

import (
	"strings"

	"moso_shop/internal/models"
)

// Lookup scans the ledger for an exact order id and a case-insensitive
// email match. Both must match the same record; a miss of either kind
// returns ErrOrderNotFound, deliberately without saying which was wrong.
func (s *Store) Lookup(orderID, email string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == orderID && strings.EqualFold(o.Shipping.Email, email) {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

// OrdersFor returns the signed-in visitor's order history, newest first.
// Attribution is purely a case-insensitive match of the account email
// against each order's shipping email; signed-out visitors get nothing.
func (s *Store) OrdersFor(vid string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.visitor(vid).user
	if u == nil || u.Email == "" {
		return nil
	}
	var out []models.Order
	for _, o := range s.orders {
		if strings.EqualFold(o.Shipping.Email, u.Email) {
			out = append(out, o)
		}
	}
	return out
}

// OrderCount reports the ledger size, used by the health endpoint.
func (s *Store) OrderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

// UserCount reports how many accounts have registered this process.
func (s *Store) UserCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}
