package store

import "moso_shop/internal/models"

// ToggleWishlist adds the product when absent and removes it when
// present. It returns whether the product is wished after the call.
func (s *Store) ToggleWishlist(vid, productID string) (bool, error) {
	if _, ok := s.byID[productID]; !ok {
		return false, ErrUnknownProduct
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	vs := s.visitor(vid)
	for i, id := range vs.wishlist {
		if id == productID {
			vs.wishlist = append(vs.wishlist[:i], vs.wishlist[i+1:]...)
			return false, nil
		}
	}
	vs.wishlist = append(vs.wishlist, productID)
	return true, nil
}

// RemoveWishlist unconditionally drops a product id from the wishlist.
func (s *Store) RemoveWishlist(vid, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vs := s.visitor(vid)
	for i, id := range vs.wishlist {
		if id == productID {
			vs.wishlist = append(vs.wishlist[:i], vs.wishlist[i+1:]...)
			return
		}
	}
}

// InWishlist reports membership, used to render the liked state on
// product cards.
func (s *Store) InWishlist(vid, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.visitor(vid).wishlist {
		if id == productID {
			return true
		}
	}
	return false
}

// Wishlist resolves the wished ids against the catalogue, in insertion
// order. Ids that no longer resolve are skipped.
func (s *Store) Wishlist(vid string) []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	vs := s.visitor(vid)
	out := make([]models.Product, 0, len(vs.wishlist))
	for _, id := range vs.wishlist {
		if p, ok := s.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out
}
