package store

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"moso_shop/internal/models"
	"moso_shop/internal/notify"
)

// Login sets the visitor's user identity. There is no credential store to
// check against, so any name and email are accepted as-is.
func (s *Store) Login(vid, name, email string) models.User {
	u := models.User{Name: name, Email: email, CreatedAt: time.Now()}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visitor(vid).user = &u
	return u
}

// Register creates an in-memory account, signs the visitor in and queues
// a welcome email. The email is fire-and-forget: a send failure is logged
// by the mail worker and never blocks registration.
func (s *Store) Register(vid, name, email, password string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return models.User{}, err
	}

	u := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	s.mu.Lock()
	s.users = append(s.users, u)
	s.visitor(vid).user = &u
	s.mu.Unlock()

	s.enqueueMail(notify.TemplateWelcome, map[string]string{
		"name":  name,
		"email": email,
		"time":  u.CreatedAt.Format(models.OrderTimeFormat),
	})
	return u, nil
}

// Logout clears the visitor's user identity. Cart and wishlist survive.
func (s *Store) Logout(vid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visitor(vid).user = nil
}

// CurrentUser returns the signed-in user, if any.
func (s *Store) CurrentUser(vid string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.visitor(vid).user
	if u == nil {
		return models.User{}, false
	}
	return *u, true
}
