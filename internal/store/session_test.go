package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"moso_shop/internal/notify"
)

func TestLoginLogout(t *testing.T) {
	s := newTestStore(t, Options{})

	_, ok := s.CurrentUser("v")
	assert.False(t, ok)

	// any identity is accepted, there is nothing to verify against
	u := s.Login("v", "Trang", "trang@example.com")
	assert.Equal(t, "Trang", u.Name)

	got, ok := s.CurrentUser("v")
	require.True(t, ok)
	assert.Equal(t, "trang@example.com", got.Email)

	s.Logout("v")
	_, ok = s.CurrentUser("v")
	assert.False(t, ok)
}

func TestLogoutKeepsCartAndWishlist(t *testing.T) {
	s := newTestStore(t, Options{})
	s.Login("v", "Trang", "trang@example.com")
	require.NoError(t, s.AddItem("v", "1", 1))
	_, err := s.ToggleWishlist("v", "2")
	require.NoError(t, err)

	s.Logout("v")
	assert.Len(t, s.Cart("v"), 1)
	assert.True(t, s.InWishlist("v", "2"))
}

func TestRegister(t *testing.T) {
	mailer := newFakeMailer()
	s := newTestStore(t, Options{Mailer: mailer})

	u, err := s.Register("v", "Trang", "trang@example.com", "mật-khẩu-123")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("mật-khẩu-123")))

	got, ok := s.CurrentUser("v")
	require.True(t, ok)
	assert.Equal(t, "trang@example.com", got.Email)

	select {
	case mail := <-mailer.sent:
		assert.Equal(t, notify.TemplateWelcome, mail.template)
		assert.Equal(t, "Trang", mail.params["name"])
	case <-time.After(2 * time.Second):
		t.Fatal("welcome email never sent")
	}
}

func TestRegisterMailFailureDoesNotBlock(t *testing.T) {
	mailer := newFakeMailer()
	mailer.err = assert.AnError
	s := newTestStore(t, Options{Mailer: mailer})

	_, err := s.Register("v", "Trang", "trang@example.com", "pw")
	require.NoError(t, err)
	_, ok := s.CurrentUser("v")
	assert.True(t, ok)
}
