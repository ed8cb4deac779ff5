package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigateResetsScrollAndSelection(t *testing.T) {
	s := NavigateHomeAnchor("best-sellers")
	assert.Equal(t, Home, s.View)
	assert.Equal(t, "best-sellers", s.ScrollTarget)

	s = Navigate(Shop)
	assert.Equal(t, Shop, s.View)
	assert.Empty(t, s.ScrollTarget)
	assert.Empty(t, s.ProductID)
}

func TestNavigateProduct(t *testing.T) {
	s := NavigateProduct("2")
	assert.Equal(t, Product, s.View)
	assert.Equal(t, "2", s.ProductID)
}

func TestValid(t *testing.T) {
	for _, v := range []View{Home, Shop, Product, FAQ, PolicyPrivacy} {
		assert.True(t, Valid(v), "view %q", v)
	}
	assert.False(t, Valid(View("admin")))
	assert.False(t, Valid(View("")))
}

func TestInitial(t *testing.T) {
	assert.Equal(t, State{View: Home}, Initial())
}
