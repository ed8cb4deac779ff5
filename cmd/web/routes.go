package main

import (
	"net/http"

	"github.com/bmizerany/pat"
)

func (app *application) routes() http.Handler {
	mux := pat.New()

	mux.Get("/api/health", http.HandlerFunc(app.health))
	mux.Get("/api/products", http.HandlerFunc(app.listProducts))
	mux.Get("/api/products/:id", http.HandlerFunc(app.showProduct))

	mux.Get("/api/cart", http.HandlerFunc(app.showCart))
	mux.Post("/api/cart/items", http.HandlerFunc(app.addCartItem))
	mux.Post("/api/cart/items/:id", http.HandlerFunc(app.updateCartItem))
	mux.Del("/api/cart/items/:id", http.HandlerFunc(app.removeCartItem))
	mux.Post("/api/cart/panel", http.HandlerFunc(app.setCartPanel))

	mux.Get("/api/wishlist", http.HandlerFunc(app.showWishlist))
	mux.Post("/api/wishlist/toggle/:id", http.HandlerFunc(app.toggleWishlist))
	mux.Del("/api/wishlist/:id", http.HandlerFunc(app.removeWishlist))

	mux.Post("/api/checkout", http.HandlerFunc(app.checkout))
	mux.Get("/api/orders", http.HandlerFunc(app.listOrders))
	mux.Post("/api/orders/lookup", http.HandlerFunc(app.lookupOrder))

	mux.Post("/api/login", http.HandlerFunc(app.login))
	mux.Post("/api/register", http.HandlerFunc(app.register))
	mux.Post("/api/logout", http.HandlerFunc(app.logout))
	mux.Get("/api/session", http.HandlerFunc(app.showSession))

	mux.Get("/api/view", http.HandlerFunc(app.showView))
	mux.Post("/api/view", http.HandlerFunc(app.setView))

	mux.Get("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("./ui/static/"))))

	return app.session.LoadAndSave(app.logRequest(app.recoverPanic(mux)))
}
