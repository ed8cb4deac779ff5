package main

import (
	"errors"
	"net/http"

	"moso_shop/internal/models"
	"moso_shop/internal/money"
	"moso_shop/internal/payment"
	"moso_shop/internal/store"
	"moso_shop/internal/views"
)

// --- CATALOGUE ---

func (app *application) health(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"orders": app.store.OrderCount(),
		"users":  app.store.UserCount(),
	})
}

func (app *application) listProducts(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, http.StatusOK, app.store.Products())
}

func (app *application) showProduct(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	p, ok := app.store.Product(id)
	if !ok {
		app.clientError(w, http.StatusNotFound, "không tìm thấy sản phẩm")
		return
	}
	app.writeJSON(w, http.StatusOK, map[string]any{
		"product": p,
		"wished":  app.store.InWishlist(app.visitorID(r), id),
	})
}

// --- CART ---

type cartResponse struct {
	Items        []models.CartLine `json:"items"`
	Total        int64             `json:"total"`
	TotalDisplay string            `json:"total_display"`
	Open         bool              `json:"open"`
}

func (app *application) cartResponse(vid string) cartResponse {
	total := app.store.CartTotal(vid)
	return cartResponse{
		Items:        app.store.Cart(vid),
		Total:        total,
		TotalDisplay: money.Format(total),
		Open:         app.store.CartPanelOpen(vid),
	}
}

func (app *application) showCart(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, http.StatusOK, app.cartResponse(app.visitorID(r)))
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (app *application) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if !app.readJSON(w, r, &req) {
		return
	}
	vid := app.visitorID(r)
	if err := app.store.AddItem(vid, req.ProductID, req.Quantity); err != nil {
		app.clientError(w, http.StatusNotFound, "không tìm thấy sản phẩm")
		return
	}
	app.writeJSON(w, http.StatusOK, app.cartResponse(vid))
}

type quantityRequest struct {
	Delta int `json:"delta"`
}

func (app *application) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var req quantityRequest
	if !app.readJSON(w, r, &req) {
		return
	}
	vid := app.visitorID(r)
	app.store.UpdateQuantity(vid, r.URL.Query().Get(":id"), req.Delta)
	app.writeJSON(w, http.StatusOK, app.cartResponse(vid))
}

func (app *application) removeCartItem(w http.ResponseWriter, r *http.Request) {
	vid := app.visitorID(r)
	app.store.RemoveItem(vid, r.URL.Query().Get(":id"))
	app.writeJSON(w, http.StatusOK, app.cartResponse(vid))
}

type panelRequest struct {
	Open bool `json:"open"`
}

func (app *application) setCartPanel(w http.ResponseWriter, r *http.Request) {
	var req panelRequest
	if !app.readJSON(w, r, &req) {
		return
	}
	vid := app.visitorID(r)
	app.store.SetCartPanel(vid, req.Open)
	app.writeJSON(w, http.StatusOK, app.cartResponse(vid))
}

// --- WISHLIST ---

func (app *application) showWishlist(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, http.StatusOK, app.store.Wishlist(app.visitorID(r)))
}

func (app *application) toggleWishlist(w http.ResponseWriter, r *http.Request) {
	wished, err := app.store.ToggleWishlist(app.visitorID(r), r.URL.Query().Get(":id"))
	if err != nil {
		app.clientError(w, http.StatusNotFound, "không tìm thấy sản phẩm")
		return
	}
	app.writeJSON(w, http.StatusOK, map[string]bool{"wished": wished})
}

func (app *application) removeWishlist(w http.ResponseWriter, r *http.Request) {
	vid := app.visitorID(r)
	app.store.RemoveWishlist(vid, r.URL.Query().Get(":id"))
	app.writeJSON(w, http.StatusOK, app.store.Wishlist(vid))
}

// --- CHECKOUT & ORDERS ---

func (app *application) checkout(w http.ResponseWriter, r *http.Request) {
	var req store.CheckoutRequest
	if !app.readJSON(w, r, &req) {
		return
	}

	res, err := app.store.Checkout(r.Context(), app.visitorID(r), req)
	if err != nil {
		var gwErr *payment.Error
		switch {
		case errors.Is(err, store.ErrInvalidShipping):
			app.clientError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, store.ErrUnknownPayment), errors.Is(err, store.ErrEmptyCart):
			app.clientError(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &gwErr):
			// the gateway's message is shown verbatim on the payment step
			app.clientError(w, http.StatusPaymentRequired, gwErr.Message)
		default:
			app.serverError(w, err)
		}
		return
	}
	app.writeJSON(w, http.StatusCreated, res)
}

func (app *application) listOrders(w http.ResponseWriter, r *http.Request) {
	orders := app.store.OrdersFor(app.visitorID(r))
	if orders == nil {
		orders = []models.Order{}
	}
	app.writeJSON(w, http.StatusOK, orders)
}

type lookupRequest struct {
	OrderID string `json:"order_id"`
	Email   string `json:"email"`
}

func (app *application) lookupOrder(w http.ResponseWriter, r *http.Request) {
	var req lookupRequest
	if !app.readJSON(w, r, &req) {
		return
	}
	order, err := app.store.Lookup(req.OrderID, req.Email)
	if err != nil {
		// one generic miss message, no hint whether id or email was wrong
		app.clientError(w, http.StatusNotFound, "Không tìm thấy đơn hàng. Vui lòng kiểm tra lại mã đơn và email.")
		return
	}
	app.writeJSON(w, http.StatusOK, order)
}

// --- SESSION ---

type loginRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (app *application) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !app.readJSON(w, r, &req) {
		return
	}
	u := app.store.Login(app.visitorID(r), req.Name, req.Email)
	app.writeJSON(w, http.StatusOK, u)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (app *application) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !app.readJSON(w, r, &req) {
		return
	}
	u, err := app.store.Register(app.visitorID(r), req.Name, req.Email, req.Password)
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.writeJSON(w, http.StatusCreated, u)
}

func (app *application) logout(w http.ResponseWriter, r *http.Request) {
	app.store.Logout(app.visitorID(r))
	app.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (app *application) showSession(w http.ResponseWriter, r *http.Request) {
	vid := app.visitorID(r)
	resp := map[string]any{"authenticated": false}
	if u, ok := app.store.CurrentUser(vid); ok {
		resp["authenticated"] = true
		resp["user"] = u
	}
	if ship, ok := app.store.LastShipping(vid); ok {
		resp["last_shipping"] = ship
	}
	app.writeJSON(w, http.StatusOK, resp)
}

// --- VIEW ROUTER ---

func (app *application) showView(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, http.StatusOK, app.store.ViewState(app.visitorID(r)))
}

func (app *application) setView(w http.ResponseWriter, r *http.Request) {
	var req views.State
	if !app.readJSON(w, r, &req) {
		return
	}
	vid := app.visitorID(r)
	if err := app.store.SetViewState(vid, req); err != nil {
		app.clientError(w, http.StatusBadRequest, "unknown view")
		return
	}
	app.writeJSON(w, http.StatusOK, app.store.ViewState(vid))
}
