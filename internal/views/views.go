// Package views models the client view router: a finite set of named
// pages plus an optional scroll anchor on the home view. Navigation is
// purely in-memory; there is no URL sync.
package views

// View names one renderable page.
type View string

const (
	Home          View = "home"
	Shop          View = "shop"
	Product       View = "product"
	About         View = "about"
	FAQ           View = "faq"
	Blog          View = "blog"
	Rewards       View = "rewards"
	Wishlist      View = "wishlist"
	Orders        View = "orders"
	OrderLookup   View = "order-lookup"
	Contact       View = "contact"
	PolicyShip    View = "policy-shipping"
	PolicyReturn  View = "policy-returns"
	PolicyPrivacy View = "policy-privacy"
	Terms         View = "terms"
)

var all = map[View]bool{
	Home: true, Shop: true, Product: true, About: true, FAQ: true,
	Blog: true, Rewards: true, Wishlist: true, Orders: true,
	OrderLookup: true, Contact: true, PolicyShip: true,
	PolicyReturn: true, PolicyPrivacy: true, Terms: true,
}

// Valid reports whether v names a known view.
func Valid(v View) bool { return all[v] }

// State is the router position. ProductID is set only on the product
// view; ScrollTarget only on the home view, for in-page anchors.
type State struct {
	View         View   `json:"view"`
	ProductID    string `json:"product_id,omitempty"`
	ScrollTarget string `json:"scroll_target,omitempty"`
}

// Initial returns the router position on first load.
func Initial() State { return State{View: Home} }

// Navigate moves to v. Any previous product selection or scroll anchor is
// dropped, which models the scroll-to-top on page change.
func Navigate(v View) State { return State{View: v} }

// NavigateProduct opens the product detail view for the given id.
func NavigateProduct(id string) State {
	return State{View: Product, ProductID: id}
}

// NavigateHomeAnchor opens the home view scrolled to an in-page anchor.
func NavigateHomeAnchor(anchor string) State {
	return State{View: Home, ScrollTarget: anchor}
}
