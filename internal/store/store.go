// Package store holds the whole application state behind typed actions:
// catalogue, per-visitor cart and wishlist, the order ledger, sessions and
// the view router position. Nothing is persisted; the ledger resets to
// its single seeded demo order on every restart.
package store

import (
	"log"
	"os"
	"sync"
	"time"

	"moso_shop/internal/models"
	"moso_shop/internal/money"
	"moso_shop/internal/notify"
	"moso_shop/internal/payment"
	"moso_shop/internal/views"
)

// Options configures a Store. Catalog is required; the rest default to
// safe no-op values so tests can construct a Store with just a catalogue.
type Options struct {
	Catalog   []models.Product
	Tokenizer payment.Tokenizer
	Mailer    notify.Mailer
	ErrorLog  *log.Logger

	// ProcessingDelay simulates payment processing on every successful
	// checkout path. Tests set it to zero.
	ProcessingDelay time.Duration
}

// Store is the single top-level state container.
type Store struct {
	mu sync.Mutex

	catalog []models.Product
	byID    map[string]models.Product

	orders []models.Order // newest first
	users  []models.User

	visitors map[string]*visitorState

	tokenizer payment.Tokenizer
	mailer    notify.Mailer
	errorLog  *log.Logger
	delay     time.Duration

	mailQueue chan mailJob
	done      chan struct{}
}

// visitorState is everything scoped to one browser session.
type visitorState struct {
	cart     []models.CartLine
	wishlist []string // product ids, insertion order
	cartOpen bool

	user         *models.User
	lastShipping *models.ShippingInfo

	view views.State
}

func New(opts Options) *Store {
	s := &Store{
		catalog:   opts.Catalog,
		byID:      make(map[string]models.Product, len(opts.Catalog)),
		visitors:  make(map[string]*visitorState),
		tokenizer: opts.Tokenizer,
		mailer:    opts.Mailer,
		errorLog:  opts.ErrorLog,
		delay:     opts.ProcessingDelay,
		mailQueue: make(chan mailJob, 16),
		done:      make(chan struct{}),
	}
	if s.errorLog == nil {
		s.errorLog = log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime)
	}
	for _, p := range opts.Catalog {
		s.byID[p.ID] = p
	}
	s.orders = append(s.orders, seedOrder())
	go s.mailWorker()
	return s
}

// Close stops the background mail worker. Queued messages are dropped.
func (s *Store) Close() {
	close(s.done)
}

// seedOrder is the one demo record the ledger starts with, used by the
// order-lookup page before any real checkout has happened.
func seedOrder() models.Order {
	items := []models.CartLine{{
		Product: models.Product{
			ID:       "1",
			Name:     "Chè dưỡng nhan tự nóng - Vị truyền thống",
			Price:    "189.000đ",
			ImageURL: "/static/img/che-truyen-thong.jpg",
			Category: "che-duong-nhan",
		},
		Quantity: 2,
	}}
	var total int64
	for _, line := range items {
		total += money.Parse(line.Product.Price) * int64(line.Quantity)
	}
	return models.Order{
		ID:        "882194",
		CreatedAt: "09:15 12/08/2026",
		Status:    models.StatusPending,
		Items:     items,
		Total:     total,
		Shipping: models.ShippingInfo{
			FullName: "Nguyễn Thu Trang",
			Phone:    "0901234567",
			Address:  "12 Nguyễn Huệ, Quận 1",
			City:     "Hồ Chí Minh",
			Email:    "khachhang@moso.vn",
		},
		Payment: models.PayCOD.Label(),
	}
}

// Products returns the catalogue.
func (s *Store) Products() []models.Product {
	cp := make([]models.Product, len(s.catalog))
	copy(cp, s.catalog)
	return cp
}

// Product looks up one catalogue record by id.
func (s *Store) Product(id string) (models.Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// visitor returns the state for a session token, creating it on first use.
// Callers must hold s.mu.
func (s *Store) visitor(vid string) *visitorState {
	vs, ok := s.visitors[vid]
	if !ok {
		vs = &visitorState{view: views.Initial()}
		s.visitors[vid] = vs
	}
	return vs
}

// ViewState returns the visitor's router position.
func (s *Store) ViewState(vid string) views.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visitor(vid).view
}

// SetViewState moves the visitor's router. Unknown views are rejected.
func (s *Store) SetViewState(vid string, vs views.State) error {
	if !views.Valid(vs.View) {
		return ErrUnknownView
	}
	if vs.View != views.Home {
		vs.ScrollTarget = ""
	}
	if vs.View != views.Product {
		vs.ProductID = ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visitor(vid).view = vs
	return nil
}
