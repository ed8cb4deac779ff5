package models

import "time"

// Product is an immutable catalogue record. Prices are kept in the
// localized display form used across the shop (e.g. "189.000đ"); use the
// money package to obtain integer VND amounts.
type Product struct {
	ID          string   `bson:"_id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description" json:"description"`
	Price       string   `bson:"price" json:"price"`
	ImageURL    string   `bson:"image_url" json:"image_url"`
	Category    string   `bson:"category,omitempty" json:"category,omitempty"`
	Ingredients []string `bson:"ingredients,omitempty" json:"ingredients,omitempty"`
	Benefits    []string `bson:"benefits,omitempty" json:"benefits,omitempty"`
	Usage       []string `bson:"usage,omitempty" json:"usage,omitempty"`
}

// CartLine pairs a product snapshot with a quantity. Quantity is always
// at least 1; the cart never holds two lines for the same product id.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// ShippingInfo is the shipping snapshot captured at checkout. FullName,
// Phone, Address and City are required; Email and Note are optional.
type ShippingInfo struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Email    string `json:"email,omitempty"`
	Note     string `json:"note,omitempty"`
}

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
)

// PaymentMethod selects one of the three checkout payment paths.
type PaymentMethod string

const (
	PayCard PaymentMethod = "card"
	PayCOD  PaymentMethod = "cod"
	PayBank PaymentMethod = "bank"
)

// Label returns the customer-facing name printed on order records.
func (m PaymentMethod) Label() string {
	switch m {
	case PayCard:
		return "Thẻ tín dụng/ghi nợ"
	case PayCOD:
		return "Thanh toán khi nhận hàng (COD)"
	case PayBank:
		return "Chuyển khoản ngân hàng"
	}
	return string(m)
}

// Valid reports whether m is one of the supported methods.
func (m PaymentMethod) Valid() bool {
	return m == PayCard || m == PayCOD || m == PayBank
}

// Order is an immutable snapshot taken at checkout. Items are a deep copy
// of the cart; Total is in integer VND. IDs are random 6-digit strings and
// are not guaranteed unique. CreatedAt holds the localized display string
// shown to customers.
type Order struct {
	ID        string       `json:"id"`
	CreatedAt string       `json:"created_at"`
	Status    OrderStatus  `json:"status"`
	Items     []CartLine   `json:"items"`
	Total     int64        `json:"total"`
	Shipping  ShippingInfo `json:"shipping"`
	Payment   string       `json:"payment"`
}

// User is an in-memory account record. Accounts only exist for the
// lifetime of the process.
type User struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// OrderTimeFormat is the localized layout used for Order.CreatedAt.
const OrderTimeFormat = "15:04 02/01/2006"
