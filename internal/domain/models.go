package domain

import "time"

// Currency is the fixed label attached to every catalog view. Prices are
// stored and served in Tunisian dinar; no conversion happens anywhere.
const Currency = "TND"

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusArchived = "archived"
)

type Category struct {
	ID        string
	Slug      string
	Name      Localized
	DeletedAt *time.Time
	CreatedAt time.Time
}

type Color struct {
	ID        string
	Name      Localized
	Hex       string
	DeletedAt *time.Time
}

type Size struct {
	ID        string
	Name      string
	DeletedAt *time.Time
}

type Product struct {
	ID         string
	CategoryID string
	Name       Localized
	Slug       string
	BasePrice  float64
	Status     string // active | inactive | archived
	SoldCount  int
	// ImageURL is the legacy single-image column kept for records that
	// predate the product_images table.
	ImageURL  string
	DeletedAt *time.Time
	CreatedAt time.Time
}

type ProductVariant struct {
	ID          string
	ProductID   string
	SizeID      string
	ColorID     string
	Price       *float64 // overrides the product base price when set
	Stock       int
	IsAvailable bool
	DeletedAt   *time.Time
}

type ProductImage struct {
	ID        string
	ProductID string
	VariantID string
	ImageURL  string
	IsMain    bool
	Position  int
}

type Discount struct {
	ID              string
	ProductID       string
	DiscountPercent float64 // always within [0,100]
	StartsAt        *time.Time
	EndsAt          *time.Time
	Active          bool
	CreatedAt       time.Time
}

// Promotion is the store-wide banner, not tied to a single product.
// A promotion without EndsAt is "ongoing" and is never rendered with a
// countdown.
type Promotion struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Subtitle        string     `json:"subtitle,omitempty"`
	DiscountPercent float64    `json:"discount_percent"`
	StartsAt        *time.Time `json:"starts_at,omitempty"`
	EndsAt          *time.Time `json:"ends_at,omitempty"`
	Active          bool       `json:"active"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Review rows come from heterogeneous upstream storage: Rating may hold a
// number, a string, or nothing at all. The rating aggregator decides what
// counts as a valid vote.
type Review struct {
	ProductID string `db:"product_id"`
	Rating    any    `db:"rating"`
}

// PriceInfo is the result of applying a discount to a base price.
type PriceInfo struct {
	FinalPrice  float64
	Savings     float64
	HasDiscount bool
}

// CatalogView is the denormalized record consumed by listing pages.
type CatalogView struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Slug            string     `json:"slug"`
	BasePrice       float64    `json:"base_price"`
	PriceCents      float64    `json:"price_cents"` // historical alias of base_price
	FinalPrice      float64    `json:"final_price"`
	Savings         float64    `json:"savings"`
	HasDiscount     bool       `json:"has_discount"`
	ImageURL        string     `json:"image_url"`
	CategoryID      string     `json:"category_id"`
	CategorySlug    string     `json:"category_slug"`
	Currency        string     `json:"currency"`
	DiscountPercent *float64   `json:"discount_percent,omitempty"`
	PromoEndDate    *time.Time `json:"promo_end_date,omitempty"`
	SoldCount       int        `json:"sold_count"`
	Rating          float64    `json:"rating"`
	ReviewCount     int        `json:"review_count"`
}
