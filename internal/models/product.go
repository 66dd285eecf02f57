package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Display dimension constants applied when shaping a product for the
// storefront. Stored images keep their native resolution; these are the
// sizes the frontend renders at.
const (
	ImageDesktopWidth        = 600
	ImageDesktopHeight       = 400
	ImageTabletWidth         = 450
	ImageMobileMaxWidth      = 400
	ImageThumbnailSize       = 100
	ImageThumbnailSizeMobile = 80
)

// Stored image constraints.
const (
	ImageMinWidth      = 1200
	ImageMinHeight     = 800
	MaxSecondaryImages = 4
)

// ProductImage represents a stored product photo.
type ProductImage struct {
	URL       string `json:"url" validate:"required,uri"`
	AltText   string `json:"altText" validate:"max=125"`
	Width     int    `json:"width" validate:"min=1200"`
	Height    int    `json:"height" validate:"min=800"`
	Format    string `json:"format" validate:"oneof=jpg jpeg png webp"`
	IsPrimary bool   `json:"isPrimary"`
}

// Product represents a product in the store.
type Product struct {
	ID              int             `json:"id"`
	Name            string          `json:"name" validate:"required,min=1,max=50"`
	Price           decimal.Decimal `json:"price"`
	Description     string          `json:"description" validate:"required,min=100,max=250"`
	PrimaryImage    ProductImage    `json:"primaryImage" validate:"required"`
	SecondaryImages []ProductImage  `json:"secondaryImages" validate:"max=4,dive"`
	DateCreated     time.Time       `json:"dateCreated"`
	DateModified    time.Time       `json:"dateModified"`
}

// Seed values for the primary product (id 1) shown on the landing page.
const (
	PrimaryProductID          = 1
	DefaultProductName        = "Bolo de Chocolate Artesanal"
	DefaultProductDescription = "Delicioso bolo de chocolate artesanal feito com ingredientes selecionados e cobertura especial. Perfeito para qualquer ocasião."
	DefaultProductImageURL    = "/images/bolo-chocolate.jpg"
	DefaultProductAltText     = "Bolo de Chocolate Artesanal com cobertura especial"
)

// DefaultProductPrice is the seeded price of the primary product.
var DefaultProductPrice = decimal.NewFromFloat(45.0)
