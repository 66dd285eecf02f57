package services

import (
	"strconv"

	"github.com/go-playground/validator/v10"

	"chocolatudo/internal/models"
	"chocolatudo/internal/repositories"
)

// ImageDimensions describes the fixed display sizes a product image is
// rendered at, per device class.
type ImageDimensions struct {
	Desktop struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"desktop"`
	Tablet struct {
		Width int `json:"width"`
	} `json:"tablet"`
	Mobile struct {
		MaxWidth int `json:"maxWidth"`
	} `json:"mobile"`
}

// ThumbnailSize describes gallery thumbnail sizes per device class.
type ThumbnailSize struct {
	Desktop int `json:"desktop"`
	Mobile  int `json:"mobile"`
}

// PrimaryImageDisplay is the display shape of a product's main image.
type PrimaryImageDisplay struct {
	URL        string          `json:"url"`
	AltText    string          `json:"altText"`
	Dimensions ImageDimensions `json:"dimensions"`
}

// SecondaryImageDisplay is the display shape of a gallery image.
type SecondaryImageDisplay struct {
	URL           string        `json:"url"`
	AltText       string        `json:"altText"`
	ThumbnailSize ThumbnailSize `json:"thumbnailSize"`
}

// ProductDisplayResponse is a product reshaped for the storefront: price
// formatted as Brazilian Real, image metadata carrying display dimensions
// instead of native pixel sizes.
type ProductDisplayResponse struct {
	ID              int                     `json:"id"`
	Name            string                  `json:"name"`
	Price           string                  `json:"price"`
	Description     string                  `json:"description"`
	PrimaryImage    PrimaryImageDisplay     `json:"primaryImage"`
	SecondaryImages []SecondaryImageDisplay `json:"secondaryImages"`
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo     repositories.ProductRepository
	validate *validator.Validate
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, validate *validator.Validate) *ProductService {
	return &ProductService{
		repo:     repo,
		validate: validate,
	}
}

// GetPrimary retrieves the primary product for the landing page.
func (s *ProductService) GetPrimary() (*ProductDisplayResponse, error) {
	product, err := s.repo.GetPrimary()
	if err != nil {
		return nil, newNotFound("Primary product not found")
	}
	return displayProduct(product), nil
}

// GetByID retrieves a product by its raw id parameter. The id must be
// coercible to a positive integer; this is checked before any store
// lookup.
func (s *ProductService) GetByID(rawID string) (*ProductDisplayResponse, error) {
	id, err := strconv.Atoi(rawID)
	if err != nil || id <= 0 {
		return nil, newValidationError([]FieldError{
			{Field: "id", Message: "id must be a positive integer"},
		})
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, newNotFound("Product not found")
	}
	return displayProduct(product), nil
}

// GetAll retrieves all products in their stored form.
func (s *ProductService) GetAll() ([]models.Product, error) {
	return s.repo.GetAll()
}

// Create validates and stores a new product. Not reachable from the
// public storefront routes.
func (s *ProductService) Create(product *models.Product) error {
	if err := s.validate.Struct(product); err != nil {
		return newValidationError(fieldErrors(err))
	}
	if !product.Price.IsPositive() {
		return newValidationError([]FieldError{
			{Field: "price", Message: "price must be greater than zero"},
		})
	}
	return s.repo.Create(product)
}

// Update validates and replaces an existing product.
func (s *ProductService) Update(product *models.Product) error {
	if err := s.validate.Struct(product); err != nil {
		return newValidationError(fieldErrors(err))
	}
	if !product.Price.IsPositive() {
		return newValidationError([]FieldError{
			{Field: "price", Message: "price must be greater than zero"},
		})
	}
	if err := s.repo.Update(product); err != nil {
		return newNotFound("Product not found")
	}
	return nil
}

// Delete removes a product. The primary product is refused by the store.
func (s *ProductService) Delete(id int) error {
	return s.repo.Delete(id)
}

func displayProduct(product *models.Product) *ProductDisplayResponse {
	resp := &ProductDisplayResponse{
		ID:              product.ID,
		Name:            product.Name,
		Price:           models.FormatBRL(product.Price),
		Description:     product.Description,
		SecondaryImages: make([]SecondaryImageDisplay, 0, len(product.SecondaryImages)),
	}

	resp.PrimaryImage.URL = product.PrimaryImage.URL
	resp.PrimaryImage.AltText = product.PrimaryImage.AltText
	resp.PrimaryImage.Dimensions.Desktop.Width = models.ImageDesktopWidth
	resp.PrimaryImage.Dimensions.Desktop.Height = models.ImageDesktopHeight
	resp.PrimaryImage.Dimensions.Tablet.Width = models.ImageTabletWidth
	resp.PrimaryImage.Dimensions.Mobile.MaxWidth = models.ImageMobileMaxWidth

	for _, img := range product.SecondaryImages {
		resp.SecondaryImages = append(resp.SecondaryImages, SecondaryImageDisplay{
			URL:     img.URL,
			AltText: img.AltText,
			ThumbnailSize: ThumbnailSize{
				Desktop: models.ImageThumbnailSize,
				Mobile:  models.ImageThumbnailSizeMobile,
			},
		})
	}
	return resp
}
