package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/Hitesh-malik/e-commer-with-ai/internal/adapter/backend"
	"github.com/Hitesh-malik/e-commer-with-ai/internal/entity"
)

const maxImageBytes = 5 * 1024 * 1024

// ProductForm is the raw add/edit form submission. Numeric fields arrive
// as strings so validation can point at the exact field instead of
// failing the decode wholesale.
type ProductForm struct {
	Name             string
	Brand            string
	Description      string
	Price            string
	Category         string
	StockQuantity    string
	ReleaseDate      string
	ProductAvailable bool
}

// ProductManager drives the add/edit/delete product forms: validate the
// structured input, then delegate persistence to the remote API.
type ProductManager struct {
	backend Backend
}

func NewProductManager(b Backend) *ProductManager {
	return &ProductManager{backend: b}
}

func (m *ProductManager) Create(ctx context.Context, form ProductForm, img *backend.Upload) (entity.Product, error) {
	p, err := validateForm(form, img)
	if err != nil {
		return entity.Product{}, err
	}
	return m.backend.CreateProduct(ctx, p, img)
}

func (m *ProductManager) Update(ctx context.Context, id int64, form ProductForm, img *backend.Upload) (entity.Product, error) {
	p, err := validateForm(form, img)
	if err != nil {
		return entity.Product{}, err
	}
	p.ID = id
	return m.backend.UpdateProduct(ctx, id, p, img)
}

func (m *ProductManager) Delete(ctx context.Context, id int64) error {
	return m.backend.DeleteProduct(ctx, id)
}

func validateForm(form ProductForm, img *backend.Upload) (entity.Product, error) {
	fields := FieldErrors{}

	name := strings.TrimSpace(form.Name)
	if name == "" {
		fields["name"] = "Product name is required"
	}
	if strings.TrimSpace(form.Brand) == "" {
		fields["brand"] = "Brand is required"
	}

	var price float64
	if form.Price == "" {
		fields["price"] = "Price is required"
	} else if f, err := strconv.ParseFloat(form.Price, 64); err != nil {
		fields["price"] = "Price must be a number"
	} else if f <= 0 {
		fields["price"] = "Price must be greater than zero"
	} else {
		price = f
	}

	if form.Category == "" {
		fields["category"] = "Please select a category"
	}

	var stock int
	if form.StockQuantity == "" {
		fields["stockQuantity"] = "Stock quantity is required"
	} else if n, err := strconv.Atoi(form.StockQuantity); err != nil {
		fields["stockQuantity"] = "Stock quantity must be a number"
	} else if n < 0 {
		fields["stockQuantity"] = "Stock quantity cannot be negative"
	} else {
		stock = n
	}

	if form.ReleaseDate == "" {
		fields["releaseDate"] = "Release date is required"
	}

	if img != nil {
		if img.ContentType != "image/jpeg" && img.ContentType != "image/png" {
			fields["image"] = "Please select a valid image file (JPEG or PNG)"
		} else if len(img.Data) > maxImageBytes {
			fields["image"] = "Image size should be less than 5MB"
		}
	}

	if len(fields) > 0 {
		return entity.Product{}, fields
	}

	return entity.Product{
		Name:             name,
		Brand:            strings.TrimSpace(form.Brand),
		Description:      form.Description,
		Price:            entity.Price(price),
		Category:         form.Category,
		StockQuantity:    stock,
		ReleaseDate:      form.ReleaseDate,
		ProductAvailable: form.ProductAvailable,
	}, nil
}
