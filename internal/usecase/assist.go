package usecase

import (
	"context"
	"strings"

	"github.com/Hitesh-malik/e-commer-with-ai/internal/adapter/backend"
	"github.com/Hitesh-malik/e-commer-with-ai/internal/entity"
)

// Assist fronts the AI content endpoints. Generation needs enough
// context to prompt with: a description needs name and category, an
// image additionally needs the description.
type Assist struct {
	backend Backend
}

func NewAssist(b Backend) *Assist {
	return &Assist{backend: b}
}

func (a *Assist) Description(ctx context.Context, name, category string) (string, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(category) == "" {
		return "", ErrBadQuery
	}
	return a.backend.GenerateDescription(ctx, name, category)
}

func (a *Assist) Image(ctx context.Context, name, category, description string) (backend.Image, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(category) == "" || strings.TrimSpace(description) == "" {
		return backend.Image{}, ErrBadQuery
	}
	return a.backend.GenerateImage(ctx, name, category, description)
}

func (a *Assist) Product(ctx context.Context, query string) (entity.Product, error) {
	if strings.TrimSpace(query) == "" {
		return entity.Product{}, ErrBadQuery
	}
	return a.backend.GenerateProduct(ctx, query)
}

func (a *Assist) Chat(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrBadQuery
	}
	return a.backend.Ask(ctx, message)
}
