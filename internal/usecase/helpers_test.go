package usecase

import (
	"context"
	"errors"

	"github.com/Hitesh-malik/e-commer-with-ai/internal/adapter/backend"
	"github.com/Hitesh-malik/e-commer-with-ai/internal/cart"
	"github.com/Hitesh-malik/e-commer-with-ai/internal/entity"
)

type fakeStore struct {
	lines   map[string][]cart.Line
	saveErr error
	saves   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{lines: make(map[string][]cart.Line)}
}

func (s *fakeStore) Load(_ context.Context, sid string) []cart.Line {
	return s.lines[sid]
}

func (s *fakeStore) Save(_ context.Context, sid string, lines []cart.Line) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.lines[sid] = lines
	return nil
}

var errFakeUnset = errors.New("fake method not set")

type fakeBackend struct {
	products     func(ctx context.Context) ([]entity.Product, error)
	productByID  func(ctx context.Context, id int64) (entity.Product, error)
	productImage func(ctx context.Context, id int64) (backend.Image, error)
	smartSearch  func(ctx context.Context, query string) ([]entity.Product, error)
	orders       func(ctx context.Context) ([]entity.Order, error)
}

func (f *fakeBackend) Products(ctx context.Context) ([]entity.Product, error) {
	if f.products == nil {
		return nil, errFakeUnset
	}
	return f.products(ctx)
}

func (f *fakeBackend) ProductByID(ctx context.Context, id int64) (entity.Product, error) {
	if f.productByID == nil {
		return entity.Product{}, errFakeUnset
	}
	return f.productByID(ctx, id)
}

func (f *fakeBackend) ProductImage(ctx context.Context, id int64) (backend.Image, error) {
	if f.productImage == nil {
		return backend.Image{}, errFakeUnset
	}
	return f.productImage(ctx, id)
}

func (f *fakeBackend) CreateProduct(_ context.Context, p entity.Product, _ *backend.Upload) (entity.Product, error) {
	p.ID = 100
	return p, nil
}

func (f *fakeBackend) UpdateProduct(_ context.Context, id int64, p entity.Product, _ *backend.Upload) (entity.Product, error) {
	p.ID = id
	return p, nil
}

func (f *fakeBackend) DeleteProduct(context.Context, int64) error { return nil }

func (f *fakeBackend) SmartSearch(ctx context.Context, query string) ([]entity.Product, error) {
	if f.smartSearch == nil {
		return nil, errFakeUnset
	}
	return f.smartSearch(ctx, query)
}

func (f *fakeBackend) GenerateDescription(context.Context, string, string) (string, error) {
	return "generated copy", nil
}

func (f *fakeBackend) GenerateImage(context.Context, string, string, string) (backend.Image, error) {
	return backend.Image{ContentType: "image/png", Data: []byte("png")}, nil
}

func (f *fakeBackend) GenerateProduct(_ context.Context, query string) (entity.Product, error) {
	return entity.Product{Name: query}, nil
}

func (f *fakeBackend) Ask(_ context.Context, message string) (string, error) {
	return "re: " + message, nil
}

func (f *fakeBackend) Orders(ctx context.Context) ([]entity.Order, error) {
	if f.orders == nil {
		return nil, errFakeUnset
	}
	return f.orders(ctx)
}
