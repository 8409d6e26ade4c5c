// Package backend is the typed HTTP client for the remote product/order/AI
// API. Every call is bounded by the caller's context; failures never
// escape as panics, they come back as wrapped errors the handlers map to
// HTTP statuses.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Hitesh-malik/e-commer-with-ai/internal/entity"
)

var ErrNotFound = errors.New("not found")

// Upload is an image payload attached to a product create/update.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Image is a fetched binary image with its content type.
type Image struct {
	ContentType string
	Data        []byte
}

type Client struct {
	base *url.URL
	hc   *http.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("backend base url: %w", err)
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		base: u,
		hc:   &http.Client{Timeout: timeout},
	}, nil
}

// routeLabel collapses numeric path segments so product ids do not blow
// up metric label cardinality.
func routeLabel(path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		if p == "" {
			continue
		}
		if _, err := strconv.ParseInt(p, 10, 64); err == nil {
			parts[i] = ":id"
		}
	}
	return strings.Join(parts, "/")
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (resp *http.Response, err error) {
	start := time.Now()
	defer func() { observeUpstream(method, routeLabel(path), start, err) }()

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err = c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend %s %s: %w", method, path, err)
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, fmt.Errorf("backend %s %s: %w", method, path, ErrNotFound)
	case resp.StatusCode >= 400:
		defer resp.Body.Close()
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("backend %s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return resp, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("backend %s: decode: %w", path, err)
	}
	return nil
}

func (c *Client) getText(ctx context.Context, path string, query url.Values) (string, error) {
	resp, err := c.do(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("backend %s: read: %w", path, err)
	}
	return string(b), nil
}

func (c *Client) getImage(ctx context.Context, path string, query url.Values) (Image, error) {
	resp, err := c.do(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return Image{}, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Image{}, fmt.Errorf("backend %s: read: %w", path, err)
	}
	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	return Image{ContentType: ct, Data: data}, nil
}

// Products fetches the full catalog.
func (c *Client) Products(ctx context.Context) ([]entity.Product, error) {
	var list []entity.Product
	if err := c.getJSON(ctx, "/products", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// ProductByID fetches one product.
func (c *Client) ProductByID(ctx context.Context, id int64) (entity.Product, error) {
	var p entity.Product
	if err := c.getJSON(ctx, "/product/"+strconv.FormatInt(id, 10), nil, &p); err != nil {
		return entity.Product{}, err
	}
	return p, nil
}

// ProductImage fetches a product's image. A product without an image
// comes back as ErrNotFound; callers treat that as "no image".
func (c *Client) ProductImage(ctx context.Context, id int64) (Image, error) {
	return c.getImage(ctx, "/product/"+strconv.FormatInt(id, 10)+"/image", nil)
}

// CreateProduct posts the product fields plus an optional image as
// multipart form data: an "imageFile" file part and a "product" JSON part.
func (c *Client) CreateProduct(ctx context.Context, p entity.Product, img *Upload) (entity.Product, error) {
	return c.submitProduct(ctx, http.MethodPost, "/product", p, img)
}

// UpdateProduct puts the edited fields, same multipart contract as create.
func (c *Client) UpdateProduct(ctx context.Context, id int64, p entity.Product, img *Upload) (entity.Product, error) {
	return c.submitProduct(ctx, http.MethodPut, "/product/"+strconv.FormatInt(id, 10), p, img)
}

func (c *Client) submitProduct(ctx context.Context, method, path string, p entity.Product, img *Upload) (entity.Product, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if img != nil {
		fw, err := mw.CreateFormFile("imageFile", img.Filename)
		if err != nil {
			return entity.Product{}, err
		}
		if _, err := fw.Write(img.Data); err != nil {
			return entity.Product{}, err
		}
	}

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="product"`)
	hdr.Set("Content-Type", "application/json")
	pw, err := mw.CreatePart(hdr)
	if err != nil {
		return entity.Product{}, err
	}
	if err := json.NewEncoder(pw).Encode(p); err != nil {
		return entity.Product{}, err
	}
	if err := mw.Close(); err != nil {
		return entity.Product{}, err
	}

	resp, err := c.do(ctx, method, path, nil, &buf, mw.FormDataContentType())
	if err != nil {
		return entity.Product{}, err
	}
	defer resp.Body.Close()

	var created entity.Product
	// Some deployments answer with plain text; fall back to the input.
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return p, nil
	}
	return created, nil
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	resp, err := c.do(ctx, http.MethodDelete, "/product/"+strconv.FormatInt(id, 10), nil, nil, "")
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// SmartSearch returns the server-ranked result list for a query.
func (c *Client) SmartSearch(ctx context.Context, query string) ([]entity.Product, error) {
	q := url.Values{"query": {query}}
	var list []entity.Product
	if err := c.getJSON(ctx, "/api/products/smart-search", q, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GenerateDescription asks the AI endpoint for product copy.
func (c *Client) GenerateDescription(ctx context.Context, name, category string) (string, error) {
	q := url.Values{"name": {name}, "category": {category}}
	return c.getText(ctx, "/api/product/generate-description", q)
}

// GenerateImage asks the AI endpoint for a product image.
func (c *Client) GenerateImage(ctx context.Context, name, category, description string) (Image, error) {
	q := url.Values{"name": {name}, "category": {category}, "description": {description}}
	return c.getImage(ctx, "/api/product/generate-image", q)
}

// GenerateProduct asks the AI endpoint for a full product draft.
func (c *Client) GenerateProduct(ctx context.Context, query string) (entity.Product, error) {
	q := url.Values{"query": {query}}
	var p entity.Product
	if err := c.getJSON(ctx, "/api/product/generate-product", q, &p); err != nil {
		return entity.Product{}, err
	}
	return p, nil
}

// Ask forwards a chat message to the assistant.
func (c *Client) Ask(ctx context.Context, message string) (string, error) {
	q := url.Values{"message": {message}}
	return c.getText(ctx, "/api/chat/ask", q)
}

// Orders fetches the order list.
func (c *Client) Orders(ctx context.Context) ([]entity.Order, error) {
	var list []entity.Order
	if err := c.getJSON(ctx, "/orders", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}
