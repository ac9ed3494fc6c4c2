package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"catalogview/internal/models"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

var (
	// ErrFetchFailed is returned when the catalog could not be reached or answered with a non-2xx status.
	ErrFetchFailed = errors.New("fetch failed")
	// ErrMalformedResponse is returned when the catalog answered without a data.products array.
	ErrMalformedResponse = errors.New("malformed response")
)

const maxRedirects = 5

// HTTPConfig holds the remote catalog connection settings.
type HTTPConfig struct {
	BaseURL string        // e.g. https://catalog.example.com/api
	Timeout time.Duration // zero means no timeout
}

// HTTPProductRepository reads the product catalog from the remote listing endpoint.
type HTTPProductRepository struct {
	baseURL string
	timeout time.Duration
}

// NewHTTPProductRepository creates a new instance of HTTPProductRepository.
func NewHTTPProductRepository(cfg HTTPConfig) *HTTPProductRepository {
	return &HTTPProductRepository{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		timeout: cfg.Timeout,
	}
}

// catalogEnvelope mirrors { "data": { "products": [...] } }. Pointers tell absent from empty.
type catalogEnvelope struct {
	Data *struct {
		Products *[]models.Product `json:"products"`
	} `json:"data"`
}

// ProductsURL returns the listing endpoint, barter items excluded.
func (r *HTTPProductRepository) ProductsURL() string {
	return r.baseURL + "/products?isBarter=false"
}

// GetAll issues a single GET against the listing endpoint. It never retries.
func (r *HTTPProductRepository) GetAll() ([]models.Product, error) {
	agent := fiber.Get(r.ProductsURL()).MaxRedirectsCount(maxRedirects)
	if r.timeout > 0 {
		agent.Timeout(r.timeout)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, errors.Join(errs...))
	}
	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: catalog responded with status %d", ErrFetchFailed, code)
	}

	var envelope catalogEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if envelope.Data == nil {
		return nil, fmt.Errorf("%w: missing data", ErrMalformedResponse)
	}
	if envelope.Data.Products == nil {
		return nil, fmt.Errorf("%w: missing data.products", ErrMalformedResponse)
	}
	return *envelope.Data.Products, nil
}
