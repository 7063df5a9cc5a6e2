package model

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	customErrors "github.com/roysitumorang/storefront/errors"
)

type (
	Product struct {
		RowNo       int64     `json:"-" yaml:"-"`
		ID          string    `json:"id" yaml:"id"`
		Name        string    `json:"name" yaml:"name"`
		Slug        string    `json:"slug" yaml:"slug"`
		Price       int64     `json:"price" yaml:"price"`
		Featured    bool      `json:"featured" yaml:"featured"`
		Image       string    `json:"image" yaml:"image"`
		Description string    `json:"description" yaml:"description"`
		Category    string    `json:"category" yaml:"category"`
		Company     string    `json:"company" yaml:"company"`
		Colors      []string  `json:"colors" yaml:"colors"`
		Shipping    bool      `json:"shipping" yaml:"shipping"`
		Stock       int64     `json:"stock" yaml:"stock"`
		Stars       float64   `json:"stars" yaml:"stars"`
		Reviews     int64     `json:"reviews" yaml:"reviews"`
		CreatedAt   time.Time `json:"-" yaml:"-"`
		UpdatedAt   time.Time `json:"-" yaml:"-"`
	}

	Filter struct {
		ProductIDs []string
		Featured   *bool
		Keyword,
		PaginationURL string
		Limit,
		Page int64
		UrlValues url.Values
	}

	FilterOption func(q *Filter)
)

var (
	likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	ErrUniqueNameViolation = errors.New("name: already exists")
	ErrUniqueSlugViolation = errors.New("slug: already exists")
	ErrProductNotFound     = customErrors.New(fiber.StatusNotFound, "product not found")
)

func (q *Product) Validate() error {
	if q.Name = strings.TrimSpace(q.Name); q.Name == "" {
		return errors.New("name: is required")
	}
	if q.Slug = strings.ToLower(strings.TrimSpace(q.Slug)); q.Slug == "" {
		return errors.New("slug: is required")
	}
	if q.Price < 0 {
		return errors.New("price: must not be negative")
	}
	if q.Stock < 0 {
		return errors.New("stock: must not be negative")
	}
	if q.Stars < 0 || q.Stars > 5 {
		return errors.New("stars: must be between 0 and 5")
	}
	if q.Reviews < 0 {
		return errors.New("reviews: must not be negative")
	}
	q.Category = strings.ToLower(strings.TrimSpace(q.Category))
	q.Company = strings.ToLower(strings.TrimSpace(q.Company))
	colors := make([]string, 0, len(q.Colors))
	for _, color := range q.Colors {
		if color = strings.TrimSpace(color); color != "" {
			colors = append(colors, color)
		}
	}
	q.Colors = colors
	return nil
}

// HasColor reports whether color is one of the product's colors.
func (q Product) HasColor(color string) bool {
	for _, c := range q.Colors {
		if strings.EqualFold(c, color) {
			return true
		}
	}
	return false
}

// KeywordPattern builds a lowercase LIKE pattern matching keyword
// literally anywhere in a value.
func KeywordPattern(keyword string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(keyword))) + "%"
}

// Offset returns the row offset of the requested page, or false when
// the page lies past the last of pages.
func (q *Filter) Offset(pages int64) (int64, bool) {
	page := max(q.Page, 1)
	if page > pages {
		return 0, false
	}
	return (page - 1) * q.Limit, true
}

func NewFilter(options ...FilterOption) *Filter {
	filter := &Filter{}
	for _, option := range options {
		option(filter)
	}
	return filter
}

func WithProductIDs(productIDs ...string) FilterOption {
	return func(q *Filter) {
		q.ProductIDs = productIDs
	}
}

func WithFeatured(featured bool) FilterOption {
	return func(q *Filter) {
		q.Featured = &featured
	}
}

func WithKeyword(keyword string) FilterOption {
	return func(q *Filter) {
		q.Keyword = keyword
	}
}

func WithPaginationURL(paginationURL string) FilterOption {
	return func(q *Filter) {
		q.PaginationURL = paginationURL
	}
}

func WithLimit(limit int64) FilterOption {
	return func(q *Filter) {
		q.Limit = limit
	}
}

func WithPage(page int64) FilterOption {
	return func(q *Filter) {
		q.Page = page
	}
}

func WithUrlValues(urlValues url.Values) FilterOption {
	return func(q *Filter) {
		q.UrlValues = urlValues
	}
}
