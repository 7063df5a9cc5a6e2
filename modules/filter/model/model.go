package model

import (
	"fmt"
	"slices"
	"strings"

	productModel "github.com/roysitumorang/storefront/modules/product/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	SortPriceLowest  Sort = "price-lowest"
	SortPriceHighest Sort = "price-highest"
	SortNameA        Sort = "name-a"
	SortNameZ        Sort = "name-z"
)

const (
	FieldText     Field = "text"
	FieldCompany  Field = "company"
	FieldCategory Field = "category"
	FieldColor    Field = "color"
	FieldPrice    Field = "price"
	FieldShipping Field = "shipping"
)

// All matches every value of a category, company or color filter.
const All = "all"

type (
	Sort  string
	Field string

	Filters struct {
		Text     string `json:"text"`
		Company  string `json:"company"`
		Category string `json:"category"`
		Color    string `json:"color"`
		MinPrice int64  `json:"min_price"`
		MaxPrice int64  `json:"max_price"`
		Price    int64  `json:"price"`
		Shipping bool   `json:"shipping"`
	}

	Options struct {
		Categories []string `json:"categories"`
		Companies  []string `json:"companies"`
		Colors     []string `json:"colors"`
	}
)

var (
	sorts  = []Sort{SortPriceLowest, SortPriceHighest, SortNameA, SortNameZ}
	fields = []Field{FieldText, FieldCompany, FieldCategory, FieldColor, FieldPrice, FieldShipping}
)

func Sorts() []Sort {
	return slices.Clone(sorts)
}

func ParseSort(raw string) (Sort, error) {
	sort := Sort(strings.ToLower(strings.TrimSpace(raw)))
	if !slices.Contains(sorts, sort) {
		return "", fmt.Errorf("sort: should be one of %v", sorts)
	}
	return sort, nil
}

func ParseField(raw string) (Field, error) {
	field := Field(strings.ToLower(strings.TrimSpace(raw)))
	if !slices.Contains(fields, field) {
		return "", fmt.Errorf("name: should be one of %v", fields)
	}
	return field, nil
}

func DefaultFilters() Filters {
	return Filters{
		Company:  All,
		Category: All,
		Color:    All,
	}
}

// Compare returns a comparator implementing the sort key. Name keys use
// en-US collation, so the returned func is not safe for concurrent use.
func (q Sort) Compare() (func(a, b productModel.Product) int, error) {
	switch q {
	case SortPriceLowest:
		return func(a, b productModel.Product) int {
			return compareInt(a.Price, b.Price)
		}, nil
	case SortPriceHighest:
		return func(a, b productModel.Product) int {
			return compareInt(b.Price, a.Price)
		}, nil
	case SortNameA:
		collator := collate.New(language.AmericanEnglish)
		return func(a, b productModel.Product) int {
			return collator.CompareString(a.Name, b.Name)
		}, nil
	case SortNameZ:
		collator := collate.New(language.AmericanEnglish)
		return func(a, b productModel.Product) int {
			return collator.CompareString(b.Name, a.Name)
		}, nil
	}
	return nil, fmt.Errorf("sort: unsupported key %q", q)
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Match reports whether product passes every active filter.
func (q Filters) Match(product productModel.Product) bool {
	if q.Text != "" && !strings.HasPrefix(strings.ToLower(product.Name), strings.ToLower(q.Text)) {
		return false
	}
	if q.Category != "" && q.Category != All && !strings.EqualFold(product.Category, q.Category) {
		return false
	}
	if q.Company != "" && q.Company != All && !strings.EqualFold(product.Company, q.Company) {
		return false
	}
	if q.Color != "" && q.Color != All && !product.HasColor(q.Color) {
		return false
	}
	if product.Price > q.Price {
		return false
	}
	if q.Shipping && !product.Shipping {
		return false
	}
	return true
}

// OptionsOf lists the distinct categories, companies and colors of
// products, each led by All.
func OptionsOf(products []productModel.Product) Options {
	return Options{
		Categories: uniqueValues(products, func(p productModel.Product) []string { return []string{p.Category} }),
		Companies:  uniqueValues(products, func(p productModel.Product) []string { return []string{p.Company} }),
		Colors:     uniqueValues(products, func(p productModel.Product) []string { return p.Colors }),
	}
}

func uniqueValues(products []productModel.Product, values func(productModel.Product) []string) []string {
	response := []string{All}
	seen := map[string]struct{}{All: {}}
	for _, product := range products {
		for _, value := range values(product) {
			if value == "" {
				continue
			}
			if _, ok := seen[value]; ok {
				continue
			}
			seen[value] = struct{}{}
			response = append(response, value)
		}
	}
	return response
}

// Page returns the products on page (1-based) when split into pages of
// limit items.
func Page(products []productModel.Product, limit, page int64) []productModel.Product {
	if limit <= 0 {
		return products
	}
	total := int64(len(products))
	page = max(page, 1)
	if total == 0 || page-1 > (total-1)/limit {
		return []productModel.Product{}
	}
	offset := (page - 1) * limit
	return products[offset:min(offset+limit, total)]
}
