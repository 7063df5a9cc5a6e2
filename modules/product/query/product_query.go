package query

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/roysitumorang/storefront/helper"
	productModel "github.com/roysitumorang/storefront/modules/product/model"
	"go.uber.org/zap"
)

const (
	productColumns = `p.id
		, p.name
		, p.slug
		, p.price
		, p.featured
		, p.image
		, p.description
		, p.category
		, p.company
		, p.colors
		, p.shipping
		, p.stock
		, p.stars
		, p.reviews
		, p.created_at
		, p.updated_at`
	returningColumns = `id
			, name
			, slug
			, price
			, featured
			, image
			, description
			, category
			, company
			, colors
			, shipping
			, stock
			, stars
			, reviews
			, created_at
			, updated_at`
)

type (
	productQuery struct {
		dbRead,
		dbWrite *pgxpool.Pool
	}

	scanner interface {
		Scan(dest ...any) error
	}
)

func New(
	dbRead,
	dbWrite *pgxpool.Pool,
) ProductQuery {
	return &productQuery{
		dbRead:  dbRead,
		dbWrite: dbWrite,
	}
}

func (q *productQuery) FindProducts(ctx context.Context, filter *productModel.Filter) ([]productModel.Product, int64, int64, error) {
	ctxt := "ProductQuery-FindProducts"
	var (
		params     []any
		conditions []string
		builder    strings.Builder
	)
	if len(filter.ProductIDs) > 0 {
		builder.Reset()
		_, _ = builder.WriteString("p.id IN (")
		for i, productID := range filter.ProductIDs {
			params = append(params, productID)
			if i > 0 {
				_, _ = builder.WriteString(",")
			}
			_, _ = builder.WriteString("$")
			_, _ = builder.WriteString(strconv.Itoa(len(params)))
		}
		_, _ = builder.WriteString(")")
		conditions = append(conditions, builder.String())
	}
	if filter.Featured != nil {
		params = append(params, *filter.Featured)
		conditions = append(conditions, "p.featured = $"+strconv.Itoa(len(params)))
	}
	if filter.Keyword != "" {
		params = append(params, productModel.KeywordPattern(filter.Keyword))
		n := strconv.Itoa(len(params))
		builder.Reset()
		_, _ = builder.WriteString("(LOWER(p.name) LIKE $")
		_, _ = builder.WriteString(n)
		_, _ = builder.WriteString(` ESCAPE '\' OR p.slug LIKE $`)
		_, _ = builder.WriteString(n)
		_, _ = builder.WriteString(` ESCAPE '\')`)
		conditions = append(conditions, builder.String())
	}
	builder.Reset()
	_, _ = builder.WriteString(
		`SELECT COUNT(1)
		FROM products p`,
	)
	if len(conditions) > 0 {
		_, _ = builder.WriteString(" WHERE")
		for i, condition := range conditions {
			if i > 0 {
				_, _ = builder.WriteString(" AND")
			}
			_, _ = builder.WriteString(" ")
			_, _ = builder.WriteString(condition)
		}
	}
	query := builder.String()
	var total int64
	err := q.dbRead.QueryRow(ctx, query, params...).Scan(&total)
	if err != nil {
		helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrScan")
		return nil, 0, 0, err
	}
	if total == 0 {
		return []productModel.Product{}, 0, 0, nil
	}
	query = strings.Replace(
		query,
		"COUNT(1)",
		"ROW_NUMBER() OVER (ORDER BY p._id) AS row_no, "+productColumns,
		1,
	)
	builder.Reset()
	_, _ = builder.WriteString(query)
	_, _ = builder.WriteString(" ORDER BY p._id")
	pages := int64(1)
	if filter.Limit > 0 {
		if pages, err = helper.CountPages(total, filter.Limit); err != nil {
			helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrCountPages")
			return nil, 0, 0, err
		}
		offset, ok := filter.Offset(pages)
		if !ok {
			return []productModel.Product{}, total, pages, nil
		}
		_, _ = builder.WriteString(" LIMIT ")
		_, _ = builder.WriteString(strconv.FormatInt(filter.Limit, 10))
		_, _ = builder.WriteString(" OFFSET ")
		_, _ = builder.WriteString(strconv.FormatInt(offset, 10))
	}
	rows, err := q.dbRead.Query(ctx, builder.String(), params...)
	if errors.Is(err, pgx.ErrNoRows) {
		err = nil
	}
	if err != nil {
		helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrQuery")
		return nil, 0, 0, err
	}
	defer rows.Close()
	response := []productModel.Product{}
	for rows.Next() {
		var product productModel.Product
		if err = scanProduct(rows, &product, &product.RowNo); err != nil {
			helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrScan")
			return nil, 0, 0, err
		}
		response = append(response, product)
	}
	if err = rows.Err(); err != nil {
		helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrRows")
		return nil, 0, 0, err
	}
	return response, total, pages, nil
}

func (q *productQuery) CreateProduct(ctx context.Context, request *productModel.Product) (*productModel.Product, error) {
	ctxt := "ProductQuery-CreateProduct"
	productID, productSqID, _, err := helper.GenerateUniqueID()
	if err != nil {
		helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrGenerateUniqueID")
		return nil, err
	}
	now := time.Now()
	var response productModel.Product
	if err = scanProduct(
		q.dbWrite.QueryRow(
			ctx,
			`INSERT INTO products (
				_id
				, id
				, name
				, slug
				, price
				, featured
				, image
				, description
				, category
				, company
				, colors
				, shipping
				, stock
				, stars
				, reviews
				, created_at
				, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $16)
			RETURNING `+returningColumns,
			productID,
			productSqID,
			request.Name,
			request.Slug,
			request.Price,
			request.Featured,
			request.Image,
			request.Description,
			request.Category,
			request.Company,
			request.Colors,
			request.Shipping,
			request.Stock,
			request.Stars,
			request.Reviews,
			now,
		),
		&response,
	); err != nil {
		err = uniqueViolation(err)
		if !errors.Is(err, productModel.ErrUniqueNameViolation) && !errors.Is(err, productModel.ErrUniqueSlugViolation) {
			helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrScan")
		}
		return nil, err
	}
	return &response, nil
}

func (q *productQuery) UpdateProduct(ctx context.Context, request *productModel.Product) error {
	ctxt := "ProductQuery-UpdateProduct"
	err := scanProduct(
		q.dbWrite.QueryRow(
			ctx,
			`UPDATE products SET
				name = $1
				, slug = $2
				, price = $3
				, featured = $4
				, image = $5
				, description = $6
				, category = $7
				, company = $8
				, colors = $9
				, shipping = $10
				, stock = $11
				, stars = $12
				, reviews = $13
				, updated_at = $14
			WHERE id = $15
			RETURNING `+returningColumns,
			request.Name,
			request.Slug,
			request.Price,
			request.Featured,
			request.Image,
			request.Description,
			request.Category,
			request.Company,
			request.Colors,
			request.Shipping,
			request.Stock,
			request.Stars,
			request.Reviews,
			time.Now(),
			request.ID,
		),
		request,
	)
	if err != nil {
		err = uniqueViolation(err)
		if !errors.Is(err, productModel.ErrUniqueNameViolation) && !errors.Is(err, productModel.ErrUniqueSlugViolation) {
			helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrScan")
		}
	}
	return err
}

func scanProduct(row scanner, product *productModel.Product, prefix ...any) error {
	dest := append(
		prefix,
		&product.ID,
		&product.Name,
		&product.Slug,
		&product.Price,
		&product.Featured,
		&product.Image,
		&product.Description,
		&product.Category,
		&product.Company,
		&product.Colors,
		&product.Shipping,
		&product.Stock,
		&product.Stars,
		&product.Reviews,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	return row.Scan(dest...)
}

func uniqueViolation(err error) error {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) && pgxErr.Code == pgerrcode.UniqueViolation {
		switch pgxErr.ConstraintName {
		case "products_lower_name_idx":
			return productModel.ErrUniqueNameViolation
		case "products_slug_key":
			return productModel.ErrUniqueSlugViolation
		}
	}
	return err
}
