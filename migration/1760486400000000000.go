package migration

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/roysitumorang/storefront/helper"
	"go.uber.org/zap"
)

func init() {
	Migrations[1760486400000000000] = func(ctx context.Context, tx pgx.Tx) (err error) {
		ctxt := "Migration-1760486400000000000"
		if _, err = tx.Exec(
			ctx,
			`CREATE TABLE products (
				_id bigint NOT NULL PRIMARY KEY
				, id character varying NOT NULL UNIQUE
				, name character varying NOT NULL
				, slug character varying NOT NULL
				, price bigint NOT NULL CHECK (price >= 0)
				, featured boolean NOT NULL DEFAULT false
				, image character varying NOT NULL DEFAULT ''
				, description text NOT NULL DEFAULT ''
				, category character varying NOT NULL DEFAULT ''
				, company character varying NOT NULL DEFAULT ''
				, colors character varying[] NOT NULL DEFAULT '{}'
				, shipping boolean NOT NULL DEFAULT false
				, stock bigint NOT NULL DEFAULT 0 CHECK (stock >= 0)
				, stars double precision NOT NULL DEFAULT 0
				, reviews bigint NOT NULL DEFAULT 0
				, created_at timestamp with time zone NOT NULL
				, updated_at timestamp with time zone NOT NULL
				, CONSTRAINT products_slug_key UNIQUE (slug)
			)`,
		); err != nil {
			helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrExec")
			return
		}
		if _, err = tx.Exec(ctx, "CREATE UNIQUE INDEX products_lower_name_idx ON products (LOWER(name))"); err != nil {
			helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrExec")
			return
		}
		if _, err = tx.Exec(ctx, "CREATE INDEX ON products (featured)"); err != nil {
			helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrExec")
		}
		return
	}
}
