package migration

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/roysitumorang/storefront/helper"
	"go.uber.org/zap"
)

type (
	Migration struct {
		dbWrite *pgxpool.Pool
	}
)

const (
	advisoryLockID int64 = 0x73746f7265 // "store"
)

var (
	Migrations = map[int64]func(ctx context.Context, tx pgx.Tx) error{}
)

func New(dbWrite *pgxpool.Pool) *Migration {
	return &Migration{dbWrite: dbWrite}
}

// Migrate applies pending migrations in version order inside one
// transaction. Instances booting together serialize on an advisory lock.
func (m *Migration) Migrate(ctx context.Context) (err error) {
	ctxt := "Migration-Migrate"
	if _, err = m.dbWrite.Exec(
		ctx,
		`CREATE TABLE IF NOT EXISTS migrations (
			"version" bigint NOT NULL PRIMARY KEY
		)`,
	); err != nil {
		helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrExec")
		return
	}
	tx, err := m.dbWrite.Begin(ctx)
	if err != nil {
		helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrBegin")
		return
	}
	defer func() {
		if err == nil {
			return
		}
		if errRollback := tx.Rollback(ctx); errRollback != nil {
			helper.Capture(ctx, zap.ErrorLevel, errRollback, ctxt, "ErrRollback")
		}
	}()
	if _, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, advisoryLockID); err != nil {
		helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrLock")
		return
	}
	rows, err := tx.Query(ctx, `SELECT "version" FROM "migrations"`)
	if err != nil {
		helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrQuery")
		return
	}
	versions, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrCollectRows")
		return
	}
	pending := Pending(versions)
	for _, version := range pending {
		if err = Migrations[version](ctx, tx); err != nil {
			helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrFunction")
			err = fmt.Errorf("migration %d: %w", version, err)
			return
		}
		if _, err = tx.Exec(ctx, `INSERT INTO "migrations" ("version") VALUES ($1)`, version); err != nil {
			helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrExec")
			return
		}
	}
	if err = tx.Commit(ctx); err != nil {
		helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrCommit")
		return
	}
	helper.Log(ctx, zap.InfoLevel, fmt.Sprintf("%d migrations applied", len(pending)), ctxt, "")
	return
}

// Pending returns the registered versions missing from applied, oldest first.
func Pending(applied []int64) []int64 {
	pending := make([]int64, 0, len(Migrations))
	for _, version := range slices.Sorted(maps.Keys(Migrations)) {
		if !slices.Contains(applied, version) {
			pending = append(pending, version)
		}
	}
	return pending
}

// CreateMigrationFile writes an empty migration named after the current
// UnixNano timestamp into dir and returns its path.
func (m *Migration) CreateMigrationFile(_ context.Context, dir string) (string, error) {
	now := time.Now().UTC().UnixNano()
	path := filepath.Join(dir, fmt.Sprintf("%d.go", now))
	content := fmt.Sprintf(
		`package migration

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/roysitumorang/storefront/helper"
	"go.uber.org/zap"
)

func init() {
	Migrations[%d] = func(ctx context.Context, tx pgx.Tx) (err error) {
		ctxt := "Migration-%d"
		if _, err = tx.Exec(ctx, ""); err != nil {
			helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrExec")
		}
		return
	}
}
`,
		now,
		now,
	)
	return path, os.WriteFile(
		path,
		helper.String2ByteSlice(content),
		0600,
	)
}
