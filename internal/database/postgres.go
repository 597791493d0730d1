package database

import (
	"context"
	"fmt"

	"github.com/TemirB/bytebazaar/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	categoriesTable = "categories"
	productsTable   = "products"
)

// Repo serves the catalog from Postgres. It only reads at startup; the store
// built from it is immutable afterwards.
type Repo struct {
	pool   *pgxpool.Pool
	schema string
}

func New(pool *pgxpool.Pool, schema string) *Repo { return &Repo{pool: pool, schema: schema} }

// Connect opens a pool with query tracing routed to logger and pings it.
func Connect(ctx context.Context, dsn string, logger *zap.Logger) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.ConnConfig.Tracer = &tracelog.TraceLog{
		Logger:   newZapTracer(logger),
		LogLevel: tracelog.LogLevelInfo,
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func qualify(schema, tbl string) string {
	return pgx.Identifier{schema, tbl}.Sanitize()
}

func (r *Repo) qt(tbl string) string { return qualify(r.schema, tbl) }

// Migrate creates the catalog tables when they are missing.
func (r *Repo) Migrate(ctx context.Context) error {
	stmts := []string{
		fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, pgx.Identifier{r.schema}.Sanitize()),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
			  id          text PRIMARY KEY,
			  name        text NOT NULL,
			  description text NOT NULL DEFAULT '',
			  icon        text NOT NULL DEFAULT ''
			)`, r.qt(categoriesTable)),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
			  id                text PRIMARY KEY,
			  name              text NOT NULL,
			  price             numeric(12,2) NOT NULL CHECK (price >= 0),
			  stock             integer NOT NULL CHECK (stock >= 0),
			  category_id       text NOT NULL REFERENCES %s (id),
			  short_description text NOT NULL DEFAULT '',
			  description       text NOT NULL DEFAULT '',
			  features          text[] NOT NULL DEFAULT '{}',
			  images            text[] NOT NULL DEFAULT '{}',
			  position          integer NOT NULL DEFAULT 0
			)`, r.qt(productsTable), r.qt(categoriesTable)),
	}
	for _, s := range stmts {
		if _, err := r.pool.Exec(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

// SeedCatalog upserts categories and products in one transaction. Product
// order is kept through the position column.
func (r *Repo) SeedCatalog(ctx context.Context, categories []domain.Category, products []domain.Product) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, c := range categories {
		batch.Queue(fmt.Sprintf(`
			INSERT INTO %s (id, name, description, icon)
			VALUES ($1,$2,$3,$4)
			ON CONFLICT (id) DO UPDATE SET
			  name=EXCLUDED.name, description=EXCLUDED.description, icon=EXCLUDED.icon
		`, r.qt(categoriesTable)),
			c.ID, c.Name, c.Description, c.Icon,
		)
	}
	for i, p := range products {
		batch.Queue(fmt.Sprintf(`
			INSERT INTO %s (id, name, price, stock, category_id, short_description,
			  description, features, images, position)
			VALUES ($1,$2,$3::numeric,$4,$5,$6,$7,$8,$9,$10)
			ON CONFLICT (id) DO UPDATE SET
			  name=EXCLUDED.name, price=EXCLUDED.price, stock=EXCLUDED.stock,
			  category_id=EXCLUDED.category_id, short_description=EXCLUDED.short_description,
			  description=EXCLUDED.description, features=EXCLUDED.features,
			  images=EXCLUDED.images, position=EXCLUDED.position
		`, r.qt(productsTable)),
			p.ID, p.Name, p.Price.String(), p.Stock, p.CategoryID, p.ShortDescription,
			p.Description, nonNil(p.Features), nonNil(p.Images), i,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *Repo) LoadCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT id, name, description, icon FROM %s ORDER BY id
	`, r.qt(categoriesTable)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Icon); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) LoadProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT id, name, price::text, stock, category_id, short_description,
		       description, features, images
		FROM %s ORDER BY position, id
	`, r.qt(productsTable)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		var (
			p     domain.Product
			price string
		)
		if err := rows.Scan(&p.ID, &p.Name, &price, &p.Stock, &p.CategoryID, &p.ShortDescription,
			&p.Description, &p.Features, &p.Images); err != nil {
			return nil, err
		}
		if p.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("product %s: price %q: %w", p.ID, price, err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
