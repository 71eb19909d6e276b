package store

import (
	"context"
	"errors"

	"demo/ordertags/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrTagNotFound   = errors.New("tag not found")
)

// Repository is the persistence surface the service layer depends on.
type Repository interface {
	ListOrdersWithTags(ctx context.Context) ([]model.OrderTags, error)
	ListTagValues(ctx context.Context) ([]string, error)
	ListTags(ctx context.Context) ([]model.Tag, error)
	CreateTag(ctx context.Context, value string) (model.Tag, error)
	AssociateTag(ctx context.Context, orderID, tagID int64) error
	InsertOrder(ctx context.Context, o model.Order) (int64, error)
}

type Repo struct {
	Pool PgxIface
}

type PgxIface interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var _ Repository = (*Repo)(nil)

func New(pool PgxIface) *Repo { return &Repo{Pool: pool} }

// ListOrdersWithTags returns one row per order that has at least one tag.
// Untagged orders never appear: the join is an inner join. Tags within a row
// follow the order they were associated in.
func (r *Repo) ListOrdersWithTags(ctx context.Context) ([]model.OrderTags, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT o.id, o.code, o.date, o.email, string_agg($1::text || t.value, $2::text ORDER BY ot.id) AS tags
		FROM orders o
		JOIN order_tags ot ON ot.order_id = o.id
		JOIN tags t ON t.id = ot.tag_id
		GROUP BY o.id, o.code, o.date, o.email
		ORDER BY o.id`, model.TagMarker, model.TagSeparator)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.OrderTags
	for rows.Next() {
		var o model.OrderTags
		if err := rows.Scan(&o.ID, &o.Code, &o.Date, &o.Email, &o.Tags); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// ListTagValues returns every tag value in store order.
func (r *Repo) ListTagValues(ctx context.Context) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT value FROM tags ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *Repo) ListTags(ctx context.Context) ([]model.Tag, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, value FROM tags ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Tag
	for rows.Next() {
		var t model.Tag
		if err := rows.Scan(&t.ID, &t.Value); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// CreateTag inserts a tag. Duplicate values are allowed. Errors are returned
// unwrapped; their text is shown to the client.
func (r *Repo) CreateTag(ctx context.Context, value string) (model.Tag, error) {
	t := model.Tag{Value: value}
	err := r.Pool.QueryRow(ctx, `INSERT INTO tags (value) VALUES ($1) RETURNING id`, value).Scan(&t.ID)
	if err != nil {
		return model.Tag{}, err
	}
	return t, nil
}

// AssociateTag links a tag to an order. Both must exist. The same pair may be
// linked any number of times; every call adds a row.
func (r *Repo) AssociateTag(ctx context.Context, orderID, tagID int64) error {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	if err := tx.QueryRow(ctx, `SELECT id FROM orders WHERE id=$1`, orderID).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrOrderNotFound
		}
		return err
	}
	if err := tx.QueryRow(ctx, `SELECT id FROM tags WHERE id=$1`, tagID).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrTagNotFound
		}
		return err
	}

	if _, err := tx.Exec(ctx, `INSERT INTO order_tags (order_id, tag_id) VALUES ($1,$2)`, orderID, tagID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// InsertOrder stores an externally seeded order and returns its new id.
func (r *Repo) InsertOrder(ctx context.Context, o model.Order) (int64, error) {
	var id int64
	err := r.Pool.QueryRow(ctx, `INSERT INTO orders (code, date, email) VALUES ($1,$2,$3) RETURNING id`,
		o.Code, o.Date, o.Email).Scan(&id)
	return id, err
}
