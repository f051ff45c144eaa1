package repos

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/NaouresKraiem/kachabity-sub002/internal/domain"
	applog "github.com/NaouresKraiem/kachabity-sub002/internal/log"
)

type DiscountRepo struct{ db *sqlx.DB }

func NewDiscountRepo(db *sqlx.DB) *DiscountRepo { return &DiscountRepo{db: db} }

type discountRow struct {
	ID              string         `db:"id"`
	ProductID       string         `db:"product_id"`
	DiscountPercent float64        `db:"discount_percent"`
	StartsAt        sql.NullString `db:"starts_at"`
	EndsAt          sql.NullString `db:"ends_at"`
	Active          bool           `db:"active"`
	CreatedAt       string         `db:"created_at"`
}

func (r discountRow) toDomain() domain.Discount {
	return domain.Discount{
		ID:              r.ID,
		ProductID:       r.ProductID,
		DiscountPercent: r.DiscountPercent,
		StartsAt:        instant(r.StartsAt),
		EndsAt:          instant(r.EndsAt),
		Active:          r.Active,
		CreatedAt:       instantOrZero(r.CreatedAt),
	}
}

// ActiveByProductIDs maps each given product id to its currently active
// discount row. An empty id set returns an empty map without touching the
// store. Eligibility is gated by the active flag alone; the time window is
// deliberately not checked here (callers surface ends_at as-is). On store
// failure the map is empty rather than an error: a listing without
// discounts beats no listing.
func (r *DiscountRepo) ActiveByProductIDs(ids []string) map[string]domain.Discount {
	out := make(map[string]domain.Discount, len(ids))
	if len(ids) == 0 {
		return out
	}
	query, args, err := qb.Select("id", "product_id", "discount_percent",
		"starts_at", "ends_at", "active", "created_at").
		From("product_discounts").
		Where(sq.Eq{"product_id": ids, "active": true}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		applog.Error(nil, "discounts.query.build", err, nil)
		return out
	}
	var rows []discountRow
	if err := r.db.Select(&rows, query, args...); err != nil {
		applog.Error(nil, "discounts.load", err, nil)
		return out
	}
	// later rows win, so the newest active discount sticks
	for _, row := range rows {
		out[row.ProductID] = row.toDomain()
	}
	return out
}

func (r *DiscountRepo) Create(d domain.Discount) error {
	query, args, err := qb.Insert("product_discounts").
		Columns("id", "product_id", "discount_percent", "starts_at", "ends_at", "active").
		Values(d.ID, d.ProductID, d.DiscountPercent,
			nullInstant(d.StartsAt), nullInstant(d.EndsAt), d.Active).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.Exec(query, args...)
	return err
}
