package repos

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/NaouresKraiem/kachabity-sub002/internal/domain"
)

type PromotionRepo struct{ db *sqlx.DB }

func NewPromotionRepo(db *sqlx.DB) *PromotionRepo { return &PromotionRepo{db: db} }

type promotionRow struct {
	ID              string         `db:"id"`
	Title           string         `db:"title"`
	Subtitle        sql.NullString `db:"subtitle"`
	DiscountPercent float64        `db:"discount_percent"`
	StartsAt        sql.NullString `db:"starts_at"`
	EndsAt          sql.NullString `db:"ends_at"`
	Active          bool           `db:"active"`
	CreatedAt       string         `db:"created_at"`
}

func (r promotionRow) toDomain() domain.Promotion {
	return domain.Promotion{
		ID:              r.ID,
		Title:           r.Title,
		Subtitle:        r.Subtitle.String,
		DiscountPercent: r.DiscountPercent,
		StartsAt:        instant(r.StartsAt),
		EndsAt:          instant(r.EndsAt),
		Active:          r.Active,
		CreatedAt:       instantOrZero(r.CreatedAt),
	}
}

// All returns every promotion row; the selector filters in-process so the
// selection rule stays in one testable place.
func (r *PromotionRepo) All() ([]domain.Promotion, error) {
	query, args, err := qb.Select("id", "title", "subtitle", "discount_percent",
		"starts_at", "ends_at", "active", "created_at").
		From("promotions").
		ToSql()
	if err != nil {
		return nil, err
	}
	var rows []promotionRow
	if err := r.db.Select(&rows, query, args...); err != nil {
		return nil, fmt.Errorf("loading promotions: %w", err)
	}
	out := make([]domain.Promotion, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PromotionRepo) Create(p domain.Promotion) error {
	query, args, err := qb.Insert("promotions").
		Columns("id", "title", "subtitle", "discount_percent", "starts_at", "ends_at", "active").
		Values(p.ID, p.Title, p.Subtitle, p.DiscountPercent,
			nullInstant(p.StartsAt), nullInstant(p.EndsAt), p.Active).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.Exec(query, args...)
	return err
}

func (r *PromotionRepo) Update(p domain.Promotion) error {
	query, args, err := qb.Update("promotions").
		SetMap(map[string]any{
			"title":            p.Title,
			"subtitle":         p.Subtitle,
			"discount_percent": p.DiscountPercent,
			"starts_at":        nullInstant(p.StartsAt),
			"ends_at":          nullInstant(p.EndsAt),
			"active":           p.Active,
		}).
		Where(sq.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("updating promotion: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n != 1 {
		return sql.ErrNoRows
	}
	return nil
}
