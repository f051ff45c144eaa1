package repos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/NaouresKraiem/kachabity-sub002/internal/domain"
)

// TaxonomyRepo serves the small lookup tables (colors, sizes). Both are
// soft-deletable and both listings go out with the same visibility rule as
// every other public read.
type TaxonomyRepo struct{ db *sqlx.DB }

func NewTaxonomyRepo(db *sqlx.DB) *TaxonomyRepo { return &TaxonomyRepo{db: db} }

type colorRow struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	NameAr    sql.NullString `db:"name_ar"`
	NameFr    sql.NullString `db:"name_fr"`
	Hex       sql.NullString `db:"hex"`
	DeletedAt sql.NullString `db:"deleted_at"`
}

func (r *TaxonomyRepo) Colors() ([]domain.Color, error) {
	query, args, err := qb.Select("id", "name", "name_ar", "name_fr", "hex", "deleted_at").
		From("colors").
		Where("deleted_at IS NULL").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, err
	}
	var rows []colorRow
	if err := r.db.Select(&rows, query, args...); err != nil {
		return nil, err
	}
	out := make([]domain.Color, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Color{
			ID: row.ID,
			Name: domain.NewLocalized(row.Name, map[string]string{
				"ar": row.NameAr.String,
				"fr": row.NameFr.String,
			}),
			Hex:       row.Hex.String,
			DeletedAt: instant(row.DeletedAt),
		})
	}
	return out, nil
}

func (r *TaxonomyRepo) Sizes() ([]domain.Size, error) {
	query, args, err := qb.Select("id", "name", "deleted_at").
		From("sizes").
		Where("deleted_at IS NULL").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, err
	}
	var rows []struct {
		ID        string         `db:"id"`
		Name      string         `db:"name"`
		DeletedAt sql.NullString `db:"deleted_at"`
	}
	if err := r.db.Select(&rows, query, args...); err != nil {
		return nil, err
	}
	out := make([]domain.Size, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Size{ID: row.ID, Name: row.Name, DeletedAt: instant(row.DeletedAt)})
	}
	return out, nil
}
