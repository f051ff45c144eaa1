package repos

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/NaouresKraiem/kachabity-sub002/internal/domain"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

type categoryRow struct {
	ID        string         `db:"id"`
	Slug      string         `db:"slug"`
	Name      string         `db:"name"`
	NameAr    sql.NullString `db:"name_ar"`
	NameFr    sql.NullString `db:"name_fr"`
	DeletedAt sql.NullString `db:"deleted_at"`
	CreatedAt string         `db:"created_at"`
}

func (r categoryRow) toDomain() domain.Category {
	return domain.Category{
		ID:   r.ID,
		Slug: r.Slug,
		Name: domain.NewLocalized(r.Name, map[string]string{
			"ar": r.NameAr.String,
			"fr": r.NameFr.String,
		}),
		DeletedAt: instant(r.DeletedAt),
		CreatedAt: instantOrZero(r.CreatedAt),
	}
}

// List returns visible categories ordered by slug.
func (r *CategoryRepo) List() ([]domain.Category, error) {
	query, args, err := qb.Select("id", "slug", "name", "name_ar", "name_fr", "deleted_at", "created_at").
		From("categories").
		Where("deleted_at IS NULL").
		OrderBy("slug ASC").
		ToSql()
	if err != nil {
		return nil, err
	}
	var rows []categoryRow
	if err := r.db.Select(&rows, query, args...); err != nil {
		return nil, err
	}
	out := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// SlugsByIDs resolves category ids to slugs in one query. The view
// assembler calls this exactly once per request, never per product.
func (r *CategoryRepo) SlugsByIDs(ids []string) (map[string]string, error) {
	out := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	query, args, err := qb.Select("id", "slug").
		From("categories").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, err
	}
	var rows []struct {
		ID   string `db:"id"`
		Slug string `db:"slug"`
	}
	if err := r.db.Select(&rows, query, args...); err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ID] = row.Slug
	}
	return out, nil
}
