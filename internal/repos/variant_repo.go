package repos

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/NaouresKraiem/kachabity-sub002/internal/domain"
)

type VariantRepo struct{ db *sqlx.DB }

func NewVariantRepo(db *sqlx.DB) *VariantRepo { return &VariantRepo{db: db} }

type variantRow struct {
	ID          string          `db:"id"`
	ProductID   string          `db:"product_id"`
	SizeID      sql.NullString  `db:"size_id"`
	ColorID     sql.NullString  `db:"color_id"`
	Price       sql.NullFloat64 `db:"price"`
	Stock       int             `db:"stock"`
	IsAvailable bool            `db:"is_available"`
	DeletedAt   sql.NullString  `db:"deleted_at"`
}

// ByProduct lists a product's visible variants. Soft-deleted rows never
// leave this method.
func (r *VariantRepo) ByProduct(productID string) ([]domain.ProductVariant, error) {
	query, args, err := qb.Select("id", "product_id", "size_id", "color_id",
		"price", "stock", "is_available", "deleted_at").
		From("product_variants").
		Where(sq.Eq{"product_id": productID}).
		Where("deleted_at IS NULL").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}
	var rows []variantRow
	if err := r.db.Select(&rows, query, args...); err != nil {
		return nil, err
	}
	out := make([]domain.ProductVariant, 0, len(rows))
	for _, row := range rows {
		v := domain.ProductVariant{
			ID:          row.ID,
			ProductID:   row.ProductID,
			SizeID:      row.SizeID.String,
			ColorID:     row.ColorID.String,
			Stock:       row.Stock,
			IsAvailable: row.IsAvailable,
			DeletedAt:   instant(row.DeletedAt),
		}
		if row.Price.Valid {
			p := row.Price.Float64
			v.Price = &p
		}
		out = append(out, v)
	}
	return out, nil
}
