package repos

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/NaouresKraiem/kachabity-sub002/internal/domain"
)

type ImageRepo struct{ db *sqlx.DB }

func NewImageRepo(db *sqlx.DB) *ImageRepo { return &ImageRepo{db: db} }

type imageRow struct {
	ID        string         `db:"id"`
	ProductID string         `db:"product_id"`
	VariantID sql.NullString `db:"variant_id"`
	ImageURL  string         `db:"image_url"`
	IsMain    bool           `db:"is_main"`
	Position  int            `db:"position"`
}

// ByProductIDs fetches the image rows for a batch of products in one query,
// in display order.
func (r *ImageRepo) ByProductIDs(ids []string) (map[string][]domain.ProductImage, error) {
	out := make(map[string][]domain.ProductImage, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	query, args, err := qb.Select("id", "product_id", "variant_id", "image_url", "is_main", "position").
		From("product_images").
		Where(sq.Eq{"product_id": ids}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, err
	}
	var rows []imageRow
	if err := r.db.Select(&rows, query, args...); err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ProductID] = append(out[row.ProductID], domain.ProductImage{
			ID:        row.ID,
			ProductID: row.ProductID,
			VariantID: row.VariantID.String,
			ImageURL:  row.ImageURL,
			IsMain:    row.IsMain,
			Position:  row.Position,
		})
	}
	return out, nil
}
