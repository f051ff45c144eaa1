package repos

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/NaouresKraiem/kachabity-sub002/internal/domain"
)

type ReviewRepo struct{ db *sqlx.DB }

func NewReviewRepo(db *sqlx.DB) *ReviewRepo { return &ReviewRepo{db: db} }

// ByProductIDs fetches the reviews for a whole batch of products in one
// query. Ratings are scanned untyped: legacy rows store text or nothing in
// the rating column, and the aggregator sorts that out.
func (r *ReviewRepo) ByProductIDs(ids []string) (map[string][]domain.Review, error) {
	out := make(map[string][]domain.Review, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	query, args, err := qb.Select("product_id", "rating").
		From("reviews").
		Where(sq.Eq{"product_id": ids}).
		ToSql()
	if err != nil {
		return nil, err
	}
	var rows []domain.Review
	if err := r.db.Select(&rows, query, args...); err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ProductID] = append(out[row.ProductID], row)
	}
	return out, nil
}
