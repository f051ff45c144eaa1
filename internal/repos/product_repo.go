package repos

import (
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/NaouresKraiem/kachabity-sub002/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

type productRow struct {
	ID         string         `db:"id"`
	CategoryID string         `db:"category_id"`
	Name       string         `db:"name"`
	NameAr     sql.NullString `db:"name_ar"`
	NameFr     sql.NullString `db:"name_fr"`
	Slug       string         `db:"slug"`
	BasePrice  float64        `db:"base_price"`
	Status     string         `db:"status"`
	SoldCount  int            `db:"sold_count"`
	ImageURL   sql.NullString `db:"image_url"`
	DeletedAt  sql.NullString `db:"deleted_at"`
	CreatedAt  string         `db:"created_at"`
}

func (r productRow) toDomain() domain.Product {
	return domain.Product{
		ID:         r.ID,
		CategoryID: r.CategoryID,
		Name: domain.NewLocalized(r.Name, map[string]string{
			"ar": r.NameAr.String,
			"fr": r.NameFr.String,
		}),
		Slug:      r.Slug,
		BasePrice: r.BasePrice,
		Status:    r.Status,
		SoldCount: r.SoldCount,
		ImageURL:  r.ImageURL.String,
		DeletedAt: instant(r.DeletedAt),
		CreatedAt: instantOrZero(r.CreatedAt),
	}
}

func productSelect(prefix string) sq.SelectBuilder {
	cols := []string{"id", "category_id", "name", "name_ar", "name_fr", "slug",
		"base_price", "status", "sold_count", "image_url", "deleted_at", "created_at"}
	if prefix != "" {
		for i, c := range cols {
			cols[i] = prefix + "." + c
		}
	}
	return qb.Select(cols...)
}

func (r *ProductRepo) selectRows(b sq.SelectBuilder) ([]domain.Product, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building product query: %w", err)
	}
	var rows []productRow
	if err := r.db.Select(&rows, query, args...); err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// BestSellers lists visible products ordered by sold_count descending.
func (r *ProductRepo) BestSellers(limit int) ([]domain.Product, error) {
	return r.selectRows(productSelect("").
		From("products").
		Where(sq.Eq{"status": domain.StatusActive}).
		Where("deleted_at IS NULL").
		OrderBy("sold_count DESC").
		Limit(uint64(limit)))
}

// Discounted lists visible products carrying an active discount, most
// recently discounted first.
func (r *ProductRepo) Discounted(limit int) ([]domain.Product, error) {
	return r.selectRows(productSelect("p").
		From("products p").
		Join("product_discounts d ON d.product_id = p.id AND d.active = 1").
		Where(sq.Eq{"p.status": domain.StatusActive}).
		Where("p.deleted_at IS NULL").
		GroupBy("p.id").
		OrderBy("MAX(d.created_at) DESC").
		Limit(uint64(limit)))
}

// ByCategorySlug lists visible products of one category, best sellers first.
func (r *ProductRepo) ByCategorySlug(slug string, limit int) ([]domain.Product, error) {
	return r.selectRows(productSelect("p").
		From("products p").
		Join("categories c ON c.id = p.category_id").
		Where(sq.Eq{"c.slug": slug, "p.status": domain.StatusActive}).
		Where("p.deleted_at IS NULL").
		Where("c.deleted_at IS NULL").
		OrderBy("p.sold_count DESC").
		Limit(uint64(limit)))
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	query, args, err := productSelect("").From("products").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return domain.Product{}, err
	}
	var row productRow
	if err := r.db.Get(&row, query, args...); err != nil {
		return domain.Product{}, err
	}
	return row.toDomain(), nil
}

// Create inserts a product row; the caller supplies the id.
func (r *ProductRepo) Create(p domain.Product) error {
	query, args, err := qb.Insert("products").
		Columns("id", "category_id", "name", "name_ar", "name_fr", "slug",
			"base_price", "status", "sold_count", "image_url").
		Values(p.ID, p.CategoryID, p.Name.Default,
			nullString(p.Name.Overrides["ar"]), nullString(p.Name.Overrides["fr"]),
			p.Slug, p.BasePrice, p.Status, p.SoldCount, nullString(p.ImageURL)).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(query, args...); err != nil {
		return fmt.Errorf("inserting product: %w", err)
	}
	return nil
}

// SoftDelete marks a product invisible to all read paths. The row stays.
func (r *ProductRepo) SoftDelete(id string) error {
	query, args, err := qb.Update("products").
		Set("deleted_at", time.Now().UTC().Format(time.RFC3339)).
		Where(sq.Eq{"id": id}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("soft-deleting product: %w", err)
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
