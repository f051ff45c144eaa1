package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline catalog data if DB is empty
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Categories
CREATE TABLE IF NOT EXISTS categories(
  id TEXT PRIMARY KEY,
  slug TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  name_ar TEXT,
  name_fr TEXT,
  deleted_at TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_categories_slug ON categories(slug);

-- Colors & sizes
CREATE TABLE IF NOT EXISTS colors(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  name_ar TEXT,
  name_fr TEXT,
  hex TEXT,
  deleted_at TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS sizes(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  deleted_at TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Products
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  category_id TEXT NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
  name TEXT NOT NULL,
  name_ar TEXT,
  name_fr TEXT,
  slug TEXT NOT NULL UNIQUE,
  base_price NUMERIC NOT NULL CHECK (base_price >= 0),
  status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active','inactive','archived')),
  sold_count INTEGER NOT NULL DEFAULT 0,
  image_url TEXT,                -- legacy single-image column
  deleted_at TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_category   ON products(category_id);
CREATE INDEX IF NOT EXISTS idx_products_status     ON products(status);
CREATE INDEX IF NOT EXISTS idx_products_sold_count ON products(sold_count);

-- Variants
CREATE TABLE IF NOT EXISTS product_variants(
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  size_id TEXT REFERENCES sizes(id),
  color_id TEXT REFERENCES colors(id),
  price NUMERIC,                 -- optional override of base_price
  stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
  is_available INTEGER NOT NULL DEFAULT 1,
  deleted_at TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_variants_product ON product_variants(product_id);

-- Images
CREATE TABLE IF NOT EXISTS product_images(
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  variant_id TEXT REFERENCES product_variants(id),
  image_url TEXT NOT NULL,
  is_main INTEGER NOT NULL DEFAULT 0,
  position INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_images_product ON product_images(product_id);

-- Per-product discounts
CREATE TABLE IF NOT EXISTS product_discounts(
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  discount_percent NUMERIC NOT NULL CHECK (discount_percent >= 0 AND discount_percent <= 100),
  starts_at TEXT,
  ends_at TEXT,
  active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_discounts_product ON product_discounts(product_id);
CREATE INDEX IF NOT EXISTS idx_discounts_active  ON product_discounts(active);

-- Store-wide promotion banners
CREATE TABLE IF NOT EXISTS promotions(
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  subtitle TEXT,
  discount_percent NUMERIC NOT NULL CHECK (discount_percent >= 0 AND discount_percent <= 100),
  starts_at TEXT,
  ends_at TEXT,
  active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Reviews (rating column is NUMERIC but legacy rows carry text/null)
CREATE TABLE IF NOT EXISTS reviews(
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  rating NUMERIC,
  comment TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_reviews_product ON reviews(product_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM categories`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo catalog data")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO categories(id,slug,name,name_ar,name_fr) VALUES
	  ('cat-abayas','abayas','Abayas','عبايات','Abayas'),
	  ('cat-hijabs','hijabs','Hijabs','حجابات','Hijabs'),
	  ('cat-dresses','dresses','Dresses','فساتين','Robes')`)

	tx.MustExec(`INSERT INTO colors(id,name,name_ar,name_fr,hex) VALUES
	  ('col-black','Black','أسود','Noir','#000000'),
	  ('col-beige','Beige','بيج','Beige','#d9c7a7')`)

	tx.MustExec(`INSERT INTO sizes(id,name) VALUES
	  ('sz-s','S'),('sz-m','M'),('sz-l','L')`)

	tx.MustExec(`INSERT INTO products(id,category_id,name,name_ar,name_fr,slug,base_price,status,sold_count,image_url) VALUES
	  ('prd-abaya-classic','cat-abayas','Classic Abaya','عباية كلاسيكية','Abaya classique','classic-abaya',120,'active',48,NULL),
	  ('prd-abaya-kimono','cat-abayas','Kimono Abaya','عباية كيمونو','Abaya kimono','kimono-abaya',150,'active',31,'media/legacy/kimono.jpg'),
	  ('prd-hijab-jersey','cat-hijabs','Jersey Hijab','حجاب جيرسي','Hijab jersey','jersey-hijab',25,'active',112,NULL)`)

	tx.MustExec(`INSERT INTO product_variants(id,product_id,size_id,color_id,stock) VALUES
	  ('var-classic-m-black','prd-abaya-classic','sz-m','col-black',10),
	  ('var-classic-l-black','prd-abaya-classic','sz-l','col-black',4),
	  ('var-kimono-m-beige','prd-abaya-kimono','sz-m','col-beige',7)`)

	tx.MustExec(`INSERT INTO product_images(id,product_id,image_url,is_main,position) VALUES
	  ('img-classic-1','prd-abaya-classic','media/products/classic-abaya/front.jpg',1,0),
	  ('img-classic-2','prd-abaya-classic','media/products/classic-abaya/back.jpg',0,1),
	  ('img-jersey-1','prd-hijab-jersey','media/products/jersey-hijab/main.jpg',0,0)`)

	tx.MustExec(`INSERT INTO product_discounts(id,product_id,discount_percent,ends_at,active) VALUES
	  ('dsc-classic','prd-abaya-classic',25,'2099-01-01T00:00:00Z',1)`)

	tx.MustExec(`INSERT INTO promotions(id,title,subtitle,discount_percent,ends_at,active) VALUES
	  ('promo-aid','Aid Sale','Up to 30% off everything',30,'2099-01-01T00:00:00Z',1)`)

	tx.MustExec(`INSERT INTO reviews(id,product_id,rating,comment) VALUES
	  ('rev-1','prd-abaya-classic',5,'Excellent quality'),
	  ('rev-2','prd-abaya-classic',4,''),
	  ('rev-3','prd-hijab-jersey',5,'')`)

	return tx.Commit()
}
