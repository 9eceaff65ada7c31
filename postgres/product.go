package postgres

import (
	"context"
	"database/sql"
	"time"

	intake "github.com/dawsos/intake-api"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// lib/pq errorCodeNames
// https://github.com/lib/pq/blob/master/error.go#L178
const uniqueViolation = "23505"

type ProductService struct {
	db *sql.DB
}

func NewProductService(db *sql.DB) intake.ProductService {
	return &ProductService{
		db: db,
	}
}

func (s ProductService) Create(ctx context.Context, n intake.NewProduct) (intake.Product, error) {
	active := true
	if n.IsActive != nil {
		active = *n.IsActive
	}

	p := intake.Product{
		ID:          uuid.NewString(),
		Name:        n.Name,
		Slug:        n.Slug,
		Description: n.Description,
		Price:       n.Price,
		Type:        n.Type,
		Tier:        n.Tier,
		Features:    append([]string(nil), n.Features...),
		IsActive:    active,
		CreatedAt:   time.Now().UTC(),
	}

	// Features are bound as a native text[] column. The array codec lives
	// here so handlers never see a serialized form.
	query := `
	INSERT INTO products (
		id, name, slug, description, price, type, tier, features, is_active, created_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
	)`

	_, err := s.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Slug,
		p.Description,
		p.Price,
		p.Type,
		p.Tier,
		pq.Array(p.Features),
		p.IsActive,
		p.CreatedAt,
	)
	if err != nil {
		if pqerr, ok := err.(*pq.Error); ok && pqerr.Code == uniqueViolation {
			return intake.Product{}, intake.ErrDuplicateSlug
		}
		return intake.Product{}, err
	}

	return p, nil
}

const productColumns = `
	id,
	name,
	slug,
	description,
	price,
	type,
	tier,
	features,
	is_active,
	created_at`

func (s ProductService) List(ctx context.Context) ([]intake.Product, error) {
	query := `
	SELECT ` + productColumns + `
	FROM products
	ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []intake.Product{}
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (s ProductService) GetByID(ctx context.Context, id string) (intake.Product, error) {
	query := `
	SELECT ` + productColumns + `
	FROM products
	WHERE id=$1`

	return s.getOne(ctx, query, id)
}

func (s ProductService) GetBySlug(ctx context.Context, slug string) (intake.Product, error) {
	query := `
	SELECT ` + productColumns + `
	FROM products
	WHERE slug=$1`

	return s.getOne(ctx, query, slug)
}

func (s ProductService) getOne(ctx context.Context, query string, arg string) (intake.Product, error) {
	row := s.db.QueryRowContext(ctx, query, arg)

	p, err := scanProduct(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return intake.Product{}, intake.ErrProductNotFound
		}
		return intake.Product{}, err
	}

	return p, nil
}

func scanProduct(scan func(dest ...interface{}) error) (intake.Product, error) {
	var p intake.Product
	err := scan(
		&p.ID,
		&p.Name,
		&p.Slug,
		&p.Description,
		&p.Price,
		&p.Type,
		&p.Tier,
		pq.Array(&p.Features),
		&p.IsActive,
		&p.CreatedAt,
	)
	return p, err
}
