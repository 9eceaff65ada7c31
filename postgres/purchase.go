package postgres

import (
	"context"
	"database/sql"
	"time"

	intake "github.com/dawsos/intake-api"
	"github.com/google/uuid"
)

type PurchaseService struct {
	db *sql.DB
}

func NewPurchaseService(db *sql.DB) intake.PurchaseService {
	return &PurchaseService{
		db: db,
	}
}

func (s PurchaseService) Create(ctx context.Context, n intake.NewPurchase) (intake.Purchase, error) {
	p := intake.Purchase{
		ID:        uuid.NewString(),
		UserID:    n.UserID,
		ProductID: n.ProductID,
		Amount:    n.Amount,
		Status:    n.Status,
		CreatedAt: time.Now().UTC(),
	}

	query := `
	INSERT INTO purchases (
		id, user_id, product_id, amount, status, created_at
	) VALUES (
		$1, $2, $3, $4, $5, $6
	)`

	_, err := s.db.ExecContext(ctx, query,
		p.ID,
		p.UserID,
		p.ProductID,
		p.Amount,
		p.Status,
		p.CreatedAt,
	)
	if err != nil {
		return intake.Purchase{}, err
	}

	return p, nil
}

func (s PurchaseService) ListByUser(ctx context.Context, userID string) ([]intake.Purchase, error) {
	query := `
	SELECT
		id,
		user_id,
		product_id,
		amount,
		status,
		payment_ref,
		created_at,
		completed_at
	FROM purchases
	WHERE user_id=$1
	ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	purchases := []intake.Purchase{}
	for rows.Next() {
		var (
			p           intake.Purchase
			paymentRef  sql.NullString
			completedAt sql.NullTime
		)
		err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.ProductID,
			&p.Amount,
			&p.Status,
			&paymentRef,
			&p.CreatedAt,
			&completedAt,
		)
		if err != nil {
			return nil, err
		}
		p.PaymentRef = paymentRef.String
		if completedAt.Valid {
			t := completedAt.Time
			p.CompletedAt = &t
		}
		purchases = append(purchases, p)
	}

	return purchases, rows.Err()
}
