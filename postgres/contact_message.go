package postgres

import (
	"context"
	"database/sql"
	"time"

	intake "github.com/dawsos/intake-api"
	"github.com/google/uuid"
)

type ContactMessageService struct {
	db *sql.DB
}

func NewContactMessageService(db *sql.DB) intake.ContactMessageService {
	return &ContactMessageService{
		db: db,
	}
}

func (s ContactMessageService) Create(ctx context.Context, n intake.NewContactMessage) (intake.ContactMessage, error) {
	m := intake.ContactMessage{
		ID:        uuid.NewString(),
		Email:     n.Email,
		Role:      n.Role,
		Message:   n.Message,
		CreatedAt: time.Now().UTC(),
	}

	query := `
	INSERT INTO contact_messages (
		id, email, role, message, created_at
	) VALUES (
		$1, $2, $3, $4, $5
	)`

	_, err := s.db.ExecContext(ctx, query,
		m.ID,
		m.Email,
		m.Role,
		m.Message,
		m.CreatedAt,
	)
	if err != nil {
		return intake.ContactMessage{}, err
	}

	return m, nil
}

func (s ContactMessageService) List(ctx context.Context) ([]intake.ContactMessage, error) {
	query := `
	SELECT
		id,
		email,
		role,
		message,
		created_at
	FROM contact_messages
	ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []intake.ContactMessage{}
	for rows.Next() {
		var m intake.ContactMessage
		err := rows.Scan(
			&m.ID,
			&m.Email,
			&m.Role,
			&m.Message,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}
