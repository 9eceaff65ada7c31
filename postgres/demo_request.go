package postgres

import (
	"context"
	"database/sql"
	"time"

	intake "github.com/dawsos/intake-api"
	"github.com/google/uuid"
)

type DemoRequestService struct {
	db *sql.DB
}

func NewDemoRequestService(db *sql.DB) intake.DemoRequestService {
	return &DemoRequestService{
		db: db,
	}
}

func (s DemoRequestService) Create(ctx context.Context, n intake.NewDemoRequest) (intake.DemoRequest, error) {
	d := intake.DemoRequest{
		ID:              uuid.NewString(),
		Name:            n.Name,
		Email:           n.Email,
		Company:         n.Company,
		Role:            n.Role,
		Sector:          n.Sector,
		Urgency:         n.Urgency,
		SLORequirements: n.SLORequirements,
		UseCase:         n.UseCase,
		Newsletter:      n.Newsletter,
		CreatedAt:       time.Now().UTC(),
	}

	query := `
	INSERT INTO demo_requests (
		id, name, email, company, role, sector, urgency, slo_requirements, use_case, newsletter, created_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
	)`

	_, err := s.db.ExecContext(ctx, query,
		d.ID,
		d.Name,
		d.Email,
		d.Company,
		d.Role,
		d.Sector,
		d.Urgency,
		d.SLORequirements,
		d.UseCase,
		d.Newsletter,
		d.CreatedAt,
	)
	if err != nil {
		return intake.DemoRequest{}, err
	}

	return d, nil
}

func (s DemoRequestService) List(ctx context.Context) ([]intake.DemoRequest, error) {
	query := `
	SELECT
		id,
		name,
		email,
		company,
		role,
		sector,
		urgency,
		slo_requirements,
		use_case,
		newsletter,
		created_at
	FROM demo_requests
	ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []intake.DemoRequest{}
	for rows.Next() {
		var d intake.DemoRequest
		err := rows.Scan(
			&d.ID,
			&d.Name,
			&d.Email,
			&d.Company,
			&d.Role,
			&d.Sector,
			&d.Urgency,
			&d.SLORequirements,
			&d.UseCase,
			&d.Newsletter,
			&d.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, d)
	}

	return requests, rows.Err()
}
