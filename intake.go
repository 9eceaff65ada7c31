// Package intake holds the domain types for the DawsOS marketing-site API:
// lead records captured from the site forms, the product catalog, and
// purchase intents. Storage backends implement the service interfaces
// declared here.
package intake

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrDuplicateSlug   = errors.New("product slug already in use")
)

// FieldError describes a single violated constraint on an intake payload.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError carries every field violation found in a payload. It is
// returned as a plain error value and translated to a 400 response at the
// handler boundary.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	reasons := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		reasons = append(reasons, fmt.Sprintf("%s: %s", f.Field, f.Reason))
	}
	return "validation failed: " + strings.Join(reasons, "; ")
}

// DemoRequest is a stored demo-request lead.
type DemoRequest struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Company         string    `json:"company"`
	Role            string    `json:"role"`
	Sector          string    `json:"sector"`
	Urgency         string    `json:"urgency"`
	SLORequirements string    `json:"sloRequirements"`
	UseCase         string    `json:"useCase"`
	Newsletter      bool      `json:"newsletter"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewDemoRequest is the intake payload for a demo request. Optional fields
// default to empty string / false when absent.
type NewDemoRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Company         string `json:"company" validate:"required"`
	Role            string `json:"role" validate:"required"`
	Sector          string `json:"sector"`
	Urgency         string `json:"urgency"`
	SLORequirements string `json:"sloRequirements"`
	UseCase         string `json:"useCase"`
	Newsletter      bool   `json:"newsletter"`
}

// ContactMessage is a stored contact-form submission.
type ContactMessage struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewContactMessage is the intake payload for a contact message.
type NewContactMessage struct {
	Email   string `json:"email" validate:"required,email"`
	Role    string `json:"role" validate:"required"`
	Message string `json:"message"`
}

// Product types and tiers. The catalog only carries these values; intake
// payloads are rejected on anything else.
const (
	ProductTypeKit          = "kit"
	ProductTypeSubscription = "subscription"

	TierStarter = "starter"
	TierPro     = "pro"
	TierBundle  = "bundle"
)

// Product is a catalog entry. Feature ordering is display order and must
// survive storage round trips.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Type        string    `json:"type"`
	Tier        string    `json:"tier"`
	Features    []string  `json:"features"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewProduct is the creation payload used by the catalog seed. IsActive
// defaults to true when absent.
type NewProduct struct {
	Name        string   `json:"name" validate:"required"`
	Slug        string   `json:"slug" validate:"required"`
	Description string   `json:"description"`
	Price       string   `json:"price" validate:"required,numeric"`
	Type        string   `json:"type" validate:"required,oneof=kit subscription"`
	Tier        string   `json:"tier" validate:"required,oneof=starter pro bundle"`
	Features    []string `json:"features"`
	IsActive    *bool    `json:"isActive"`
}

// Purchase statuses.
const (
	PurchasePending   = "pending"
	PurchaseCompleted = "completed"
	PurchaseFailed    = "failed"
)

// Purchase is an accepted purchase intent. No payment integration exists,
// so records stay pending with a nil completion time and empty payment
// reference until an external process settles them.
type Purchase struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	ProductID   string     `json:"productId"`
	Amount      string     `json:"amount"`
	Status      string     `json:"status"`
	PaymentRef  string     `json:"paymentRef"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

// NewPurchase is the intake payload for a purchase. Status defaults to
// pending when absent.
type NewPurchase struct {
	UserID    string `json:"userId" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
	Amount    string `json:"amount" validate:"required,numeric"`
	Status    string `json:"status" validate:"omitempty,oneof=pending completed failed"`
}

// DemoRequestService is the storage contract for demo requests. Create
// assigns the identifier and timestamp; List returns records in insertion
// order.
type DemoRequestService interface {
	Create(ctx context.Context, n NewDemoRequest) (DemoRequest, error)
	List(ctx context.Context) ([]DemoRequest, error)
}

// ContactMessageService is the storage contract for contact messages.
type ContactMessageService interface {
	Create(ctx context.Context, n NewContactMessage) (ContactMessage, error)
	List(ctx context.Context) ([]ContactMessage, error)
}

// ProductService is the storage contract for the product catalog.
type ProductService interface {
	Create(ctx context.Context, n NewProduct) (Product, error)
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (Product, error)
	GetBySlug(ctx context.Context, slug string) (Product, error)
}

// PurchaseService is the storage contract for purchases.
type PurchaseService interface {
	Create(ctx context.Context, n NewPurchase) (Purchase, error)
	ListByUser(ctx context.Context, userID string) ([]Purchase, error)
}
