// Package memory provides the volatile reference storage backend: maps
// guarded by a mutex, with records kept in insertion order. State lives
// for the life of the process only.
package memory

import (
	"context"
	"sync"
	"time"

	intake "github.com/dawsos/intake-api"
	"github.com/google/uuid"
)

type DemoRequestService struct {
	mu       sync.RWMutex
	requests []intake.DemoRequest
}

func NewDemoRequestService() *DemoRequestService {
	return &DemoRequestService{}
}

func (s *DemoRequestService) Create(ctx context.Context, n intake.NewDemoRequest) (intake.DemoRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

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
	s.requests = append(s.requests, d)
	return d, nil
}

func (s *DemoRequestService) List(ctx context.Context) ([]intake.DemoRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]intake.DemoRequest, len(s.requests))
	copy(out, s.requests)
	return out, nil
}

type ContactMessageService struct {
	mu       sync.RWMutex
	messages []intake.ContactMessage
}

func NewContactMessageService() *ContactMessageService {
	return &ContactMessageService{}
}

func (s *ContactMessageService) Create(ctx context.Context, n intake.NewContactMessage) (intake.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := intake.ContactMessage{
		ID:        uuid.NewString(),
		Email:     n.Email,
		Role:      n.Role,
		Message:   n.Message,
		CreatedAt: time.Now().UTC(),
	}
	s.messages = append(s.messages, m)
	return m, nil
}

func (s *ContactMessageService) List(ctx context.Context) ([]intake.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]intake.ContactMessage, len(s.messages))
	copy(out, s.messages)
	return out, nil
}

type ProductService struct {
	mu       sync.RWMutex
	products []intake.Product
	bySlug   map[string]int
	byID     map[string]int
}

func NewProductService() *ProductService {
	return &ProductService{
		bySlug: make(map[string]int),
		byID:   make(map[string]int),
	}
}

func (s *ProductService) Create(ctx context.Context, n intake.NewProduct) (intake.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.bySlug[n.Slug]; exists {
		return intake.Product{}, intake.ErrDuplicateSlug
	}

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
	s.bySlug[p.Slug] = len(s.products)
	s.byID[p.ID] = len(s.products)
	s.products = append(s.products, p)
	return copyProduct(p), nil
}

func (s *ProductService) List(ctx context.Context) ([]intake.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]intake.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, copyProduct(p))
	}
	return out, nil
}

func (s *ProductService) GetByID(ctx context.Context, id string) (intake.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return intake.Product{}, intake.ErrProductNotFound
	}
	return copyProduct(s.products[i]), nil
}

func (s *ProductService) GetBySlug(ctx context.Context, slug string) (intake.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.bySlug[slug]
	if !ok {
		return intake.Product{}, intake.ErrProductNotFound
	}
	return copyProduct(s.products[i]), nil
}

// copyProduct clones the features slice so callers cannot alias stored
// state.
func copyProduct(p intake.Product) intake.Product {
	p.Features = append([]string(nil), p.Features...)
	return p
}

type PurchaseService struct {
	mu        sync.RWMutex
	purchases []intake.Purchase
}

func NewPurchaseService() *PurchaseService {
	return &PurchaseService{}
}

func (s *PurchaseService) Create(ctx context.Context, n intake.NewPurchase) (intake.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := intake.Purchase{
		ID:        uuid.NewString(),
		UserID:    n.UserID,
		ProductID: n.ProductID,
		Amount:    n.Amount,
		Status:    n.Status,
		CreatedAt: time.Now().UTC(),
	}
	s.purchases = append(s.purchases, p)
	return p, nil
}

func (s *PurchaseService) ListByUser(ctx context.Context, userID string) ([]intake.Purchase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]intake.Purchase, 0)
	for _, p := range s.purchases {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}
