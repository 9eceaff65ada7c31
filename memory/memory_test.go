package memory

import (
	"context"
	"sync"
	"testing"

	intake "github.com/dawsos/intake-api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoRequestCreateAssignsIdentity(t *testing.T) {
	s := NewDemoRequestService()
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		d, err := s.Create(ctx, intake.NewDemoRequest{
			Name:    "Ada",
			Email:   "ada@example.com",
			Company: "AEL",
			Role:    "CTO",
		})
		require.NoError(t, err)
		require.NotEmpty(t, d.ID)
		require.False(t, seen[d.ID], "duplicate id %s", d.ID)
		seen[d.ID] = true
	}
}

func TestDemoRequestListInsertionOrder(t *testing.T) {
	s := NewDemoRequestService()
	ctx := context.Background()

	names := []string{"first", "second", "third"}
	for _, name := range names {
		_, err := s.Create(ctx, intake.NewDemoRequest{
			Name:    name,
			Email:   "lead@example.com",
			Company: "AEL",
			Role:    "CTO",
		})
		require.NoError(t, err)
	}

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, name := range names {
		assert.Equal(t, name, got[i].Name)
	}
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].CreatedAt.Before(got[i-1].CreatedAt),
			"createdAt must be non-decreasing in insertion order")
	}
}

func TestDemoRequestOptionalDefaults(t *testing.T) {
	s := NewDemoRequestService()

	d, err := s.Create(context.Background(), intake.NewDemoRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Company: "AEL",
		Role:    "CTO",
	})
	require.NoError(t, err)

	assert.Empty(t, d.Sector)
	assert.Empty(t, d.Urgency)
	assert.Empty(t, d.SLORequirements)
	assert.Empty(t, d.UseCase)
	assert.False(t, d.Newsletter)
}

func TestContactMessageConcurrentCreates(t *testing.T) {
	s := NewContactMessageService()
	ctx := context.Background()

	const workers = 32

	ids := make([]string, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			m, err := s.Create(ctx, intake.NewContactMessage{
				Email: "lead@example.com",
				Role:  "Engineer",
			})
			assert.NoError(t, err)
			ids[i] = m.ID
		}(i)
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, id := range ids {
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}

	got, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, workers)
}

func TestProductFeaturesRoundTrip(t *testing.T) {
	s := NewProductService()
	ctx := context.Background()

	created, err := s.Create(ctx, intake.NewProduct{
		Name:     "Kit",
		Slug:     "kit",
		Price:    "10.00",
		Type:     intake.ProductTypeKit,
		Tier:     intake.TierStarter,
		Features: []string{"a", "b", "c"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, created.Features)

	// Mutating the returned slice must not leak into stored state.
	created.Features[0] = "mutated"

	bySlug, err := s.GetBySlug(ctx, "kit")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, bySlug.Features)

	listed, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, []string{"a", "b", "c"}, listed[0].Features)

	byID, err := s.GetByID(ctx, bySlug.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, byID.Features)
}

func TestProductDuplicateSlug(t *testing.T) {
	s := NewProductService()
	ctx := context.Background()

	n := intake.NewProduct{
		Name:  "Kit",
		Slug:  "kit",
		Price: "10.00",
		Type:  intake.ProductTypeKit,
		Tier:  intake.TierStarter,
	}

	_, err := s.Create(ctx, n)
	require.NoError(t, err)

	_, err = s.Create(ctx, n)
	assert.ErrorIs(t, err, intake.ErrDuplicateSlug)
}

func TestProductNotFound(t *testing.T) {
	s := NewProductService()

	_, err := s.GetBySlug(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, intake.ErrProductNotFound)

	_, err = s.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, intake.ErrProductNotFound)
}

func TestSeedCatalog(t *testing.T) {
	s := NewProductService()
	ctx := context.Background()

	require.NoError(t, intake.SeedCatalog(ctx, s))

	products, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)

	pro, err := s.GetBySlug(ctx, "dawsos-pro")
	require.NoError(t, err)
	assert.Equal(t, "Build like DawsOS - Pro Kit", pro.Name)
	assert.Equal(t, "199.00", pro.Price)
	assert.Equal(t, intake.TierPro, pro.Tier)
	assert.True(t, pro.IsActive)
	assert.Equal(t, []string{
		"Everything in Starter Kit",
		"Video walkthroughs and tutorials",
		"6-month updates to all content",
		"Discord community access",
		"All 5 n8n agents: sale→fulfillment, KPI watchdog, content factory, affiliate engine, release pipeline",
		`"How to sell" scripts and pricing matrices`,
		"Agent workflow scaffolds and SLO badge patterns",
	}, pro.Features)

	// Re-seeding an already-populated store is a no-op.
	require.NoError(t, intake.SeedCatalog(ctx, s))
	products, err = s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestPurchaseListByUser(t *testing.T) {
	s := NewPurchaseService()
	ctx := context.Background()

	for _, userID := range []string{"u1", "u2", "u1"} {
		_, err := s.Create(ctx, intake.NewPurchase{
			UserID:    userID,
			ProductID: "p1",
			Amount:    "49.00",
			Status:    intake.PurchasePending,
		})
		require.NoError(t, err)
	}

	got, err := s.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = s.ListByUser(ctx, "u3")
	require.NoError(t, err)
	assert.Empty(t, got)
}
