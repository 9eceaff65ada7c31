package intake

import (
	"context"
	"errors"
	"fmt"
)

// Catalog returns the fixed set of kit products the site sells. The slice
// is rebuilt on every call so callers may mutate their copy.
func Catalog() []NewProduct {
	return []NewProduct{
		{
			Name:        "Build like DawsOS - Starter Kit",
			Slug:        "dawsos-starter",
			Description: "Essential prompts, templates, and quickstart guide to get you building with the DawsOS method in 72 hours.",
			Price:       "49.00",
			Type:        ProductTypeKit,
			Tier:        TierStarter,
			Features: []string{
				"System prompts & persona scripts for operating-constitution work",
				"Core templates: event taxonomy, schema change playbook",
				"72-hour Quickstart: from blank page to architecture draft",
				"1 n8n automation: sale→fulfillment workflow",
				"Downloadable ZIP with all templates",
			},
		},
		{
			Name:        "Build like DawsOS - Pro Kit",
			Slug:        "dawsos-pro",
			Description: "Complete toolkit with videos, community access, and all automation workflows to scale your agent-first business.",
			Price:       "199.00",
			Type:        ProductTypeKit,
			Tier:        TierPro,
			Features: []string{
				"Everything in Starter Kit",
				"Video walkthroughs and tutorials",
				"6-month updates to all content",
				"Discord community access",
				"All 5 n8n agents: sale→fulfillment, KPI watchdog, content factory, affiliate engine, release pipeline",
				`"How to sell" scripts and pricing matrices`,
				"Agent workflow scaffolds and SLO badge patterns",
			},
		},
		{
			Name:        "Build like DawsOS - Bundle + Workbench",
			Slug:        "dawsos-bundle",
			Description: "Pro Kit plus 3 months of Agent Workbench subscription for exporting and running your flows.",
			Price:       "299.00",
			Type:        ProductTypeKit,
			Tier:        TierBundle,
			Features: []string{
				"Everything in Pro Kit",
				"3 months Agent Workbench subscription",
				"Export templates to runnable n8n flows",
				"Generate GPT profiles and starter repos",
				"Growing template library with one-click exporters",
				"Build, export, and run your agent workflows",
			},
		},
	}
}

// SeedCatalog loads the fixed catalog into the product store. Seed data
// goes through the same validation path as any other create; a seed entry
// that fails validation is a programming error and aborts startup. A slug
// already present in the store (a durable backend seeded on a previous
// boot) is skipped.
func SeedCatalog(ctx context.Context, store ProductService) error {
	for _, np := range Catalog() {
		if err := np.Validate(); err != nil {
			return fmt.Errorf("catalog entry %q: %w", np.Slug, err)
		}
		if _, err := store.Create(ctx, np); err != nil {
			if errors.Is(err, ErrDuplicateSlug) {
				continue
			}
			return fmt.Errorf("seeding product %q: %w", np.Slug, err)
		}
	}
	return nil
}
