package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type productDef struct {
	slug      string
	name      string
	unitPrice int
	features  string
	popular   bool
}

type testimonialDef struct {
	name        string
	company     string
	role        string
	message     string
	rating      int
	projectType string
}

var productSeed = []productDef{
	{
		slug:      "notebook",
		name:      "Custom Notebooks",
		unitPrice: 120,
		features:  "A4/A5 sizes, Custom covers, Logo embossing, Bulk orders",
		popular:   true,
	},
	{
		slug:      "pen",
		name:      "Branded Pens",
		unitPrice: 25,
		features:  "Multiple colors, Laser engraving, Bulk pricing, Corporate gifts",
	},
	{
		slug:      "shirt",
		name:      "Custom T-Shirts",
		unitPrice: 280,
		features:  "Premium cotton, DTG printing, All sizes, Color options",
		popular:   true,
	},
	{
		slug:      "jacket",
		name:      "Corporate Jackets",
		unitPrice: 450,
		features:  "Weather resistant, Embroidered logos, Premium quality, Team uniforms",
	},
}

var testimonialSeed = []testimonialDef{
	{
		name:        "Maria Santos",
		company:     "TechStart Philippines",
		role:        "Marketing Director",
		message:     "Outstanding quality and service! Our custom notebooks became the highlight of our conference. The team was professional and delivered on time.",
		rating:      5,
		projectType: "Corporate Notebooks",
	},
	{
		name:        "Carlos Mendoza",
		company:     "Verde Restaurant Group",
		role:        "Operations Manager",
		message:     "The custom uniforms exceeded our expectations. Great fabric quality and the prints have held up perfectly after months of daily use.",
		rating:      5,
		projectType: "Staff Uniforms",
	},
	{
		name:        "Jennifer Lee",
		company:     "CreativeHub Agency",
		role:        "Creative Director",
		message:     "PrintCraft understood our brand vision perfectly. The promotional items were exactly what we needed for our client campaigns.",
		rating:      5,
		projectType: "Promotional Items",
	},
}

// Seed inserts the catalog products and testimonials on first startup.
// Returns early without touching anything when data already exists.
func Seed(app *pocketbase.PocketBase) error {
	if err := seedProducts(app); err != nil {
		return err
	}
	return seedTestimonials(app)
}

func seedProducts(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		return fmt.Errorf("seed: could not find products collection: %w", err)
	}

	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("seed: could not query products: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for i, p := range productSeed {
		record := core.NewRecord(col)
		record.Set("slug", p.slug)
		record.Set("name", p.name)
		record.Set("unit_price", p.unitPrice)
		record.Set("features", p.features)
		record.Set("popular", p.popular)
		record.Set("sort_order", i+1)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: could not save product %q: %w", p.slug, err)
		}
	}
	return nil
}

func seedTestimonials(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("testimonials")
	if err != nil {
		return fmt.Errorf("seed: could not find testimonials collection: %w", err)
	}

	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("seed: could not query testimonials: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for i, t := range testimonialSeed {
		record := core.NewRecord(col)
		record.Set("name", t.name)
		record.Set("company", t.company)
		record.Set("role", t.role)
		record.Set("message", t.message)
		record.Set("rating", t.rating)
		record.Set("project_type", t.projectType)
		record.Set("sort_order", i+1)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: could not save testimonial %q: %w", t.name, err)
		}
	}
	return nil
}
