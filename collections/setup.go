// Package collections creates and seeds the PocketBase collections backing
// the quotation site.
package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the products, testimonials,
// quotation_requests, quotation_replies and email_subscriptions collections
// exist.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "products", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "slug", Required: true})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.NumberField{Name: "unit_price", Required: true})
		c.Fields.Add(&core.TextField{Name: "features", Required: false})
		c.Fields.Add(&core.BoolField{Name: "popular"})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
	})

	ensureCollection(app, "testimonials", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "company", Required: false})
		c.Fields.Add(&core.TextField{Name: "role", Required: false})
		c.Fields.Add(&core.TextField{Name: "message", Required: true})
		c.Fields.Add(&core.NumberField{Name: "rating", Required: true})
		c.Fields.Add(&core.TextField{Name: "project_type", Required: false})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
	})

	quotations := ensureCollection(app, "quotation_requests", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "full_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "email", Required: true})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "company", Required: false})
		c.Fields.Add(&core.TextField{Name: "product_type", Required: true})
		c.Fields.Add(&core.NumberField{Name: "quantity", Required: true})
		c.Fields.Add(&core.BoolField{Name: "print_front"})
		c.Fields.Add(&core.BoolField{Name: "print_back"})
		c.Fields.Add(&core.TextField{Name: "print_size", Required: false})
		c.Fields.Add(&core.TextField{Name: "print_colors", Required: false})
		c.Fields.Add(&core.TextField{Name: "timeline", Required: false})
		c.Fields.Add(&core.TextField{Name: "budget", Required: false})
		c.Fields.Add(&core.TextField{Name: "description", Required: false})
		c.Fields.Add(&core.BoolField{Name: "has_logo"})
		c.Fields.Add(&core.TextField{Name: "logo_description", Required: false})
		c.Fields.Add(&core.NumberField{Name: "estimated_cost", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"submitted", "pending", "replied"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "quotation_replies", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "request",
			Required:      true,
			CollectionId:  quotations.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "subject", Required: true})
		c.Fields.Add(&core.TextField{Name: "message", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"sent", "failed"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "error", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	ensureCollection(app, "email_subscriptions", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "email", Required: true})
		c.Fields.Add(&core.TextField{Name: "source", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"submitted", "pending"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "attempts", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
