package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Apply inserts reference data for manual testing. It is idempotent via
// ON CONFLICT upserts keyed on explicit ids; serial sequences are bumped
// afterwards so later inserts don't collide.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	steps := []struct {
		name string
		fn   func(context.Context, *pgxpool.Pool) error
	}{
		{"departments", seedDepartments},
		{"categories", seedCategories},
		{"attributes", seedAttributes},
		{"products", seedProducts},
		{"shipping", seedShipping},
		{"taxes", seedTaxes},
		{"sequences", bumpSequences},
	}
	for _, s := range steps {
		if err := s.fn(ctx, pool); err != nil {
			return fmt.Errorf("seed %s: %w", s.name, err)
		}
	}
	return nil
}

func seedDepartments(ctx context.Context, pool *pgxpool.Pool) error {
	const q = `
INSERT INTO department (department_id, name, description)
VALUES ($1, $2, $3)
ON CONFLICT (department_id) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description
`
	departments := []struct {
		id          int
		name        string
		description string
	}{
		{1, "Regional", "Proud of your country? Wear a T-shirt with a national symbol stamp!"},
		{2, "Nature", "Find beautiful T-shirts with animals and flowers in our Nature department!"},
		{3, "Seasonal", "Each time of the year has a special flavor. Our seasonal T-shirts express traditional symbols."},
	}
	for _, d := range departments {
		if _, err := pool.Exec(ctx, q, d.id, d.name, d.description); err != nil {
			return err
		}
	}
	return nil
}

func seedCategories(ctx context.Context, pool *pgxpool.Pool) error {
	const q = `
INSERT INTO category (category_id, department_id, name, description)
VALUES ($1, $2, $3, $4)
ON CONFLICT (category_id) DO UPDATE SET department_id = EXCLUDED.department_id, name = EXCLUDED.name, description = EXCLUDED.description
`
	categories := []struct {
		id           int
		departmentID int
		name         string
		description  string
	}{
		{1, 1, "French", "The French have always had an eye for beauty."},
		{2, 1, "Italian", "The full and resplendent treasure chest of art, literature, music, and food."},
		{3, 1, "Irish", "It was Churchill who remarked that he thought the Irish most curious."},
		{4, 2, "Animal", "Our ancestors saw shapes of animals in the stars."},
		{5, 2, "Flower", "These unusual flower designs come from Japanese floral books of the 19th century."},
		{6, 3, "Christmas", "Because this is a unique Christmas T-shirt, you can wear it year-round."},
		{7, 3, "Valentine's", "For the more timid, all you have to do is wear your heartfelt message."},
	}
	for _, c := range categories {
		if _, err := pool.Exec(ctx, q, c.id, c.departmentID, c.name, c.description); err != nil {
			return err
		}
	}
	return nil
}

func seedAttributes(ctx context.Context, pool *pgxpool.Pool) error {
	const attrQ = `
INSERT INTO attribute (attribute_id, name)
VALUES ($1, $2)
ON CONFLICT (attribute_id) DO UPDATE SET name = EXCLUDED.name
`
	const valueQ = `
INSERT INTO attribute_value (attribute_value_id, attribute_id, value)
VALUES ($1, $2, $3)
ON CONFLICT (attribute_value_id) DO UPDATE SET attribute_id = EXCLUDED.attribute_id, value = EXCLUDED.value
`
	for _, a := range []struct {
		id   int
		name string
	}{{1, "Size"}, {2, "Color"}} {
		if _, err := pool.Exec(ctx, attrQ, a.id, a.name); err != nil {
			return err
		}
	}
	values := []struct {
		id     int
		attrID int
		value  string
	}{
		{1, 1, "S"}, {2, 1, "M"}, {3, 1, "L"}, {4, 1, "XL"}, {5, 1, "XXL"},
		{6, 2, "White"}, {7, 2, "Black"}, {8, 2, "Red"}, {9, 2, "Orange"},
		{10, 2, "Yellow"}, {11, 2, "Green"}, {12, 2, "Blue"}, {13, 2, "Indigo"},
		{14, 2, "Purple"},
	}
	for _, v := range values {
		if _, err := pool.Exec(ctx, valueQ, v.id, v.attrID, v.value); err != nil {
			return err
		}
	}
	return nil
}

func seedProducts(ctx context.Context, pool *pgxpool.Pool) error {
	const productQ = `
INSERT INTO product (product_id, name, description, price, discounted_price, image, image_2, thumbnail, display)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (product_id) DO UPDATE SET
  name = EXCLUDED.name, description = EXCLUDED.description,
  price = EXCLUDED.price, discounted_price = EXCLUDED.discounted_price,
  image = EXCLUDED.image, image_2 = EXCLUDED.image_2,
  thumbnail = EXCLUDED.thumbnail, display = EXCLUDED.display
`
	const pcQ = `
INSERT INTO product_category (product_id, category_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING
`
	const paQ = `
INSERT INTO product_attribute (product_id, attribute_value_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING
`
	products := []struct {
		id              int
		name            string
		description     string
		price           string
		discountedPrice string
		categoryID      int
	}{
		{1, "Arc d'Triomphe", "This beautiful and iconic T-shirt will no doubt lead you to your own triumph.", "14.99", "0.00", 1},
		{2, "Chartres Cathedral", "The Cathedral of Our Lady of Chartres is a medieval Catholic cathedral noted for its Gothic architecture.", "16.95", "15.95", 1},
		{3, "Coat of Arms", "This was the coat of arms of the French Republic.", "14.50", "0.00", 1},
		{4, "Gallic Cock", "This fancy chicken is perhaps the most beloved of all French symbols.", "18.99", "16.99", 1},
		{5, "Italia", "The Azzurri are the pride of Italian football.", "22.00", "18.99", 2},
		{6, "Colosseum", "The Colosseum is an oval amphitheatre in the centre of Rome.", "19.99", "0.00", 2},
		{7, "Irish Coat of Arms", "This was the official arms of the Kingdom of Ireland.", "14.99", "0.00", 3},
		{8, "Guinness Toucan", "The toucan was one of the most beloved features of Guinness advertising.", "15.99", "14.00", 3},
		{9, "Haute Couture", "This dandy chicken is true style, obviously from the haute couture.", "15.99", "14.95", 4},
		{10, "Hummingbird", "This T-shirt features a beautiful hummingbird in flight.", "14.99", "0.00", 4},
		{11, "Iris", "The iris has a long horticultural history.", "17.50", "0.00", 5},
		{12, "Lily", "The lily is a flower of rebirth.", "16.95", "13.99", 5},
		{13, "Holiday Wreath", "A very traditional and lovely wreath for the holidays.", "19.99", "17.99", 6},
		{14, "Santa Claus", "Ho ho ho! Santa is the universal symbol of Christmas cheer.", "21.00", "18.50", 6},
		{15, "Cupid Kitten", "This cuddly kitten is ready to deliver your valentine message.", "14.99", "12.99", 7},
		{16, "Be My Valentine", "Wear your heart on your T-shirt, not just your sleeve.", "15.50", "0.00", 7},
	}
	for _, p := range products {
		img := fmt.Sprintf("product-%d.gif", p.id)
		img2 := fmt.Sprintf("product-%d-2.gif", p.id)
		thumb := fmt.Sprintf("product-%d-thumb.gif", p.id)
		if _, err := pool.Exec(ctx, productQ, p.id, p.name, p.description, p.price, p.discountedPrice, img, img2, thumb, 2); err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, pcQ, p.id, p.categoryID); err != nil {
			return err
		}
		// every product comes in all sizes and colors
		for valueID := 1; valueID <= 14; valueID++ {
			if _, err := pool.Exec(ctx, paQ, p.id, valueID); err != nil {
				return err
			}
		}
	}
	return nil
}

func seedShipping(ctx context.Context, pool *pgxpool.Pool) error {
	const regionQ = `
INSERT INTO shipping_region (shipping_region_id, shipping_region)
VALUES ($1, $2)
ON CONFLICT (shipping_region_id) DO UPDATE SET shipping_region = EXCLUDED.shipping_region
`
	const shippingQ = `
INSERT INTO shipping (shipping_id, shipping_type, shipping_cost, shipping_region_id)
VALUES ($1, $2, $3, $4)
ON CONFLICT (shipping_id) DO UPDATE SET
  shipping_type = EXCLUDED.shipping_type, shipping_cost = EXCLUDED.shipping_cost,
  shipping_region_id = EXCLUDED.shipping_region_id
`
	regions := []struct {
		id   int
		name string
	}{
		{1, "Please Select"},
		{2, "US / Canada"},
		{3, "Europe"},
		{4, "Rest of World"},
	}
	for _, r := range regions {
		if _, err := pool.Exec(ctx, regionQ, r.id, r.name); err != nil {
			return err
		}
	}
	options := []struct {
		id       int
		typ      string
		cost     string
		regionID int
	}{
		{1, "Next Day Delivery ($20)", "20.00", 2},
		{2, "3-4 Days ($10)", "10.00", 2},
		{3, "7 Days ($5)", "5.00", 2},
		{4, "By air (7 days, $25)", "25.00", 3},
		{5, "By sea (28 days, $10)", "10.00", 3},
		{6, "By air (10 days, $35)", "35.00", 4},
		{7, "By sea (28 days, $30)", "30.00", 4},
	}
	for _, o := range options {
		if _, err := pool.Exec(ctx, shippingQ, o.id, o.typ, o.cost, o.regionID); err != nil {
			return err
		}
	}
	return nil
}

func seedTaxes(ctx context.Context, pool *pgxpool.Pool) error {
	const q = `
INSERT INTO tax (tax_id, tax_type, tax_percentage)
VALUES ($1, $2, $3)
ON CONFLICT (tax_id) DO UPDATE SET tax_type = EXCLUDED.tax_type, tax_percentage = EXCLUDED.tax_percentage
`
	taxes := []struct {
		id         int
		typ        string
		percentage string
	}{
		{1, "Sales Tax at 8.5%", "8.50"},
		{2, "No Tax", "0.00"},
	}
	for _, t := range taxes {
		if _, err := pool.Exec(ctx, q, t.id, t.typ, t.percentage); err != nil {
			return err
		}
	}
	return nil
}

// bumpSequences moves each serial past the explicit ids inserted above.
func bumpSequences(ctx context.Context, pool *pgxpool.Pool) error {
	sequences := []struct {
		table, column string
	}{
		{"department", "department_id"},
		{"category", "category_id"},
		{"attribute", "attribute_id"},
		{"attribute_value", "attribute_value_id"},
		{"product", "product_id"},
		{"shipping_region", "shipping_region_id"},
		{"shipping", "shipping_id"},
		{"tax", "tax_id"},
	}
	for _, s := range sequences {
		q := fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%s', '%s'), (SELECT COALESCE(MAX(%s), 1) FROM %s))`,
			s.table, s.column, s.column, s.table,
		)
		if _, err := pool.Exec(ctx, q); err != nil {
			return err
		}
	}
	return nil
}
