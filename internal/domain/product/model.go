package product

import (
	"time"

	"github.com/adminboard/adminboard/internal/docstore"
	"github.com/adminboard/adminboard/internal/types"
	"github.com/shopspring/decimal"
)

func init() {
	// Prices serialize as JSON numbers, the shape the dashboard UI consumes.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product represents a catalog product in the system
type Product struct {
	// ID is the unique identifier for the product
	ID string `json:"_id"`

	// Name is the display name of the product
	Name string `json:"name"`

	// Description is the product description shown in the catalog
	Description string `json:"description"`

	// Price is the unit price; always non-negative
	Price decimal.Decimal `json:"price"`

	// Inventory is the stock count; always non-negative
	Inventory int `json:"inventory"`

	// Category groups products in the catalog
	Category string `json:"category"`

	types.BaseModel
}

// FromDocument converts a stored document to a domain product
func FromDocument(doc docstore.Document) *Product {
	if doc == nil {
		return nil
	}
	p := &Product{
		ID:          asString(doc[docstore.FieldID]),
		Name:        asString(doc["name"]),
		Description: asString(doc["description"]),
		Category:    asString(doc["category"]),
	}
	if price, ok := doc["price"].(decimal.Decimal); ok {
		p.Price = price
	}
	if inventory, ok := doc["inventory"].(int); ok {
		p.Inventory = inventory
	}
	p.Status = types.Status(asString(doc["status"]))
	p.CreatedAt, _ = doc[docstore.FieldCreatedAt].(time.Time)
	p.UpdatedAt, _ = doc[docstore.FieldUpdatedAt].(time.Time)
	return p
}

// FromDocumentList converts a list of stored documents to domain products
func FromDocumentList(docs []docstore.Document) []*Product {
	result := make([]*Product, len(docs))
	for i, doc := range docs {
		result[i] = FromDocument(doc)
	}
	return result
}

// ToDocument converts the product to its stored document shape. Timestamps
// are omitted; the store owns those.
func (p *Product) ToDocument() docstore.Document {
	return docstore.Document{
		docstore.FieldID: p.ID,
		"name":           p.Name,
		"description":    p.Description,
		"price":          p.Price,
		"inventory":      p.Inventory,
		"category":       p.Category,
		"status":         string(p.Status),
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
