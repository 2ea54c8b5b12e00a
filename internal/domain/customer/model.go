package customer

import (
	"time"

	"github.com/adminboard/adminboard/internal/docstore"
	"github.com/adminboard/adminboard/internal/types"
)

// Customer represents a customer in the system
type Customer struct {
	// ID is the unique identifier for the customer
	ID string `json:"_id"`

	// Name is the display name of the customer
	Name string `json:"name"`

	// Email is the email of the customer
	Email string `json:"email"`

	// Phone is the contact number of the customer
	Phone string `json:"phone"`

	// Address is the street address of the customer
	Address string `json:"address"`

	// Location is the city or region of the customer
	Location string `json:"location"`

	types.BaseModel
}

// FromDocument converts a stored document to a domain customer
func FromDocument(doc docstore.Document) *Customer {
	if doc == nil {
		return nil
	}
	c := &Customer{
		ID:       asString(doc[docstore.FieldID]),
		Name:     asString(doc["name"]),
		Email:    asString(doc["email"]),
		Phone:    asString(doc["phone"]),
		Address:  asString(doc["address"]),
		Location: asString(doc["location"]),
	}
	c.Status = types.Status(asString(doc["status"]))
	c.CreatedAt, _ = doc[docstore.FieldCreatedAt].(time.Time)
	c.UpdatedAt, _ = doc[docstore.FieldUpdatedAt].(time.Time)
	return c
}

// FromDocumentList converts a list of stored documents to domain customers
func FromDocumentList(docs []docstore.Document) []*Customer {
	result := make([]*Customer, len(docs))
	for i, doc := range docs {
		result[i] = FromDocument(doc)
	}
	return result
}

// ToDocument converts the customer to its stored document shape. Timestamps
// are omitted; the store owns those.
func (c *Customer) ToDocument() docstore.Document {
	return docstore.Document{
		docstore.FieldID: c.ID,
		"name":           c.Name,
		"email":          c.Email,
		"phone":          c.Phone,
		"address":        c.Address,
		"location":       c.Location,
		"status":         string(c.Status),
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
