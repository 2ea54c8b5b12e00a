package article

import (
	"time"

	"github.com/adminboard/adminboard/internal/docstore"
	"github.com/adminboard/adminboard/internal/types"
)

// Article is a help-center article. Articles are seeded at startup and
// read-only through the API.
type Article struct {
	ID       string `json:"_id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`
	Views    int    `json:"views"`

	types.BaseModel
}

func FromDocument(doc docstore.Document) *Article {
	if doc == nil {
		return nil
	}
	a := &Article{
		ID:       asString(doc[docstore.FieldID]),
		Title:    asString(doc["title"]),
		Category: asString(doc["category"]),
		Content:  asString(doc["content"]),
	}
	if views, ok := doc["views"].(int); ok {
		a.Views = views
	}
	a.Status = types.Status(asString(doc["status"]))
	a.CreatedAt, _ = doc[docstore.FieldCreatedAt].(time.Time)
	a.UpdatedAt, _ = doc[docstore.FieldUpdatedAt].(time.Time)
	return a
}

func FromDocumentList(docs []docstore.Document) []*Article {
	result := make([]*Article, len(docs))
	for i, doc := range docs {
		result[i] = FromDocument(doc)
	}
	return result
}

func (a *Article) ToDocument() docstore.Document {
	return docstore.Document{
		docstore.FieldID: a.ID,
		"title":          a.Title,
		"category":       a.Category,
		"content":        a.Content,
		"views":          a.Views,
		"status":         string(a.Status),
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
