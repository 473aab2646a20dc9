package model

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is the stored shape of an article in the posts collection.
// The id is assigned by MongoDB on insert and never changes.
type Post struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Title    string             `bson:"title"`
	Date     time.Time          `bson:"date"`
	Author   string             `bson:"author"`
	Category string             `bson:"category"`
	Content  string             `bson:"content"`
	Image    string             `bson:"image"`
}

// PostJSON is the wire shape of a post. The id travels as a hex string
// and the date as RFC 3339 text; both are kept in native form in the store.
type PostJSON struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Author   string `json:"author" binding:"required"`
	Category string `json:"category" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Image    string `json:"image"`
}

// ToStored converts a wire post into its stored shape. A client-supplied
// id is always discarded; the store assigns one on insert.
func (p PostJSON) ToStored() (Post, error) {
	date, err := time.Parse(time.RFC3339, p.Date)
	if err != nil {
		return Post{}, fmt.Errorf("invalid date %q: %w", p.Date, err)
	}
	return Post{
		Title:    p.Title,
		Date:     date,
		Author:   p.Author,
		Category: p.Category,
		Content:  p.Content,
		Image:    p.Image,
	}, nil
}

// ToWire converts a stored post into its wire shape. An unassigned id
// becomes the empty string and is omitted from the JSON output.
func (p Post) ToWire() PostJSON {
	out := PostJSON{
		Title:    p.Title,
		Date:     p.Date.UTC().Format(time.RFC3339),
		Author:   p.Author,
		Category: p.Category,
		Content:  p.Content,
		Image:    p.Image,
	}
	if !p.ID.IsZero() {
		out.ID = p.ID.Hex()
	}
	return out
}
