// Package item defines the item entity.
package item

// Item is a named record. The id is assigned once on creation and never
// changes; the name is stored trimmed and lower-cased and is unique among
// stored items.
type Item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
