package catalog

// Collection is one titled row of items.
type Collection struct {
	// Title is the display title, NFC-normalised.
	Title string
	// SetID identifies the set when the feed provides one.
	SetID string
	// RefID names a set whose items must be fetched separately.
	RefID string
	// Type is the feed's set type, e.g. "CuratedSet" or "SetRef".
	Type string
	Items []Item
}

// IsRef reports whether the collection still needs its items resolved.
func (c Collection) IsRef() bool {
	return len(c.Items) == 0 && c.RefID != ""
}

// Item is one tile of a collection.
type Item struct {
	// ID is the first of contentId, collectionId, programId or seriesId.
	ID       string
	Title    string
	ImageURL string
	// Type is the feed's item type, e.g. "DmcSeries" or "DmcVideo".
	Type string
}

// NonEmpty returns the collections that have at least one item, in order.
func NonEmpty(cols []Collection) []Collection {
	out := make([]Collection, 0, len(cols))
	for _, c := range cols {
		if len(c.Items) > 0 {
			out = append(out, c)
		}
	}
	return out
}
