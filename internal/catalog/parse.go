package catalog

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/text/unicode/norm"
)

const (
	containersPath = "data.StandardCollection.containers"
	titlePath      = "text.title.full"
	tileImagePath  = `image.tile.1\.78`
)

// Parse reads the home feed. Sets without inline items keep their RefID so
// that they can be resolved later. Items without a tile image get
// fallbackImage.
func Parse(body []byte, fallbackImage string) ([]Collection, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrInvalidJSON
	}

	containers := gjson.GetBytes(body, containersPath)
	if !containers.IsArray() {
		return nil, ErrMissingCollections
	}

	var cols []Collection
	containers.ForEach(func(_, container gjson.Result) bool {
		set := container.Get("set")
		if !set.IsObject() {
			return true
		}
		cols = append(cols, Collection{
			Title: textContent(set),
			SetID: set.Get("setId").String(),
			RefID: set.Get("refId").String(),
			Type:  set.Get("type").String(),
			Items: parseItems(set.Get("items"), fallbackImage),
		})
		return true
	})

	return cols, nil
}

// ParseSet reads a set response: the items of the first object under data
// that has an items array.
func ParseSet(body []byte, fallbackImage string) ([]Item, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrInvalidJSON
	}

	var items gjson.Result
	gjson.GetBytes(body, "data").ForEach(func(_, v gjson.Result) bool {
		if list := v.Get("items"); list.IsArray() {
			items = list
			return false
		}
		return true
	})
	if !items.Exists() {
		return nil, ErrMissingItems
	}

	return parseItems(items, fallbackImage), nil
}

func parseItems(list gjson.Result, fallbackImage string) []Item {
	if !list.IsArray() {
		return nil
	}

	var items []Item
	list.ForEach(func(_, v gjson.Result) bool {
		img := findString(v.Get(tileImagePath), "url")
		if img == "" {
			img = fallbackImage
		}
		items = append(items, Item{
			ID:       itemID(v),
			Title:    textContent(v),
			ImageURL: img,
			Type:     v.Get("type").String(),
		})
		return true
	})
	return items
}

func itemID(v gjson.Result) string {
	for _, k := range []string{"contentId", "collectionId", "programId", "seriesId"} {
		if id := v.Get(k).String(); id != "" {
			return id
		}
	}
	return ""
}

// textContent returns the normalised "content" string under text.title.full.
func textContent(v gjson.Result) string {
	return normalizeTitle(findString(v.Get(titlePath), "content"))
}

// findString returns the first string value stored under key, searching
// depth-first in document order.
func findString(r gjson.Result, key string) string {
	if !r.IsObject() && !r.IsArray() {
		return ""
	}

	var out string
	r.ForEach(func(k, v gjson.Result) bool {
		if v.Type == gjson.String && k.String() == key {
			out = v.String()
			return false
		}
		if v.IsObject() || v.IsArray() {
			if s := findString(v, key); s != "" {
				out = s
				return false
			}
		}
		return true
	})
	return out
}

// normalizeTitle converts to NFC and collapses runs of whitespace.
func normalizeTitle(s string) string {
	return norm.NFC.String(strings.Join(strings.Fields(s), " "))
}

// describe is used in log lines.
func describe(c Collection) string {
	if c.Title != "" {
		return fmt.Sprintf("%q", c.Title)
	}
	return "ref " + c.RefID
}
