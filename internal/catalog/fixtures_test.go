package catalog

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Fixture builders for the feed format.

func mustSet(t *testing.T, json, path string, value any) string {
	t.Helper()
	out, err := sjson.Set(json, path, value)
	if err != nil {
		t.Fatalf("sjson.Set(%s): %v", path, err)
	}
	return out
}

func mustSetRaw(t *testing.T, json, path, raw string) string {
	t.Helper()
	out, err := sjson.SetRaw(json, path, raw)
	if err != nil {
		t.Fatalf("sjson.SetRaw(%s): %v", path, err)
	}
	return out
}

func tileJSON(t *testing.T, id, title, image string) string {
	t.Helper()
	s := mustSet(t, `{}`, "contentId", id)
	s = mustSet(t, s, "type", "DmcVideo")
	s = mustSet(t, s, "text.title.full.program.default.content", title)
	if image != "" {
		s = mustSetRaw(t, s, "image", fmt.Sprintf(`{"tile":{"1.78":{"program":{"default":{"url":%q,"masterWidth":500}}}}}`, image))
	}
	return s
}

func curatedSetJSON(t *testing.T, title string, tiles ...string) string {
	t.Helper()
	s := mustSet(t, `{}`, "type", "CuratedSet")
	s = mustSet(t, s, "setId", "set-"+strings.ToLower(strings.ReplaceAll(title, " ", "-")))
	s = mustSet(t, s, "text.title.full.set.default.content", title)
	return mustSetRaw(t, s, "items", "["+strings.Join(tiles, ",")+"]")
}

func refSetJSON(t *testing.T, title, refID string) string {
	t.Helper()
	s := mustSet(t, `{}`, "type", "SetRef")
	s = mustSet(t, s, "refId", refID)
	return mustSet(t, s, "text.title.full.set.default.content", title)
}

func homeJSON(t *testing.T, sets ...string) string {
	t.Helper()
	containers := make([]string, len(sets))
	for i, s := range sets {
		containers[i] = `{"set":` + s + `}`
	}
	return mustSetRaw(t, `{}`, containersPath, "["+strings.Join(containers, ",")+"]")
}

func setResponseJSON(t *testing.T, kind string, tiles ...string) string {
	t.Helper()
	return mustSetRaw(t, `{}`, "data."+kind+".items", "["+strings.Join(tiles, ",")+"]")
}

func gjsonArray(t *testing.T, elem string) gjson.Result {
	t.Helper()
	r := gjson.Parse("[" + elem + "]")
	if !r.IsArray() {
		t.Fatalf("bad fixture %s", elem)
	}
	return r
}
