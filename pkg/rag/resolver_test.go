package rag

import (
	"strings"
	"testing"
)

func TestExactNameLookup(t *testing.T) {
	r := NewResolver()

	for _, name := range []string{"json_parse", "ext_json_parse", "@json_parse", "JSON_PARSE"} {
		ext, ok := r.GetByName(name)
		if !ok {
			t.Fatalf("GetByName(%q) failed", name)
		}
		if ext.ID != ExtJSONParse {
			t.Errorf("GetByName(%q).ID = %d, want %d", name, ext.ID, ExtJSONParse)
		}
	}
}

func TestIntentResolution(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		intent string
		id     uint32
		name   string
	}{
		{"parse JSON string", ExtJSONParse, "json_parse"},
		{"make HTTP GET request", ExtHTTPGet, "http_get"},
		{"calculate SHA256 hash", ExtSHA256, "sha256"},
	}
	for _, tt := range tests {
		ext, ok := r.Resolve(tt.intent)
		if !ok {
			t.Fatalf("Resolve(%q) failed", tt.intent)
		}
		if ext.ID != tt.id || ext.Name != tt.name {
			t.Errorf("Resolve(%q) = %s (%d), want %s (%d)", tt.intent, ext.Name, ext.ID, tt.name, tt.id)
		}
	}
}

func TestFuzzyMatching(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		intent string
		id     uint32
	}{
		{"read a file", ExtFSRead},
		{"make HTTP request to URL", ExtHTTPGet},
		{"generate secure random bytes", ExtSecureRandom},
	}
	for _, tt := range tests {
		ext, ok := r.Resolve(tt.intent)
		if !ok {
			t.Fatalf("Resolve(%q) failed", tt.intent)
		}
		if ext.ID != tt.id {
			t.Errorf("Resolve(%q) = %s (%d), want id %d", tt.intent, ext.Name, ext.ID, tt.id)
		}
	}
}

func TestNoMatch(t *testing.T) {
	r := NewResolver()
	if ext, ok := r.Resolve("xyzzy frobnicator"); ok {
		t.Errorf("Resolve of nonsense intent matched %s (%d)", ext.Name, ext.ID)
	}
}

func TestGetByID(t *testing.T) {
	r := NewResolver()

	ext, ok := r.GetByID(ExtJSONParse)
	if !ok {
		t.Fatal("GetByID failed for json_parse")
	}
	if ext.Name != "json_parse" {
		t.Errorf("GetByID(%d).Name = %q", ExtJSONParse, ext.Name)
	}

	if _, ok := r.GetByID(9999); ok {
		t.Error("GetByID(9999) should fail")
	}
}

func TestSearch(t *testing.T) {
	r := NewResolver()

	results := r.Search("json", 5)
	if len(results) == 0 {
		t.Fatal("Search(json) returned nothing")
	}
	if len(results) > 5 {
		t.Fatalf("Search returned %d results, limit 5", len(results))
	}
	for _, res := range results {
		if !strings.Contains(res.Name, "json") {
			t.Errorf("Search(json) matched %q", res.Name)
		}
	}
}

func TestUserExtensionIDs(t *testing.T) {
	r := NewResolver()

	id1 := r.RegisterExtension("my_summarize", "summarize text with the local model", 2)
	id2 := r.RegisterExtension("my_embed", "compute text embedding vector", 1)

	if id1 != UserExtensionBase {
		t.Errorf("first user id = %d, want %d", id1, UserExtensionBase)
	}
	if id2 != UserExtensionBase+1 {
		t.Errorf("second user id = %d, want %d", id2, UserExtensionBase+1)
	}

	ext, ok := r.GetByName("my_summarize")
	if !ok || ext.ID != id1 {
		t.Errorf("GetByName(my_summarize) = %+v, %v", ext, ok)
	}

	if ext, ok := r.Resolve("summarize text with the local model"); !ok || ext.ID != id1 {
		t.Errorf("Resolve of user description = %+v, %v", ext, ok)
	}
}

func TestUserIDsStableAcrossInstances(t *testing.T) {
	a := NewResolver()
	b := NewResolver()
	if got, want := a.RegisterExtension("x", "do the thing", 0), b.RegisterExtension("y", "do another thing", 0); got != want {
		t.Errorf("first user ids differ across instances: %d vs %d", got, want)
	}
}

func TestBundledCatalogOrder(t *testing.T) {
	r := NewResolver()
	all := r.All()
	if len(all) == 0 {
		t.Fatal("empty catalog")
	}
	if all[0].ID != ExtSHA256 {
		t.Errorf("first bundled extension = %d, want sha256", all[0].ID)
	}
	seen := make(map[uint32]string, len(all))
	for _, ext := range all {
		if prev, dup := seen[ext.ID]; dup {
			t.Errorf("id %d registered twice: %s and %s", ext.ID, prev, ext.Name)
		}
		seen[ext.ID] = ext.Name
	}
}
