// Package rag resolves natural-language intent strings to extension
// ids. Instead of hard-coding numeric ids, assembly can say
// ext.call @"parse JSON string" and the resolver maps the intent to
// json_parse (id 170) by exact name lookup first, then keyword
// similarity scoring against the bundled catalog.
package rag

import "strings"

// UserExtensionBase is the first id handed out to user-registered
// extensions. Bundled extensions are registered in a fixed order before
// any user extension, so user ids are stable across resolver instances.
const UserExtensionBase uint32 = 500

// matchThreshold is the minimum similarity score Resolve accepts.
const matchThreshold = 0.3

// Resolved describes one resolved extension.
type Resolved struct {
	// ID is the extension id to place in the ext.call immediate.
	ID uint32
	// Name is the canonical extension name.
	Name string
	// InputCount is the number of input parameters expected.
	InputCount int
	// Description is a short human-readable summary.
	Description string
}

type entry struct {
	id          uint32
	name        string
	description string
	keywords    []string
	inputCount  int
}

// Resolver maps intent strings to extension ids using exact name lookup
// backed by keyword similarity scoring. Not safe for concurrent
// mutation; construct and register before sharing.
// The name lookup maps to entry indexes rather than ids: the bundled
// tls range and the user id range both start at 500, so ids alone do
// not identify an entry.
type Resolver struct {
	entries    []entry
	nameLookup map[string]int
	nextUserID uint32
}

// NewResolver builds a resolver preloaded with the bundled extension
// catalog.
func NewResolver() *Resolver {
	r := &Resolver{
		nameLookup: make(map[string]int),
		nextUserID: UserExtensionBase,
	}
	r.registerBundled()
	return r
}

// register adds a bundled extension under a fixed id.
func (r *Resolver) register(id uint32, name, description string, keywords []string, inputCount int) {
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}
	r.entries = append(r.entries, entry{
		id:          id,
		name:        name,
		description: description,
		keywords:    lowered,
		inputCount:  inputCount,
	})

	idx := len(r.entries) - 1
	lower := strings.ToLower(name)
	r.nameLookup[lower] = idx
	r.nameLookup["ext_"+lower] = idx
	r.nameLookup["@"+lower] = idx
}

// RegisterExtension adds a user extension and assigns it the next id at
// or above UserExtensionBase. Keywords are derived from the description.
func (r *Resolver) RegisterExtension(name, description string, inputCount int) uint32 {
	id := r.nextUserID
	r.nextUserID++

	var keywords []string
	for _, w := range strings.Fields(strings.ToLower(description)) {
		if len(w) > 2 {
			keywords = append(keywords, w)
		}
	}
	r.entries = append(r.entries, entry{
		id:          id,
		name:        name,
		description: description,
		keywords:    keywords,
		inputCount:  inputCount,
	})

	idx := len(r.entries) - 1
	lower := strings.ToLower(name)
	r.nameLookup[lower] = idx
	r.nameLookup["ext_"+lower] = idx
	r.nameLookup["@"+lower] = idx
	return id
}

// Resolve maps an intent description to the best matching extension.
// Exact name matches (name, ext_name, @name) win outright; otherwise
// the highest-scoring keyword match above the threshold is returned.
func (r *Resolver) Resolve(intent string) (Resolved, bool) {
	lower := strings.ToLower(intent)
	words := strings.Fields(lower)

	if idx, ok := r.nameLookup[lower]; ok {
		return r.entries[idx].resolved(), true
	}

	bestScore := 0.0
	var best *entry
	for i := range r.entries {
		if score := similarity(words, &r.entries[i]); score > bestScore {
			bestScore = score
			best = &r.entries[i]
		}
	}
	if bestScore < matchThreshold || best == nil {
		return Resolved{}, false
	}
	return best.resolved(), true
}

// GetByID returns the extension with the exact id.
func (r *Resolver) GetByID(id uint32) (Resolved, bool) {
	for i := range r.entries {
		if r.entries[i].id == id {
			return r.entries[i].resolved(), true
		}
	}
	return Resolved{}, false
}

// GetByName returns the extension with the exact name, accepting the
// ext_ and @ prefixed variants.
func (r *Resolver) GetByName(name string) (Resolved, bool) {
	idx, ok := r.nameLookup[strings.ToLower(name)]
	if !ok {
		return Resolved{}, false
	}
	return r.entries[idx].resolved(), true
}

// All returns every registered extension in registration order.
func (r *Resolver) All() []Resolved {
	out := make([]Resolved, len(r.entries))
	for i := range r.entries {
		out[i] = r.entries[i].resolved()
	}
	return out
}

// Search returns up to limit extensions matching the query, best first.
func (r *Resolver) Search(query string, limit int) []Resolved {
	words := strings.Fields(strings.ToLower(query))

	type scored struct {
		score float64
		ext   *entry
	}
	var hits []scored
	for i := range r.entries {
		if score := similarity(words, &r.entries[i]); score > 0.1 {
			hits = append(hits, scored{score, &r.entries[i]})
		}
	}

	// Stable insertion sort, descending by score. The catalog is small
	// and registration order breaks ties deterministically.
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].score > hits[j-1].score; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}

	if limit > len(hits) {
		limit = len(hits)
	}
	out := make([]Resolved, 0, limit)
	for _, h := range hits[:limit] {
		out = append(out, h.ext.resolved())
	}
	return out
}

func (e *entry) resolved() Resolved {
	return Resolved{
		ID:          e.id,
		Name:        e.name,
		InputCount:  e.inputCount,
		Description: e.description,
	}
}

// similarity scores an intent against one catalog entry. Description
// substring hits count double, exact keyword hits count single, partial
// keyword overlaps count half. The score is normalized by twice the
// intent word count and capped at 1.0.
func similarity(words []string, e *entry) float64 {
	matches := 0
	partials := 0

	desc := strings.ToLower(e.description)
	for _, w := range words {
		if strings.Contains(desc, w) {
			matches += 2
		}
	}

	for _, w := range words {
		for _, k := range e.keywords {
			if k == w {
				matches++
			} else if strings.Contains(k, w) || strings.Contains(w, k) {
				partials++
			}
		}
	}

	total := len(words)
	if total < 1 {
		total = 1
	}
	score := (float64(matches) + float64(partials)*0.5) / (float64(total) * 2.0)
	if score > 1.0 {
		score = 1.0
	}
	return score
}
