// Package daw resolves free-text DAW names to the canonical identifiers used
// for serializer dispatch. The id/label table is static configuration
// embedded at build time and immutable after init.
package daw

import (
	_ "embed"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed daws.yaml
var tableYAML []byte

type entry struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

var (
	idToLabel map[string]string
	labelToID map[string]string // keyed by lowercased label
)

func init() {
	var entries []entry
	if err := yaml.Unmarshal(tableYAML, &entries); err != nil {
		panic("daw: embedded table is invalid: " + err.Error())
	}
	idToLabel = make(map[string]string, len(entries))
	labelToID = make(map[string]string, len(entries))
	for _, e := range entries {
		idToLabel[e.ID] = e.Label
		labelToID[strings.ToLower(e.Label)] = e.ID
	}
}

// LabelToID maps a display label to its canonical id. Matching is
// case-insensitive and exact; a canonical id spelled as-is also resolves.
// Returns false for anything outside the table.
func LabelToID(label string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(label))
	if id, ok := labelToID[key]; ok {
		return id, true
	}
	if _, ok := idToLabel[key]; ok {
		return key, true
	}
	return "", false
}

// IDToLabel returns the registered label for a known id. Unknown ids get a
// best-effort guess: underscore segments title-cased and joined with spaces.
func IDToLabel(id string) string {
	if label, ok := idToLabel[id]; ok {
		return label
	}
	parts := strings.Split(id, "_")
	out := parts[:0]
	for _, p := range parts {
		if p == "" {
			continue
		}
		out = append(out, strings.ToUpper(p[:1])+p[1:])
	}
	return strings.Join(out, " ")
}

// Known reports whether id is in the canonical table.
func Known(id string) bool {
	_, ok := idToLabel[id]
	return ok
}

// Slug derives an identifier-shaped string from free text: lowercased, runs
// of non-alphanumerics collapsed to a single underscore, trimmed.
func Slug(s string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimRight(b.String(), "_")
}
