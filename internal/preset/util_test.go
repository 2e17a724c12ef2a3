package preset

import (
	"strings"
	"testing"

	"github.com/evandayton762-tech/toneterminal/internal/models"
)

// TestSanitizeFilename checks lowercasing, unsafe-run replacement, and the
// fallback for empty results.
func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tone EQ!", "tone_eq"},
		{"My Preset", "my_preset"},
		{"track.v2", "track.v2"},
		{"__wrapped__", "wrapped"},
		{"", "fallback"},
		{"!!!", "fallback"},
		{"...", "fallback"},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.in, "fallback"); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

// TestSanitizeFilenameIdempotent checks sanitize(sanitize(x)) == sanitize(x).
func TestSanitizeFilenameIdempotent(t *testing.T) {
	inputs := []string{"Tone EQ!", "a..b", "../../etc/passwd", "Track #1 (final)", "plain", "...", "x=y\nz"}
	for _, in := range inputs {
		once := SanitizeFilename(in, "fallback")
		twice := SanitizeFilename(once, "fallback")
		if once != twice {
			t.Errorf("SanitizeFilename not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

// TestSanitizeFilenameTraversal checks path-traversal characters never survive.
func TestSanitizeFilenameTraversal(t *testing.T) {
	inputs := []string{"../../etc/passwd", "..\\windows", "a/b/c", "..", "evil\x00name"}
	for _, in := range inputs {
		got := SanitizeFilename(in, "fallback")
		if got == "" {
			t.Errorf("SanitizeFilename(%q) returned empty string", in)
		}
		if strings.Contains(got, "/") {
			t.Errorf("SanitizeFilename(%q) = %q contains '/'", in, got)
		}
		if strings.Contains(got, "..") {
			t.Errorf("SanitizeFilename(%q) = %q contains '..'", in, got)
		}
	}
}

// TestEscapeLine checks CR/LF collapse and '=' replacement.
func TestEscapeLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a\nb", "a b"},
		{"a\r\nb", "a b"},
		{"a\rb", "a b"},
		{"key=value", "key-value"},
		{"mix=1\nmax=2", "mix-1 max-2"},
	}
	for _, tt := range tests {
		if got := EscapeLine(tt.in); got != tt.want {
			t.Errorf("EscapeLine(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

// xmlUnescape reverses EscapeXML for round-trip checking.
func xmlUnescape(s string) string {
	s = strings.ReplaceAll(s, "&apos;", "'")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&amp;", "&")
	return s
}

// TestEscapeXMLRoundTrip checks unescape(escape(s)) == s for hostile inputs.
func TestEscapeXMLRoundTrip(t *testing.T) {
	inputs := []string{
		"plain",
		"a < b && c > d",
		`say "hi" & 'bye'`,
		"&amp; already escaped",
		"<tag attr=\"v\">body</tag>",
	}
	for _, in := range inputs {
		escaped := EscapeXML(in)
		if strings.ContainsAny(escaped, "<>\"'") {
			t.Errorf("EscapeXML(%q) = %q still has specials", in, escaped)
		}
		if got := xmlUnescape(escaped); got != in {
			t.Errorf("round trip of %q = %q", in, got)
		}
	}
}

// TestPrettyXML checks trimming and the single trailing newline guarantee.
func TestPrettyXML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<a/>", "<a/>\n"},
		{"  <a/>\n\n\n", "<a/>\n"},
		{"\n\t<a>\n<b/>\n</a>\n", "<a>\n<b/>\n</a>\n"},
	}
	for _, tt := range tests {
		if got := PrettyXML(tt.in); got != tt.want {
			t.Errorf("PrettyXML(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

// TestSortChainPlugins checks slotIndex ordering, length preservation, and
// stability among plugins without explicit slots.
func TestSortChainPlugins(t *testing.T) {
	five, one := 5, 1
	chain := models.PluginChain{
		DAW: "fl_studio",
		Plugins: []models.ChainPlugin{
			{Name: "Late", Type: "Reverb", SlotIndex: &five},
			{Name: "Early", Type: "EQ", SlotIndex: &one},
			{Name: "MiddleA", Type: "Comp"},
			{Name: "MiddleB", Type: "Gate"},
		},
	}
	got := SortChainPlugins(chain)
	if len(got) != len(chain.Plugins) {
		t.Fatalf("got %d plugins; want %d", len(got), len(chain.Plugins))
	}
	// Keys: Late=5, Early=1, MiddleA=2, MiddleB=3.
	wantOrder := []string{"Early", "MiddleA", "MiddleB", "Late"}
	for i, name := range wantOrder {
		if got[i].Name != name {
			t.Errorf("position %d = %q; want %q", i, got[i].Name, name)
		}
	}
	// Input chain untouched.
	if chain.Plugins[0].Name != "Late" {
		t.Error("SortChainPlugins mutated its input")
	}
}

// TestSortChainPluginsStable checks equal keys keep original relative order.
func TestSortChainPluginsStable(t *testing.T) {
	three := 3
	chain := models.PluginChain{
		Plugins: []models.ChainPlugin{
			{Name: "A", SlotIndex: &three},
			{Name: "B", SlotIndex: &three},
			{Name: "C", SlotIndex: &three},
		},
	}
	got := SortChainPlugins(chain)
	for i, name := range []string{"A", "B", "C"} {
		if got[i].Name != name {
			t.Errorf("position %d = %q; want %q", i, got[i].Name, name)
		}
	}
}

// TestResolveIdentifier checks the priority walk and name fallback.
func TestResolveIdentifier(t *testing.T) {
	p := models.ChainPlugin{
		Name: "Tone EQ",
		Identifiers: &models.PluginIdentifierMap{
			VST3:    "vst3-id",
			Generic: "generic-id",
		},
	}
	if got := ResolveIdentifier(p, "flStudio", "vst3", "generic"); got != "vst3-id" {
		t.Errorf("got %q; want vst3-id", got)
	}
	if got := ResolveIdentifier(p, "flStudio", "au"); got != "Tone EQ" {
		t.Errorf("got %q; want name fallback", got)
	}

	bare := models.ChainPlugin{Name: "Bare"}
	if got := ResolveIdentifier(bare, "vst3", "generic"); got != "Bare" {
		t.Errorf("got %q; want Bare", got)
	}
}

// TestResolveParameters checks parameters-over-settings preference and the
// placeholder for plugins with neither.
func TestResolveParameters(t *testing.T) {
	rich := models.ChainPlugin{
		Name:       "P",
		Parameters: []models.PluginParameter{{ID: "p1", Label: "Drive", Value: "7"}},
		Settings:   models.Settings{{Name: "Gain", Value: "+3dB"}},
	}
	got := ResolveParameters(rich)
	if len(got) != 1 || got[0].DisplayName() != "Drive" || got[0].Value != "7" {
		t.Errorf("rich plugin params = %+v; want the Drive parameter only", got)
	}

	legacy := models.ChainPlugin{
		Name:     "P",
		Settings: models.Settings{{Name: "Gain", Value: "+3dB"}, {Name: "Mix", Value: "50%"}},
	}
	got = ResolveParameters(legacy)
	if len(got) != 2 || got[0].DisplayName() != "Gain" || got[1].DisplayName() != "Mix" {
		t.Errorf("legacy plugin params = %+v; want Gain then Mix", got)
	}

	empty := models.ChainPlugin{Name: "P"}
	got = ResolveParameters(empty)
	if len(got) != 1 || got[0].DisplayName() != "Default" || got[0].Value != "0" {
		t.Errorf("empty plugin params = %+v; want the Default=0 placeholder", got)
	}
}

// TestPresetBaseName checks the title -> summary -> placeholder priority.
func TestPresetBaseName(t *testing.T) {
	withTitle := models.PluginChain{
		DAW:     "FL Studio",
		Summary: "bright mix",
		Song:    &models.SongMeta{Title: "My Song"},
	}
	if got := PresetBaseName(withTitle); got != "My Song" {
		t.Errorf("got %q; want My Song", got)
	}

	withSummary := models.PluginChain{DAW: "FL Studio", Summary: "bright mix"}
	if got := PresetBaseName(withSummary); got != "bright mix" {
		t.Errorf("got %q; want bright mix", got)
	}

	bare := models.PluginChain{DAW: "FL Studio"}
	if got := PresetBaseName(bare); got != "fl_studio_chain" {
		t.Errorf("got %q; want fl_studio_chain", got)
	}
}
