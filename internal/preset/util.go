// Package preset serializes plugin chains into DAW-native preset and rack
// formats. Each target format has its own serializer; the Registry picks one
// per chain, with a generic archive as the unconditional fallback.
package preset

import (
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/evandayton762-tech/toneterminal/internal/daw"
	"github.com/evandayton762-tech/toneterminal/internal/models"
)

var (
	unsafeFileChars = regexp.MustCompile(`[^a-z0-9._-]+`)
	dotRuns         = regexp.MustCompile(`\.\.+`)
)

// SanitizeFilename lowercases name and reduces it to [a-z0-9._-], replacing
// runs of anything else with a single underscore. Dot runs collapse so no
// ".." survives, and leading/trailing underscores are trimmed. Returns
// fallback when nothing usable remains. Idempotent.
func SanitizeFilename(name, fallback string) string {
	s := strings.ToLower(name)
	s = unsafeFileChars.ReplaceAllString(s, "_")
	s = dotRuns.ReplaceAllString(s, ".")
	s = strings.Trim(s, "_")
	if strings.Trim(s, ".") == "" {
		return fallback
	}
	return s
}

// lineEscaper collapses line breaks to spaces and replaces "=" so values
// cannot collide with the key/value delimiter of line-oriented formats.
var lineEscaper = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ", "=", "-")

// EscapeLine makes a value safe for single-line key=value formats.
func EscapeLine(s string) string {
	return lineEscaper.Replace(s)
}

// EscapeXML escapes the five XML special characters. Ampersand goes first so
// entities introduced by later replacements are not double-escaped.
func EscapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}

// PrettyXML trims the document and guarantees exactly one trailing newline.
// No structural reformatting.
func PrettyXML(text string) string {
	return strings.TrimSpace(text) + "\n"
}

// SortChainPlugins returns the chain's plugins in output order: stable
// ascending by slotIndex where set, else by original position. The input
// chain is not modified.
func SortChainPlugins(chain models.PluginChain) []models.ChainPlugin {
	n := len(chain.Plugins)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	key := func(i int) int {
		if si := chain.Plugins[i].SlotIndex; si != nil {
			return *si
		}
		return i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return key(order[a]) < key(order[b])
	})
	out := make([]models.ChainPlugin, n)
	for i, idx := range order {
		out[i] = chain.Plugins[idx]
	}
	return out
}

// ResolveIdentifier picks the identifier a serializer should write for a
// plugin, walking the given identifier-map slots in priority order. Falls
// back to the display name, so there is always something to write.
func ResolveIdentifier(p models.ChainPlugin, slots ...string) string {
	if p.Identifiers != nil {
		for _, slot := range slots {
			if id := p.Identifiers.Lookup(slot); id != "" {
				return id
			}
		}
	}
	return p.Name
}

// ResolveParameters returns the parameter entries a serializer should emit:
// the rich parameter list when present, else one entry per legacy setting,
// else a single placeholder so no format writes a structurally empty
// parameter section.
func ResolveParameters(p models.ChainPlugin) []models.PluginParameter {
	if len(p.Parameters) > 0 {
		return p.Parameters
	}
	if len(p.Settings) > 0 {
		out := make([]models.PluginParameter, len(p.Settings))
		for i, s := range p.Settings {
			out[i] = models.PluginParameter{ID: s.Name, Value: s.Value}
		}
		return out
	}
	return []models.PluginParameter{{ID: "Param0", Label: "Default", Value: "0"}}
}

// dawDisplayName returns the chain's DAW as display text.
func dawDisplayName(chain models.PluginChain) string {
	if chain.DAW != "" {
		return chain.DAW
	}
	return daw.IDToLabel(chain.DawID)
}

// PresetBaseName derives the artifact base name: song title, then chain
// summary, then a "<daw>_chain" placeholder.
func PresetBaseName(chain models.PluginChain) string {
	if chain.Song != nil && chain.Song.Title != "" {
		return chain.Song.Title
	}
	if chain.Summary != "" {
		return chain.Summary
	}
	return daw.Slug(dawDisplayName(chain)) + "_chain"
}

// nativeFilename builds the sanitized output filename for a native format.
func nativeFilename(chain models.PluginChain, ext string) string {
	return SanitizeFilename(PresetBaseName(chain), "chain") + ext
}

// formatSong flattens song metadata to a single display string.
func formatSong(song *models.SongMeta) string {
	if song == nil {
		return ""
	}
	var parts []string
	for _, p := range []string{song.Title, song.Artist, song.Album} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	s := strings.Join(parts, " - ")
	if song.Timecode != "" {
		if s == "" {
			return song.Timecode
		}
		s += " @ " + song.Timecode
	}
	return s
}

// presetUUID derives a stable UUID from the given seed parts. Preset
// containers embed ids; deriving them from content keeps output reproducible.
func presetUUID(parts ...string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("toneterminal:"+strings.Join(parts, ":")))
}
