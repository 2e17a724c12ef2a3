package preset

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/evandayton762-tech/toneterminal/internal/archive"
	"github.com/evandayton762-tech/toneterminal/internal/daw"
	"github.com/evandayton762-tech/toneterminal/internal/models"
)

// fallbackSerializer produces a manual-setup archive for DAWs without a
// native preset format: recreation instructions, a machine-readable chain
// dump, and a compact clipboard summary.
type fallbackSerializer struct{}

func newFallbackSerializer() *fallbackSerializer { return &fallbackSerializer{} }

func (*fallbackSerializer) ID() string    { return "generic_zip" }
func (*fallbackSerializer) Label() string { return "Manual setup archive" }

// CanHandle accepts anything; the fallback is the unconditional last resort.
func (*fallbackSerializer) CanHandle(string) bool { return true }

func (s *fallbackSerializer) Serialize(chain models.PluginChain) (models.SerializedPreset, error) {
	plugins := SortChainPlugins(chain)

	chainJSON, err := json.MarshalIndent(chain, "", "  ")
	if err != nil {
		return models.SerializedPreset{}, fmt.Errorf("fallback chain dump: %w", err)
	}

	data, err := archive.BuildZip([]archive.Entry{
		{Name: "README.txt", Data: []byte(buildReadme(chain, plugins))},
		{Name: "chain.json", Data: chainJSON},
		{Name: "clipboard.txt", Data: []byte(buildClipboard(plugins))},
	})
	if err != nil {
		return models.SerializedPreset{}, fmt.Errorf("fallback archive: %w", err)
	}

	slug := daw.Slug(dawDisplayName(chain))
	if slug == "" {
		slug = "unknown_daw"
	}

	return models.SerializedPreset{
		Filename:     slug + "_chain_stub.zip",
		MIME:         "application/zip",
		Data:         data,
		SerializerID: s.ID(),
		Label:        s.Label(),
		IsNative:     false,
	}, nil
}

// buildReadme renders numbered step-by-step recreation instructions.
func buildReadme(chain models.PluginChain, plugins []models.ChainPlugin) string {
	label := dawDisplayName(chain)

	var b strings.Builder
	fmt.Fprintf(&b, "ToneTerminal chain for %s\n", label)
	b.WriteString(strings.Repeat("=", len("ToneTerminal chain for ")+len(label)) + "\n\n")
	if chain.Summary != "" {
		fmt.Fprintf(&b, "Summary: %s\n", chain.Summary)
	}
	if chain.ClipWindow != "" {
		fmt.Fprintf(&b, "Clip window: %s\n", chain.ClipWindow)
	}
	if song := formatSong(chain.Song); song != "" {
		fmt.Fprintf(&b, "Song: %s\n", song)
	}
	fmt.Fprintf(&b, "\nNo native preset format is available for %s. Recreate the chain manually:\n\n", label)

	for i, p := range plugins {
		fmt.Fprintf(&b, "%d. Insert %q (%s) on the target track.\n", i+1, p.Name, p.Type)
		if p.Bypassed {
			b.WriteString("   Leave the plugin bypassed.\n")
		}
		for _, param := range ResolveParameters(p) {
			fmt.Fprintf(&b, "   - %s: %s\n", param.DisplayName(), param.Value)
		}
		if p.Comment != "" {
			fmt.Fprintf(&b, "   Note: %s\n", EscapeLine(p.Comment))
		}
		b.WriteString("\n")
	}
	if len(plugins) == 0 {
		b.WriteString("The chain is empty; nothing to set up.\n\n")
	}

	b.WriteString("chain.json in this archive holds the full machine-readable chain.\n")
	b.WriteString("Generated by ToneTerminal.\n")
	return b.String()
}

// buildClipboard renders the one-line-per-plugin summary.
func buildClipboard(plugins []models.ChainPlugin) string {
	var b strings.Builder
	for i, p := range plugins {
		var params []string
		for _, param := range ResolveParameters(p) {
			params = append(params, fmt.Sprintf("%s=%s", param.DisplayName(), param.Value))
		}
		state := ""
		if p.Bypassed {
			state = " [bypassed]"
		}
		fmt.Fprintf(&b, "%d. %s (%s)%s: %s\n", i+1, p.Name, p.Type, state, strings.Join(params, "; "))
	}
	return b.String()
}
