package preset

import (
	"fmt"
	"strings"

	"github.com/evandayton762-tech/toneterminal/internal/models"
)

// reaperSerializer writes a REAPER FX-chain text file (.RfxChain): nested
// angle-bracket blocks, one <FX ...> block per plugin.
type reaperSerializer struct{}

func newReaperSerializer() *reaperSerializer { return &reaperSerializer{} }

func (*reaperSerializer) ID() string    { return "reaper_rfxchain" }
func (*reaperSerializer) Label() string { return "REAPER FX chain" }

func (*reaperSerializer) CanHandle(dawID string) bool {
	return dawID == "reaper"
}

func (s *reaperSerializer) Serialize(chain models.PluginChain) (models.SerializedPreset, error) {
	plugins := SortChainPlugins(chain)

	var b strings.Builder
	b.WriteString("<FXCHAIN\n")
	b.WriteString("  WNDRECT 0 0 0 0\n")
	b.WriteString("  SHOW 0\n")
	b.WriteString("  LASTSEL 0\n")
	b.WriteString("  DOCKED 0\n")
	for _, p := range plugins {
		id := ResolveIdentifier(p, "reaper", "vst3", "vst2", "generic")
		fmt.Fprintf(&b, "  <FX %s %s\n", quoteBlockValue(id), quoteBlockValue(p.Name))
		fmt.Fprintf(&b, "    TYPE %s\n", quoteBlockValue(p.Type))
		bypass := 0
		if p.Bypassed {
			bypass = 1
		}
		fmt.Fprintf(&b, "    BYPASS %d\n", bypass)
		if p.Comment != "" {
			fmt.Fprintf(&b, "    COMMENT %s\n", quoteBlockValue(p.Comment))
		}
		for j, param := range ResolveParameters(p) {
			fmt.Fprintf(&b, "    PARAM %d %s %s\n", j, quoteBlockValue(param.DisplayName()), quoteBlockValue(param.Value))
		}
		b.WriteString("  >\n")
	}
	b.WriteString(">\n")

	return models.SerializedPreset{
		Filename:     nativeFilename(chain, ".RfxChain"),
		MIME:         "text/plain; charset=utf-8",
		Data:         []byte(b.String()),
		SerializerID: s.ID(),
		Label:        s.Label(),
		IsNative:     true,
	}, nil
}

// quoteBlockValue quotes a value for the block format. Line breaks collapse
// to spaces and embedded double quotes become single quotes so the token
// stays one quoted string.
func quoteBlockValue(s string) string {
	v := EscapeLine(s)
	v = strings.ReplaceAll(v, `"`, "'")
	return `"` + v + `"`
}
