package preset

import (
	"fmt"
	"strings"

	"github.com/evandayton762-tech/toneterminal/internal/models"
)

const fstVersion = "1.0"

// flStudioSerializer writes the ToneTerminal FST line format consumed by the
// FL Studio import helper: an INI-like document with one [SlotN] section per
// plugin in chain order.
type flStudioSerializer struct{}

func newFLStudioSerializer() *flStudioSerializer { return &flStudioSerializer{} }

func (*flStudioSerializer) ID() string    { return "fl_studio_fst" }
func (*flStudioSerializer) Label() string { return "FL Studio FST" }

func (*flStudioSerializer) CanHandle(dawID string) bool {
	switch dawID {
	case "fl_studio", "flstudio", "fruity_loops":
		return true
	}
	return false
}

func (s *flStudioSerializer) Serialize(chain models.PluginChain) (models.SerializedPreset, error) {
	plugins := SortChainPlugins(chain)

	var b strings.Builder
	b.WriteString("[ToneTerminalFST]\n")
	fmt.Fprintf(&b, "Version=%s\n", fstVersion)
	b.WriteString("CreatedBy=ToneTerminal\n")
	fmt.Fprintf(&b, "DAW=%s\n", EscapeLine(dawDisplayName(chain)))
	if song := formatSong(chain.Song); song != "" {
		fmt.Fprintf(&b, "Song=%s\n", EscapeLine(song))
	}
	if chain.ClipWindow != "" {
		fmt.Fprintf(&b, "ClipWindow=%s\n", EscapeLine(chain.ClipWindow))
	}
	if chain.Summary != "" {
		fmt.Fprintf(&b, "Summary=%s\n", EscapeLine(chain.Summary))
	}
	fmt.Fprintf(&b, "SlotCount=%d\n", len(plugins))

	for i, p := range plugins {
		fmt.Fprintf(&b, "\n[Slot%d]\n", i)
		fmt.Fprintf(&b, "Name=%s\n", EscapeLine(ResolveIdentifier(p, "flStudio", "vst2", "vst3", "generic")))
		fmt.Fprintf(&b, "DisplayName=%s\n", EscapeLine(p.Name))
		fmt.Fprintf(&b, "Type=%s\n", EscapeLine(p.Type))
		state := "Active"
		if p.Bypassed {
			state = "Bypassed"
		}
		fmt.Fprintf(&b, "State=%s\n", state)
		if p.Comment != "" {
			fmt.Fprintf(&b, "Comment=%s\n", EscapeLine(p.Comment))
		}
		for j, param := range ResolveParameters(p) {
			fmt.Fprintf(&b, "Param%d=%s=%s\n", j, EscapeLine(param.DisplayName()), EscapeLine(param.Value))
		}
	}

	return models.SerializedPreset{
		Filename:     nativeFilename(chain, ".fst"),
		MIME:         "text/plain; charset=utf-8",
		Data:         []byte(b.String()),
		SerializerID: s.ID(),
		Label:        s.Label(),
		IsNative:     true,
	}, nil
}
