package preset

import (
	"fmt"
	"strings"

	"github.com/evandayton762-tech/toneterminal/internal/archive"
	"github.com/evandayton762-tech/toneterminal/internal/models"
)

// abletonCreator is the application marker written into every rack. Live
// shows it in the file info, and the importer looks for it.
const abletonCreator = "ToneTerminal"

// abletonSerializer writes an Ableton Live audio-effect rack (.adg):
// a gzip-compressed XML document with one device preset per plugin.
type abletonSerializer struct{}

func newAbletonSerializer() *abletonSerializer { return &abletonSerializer{} }

func (*abletonSerializer) ID() string    { return "ableton_adg" }
func (*abletonSerializer) Label() string { return "Ableton Live rack" }

func (*abletonSerializer) CanHandle(dawID string) bool {
	switch dawID {
	case "ableton_live", "ableton", "live":
		return true
	}
	return false
}

func (s *abletonSerializer) Serialize(chain models.PluginChain) (models.SerializedPreset, error) {
	plugins := SortChainPlugins(chain)

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, `<Ableton MajorVersion="5" MinorVersion="11.0_11202" SchemaChangeCount="3" Creator="%s" Revision="">`+"\n", abletonCreator)
	b.WriteString("\t<GroupDevicePreset>\n")
	fmt.Fprintf(&b, "\t\t<Name Value=\"%s\" />\n", EscapeXML(PresetBaseName(chain)))
	b.WriteString("\t\t<BranchDevicePresets>\n")
	b.WriteString("\t\t\t<AudioEffectBranchPreset Id=\"0\">\n")
	b.WriteString("\t\t\t\t<DevicePresets>\n")

	for i, p := range plugins {
		id := ResolveIdentifier(p, "ableton", "vst3", "vst2", "generic")
		fmt.Fprintf(&b, "\t\t\t\t\t<PluginDevicePreset Id=\"%d\">\n", i)
		b.WriteString("\t\t\t\t\t\t<PluginDesc>\n")
		b.WriteString("\t\t\t\t\t\t\t<Vst3PluginInfo>\n")
		fmt.Fprintf(&b, "\t\t\t\t\t\t\t\t<PlugType Value=\"%s\" />\n", EscapeXML(p.Type))
		fmt.Fprintf(&b, "\t\t\t\t\t\t\t\t<Name Value=\"%s\" />\n", EscapeXML(p.Name))
		fmt.Fprintf(&b, "\t\t\t\t\t\t\t\t<Uid Value=\"%s\" />\n", EscapeXML(id))
		b.WriteString("\t\t\t\t\t\t\t</Vst3PluginInfo>\n")
		b.WriteString("\t\t\t\t\t\t</PluginDesc>\n")
		fmt.Fprintf(&b, "\t\t\t\t\t\t<IsOn Value=\"%t\" />\n", !p.Bypassed)
		fmt.Fprintf(&b, "\t\t\t\t\t\t<UserName Value=\"%s\" />\n", EscapeXML(p.Name))
		b.WriteString("\t\t\t\t\t\t<Parameters>\n")
		for j, param := range ResolveParameters(p) {
			fmt.Fprintf(&b, "\t\t\t\t\t\t\t<PluginParameter Id=\"%d\">\n", j)
			fmt.Fprintf(&b, "\t\t\t\t\t\t\t\t<ParameterName Value=\"%s\" />\n", EscapeXML(param.DisplayName()))
			fmt.Fprintf(&b, "\t\t\t\t\t\t\t\t<ParameterValue Value=\"%s\" />\n", EscapeXML(param.Value))
			b.WriteString("\t\t\t\t\t\t\t</PluginParameter>\n")
		}
		b.WriteString("\t\t\t\t\t\t</Parameters>\n")
		fmt.Fprintf(&b, "\t\t\t\t\t\t<UserComment Value=\"%s\" />\n", EscapeXML(p.Comment))
		fmt.Fprintf(&b, "\t\t\t\t\t\t<PresentationIndex Value=\"%d\" />\n", i)
		b.WriteString("\t\t\t\t\t</PluginDevicePreset>\n")
	}

	b.WriteString("\t\t\t\t</DevicePresets>\n")
	b.WriteString("\t\t\t</AudioEffectBranchPreset>\n")
	b.WriteString("\t\t</BranchDevicePresets>\n")
	b.WriteString("\t</GroupDevicePreset>\n")
	b.WriteString("</Ableton>\n")

	data, err := archive.GzipBytes([]byte(PrettyXML(b.String())))
	if err != nil {
		return models.SerializedPreset{}, fmt.Errorf("ableton rack: %w", err)
	}

	return models.SerializedPreset{
		Filename:     nativeFilename(chain, ".adg"),
		MIME:         "application/gzip",
		Data:         data,
		SerializerID: s.ID(),
		Label:        s.Label(),
		IsNative:     true,
	}, nil
}
