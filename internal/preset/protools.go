package preset

import (
	"fmt"
	"strings"

	"github.com/evandayton762-tech/toneterminal/internal/models"
)

// proToolsSerializer writes a plain XML preset: meta block plus an indexed
// plug-in list, consumed by the Pro Tools import helper.
type proToolsSerializer struct{}

func newProToolsSerializer() *proToolsSerializer { return &proToolsSerializer{} }

func (*proToolsSerializer) ID() string    { return "pro_tools_xml" }
func (*proToolsSerializer) Label() string { return "Pro Tools XML preset" }

func (*proToolsSerializer) CanHandle(dawID string) bool {
	return dawID == "pro_tools" || dawID == "protools"
}

func (s *proToolsSerializer) Serialize(chain models.PluginChain) (models.SerializedPreset, error) {
	plugins := SortChainPlugins(chain)

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<ToneTerminalPreset Version="1" Creator="ToneTerminal">` + "\n")

	b.WriteString("\t<Meta>\n")
	fmt.Fprintf(&b, "\t\t<DAW>%s</DAW>\n", EscapeXML(dawDisplayName(chain)))
	if chain.Summary != "" {
		fmt.Fprintf(&b, "\t\t<Summary>%s</Summary>\n", EscapeXML(chain.Summary))
	}
	if chain.ClipWindow != "" {
		fmt.Fprintf(&b, "\t\t<ClipWindow>%s</ClipWindow>\n", EscapeXML(chain.ClipWindow))
	}
	if chain.Song != nil {
		fmt.Fprintf(&b, "\t\t<Song Title=\"%s\" Artist=\"%s\" Album=\"%s\" Timecode=\"%s\" />\n",
			EscapeXML(chain.Song.Title), EscapeXML(chain.Song.Artist),
			EscapeXML(chain.Song.Album), EscapeXML(chain.Song.Timecode))
	}
	b.WriteString("\t</Meta>\n")

	fmt.Fprintf(&b, "\t<Plugins Count=\"%d\">\n", len(plugins))
	for i, p := range plugins {
		id := ResolveIdentifier(p, "proTools", "aax", "vst3", "generic")
		category := p.Category
		if category == "" {
			category = p.Type
		}
		fmt.Fprintf(&b, "\t\t<Plugin Index=\"%d\" Name=\"%s\" Identifier=\"%s\" Category=\"%s\" Bypassed=\"%t\">\n",
			i, EscapeXML(p.Name), EscapeXML(id), EscapeXML(category), p.Bypassed)
		if p.Comment != "" {
			fmt.Fprintf(&b, "\t\t\t<Notes>%s</Notes>\n", EscapeXML(p.Comment))
		}
		b.WriteString("\t\t\t<Parameters>\n")
		for j, param := range ResolveParameters(p) {
			fmt.Fprintf(&b, "\t\t\t\t<Parameter Index=\"%d\" Name=\"%s\" Value=\"%s\" />\n",
				j, EscapeXML(param.DisplayName()), EscapeXML(param.Value))
		}
		b.WriteString("\t\t\t</Parameters>\n")
		b.WriteString("\t\t</Plugin>\n")
	}
	b.WriteString("\t</Plugins>\n")
	b.WriteString("</ToneTerminalPreset>\n")

	return models.SerializedPreset{
		Filename:     nativeFilename(chain, ".xml"),
		MIME:         "application/xml",
		Data:         []byte(PrettyXML(b.String())),
		SerializerID: s.ID(),
		Label:        s.Label(),
		IsNative:     true,
	}, nil
}
