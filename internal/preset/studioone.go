package preset

import (
	"fmt"
	"strings"

	"github.com/evandayton762-tech/toneterminal/internal/archive"
	"github.com/evandayton762-tech/toneterminal/internal/models"
)

// studioOneSerializer writes a Studio One FX-chain preset (.preset): a zip
// holding PresetInfo.xml with the device list, plus a UserData side channel
// for metadata Studio One itself does not model.
type studioOneSerializer struct{}

func newStudioOneSerializer() *studioOneSerializer { return &studioOneSerializer{} }

func (*studioOneSerializer) ID() string    { return "studio_one_preset" }
func (*studioOneSerializer) Label() string { return "Studio One FX chain" }

func (*studioOneSerializer) CanHandle(dawID string) bool {
	return dawID == "studio_one" || dawID == "studioone"
}

func (s *studioOneSerializer) Serialize(chain models.PluginChain) (models.SerializedPreset, error) {
	plugins := SortChainPlugins(chain)
	name := PresetBaseName(chain)

	var info strings.Builder
	info.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	info.WriteString(`<PresetInfo Version="1" Creator="ToneTerminal">` + "\n")
	fmt.Fprintf(&info, "\t<Header Title=\"%s\" DAW=\"%s\" Uuid=\"%s\" />\n",
		EscapeXML(name), EscapeXML(dawDisplayName(chain)),
		presetUUID("studio_one_preset", name))
	info.WriteString("\t<Category Value=\"FX Chain\" />\n")
	fmt.Fprintf(&info, "\t<Devices Count=\"%d\">\n", len(plugins))
	for i, p := range plugins {
		id := ResolveIdentifier(p, "studioOne", "vst3", "vst2", "generic")
		fmt.Fprintf(&info, "\t\t<Device Index=\"%d\" Name=\"%s\" DisplayName=\"%s\" Type=\"%s\" Enabled=\"%t\">\n",
			i, EscapeXML(id), EscapeXML(p.Name), EscapeXML(p.Type), !p.Bypassed)
		info.WriteString("\t\t\t<Attributes>\n")
		for j, param := range ResolveParameters(p) {
			fmt.Fprintf(&info, "\t\t\t\t<Attribute Index=\"%d\" Name=\"%s\" Value=\"%s\" />\n",
				j, EscapeXML(param.DisplayName()), EscapeXML(param.Value))
		}
		info.WriteString("\t\t\t</Attributes>\n")
		if p.Comment != "" {
			fmt.Fprintf(&info, "\t\t\t<Notes>%s</Notes>\n", EscapeXML(p.Comment))
		}
		info.WriteString("\t\t</Device>\n")
	}
	info.WriteString("\t</Devices>\n")
	info.WriteString("</PresetInfo>\n")

	var user strings.Builder
	user.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	user.WriteString("<ToneTerminal>\n")
	if chain.Summary != "" {
		fmt.Fprintf(&user, "\t<Summary>%s</Summary>\n", EscapeXML(chain.Summary))
	}
	if chain.ClipWindow != "" {
		fmt.Fprintf(&user, "\t<ClipWindow>%s</ClipWindow>\n", EscapeXML(chain.ClipWindow))
	}
	if chain.Song != nil {
		fmt.Fprintf(&user, "\t<Song Title=\"%s\" Artist=\"%s\" Album=\"%s\" Timecode=\"%s\" />\n",
			EscapeXML(chain.Song.Title), EscapeXML(chain.Song.Artist),
			EscapeXML(chain.Song.Album), EscapeXML(chain.Song.Timecode))
	}
	user.WriteString("</ToneTerminal>\n")

	data, err := archive.BuildZip([]archive.Entry{
		{Name: "PresetInfo.xml", Data: []byte(PrettyXML(info.String()))},
		{Name: "UserData/ToneTerminal.xml", Data: []byte(PrettyXML(user.String()))},
	})
	if err != nil {
		return models.SerializedPreset{}, fmt.Errorf("studio one preset: %w", err)
	}

	return models.SerializedPreset{
		Filename:     nativeFilename(chain, ".preset"),
		MIME:         "application/zip",
		Data:         data,
		SerializerID: s.ID(),
		Label:        s.Label(),
		IsNative:     true,
	}, nil
}
