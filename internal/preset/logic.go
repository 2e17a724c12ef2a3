package preset

import (
	"fmt"
	"strings"

	"github.com/evandayton762-tech/toneterminal/internal/archive"
	"github.com/evandayton762-tech/toneterminal/internal/models"
)

// logicSerializer writes a Logic Pro channel-strip patch archive (.patch):
// a zip holding the preset descriptor and the channel-strip device list.
type logicSerializer struct{}

func newLogicSerializer() *logicSerializer { return &logicSerializer{} }

func (*logicSerializer) ID() string    { return "logic_patch" }
func (*logicSerializer) Label() string { return "Logic Pro channel strip" }

func (*logicSerializer) CanHandle(dawID string) bool {
	switch dawID {
	case "logic_pro", "logic", "logic_pro_x":
		return true
	}
	return false
}

func (s *logicSerializer) Serialize(chain models.PluginChain) (models.SerializedPreset, error) {
	plugins := SortChainPlugins(chain)
	name := PresetBaseName(chain)

	var info strings.Builder
	info.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&info, "<PatchInfo Version=\"1\" Creator=\"ToneTerminal\" Uuid=\"%s\">\n",
		presetUUID("logic_patch", name, dawDisplayName(chain)))
	fmt.Fprintf(&info, "\t<Name>%s</Name>\n", EscapeXML(name))
	fmt.Fprintf(&info, "\t<DAW>%s</DAW>\n", EscapeXML(dawDisplayName(chain)))
	if chain.Summary != "" {
		fmt.Fprintf(&info, "\t<Summary>%s</Summary>\n", EscapeXML(chain.Summary))
	}
	if chain.ClipWindow != "" {
		fmt.Fprintf(&info, "\t<ClipWindow>%s</ClipWindow>\n", EscapeXML(chain.ClipWindow))
	}
	if song := formatSong(chain.Song); song != "" {
		fmt.Fprintf(&info, "\t<Song>%s</Song>\n", EscapeXML(song))
	}
	fmt.Fprintf(&info, "\t<DeviceCount>%d</DeviceCount>\n", len(plugins))
	info.WriteString("</PatchInfo>\n")

	var strip strings.Builder
	strip.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&strip, "<ChannelStrip Name=\"%s\">\n", EscapeXML(name))
	for i, p := range plugins {
		id := ResolveIdentifier(p, "logic", "au", "vst3", "generic")
		category := p.Category
		if category == "" {
			category = p.Type
		}
		fmt.Fprintf(&strip, "\t<Device Index=\"%d\" Uuid=\"%s\" Name=\"%s\" DisplayName=\"%s\" Category=\"%s\" Bypass=\"%t\">\n",
			i, presetUUID("logic_device", fmt.Sprint(i), id),
			EscapeXML(id), EscapeXML(p.Name), EscapeXML(category), p.Bypassed)
		if p.Comment != "" {
			fmt.Fprintf(&strip, "\t\t<Notes>%s</Notes>\n", EscapeXML(p.Comment))
		}
		strip.WriteString("\t\t<Parameters>\n")
		for j, param := range ResolveParameters(p) {
			fmt.Fprintf(&strip, "\t\t\t<Parameter Index=\"%d\" Name=\"%s\" Value=\"%s\" />\n",
				j, EscapeXML(param.DisplayName()), EscapeXML(param.Value))
		}
		strip.WriteString("\t\t</Parameters>\n")
		strip.WriteString("\t</Device>\n")
	}
	strip.WriteString("</ChannelStrip>\n")

	data, err := archive.BuildZip([]archive.Entry{
		{Name: "PatchInfo.xml", Data: []byte(PrettyXML(info.String()))},
		{Name: "ChannelStrip.xml", Data: []byte(PrettyXML(strip.String()))},
	})
	if err != nil {
		return models.SerializedPreset{}, fmt.Errorf("logic patch: %w", err)
	}

	return models.SerializedPreset{
		Filename:     nativeFilename(chain, ".patch"),
		MIME:         "application/zip",
		Data:         data,
		SerializerID: s.ID(),
		Label:        s.Label(),
		IsNative:     true,
	}, nil
}
