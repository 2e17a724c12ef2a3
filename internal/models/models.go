package models

// PluginParameter is a single named plugin control with its current value.
// Value is always a string, even for numeric controls; Normalized and the
// range fields are optional richer metadata.
type PluginParameter struct {
	ID         string   `json:"id"`
	Label      string   `json:"label,omitempty"`
	Value      string   `json:"value"`
	Normalized *float64 `json:"normalized,omitempty"` // 0..1 if known
	Min        *float64 `json:"min,omitempty"`
	Max        *float64 `json:"max,omitempty"`
	Step       *float64 `json:"step,omitempty"`
	Unit       string   `json:"unit,omitempty"`
}

// DisplayName returns the parameter's label if set, else its id.
func (p PluginParameter) DisplayName() string {
	if p.Label != "" {
		return p.Label
	}
	return p.ID
}

// PluginIdentifierMap holds per-host identifiers for one plugin. Every field
// is optional; an empty string means "no known identifier for that target".
type PluginIdentifierMap struct {
	Generic   string `json:"generic,omitempty"`
	VST3      string `json:"vst3,omitempty"`
	VST2      string `json:"vst2,omitempty"`
	AU        string `json:"au,omitempty"`
	AAX       string `json:"aax,omitempty"`
	CLAP      string `json:"clap,omitempty"`
	FLStudio  string `json:"flStudio,omitempty"`
	Ableton   string `json:"ableton,omitempty"`
	Logic     string `json:"logic,omitempty"`
	ProTools  string `json:"proTools,omitempty"`
	StudioOne string `json:"studioOne,omitempty"`
	Reaper    string `json:"reaper,omitempty"`
}

// Lookup returns the identifier registered under the given slot key, or ""
// if the slot is unknown or empty. Keys match the JSON field names.
func (m PluginIdentifierMap) Lookup(key string) string {
	switch key {
	case "generic":
		return m.Generic
	case "vst3":
		return m.VST3
	case "vst2":
		return m.VST2
	case "au":
		return m.AU
	case "aax":
		return m.AAX
	case "clap":
		return m.CLAP
	case "flStudio":
		return m.FLStudio
	case "ableton":
		return m.Ableton
	case "logic":
		return m.Logic
	case "proTools":
		return m.ProTools
	case "studioOne":
		return m.StudioOne
	case "reaper":
		return m.Reaper
	}
	return ""
}

// ChainPlugin is one plugin instance within a chain.
//
// Settings is the legacy flat representation; Parameters is the richer one.
// When both carry data, serializers prefer Parameters.
type ChainPlugin struct {
	Name        string               `json:"name"`
	Type        string               `json:"type"`
	Settings    Settings             `json:"settings,omitempty"`
	Comment     string               `json:"comment,omitempty"`
	Vendor      string               `json:"vendor,omitempty"`
	Category    string               `json:"category,omitempty"`
	Identifiers *PluginIdentifierMap `json:"identifiers,omitempty"`
	Parameters  []PluginParameter    `json:"parameters,omitempty"`
	Bypassed    bool                 `json:"bypassed,omitempty"`
	SlotIndex   *int                 `json:"slotIndex,omitempty"`
	Tags        []string             `json:"tags,omitempty"`
}

// SongMeta carries optional song metadata attached to a chain.
type SongMeta struct {
	Title    string `json:"title,omitempty"`
	Artist   string `json:"artist,omitempty"`
	Album    string `json:"album,omitempty"`
	Timecode string `json:"timecode,omitempty"`
}

// PluginChain is the top-level unit handed to the preset serializers.
// Serializers treat it as read-only.
type PluginChain struct {
	DAW        string        `json:"daw"`
	DawID      string        `json:"dawId,omitempty"`
	Summary    string        `json:"summary,omitempty"`
	Plugins    []ChainPlugin `json:"plugins"`
	Song       *SongMeta     `json:"song,omitempty"`
	ClipWindow string        `json:"clipWindow,omitempty"`
}

// SerializedPreset is the output of one serialization call: a finished
// artifact ready to be written as a file or HTTP attachment.
type SerializedPreset struct {
	Filename     string `json:"filename"`
	MIME         string `json:"mime"`
	Data         []byte `json:"-"`
	SerializerID string `json:"serializerId"`
	Label        string `json:"label"`
	IsNative     bool   `json:"isNative"`
}
