package models

import (
	"encoding/json"
	"testing"
)

// TestSettingsUnmarshalPreservesOrder checks that JSON object keys keep
// their document order instead of Go map iteration order.
func TestSettingsUnmarshalPreservesOrder(t *testing.T) {
	var s Settings
	if err := json.Unmarshal([]byte(`{"Zeta":"1","Alpha":"2","Mid":"3"}`), &s); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	want := Settings{{"Zeta", "1"}, {"Alpha", "2"}, {"Mid", "3"}}
	if len(s) != len(want) {
		t.Fatalf("got %d settings; want %d", len(s), len(want))
	}
	for i := range want {
		if s[i] != want[i] {
			t.Errorf("setting %d = %+v; want %+v", i, s[i], want[i])
		}
	}
}

// TestSettingsMarshalRoundTrip checks marshal/unmarshal symmetry.
func TestSettingsMarshalRoundTrip(t *testing.T) {
	in := Settings{{"Gain", "+3dB"}, {"Mix", "50%"}, {"Q", "0.7"}}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var out Settings
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("got %d settings; want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("setting %d = %+v; want %+v", i, out[i], in[i])
		}
	}
}

// TestSettingsUnmarshalNull checks that a JSON null leaves settings empty.
func TestSettingsUnmarshalNull(t *testing.T) {
	s := Settings{{"old", "value"}}
	if err := json.Unmarshal([]byte(`null`), &s); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if s != nil {
		t.Errorf("got %v; want nil", s)
	}
}

// TestChainJSONRoundTrip checks a full chain survives JSON encode/decode.
func TestChainJSONRoundTrip(t *testing.T) {
	slot := 2
	in := PluginChain{
		DAW:     "Bitwig Studio",
		Summary: "warm tape tone",
		Plugins: []ChainPlugin{
			{
				Name:      "Tone EQ",
				Type:      "Equalizer",
				Settings:  Settings{{"Gain", "+3dB"}},
				SlotIndex: &slot,
				Identifiers: &PluginIdentifierMap{
					VST3: "ABCD-1234",
				},
			},
		},
		Song: &SongMeta{Title: "Demo", Artist: "Someone"},
	}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var out PluginChain
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if out.DAW != in.DAW || out.Summary != in.Summary {
		t.Errorf("chain meta = %q/%q; want %q/%q", out.DAW, out.Summary, in.DAW, in.Summary)
	}
	if len(out.Plugins) != 1 {
		t.Fatalf("got %d plugins; want 1", len(out.Plugins))
	}
	p := out.Plugins[0]
	if p.Name != "Tone EQ" || p.Type != "Equalizer" {
		t.Errorf("plugin = %q/%q; want Tone EQ/Equalizer", p.Name, p.Type)
	}
	if v, ok := p.Settings.Get("Gain"); !ok || v != "+3dB" {
		t.Errorf("Gain setting = %q, %v; want +3dB, true", v, ok)
	}
	if p.SlotIndex == nil || *p.SlotIndex != 2 {
		t.Errorf("slotIndex = %v; want 2", p.SlotIndex)
	}
	if p.Identifiers == nil || p.Identifiers.VST3 != "ABCD-1234" {
		t.Errorf("identifiers = %+v; want VST3 ABCD-1234", p.Identifiers)
	}
}

// TestParameterDisplayName checks label-over-id preference.
func TestParameterDisplayName(t *testing.T) {
	withLabel := PluginParameter{ID: "p1", Label: "Gain", Value: "0"}
	if got := withLabel.DisplayName(); got != "Gain" {
		t.Errorf("DisplayName = %q; want Gain", got)
	}
	withoutLabel := PluginParameter{ID: "p1", Value: "0"}
	if got := withoutLabel.DisplayName(); got != "p1" {
		t.Errorf("DisplayName = %q; want p1", got)
	}
}
