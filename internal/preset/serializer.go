package preset

import "github.com/evandayton762-tech/toneterminal/internal/models"

// Serializer converts a plugin chain into one target preset format.
//
// Serialize is side-effect-free: it must not mutate the chain and may fail
// only when an underlying container writer fails. Missing or unusual input
// (empty plugin lists, absent identifiers or metadata) degrades gracefully
// via default substitution, never an error.
type Serializer interface {
	// ID is the stable identifier recorded on produced presets.
	ID() string
	// Label is the human-readable target-format name.
	Label() string
	// CanHandle reports whether this serializer owns the given canonical
	// DAW id.
	CanHandle(dawID string) bool
	// Serialize renders the chain into the target format.
	Serialize(chain models.PluginChain) (models.SerializedPreset, error)
}
