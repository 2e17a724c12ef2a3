package preset

import (
	"log/slog"

	"github.com/evandayton762-tech/toneterminal/internal/daw"
	"github.com/evandayton762-tech/toneterminal/internal/models"
)

// Coverage status values.
const (
	StatusNative = "native"
	StatusManual = "manual"
)

// Coverage describes whether a DAW has a native export format, without
// serializing anything. Presentation layers query it before an export.
type Coverage struct {
	Status       string `json:"status"` // StatusNative or StatusManual
	NativeFormat string `json:"nativeFormat,omitempty"`
	SerializerID string `json:"serializerId,omitempty"`
	DawID        string `json:"dawId"`
	Label        string `json:"label"`
}

// Registry dispatches chains to native serializers, with the generic archive
// as the unconditional fallback.
type Registry struct {
	native   []Serializer
	fallback Serializer
}

// NewRegistry wires the fixed native serializer list. Dispatch is
// first-match, so registration order is significant. The fallback is held
// separately rather than registered, making it last by construction.
func NewRegistry() *Registry {
	return &Registry{
		native: []Serializer{
			newFLStudioSerializer(),
			newAbletonSerializer(),
			newLogicSerializer(),
			newProToolsSerializer(),
			newStudioOneSerializer(),
			newReaperSerializer(),
		},
		fallback: newFallbackSerializer(),
	}
}

// ResolveDawID returns the canonical id for a chain: the explicit dawId if
// present, else the display label mapped through the identity table, else a
// slug derived from the free-text name.
func ResolveDawID(chain models.PluginChain) string {
	if chain.DawID != "" {
		return chain.DawID
	}
	if id, ok := daw.LabelToID(chain.DAW); ok {
		return id
	}
	return daw.Slug(chain.DAW)
}

// SerializePreset serializes the chain with the first native serializer
// whose CanHandle accepts its canonical DAW id, or the generic fallback when
// none match. The chain the serializer sees carries the resolved dawId.
func (r *Registry) SerializePreset(chain models.PluginChain) (models.SerializedPreset, error) {
	chain.DawID = ResolveDawID(chain)

	for _, s := range r.native {
		if s.CanHandle(chain.DawID) {
			slog.Debug("native serializer matched", "dawId", chain.DawID, "serializer", s.ID())
			return s.Serialize(chain)
		}
	}
	slog.Debug("no native serializer, using fallback", "dawId", chain.DawID)
	return r.fallback.Serialize(chain)
}

// ExporterCoverage reports whether the given DAW (label, id, or free text)
// has native export support. Pure lookup, no serialization.
func (r *Registry) ExporterCoverage(dawName string) Coverage {
	id, ok := daw.LabelToID(dawName)
	if !ok {
		id = daw.Slug(dawName)
	}

	cov := Coverage{
		Status: StatusManual,
		DawID:  id,
		Label:  daw.IDToLabel(id),
	}
	for _, s := range r.native {
		if s.CanHandle(id) {
			cov.Status = StatusNative
			cov.NativeFormat = s.Label()
			cov.SerializerID = s.ID()
			break
		}
	}
	return cov
}
