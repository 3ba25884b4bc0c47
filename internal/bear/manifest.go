package bear

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestName is the file name of a JSON bear definition.
const ManifestName = "bear.json"

// manifest is the on-disk JSON form of a bear definition.
type manifest struct {
	Name         string            `json:"name"`
	Kind         string            `json:"kind"`
	Description  string            `json:"description"`
	Requirements []manifestSetting `json:"requirements"`
}

type manifestSetting struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LoadManifest reads a bear.json definition into a descriptor.
func LoadManifest(path string) (Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Descriptor{}, err
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Descriptor{}, fmt.Errorf("invalid manifest %s: %w", path, err)
	}

	if m.Name == "" {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrMissingName, path)
	}

	kind := KindLocal
	if m.Kind != "" {
		kind, err = ParseKind(m.Kind)
		if err != nil {
			return Descriptor{}, fmt.Errorf("manifest %s: %w", path, err)
		}
	}

	desc := Descriptor{
		Name:        m.Name,
		Kind:        kind,
		Path:        path,
		Description: m.Description,
	}
	for _, req := range m.Requirements {
		if req.Name == "" {
			continue
		}
		desc.Requirements = append(desc.Requirements, Requirement{
			Name:        req.Name,
			Description: req.Description,
		})
	}

	return desc, nil
}
