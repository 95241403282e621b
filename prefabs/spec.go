package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpec reads a prefab and decodes it into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// DecodeComponentSpec converts one raw component block of an entity prefab
// into its typed spec.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// Component decodes the named component block of a prefab. ok is false
// when the prefab does not define it.
func Component[T any](spec EntityBuildSpec, name string) (out T, ok bool, err error) {
	raw, ok := spec.Components[name]
	if !ok {
		return out, false, nil
	}
	out, err = DecodeComponentSpec[T](raw)
	if err != nil {
		return out, true, fmt.Errorf("prefabs: %s: decode %q: %w", spec.Name, name, err)
	}
	return out, true, nil
}
