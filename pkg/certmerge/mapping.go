package certmerge

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MappingEntry binds one placeholder to a source column and/or a
// literal default. The placeholder text is used verbatim as the render
// key: the user is trusted to have typed it exactly as in the template.
type MappingEntry struct {
	Placeholder string `yaml:"placeholder"`
	Column      string `yaml:"column"`
	Default     string `yaml:"default"`
}

// Valid reports whether the entry participates in generation: it needs
// a placeholder and at least one of column or default.
func (e MappingEntry) Valid() bool {
	return e.Placeholder != "" && (e.Column != "" || e.Default != "")
}

type mappingFile struct {
	Mappings []MappingEntry `yaml:"mappings"`
}

// LoadMappings reads a manual mapping file:
//
//	mappings:
//	  - placeholder: NOMBRE
//	    column: Nombre
//	  - placeholder: FECHA
//	    default: "2025-10-15"
func LoadMappings(path string) ([]MappingEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read mapping file at %s: %w", path, err)
	}
	var mf mappingFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("could not parse mapping file %s: %w", path, err)
	}
	return mf.Mappings, nil
}

// ValidMappings filters entries down to the usable ones. Invalid
// entries are ignored, not errors.
func ValidMappings(entries []MappingEntry) []MappingEntry {
	var valid []MappingEntry
	for _, e := range entries {
		if e.Valid() {
			valid = append(valid, e)
		}
	}
	return valid
}
