package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	vending "github.com/Azure/go-vending"
	"gopkg.in/yaml.v3"
)

var ErrDecodeCatalog = errors.New("failed to decode catalog")

// document is the YAML form of a catalog. Both forms are accepted:
//
//	items:
//	  soda: 75
//	  gum: 25
//
// or a flat mapping:
//
//	soda: 75
//	gum: 25
type document struct {
	Items map[string]vending.Cents `yaml:"items"`
}

// Decode reads a YAML catalog from r.
func Decode(r io.Reader) (Catalog, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrDecodeCatalog, err)
	}
	return Parse(content)
}

// Parse decodes a YAML catalog from content.
func Parse(content []byte) (Catalog, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, errors.Join(ErrDecodeCatalog, err)
	}
	if _, nested := raw["items"]; nested {
		var doc document
		if err := yaml.Unmarshal(content, &doc); err != nil {
			return nil, errors.Join(ErrDecodeCatalog, err)
		}
		return Catalog(doc.Items).orEmpty(), nil
	}
	var flat map[string]vending.Cents
	if err := yaml.Unmarshal(content, &flat); err != nil {
		return nil, errors.Join(ErrDecodeCatalog, err)
	}
	return Catalog(flat).orEmpty(), nil
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

func (c Catalog) orEmpty() Catalog {
	if c == nil {
		return Catalog{}
	}
	return c
}
