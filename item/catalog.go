package item

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/groundwork/game"
	"github.com/oomph-ac/groundwork/oerror"
	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// Catalog holds the design-time item definitions, keyed by item name in the order they were declared.
type Catalog struct {
	items *orderedmap.OrderedMap[string, Item]
}

type catalogFile struct {
	Items []Record `yaml:"items"`
}

// DefaultCatalog returns the catalog bundled with the module.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(defaultCatalog)
	if err != nil {
		panic(fmt.Errorf("default catalog: %w", err))
	}
	return c
}

// LoadCatalog reads a YAML catalog from the path passed.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog: %w", err)
	}
	return ParseCatalog(raw)
}

// ParseCatalog decodes a YAML catalog. Item names must be unique.
func ParseCatalog(raw []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("error decoding catalog: %w", err)
	}

	c := &Catalog{items: orderedmap.NewOrderedMap[string, Item]()}
	for _, r := range f.Items {
		if r.Name == "" {
			return nil, oerror.New("catalog item without a name")
		}
		i, err := r.Item()
		if err != nil {
			return nil, err
		}
		if !c.items.Set(r.Name, i) {
			return nil, oerror.New("duplicate catalog item %q", r.Name)
		}
	}
	return c, nil
}

// Item returns the item with the name passed.
func (c *Catalog) Item(name string) (Item, error) {
	i, ok := c.items.Get(name)
	if !ok {
		return Item{}, oerror.New(game.ErrorUnknownItem, name)
	}
	return i, nil
}

// Names returns the names of all items in declaration order.
func (c *Catalog) Names() []string {
	return c.items.Keys()
}

// Len returns the amount of items in the catalog.
func (c *Catalog) Len() int {
	return c.items.Len()
}
