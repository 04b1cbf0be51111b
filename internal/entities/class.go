package entities

import (
	_ "embed"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/paladin/internal/errors"
)

//go:embed data/catalog.yaml
var defaultCatalog []byte

// PlayerClass is an immutable class definition
type PlayerClass struct {
	Name        string
	Description string
	Preferred   []Attribute
	Resists     map[Resist]int
}

// Prefers reports whether the class favours a when distributing bonus points
func (c *PlayerClass) Prefers(a Attribute) bool {
	for _, p := range c.Preferred {
		if p == a {
			return true
		}
	}
	return false
}

// Catalog is the set of playable classes plus the random name pool
type Catalog struct {
	classes []*PlayerClass
	names   []string
}

type catalogFile struct {
	Classes []classEntry `yaml:"classes"`
	Names   []string     `yaml:"names"`
}

type classEntry struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Preferred   []string       `yaml:"preferred"`
	Resists     map[string]int `yaml:"resists"`
}

// DefaultCatalog returns the catalog embedded in the binary
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(defaultCatalog)
}

// LoadCatalog parses a YAML catalog and checks every attribute and resist
// name against the enumerations.
func LoadCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse class catalog")
	}

	vb := errors.NewValidationBuilder()
	if len(file.Classes) == 0 {
		vb.RequiredField("classes")
	}
	if len(file.Names) == 0 {
		vb.RequiredField("names")
	}

	catalog := &Catalog{names: file.Names}
	seen := make(map[string]bool)
	for _, entry := range file.Classes {
		if entry.Name == "" {
			vb.RequiredField("classes.name")
			continue
		}
		if seen[strings.ToLower(entry.Name)] {
			vb.Fieldf("classes", "duplicate class %q", entry.Name)
			continue
		}
		seen[strings.ToLower(entry.Name)] = true

		class := &PlayerClass{
			Name:        entry.Name,
			Description: strings.TrimRight(entry.Description, "\n"),
			Resists:     make(map[Resist]int, len(entry.Resists)),
		}
		for _, name := range entry.Preferred {
			attr, err := ParseAttribute(name)
			if err != nil {
				vb.Fieldf(entry.Name+".preferred", "unknown attribute %q", name)
				continue
			}
			class.Preferred = append(class.Preferred, attr)
		}
		for name, value := range entry.Resists {
			resist, err := ParseResist(name)
			if err != nil {
				vb.Fieldf(entry.Name+".resists", "unknown resist %q", name)
				continue
			}
			class.Resists[resist] = value
		}
		catalog.classes = append(catalog.classes, class)
	}

	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "invalid class catalog")
	}

	return catalog, nil
}

// Classes returns the classes in catalog order
func (c *Catalog) Classes() []*PlayerClass {
	return c.classes
}

// Names returns the random name pool
func (c *Catalog) Names() []string {
	return c.names
}

// Class looks up a class by name, ignoring case
func (c *Catalog) Class(name string) (*PlayerClass, error) {
	for _, class := range c.classes {
		if strings.EqualFold(class.Name, name) {
			return class, nil
		}
	}
	return nil, errors.NotFoundf("class %q not found", name)
}
