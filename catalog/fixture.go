package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures/products.yaml
var fixtureYAML []byte

type fixtureFile struct {
	Products []Product `yaml:"products"`
}

// Parse decodes a YAML product document ({products: [...]}) into a catalog.
func Parse(data []byte) (*Catalog, error) {
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(f.Products)
}

// Fixture returns the catalog shipped with the binary.
func Fixture() (*Catalog, error) {
	return Parse(fixtureYAML)
}

// MustFixture is Fixture for tests and package init; it panics on a broken fixture.
func MustFixture() *Catalog {
	c, err := Fixture()
	if err != nil {
		panic(err)
	}
	return c
}
