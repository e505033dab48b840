// Package catalog loads the shop catalog from YAML.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/mathworlds/internal/shop"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

//go:embed catalog.schema.json
var schemaJSON []byte

const schemaURL = "schema://catalog.json"

// Catalog is a versioned list of shop items.
type Catalog struct {
	Version int         `yaml:"version"`
	Items   []shop.Item `yaml:"items"`
}

// Find returns the item with the given id.
func (c Catalog) Find(id string) (shop.Item, bool) {
	return shop.FindItem(c.Items, id)
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			compileErr = fmt.Errorf("parse catalog schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// Parse validates a YAML catalog document against the catalog schema and
// decodes it. Duplicate item ids are rejected.
func Parse(data []byte) (Catalog, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}

	// The validator wants JSON values, so round-trip the YAML tree.
	js, err := json.Marshal(raw)
	if err != nil {
		return Catalog{}, fmt.Errorf("convert catalog: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(js))
	if err != nil {
		return Catalog{}, fmt.Errorf("convert catalog: %w", err)
	}

	sch, err := schema()
	if err != nil {
		return Catalog{}, err
	}
	if err := sch.Validate(inst); err != nil {
		return Catalog{}, fmt.Errorf("catalog validation failed: %w", err)
	}

	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[string]bool, len(cat.Items))
	for _, it := range cat.Items {
		if seen[it.ID] {
			return Catalog{}, fmt.Errorf("duplicate catalog item id: %q", it.ID)
		}
		seen[it.ID] = true
	}
	return cat, nil
}

// Default returns the embedded catalog.
func Default() Catalog {
	cat, err := Parse(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return cat
}

// Load reads the catalog at path. An empty path loads the embedded default.
func Load(path string) (Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog %s: %w", path, err)
	}
	cat, err := Parse(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return cat, nil
}
