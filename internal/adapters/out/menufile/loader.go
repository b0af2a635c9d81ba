// Package menufile loads the menu catalog from YAML.
//
//	items:
//	  - name: Big Mac
//	    price: "5.00"
//	    category: burger
package menufile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/core/domain/model/menu"
	"drivethrough/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

//go:embed default_menu.yaml
var defaultMenu []byte

type itemDTO struct {
	Name     string `yaml:"name"`
	Price    string `yaml:"price"`
	Category string `yaml:"category"`
}

type fileDTO struct {
	Items []itemDTO `yaml:"items"`
}

// Load reads the catalog from path. An empty path loads the built-in menu.
func Load(path string) (*menu.Catalog, error) {
	if path == "" {
		return Default()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open menu file: %w", err)
	}
	defer f.Close()

	catalog, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("menu file %s: %w", path, err)
	}
	return catalog, nil
}

// Default returns the built-in menu: Big Mac, Large Fry and Coke.
func Default() (*menu.Catalog, error) {
	return Decode(bytes.NewReader(defaultMenu))
}

// Decode parses a YAML menu. Unknown fields are rejected, and every bad item is
// reported, not just the first.
func Decode(r io.Reader) (*menu.Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file fileDTO
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, menu.ErrCatalogIsEmpty
		}
		return nil, errs.NewValueIsInvalidErrorWithCause("menu yaml", err)
	}

	items := make([]menu.Item, 0, len(file.Items))
	var problems []error
	for i, dto := range file.Items {
		item, err := toItem(dto)
		if err != nil {
			problems = append(problems, fmt.Errorf("item %d: %w", i+1, err))
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return menu.NewCatalog(items...)
}

func toItem(dto itemDTO) (menu.Item, error) {
	if dto.Price == "" {
		return menu.Item{}, errs.NewValueIsRequiredError("price")
	}
	price, err := kernel.MoneyFromString(dto.Price)
	if err != nil {
		return menu.Item{}, err
	}
	return menu.NewItem(dto.Name, price, dto.Category)
}
