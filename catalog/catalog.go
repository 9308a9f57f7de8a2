// Package catalog holds the reference tables of building materials and
// photovoltaic modules. The tables are read-only; every accessor returns a copy.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"building_energy_calc/solar"
	"building_energy_calc/thermal"
)

//go:embed materials.csv
var materialsCSV []byte

//go:embed panels.csv
var panelsCSV []byte

type MaterialRow struct {
	Category            string  `csv:"category"`
	Name                string  `csv:"name"`
	ThermalConductivity float64 `csv:"thermal_conductivity"`
	Thickness           float64 `csv:"thickness"`
}

type PanelRow struct {
	Brand      string  `csv:"brand"`
	Model      string  `csv:"model"`
	Technology string  `csv:"technology"`
	RatedPower float64 `csv:"rated_power"`
	Efficiency float64 `csv:"efficiency"`
	Area       float64 `csv:"area"`
	Price      float64 `csv:"price"`
}

// Category is a named group of material layers.
type Category struct {
	Name      string
	Materials []thermal.MaterialLayer
}

type Catalog struct {
	categories []Category
	panels     []solar.PanelSpec
}

var builtin = mustParse()

func mustParse() *Catalog {
	var mrs []*MaterialRow
	if err := gocsv.UnmarshalBytes(materialsCSV, &mrs); err != nil {
		panic(err)
	}
	var prs []*PanelRow
	if err := gocsv.UnmarshalBytes(panelsCSV, &prs); err != nil {
		panic(err)
	}
	c, err := build(mrs, prs)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return builtin
}

// New builds a catalog from already-decoded tables.
func New(categories []Category, panels []solar.PanelSpec) *Catalog {
	c := &Catalog{panels: append([]solar.PanelSpec(nil), panels...)}
	for _, cat := range categories {
		c.categories = append(c.categories, Category{
			Name:      cat.Name,
			Materials: append([]thermal.MaterialLayer(nil), cat.Materials...),
		})
	}
	return c
}

func build(mrs []*MaterialRow, prs []*PanelRow) (*Catalog, error) {
	categories, err := groupMaterials(mrs)
	if err != nil {
		return nil, err
	}
	panels, err := toPanels(prs)
	if err != nil {
		return nil, err
	}
	return &Catalog{categories: categories, panels: panels}, nil
}

// groupMaterials keeps categories in order of first appearance.
func groupMaterials(mrs []*MaterialRow) ([]Category, error) {
	var categories []Category
	index := make(map[string]int)
	for i, r := range mrs {
		layer := thermal.MaterialLayer{
			Name:                r.Name,
			ThermalConductivity: r.ThermalConductivity,
			Thickness:           r.Thickness,
		}
		if _, err := thermal.Resistance(layer); err != nil {
			return nil, fmt.Errorf("material row %d: %w", i+1, err)
		}
		k, ok := index[r.Category]
		if !ok {
			k = len(categories)
			index[r.Category] = k
			categories = append(categories, Category{Name: r.Category})
		}
		categories[k].Materials = append(categories[k].Materials, layer)
	}
	return categories, nil
}

func toPanels(prs []*PanelRow) ([]solar.PanelSpec, error) {
	panels := make([]solar.PanelSpec, 0, len(prs))
	for i, r := range prs {
		tech, err := solar.TechnologyFromString(r.Technology)
		if err != nil {
			return nil, fmt.Errorf("panel row %d: %w", i+1, err)
		}
		p := solar.PanelSpec{
			Brand:      r.Brand,
			Model:      r.Model,
			Technology: tech,
			RatedPower: r.RatedPower,
			Efficiency: r.Efficiency,
			Area:       r.Area,
			Price:      r.Price,
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("panel row %d: %w", i+1, err)
		}
		panels = append(panels, p)
	}
	return panels, nil
}

/*
LoadMaterials reads a material table from a CSV file.

Columns: category, name, thermal_conductivity (W/mK), thickness (m)
*/
func LoadMaterials(path string) ([]Category, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var mrs []*MaterialRow
	if err := gocsv.UnmarshalFile(file, &mrs); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return groupMaterials(mrs)
}

/*
LoadPanels reads a module table from a CSV file.

Columns: brand, model, technology, rated_power (Wc), efficiency (%), area (m2), price
*/
func LoadPanels(path string) ([]solar.PanelSpec, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var prs []*PanelRow
	if err := gocsv.UnmarshalFile(file, &prs); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return toPanels(prs)
}

func (c *Catalog) MaterialCategories() []Category {
	return New(c.categories, nil).categories
}

// Materials returns every material of every category.
func (c *Catalog) Materials() []thermal.MaterialLayer {
	var ms []thermal.MaterialLayer
	for _, cat := range c.categories {
		ms = append(ms, cat.Materials...)
	}
	return ms
}

// FindMaterial looks a material up by name, ignoring case.
func (c *Catalog) FindMaterial(name string) (thermal.MaterialLayer, bool) {
	for _, cat := range c.categories {
		for _, m := range cat.Materials {
			if strings.EqualFold(m.Name, name) {
				return m, true
			}
		}
	}
	return thermal.MaterialLayer{}, false
}

func (c *Catalog) Panels() []solar.PanelSpec {
	return append([]solar.PanelSpec(nil), c.panels...)
}

// FindPanel looks a module up by brand and model, ignoring case.
func (c *Catalog) FindPanel(brand, model string) (solar.PanelSpec, bool) {
	for _, p := range c.panels {
		if strings.EqualFold(p.Brand, brand) && strings.EqualFold(p.Model, model) {
			return p, true
		}
	}
	return solar.PanelSpec{}, false
}

// WithMaterials returns a copy of c whose material table is replaced.
func (c *Catalog) WithMaterials(categories []Category) *Catalog {
	return New(categories, c.panels)
}

// WithPanels returns a copy of c whose module table is replaced.
func (c *Catalog) WithPanels(panels []solar.PanelSpec) *Catalog {
	return New(c.categories, panels)
}
