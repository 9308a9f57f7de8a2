package main

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"building_energy_calc/catalog"
	"building_energy_calc/internal/exitcode"
	"building_energy_calc/project"
	"building_energy_calc/solar"
	"building_energy_calc/thermal"
)

var domainErrors = []error{
	thermal.ErrInvalidMaterial,
	thermal.ErrEmptyAssembly,
	solar.ErrInfeasibleSizing,
	solar.ErrInfeasiblePayback,
}

// classify attaches an exit code: arithmetic failures on otherwise well-formed
// input are domain errors, everything else is an input error.
func classify(err error) error {
	return exitcode.Classify(err, domainErrors...)
}

// loadCatalog returns the built-in catalog with the user tables swapped in.
func loadCatalog(opts *globalOptions) (*catalog.Catalog, error) {
	cat := catalog.Default()
	if opts.materialsPath != "" {
		log.Printf("材料カタログの読み込み `%s`", opts.materialsPath)
		cats, err := catalog.LoadMaterials(opts.materialsPath)
		if err != nil {
			return nil, err
		}
		cat = cat.WithMaterials(cats)
	}
	if opts.panelsPath != "" {
		log.Printf("パネルカタログの読み込み `%s`", opts.panelsPath)
		panels, err := catalog.LoadPanels(opts.panelsPath)
		if err != nil {
			return nil, err
		}
		cat = cat.WithPanels(panels)
	}
	return cat, nil
}

// parseLayer reads NAME, NAME:THICKNESS or NAME:LAMBDA:THICKNESS.
func parseLayer(cat *catalog.Catalog, arg string) (thermal.MaterialLayer, error) {
	parts := strings.Split(arg, ":")
	name := strings.TrimSpace(parts[0])

	nums := make([]float64, len(parts)-1)
	for i, s := range parts[1:] {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return thermal.MaterialLayer{}, fmt.Errorf("layer %q: %w", arg, err)
		}
		nums[i] = v
	}

	switch len(nums) {
	case 0, 1:
		m, ok := cat.FindMaterial(name)
		if !ok {
			return thermal.MaterialLayer{}, fmt.Errorf("%w: %q", project.ErrUnknownMaterial, name)
		}
		if len(nums) == 1 {
			m.Thickness = nums[0]
		}
		return m, nil
	case 2:
		return thermal.MaterialLayer{Name: name, ThermalConductivity: nums[0], Thickness: nums[1]}, nil
	default:
		return thermal.MaterialLayer{}, fmt.Errorf("layer %q: expected NAME[:LAMBDA]:THICKNESS", arg)
	}
}

func runUValue(w io.Writer, opts *globalOptions, args []string) error {
	cat, err := loadCatalog(opts)
	if err != nil {
		return classify(err)
	}

	layers := make([]thermal.MaterialLayer, len(args))
	for i, arg := range args {
		if layers[i], err = parseLayer(cat, arg); err != nil {
			return classify(err)
		}
	}

	r_ks, err := thermal.Resistances(layers)
	if err != nil {
		return classify(err)
	}
	u, err := thermal.UValue(layers)
	if err != nil {
		return classify(err)
	}

	printUValue(w, layers, r_ks, u)
	return nil
}

func evaluate(opts *globalOptions, path string, withSolar bool) (*project.Report, error) {
	start := time.Now()

	cat, err := loadCatalog(opts)
	if err != nil {
		return nil, err
	}

	log.Printf("プロジェクトファイルの読み込み開始 `%s`", path)
	p, err := project.Load(path)
	if err != nil {
		return nil, err
	}

	log.Printf("計算開始")
	var r *project.Report
	if withSolar {
		r, err = project.Evaluate(p, cat)
	} else {
		r, err = project.EvaluateLoads(p, cat)
	}

	log.Printf("elapsed_time: %v", time.Since(start))
	return r, err
}

func runLoads(w io.Writer, opts *globalOptions, path, format string) error {
	r, err := evaluate(opts, path, false)
	if err != nil {
		return classify(err)
	}
	return classify(writeReport(w, r, format))
}

// runReport still prints the report when only the payback is infeasible.
func runReport(w io.Writer, opts *globalOptions, path, format string) error {
	r, err := evaluate(opts, path, true)
	if r == nil {
		return classify(err)
	}
	if werr := writeReport(w, r, format); werr != nil {
		return classify(werr)
	}
	return classify(err)
}

type solarInput struct {
	consumption float64
	orientation string
	tilt        float64
	shading     float64
	rate        float64
	panel       string
	customPanel bool
	power       float64
	efficiency  float64
	area        float64
	price       float64
	irradiation float64
	format      string
}

func defaultSolarInput() *solarInput {
	return &solarInput{
		orientation: string(solar.OrientationSouth),
		tilt:        solar.DefaultTilt,
		rate:        solar.DefaultElectricityRate,
		irradiation: solar.DefaultSiteConditions().BaseIrradiation,
		format:      formatText,
	}
}

func (in *solarInput) panelSpec(cat *catalog.Catalog) (solar.PanelSpec, error) {
	if in.customPanel {
		p := solar.PanelSpec{
			Technology: solar.TechnologyMonocrystalline,
			RatedPower: in.power,
			Efficiency: in.efficiency,
			Area:       in.area,
			Price:      in.price,
		}
		return p, p.Validate()
	}
	ref := &project.Solar{}
	if in.panel != "" {
		brand, model, ok := strings.Cut(in.panel, "/")
		if !ok {
			return solar.PanelSpec{}, fmt.Errorf("%w: %q, expected BRAND/MODEL", project.ErrUnknownPanel, in.panel)
		}
		ref.Panel = project.PanelRef{Brand: brand, Model: model}
	}
	return ref.PanelSpec(cat)
}

func runSolar(w io.Writer, opts *globalOptions, in *solarInput) error {
	cat, err := loadCatalog(opts)
	if err != nil {
		return classify(err)
	}
	panel, err := in.panelSpec(cat)
	if err != nil {
		return classify(err)
	}
	o, err := solar.OrientationFromString(in.orientation)
	if err != nil {
		return classify(err)
	}

	sc := solar.DefaultSiteConditions()
	sc.BaseIrradiation = in.irradiation

	log.Printf("パネル %s, 方位 %s, 傾斜角 %v", panel, o, in.tilt)
	res, err := sc.SizeArray(in.consumption, o, in.tilt, in.shading, panel, in.rate)
	if err != nil {
		return classify(err)
	}

	s := &project.SolarSummary{
		Panel:       panel.String(),
		Orientation: o,
		Tilt:        in.tilt,
		Result:      res,
	}
	return classify(writeSolar(w, s, in.format))
}

func runCatalog(w io.Writer, opts *globalOptions, table, format string) error {
	cat, err := loadCatalog(opts)
	if err != nil {
		return classify(err)
	}
	switch table {
	case "materials":
		return classify(writeMaterials(w, cat.MaterialCategories(), format))
	case "panels":
		return classify(writePanels(w, cat.Panels(), format))
	default:
		return exitcode.Errorf(exitcode.InputError, "unknown catalog %q", table)
	}
}
