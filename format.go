package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gocarina/gocsv"

	"building_energy_calc/catalog"
	"building_energy_calc/project"
	"building_energy_calc/solar"
	"building_energy_calc/thermal"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatCSV  = "csv"
)

// resultRow is one line of the CSV rendition of a report.
type resultRow struct {
	Section  string  `csv:"section"`
	Quantity string  `csv:"quantity"`
	Value    float64 `csv:"value"`
	Unit     string  `csv:"unit"`
}

type materialRow struct {
	Category            string  `csv:"category" json:"category"`
	Name                string  `csv:"name" json:"name"`
	ThermalConductivity float64 `csv:"thermal_conductivity" json:"thermal_conductivity"`
	Thickness           float64 `csv:"thickness" json:"thickness"`
	Resistance          float64 `csv:"resistance" json:"resistance"`
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func unknownFormat(format string) error {
	return fmt.Errorf("unknown format %q (text, json, csv)", format)
}

func printUValue(w io.Writer, layers []thermal.MaterialLayer, r_ks []float64, u float64) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LAYER\tλ [W/mK]\td [m]\tR [m2K/W]")
	for k, l := range layers {
		fmt.Fprintf(tw, "%s\t%.3f\t%.3f\t%.3f\n", l.Name, l.ThermalConductivity, l.Thickness, r_ks[k])
	}
	tw.Flush()
	fmt.Fprintf(w, "\nU-value: %.3f W/m2K\n", u)
}

func reportRows(r *project.Report) []*resultRow {
	rows := []*resultRow{
		{"envelope", "area", r.Envelope.Area, "m2"},
		{"envelope", "heat_loss_coefficient", r.Envelope.HeatLossCoefficient, "W/K"},
		{"envelope", "heat_loss_coefficient_with_bridges", r.Envelope.HeatLossCoefficientWithBridges, "W/K"},
		{"envelope", "mean_u_value", r.Envelope.MeanUValue, "W/m2K"},
		{"ventilation", "air_flow", r.AirFlow, "m3/h"},
		{"ventilation", "effective_air_flow", r.EffectiveAirFlow, "m3/h"},
		{"heating", "transmission_loss", r.Heating.TransmissionLoss, "W"},
		{"heating", "ventilation_loss", r.Heating.VentilationLoss, "W"},
		{"heating", "internal_gains", r.Heating.InternalGains, "W"},
		{"heating", "total_heating_power", r.Heating.TotalHeatingPower, "W"},
		{"cooling", "transmission_gain", r.Cooling.TransmissionGain, "W"},
		{"cooling", "ventilation_gain", r.Cooling.VentilationGain, "W"},
		{"cooling", "internal_gains", r.Cooling.InternalGains, "W"},
		{"cooling", "solar_gains", r.Cooling.SolarGains, "W"},
		{"cooling", "total_cooling_power", r.Cooling.TotalCoolingPower, "W"},
	}
	if r.Solar != nil {
		rows = append(rows, solarRows(&r.Solar.Result)...)
	}
	return rows
}

func solarRows(s *solar.SizingResult) []*resultRow {
	return []*resultRow{
		{"solar", "required_peak_power", s.RequiredPeakPower, "Wc"},
		{"solar", "panel_count", float64(s.PanelCount), "-"},
		{"solar", "required_area", s.RequiredArea, "m2"},
		{"solar", "annual_yield", s.AnnualYield, "kWh/yr"},
		{"solar", "install_cost", s.InstallCost, "-"},
		{"solar", "annual_savings", s.AnnualSavings, "per yr"},
		{"solar", "payback_period", s.PaybackPeriod, "yr"},
	}
}

func writeReport(w io.Writer, r *project.Report, format string) error {
	switch format {
	case formatJSON:
		return writeJSON(w, r)
	case formatCSV:
		return gocsv.Marshal(reportRows(r), w)
	case formatText:
		printReport(w, r)
		return nil
	default:
		return unknownFormat(format)
	}
}

func printReport(w io.Writer, r *project.Report) {
	if r.Name != "" {
		fmt.Fprintf(w, "%s\n", r.Name)
	}
	if r.ClimateZone != "" {
		fmt.Fprintf(w, "Climate zone: %s\n", r.ClimateZone)
	}

	fmt.Fprintf(w, "\nEnvelope (%d elements, %.1f m2)\n", len(r.Envelope.Elements), r.Envelope.Area)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ELEMENT\tTYPE\tA [m2]\tU [W/m2K]")
	for _, e := range r.Envelope.Elements {
		fmt.Fprintf(tw, "  %s\t%s\t%.1f\t%.3f\n", e.Name, e.Type, e.Area, e.UValue)
	}
	tw.Flush()
	fmt.Fprintf(w, "  H_T:                %10.1f W/K\n", r.Envelope.HeatLossCoefficient)
	fmt.Fprintf(w, "  H_T + bridges:      %10.1f W/K\n", r.Envelope.HeatLossCoefficientWithBridges)
	fmt.Fprintf(w, "  Mean U-value:       %10.3f W/m2K\n", r.Envelope.MeanUValue)

	fmt.Fprintf(w, "\nVentilation\n")
	fmt.Fprintf(w, "  Air flow:           %10.1f m3/h\n", r.AirFlow)
	fmt.Fprintf(w, "  After recovery:     %10.1f m3/h\n", r.EffectiveAirFlow)

	fmt.Fprintf(w, "\nHeating\n")
	fmt.Fprintf(w, "  Transmission loss:  %10.1f W\n", r.Heating.TransmissionLoss)
	fmt.Fprintf(w, "  Ventilation loss:   %10.1f W\n", r.Heating.VentilationLoss)
	fmt.Fprintf(w, "  Internal gains:     %10.1f W\n", r.Heating.InternalGains)
	fmt.Fprintf(w, "  Heating power:      %10.1f W\n", r.Heating.TotalHeatingPower)

	fmt.Fprintf(w, "\nCooling\n")
	fmt.Fprintf(w, "  Transmission gain:  %10.1f W\n", r.Cooling.TransmissionGain)
	fmt.Fprintf(w, "  Ventilation gain:   %10.1f W\n", r.Cooling.VentilationGain)
	fmt.Fprintf(w, "  Internal gains:     %10.1f W\n", r.Cooling.InternalGains)
	fmt.Fprintf(w, "  Solar gains:        %10.1f W\n", r.Cooling.SolarGains)
	fmt.Fprintf(w, "  Cooling power:      %10.1f W\n", r.Cooling.TotalCoolingPower)

	if r.Solar != nil {
		fmt.Fprintln(w)
		printSolar(w, r.Solar)
	}
}

func writeSolar(w io.Writer, s *project.SolarSummary, format string) error {
	switch format {
	case formatJSON:
		return writeJSON(w, s)
	case formatCSV:
		return gocsv.Marshal(solarRows(&s.Result), w)
	case formatText:
		printSolar(w, s)
		return nil
	default:
		return unknownFormat(format)
	}
}

func printSolar(w io.Writer, s *project.SolarSummary) {
	res := s.Result
	fmt.Fprintf(w, "Solar array (%s, %s, tilt %.0f°)\n", s.Panel, s.Orientation, s.Tilt)
	fmt.Fprintf(w, "  Peak power:         %10.0f Wc\n", res.RequiredPeakPower)
	fmt.Fprintf(w, "  Panels:             %10d\n", res.PanelCount)
	fmt.Fprintf(w, "  Area:               %10.1f m2\n", res.RequiredArea)
	fmt.Fprintf(w, "  Annual yield:       %10.0f kWh/yr\n", res.AnnualYield)
	fmt.Fprintf(w, "  Install cost:       %10.0f\n", res.InstallCost)
	fmt.Fprintf(w, "  Annual savings:     %10.0f\n", res.AnnualSavings)
	fmt.Fprintf(w, "  Payback period:     %10.1f years\n", res.PaybackPeriod)
}

func materialRows(cats []catalog.Category) []*materialRow {
	var rows []*materialRow
	for _, cat := range cats {
		for _, m := range cat.Materials {
			r, _ := thermal.Resistance(m)
			rows = append(rows, &materialRow{
				Category:            cat.Name,
				Name:                m.Name,
				ThermalConductivity: m.ThermalConductivity,
				Thickness:           m.Thickness,
				Resistance:          r,
			})
		}
	}
	return rows
}

func writeMaterials(w io.Writer, cats []catalog.Category, format string) error {
	rows := materialRows(cats)
	switch format {
	case formatJSON:
		return writeJSON(w, rows)
	case formatCSV:
		return gocsv.Marshal(rows, w)
	case formatText:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "CATEGORY\tNAME\tλ [W/mK]\td [m]\tR [m2K/W]")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%g\t%g\t%.3f\n", r.Category, r.Name, r.ThermalConductivity, r.Thickness, r.Resistance)
		}
		return tw.Flush()
	default:
		return unknownFormat(format)
	}
}

func writePanels(w io.Writer, panels []solar.PanelSpec, format string) error {
	switch format {
	case formatJSON:
		return writeJSON(w, panels)
	case formatCSV:
		rows := make([]*catalog.PanelRow, len(panels))
		for i, p := range panels {
			rows[i] = &catalog.PanelRow{
				Brand:      p.Brand,
				Model:      p.Model,
				Technology: string(p.Technology),
				RatedPower: p.RatedPower,
				Efficiency: p.Efficiency,
				Area:       p.Area,
				Price:      p.Price,
			}
		}
		return gocsv.Marshal(rows, w)
	case formatText:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "BRAND\tMODEL\tTECHNOLOGY\tP [Wc]\tη [%]\tA [m2]\tPRICE")
		for _, p := range panels {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%g\t%g\t%g\t%g\n", p.Brand, p.Model, p.Technology, p.RatedPower, p.Efficiency, p.Area, p.Price)
		}
		return tw.Flush()
	default:
		return unknownFormat(format)
	}
}
