package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"building_energy_calc/internal/exitcode"
)

type globalOptions struct {
	verbose       bool
	materialsPath string
	panelsPath    string
}

func addGlobalFlags(fs *pflag.FlagSet, o *globalOptions) {
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "進捗をログに出力します。")
	fs.StringVar(&o.materialsPath, "materials", "", "材料カタログのCSVファイル (category,name,thermal_conductivity,thickness)")
	fs.StringVar(&o.panelsPath, "panels", "", "太陽光パネルカタログのCSVファイル (brand,model,technology,rated_power,efficiency,area,price)")
}

func addFormatFlag(fs *pflag.FlagSet, format *string) {
	fs.StringVarP(format, "format", "f", formatText, "出力形式 (text, json, csv)")
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "building_energy_calc",
		Short:         "Envelope U-values, design heating/cooling loads and PV array sizing",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			log.SetFlags(log.Ltime)
			if opts.verbose {
				log.SetOutput(os.Stderr)
			} else {
				log.SetOutput(io.Discard)
			}
		},
	}
	rootCmd.SetOut(stdout)
	addGlobalFlags(rootCmd.PersistentFlags(), opts)

	rootCmd.AddCommand(uvalueCmd(opts))
	rootCmd.AddCommand(loadsCmd(opts))
	rootCmd.AddCommand(solarCmd(opts))
	rootCmd.AddCommand(reportCmd(opts))
	rootCmd.AddCommand(catalogCmd(opts))

	return rootCmd
}

func uvalueCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "uvalue LAYER...",
		Short: "Compute the U-value of a layered assembly",
		Long: `Compute the U-value of a layered assembly.

Each layer is one of
  NAME                 catalog material with its catalog thickness
  NAME:THICKNESS       catalog material with the given thickness, m
  NAME:LAMBDA:THICKNESS  custom material, W/mK and m`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUValue(cmd.OutOrStdout(), opts, args)
		},
	}
}

func loadsCmd(opts *globalOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "loads PROJECT",
		Short: "Compute design heating and cooling loads of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoads(cmd.OutOrStdout(), opts, args[0], format)
		},
	}
	addFormatFlag(cmd.Flags(), &format)
	return cmd
}

func solarCmd(opts *globalOptions) *cobra.Command {
	in := defaultSolarInput()
	cmd := &cobra.Command{
		Use:   "solar",
		Short: "Size a photovoltaic array for an annual consumption",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.customPanel = cmd.Flags().Changed("power")
			return runSolar(cmd.OutOrStdout(), opts, in)
		},
	}
	fs := cmd.Flags()
	fs.Float64VarP(&in.consumption, "consumption", "c", 0, "年間消費電力量, kWh/yr")
	fs.StringVarP(&in.orientation, "orientation", "o", in.orientation, "方位 (south, south-east, south-west, east, west, north)")
	fs.Float64VarP(&in.tilt, "tilt", "t", in.tilt, "傾斜角, degree")
	fs.Float64Var(&in.shading, "shading", 0, "影による損失, %")
	fs.Float64VarP(&in.rate, "rate", "r", in.rate, "電気料金, per kWh")
	fs.StringVarP(&in.panel, "panel", "p", "", "カタログのパネル BRAND/MODEL (省略時は先頭のパネル)")
	fs.Float64Var(&in.power, "power", 0, "カスタムパネルの定格出力, Wc")
	fs.Float64Var(&in.efficiency, "efficiency", 0, "カスタムパネルの変換効率, %")
	fs.Float64Var(&in.area, "area", 0, "カスタムパネルの面積, m2")
	fs.Float64Var(&in.price, "price", 0, "カスタムパネルの価格")
	fs.Float64Var(&in.irradiation, "irradiation", in.irradiation, "基準日射量, kWh/m2/yr")
	addFormatFlag(fs, &in.format)
	return cmd
}

func reportCmd(opts *globalOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "report PROJECT",
		Short: "Run every calculation described by a project file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.OutOrStdout(), opts, args[0], format)
		},
	}
	addFormatFlag(cmd.Flags(), &format)
	return cmd
}

func catalogCmd(opts *globalOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:       "catalog {materials|panels}",
		Short:     "List the reference catalogs",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"materials", "panels"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd.OutOrStdout(), opts, args[0], format)
		},
	}
	addFormatFlag(cmd.Flags(), &format)
	return cmd
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		code := exitcode.Of(err)
		fmt.Fprintf(os.Stderr, "error (%s): %v\n", code, err)
		os.Exit(int(code))
	}
}
