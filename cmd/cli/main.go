package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"solar-sizing/internal/analysis"
	"solar-sizing/internal/config"
	"solar-sizing/internal/data"

	"github.com/fatih/color"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "size":
		cmdSize(os.Args[2:])
	case "profile":
		cmdProfile(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli size --equipment saved_configs/home.json --config examples/config.yaml [--out results/profile.csv] [--table results/equipment.csv]")
	fmt.Println("  cli profile --equipment saved_configs/home.json [--out results/profile.csv]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - size prints the full battery/panel/regulator/cable report plus economics")
	fmt.Println("  - profile prints the aggregated 24h load curve")
}

func cmdSize(args []string) {
	fs := flag.NewFlagSet("size", flag.ExitOnError)
	eqPath := fs.String("equipment", "", "Path to saved equipment configuration JSON")
	cfgPath := fs.String("config", "", "Path to YAML sizing parameters")
	outPath := fs.String("out", "", "Optional: write hourly profile CSV here")
	tablePath := fs.String("table", "", "Optional: write per-equipment table CSV here")
	_ = fs.Parse(args)

	if *eqPath == "" || *cfgPath == "" {
		fmt.Println("--equipment and --config are required")
		os.Exit(2)
	}

	col, err := data.LoadEquipmentFile(*eqPath)
	if err != nil {
		fatal(err)
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatal(err)
	}

	report, err := analysis.BuildReport(col, cfg.Params.ToParameters())
	if err != nil {
		fatal(err)
	}

	printReport(report)

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fatal(err)
		}
		if err := data.WriteProfileCSV(*outPath, report.Profile); err != nil {
			fatal(err)
		}
		fmt.Printf("\nWrote hourly profile to %s\n", *outPath)
	}

	if *tablePath != "" {
		if err := os.MkdirAll(filepath.Dir(*tablePath), 0o755); err != nil {
			fatal(err)
		}
		if err := data.WriteEquipmentCSV(*tablePath, col.Rows()); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote equipment table to %s\n", *tablePath)
	}
}

func cmdProfile(args []string) {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	eqPath := fs.String("equipment", "", "Path to saved equipment configuration JSON")
	outPath := fs.String("out", "", "Optional: write hourly profile CSV here")
	_ = fs.Parse(args)

	if *eqPath == "" {
		fmt.Println("--equipment is required")
		os.Exit(2)
	}

	col, err := data.LoadEquipmentFile(*eqPath)
	if err != nil {
		fatal(err)
	}

	profile := col.HourlyProfile()
	stats := analysis.ComputeProfileStats(profile)

	color.Cyan("Hourly load profile")
	for h, w := range profile {
		bar := ""
		if stats.PeakW > 0 {
			n := int(w / stats.PeakW * 40)
			for i := 0; i < n; i++ {
				bar += "#"
			}
		}
		fmt.Printf("%02dh %8.1f W  %s\n", h, w, bar)
	}
	fmt.Printf("peak %.1f W at %02dh, average %.1f W\n", stats.PeakW, stats.PeakHour, stats.AverageW)

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fatal(err)
		}
		if err := data.WriteProfileCSV(*outPath, profile); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote hourly profile to %s\n", *outPath)
	}
}

func printReport(r *analysis.Report) {
	header := color.New(color.FgCyan, color.Bold)

	header.Println("Consumption")
	fmt.Printf("  total power      %d W\n", r.TotalPowerW)
	fmt.Printf("  daily energy     %.1f Wh (%.2f kWh)\n", r.DailyEnergyWh, r.DailyEnergyKWh)
	fmt.Printf("  peak draw        %.1f W at %02dh (average %.1f W)\n", r.Stats.PeakW, r.Stats.PeakHour, r.Stats.AverageW)

	header.Println("Sizing")
	fmt.Printf("  batteries        %d\n", r.BatteryCount)
	fmt.Printf("  panels           %d (%.0f W array)\n", r.PanelCount, r.PVPowerW)
	fmt.Printf("  regulator        %s %dA (nominal %.1f A, efficiency %.0f%%)\n",
		r.Regulator.Type, int(math.Ceil(r.Regulator.RecommendedCurrentA)), r.Regulator.NominalCurrentA, r.Regulator.Efficiency*100)
	fmt.Printf("  cable            %.1f mm2, drop %.2f V (%.2f%%), fuse %d A\n",
		r.Cable.SectionMM2, r.Cable.ActualDropV, r.Cable.ActualDropPercent, r.Cable.FuseRatingA)

	header.Println("Economics")
	fmt.Printf("  total cost       %.2f (batteries %.2f, panels %.2f, converter %.2f, regulator %.2f, installation %.2f)\n",
		r.Costs.Total, r.Costs.BatteryTotal, r.Costs.PanelTotal, r.Costs.Converter, r.Costs.Regulator, r.Costs.Installation)
	fmt.Printf("  savings          %.2f/day, %.2f/month, %.2f/year\n", r.Savings.Daily, r.Savings.Monthly, r.Savings.Annual)
	if r.Savings.PaysBack {
		fmt.Printf("  payback          %.1f years\n", r.Savings.ROIYears)
	} else {
		fmt.Printf("  payback          n/a (no annual savings)\n")
	}
	fmt.Printf("  co2 avoided      %.1f kg/year (%.2f t, ~%.0f trees)\n",
		r.CO2.AvoidedKg, r.CO2.AvoidedTons, r.CO2.TreeEquivalent)
}

func fatal(err error) {
	color.Red("error: %v", err)
	os.Exit(1)
}
