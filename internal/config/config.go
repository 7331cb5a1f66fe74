package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"solar-sizing/internal/analysis"
	"solar-sizing/internal/sizing"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load sizing parameters from a separate YAML preset
	// (e.g. examples/params/*.yaml). Explicit fields under Params override
	// the preset.
	ParamsFile string       `yaml:"params_file"`
	Params     ParamsConfig `yaml:"params"`
}

// ParamsConfig mirrors analysis.Parameters for YAML decoding.
type ParamsConfig struct {
	BatteryVoltageV   float64 `yaml:"battery_voltage_v"`
	BatteryCapacityAh float64 `yaml:"battery_capacity_ah"`
	AutonomyDays      int     `yaml:"autonomy_days"`
	DischargeDepth    float64 `yaml:"discharge_depth"`

	PanelPowerW  float64 `yaml:"panel_power_w"`
	PeakSunHours float64 `yaml:"peak_sun_hours"`

	RegulatorType string `yaml:"regulator_type"`

	CableCurrentA  float64 `yaml:"cable_current_a"`
	CableLengthM   float64 `yaml:"cable_length_m"`
	MaxDropPercent float64 `yaml:"max_drop_percent"`

	BatteryUnitPrice  float64 `yaml:"battery_unit_price"`
	PanelUnitPrice    float64 `yaml:"panel_unit_price"`
	RegulatorPrice    float64 `yaml:"regulator_price"`
	ConverterPrice    float64 `yaml:"converter_price"`
	InstallationPrice float64 `yaml:"installation_price"`

	ElectricityPricePerKWh float64 `yaml:"electricity_price_per_kwh"`

	CO2FactorKgPerKWh       float64 `yaml:"co2_factor_kg_per_kwh"`
	TreeAbsorptionKgPerYear float64 `yaml:"tree_absorption_kg_per_year"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.Params = ApplyDefaults(c.Params)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not default or validate
// it. Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If params_file is set, load it and overlay any explicit fields from
	// c.Params.
	if c.ParamsFile != "" {
		paramsPath := c.ParamsFile
		if !filepath.IsAbs(paramsPath) {
			// Prefer interpreting relative paths as relative to the config file
			// directory, but fall back to the provided path (relative to cwd)
			// if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), paramsPath)
			if _, err := os.Stat(cand); err == nil {
				paramsPath = cand
			}
		}
		loaded, err := loadParamsFile(paramsPath)
		if err != nil {
			return nil, err
		}
		c.Params = MergeParams(loaded, c.Params)
	}
	return &c, nil
}

// ApplyDefaults fills the fields a concise config may omit. Electrical
// parameters have no safe defaults and stay as given.
func ApplyDefaults(p ParamsConfig) ParamsConfig {
	if p.AutonomyDays == 0 {
		p.AutonomyDays = 1
	}
	if p.RegulatorType == "" {
		p.RegulatorType = string(sizing.RegulatorMPPT)
	}
	if p.MaxDropPercent == 0 {
		p.MaxDropPercent = 3.0
	}
	return p
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	p := c.Params
	if p.BatteryVoltageV <= 0 {
		return errors.New("params.battery_voltage_v must be > 0")
	}
	if p.BatteryCapacityAh <= 0 {
		return errors.New("params.battery_capacity_ah must be > 0")
	}
	if p.AutonomyDays < 1 {
		return errors.New("params.autonomy_days must be >= 1")
	}
	if p.DischargeDepth <= 0 || p.DischargeDepth > 1 {
		return errors.New("params.discharge_depth must be in (0, 1]")
	}
	if p.PanelPowerW <= 0 {
		return errors.New("params.panel_power_w must be > 0")
	}
	if p.PeakSunHours <= 0 {
		return errors.New("params.peak_sun_hours must be > 0")
	}
	if _, err := sizing.RegulatorType(p.RegulatorType).Efficiency(); err != nil {
		return fmt.Errorf("params.regulator_type invalid: %w", err)
	}
	if p.CableLengthM < 0 {
		return errors.New("params.cable_length_m must be >= 0")
	}
	if p.MaxDropPercent <= 0 {
		return errors.New("params.max_drop_percent must be > 0")
	}
	return nil
}

// ToParameters converts the YAML shape into the analysis parameter bundle.
func (p ParamsConfig) ToParameters() analysis.Parameters {
	return analysis.Parameters{
		BatteryVoltageV:   p.BatteryVoltageV,
		BatteryCapacityAh: p.BatteryCapacityAh,
		AutonomyDays:      p.AutonomyDays,
		DischargeDepth:    p.DischargeDepth,

		PanelPowerW:  p.PanelPowerW,
		PeakSunHours: p.PeakSunHours,

		RegulatorType: sizing.RegulatorType(p.RegulatorType),

		CableCurrentA:  p.CableCurrentA,
		CableLengthM:   p.CableLengthM,
		MaxDropPercent: p.MaxDropPercent,

		BatteryUnitPrice:  p.BatteryUnitPrice,
		PanelUnitPrice:    p.PanelUnitPrice,
		RegulatorPrice:    p.RegulatorPrice,
		ConverterPrice:    p.ConverterPrice,
		InstallationPrice: p.InstallationPrice,

		ElectricityPricePerKWh: p.ElectricityPricePerKWh,

		CO2FactorKgPerKWh:       p.CO2FactorKgPerKWh,
		TreeAbsorptionKgPerYear: p.TreeAbsorptionKgPerYear,
	}
}

type paramsFileWrapper struct {
	Params ParamsConfig `yaml:"params"`
}

func loadParamsFile(path string) (ParamsConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ParamsConfig{}, err
	}
	var w paramsFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ParamsConfig{}, err
	}
	return w.Params, nil
}

// MergeParams overlays non-zero fields from override onto base. This is
// used when loading a params preset and then applying overrides from the
// config or an API request.
func MergeParams(base, override ParamsConfig) ParamsConfig {
	out := base
	if override.BatteryVoltageV != 0 {
		out.BatteryVoltageV = override.BatteryVoltageV
	}
	if override.BatteryCapacityAh != 0 {
		out.BatteryCapacityAh = override.BatteryCapacityAh
	}
	if override.AutonomyDays != 0 {
		out.AutonomyDays = override.AutonomyDays
	}
	if override.DischargeDepth != 0 {
		out.DischargeDepth = override.DischargeDepth
	}
	if override.PanelPowerW != 0 {
		out.PanelPowerW = override.PanelPowerW
	}
	if override.PeakSunHours != 0 {
		out.PeakSunHours = override.PeakSunHours
	}
	if override.RegulatorType != "" {
		out.RegulatorType = override.RegulatorType
	}
	if override.CableCurrentA != 0 {
		out.CableCurrentA = override.CableCurrentA
	}
	if override.CableLengthM != 0 {
		out.CableLengthM = override.CableLengthM
	}
	if override.MaxDropPercent != 0 {
		out.MaxDropPercent = override.MaxDropPercent
	}
	if override.BatteryUnitPrice != 0 {
		out.BatteryUnitPrice = override.BatteryUnitPrice
	}
	if override.PanelUnitPrice != 0 {
		out.PanelUnitPrice = override.PanelUnitPrice
	}
	if override.RegulatorPrice != 0 {
		out.RegulatorPrice = override.RegulatorPrice
	}
	if override.ConverterPrice != 0 {
		out.ConverterPrice = override.ConverterPrice
	}
	if override.InstallationPrice != 0 {
		out.InstallationPrice = override.InstallationPrice
	}
	if override.ElectricityPricePerKWh != 0 {
		out.ElectricityPricePerKWh = override.ElectricityPricePerKWh
	}
	if override.CO2FactorKgPerKWh != 0 {
		out.CO2FactorKgPerKWh = override.CO2FactorKgPerKWh
	}
	if override.TreeAbsorptionKgPerYear != 0 {
		out.TreeAbsorptionKgPerYear = override.TreeAbsorptionKgPerYear
	}
	return out
}
