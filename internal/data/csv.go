package data

import (
	"encoding/csv"
	"os"
	"strconv"

	"solar-sizing/internal/model"
)

// WriteProfileCSV writes the 24-slot hourly load profile as (hour, power_w)
// rows.
func WriteProfileCSV(path string, profile [model.HoursPerDay]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"hour", "power_w"}); err != nil {
		return err
	}
	for h, p := range profile {
		row := []string{
			strconv.Itoa(h),
			fmtFloat(p),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// WriteEquipmentCSV writes the tabular projection of a collection.
func WriteEquipmentCSV(path string, rows []model.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"name", "power_w", "time_h", "schedule", "energy_wh"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		row := []string{
			r.Name,
			strconv.Itoa(r.PowerW),
			fmtFloat(r.TimeH),
			r.Schedule,
			fmtFloat(r.EnergyWh),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
