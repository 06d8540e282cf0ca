package harvest

import (
	"osm-hvac-report/internal/osm"
	"osm-hvac-report/internal/report"
)

const colZoneName = "Zone or ZoneList Name"

var sizingFields = fieldDefs(osm.TypeSizingZone, []string{
	"Zone Cooling Design Supply Air Temperature Input Method",
	"Zone Cooling Design Supply Air Temperature",
	"Zone Cooling Design Supply Air Temperature Difference",
	"Zone Heating Design Supply Air Temperature Input Method",
	"Zone Heating Design Supply Air Temperature",
	"Zone Heating Design Supply Air Temperature Difference",
	"Zone Cooling Design Supply Air Humidity Ratio",
	"Zone Heating Design Supply Air Humidity Ratio",
	"Zone Heating Sizing Factor",
	"Zone Cooling Sizing Factor",
	"Cooling Design Air Flow Method",
	"Cooling Design Air Flow Rate",
	"Cooling Minimum Air Flow per Zone Floor Area",
	"Cooling Minimum Air Flow",
	"Cooling Minimum Air Flow Fraction",
	"Heating Design Air Flow Method",
	"Heating Design Air Flow Rate",
	"Heating Maximum Air Flow per Zone Floor Area",
	"Heating Maximum Air Flow",
	"Heating Maximum Air Flow Fraction",
	"Account for Dedicated Outdoor Air System",
	"Dedicated Outdoor Air System Control Strategy",
	"Dedicated Outdoor Air Low Setpoint Temperature for Design",
	"Dedicated Outdoor Air High Setpoint Temperature for Design",
	"Zone Load Sizing Method",
	"Zone Latent Cooling Design Supply Air Humidity Ratio Input Method",
	"Zone Dehumidification Design Supply Air Humidity Ratio",
	"Zone Cooling Design Supply Air Humidity Ratio Difference",
	"Zone Latent Heating Design Supply Air Humidity Ratio Input Method",
	"Zone Humidification Design Supply Air Humidity Ratio",
	"Zone Humidification Design Supply Air Humidity Ratio Difference",
})

// SizingZones reports every OS:Sizing:Zone, one row per object, sorted by
// the sized zone's name.
func SizingZones(m *osm.Model) (*report.Table, error) {
	cols := []string{"Handle", colZoneName}
	for _, f := range sizingFields {
		cols = append(cols, f.Label())
	}
	t := report.NewTable(SizingZonesReport, cols)

	for _, sz := range m.SizingZones() {
		row := make(report.Row, 0, len(cols))
		row = append(row,
			report.Text(sz.Handle()),
			report.OptionalText(m.ResolveName(sz, colZoneName)),
		)
		for _, f := range sizingFields {
			row = append(row, cell(m, sz, f))
		}
		if err := t.Append(row); err != nil {
			return nil, err
		}
	}

	if err := t.SortBy(colZoneName); err != nil {
		return nil, err
	}
	logCount(t, "sizing zones")
	return t, nil
}
