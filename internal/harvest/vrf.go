package harvest

import (
	"osm-hvac-report/internal/osm"
	"osm-hvac-report/internal/report"
)

// vrfColumn is one column of the VRF terminal unit report. Columns with
// absent set are always reported empty.
type vrfColumn struct {
	field  osm.FieldDef
	absent bool
}

var vrfColumns = func() []vrfColumn {
	names := []string{
		"Terminal Unit Availability schedule",
		"Terminal Unit Air Inlet Node",
		"Terminal Unit Air Outlet Node",
		"Supply Air Flow Rate During Cooling Operation",
		"Supply Air Flow Rate When No Cooling is Needed",
		"Supply Air Flow Rate During Heating Operation",
		"Supply Air Flow Rate When No Heating is Needed",
		"Outdoor Air Flow Rate During Cooling Operation",
		"Outdoor Air Flow Rate During Heating Operation",
		"Outdoor Air Flow Rate When No Cooling or Heating is Needed",
		"Supply Air Fan Operating Mode Schedule",
		"Supply Air Fan Placement",
		"Supply Air Fan",
		"Outside Air Mixer",
		"Cooling Coil",
		"Heating Coil",
		"Zone Terminal Unit On Parasitic Electric Energy Use",
		"Zone Terminal Unit Off Parasitic Electric Energy Use",
		"Rated Total Heating Capacity Sizing Ratio",
		"Availability Manager List Name",
		"Design Specification ZoneHVAC Sizing Object Name",
		"Supplemental Heating Coil Name",
		"Maximum Supply Air Temperature from Supplemental Heater",
		"Maximum Outdoor Dry-Bulb Temperature for Supplemental Heater Operation",
	}
	// Node connections and the unsupported child objects are not exposed
	// by the terminal unit.
	alwaysAbsent := map[string]bool{
		"Terminal Unit Air Inlet Node":                     true,
		"Terminal Unit Air Outlet Node":                    true,
		"Outside Air Mixer":                                true,
		"Availability Manager List Name":                   true,
		"Design Specification ZoneHVAC Sizing Object Name": true,
	}
	defs := fieldDefs(osm.TypeVRFTerminalUnit, names)
	out := make([]vrfColumn, len(defs))
	for i, d := range defs {
		out[i] = vrfColumn{field: d, absent: alwaysAbsent[d.Name]}
	}
	return out
}()

// VRFTerminalUnits reports every VRF zone terminal unit sorted by name.
// Autosized flow rates are reported absent.
func VRFTerminalUnits(m *osm.Model) (*report.Table, error) {
	cols := []string{"Handle", "Name"}
	for _, c := range vrfColumns {
		cols = append(cols, c.field.Label())
	}
	t := report.NewTable(VRFTerminalsReport, cols)

	for _, tu := range m.VRFTerminalUnits() {
		row := make(report.Row, 0, len(cols))
		row = append(row, report.Text(tu.Handle()), report.OptionalText(tu.Name()))
		for _, c := range vrfColumns {
			if c.absent {
				row = append(row, report.Absent())
				continue
			}
			row = append(row, cell(m, tu, c.field))
		}
		if err := t.Append(row); err != nil {
			return nil, err
		}
	}

	if err := t.SortBy("Name"); err != nil {
		return nil, err
	}
	logCount(t, "VRF terminal units")
	return t, nil
}
