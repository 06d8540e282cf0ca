package harvest

import (
	"osm-hvac-report/internal/flatten"
	"osm-hvac-report/internal/osm"
	"osm-hvac-report/internal/report"
)

var equipmentListColumns = []string{"Handle", "Name", "Thermal Zone", "Load Distribution Scheme"}

// EquipmentLists reports every zone HVAC equipment list with its
// equipment flattened into numbered slot columns.
func EquipmentLists(m *osm.Model) (*report.Table, error) {
	lists := m.ZoneHVACEquipmentLists()
	containers := make([]flatten.Container, 0, len(lists))
	for _, l := range lists {
		containers = append(containers, equipmentContainer(m, l))
	}

	t := flatten.Flatten(EquipmentListsReport, equipmentListColumns, containers)
	logCount(t, "zone HVAC equipment lists")
	return t, nil
}

// equipmentContainer converts one list into flattener input. Optional
// attributes become absent cells here, so the flattener never checks.
func equipmentContainer(m *osm.Model, l *osm.Object) flatten.Container {
	name, _ := l.Name()
	c := flatten.Container{
		Name: name,
		Base: []report.Cell{
			report.Text(l.Handle()),
			report.OptionalText(l.Name()),
			report.OptionalText(m.ResolveName(l, "Thermal Zone")),
			report.OptionalText(l.Get("Load Distribution Scheme")),
		},
	}
	for _, e := range m.Equipment(l) {
		c.Slots = append(c.Slots, flatten.Slot{
			Equipment:               report.OptionalText(e.EquipmentName()),
			CoolingSeq:              report.OptionalInt(e.CoolingPriority()),
			HeatingSeq:              report.OptionalInt(e.HeatingPriority()),
			CoolingFractionSchedule: scheduleName(e.SequentialCoolingFractionSchedule()),
			HeatingFractionSchedule: scheduleName(e.SequentialHeatingFractionSchedule()),
		})
	}
	return c
}

func scheduleName(s *osm.Object, ok bool) report.Cell {
	if !ok {
		return report.Absent()
	}
	return report.OptionalText(s.Name())
}
