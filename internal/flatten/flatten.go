// Package flatten pivots containers that own a variable number of
// equipment slots into fixed-width report rows.
package flatten

import (
	"sort"
	"strconv"

	"osm-hvac-report/internal/report"
)

// Per-slot column name templates. The 1-based slot index is appended.
const (
	ColEquipment               = "Equipment"
	ColCoolingSeq              = "CoolingSeq"
	ColHeatingSeq              = "HeatingSeq"
	ColCoolingFractionSchedule = "CoolingFractionSchedule"
	ColHeatingFractionSchedule = "HeatingFractionSchedule"
)

// SlotWidth is the number of columns each slot contributes to a row.
const SlotWidth = 5

// Slot is one equipment entry of a container. Optional fields already
// hold report.Absent() when the source attribute is unset.
type Slot struct {
	Equipment               report.Cell
	CoolingSeq              report.Cell
	HeatingSeq              report.Cell
	CoolingFractionSchedule report.Cell
	HeatingFractionSchedule report.Cell
}

func (s Slot) cells() [SlotWidth]report.Cell {
	return [SlotWidth]report.Cell{
		s.Equipment,
		s.CoolingSeq,
		s.HeatingSeq,
		s.CoolingFractionSchedule,
		s.HeatingFractionSchedule,
	}
}

// Container is a named owner of an ordered slot list. Base holds the
// container's own cells and must match the base columns passed to Flatten.
type Container struct {
	Name  string
	Base  []report.Cell
	Slots []Slot
}

// MaxSlots returns the largest slot count across containers, 0 if none.
func MaxSlots(containers []Container) int {
	n := 0
	for _, c := range containers {
		n = max(n, len(c.Slots))
	}
	return n
}

// SlotColumns returns the 5*n slot column names in row order.
func SlotColumns(n int) []string {
	out := make([]string, 0, SlotWidth*n)
	for i := 1; i <= n; i++ {
		idx := strconv.Itoa(i)
		out = append(out,
			ColEquipment+" "+idx,
			ColCoolingSeq+" "+idx,
			ColHeatingSeq+" "+idx,
			ColCoolingFractionSchedule+" "+idx,
			ColHeatingFractionSchedule+" "+idx,
		)
	}
	return out
}

// Flatten emits one row per container: its base cells followed by
// SlotWidth cells per slot, padded with absent markers up to the
// maximum slot count. Rows are stably sorted by container name, so
// duplicate names keep their input order.
func Flatten(name string, base []string, containers []Container) *report.Table {
	maxSlots := MaxSlots(containers)

	columns := make([]string, 0, len(base)+SlotWidth*maxSlots)
	columns = append(columns, base...)
	columns = append(columns, SlotColumns(maxSlots)...)

	type keyed struct {
		name string
		row  report.Row
	}
	rows := make([]keyed, 0, len(containers))
	for _, c := range containers {
		row := make(report.Row, len(columns))
		copy(row[:len(base)], c.Base)
		for i := 0; i < maxSlots; i++ {
			if i >= len(c.Slots) {
				// Trailing cells are already the zero Cell, i.e. absent.
				break
			}
			cells := c.Slots[i].cells()
			copy(row[len(base)+i*SlotWidth:], cells[:])
		}
		rows = append(rows, keyed{name: c.Name, row: row})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].name < rows[j].name
	})

	t := report.NewTable(name, columns)
	t.Rows = make([]report.Row, len(rows))
	for i, k := range rows {
		t.Rows[i] = k.row
	}
	return t
}
