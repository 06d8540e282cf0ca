package flatten

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osm-hvac-report/internal/report"
)

var baseCols = []string{"Name"}

func container(name string, slots ...Slot) Container {
	return Container{Name: name, Base: []report.Cell{report.Text(name)}, Slots: slots}
}

func slot(equip string, cool, heat int, coolSched string) Slot {
	s := Slot{
		Equipment:               report.Text(equip),
		CoolingSeq:              report.Int(cool),
		HeatingSeq:              report.Int(heat),
		HeatingFractionSchedule: report.Absent(),
	}
	if coolSched != "" {
		s.CoolingFractionSchedule = report.Text(coolSched)
	}
	return s
}

func TestFlatten_EmptyInput(t *testing.T) {
	tbl := Flatten("lists", baseCols, nil)
	assert.Equal(t, 0, MaxSlots(nil))
	assert.Equal(t, baseCols, tbl.Columns)
	assert.Empty(t, tbl.Rows)
}

func TestFlatten_PadsAndSorts(t *testing.T) {
	in := []Container{
		container("B", slot("Fan Coil", 1, 1, "")),
		container("A"),
	}
	tbl := Flatten("lists", baseCols, in)

	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, []string{
		"Name",
		"Equipment 1", "CoolingSeq 1", "HeatingSeq 1",
		"CoolingFractionSchedule 1", "HeatingFractionSchedule 1",
	}, tbl.Columns)

	a := tbl.Rows[0]
	assert.Equal(t, "A", a[0].String())
	for _, c := range a[1:] {
		assert.True(t, c.IsAbsent())
	}

	b := tbl.Rows[1]
	assert.Equal(t, "B", b[0].String())
	assert.Equal(t, "Fan Coil", b[1].String())
	assert.Equal(t, report.Int(1), b[2])
	assert.Equal(t, report.Int(1), b[3])
	assert.True(t, b[4].IsAbsent())
	assert.True(t, b[5].IsAbsent())
}

func TestFlatten_SlotColumnsReflectSlotFields(t *testing.T) {
	in := []Container{
		container("Zone 2 List", slot("VRF 2", 1, 2, "Cool Frac"), slot("Baseboard 2", 2, 1, "")),
		container("Zone 1 List", slot("VRF 1", 1, 1, ""), slot("ERV 1", 2, 2, ""), slot("Baseboard 1", 3, 3, "Cool Frac")),
		container("Zone 3 List"),
	}
	tbl := Flatten("lists", baseCols, in)

	require.Equal(t, 3, MaxSlots(in))
	require.Len(t, tbl.Columns, len(baseCols)+SlotWidth*3)
	require.Len(t, tbl.Rows, len(in))

	names, err := tbl.Column("Name")
	require.NoError(t, err)
	assert.Equal(t, []string{"Zone 1 List", "Zone 2 List", "Zone 3 List"},
		[]string{names[0].String(), names[1].String(), names[2].String()})

	for _, r := range tbl.Rows {
		assert.Len(t, r, len(tbl.Columns))
	}

	z2 := tbl.Rows[1]
	assert.Equal(t, "VRF 2", z2[1].String())
	assert.Equal(t, "Cool Frac", z2[4].String())
	assert.Equal(t, "Baseboard 2", z2[6].String())
	assert.Equal(t, report.Int(1), z2[8])
	for i := 1 + 2*SlotWidth; i < len(z2); i++ {
		assert.True(t, z2[i].IsAbsent(), "column %s", tbl.Columns[i])
	}

	z1 := tbl.Rows[0]
	assert.Equal(t, "Baseboard 1", z1[11].String())
	assert.Equal(t, "Cool Frac", z1[14].String())
}

func TestFlatten_DuplicateNamesKeepInputOrder(t *testing.T) {
	in := []Container{
		{Name: "Dup", Base: []report.Cell{report.Text("first")}},
		{Name: "Alpha", Base: []report.Cell{report.Text("alpha")}},
		{Name: "Dup", Base: []report.Cell{report.Text("second")}},
	}
	tbl := Flatten("lists", []string{"Handle"}, in)

	require.Len(t, tbl.Rows, 3)
	assert.Equal(t, "alpha", tbl.Rows[0][0].String())
	assert.Equal(t, "first", tbl.Rows[1][0].String())
	assert.Equal(t, "second", tbl.Rows[2][0].String())
}

func TestSlotColumns(t *testing.T) {
	assert.Empty(t, SlotColumns(0))
	cols := SlotColumns(2)
	assert.Len(t, cols, 10)
	assert.Equal(t, "Equipment 2", cols[5])
	assert.Equal(t, "HeatingFractionSchedule 2", cols[9])
}
