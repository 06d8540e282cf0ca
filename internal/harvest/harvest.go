// Package harvest reads model collections into report tables.
package harvest

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"osm-hvac-report/internal/osm"
	"osm-hvac-report/internal/report"
)

var ErrUnknownReport = errors.New("unknown report")

// Report kinds.
const (
	SizingZonesReport    = "sizing-zones"
	EquipmentListsReport = "zone-hvac-equipment-lists"
	VRFTerminalsReport   = "vrf-terminal-units"
)

// Func builds one report from a model.
type Func func(m *osm.Model) (*report.Table, error)

var registry = map[string]Func{
	SizingZonesReport:    SizingZones,
	EquipmentListsReport: EquipmentLists,
	VRFTerminalsReport:   VRFTerminalUnits,
}

// Kinds lists the report kinds in name order.
func Kinds() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Build runs the report named kind against m.
func Build(kind string, m *osm.Model) (*report.Table, error) {
	fn, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownReport, kind)
	}
	return fn(m)
}

// cell reads one schema field of o as a report cell, choosing the
// accessor by field kind. References resolve to the target's name and
// autosized values are absent.
func cell(m *osm.Model, o *osm.Object, f osm.FieldDef) report.Cell {
	if f.Autosizable && o.IsAutosized(f.Name) {
		return report.Absent()
	}
	switch f.Kind {
	case osm.KindReal:
		return report.OptionalReal(o.Real(f.Name))
	case osm.KindInteger:
		return report.OptionalInt(o.Int(f.Name))
	case osm.KindObject:
		return report.OptionalText(m.ResolveName(o, f.Name))
	default:
		return report.OptionalText(o.Get(f.Name))
	}
}

// fieldDefs looks up the named fields of typ in the schema.
func fieldDefs(typ string, names []string) []osm.FieldDef {
	def, ok := osm.DefaultSchema.Lookup(typ)
	if !ok {
		panic("harvest: no schema for " + typ)
	}
	out := make([]osm.FieldDef, len(names))
	for i, n := range names {
		f, ok := def.Field(n)
		if !ok {
			panic(fmt.Sprintf("harvest: %s has no field %q", typ, n))
		}
		out[i] = f
	}
	return out
}

func logCount(t *report.Table, what string) {
	log.Info().Str("report", t.Name).Int("rows", t.Len()).Msgf("The OSM model contains %d %s", t.Len(), what)
}
