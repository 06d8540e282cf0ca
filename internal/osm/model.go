package osm

import (
	"strings"
)

// Object types read by the harvesters.
const (
	TypeVersion         = "OS:Version"
	TypeBuilding        = "OS:Building"
	TypeThermalZone     = "OS:ThermalZone"
	TypeSizingZone      = "OS:Sizing:Zone"
	TypeEquipmentList   = "OS:ZoneHVAC:EquipmentList"
	TypeVRFTerminalUnit = "OS:ZoneHVAC:TerminalUnit:VariableRefrigerantFlow"
)

// Model is an in-memory object graph. Objects keep their file order.
type Model struct {
	objects  []*Object
	byHandle map[string]*Object
	byType   map[string][]*Object
}

func NewModel(objs []*Object) *Model {
	m := &Model{
		byHandle: make(map[string]*Object, len(objs)),
		byType:   make(map[string][]*Object),
	}
	for _, o := range objs {
		m.Add(o)
	}
	return m
}

// Add appends an object and indexes it.
func (m *Model) Add(o *Object) {
	if o.def == nil {
		o.def, _ = DefaultSchema.Lookup(o.Type)
	}
	m.objects = append(m.objects, o)
	m.index(o)
}

func (m *Model) index(o *Object) {
	if h := o.Handle(); h != "" {
		m.byHandle[strings.ToLower(h)] = o
	}
	t := strings.ToLower(o.Type)
	m.byType[t] = append(m.byType[t], o)
}

// reindex rebuilds the handle index after handles were rewritten.
func (m *Model) reindex() {
	m.byHandle = make(map[string]*Object, len(m.objects))
	m.byType = make(map[string][]*Object)
	for _, o := range m.objects {
		m.index(o)
	}
}

func (m *Model) Objects() []*Object { return m.objects }

// ObjectsOfType returns objects of typ (case-insensitive) in file order.
func (m *Model) ObjectsOfType(typ string) []*Object {
	return m.byType[strings.ToLower(typ)]
}

func (m *Model) ObjectByHandle(handle string) (*Object, bool) {
	o, ok := m.byHandle[strings.ToLower(handle)]
	return o, ok
}

// Resolve follows a reference field of o.
func (m *Model) Resolve(o *Object, field string) (*Object, bool) {
	h, ok := o.Ref(field)
	if !ok {
		return nil, false
	}
	return m.ObjectByHandle(h)
}

// ResolveName follows a reference field and returns the target's name.
func (m *Model) ResolveName(o *Object, field string) (string, bool) {
	t, ok := m.Resolve(o, field)
	if !ok {
		return "", false
	}
	return t.Name()
}

// ObjectByName finds the first object of typ with the given name.
func (m *Model) ObjectByName(typ, name string) (*Object, bool) {
	for _, o := range m.ObjectsOfType(typ) {
		if n, ok := o.Name(); ok && n == name {
			return o, true
		}
	}
	return nil, false
}

func (m *Model) Version() (string, bool) {
	v := m.ObjectsOfType(TypeVersion)
	if len(v) == 0 {
		return "", false
	}
	return v[0].Get("Version Identifier")
}

func (m *Model) Building() (*Object, bool) {
	b := m.ObjectsOfType(TypeBuilding)
	if len(b) == 0 {
		return nil, false
	}
	return b[0], true
}

func (m *Model) SizingZones() []*Object { return m.ObjectsOfType(TypeSizingZone) }

func (m *Model) ThermalZones() []*Object { return m.ObjectsOfType(TypeThermalZone) }

func (m *Model) ZoneHVACEquipmentLists() []*Object { return m.ObjectsOfType(TypeEquipmentList) }

func (m *Model) VRFTerminalUnits() []*Object { return m.ObjectsOfType(TypeVRFTerminalUnit) }

// ZoneEquipment is one entry of a zone HVAC equipment list.
type ZoneEquipment struct {
	m     *Model
	list  *Object
	group int
}

// Equipment returns the entries of an equipment list in list order.
// Groups whose equipment reference is blank or does not resolve are
// skipped.
func (m *Model) Equipment(list *Object) []ZoneEquipment {
	n := list.NumGroups()
	out := make([]ZoneEquipment, 0, n)
	for g := 0; g < n; g++ {
		e := ZoneEquipment{m: m, list: list, group: g}
		if _, ok := e.Equipment(); !ok {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (e ZoneEquipment) ref(field string) (*Object, bool) {
	h, ok := e.list.GroupGet(e.group, field)
	if !ok || !isHandle(h) {
		return nil, false
	}
	return e.m.ObjectByHandle(h)
}

func (e ZoneEquipment) Equipment() (*Object, bool) {
	return e.ref("Zone Equipment")
}

// EquipmentName returns the referenced object's name.
func (e ZoneEquipment) EquipmentName() (string, bool) {
	o, ok := e.Equipment()
	if !ok {
		return "", false
	}
	return o.Name()
}

func (e ZoneEquipment) CoolingPriority() (int, bool) {
	v, ok := e.list.GroupGet(e.group, "Zone Equipment Cooling Sequence")
	if !ok {
		return 0, false
	}
	return parseInt(v)
}

func (e ZoneEquipment) HeatingPriority() (int, bool) {
	v, ok := e.list.GroupGet(e.group, "Zone Equipment Heating or No-Load Sequence")
	if !ok {
		return 0, false
	}
	return parseInt(v)
}

func (e ZoneEquipment) SequentialCoolingFractionSchedule() (*Object, bool) {
	return e.ref("Zone Equipment Sequential Cooling Fraction Schedule Name")
}

func (e ZoneEquipment) SequentialHeatingFractionSchedule() (*Object, bool) {
	return e.ref("Zone Equipment Sequential Heating Fraction Schedule Name")
}
