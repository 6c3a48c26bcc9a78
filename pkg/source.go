package validation

import (
	"fmt"
	"reflect"
	"sort"
)

// FieldVar binds a field to a pointer that receives the field's value for
// the current event.
type FieldVar struct {
	Name  string
	Value any
}

// EventSource is a read-only table of events with named fields.
type EventSource interface {
	Fields() []string
	Entries() int64
	// NewVar returns a FieldVar pointing to storage of the field's type.
	NewVar(name string) (FieldVar, error)
	// Scan loads vars for every event, in order, and calls fn after each
	// load. At most maxEvents events are read when maxEvents >= 0.
	Scan(vars []FieldVar, maxEvents int64, fn func(ievt int64) error) error
	Close() error
}

// TableSource is an in-memory EventSource. Each column is a slice with
// one element per event, for example [][]string for calorimeter hits.
type TableSource struct {
	columns map[string]reflect.Value
	names   []string
	entries int64
}

func NewTableSource(columns map[string]any) (*TableSource, error) {
	src := &TableSource{
		columns: make(map[string]reflect.Value, len(columns)),
		entries: -1,
	}
	for name, col := range columns {
		v := reflect.ValueOf(col)
		if v.Kind() != reflect.Slice {
			return nil, fmt.Errorf("column %q is a %T, not a slice", name, col)
		}
		if src.entries >= 0 && int64(v.Len()) != src.entries {
			return nil, fmt.Errorf("column %q has %d events, expected %d", name, v.Len(), src.entries)
		}
		src.entries = int64(v.Len())
		src.columns[name] = v
		src.names = append(src.names, name)
	}
	if src.entries < 0 {
		src.entries = 0
	}
	sort.Strings(src.names)
	return src, nil
}

func (s *TableSource) Fields() []string {
	return append([]string(nil), s.names...)
}

func (s *TableSource) Entries() int64 {
	return s.entries
}

func (s *TableSource) NewVar(name string) (FieldVar, error) {
	col, ok := s.columns[name]
	if !ok {
		return FieldVar{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return FieldVar{Name: name, Value: reflect.New(col.Type().Elem()).Interface()}, nil
}

func (s *TableSource) Scan(vars []FieldVar, maxEvents int64, fn func(ievt int64) error) error {
	cols := make([]reflect.Value, len(vars))
	dsts := make([]reflect.Value, len(vars))
	for i, v := range vars {
		col, ok := s.columns[v.Name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownField, v.Name)
		}
		dst := reflect.ValueOf(v.Value)
		if dst.Kind() != reflect.Pointer || dst.IsNil() {
			return fmt.Errorf("field %q: value must be a non-nil pointer, got %T", v.Name, v.Value)
		}
		if !col.Type().Elem().AssignableTo(dst.Elem().Type()) {
			return fmt.Errorf("field %q holds %v, cannot read into %T", v.Name, col.Type().Elem(), v.Value)
		}
		cols[i] = col
		dsts[i] = dst.Elem()
	}

	n := s.entries
	if maxEvents >= 0 && maxEvents < n {
		n = maxEvents
	}
	for ievt := int64(0); ievt < n; ievt++ {
		for i := range vars {
			dsts[i].Set(cols[i].Index(int(ievt)))
		}
		if err := fn(ievt); err != nil {
			return err
		}
	}
	return nil
}

func (s *TableSource) Close() error {
	return nil
}
