package validation

import (
	"fmt"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rtree"
)

// RootSource reads events from a TTree in a ROOT file.
type RootSource struct {
	file *groot.File
	tree rtree.Tree
}

func OpenRootSource(filename string, treeName string) (*RootSource, error) {
	f, err := groot.Open(filename)
	if err != nil {
		return nil, &ErrOpenFile{Filename: filename, Err: err}
	}
	obj, err := f.Get(treeName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("no data in a tree named %q: %w", treeName, err)
	}
	tree, ok := obj.(rtree.Tree)
	if !ok {
		f.Close()
		return nil, fmt.Errorf("object %q is a %T, not a tree", treeName, obj)
	}
	return &RootSource{file: f, tree: tree}, nil
}

func (s *RootSource) Fields() []string {
	branches := s.tree.Branches()
	names := make([]string, len(branches))
	for i, b := range branches {
		names[i] = b.Name()
	}
	return names
}

func (s *RootSource) Entries() int64 {
	return s.tree.Entries()
}

func (s *RootSource) NewVar(name string) (FieldVar, error) {
	for _, rv := range rtree.NewReadVars(s.tree) {
		if rv.Name == name {
			return FieldVar{Name: name, Value: rv.Value}, nil
		}
	}
	return FieldVar{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

func (s *RootSource) Scan(vars []FieldVar, maxEvents int64, fn func(ievt int64) error) error {
	rvars := make([]rtree.ReadVar, len(vars))
	for i, v := range vars {
		rvars[i] = rtree.ReadVar{Name: v.Name, Value: v.Value}
	}

	n := s.tree.Entries()
	if maxEvents >= 0 && maxEvents < n {
		n = maxEvents
	}
	r, err := rtree.NewReader(s.tree, rvars, rtree.WithRange(0, n))
	if err != nil {
		return fmt.Errorf("could not create tree reader: %w", err)
	}
	defer r.Close()

	return r.Read(func(ctx rtree.RCtx) error {
		return fn(ctx.Entry)
	})
}

func (s *RootSource) Close() error {
	return s.file.Close()
}
