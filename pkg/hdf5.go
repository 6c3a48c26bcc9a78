package validation

import (
	hdf5 "github.com/jmbenlloch/go-hdf5"
)

const STRLEN = 20

// WallGeometryHDF5 is one row of the walls table.
type WallGeometryHDF5 struct {
	name [STRLEN]byte
	nx   int32
	ny   int32
	xmin int32
	ymin int32
}

// HistogramBinHDF5 is one bin of a plain histogram.
type HistogramBinHDF5 struct {
	low     float64
	high    float64
	content float64
	entries int64
}

// FieldStatsHDF5 keeps the hit statistics of a map field.
type FieldStatsHDF5 struct {
	events  int64
	hits    int64
	filled  int64
	skipped int64
}

func convertToHdf5String(s string) [STRLEN]byte {
	var byteArray [STRLEN]byte
	copy(byteArray[:], s)
	return byteArray
}

func openFile(fname string) (*hdf5.File, error) {
	f, err := hdf5.CreateFile(fname, hdf5.F_ACC_TRUNC)
	if err != nil {
		return nil, &ErrOpenFile{Filename: fname, Err: err}
	}
	return f, nil
}

func createGroup(file *hdf5.File, groupName string) (*hdf5.Group, error) {
	g, err := file.CreateGroup(groupName)
	if err != nil {
		return nil, &ErrCreateGroup{GroupName: groupName, Err: err}
	}
	return g, nil
}

func compressedPlist(chunks []uint, level int) (*hdf5.PropList, error) {
	plist, err := hdf5.NewPropList(hdf5.P_DATASET_CREATE)
	if err != nil {
		return nil, err
	}
	if err := plist.SetChunk(chunks); err != nil {
		plist.Close()
		return nil, err
	}
	if err := plist.SetDeflate(level); err != nil {
		plist.Close()
		return nil, err
	}
	return plist, nil
}

// writeArray writes a whole 2d array in one go: rows × cols values,
// row-major.
func writeArray[T any](group *hdf5.Group, name string, dtype *hdf5.Datatype, data []T, rows, cols int, level int) error {
	dims := []uint{uint(rows), uint(cols)}
	space, err := hdf5.CreateSimpleDataspace(dims, nil)
	if err != nil {
		return &ErrCreateTable{TableName: name, Err: err}
	}
	defer space.Close()

	plist, err := compressedPlist(dims, level)
	if err != nil {
		return &ErrCreateTable{TableName: name, Err: err}
	}
	defer plist.Close()

	dset, err := group.CreateDatasetWith(name, dtype, space, plist)
	if err != nil {
		return &ErrCreateTable{TableName: name, Err: err}
	}
	if err := dset.Write(&data); err != nil {
		dset.Close()
		return &ErrCreateTable{TableName: name, Err: err}
	}
	return dset.Close()
}

// writeTable writes rows as a compound table with one entry per element.
func writeTable[T any](group *hdf5.Group, name string, rows []T, level int) error {
	if len(rows) == 0 {
		return nil
	}
	dims := []uint{uint(len(rows))}
	space, err := hdf5.CreateSimpleDataspace(dims, nil)
	if err != nil {
		return &ErrCreateTable{TableName: name, Err: err}
	}
	defer space.Close()

	plist, err := compressedPlist(dims, level)
	if err != nil {
		return &ErrCreateTable{TableName: name, Err: err}
	}
	defer plist.Close()

	dtype, err := hdf5.NewDatatypeFromValue(rows[0])
	if err != nil {
		return &ErrCreateTable{TableName: name, Err: err}
	}

	dset, err := group.CreateDatasetWith(name, dtype, space, plist)
	if err != nil {
		return &ErrCreateTable{TableName: name, Err: err}
	}
	if err := dset.Write(&rows); err != nil {
		dset.Close()
		return &ErrCreateTable{TableName: name, Err: err}
	}
	return dset.Close()
}

// writeMap stores one map as <wall>_<suffix>. Count maps are written as
// integers.
func writeMap(group *hdf5.Group, m *Map, suffix string, level int) error {
	name := m.Wall.Key() + "_" + suffix
	values := m.Rows()
	if m.Mode == CountMode {
		counts := make([]int32, len(values))
		for i, v := range values {
			counts[i] = int32(v)
		}
		return writeArray(group, name, hdf5.T_NATIVE_INT32, counts, m.NY, m.NX, level)
	}
	return writeArray(group, name, hdf5.T_NATIVE_DOUBLE, values, m.NY, m.NX, level)
}
