package validation

// TrackerCell is a decoded tracker hit.
type TrackerCell struct {
	Layer, Row int
}

// DecodeTrackerCell unpacks a tracker identifier of the form
// row*100 + layer. Division and remainder truncate toward zero, so a
// negative identifier yields a negative layer (Italy side) and a positive
// row: -305 decodes to layer -5, row 3.
func DecodeTrackerCell(packed int) TrackerCell {
	row := packed / 100
	if row < 0 {
		row = -row
	}
	return TrackerCell{
		Layer: packed % 100,
		Row:   row,
	}
}
