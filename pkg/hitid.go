package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// Calorimeter hits are written as [TTTT:module.side.f2.f3...] where TTTT is
// the wall type. The side flag is the second address token and the x-wall /
// veto flag the third, counted after splitting on '.', so a multi-digit
// module number does not shift them.
const (
	MainWallCode = "1302"
	XWallCode    = "1232"
	VetoWallCode = "1252"

	minHitLength = 9

	sideField = 1
	wallField = 2
)

// Position is a decoded calorimeter hit.
type Position struct {
	Wall WallID
	X, Y int
}

// HitRecord is a tokenized hit identifier.
type HitRecord struct {
	Raw      string
	WallType string
	Fields   []string
}

// TokenizeHit splits a hit identifier into its wall type and the
// dot-separated address fields. The identifier must open with '['; the
// closing ']' may be missing.
func TokenizeHit(hit string) (HitRecord, error) {
	if len(hit) < minHitLength {
		return HitRecord{}, fmt.Errorf("%w: %q", ErrShortHit, hit)
	}
	body, found := strings.CutPrefix(hit, "[")
	if !found {
		return HitRecord{}, fmt.Errorf("%w: %q does not start with '['", ErrMalformedHit, hit)
	}
	body = strings.TrimSuffix(body, "]")
	wallType, address, found := strings.Cut(body, ":")
	if !found || len(wallType) != 4 {
		return HitRecord{}, fmt.Errorf("%w: %q has no wall type", ErrMalformedHit, hit)
	}
	return HitRecord{
		Raw:      hit,
		WallType: wallType,
		Fields:   strings.Split(address, "."),
	}, nil
}

func (h HitRecord) field(i int) (string, error) {
	if i < 0 || i >= len(h.Fields) {
		return "", fmt.Errorf("%w: %q has no field %d", ErrMalformedHit, h.Raw, i)
	}
	return h.Fields[i], nil
}

// Flag reports whether field i is set to "1".
func (h HitRecord) Flag(i int) (bool, error) {
	f, err := h.field(i)
	if err != nil {
		return false, err
	}
	return f == "1", nil
}

// Int parses field i as a decimal integer.
func (h HitRecord) Int(i int) (int, error) {
	f, err := h.field(i)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(f)
	if err != nil {
		return 0, &ErrBadField{Hit: h.Raw, Index: i, Err: err}
	}
	return v, nil
}

// DecodeCaloHit turns a calorimeter hit identifier into a wall and a cell.
// Columns are renumbered so that every wall is drawn as seen from outside
// the detector with the mountain on the left.
func DecodeCaloHit(hit string) (Position, error) {
	rec, err := TokenizeHit(hit)
	if err != nil {
		return Position{}, err
	}

	switch rec.WallType {
	case MainWallCode:
		return decodeMainWall(rec)
	case XWallCode:
		return decodeXWall(rec)
	case VetoWallCode:
		return decodeVetoWall(rec)
	default:
		return Position{}, fmt.Errorf("%w %s", ErrUnknownWall, rec.WallType)
	}
}

func decodeMainWall(rec HitRecord) (Position, error) {
	isFrance, err := rec.Flag(sideField)
	if err != nil {
		return Position{}, err
	}
	x, err := rec.Int(2)
	if err != nil {
		return Position{}, err
	}
	y, err := rec.Int(3)
	if err != nil {
		return Position{}, err
	}

	pos := Position{Wall: MainWallFrance, X: x, Y: y}
	if !isFrance {
		pos.Wall = MainWallItaly
		pos.X = mirror(x)
	}
	return pos, nil
}

func decodeXWall(rec HitRecord) (Position, error) {
	isFrance, err := rec.Flag(sideField)
	if err != nil {
		return Position{}, err
	}
	isTunnel, err := rec.Flag(wallField)
	if err != nil {
		return Position{}, err
	}
	x, err := rec.Int(3)
	if err != nil {
		return Position{}, err
	}
	y, err := rec.Int(4)
	if err != nil {
		return Position{}, err
	}

	pos := Position{Wall: XWallMountain, X: x, Y: y}
	if !isFrance {
		pos.X = mirror(pos.X)
	}
	// France on the left for the tunnel side
	if isTunnel {
		pos.Wall = XWallTunnel
		pos.X = mirror(pos.X)
	}
	return pos, nil
}

func decodeVetoWall(rec HitRecord) (Position, error) {
	isFrance, err := rec.Flag(sideField)
	if err != nil {
		return Position{}, err
	}
	isTop, err := rec.Flag(wallField)
	if err != nil {
		return Position{}, err
	}
	x, err := rec.Int(4)
	if err != nil {
		return Position{}, err
	}

	pos := Position{Wall: VetoBottom, X: x}
	if isTop {
		pos.Wall = VetoTop
	}
	// French side inwards on both vetoes
	if isFrance != isTop {
		pos.Y = 1
	}
	return pos, nil
}

func mirror(x int) int {
	return -(x + 1)
}
