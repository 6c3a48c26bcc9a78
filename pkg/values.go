package validation

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

type number interface {
	constraints.Integer | constraints.Float
}

func appendAs[U, T number](dst []U, src ...T) []U {
	for _, v := range src {
		dst = append(dst, U(v))
	}
	return dst
}

// ValueKind tells how a numeric field should be binned.
type ValueKind int

const (
	FloatValue ValueKind = iota
	IntValue
	BoolValue
)

// AppendFloat64s appends the value behind a FieldVar, scalar or list, to
// dst as float64.
func AppendFloat64s(dst []float64, value any) ([]float64, ValueKind, error) {
	switch v := value.(type) {
	case *float64:
		return append(dst, *v), FloatValue, nil
	case *float32:
		return appendAs(dst, *v), FloatValue, nil
	case *[]float64:
		return append(dst, *v...), FloatValue, nil
	case *[]float32:
		return appendAs(dst, *v...), FloatValue, nil
	case *bool:
		b := 0.0
		if *v {
			b = 1
		}
		return append(dst, b), BoolValue, nil
	case *[]bool:
		for _, e := range *v {
			b := 0.0
			if e {
				b = 1
			}
			dst = append(dst, b)
		}
		return dst, BoolValue, nil
	}

	ints, err := AppendInts(nil, value)
	if err != nil {
		return dst, FloatValue, err
	}
	return appendAs(dst, ints...), IntValue, nil
}

// AppendInts appends the integer value behind a FieldVar, scalar or list,
// to dst.
func AppendInts(dst []int, value any) ([]int, error) {
	switch v := value.(type) {
	case *int:
		return append(dst, *v), nil
	case *int8:
		return appendAs(dst, *v), nil
	case *int16:
		return appendAs(dst, *v), nil
	case *int32:
		return appendAs(dst, *v), nil
	case *int64:
		return appendAs(dst, *v), nil
	case *uint8:
		return appendAs(dst, *v), nil
	case *uint16:
		return appendAs(dst, *v), nil
	case *uint32:
		return appendAs(dst, *v), nil
	case *uint64:
		return appendAs(dst, *v), nil
	case *[]int:
		return append(dst, *v...), nil
	case *[]int16:
		return appendAs(dst, *v...), nil
	case *[]int32:
		return appendAs(dst, *v...), nil
	case *[]int64:
		return appendAs(dst, *v...), nil
	case *[]uint16:
		return appendAs(dst, *v...), nil
	case *[]uint32:
		return appendAs(dst, *v...), nil
	case *[]uint64:
		return appendAs(dst, *v...), nil
	default:
		return dst, fmt.Errorf("unsupported field type %T", value)
	}
}

// Strings returns the string list behind a FieldVar.
func Strings(value any) ([]string, error) {
	v, ok := value.(*[]string)
	if !ok {
		return nil, fmt.Errorf("expected a list of strings, got %T", value)
	}
	return *v, nil
}
