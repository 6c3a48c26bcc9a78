package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCaloHit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hit  string
		want Position
	}{
		{"main wall France keeps x", "[1302:0.1.0.5.*]", Position{MainWallFrance, 0, 5}},
		{"main wall France last column", "[1302:0.1.19.12.*]", Position{MainWallFrance, 19, 12}},
		{"main wall Italy mirrored", "[1302:0.0.0.5.*]", Position{MainWallItaly, -1, 5}},
		{"main wall Italy last column", "[1302:0.0.19.0.*]", Position{MainWallItaly, -20, 0}},
		{"x-wall mountain France", "[1232:0.1.0.1.7.*]", Position{XWallMountain, 1, 7}},
		{"x-wall mountain Italy", "[1232:0.0.0.1.7.*]", Position{XWallMountain, -2, 7}},
		{"x-wall tunnel France", "[1232:0.1.1.1.7.*]", Position{XWallTunnel, -2, 7}},
		{"x-wall tunnel Italy", "[1232:0.0.1.1.7.*]", Position{XWallTunnel, 1, 7}},
		{"veto top France", "[1252:0.1.1.0.5.*]", Position{VetoTop, 5, 0}},
		{"veto top Italy", "[1252:0.0.1.0.5.*]", Position{VetoTop, 5, 1}},
		{"veto bottom France", "[1252:0.1.0.0.5.*]", Position{VetoBottom, 5, 1}},
		{"veto bottom Italy", "[1252:0.0.0.0.5.*]", Position{VetoBottom, 5, 0}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := DecodeCaloHit(tt.hit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, WallGeometry(got.Wall).Contains(got.X, got.Y), "decoded cell lies outside its wall")
		})
	}
}

func TestDecodeCaloHitIsPure(t *testing.T) {
	t.Parallel()

	for _, hit := range []string{"[1302:0.0.3.4.*]", "[1232:0.1.1.0.9.*]", "[1252:0.1.0.0.12.*]"} {
		first, err := DecodeCaloHit(hit)
		require.NoError(t, err)
		second, err := DecodeCaloHit(hit)
		require.NoError(t, err)
		assert.Equal(t, first, second, hit)
	}
}

func TestDecodeCaloHitErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hit  string
		want error
	}{
		{"too short", "[13", ErrShortHit},
		{"empty", "", ErrShortHit},
		{"unknown wall", "[9999:0.1.0.5.*]", ErrUnknownWall},
		{"no colon", "[1302-0.1.0.5", ErrMalformedHit},
		{"no opening bracket", "1302:0.1.0.5.*", ErrMalformedHit},
		{"short wall type", "[130:0.1.0.5.*]", ErrMalformedHit},
		{"missing fields", "[1302:0.1]", ErrMalformedHit},
		{"missing veto column", "[1252:0.1.1.0]", ErrMalformedHit},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := DecodeCaloHit(tt.hit)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodeCaloHitMultiDigitModule(t *testing.T) {
	t.Parallel()

	// the side flag is the second address token, whatever the width of
	// the module number
	got, err := DecodeCaloHit("[1302:10.1.0.5.*]")
	require.NoError(t, err)
	assert.Equal(t, Position{MainWallFrance, 0, 5}, got)

	got, err = DecodeCaloHit("[1302:10.0.0.5.*]")
	require.NoError(t, err)
	assert.Equal(t, Position{MainWallItaly, -1, 5}, got)

	got, err = DecodeCaloHit("[1232:12.0.1.1.7.*]")
	require.NoError(t, err)
	assert.Equal(t, Position{XWallTunnel, 1, 7}, got)
}

func TestDecodeCaloHitClosingBracketOptional(t *testing.T) {
	t.Parallel()

	got, err := DecodeCaloHit("[1302:0.1.0.5")
	require.NoError(t, err)
	assert.Equal(t, Position{MainWallFrance, 0, 5}, got)
}

func TestDecodeCaloHitNonNumericField(t *testing.T) {
	t.Parallel()

	_, err := DecodeCaloHit("[1302:0.1.x.5.*]")
	require.Error(t, err)

	var bad *ErrBadField
	require.True(t, errors.As(err, &bad))
	assert.Equal(t, 2, bad.Index)
	assert.Equal(t, "[1302:0.1.x.5.*]", bad.Hit)
}

func TestTokenizeHit(t *testing.T) {
	t.Parallel()

	rec, err := TokenizeHit("[1232:0.1.1.0.9.*]")
	require.NoError(t, err)
	assert.Equal(t, "1232", rec.WallType)
	assert.Equal(t, []string{"0", "1", "1", "0", "9", "*"}, rec.Fields)

	flag, err := rec.Flag(sideField)
	require.NoError(t, err)
	assert.True(t, flag)

	_, err = rec.Int(5)
	var bad *ErrBadField
	assert.ErrorAs(t, err, &bad)

	_, err = rec.Flag(6)
	assert.ErrorIs(t, err, ErrMalformedHit)
}
