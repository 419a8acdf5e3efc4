package handle

import (
	"math"
	"testing"

	"github.com/piwi3910/KitchenCraft/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeLength(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{128, 128},
		{130, 128},
		{150, 160},
		{10, 32},
		{0, 32},
		{-5, 32},
		{math.NaN(), 32},
		{96, 96},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeLength(tt.in), "length %v", tt.in)
	}
}

func TestPosition_BaseDoorHingeLeft(t *testing.T) {
	off := Position(Opening{Height: 700, Width: 600, Category: model.CategoryBase, HingeLeft: true}, 128)

	// 80mm from the bottom edge to the handle's near end, 64mm to its centre.
	assert.InDelta(t, -350+80+64, off.Y, 1e-9)
	assert.InDelta(t, 300-40, off.X, 1e-9)
	assert.Equal(t, 0.0, off.Rotation)
	assert.Equal(t, 128.0, off.Length)
}

func TestPosition_HingeRightMirrors(t *testing.T) {
	left := Position(Opening{Height: 700, Width: 600, Category: model.CategoryBase, HingeLeft: true}, 128)
	right := Position(Opening{Height: 700, Width: 600, Category: model.CategoryBase, HingeLeft: false}, 128)

	assert.Equal(t, -left.X, right.X)
	assert.Equal(t, left.Y, right.Y)
}

func TestPosition_WallAnchorsFromTop(t *testing.T) {
	off := Position(Opening{Height: 700, Width: 400, Category: model.CategoryWall, HingeLeft: true}, 128)
	assert.InDelta(t, 350-80-64, off.Y, 1e-9)
}

func TestPosition_TallAnchorsFromBottom(t *testing.T) {
	off := Position(Opening{Height: 2000, Width: 600, Category: model.CategoryTall, HingeLeft: true}, 160)
	assert.InDelta(t, -1000+80+80, off.Y, 1e-9)
}

func TestPosition_DrawerCentredAndRotated(t *testing.T) {
	off := Position(Opening{Height: 200, Width: 600, Category: model.CategoryBase, HingeLeft: true, Drawer: true}, 128)
	assert.Equal(t, 0.0, off.X)
	assert.Equal(t, 0.0, off.Y)
	assert.Equal(t, 90.0, off.Rotation)
}

func TestPosition_SmallFrontCentres(t *testing.T) {
	off := Position(Opening{Height: 200, Width: 60, Category: model.CategoryBase, HingeLeft: true}, 128)
	assert.Equal(t, 0.0, off.X, "too narrow for the 40mm inset")
	assert.Equal(t, 0.0, off.Y, "too short for the 80mm anchor")
}
