package placement

import (
	"testing"

	"github.com/piwi3910/KitchenCraft/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cabinet(id string, x, z float64) model.CabinetInstance {
	return model.CabinetInstance{
		ID:       id,
		Position: model.Vec3{X: x, Z: z},
		Width:    600,
		Height:   870,
		Depth:    575,
	}
}

func drag(id string, x, z float64) Drag {
	return Drag{ItemID: id, X: x, Z: z, Width: 600, Depth: 575, Rotation: model.Rotation0}
}

func newEngine() *Engine {
	return NewEngine(model.DefaultSnapSettings())
}

func TestResolve_BackWallSnap(t *testing.T) {
	s := NewScene(model.DefaultRoom(), nil)
	res := newEngine().Resolve(s, drag("b", 1800, 80))

	assert.Equal(t, 1800.0, res.X)
	assert.Equal(t, 287.5, res.Z)
	assert.Equal(t, model.Rotation0, res.Rotation)
	assert.Equal(t, model.SnapWall, res.SnappedTo)
	assert.Equal(t, model.EdgeBack, res.SnapEdge)
	assert.False(t, res.Pushed)
	assert.Nil(t, res.Warnings)
}

func TestResolve_LeftWallRotatesToFaceRoom(t *testing.T) {
	s := NewScene(model.DefaultRoom(), nil)
	d := drag("b", 100, 1500)
	d.Rotation = model.Rotation270
	res := newEngine().Resolve(s, d)

	assert.Equal(t, model.SnapWall, res.SnappedTo)
	assert.Equal(t, model.EdgeLeft, res.SnapEdge)
	assert.Equal(t, model.Rotation90, res.Rotation)
	// Depth now runs along X.
	assert.Equal(t, 287.5, res.X)
	assert.Equal(t, 1500.0, res.Z)
}

func TestResolve_SideWallIgnoredAcrossAxis(t *testing.T) {
	s := NewScene(model.DefaultRoom(), nil)
	res := newEngine().Resolve(s, drag("b", 100, 1500))

	assert.Equal(t, model.SnapGrid, res.SnappedTo)
	assert.Equal(t, model.Rotation0, res.Rotation)
	// Clamped against the left wall without turning.
	assert.Equal(t, 300.0, res.X)
	assert.Equal(t, 1500.0, res.Z)
}

func TestResolve_CornerFlushesBothWalls(t *testing.T) {
	s := NewScene(model.DefaultRoom(), nil)
	res := newEngine().Resolve(s, drag("b", 350, 80))

	assert.Equal(t, model.EdgeBack, res.SnapEdge)
	assert.Equal(t, 300.0, res.X)
	assert.Equal(t, 287.5, res.Z)
}

func TestResolve_BackWallTurnsItemAround(t *testing.T) {
	s := NewScene(model.DefaultRoom(), nil)
	d := drag("b", 1800, 80)
	d.Rotation = model.Rotation180
	res := newEngine().Resolve(s, d)

	assert.Equal(t, model.SnapWall, res.SnappedTo)
	assert.Equal(t, model.EdgeBack, res.SnapEdge)
	assert.Equal(t, model.Rotation0, res.Rotation)
	assert.Equal(t, 287.5, res.Z)
}

func TestResolve_CabinetSnapRightEdge(t *testing.T) {
	a := cabinet("a", 1000, 1500)
	s := NewScene(model.DefaultRoom(), []model.CabinetInstance{a})

	// B's right edge is 80mm short of A's left edge and its left edge is
	// 20mm from the left wall.
	res := newEngine().Resolve(s, drag("b", a.Bounds().Left-80-300, 1500))

	assert.Equal(t, model.SnapCabinet, res.SnappedTo)
	assert.Equal(t, model.EdgeRight, res.SnapEdge)
	assert.Equal(t, "a", res.SnappedItemID)
	assert.Equal(t, a.Bounds().Left-300, res.X)
	assert.Equal(t, 1500.0, res.Z)
	assert.False(t, res.Pushed)
}

func TestResolve_CabinetSnapAlignsBackEdges(t *testing.T) {
	a := cabinet("a", 2000, 1500)
	s := NewScene(model.DefaultRoom(), []model.CabinetInstance{a})

	res := newEngine().Resolve(s, drag("b", 2300+50+300, 1540))

	assert.Equal(t, model.EdgeLeft, res.SnapEdge)
	assert.Equal(t, 2600.0, res.X)
	assert.Equal(t, 1500.0, res.Z, "back edges line up")
}

func TestResolve_CabinetSnapIgnoresDistantRows(t *testing.T) {
	a := cabinet("a", 2000, 600)
	s := NewScene(model.DefaultRoom(), []model.CabinetInstance{a})

	// Right edge lines up with A's left edge on X but the rows are 1000mm apart.
	res := newEngine().Resolve(s, drag("b", 1400, 2000))
	assert.Equal(t, model.SnapGrid, res.SnappedTo)
}

func TestResolve_CabinetSnapTieGoesToFirstItem(t *testing.T) {
	a := cabinet("a", 1000, 1500)
	c := cabinet("c", 2400, 1500)
	s := NewScene(model.DefaultRoom(), []model.CabinetInstance{a, c})

	// Midway: 100mm from A's right edge and 100mm from C's left edge.
	res := newEngine().Resolve(s, drag("b", 1700, 1500))
	assert.Equal(t, "a", res.SnappedItemID)
	assert.Equal(t, model.EdgeLeft, res.SnapEdge)
	assert.Equal(t, 1600.0, res.X)
}

func TestResolve_GridFallback(t *testing.T) {
	s := NewScene(model.DefaultRoom(), nil)
	res := newEngine().Resolve(s, drag("b", 1234, 1678))

	assert.Equal(t, model.SnapGrid, res.SnappedTo)
	assert.Equal(t, model.EdgeNone, res.SnapEdge)
	assert.Equal(t, 1250.0, res.X)
	assert.Equal(t, 1700.0, res.Z)
}

func TestResolve_IgnoresDraggedItem(t *testing.T) {
	b := cabinet("b", 2000, 1500)
	s := NewScene(model.DefaultRoom(), []model.CabinetInstance{b})

	res := newEngine().Resolve(s, drag("b", 2010, 1510))
	assert.Equal(t, model.SnapGrid, res.SnappedTo)
	assert.False(t, res.Pushed)
	assert.False(t, res.UnresolvedCollision)
}

func TestResolve_CollisionPush(t *testing.T) {
	a := cabinet("a", 2000, 1500)
	s := NewScene(model.DefaultRoom(), []model.CabinetInstance{a})

	res := newEngine().Resolve(s, drag("b", 1900, 1500))

	assert.True(t, res.Pushed)
	assert.False(t, res.UnresolvedCollision)
	// Least penetration is to the left: 500mm plus the 1mm margin.
	assert.Equal(t, 1399.0, res.X)
	box := model.NewBoundingBox(res.X, res.Z, 600, 575, res.Rotation)
	assert.False(t, box.Overlaps(a.Bounds(), 5))
}

func TestResolve_UnresolvedCollisionFlagged(t *testing.T) {
	room := model.RoomConfig{Width: 1000, Depth: 1000, Height: 2400, Shape: model.RoomRectangle}
	big := model.CabinetInstance{ID: "a", Position: model.Vec3{X: 500, Z: 500}, Width: 900, Height: 870, Depth: 900}
	s := NewScene(room, []model.CabinetInstance{big})

	res := newEngine().Resolve(s, drag("b", 500, 500))

	assert.True(t, res.Pushed)
	assert.True(t, res.UnresolvedCollision)
	assert.True(t, model.HasWarning(res.Warnings, model.CodeUnresolvedCollision))
}

func TestResolve_CollisionInvariant(t *testing.T) {
	items := []model.CabinetInstance{
		cabinet("a", 700, 287.5),
		cabinet("c", 1300, 287.5),
		cabinet("d", 2500, 1500),
	}
	s := NewScene(model.DefaultRoom(), items)
	e := newEngine()
	for x := 0.0; x <= 4000; x += 170 {
		for z := 0.0; z <= 3000; z += 130 {
			res := e.Resolve(s, drag("b", x, z))
			box := model.NewBoundingBox(res.X, res.Z, 600, 575, res.Rotation)
			for _, it := range items {
				if box.Overlaps(it.Bounds(), 5) && !res.UnresolvedCollision {
					t.Fatalf("drag to (%v, %v) overlaps %s without a flag: %+v", x, z, it.ID, res)
				}
			}
			if box.Left < 0 || box.Right > 4000 || box.Back < 0 || box.Front > 3000 {
				t.Fatalf("drag to (%v, %v) left the room: %+v", x, z, box)
			}
		}
	}
}

func TestResolve_Deterministic(t *testing.T) {
	items := []model.CabinetInstance{cabinet("a", 1000, 1500), cabinet("c", 2200, 1500)}
	s := NewScene(model.DefaultRoom(), items)
	e := newEngine()

	first := e.Resolve(s, drag("b", 1603.7, 1488.2))
	second := e.Resolve(s, drag("b", 1603.7, 1488.2))
	assert.Equal(t, first, second)
}

func TestResolve_RoomTooSmall(t *testing.T) {
	room := model.RoomConfig{Width: 500, Depth: 3000, Height: 2400}
	s := NewScene(room, nil)
	res := newEngine().Resolve(s, drag("b", 1000, 1500))

	assert.Equal(t, 250.0, res.X)
	assert.True(t, model.HasWarning(res.Warnings, model.CodeOutOfBounds))
}

func TestResolve_LShapedRoomIsFlagged(t *testing.T) {
	room := model.RoomConfig{Width: 4000, Depth: 3000, Height: 2400, Shape: model.RoomLShape, CutoutWidth: 1000, CutoutDepth: 1000}
	s := NewScene(room, nil)
	res := newEngine().Resolve(s, drag("b", 1800, 80))

	assert.Equal(t, model.SnapWall, res.SnappedTo)
	assert.True(t, model.HasWarning(res.Warnings, model.CodeRoomShapeApproximate))
}

func TestResolve_InvalidInputDegrades(t *testing.T) {
	s := NewScene(model.RoomConfig{}, nil)
	d := Drag{ItemID: "b", X: 1000, Z: 1500, Width: 0, Depth: -3, Rotation: 45}
	res := newEngine().Resolve(s, d)

	require.True(t, res.Rotation.Valid())
	assert.True(t, model.HasWarning(res.Warnings, model.CodeInvalidDimension))
	assert.Equal(t, 4000.0, s.Width())
}

func TestResolve_InvalidObstacleUsesDefaultSize(t *testing.T) {
	bad := model.CabinetInstance{ID: "z", Position: model.Vec3{X: 2000, Z: 1500}, Width: 0, Height: 870, Depth: 575}
	s := NewScene(model.DefaultRoom(), []model.CabinetInstance{bad})

	require.Len(t, s.Obstacles(), 1)
	ob := s.Obstacles()[0].Box
	assert.Equal(t, 600.0, ob.Width())
	assert.Equal(t, 575.0, ob.Depth())

	res := newEngine().Resolve(s, drag("b", 2000, 1500))

	assert.True(t, model.HasWarning(res.Warnings, model.CodeInvalidDimension))
	assert.True(t, res.Pushed)
	assert.False(t, res.UnresolvedCollision)
	box := model.NewBoundingBox(res.X, res.Z, 600, 575, res.Rotation)
	assert.False(t, box.Overlaps(ob, 5))
}

func TestScenario_BaseCabinetAgainstBackWall(t *testing.T) {
	room := model.RoomConfig{Width: 4000, Depth: 3000, Height: 2400, Shape: model.RoomRectangle}
	item := model.CabinetInstance{ID: "base", Width: 600, Height: 870, Depth: 575}
	s := NewScene(room, nil)

	res := newEngine().Resolve(s, DragOf(item, 1800, 80))

	assert.Equal(t, 1800.0, res.X)
	assert.Equal(t, 287.5, res.Z)
	assert.Equal(t, model.Rotation0, res.Rotation)
	assert.Equal(t, model.SnapWall, res.SnappedTo)
	assert.Equal(t, model.EdgeBack, res.SnapEdge)
}
