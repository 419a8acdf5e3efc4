package placement

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/piwi3910/KitchenCraft/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_ClickIsNotADrag(t *testing.T) {
	item := cabinet("b", 1800, 1500)
	s := NewSession(newEngine())
	s.Begin(NewScene(model.DefaultRoom(), []model.CabinetInstance{item}), item, 1800, 1500)
	assert.Equal(t, PendingDrag, s.State())

	_, ok := s.Move(1810, 1505)
	assert.False(t, ok, "below the drag threshold nothing resolves")
	assert.Equal(t, PendingDrag, s.State())

	_, ok = s.Confirm()
	assert.False(t, ok)
	assert.Equal(t, Idle, s.State())
}

func TestSession_DragAndConfirm(t *testing.T) {
	item := cabinet("b", 1800, 1500)
	item.Overrides.HingeSide = model.SideRight
	scene := NewScene(model.DefaultRoom(), []model.CabinetInstance{item})
	s := NewSession(newEngine())

	s.Begin(scene, item, 1800, 1500)
	res, ok := s.Move(1800, 1200)
	require.True(t, ok)
	assert.Equal(t, Dragging, s.State())
	assert.Equal(t, model.SnapGrid, res.SnappedTo)

	// Pointer moved 1420 towards the back wall: the item lands against it.
	res, ok = s.Move(1800, 80)
	require.True(t, ok)
	assert.Equal(t, model.SnapWall, res.SnappedTo)

	moved, ok := s.Confirm()
	require.True(t, ok)
	assert.Equal(t, Idle, s.State())
	assert.Equal(t, "b", moved.ID)
	assert.Equal(t, 1800.0, moved.Position.X)
	assert.Equal(t, 287.5, moved.Position.Z)
	assert.Equal(t, model.SideRight, moved.Overrides.HingeSide)

	// The caller's instance is untouched.
	assert.Equal(t, 1500.0, item.Position.Z)
}

func TestSession_Cancel(t *testing.T) {
	item := cabinet("b", 1800, 1500)
	s := NewSession(newEngine())
	s.Begin(NewScene(model.DefaultRoom(), nil), item, 1800, 1500)
	_, ok := s.Move(1500, 1500)
	require.True(t, ok)

	s.Cancel()
	assert.Equal(t, Idle, s.State())
	_, ok = s.Confirm()
	assert.False(t, ok)
	_, ok = s.Move(1000, 1000)
	assert.False(t, ok, "an idle session ignores samples")
}

func TestSession_MoveIsSideEffectFree(t *testing.T) {
	item := cabinet("b", 1800, 1500)
	s := NewSession(newEngine())
	s.Begin(NewScene(model.DefaultRoom(), nil), item, 1800, 1500)

	first, _ := s.Move(1234, 1678)
	second, _ := s.Move(1234, 1678)
	assert.Equal(t, first, second)
	assert.Equal(t, 1800.0, s.Item().Position.X)
}

func TestSession_LogsTransitions(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	item := cabinet("b", 1800, 1500)
	s := NewSession(newEngine(), WithLogger(logger))
	s.Begin(NewScene(model.DefaultRoom(), nil), item, 1800, 1500)
	s.Move(1800, 1000)
	s.Confirm()

	out := buf.String()
	assert.Contains(t, out, "pending")
	assert.Contains(t, out, "dragging")
	assert.Contains(t, out, "drag confirmed")
}
