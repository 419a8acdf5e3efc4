package importer

import (
	"fmt"
	"math"
	"sort"

	"github.com/piwi3910/KitchenCraft/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// Tolerances for room outlines, in drawing units (mm).
const (
	chainTolerance = 0.5
	axisTolerance  = 1.0
	minRoomSize    = 1000.0
)

// RoomResult holds the results of a room import. Outline is the closed
// floor polygon that was used, translated so its bounding box starts at the
// origin.
type RoomResult struct {
	Room     model.RoomConfig
	Outline  model.Outline
	Errors   []string
	Warnings []string
}

// segment represents a line segment between two 2D points, used for
// chaining disconnected LINE entities into closed outlines.
type segment struct {
	start model.Point2D
	end   model.Point2D
}

// ImportRoomDXF reads a floor plan from a DXF file. The largest closed shape
// (LWPOLYLINE or chain of connected LINEs/ARCs) is taken as the room walls.
// Drawing X maps to room width and drawing Y to room depth. A rectangle gives
// a rectangular room; a six-corner rectilinear outline gives an L-shaped room
// whose cutout is the bounding box minus the outline. Anything else falls back
// to its bounding rectangle with a warning. height is the wall height to use,
// since plans carry none; non-positive values use the default room height.
func ImportRoomDXF(path string, height float64) RoomResult {
	result := RoomResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var outlines []model.Outline
	var segments []segment

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			outline := lwPolylineToOutline(e)
			if len(outline) >= 3 {
				outlines = append(outlines, outline)
			} else {
				result.Warnings = append(result.Warnings,
					"Skipped LWPOLYLINE with fewer than 3 vertices")
			}

		case *entity.Arc:
			pts := arcToPoints(e, 16)
			if len(pts) >= 2 {
				segments = append(segments, pointsToSegments(pts)...)
			}

		case *entity.Line:
			segments = append(segments, segment{
				start: model.Point2D{X: e.Start[0], Y: e.Start[1]},
				end:   model.Point2D{X: e.End[0], Y: e.End[1]},
			})
		}
	}

	outlines = append(outlines, chainSegments(segments, chainTolerance)...)
	if len(outlines) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
		return result
	}
	if len(outlines) > 1 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Found %d closed shapes, using the largest as the room", len(outlines)))
	}

	sort.SliceStable(outlines, func(i, j int) bool {
		return outlines[i].Area() > outlines[j].Area()
	})
	outline := simplifyOutline(normalizeOutline(outlines[0]))
	result.Outline = outline

	_, max := outline.BoundingBox()
	if max.X < 0.01 || max.Y < 0.01 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Room outline is degenerate (%.2f x %.2f mm)", max.X, max.Y))
		return result
	}
	if max.X < minRoomSize || max.Y < minRoomSize {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Room is only %.0f x %.0f; check the drawing units are millimetres", max.X, max.Y))
	}

	if !model.ValidLength(height) {
		height = model.DefaultRoom().Height
	}
	room, warning := roomFromOutline(outline, max.X, max.Y)
	room.Height = height
	if warning != "" {
		result.Warnings = append(result.Warnings, warning)
	}
	result.Room = room
	return result
}

// roomFromOutline classifies a normalized outline with bounding box
// width x depth.
func roomFromOutline(o model.Outline, width, depth float64) (model.RoomConfig, string) {
	room := model.RoomConfig{Width: width, Depth: depth, Shape: model.RoomRectangle}

	if !rectilinear(o) {
		return room, "Room outline is not axis-aligned, using its bounding rectangle"
	}
	switch len(o) {
	case 4:
		return room, ""
	case 6:
	default:
		return room, fmt.Sprintf("Room outline has %d corners, using its bounding rectangle", len(o))
	}

	// The missing bounding-box corner is the cutout corner; the one vertex
	// strictly inside the box is the inner corner of the L.
	corners := []model.Point2D{{X: 0, Y: 0}, {X: width, Y: 0}, {X: width, Y: depth}, {X: 0, Y: depth}}
	missing := -1
	for i, c := range corners {
		if !hasVertex(o, c) {
			if missing != -1 {
				return room, "Room outline is not an L-shape, using its bounding rectangle"
			}
			missing = i
		}
	}
	var inner model.Point2D
	found := false
	for _, p := range o {
		if p.X > axisTolerance && p.X < width-axisTolerance && p.Y > axisTolerance && p.Y < depth-axisTolerance {
			inner, found = p, true
		}
	}
	if missing == -1 || !found {
		return room, "Room outline is not an L-shape, using its bounding rectangle"
	}

	miss := corners[missing]
	room.Shape = model.RoomLShape
	room.CutoutWidth = math.Abs(miss.X - inner.X)
	room.CutoutDepth = math.Abs(miss.Y - inner.Y)

	// Rooms keep the cutout at the front-right corner.
	if missing != 2 {
		return room, "Cutout is not at the front-right corner; its size was kept and the corner moved"
	}
	return room, ""
}

func rectilinear(o model.Outline) bool {
	for i := range o {
		a, b := o[i], o[(i+1)%len(o)]
		if math.Abs(a.X-b.X) > axisTolerance && math.Abs(a.Y-b.Y) > axisTolerance {
			return false
		}
	}
	return true
}

func hasVertex(o model.Outline, p model.Point2D) bool {
	for _, v := range o {
		if pointsClose(v, p, axisTolerance) {
			return true
		}
	}
	return false
}

// simplifyOutline drops repeated vertices and vertices that lie on a
// straight run between their neighbours.
func simplifyOutline(o model.Outline) model.Outline {
	var pts model.Outline
	for _, p := range o {
		if len(pts) > 0 && pointsClose(pts[len(pts)-1], p, chainTolerance) {
			continue
		}
		pts = append(pts, p)
	}
	if len(pts) > 1 && pointsClose(pts[0], pts[len(pts)-1], chainTolerance) {
		pts = pts[:len(pts)-1]
	}

	for changed := true; changed && len(pts) > 3; {
		changed = false
		for i := range pts {
			prev := pts[(i+len(pts)-1)%len(pts)]
			next := pts[(i+1)%len(pts)]
			if collinear(prev, pts[i], next) {
				pts = append(pts[:i], pts[i+1:]...)
				changed = true
				break
			}
		}
	}
	return pts
}

func collinear(a, b, c model.Point2D) bool {
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	l := math.Hypot(c.X-a.X, c.Y-a.Y)
	if l < 1e-9 {
		return true
	}
	return math.Abs(cross)/l <= axisTolerance
}

// lwPolylineToOutline converts a DXF LWPOLYLINE entity to an Outline.
// Bulge values on vertices produce interpolated arc segments.
func lwPolylineToOutline(lw *entity.LwPolyline) model.Outline {
	var outline model.Outline

	for i := 0; i < len(lw.Vertices); i++ {
		v := lw.Vertices[i]
		current := model.Point2D{X: v[0], Y: v[1]}

		bulge := 0.0
		if i < len(lw.Bulges) {
			bulge = lw.Bulges[i]
		}

		if math.Abs(bulge) > 1e-9 {
			nextIdx := (i + 1) % len(lw.Vertices)
			next := model.Point2D{X: lw.Vertices[nextIdx][0], Y: lw.Vertices[nextIdx][1]}
			arcPts := bulgeArcPoints(current, next, bulge, 16)
			// The next vertex is added by its own iteration.
			outline = append(outline, arcPts[:len(arcPts)-1]...)
		} else {
			outline = append(outline, current)
		}
	}

	return outline
}

// bulgeArcPoints generates points along an arc defined by two endpoints and a
// DXF bulge factor. The bulge is the tangent of 1/4 the included angle.
func bulgeArcPoints(p1, p2 model.Point2D, bulge float64, numSegments int) model.Outline {
	mx := (p1.X + p2.X) / 2
	my := (p1.Y + p2.Y) / 2
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	chordLen := math.Hypot(dx, dy)
	if chordLen < 1e-9 {
		return model.Outline{p1, p2}
	}

	sagitta := math.Abs(bulge) * chordLen / 2
	radius := (chordLen*chordLen/(4*sagitta) + sagitta) / 2

	perpX := -dy / chordLen
	perpY := dx / chordLen
	dist := radius - sagitta
	if bulge > 0 {
		perpX, perpY = -perpX, -perpY
	}
	cx := mx + perpX*dist
	cy := my + perpY*dist

	startAngle := math.Atan2(p1.Y-cy, p1.X-cx)
	endAngle := math.Atan2(p2.Y-cy, p2.X-cx)
	if bulge < 0 {
		if endAngle > startAngle {
			endAngle -= 2 * math.Pi
		}
	} else if endAngle < startAngle {
		endAngle += 2 * math.Pi
	}

	pts := make(model.Outline, 0, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startAngle + t*(endAngle-startAngle)
		pts = append(pts, model.Point2D{
			X: cx + radius*math.Cos(angle),
			Y: cy + radius*math.Sin(angle),
		})
	}
	return pts
}

// arcToPoints converts a DXF ARC entity to a series of line points.
func arcToPoints(a *entity.Arc, numSegments int) []model.Point2D {
	cx, cy := a.Circle.Center[0], a.Circle.Center[1]
	r := a.Circle.Radius

	startRad := a.Angle[0] * math.Pi / 180
	endRad := a.Angle[1] * math.Pi / 180
	if endRad <= startRad {
		endRad += 2 * math.Pi
	}

	pts := make([]model.Point2D, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startRad + t*(endRad-startRad)
		pts[i] = model.Point2D{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return pts
}

// pointsToSegments converts a point sequence to a slice of connected segments.
func pointsToSegments(pts []model.Point2D) []segment {
	segs := make([]segment, 0, len(pts)-1)
	for i := 0; i < len(pts)-1; i++ {
		segs = append(segs, segment{start: pts[i], end: pts[i+1]})
	}
	return segs
}

// chainSegments connects individual segments into closed outlines.
// tolerance is the maximum distance between endpoints to consider them
// connected. Open chains are dropped.
func chainSegments(segs []segment, tolerance float64) []model.Outline {
	if len(segs) == 0 {
		return nil
	}

	used := make([]bool, len(segs))
	var outlines []model.Outline

	for {
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := []model.Point2D{segs[startIdx].start, segs[startIdx].end}
		used[startIdx] = true

		for changed := true; changed; {
			changed = false
			tail := chain[len(chain)-1]

			for i, seg := range segs {
				if used[i] {
					continue
				}
				if pointsClose(tail, seg.start, tolerance) {
					chain = append(chain, seg.end)
					used[i] = true
					changed = true
					break
				}
				if pointsClose(tail, seg.end, tolerance) {
					chain = append(chain, seg.start)
					used[i] = true
					changed = true
					break
				}
			}
		}

		if len(chain) < 4 || !pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			continue
		}
		outlines = append(outlines, model.Outline(chain[:len(chain)-1]))
	}

	return outlines
}

// pointsClose checks whether two points are within the given tolerance.
func pointsClose(a, b model.Point2D, tolerance float64) bool {
	return math.Hypot(a.X-b.X, a.Y-b.Y) <= tolerance
}

// normalizeOutline translates the outline so its bounding box starts at (0, 0).
func normalizeOutline(o model.Outline) model.Outline {
	if len(o) == 0 {
		return o
	}
	min, _ := o.BoundingBox()
	return o.Translate(-min.X, -min.Y)
}
