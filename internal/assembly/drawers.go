package assembly

// drawerProportions are drawer heights as percentages of the section,
// listed top to bottom. The lowest drawer is always the largest.
var drawerProportions = map[int][]int{
	1: {100},
	2: {40, 60},
	3: {25, 33, 42},
	4: {18, 24, 28, 30},
	5: {14, 18, 22, 22, 24},
}

// DrawerHeights splits a section into n drawer heights, top to bottom.
// Counts without a proportion table split evenly.
func DrawerHeights(n int, section float64) []float64 {
	if n <= 0 || section <= 0 {
		return nil
	}
	out := make([]float64, n)
	pct, ok := drawerProportions[n]
	if !ok {
		for i := range out {
			out[i] = section / float64(n)
		}
		return out
	}
	for i, p := range pct {
		out[i] = float64(p) * section / 100
	}
	return out
}

// combinationDrawerHeights is the drawer-section height of a combination
// cabinet by drawer count.
var combinationDrawerHeights = map[int]float64{
	1: 180,
	2: 320,
	3: 450,
	4: 550,
}

const (
	combinationPerDrawer = 150.0
	combinationMaxShare  = 0.6
)

// CombinationDrawerSection returns the drawer-section height for a
// combination cabinet with n drawers, capped at 60% of the carcass height.
func CombinationDrawerSection(n int, carcassHeight float64) float64 {
	h, ok := combinationDrawerHeights[n]
	if !ok {
		h = float64(n) * combinationPerDrawer
	}
	if limit := combinationMaxShare * carcassHeight; h > limit {
		h = limit
	}
	return h
}
