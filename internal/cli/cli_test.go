package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yofu/dxf"

	"github.com/piwi3910/KitchenCraft/internal/assembly"
	"github.com/piwi3910/KitchenCraft/internal/model"
	"github.com/piwi3910/KitchenCraft/internal/project"
)

// run executes the root command with args against a config file in dir and
// returns stdout.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := New(&out, io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(append([]string{"--config", filepath.Join(dir, "config.json")}, args...))
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	err := root.Execute()
	return out.String(), err
}

func writeProject(t *testing.T, dir string, instances ...model.CabinetInstance) string {
	t.Helper()
	p := model.NewProject()
	p.Instances = append(p.Instances, instances...)
	path := filepath.Join(dir, "kitchen.json")
	require.NoError(t, project.SaveProject(path, p))
	return path
}

func base600(x, z float64) model.CabinetInstance {
	p, ok := project.DefaultCatalog().Product("base-600")
	if !ok {
		panic("base-600 missing from the default catalog")
	}
	return model.NewCabinetInstance(p, x, z)
}

func TestSetVersion(t *testing.T) {
	defer SetVersion(version, commit, date)
	SetVersion("1.0.0", "abc123", "2026-01-01")

	if version != "1.0.0" || commit != "abc123" || date != "2026-01-01" {
		t.Errorf("SetVersion did not update build info: %q %q %q", version, commit, date)
	}
}

func TestAssemble_Product(t *testing.T) {
	out, err := run(t, t.TempDir(), "assemble", "base-600")
	require.NoError(t, err)

	var a assembly.Assembly
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, 600.0, a.Dimensions.Width)
	assert.Equal(t, 2, a.Count(model.PartGable))
	assert.Equal(t, 1, a.Count(model.PartDoor))
	assert.Empty(t, a.Warnings)
}

func TestAssemble_Flags(t *testing.T) {
	out, err := run(t, t.TempDir(), "assemble", "base-600",
		"--width", "900", "--doors", "2", "--end-left", "--filler-right", "40")
	require.NoError(t, err)

	var a assembly.Assembly
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, 900.0, a.Dimensions.Width)
	assert.Equal(t, 2, a.Count(model.PartDoor))
	assert.Equal(t, 1, a.Count(model.PartEndPanel))
	assert.Equal(t, 1, a.Count(model.PartFiller))
}

func TestAssemble_ProjectInstance(t *testing.T) {
	dir := t.TempDir()
	inst := base600(1000, 1000)
	inst.Width = 450
	path := writeProject(t, dir, inst)

	out, err := run(t, dir, "assemble", "--project", path, "--item", inst.ID)
	require.NoError(t, err)

	var a assembly.Assembly
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, 450.0, a.Dimensions.Width)
}

func TestAssemble_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "assemble", "no-such-product")
	assert.ErrorContains(t, err, "unknown product")

	_, err = run(t, dir, "assemble")
	assert.Error(t, err)

	_, err = run(t, dir, "assemble", "base-600", "--hinge", "up")
	assert.ErrorContains(t, err, "--hinge")
}

func TestSnap_MovesItemAgainstBackWall(t *testing.T) {
	dir := t.TempDir()
	inst := base600(1800, 1500)
	path := writeProject(t, dir, inst)

	out, err := run(t, dir, "snap", "--project", path, "--item", inst.ID, "--x", "1800", "--z", "80", "--write")
	require.NoError(t, err)

	var got snapOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotNil(t, got.Result)
	assert.True(t, got.Moved)
	assert.Equal(t, model.SnapWall, got.Result.SnappedTo)
	assert.Equal(t, 287.5, got.Item.Position.Z)

	p, err := project.LoadProject(path)
	require.NoError(t, err)
	saved, ok := p.FindInstance(inst.ID)
	require.True(t, ok)
	assert.Equal(t, 287.5, saved.Position.Z)

	cfg, err := project.LoadAppConfig(filepath.Join(dir, "config.json"))
	require.NoError(t, err)
	assert.Equal(t, []string{path}, cfg.RecentProjects)
}

func TestSnap_NewProduct(t *testing.T) {
	dir := t.TempDir()
	path := writeProject(t, dir)

	_, err := run(t, dir, "snap", "--project", path, "--product", "base-600", "--x", "1234", "--z", "1678", "--write")
	require.NoError(t, err)

	p, err := project.LoadProject(path)
	require.NoError(t, err)
	require.Len(t, p.Instances, 1)
	assert.Equal(t, "base-600", p.Instances[0].ProductID)
	assert.Equal(t, 1250.0, p.Instances[0].Position.X)
	assert.Equal(t, 1700.0, p.Instances[0].Position.Z)
}

func TestSnap_DragReplay(t *testing.T) {
	dir := t.TempDir()
	inst := base600(1800, 1500)
	path := writeProject(t, dir, inst)

	out, err := run(t, dir, "snap", "--project", path, "--item", inst.ID, "--drag", "1800,1200; 1800,80")
	require.NoError(t, err)
	var got snapOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.Moved)
	assert.Equal(t, 287.5, got.Item.Position.Z)

	// A press that never leaves the drag threshold is a click.
	out, err = run(t, dir, "snap", "--project", path, "--item", inst.ID, "--drag", "1805,1505")
	require.NoError(t, err)
	got = snapOutput{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.False(t, got.Moved)
	assert.Nil(t, got.Result)
	assert.Equal(t, 1500.0, got.Item.Position.Z)
}

func TestSnap_Errors(t *testing.T) {
	dir := t.TempDir()
	path := writeProject(t, dir)

	_, err := run(t, dir, "snap", "--project", path, "--item", "missing")
	assert.ErrorContains(t, err, "no instance")

	_, err = run(t, dir, "snap", "--project", path)
	assert.Error(t, err, "one of --item or --product is required")

	_, err = run(t, dir, "snap", "--project", path, "--product", "base-600", "--drag", "oops")
	assert.ErrorContains(t, err, "--drag")
}

func TestParsePath(t *testing.T) {
	path, err := parsePath(" 10,20 ; 30.5, 40 ;")
	require.NoError(t, err)
	assert.Equal(t, [][2]float64{{10, 20}, {30.5, 40}}, path)

	for _, bad := range []string{"", ";", "10", "a,1", "1,b"} {
		_, err := parsePath(bad)
		assert.Error(t, err, bad)
	}
}

func TestImportCatalog(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "catalog.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(
		"ID,Name,Category,Kind,Doors,Width,Height,Depth\n"+
			"base-450,Base 450,base,,1,450,870,575\n"+
			"base-600,Base 600 custom,base,,1,600,870,560\n"), 0644))

	out, err := run(t, dir, "import-catalog", csvPath)
	require.NoError(t, err)
	var cat project.Catalog
	require.NoError(t, json.Unmarshal([]byte(out), &cat))
	assert.Len(t, cat.Products, 2)

	catPath := filepath.Join(dir, "merged.json")
	_, err = run(t, dir, "import-catalog", csvPath, "--merge", "-o", catPath)
	require.NoError(t, err)
	merged, err := project.LoadCatalog(catPath)
	require.NoError(t, err)
	assert.Len(t, merged.Products, len(project.DefaultCatalog().Products)+1)
	p, ok := merged.Product("base-600")
	require.True(t, ok)
	assert.Equal(t, 560.0, p.Defaults.Depth)
}

func TestImportCatalog_NothingImported(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("Name,Category,Width,Height,Depth\nA,attic,600,720,560\n"), 0644))

	_, err := run(t, dir, "import-catalog", csvPath)
	assert.ErrorContains(t, err, "no products imported")
}

func TestMergeCatalog(t *testing.T) {
	base := project.Catalog{Version: "1", Products: []model.Product{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}}
	merged := mergeCatalog(base, []model.Product{{ID: "b", Name: "B2"}, {ID: "c", Name: "C"}})

	require.Len(t, merged.Products, 3)
	assert.Equal(t, "B2", merged.Products[1].Name)
	assert.Equal(t, "c", merged.Products[2].ID)
	assert.Equal(t, "B", base.Products[1].Name, "base catalog is not modified")
}

func TestImportRoom(t *testing.T) {
	dir := t.TempDir()
	d := dxf.NewDrawing()
	pts := [][2]float64{{0, 0}, {5000, 0}, {5000, 2400}, {3800, 2400}, {3800, 3200}, {0, 3200}}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		_, err := d.Line(a[0], a[1], 0, b[0], b[1], 0)
		require.NoError(t, err)
	}
	planPath := filepath.Join(dir, "plan.dxf")
	require.NoError(t, d.SaveAs(planPath))

	projectPath := filepath.Join(dir, "new-kitchen.json")
	out, err := run(t, dir, "import-room", planPath, "--project", projectPath, "--height", "2600")
	require.NoError(t, err)

	var room model.RoomConfig
	require.NoError(t, json.Unmarshal([]byte(out), &room))
	assert.Equal(t, model.RoomLShape, room.Shape)

	p, err := project.LoadProject(projectPath)
	require.NoError(t, err)
	assert.Equal(t, "new-kitchen", p.Name)
	assert.InDelta(t, 5000, p.Room.Width, 1e-9)
	assert.InDelta(t, 3200, p.Room.Depth, 1e-9)
	assert.InDelta(t, 1200, p.Room.CutoutWidth, 1e-9)
	assert.InDelta(t, 800, p.Room.CutoutDepth, 1e-9)
	assert.Equal(t, 2600.0, p.Room.Height)
}

func TestImportRoom_MissingFile(t *testing.T) {
	_, err := run(t, t.TempDir(), "import-room", "/nonexistent/plan.dxf")
	assert.ErrorContains(t, err, "Cannot open DXF file")
}

func TestConfigCommands(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.json")

	out, err := run(t, dir, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, cfgPath+"\n", out)

	_, err = run(t, dir, "config", "init")
	require.NoError(t, err)
	assert.FileExists(t, cfgPath)

	_, err = run(t, dir, "config", "init")
	assert.ErrorContains(t, err, "already exists")

	_, err = run(t, dir, "config", "init", "--force")
	assert.NoError(t, err)

	out, err = run(t, dir, "config", "show")
	require.NoError(t, err)
	var cfg model.AppConfig
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, model.DefaultSnapSettings(), cfg.Snap)
}
