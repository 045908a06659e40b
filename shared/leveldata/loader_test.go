package leveldata

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="8" tilewidth="32" tileheight="32" infinite="0" nextlayerid="4" nextobjectid="8">
 <objectgroup id="1" name="PlayerSpawn">
  <object id="1" x="200" y="64"><point/></object>
  <object id="2" x="40" y="64"><point/></object>
 </objectgroup>
 <objectgroup id="2" name="MostroSpawn">
  <object id="3" x="64" y="128">
   <properties>
    <property name="type" value="BigSlime"/>
    <property name="route" value="loop"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="3" name="PatrolRoutes">
  <object id="4" name="loop" x="32" y="32">
   <polyline points="0,0 64,0 64,64"/>
  </object>
  <object id="5" name="broken" x="0" y="0"/>
 </objectgroup>
 <objectgroup id="4" name="Obstacles">
  <object id="6" x="96" y="96" width="32" height="64"/>
 </objectgroup>
</map>
`

func TestLoadParsesGroups(t *testing.T) {
	fsys := fstest.MapFS{"levels/small.tmx": {Data: []byte(smallMap)}}

	level, err := Load(fsys, "levels/small.tmx")
	require.NoError(t, err)

	assert.Equal(t, "small", level.Name)
	assert.Equal(t, 320, level.Width)
	assert.Equal(t, 256, level.Height)
	assert.Equal(t, []Point{{40, 64}, {200, 64}}, level.PlayerSpawns, "sorted left to right")
	assert.Equal(t, []MostroSpawn{{Point: Point{64, 128}, Type: "BigSlime", Route: "loop"}}, level.MostroSpawns)
	assert.Equal(t, []Point{{32, 32}, {96, 32}, {96, 96}}, level.Routes["loop"])
	assert.NotContains(t, level.Routes, "broken")
	assert.Equal(t, []Rect{{96, 96, 32, 64}}, level.Obstacles)
}

func TestWaypointsInMetres(t *testing.T) {
	fsys := fstest.MapFS{"small.tmx": {Data: []byte(smallMap)}}
	level, err := Load(fsys, "small.tmx")
	require.NoError(t, err)

	got := level.Waypoints("loop", 32)
	assert.Equal(t, []mgl64.Vec3{{1, 0, 1}, {3, 0, 1}, {3, 0, 3}}, got)
	assert.Nil(t, level.Waypoints("missing", 32))
}

func TestPointRoundTrip(t *testing.T) {
	p := Point{X: 48, Y: 80}
	assert.Equal(t, p, FromWorld(p.World(16), 16))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "nope.tmx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.tmx")
}

func TestLoadAll(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": {Data: []byte(smallMap)},
		"levels/a.tmx": {Data: []byte(smallMap)},
	}

	levels, names, err := LoadAll(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, levels, 2)

	_, _, err = LoadAll(fstest.MapFS{}, "levels")
	assert.Error(t, err)
}

func TestShippedLevel(t *testing.T) {
	level, err := Load(os.DirFS("../../assets"), "levels/clearing.tmx")
	require.NoError(t, err)

	require.Len(t, level.PlayerSpawns, 1)
	require.Len(t, level.MostroSpawns, 3)
	for _, spawn := range level.MostroSpawns {
		assert.NotEmpty(t, spawn.Type)
		assert.GreaterOrEqual(t, len(level.Routes[spawn.Route]), 2, "route %q", spawn.Route)
	}
}
