package systems

import (
	"time"

	"github.com/automoto/mostro/components"
	cfg "github.com/automoto/mostro/config"
	"github.com/automoto/mostro/shared/gamemath"
	"github.com/automoto/mostro/shared/leveldata"
	"github.com/automoto/mostro/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer moves the player along its scripted path when it has one and
// from input otherwise.
func UpdatePlayer(ecs *ecs.ECS) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	dt := cfg.TickDuration()
	step := player.Speed * dt.Seconds()

	if len(player.Path) > 0 {
		followPath(entry, player, step, dt)
		return
	}

	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	dir := moveDirection(components.Input.Get(inputEntry))
	if dir.Len() < gamemath.Epsilon {
		return
	}
	MovePlayer(entry, dir.Normalize().Mul(step))
}

// SetPlayerPath replaces the scripted path. An empty path hands control back
// to input.
func SetPlayerPath(ecs *ecs.ECS, path []components.PathStep, loop bool) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	player.Path = path
	player.PathIndex = 0
	player.Loop = loop
	player.WaitLeft = 0
}

func followPath(e *donburi.Entry, player *components.PlayerData, step float64, dt time.Duration) {
	if player.WaitLeft > 0 {
		player.WaitLeft -= dt
		return
	}
	if player.PathIndex >= len(player.Path) {
		if !player.Loop {
			return
		}
		player.PathIndex = 0
	}
	target := player.Path[player.PathIndex].Target
	pos := components.Transform.Get(e).Position

	next := gamemath.MoveTowards(pos, target, step)
	MovePlayer(e, gamemath.Flatten(next.Sub(pos)))

	if gamemath.PlanarDistance(components.Transform.Get(e).Position, target) <= gamemath.Epsilon {
		player.WaitLeft = player.Path[player.PathIndex].Wait
		player.PathIndex++
	}
}

// MovePlayer slides the player by delta metres, stopping at solids and at
// the level edge, and writes the result back into its Transform.
func MovePlayer(e *donburi.Entry, delta mgl64.Vec3) {
	ppm := cfg.C.PixelsPerMetre
	obj := components.Object.Get(e)

	if dx := sweepX(obj.Object, delta.X()*ppm); dx != 0 {
		obj.X += dx
	}
	if dy := sweepY(obj.Object, delta.Z()*ppm); dy != 0 {
		obj.Y += dy
	}

	if levelEntry, ok := components.Level.First(e.World); ok {
		if level := components.Level.Get(levelEntry).CurrentLevel; level != nil {
			obj.X = gamemath.ClampFloat(obj.X, 0, float64(level.Width)-obj.W)
			obj.Y = gamemath.ClampFloat(obj.Y, 0, float64(level.Height)-obj.H)
		}
	}
	obj.Update()

	t := components.Transform.Get(e)
	cx, cy := obj.CenterPixels()
	pos := leveldata.Point{X: cx, Y: cy}.World(ppm)
	pos[1] = t.Position.Y()
	t.Position = pos
	if q, ok := gamemath.YawRotation(delta); ok {
		t.Rotation = q
	}
}

// sweepX shortens a horizontal move so obj stops flush against the first
// solid in its way. The space check is cell based, so candidates are
// filtered by an exact box test.
func sweepX(obj *resolv.Object, dx float64) float64 {
	if dx == 0 {
		return 0
	}
	check := obj.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		return dx
	}
	for _, s := range check.ObjectsByTags(tags.ResolvSolid) {
		if obj.Y >= s.Y+s.H || s.Y >= obj.Y+obj.H {
			continue
		}
		if dx > 0 && s.X >= obj.X+obj.W {
			dx = min(dx, s.X-(obj.X+obj.W))
		}
		if dx < 0 && s.X+s.W <= obj.X {
			dx = max(dx, s.X+s.W-obj.X)
		}
	}
	return dx
}

func sweepY(obj *resolv.Object, dy float64) float64 {
	if dy == 0 {
		return 0
	}
	check := obj.Check(0, dy, tags.ResolvSolid)
	if check == nil {
		return dy
	}
	for _, s := range check.ObjectsByTags(tags.ResolvSolid) {
		if obj.X >= s.X+s.W || s.X >= obj.X+obj.W {
			continue
		}
		if dy > 0 && s.Y >= obj.Y+obj.H {
			dy = min(dy, s.Y-(obj.Y+obj.H))
		}
		if dy < 0 && s.Y+s.H <= obj.Y {
			dy = max(dy, s.Y+s.H-obj.Y)
		}
	}
	return dy
}
