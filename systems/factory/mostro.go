package factory

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"strconv"
	"sync/atomic"

	"github.com/automoto/mostro/ai"
	"github.com/automoto/mostro/archetypes"
	"github.com/automoto/mostro/components"
	cfg "github.com/automoto/mostro/config"
	"github.com/automoto/mostro/shared/leveldata"
	"github.com/automoto/mostro/tags"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// mostroSeq numbers mostros for log output across every world.
var mostroSeq atomic.Int64

// Options are shared by the mostro and level factories.
type Options struct {
	Logger *log.Logger
	Rand   *rand.Rand
	// Policy replaces each type's loss policy when set.
	Policy cfg.LossPolicy
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

// CreateMostro spawns a mostro of typeName at pos (world metres) patrolling
// waypoints. The actor is started immediately, so the player should already
// exist.
func CreateMostro(ecs *ecs.ECS, pos mgl64.Vec3, typeName string, waypoints []mgl64.Vec3, opts Options) *donburi.Entry {
	logger := opts.logger()
	mostroType, ok := cfg.MostroType(typeName)
	if !ok {
		logger.Warn("unknown mostro type, using default", "type", typeName, "default", cfg.Mostro.DefaultType)
	}
	if opts.Policy != "" {
		mostroType.Combat.Policy = opts.Policy
	}

	mostro := archetypes.Mostro.Spawn(ecs)
	name := mostroType.Name + "#" + strconv.FormatInt(mostroSeq.Add(1), 10)

	// Body collider
	ppm := cfg.C.PixelsPerMetre
	px := leveldata.FromWorld(pos, ppm)
	size := mostroType.BodyRadius * 2 * ppm
	obj := resolv.NewObject(px.X-size/2, px.Y-size/2, size, size)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.AddTags("character", tags.ResolvMostro)
	obj.Data = mostro
	components.Object.SetValue(mostro, components.ObjectData{Object: obj})

	// Sensor broad-phase box; the exact circle test happens in UpdateSensors
	reach := mostroType.Detection.Radius * ppm
	sensor := resolv.NewObject(px.X-reach, px.Y-reach, reach*2, reach*2, tags.ResolvSensor)
	sensor.Data = mostro
	addToSpace(ecs, obj, sensor)

	components.Transform.SetValue(mostro, components.TransformData{
		Position: pos,
		Rotation: mgl64.QuatIdent(),
	})
	components.Animation.SetValue(mostro, components.NewAnimationData())

	tint := ParseTint(mostroType.Tint)
	deps := ai.Deps{
		Name:      name,
		Body:      components.NewBody(mostro),
		Locator:   components.PlayerLocator{World: ecs.World},
		Animator:  components.NewAnimator(mostro),
		Waypoints: waypoints,
		Rand:      opts.Rand,
		Logger:    logger,
		Damage: func(amount int) {
			if player, ok := tags.Player.First(ecs.World); ok {
				components.QueueDamage(player, amount, name)
			}
		},
	}
	if mostroType.Health.DeathEffect != "" {
		deps.DeathEffect = DeathEffect(mostroType.Health.DeathEffect)
		deps.Effects = NewEffectSpawner(ecs, tint)
	}

	actor := ai.NewActor(mostroType, deps)
	actor.Health.OnDeath(func() {
		logger.Info("mostro defeated", "mostro", name)
	})
	actor.Start()

	components.Mostro.SetValue(mostro, components.MostroData{
		TypeName: mostroType.Name,
		Actor:    actor,
		Tint:     tint,
		Sensor:   sensor,
		Radius:   mostroType.Detection.Radius,
	})

	return mostro
}

// ParseTint reads a "#rrggbb" colour, falling back to white.
func ParseTint(hex string) color.RGBA {
	c := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if len(hex) != 7 || hex[0] != '#' {
		return c
	}
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return c
}
