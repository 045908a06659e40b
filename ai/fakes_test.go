package ai

import (
	"bytes"
	"math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
)

type fakeBody struct {
	pos mgl64.Vec3
	rot mgl64.Quat
}

func newFakeBody(pos mgl64.Vec3) *fakeBody {
	return &fakeBody{pos: pos, rot: mgl64.QuatIdent()}
}

func (b *fakeBody) Position() mgl64.Vec3     { return b.pos }
func (b *fakeBody) SetPosition(p mgl64.Vec3) { b.pos = p }
func (b *fakeBody) Rotation() mgl64.Quat     { return b.rot }
func (b *fakeBody) SetRotation(q mgl64.Quat) { b.rot = q }

type fakePlayer struct {
	pos mgl64.Vec3
}

func (p *fakePlayer) Position() mgl64.Vec3 { return p.pos }

type fakeTagged []string

func (f fakeTagged) HasTags(tags ...string) bool {
	for _, t := range tags {
		if !slices.Contains(f, t) {
			return false
		}
	}
	return true
}

var (
	playerCollider = fakeTagged{"Player"}
	rockCollider   = fakeTagged{"Solid"}
)

type fakeLocator map[string]Transform

func (l fakeLocator) FindByTag(tag string) (Transform, bool) {
	t, ok := l[tag]
	return t, ok
}

type recordingAnimator struct {
	bools    map[string]bool
	triggers map[string]int
}

func newRecordingAnimator() *recordingAnimator {
	return &recordingAnimator{bools: map[string]bool{}, triggers: map[string]int{}}
}

func (a *recordingAnimator) SetBool(name string, v bool) { a.bools[name] = v }
func (a *recordingAnimator) SetTrigger(name string)      { a.triggers[name]++ }

type countingPauser struct {
	pauses  int
	resumes int
}

func (p *countingPauser) Pause()  { p.pauses++ }
func (p *countingPauser) Resume() { p.resumes++ }

type fixedAlert struct {
	alert bool
}

func (f *fixedAlert) InAlert() bool { return f.alert }

type effect struct{ name string }

func (e effect) Name() string { return e.name }

// damageableEffect is an actor prefab mistakenly used as a death effect.
type damageableEffect struct{ effect }

func (damageableEffect) TakeDamage(int) {}

type spawnRecord struct {
	effect DeathEffect
	pos    mgl64.Vec3
}

type recordingSpawner struct {
	spawned []spawnRecord
}

func (s *recordingSpawner) SpawnEffect(e DeathEffect, pos mgl64.Vec3, _ mgl64.Quat) {
	s.spawned = append(s.spawned, spawnRecord{effect: e, pos: pos})
}

func testLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}), &buf
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
