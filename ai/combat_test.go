package ai

import (
	"strings"
	"testing"

	"github.com/automoto/mostro/config"
	"github.com/automoto/mostro/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transition struct {
	from, to State
}

type combatHarness struct {
	combat      *Combat
	body        *fakeBody
	player      *fakePlayer
	patrol      *countingPauser
	alert       *fixedAlert
	anim        *recordingAnimator
	damage      int
	transitions []transition
}

func newCombatHarness(t *testing.T, policy config.LossPolicy) *combatHarness {
	t.Helper()
	cfg := config.DefaultMostroType().Combat
	cfg.Policy = policy

	logger, _ := testLogger()
	h := &combatHarness{
		body:   newFakeBody(mgl64.Vec3{}),
		player: &fakePlayer{pos: mgl64.Vec3{5, 0, 0}},
		patrol: &countingPauser{},
		alert:  &fixedAlert{},
		anim:   newRecordingAnimator(),
	}
	var alert AlertSource
	if policy == config.LossByTrigger {
		alert = h.alert
	}
	h.combat = NewCombat(cfg, h.body, h.patrol, alert, h.anim, func(n int) { h.damage += n }, logger)
	h.combat.OnTransition(func(from, to State) {
		h.transitions = append(h.transitions, transition{from, to})
	})
	h.combat.Start(h.player)
	return h
}

func (h *combatHarness) ticks(n int) {
	for range n {
		h.combat.Tick(tick)
	}
}

// engage alerts the machine and runs it until it reaches want.
func (h *combatHarness) engage(t *testing.T, want State) {
	t.Helper()
	h.alert.alert = true
	h.combat.Alert()
	for range 2000 {
		if h.combat.State() == want {
			return
		}
		h.combat.Tick(tick)
	}
	require.Equal(t, want, h.combat.State())
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StatePatrol, "Patrol"},
		{StateWaiting, "Waiting"},
		{StatePursuing, "Pursuing"},
		{StateAttacking, "Attacking"},
		{State(42), "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.state.String())
	}
	assert.False(t, StatePatrol.Engaged())
	assert.True(t, StateAttacking.Engaged())
}

func TestStandoffDistance(t *testing.T) {
	h := newCombatHarness(t, config.LossByTrigger)
	assert.InDelta(t, 1.85, h.combat.StandoffDistance(), 1e-9)

	cfg := config.DefaultMostroType().Combat
	cfg.AttackRange = 0
	cfg.AttackMargin = 0
	c := NewCombat(cfg, newFakeBody(mgl64.Vec3{}), nil, nil, nil, nil, nil)
	assert.InDelta(t, 0.05, c.StandoffDistance(), 1e-9)
}

func TestAlertEntersWaitingImmediately(t *testing.T) {
	h := newCombatHarness(t, config.LossByTrigger)
	h.alert.alert = true

	h.combat.Alert()

	assert.Equal(t, StateWaiting, h.combat.State())
	assert.Equal(t, 1, h.patrol.pauses)
	assert.True(t, h.anim.bools[ParamAlert])
	assert.Equal(t, []transition{{StatePatrol, StateWaiting}}, h.transitions)
}

func TestPursuitStartsOnlyAfterNoticeDelay(t *testing.T) {
	h := newCombatHarness(t, config.LossByTrigger)
	h.alert.alert = true
	h.combat.Alert()

	h.ticks(199)
	assert.Equal(t, StateWaiting, h.combat.State())
	assert.Equal(t, mgl64.Vec3{}, h.body.pos, "no movement while waiting")

	h.ticks(1)
	assert.Equal(t, StatePursuing, h.combat.State())
	assert.True(t, h.anim.bools[ParamWalking])
}

func TestWaitingFacesPlayer(t *testing.T) {
	h := newCombatHarness(t, config.LossByTrigger)
	h.player.pos = mgl64.Vec3{0, 0, -5}
	h.alert.alert = true
	h.combat.Alert()

	h.ticks(150)

	assert.InDelta(t, -1.0, gamemath.FacingOf(h.body.rot).Z(), 0.01)
}

func TestPursuitConvergesAndAttacksAtStandoff(t *testing.T) {
	h := newCombatHarness(t, config.LossByTrigger)
	h.engage(t, StatePursuing)

	last := gamemath.PlanarDistance(h.body.pos, h.player.pos)
	for h.combat.State() == StatePursuing {
		h.combat.Tick(tick)
		d := gamemath.PlanarDistance(h.body.pos, h.player.pos)
		require.Less(t, d, last)
		last = d
	}

	require.Equal(t, StateAttacking, h.combat.State())
	assert.InDelta(t, 1.85, gamemath.PlanarDistance(h.body.pos, h.player.pos), 0.05)
	assert.LessOrEqual(t, gamemath.PlanarDistance(h.body.pos, h.combat.StandoffPoint()), 0.05)
	assert.Equal(t, 1, h.anim.triggers[ParamAttack], "first strike is immediate")
	assert.Equal(t, 1, h.damage)
	assert.False(t, h.anim.bools[ParamWalking])
}

func TestPursuitIgnoresHeight(t *testing.T) {
	h := newCombatHarness(t, config.LossByTrigger)
	h.player.pos = mgl64.Vec3{5, 3, 0}
	h.engage(t, StateAttacking)

	assert.InDelta(t, 0.0, h.body.pos.Y(), 1e-9)
	assert.InDelta(t, 1.85, gamemath.PlanarDistance(h.body.pos, h.player.pos), 0.05)
}

func TestAttackCadence(t *testing.T) {
	h := newCombatHarness(t, config.LossByTrigger)
	h.engage(t, StateAttacking)

	var strikes []int
	count := h.anim.triggers[ParamAttack]
	for i := 1; i <= 240; i++ {
		h.combat.Tick(tick)
		if h.anim.triggers[ParamAttack] != count {
			count = h.anim.triggers[ParamAttack]
			strikes = append(strikes, i)
		}
	}

	assert.Equal(t, []int{80, 160, 240}, strikes)
	assert.Equal(t, 4, h.damage)
	assert.Equal(t, 4, h.combat.Strikes())
}

func TestAttackingReturnsToPursuitWithinOneTick(t *testing.T) {
	h := newCombatHarness(t, config.LossByTrigger)
	h.engage(t, StateAttacking)
	strikes := h.anim.triggers[ParamAttack]

	h.player.pos = mgl64.Vec3{10, 0, 0}
	h.combat.Tick(tick)

	assert.Equal(t, StatePursuing, h.combat.State())
	assert.False(t, h.combat.AttackLoopActive())

	h.ticks(30)
	assert.Equal(t, strikes, h.anim.triggers[ParamAttack], "no strikes from out of range")
}

func TestAttackLoopStopsItselfWhenPlayerRetreats(t *testing.T) {
	h := newCombatHarness(t, config.LossByTrigger)
	h.engage(t, StateAttacking)
	h.ticks(79)
	strikes := h.anim.triggers[ParamAttack]

	// the strike is due on this tick but the player is already gone
	h.player.pos = mgl64.Vec3{5.3, 0, 0}
	h.combat.Tick(tick)

	assert.Equal(t, strikes, h.anim.triggers[ParamAttack])
	assert.Equal(t, StatePursuing, h.combat.State())
}

func TestTriggerPolicyGivesUpAfterHysteresis(t *testing.T) {
	h := newCombatHarness(t, config.LossByTrigger)
	h.engage(t, StateAttacking)

	h.alert.alert = false
	h.ticks(149)
	assert.Equal(t, StateAttacking, h.combat.State())
	assert.Zero(t, h.patrol.resumes)

	h.ticks(1)
	assert.Equal(t, StatePatrol, h.combat.State())
	assert.Equal(t, 1, h.patrol.resumes)
	assert.False(t, h.combat.AttackLoopActive())
	assert.False(t, h.anim.bools[ParamAlert])
	assert.False(t, h.anim.bools[ParamWalking], "walking is left to the patroller")

	h.ticks(500)
	assert.Equal(t, 1, h.patrol.resumes)
}

func TestLossTimerResetsWhenPlayerReturns(t *testing.T) {
	h := newCombatHarness(t, config.LossByTrigger)
	h.engage(t, StateAttacking)

	h.alert.alert = false
	h.ticks(100)
	h.alert.alert = true
	h.ticks(1)
	assert.Zero(t, h.combat.LostFor())

	h.alert.alert = false
	h.ticks(100)
	assert.True(t, h.combat.State().Engaged())
}

func TestGiveUpFromWaitingCancelsNotice(t *testing.T) {
	h := newCombatHarness(t, config.LossByTrigger)
	h.alert.alert = true
	h.combat.Alert()
	h.alert.alert = false

	h.ticks(150)
	require.Equal(t, StatePatrol, h.combat.State())
	assert.Zero(t, h.combat.NoticeRemaining())

	h.ticks(100)
	assert.Equal(t, StatePatrol, h.combat.State(), "a stale notice timer never fires")
	assert.Equal(t, 1, h.patrol.resumes)
}

func TestDistancePolicyEngagesAndLosesByRange(t *testing.T) {
	h := newCombatHarness(t, config.LossByDistance)
	h.player.pos = mgl64.Vec3{6.5, 0, 0}

	h.ticks(10)
	assert.Equal(t, StatePatrol, h.combat.State())

	h.player.pos = mgl64.Vec3{5.5, 0, 0}
	h.ticks(1)
	require.Equal(t, StateWaiting, h.combat.State())
	assert.Equal(t, 1, h.patrol.pauses)

	// beyond chase distance but inside the 1.2x loss radius
	h.player.pos = mgl64.Vec3{7.1, 0, 0}
	h.ticks(50)
	assert.Zero(t, h.combat.LostFor())

	h.player.pos = mgl64.Vec3{7.3, 0, 0}
	h.ticks(149)
	assert.Equal(t, StateWaiting, h.combat.State())
	h.ticks(1)
	assert.Equal(t, StatePatrol, h.combat.State())
	assert.Equal(t, 1, h.patrol.resumes)
}

func TestTriggerPolicyWithoutDetectorFallsBack(t *testing.T) {
	logger, buf := testLogger()
	cfg := config.DefaultMostroType().Combat
	c := NewCombat(cfg, newFakeBody(mgl64.Vec3{}), nil, nil, nil, nil, logger)

	c.Start(&fakePlayer{pos: mgl64.Vec3{2, 0, 0}})
	c.Start(&fakePlayer{pos: mgl64.Vec3{2, 0, 0}})

	assert.Equal(t, config.LossByDistance, c.Policy())
	assert.Equal(t, 1, strings.Count(buf.String(), "trigger loss policy without a detector"))

	c.Tick(tick)
	assert.Equal(t, StateWaiting, c.State())
}

func TestDormantWithoutPlayer(t *testing.T) {
	cfg := config.DefaultMostroType().Combat
	c := NewCombat(cfg, newFakeBody(mgl64.Vec3{}), nil, &fixedAlert{alert: true}, nil, nil, nil)
	c.Start(nil)

	c.Alert()
	c.Tick(tick)

	assert.Equal(t, StatePatrol, c.State())
}

func TestHaltCancelsEverything(t *testing.T) {
	h := newCombatHarness(t, config.LossByTrigger)
	h.engage(t, StateAttacking)
	strikes := h.anim.triggers[ParamAttack]

	h.combat.Halt()
	h.alert.alert = false
	h.ticks(500)

	assert.Equal(t, StateAttacking, h.combat.State())
	assert.False(t, h.combat.AttackLoopActive())
	assert.Equal(t, strikes, h.anim.triggers[ParamAttack])
	assert.Zero(t, h.patrol.resumes)
}

func TestRealertWhileEngagedKeepsState(t *testing.T) {
	h := newCombatHarness(t, config.LossByTrigger)
	h.engage(t, StatePursuing)
	n := len(h.transitions)

	h.combat.Alert()

	assert.Equal(t, StatePursuing, h.combat.State())
	assert.Len(t, h.transitions, n)
	assert.Equal(t, 1, h.patrol.pauses)
}
