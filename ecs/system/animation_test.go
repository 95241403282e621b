package system

import (
	"strings"
	"testing"

	"github.com/milk9111/emberclimb/ecs"
	"github.com/milk9111/emberclimb/ecs/component"
)

func testClips() map[string]component.AnimationDef {
	defs := map[string]component.AnimationDef{}
	for _, name := range []string{clipIdle, clipRun, clipJump, clipClimb, clipAttack, clipRunAttack, clipJumpAttack, clipDeath} {
		defs[name] = component.AnimationDef{Name: name, FrameCount: 4, FrameW: 16, FrameH: 32, FPS: 10, Loop: !isAttackClip(name)}
	}
	return defs
}

func addAnimated(t *testing.T, w *ecs.World) (ecs.Entity, *component.Animation, *component.Animator) {
	t.Helper()
	e := addPlayer(t, w, 0, 0)
	anim := &component.Animation{Defs: testClips(), Current: clipIdle, Playing: true}
	mustAdd(t, w, e, component.AnimationComponent.Kind(), anim)
	mustAdd(t, w, e, component.SpriteComponent.Kind(), &component.Sprite{})
	animator, _ := ecs.Get(w, e, component.AnimatorComponent.Kind())
	return e, anim, animator
}

func TestAnimationSelectsClip(t *testing.T) {
	cases := []struct {
		name     string
		flags    []string
		trigger  string
		dead     bool
		wantClip string
		wantHold bool
	}{
		{"idle", []string{paramGrounded}, "", false, clipIdle, false},
		{"run", []string{paramGrounded, paramRun}, "", false, clipRun, false},
		{"airborne", nil, "", false, clipJump, false},
		{"climb_still", []string{paramClimbing}, "", false, clipClimb, true},
		{"climb_moving", []string{paramClimbing, paramClimbingMoving}, "", false, clipClimb, false},
		{"jump_attack", []string{paramJumpAttack}, "", false, clipJumpAttack, false},
		{"run_attack", []string{paramGrounded, paramRun, paramRunAttack}, "", false, clipRunAttack, false},
		{"attack_trigger", []string{paramGrounded}, paramAttack, false, clipAttack, false},
		{"dead", []string{paramGrounded, paramRun}, "", true, clipDeath, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e, anim, animator := addAnimated(t, w)
			for _, f := range tc.flags {
				animator.SetFlag(f, true)
			}
			if tc.trigger != "" {
				animator.Fire(tc.trigger)
			}
			if tc.dead {
				health, _ := ecs.Get(w, e, component.HealthComponent.Kind())
				health.InstantDie()
			}

			NewAnimationSystem().Update(w)

			if anim.Current != tc.wantClip {
				t.Fatalf("clip = %q, want %q", anim.Current, tc.wantClip)
			}
			if anim.Hold != tc.wantHold {
				t.Fatalf("hold = %v, want %v", anim.Hold, tc.wantHold)
			}
			if tc.trigger != "" && animator.Triggers[tc.trigger] {
				t.Fatalf("trigger %q was not consumed", tc.trigger)
			}
		})
	}
}

func TestAnimationAttackClipPlaysOut(t *testing.T) {
	w := ecs.NewWorld()
	_, anim, animator := addAnimated(t, w)
	anim.Current = clipAttack
	anim.Playing = true
	animator.SetFlag(paramGrounded, true)
	animator.SetFlag(paramRun, true)

	NewAnimationSystem().Update(w)

	if anim.Current != clipAttack {
		t.Fatalf("attack clip interrupted by %q", anim.Current)
	}
}

func TestAnimationFinishedAttackClearsLocks(t *testing.T) {
	w := ecs.NewWorld()
	e, anim, animator := addAnimated(t, w)
	anim.Current = clipJumpAttack
	anim.Playing = false
	animator.SetFlag(paramJumpAttack, true)
	motion, _ := ecs.Get(w, e, component.PlayerMotionComponent.Kind())
	motion.State.JumpingAttack = true

	NewAnimationSystem().Update(w)

	if animator.Flags[paramJumpAttack] {
		t.Fatalf("jump_attack flag still set")
	}
	if motion.State.JumpingAttack {
		t.Fatalf("jumping attack lock still set")
	}
	if anim.Current != clipJump {
		t.Fatalf("clip = %q, want %q", anim.Current, clipJump)
	}
}

func TestPlayerStateText(t *testing.T) {
	w := ecs.NewWorld()
	if got := PlayerStateText(w); got != "" {
		t.Fatalf("expected empty text without a player, got %q", got)
	}
	addPlayer(t, w, 10, 20)
	got := PlayerStateText(w)
	for _, want := range []string{"Mode: airborne", "Position: 10.0, 20.0"} {
		if !strings.Contains(got, want) {
			t.Fatalf("state text %q missing %q", got, want)
		}
	}
}
