package player

import (
	"errors"
	"math"
	"testing"
)

const frame = 1.0 / 60.0

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func mustRig(t *testing.T) *rig {
	t.Helper()
	r, err := newRig(DefaultConfig())
	if err != nil {
		t.Fatalf("newRig: %v", err)
	}
	return r
}

func TestNewControllerRequiresPorts(t *testing.T) {
	valid := func() Ports {
		return Ports{
			Body:     newFakeBody(0, 0, 16, 32),
			Caster:   newFakeCaster(),
			Grid:     fakeGrid{cell: 32},
			Animator: newFakeAnimator(),
			Input:    &fakeInput{},
		}
	}
	badCfg := DefaultConfig()
	badCfg.ClimbColliderScale = 0

	tests := []struct {
		name   string
		cfg    Config
		mutate func(p *Ports)
		want   error
	}{
		{"ok", DefaultConfig(), func(p *Ports) {}, nil},
		{"no_body", DefaultConfig(), func(p *Ports) { p.Body = nil }, ErrMissingBody},
		{"no_caster", DefaultConfig(), func(p *Ports) { p.Caster = nil }, ErrMissingCaster},
		{"no_grid", DefaultConfig(), func(p *Ports) { p.Grid = nil }, ErrMissingGrid},
		{"no_animator", DefaultConfig(), func(p *Ports) { p.Animator = nil }, ErrMissingAnimator},
		{"no_input", DefaultConfig(), func(p *Ports) { p.Input = nil }, ErrMissingInput},
		{"bad_config", badCfg, func(p *Ports) {}, ErrInvalidConfig},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ports := valid()
			tc.mutate(&ports)
			ctrl, err := NewController(tc.cfg, ports)
			if tc.want == nil {
				if err != nil || ctrl == nil {
					t.Fatalf("expected controller, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestGroundedJumpScenario(t *testing.T) {
	r := mustRig(t)
	cfg := r.ctrl.Config()

	r.input.frame = Input{MoveX: 1, JumpPressed: true}
	prev := MotionState{Facing: -1, JumpingAttack: true, RunningAttack: true}
	st := r.ctrl.Step(frame, prev)

	if !st.Grounded {
		t.Fatalf("expected grounded this frame")
	}
	if st.VelocityY != -cfg.JumpForce {
		t.Fatalf("expected vy %v, got %v", -cfg.JumpForce, st.VelocityY)
	}
	if st.VelocityX != cfg.MoveSpeed {
		t.Fatalf("expected vx %v, got %v", cfg.MoveSpeed, st.VelocityX)
	}
	if st.Facing != 1 {
		t.Fatalf("expected facing to flip to 1, got %v", st.Facing)
	}
	if st.JumpingAttack || st.RunningAttack {
		t.Fatalf("jump should clear attack locks: %+v", st)
	}
	if vx, vy := r.body.Velocity(); vx != st.VelocityX || vy != st.VelocityY {
		t.Fatalf("body velocity (%v,%v) not written back", vx, vy)
	}
}

func TestJumpRequiresGroundedAndNotClimbing(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(r *rig) MotionState
		wantJump bool
	}{
		{
			name:     "grounded",
			setup:    func(r *rig) MotionState { return NewMotionState() },
			wantJump: true,
		},
		{
			name: "airborne",
			setup: func(r *rig) MotionState {
				r.lift()
				return NewMotionState()
			},
		},
		{
			name: "climbing",
			setup: func(r *rig) MotionState {
				r.lift()
				r.caster.add(LayerLadder, Rect{X: 32, Y: -1000, W: 32, H: 2000})
				st := NewMotionState()
				st.Climbing = true
				return st
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := mustRig(t)
			prev := tc.setup(r)
			r.input.frame = Input{JumpPressed: true}
			st := r.ctrl.Step(frame, prev)
			jumped := st.VelocityY == -r.ctrl.Config().JumpForce
			if jumped != tc.wantJump {
				t.Fatalf("jumped=%v want %v (vy=%v)", jumped, tc.wantJump, st.VelocityY)
			}
		})
	}
}

func TestJumpReleaseHalvesUpwardVelocity(t *testing.T) {
	tests := []struct {
		name string
		vy   float64
		want float64
	}{
		{"rising", -200, -100},
		{"falling", 100, 100},
		{"still", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := mustRig(t)
			r.lift()
			r.body.vy = tc.vy
			r.input.frame = Input{JumpReleased: true}
			st := r.ctrl.Step(0, NewMotionState())
			if st.VelocityY != tc.want {
				t.Fatalf("expected vy %v, got %v", tc.want, st.VelocityY)
			}
		})
	}
}

func TestGravityOnlyWhileAirborne(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name     string
		airborne bool
		vy       float64
		want     float64
	}{
		{"rising", true, -50, -50 + cfg.Gravity*frame},
		{"falling_fast_fall", true, 50, 50 + cfg.Gravity*cfg.FastFallMultiplier*frame},
		{"apex", true, 0, cfg.Gravity * frame},
		{"grounded", false, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := mustRig(t)
			if tc.airborne {
				r.lift()
			}
			r.body.vy = tc.vy
			st := r.ctrl.Step(frame, NewMotionState())
			if !approx(st.VelocityY, tc.want) {
				t.Fatalf("expected vy %v, got %v", tc.want, st.VelocityY)
			}
		})
	}
}

func TestCeilingIsNotGround(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name  string
		input Input
	}{
		{"falls_away", Input{}},
		{"cannot_jump_off_ceiling", Input{JumpPressed: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := mustRig(t)
			r.lift()
			// Head pressed 0.05px into the underside of a ceiling tile.
			top := r.body.Bounds().Y
			r.caster.add(LayerGround, Rect{X: -1000, Y: top - 32 + 0.05, W: 2000, H: 32})
			r.input.frame = tc.input

			st := r.ctrl.Step(frame, NewMotionState())
			if st.Grounded {
				t.Fatalf("ceiling contact reported as ground")
			}
			if !approx(st.VelocityY, cfg.Gravity*frame) {
				t.Fatalf("expected gravity vy %v, got %v", cfg.Gravity*frame, st.VelocityY)
			}
		})
	}
}

func TestWallStopsHorizontalOnlyWhenAirborne(t *testing.T) {
	tests := []struct {
		name     string
		airborne bool
		moveX    float64
		wantVX   float64
	}{
		{"grounded_into_wall", false, 1, DefaultConfig().MoveSpeed},
		{"airborne_into_wall", true, 1, 0},
		{"airborne_away_from_wall", true, -1, -DefaultConfig().MoveSpeed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := mustRig(t)
			// Wall column touching the body's right side from far above to the floor.
			r.caster.add(LayerGround, Rect{X: 56, Y: -1000, W: 32, H: 1000 + floorTop})
			if tc.airborne {
				r.lift()
			}
			r.input.frame = Input{MoveX: tc.moveX}
			st := r.ctrl.Step(frame, NewMotionState())
			if st.VelocityX != tc.wantVX {
				t.Fatalf("expected vx %v, got %v (state %+v)", tc.wantVX, st.VelocityX, st)
			}
		})
	}
}

func TestFacingFlip(t *testing.T) {
	tests := []struct {
		name     string
		facing   float64
		moveX    float64
		climbing bool
		want     float64
	}{
		{"right_to_left", 1, -1, false, -1},
		{"left_to_right", -1, 1, false, 1},
		{"zero_input_keeps", -1, 0, false, -1},
		{"same_sign_keeps", 1, 0.5, false, 1},
		{"frozen_while_climbing", -1, 1, true, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := mustRig(t)
			prev := MotionState{Facing: tc.facing, Climbing: tc.climbing}
			if tc.climbing {
				r.lift()
				r.caster.add(LayerLadder, Rect{X: 32, Y: -1000, W: 32, H: 2000})
			}
			r.input.frame = Input{MoveX: tc.moveX}
			st := r.ctrl.Step(frame, prev)
			if st.Facing != tc.want {
				t.Fatalf("expected facing %v, got %v", tc.want, st.Facing)
			}
		})
	}
}

func TestClimbingSuppressesGravityAndHorizontal(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name   string
		input  Input
		wantVY float64
	}{
		{"hold_position", Input{MoveX: 1}, 0},
		{"climb_up", Input{MoveY: 1}, -cfg.ClimbSpeed},
		{"climb_down", Input{MoveY: -1}, cfg.ClimbSpeed},
		{"half_axis", Input{MoveY: 0.5}, -cfg.ClimbSpeed / 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := mustRig(t)
			r.lift()
			r.caster.add(LayerLadder, Rect{X: 32, Y: -1000, W: 32, H: 2000})
			r.body.vx, r.body.vy = 120, 400

			r.input.frame = tc.input
			prev := NewMotionState()
			prev.Climbing = true
			st := r.ctrl.Step(frame, prev)

			if !st.Climbing {
				t.Fatalf("expected to stay climbing")
			}
			if st.VelocityX != 0 {
				t.Fatalf("expected vx 0, got %v", st.VelocityX)
			}
			if st.VelocityY != tc.wantVY {
				t.Fatalf("expected vy %v, got %v", tc.wantVY, st.VelocityY)
			}
			if r.body.gravityScale != 0 {
				t.Fatalf("expected gravity scale 0, got %v", r.body.gravityScale)
			}
			if r.anim.flags[SignalClimbingMoving] != (tc.input.MoveY != 0) {
				t.Fatalf("climbing_moving flag = %v", r.anim.flags[SignalClimbingMoving])
			}
		})
	}
}

func TestEnterClimbScenario(t *testing.T) {
	r := mustRig(t)
	r.body.x = 40
	r.caster.add(LayerLadder, Rect{X: 32, Y: -1000, W: 32, H: 2000})

	r.input.frame = Input{MoveY: 1}
	st := r.ctrl.Step(frame, NewMotionState())

	if !st.Climbing || st.Mode() != ModeClimbing {
		t.Fatalf("expected climbing, got %+v", st)
	}
	if r.body.colliderSc != r.ctrl.Config().ClimbColliderScale {
		t.Fatalf("expected collider scale %v, got %v", r.ctrl.Config().ClimbColliderScale, r.body.colliderSc)
	}
	if r.body.x != 48 {
		t.Fatalf("expected x snapped to cell center 48, got %v", r.body.x)
	}
	if r.body.y != floorTop-bodyH/2 {
		t.Fatalf("expected y preserved, got %v", r.body.y)
	}
	if !r.anim.flags[SignalClimbing] {
		t.Fatalf("expected climbing flag set")
	}

	// The shrunk collider no longer touches the floor, so the next frame keeps climbing.
	st = r.ctrl.Step(frame, st)
	if !st.Climbing {
		t.Fatalf("expected to keep climbing on the following frame")
	}
}

func TestClimbEntrySnapsToLadderCell(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		facing float64
	}{
		{"ladder_to_the_right", 29, 1},
		{"ladder_to_the_left", 67, -1},
		{"already_in_ladder_cell", 40, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := mustRig(t)
			r.body.x = tc.x
			r.caster.add(LayerLadder, Rect{X: 32, Y: -1000, W: 32, H: 2000})
			r.input.frame = Input{MoveY: 1}

			prev := NewMotionState()
			prev.Facing = tc.facing
			st := r.ctrl.Step(frame, prev)
			if !st.Climbing {
				t.Fatalf("expected climbing, got %+v", st)
			}
			if r.body.x != 48 {
				t.Fatalf("expected x snapped to ladder cell 48, got %v", r.body.x)
			}

			st = r.ctrl.Step(frame, st)
			if !st.Climbing || !st.NearLadder {
				t.Fatalf("climb dropped on the next frame: %+v", st)
			}
		})
	}
}

func TestClimbEntryNeedsVerticalOnlyInput(t *testing.T) {
	tests := []struct {
		name  string
		input Input
		want  bool
	}{
		{"up", Input{MoveY: 1}, true},
		{"diagonal", Input{MoveX: 0.5, MoveY: 1}, false},
		{"down", Input{MoveY: -1}, false},
		{"tiny_up", Input{MoveY: 0.05}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := mustRig(t)
			r.caster.add(LayerLadder, Rect{X: 32, Y: -1000, W: 32, H: 2000})
			r.input.frame = tc.input
			st := r.ctrl.Step(frame, NewMotionState())
			if st.Climbing != tc.want {
				t.Fatalf("climbing=%v want %v", st.Climbing, tc.want)
			}
		})
	}
}

func TestExitClimbRestoresBody(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *rig)
	}{
		{"left_ladder", func(r *rig) {
			r.lift()
			r.body.colliderSc = 0.8
		}},
		{"reached_ground", func(r *rig) {
			r.caster.add(LayerLadder, Rect{X: 32, Y: -1000, W: 32, H: 2000})
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := mustRig(t)
			tc.setup(r)
			r.body.gravityScale = 0

			prev := NewMotionState()
			prev.Climbing = true
			st := r.ctrl.Step(frame, prev)

			if st.Climbing {
				t.Fatalf("expected climb to end")
			}
			if r.body.colliderSc != 1 {
				t.Fatalf("expected collider restored, got %v", r.body.colliderSc)
			}
			if r.body.gravityScale != 1 {
				t.Fatalf("expected gravity scale restored to 1, got %v", r.body.gravityScale)
			}
		})
	}
}

func TestAttackLocksHoldAnimationSignals(t *testing.T) {
	tests := []struct {
		name     string
		prev     MotionState
		signal   Signal
		initial  bool
		expected bool
	}{
		{"run_held_by_run_attack", MotionState{Facing: 1, RunningAttack: true}, SignalRun, true, true},
		{"run_released", MotionState{Facing: 1}, SignalRun, true, false},
		{"grounded_held_by_jump_attack", MotionState{Facing: 1, JumpingAttack: true}, SignalGrounded, false, false},
		{"grounded_released", MotionState{Facing: 1}, SignalGrounded, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := mustRig(t)
			r.anim.flags[tc.signal] = tc.initial
			r.ctrl.Step(frame, tc.prev)
			if r.anim.flags[tc.signal] != tc.expected {
				t.Fatalf("flag %v = %v, want %v", tc.signal, r.anim.flags[tc.signal], tc.expected)
			}
		})
	}
}

func TestSensorQueriedOncePerFrame(t *testing.T) {
	r := mustRig(t)
	r.ctrl.Step(frame, NewMotionState())
	if r.caster.calls != 3 {
		t.Fatalf("expected 3 casts per frame, got %d", r.caster.calls)
	}
}

func TestSetConfigRejectsInvalid(t *testing.T) {
	r := mustRig(t)
	bad := DefaultConfig()
	bad.FastFallMultiplier = 0.5
	if err := r.ctrl.SetConfig(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if r.ctrl.Config().FastFallMultiplier != DefaultConfig().FastFallMultiplier {
		t.Fatalf("invalid config should not be applied")
	}

	good := DefaultConfig()
	good.MoveSpeed = 10
	if err := r.ctrl.SetConfig(good); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	r.input.frame = Input{MoveX: 1}
	if st := r.ctrl.Step(frame, NewMotionState()); st.VelocityX != 10 {
		t.Fatalf("expected new move speed applied, got %v", st.VelocityX)
	}
}

func TestResetLeavesClimb(t *testing.T) {
	r := mustRig(t)
	r.body.colliderSc = 0.8
	r.body.gravityScale = 0
	r.body.vx, r.body.vy = 50, 50

	st := r.ctrl.Reset(MotionState{Climbing: true, Facing: -1, RunningAttack: true})
	if st.Climbing || st.RunningAttack {
		t.Fatalf("expected a fresh state, got %+v", st)
	}
	if st.Facing != -1 {
		t.Fatalf("expected facing kept, got %v", st.Facing)
	}
	if r.body.colliderSc != 1 || r.body.gravityScale != 1 {
		t.Fatalf("expected body restored, scale=%v gravity=%v", r.body.colliderSc, r.body.gravityScale)
	}
	if r.body.vx != 0 || r.body.vy != 0 {
		t.Fatalf("expected body stopped")
	}
}
