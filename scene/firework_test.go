package scene

import (
	"math"
	"testing"

	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/rng"
	"github.com/lixenwraith/fireworks/vmath"
)

var testGravity = vmath.Vec2F{X: 0, Y: 0.2}

func TestFireworkMinimumRandomScenario(t *testing.T) {
	cue := &countingCue{}
	fw := NewFirework(100, 500, parameter.SparkCount, minRandom{}, cue)

	if fw.Rocket().Vel.Y != -10 {
		t.Fatalf("Expected launch velocity -10, got %f", fw.Rocket().Vel.Y)
	}

	explodedAt := 0
	for tick := 1; tick <= 100; tick++ {
		fw.Update(testGravity)
		if fw.Exploded() && explodedAt == 0 {
			explodedAt = tick
			if n := fw.SparkCount(); n != 150 {
				t.Errorf("Expected 150 sparks right after explosion, got %d", n)
			}
		}
	}

	if explodedAt != 50 {
		t.Fatalf("Expected explosion on tick 50, got %d", explodedAt)
	}
	if cue.plays != 1 {
		t.Errorf("Expected cue played once, got %d", cue.plays)
	}

	// Sparks had 51 updates by tick 100, lifespan 0 is still alive
	if n := fw.SparkCount(); n != 150 {
		t.Errorf("Expected all 150 sparks alive at tick 100, got %d", n)
	}
	if fw.Done() {
		t.Error("Expected firework not done while sparks remain")
	}

	fw.Update(testGravity)
	if !fw.Done() {
		t.Errorf("Expected firework done after sparks fade, %d sparks left", fw.SparkCount())
	}
	if fw.State() != StateExtinct {
		t.Errorf("Expected extinct state, got %s", fw.State())
	}
	if cue.plays != 1 {
		t.Errorf("Expected no further cue plays, got %d", cue.plays)
	}
}

func TestFireworkExplodesOnApexTick(t *testing.T) {
	src := rng.New(2024)
	for trial := 0; trial < 50; trial++ {
		fw := NewFirework(0, 0, parameter.SparkCount, src, nil)
		transitions := 0
		for tick := 0; tick < 200; tick++ {
			before := fw.Exploded()
			velBefore := fw.Rocket().Vel.Y
			fw.Update(testGravity)

			if !before && fw.Exploded() {
				transitions++
				if fw.Rocket().Vel.Y < -1e-9 {
					t.Fatalf("Trial %d: exploded with rocket still rising, vel.y %f", trial, fw.Rocket().Vel.Y)
				}
				if fw.SparkCount() != 150 {
					t.Fatalf("Trial %d: expected 150 sparks, got %d", trial, fw.SparkCount())
				}
			}
			if !fw.Exploded() {
				if fw.SparkCount() != 0 {
					t.Fatalf("Trial %d: sparks present while ascending", trial)
				}
				if fw.Rocket().Vel.Y >= 0 {
					t.Fatalf("Trial %d: rocket at apex without exploding", trial)
				}
			} else if before && fw.Rocket().Vel.Y != velBefore {
				t.Fatalf("Trial %d: rocket integrated after explosion", trial)
			}
		}
		if transitions != 1 {
			t.Errorf("Trial %d: expected exactly one explosion, got %d", trial, transitions)
		}
	}
}

func TestFireworkApexToleranceIsRoundingOnly(t *testing.T) {
	fw := NewFirework(0, 0, 4, minRandom{}, nil)

	// A rocket still rising by a millionth of a unit per tick has not reached apex
	fw.Rocket().Vel.Y = -0.2 - 1e-6
	fw.Update(testGravity)
	if fw.Exploded() {
		t.Fatalf("Expected no explosion at vel.y %g", fw.Rocket().Vel.Y)
	}

	fw.Update(testGravity)
	if !fw.Exploded() {
		t.Errorf("Expected explosion once vel.y is positive, got %g", fw.Rocket().Vel.Y)
	}
}

func TestFireworkSparksStartAtRocket(t *testing.T) {
	fw := NewFirework(30, 400, 20, rng.New(8), nil)
	for !fw.Exploded() {
		fw.Update(testGravity)
	}
	apex := fw.Rocket().Pos
	for i, p := range fw.Sparks() {
		origin := vmath.V2FAdd(p.Pos, vmath.V2FScale(p.Vel, -1))
		if math.Abs(origin.X-apex.X) > 1e-9 || math.Abs(origin.Y-apex.Y) > 1e-9 {
			t.Errorf("Spark %d: expected origin %v, got %v", i, apex, origin)
		}
	}
}

func TestFireworkPrunesExpiredSparks(t *testing.T) {
	fw := NewFirework(0, 500, parameter.SparkCount, rng.New(77), nil)
	for !fw.Exploded() {
		fw.Update(testGravity)
	}

	// Force 40 sparks to expire on the next update
	for _, p := range fw.Sparks()[:40] {
		p.Lifespan = 2
	}
	fw.Update(testGravity)

	if n := fw.SparkCount(); n != 110 {
		t.Errorf("Expected 110 sparks after pruning 40, got %d", n)
	}
	for _, p := range fw.Sparks() {
		if p.Done() {
			t.Error("Expected no finished spark to remain")
		}
	}
	if fw.State() != StateExploded {
		t.Errorf("Expected exploded state, got %s", fw.State())
	}
}

func TestFireworkRender(t *testing.T) {
	s := &recordingSurface{}
	fw := NewFirework(10, 300, parameter.SparkCount, rng.New(5), nil)

	fw.Update(testGravity)
	fw.Render(s)
	if len(s.points) != 1 || s.points[0].Width != parameter.RocketWidth {
		t.Fatalf("Expected only the rocket rendered while ascending, got %d points", len(s.points))
	}

	for !fw.Exploded() {
		fw.Update(testGravity)
	}
	s.reset()
	fw.Render(s)

	if len(s.points) != 150 {
		t.Fatalf("Expected 150 spark points, got %d", len(s.points))
	}
	for _, p := range s.points {
		if p.Width != parameter.SparkWidth {
			t.Fatalf("Expected only sparks rendered after explosion, got width %f", p.Width)
		}
	}
}

func TestFireworkStateString(t *testing.T) {
	tests := []struct {
		state FireworkState
		want  string
	}{
		{StateAscending, "ascending"},
		{StateExploded, "exploded"},
		{StateExtinct, "extinct"},
		{FireworkState(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}
