package mandala

import "testing"

func TestWheelCoversAllGatesOnce(t *testing.T) {
	seen := map[int]bool{}
	for _, g := range Wheel {
		if g < 1 || g > 64 {
			t.Fatalf("gate %d out of range", g)
		}
		if seen[g] {
			t.Fatalf("gate %d appears twice", g)
		}
		seen[g] = true
	}
	if len(seen) != 64 {
		t.Fatalf("expected 64 gates, got %d", len(seen))
	}
}

func TestAtWheelZeroPoint(t *testing.T) {
	// 302 deg + 58 deg offset wraps to the wheel's zero point: gate 41,
	// first line of the first division everywhere.
	p := At(302)
	if p.Gate != 41 {
		t.Fatalf("expected gate 41, got %d", p.Gate)
	}
	if p.Line != 1 || p.Color != 1 || p.Tone != 1 || p.Base != 1 {
		t.Fatalf("expected 1/1/1/1, got %d/%d/%d/%d", p.Line, p.Color, p.Tone, p.Base)
	}
}

func TestAtSubdivisions(t *testing.T) {
	// 2.1 deg into the wheel: still gate 41, line 3, color 2, tone 3,
	// base 4 (worked by hand from the nested divisions: the base
	// fraction is 2.1*192 = 403.2, and 403.2 mod 5 lands in slot 4).
	p := At(304.1)
	if p.Gate != 41 {
		t.Fatalf("expected gate 41, got %d", p.Gate)
	}
	if p.Line != 3 {
		t.Fatalf("expected line 3, got %d", p.Line)
	}
	if p.Color != 2 {
		t.Fatalf("expected color 2, got %d", p.Color)
	}
	if p.Tone != 3 {
		t.Fatalf("expected tone 3, got %d", p.Tone)
	}
	if p.Base != 4 {
		t.Fatalf("expected base 4, got %d", p.Base)
	}
}

func TestAtSecondGate(t *testing.T) {
	// 5.7 deg into the wheel falls in the second slot: gate 19.
	p := At(307.7)
	if p.Gate != 19 {
		t.Fatalf("expected gate 19, got %d", p.Gate)
	}
}

func TestAtEarlyJanuarySun(t *testing.T) {
	// The Sun sits near 280.46 deg each January 1st: gate 38.
	p := At(280.46)
	if p.Gate != 38 {
		t.Fatalf("expected gate 38, got %d", p.Gate)
	}
}

func TestLinesPartitionGate(t *testing.T) {
	// Six lines of 0.9375 deg each inside one gate.
	base := 302.0 // wheel zero
	for line := 1; line <= 6; line++ {
		lon := base + (float64(line)-1)*0.9375 + 0.4
		p := At(lon)
		if p.Gate != 41 {
			t.Fatalf("line %d left gate 41: got %d", line, p.Gate)
		}
		if p.Line != line {
			t.Fatalf("expected line %d, got %d", line, p.Line)
		}
	}
}

func TestOpposite(t *testing.T) {
	if got := Opposite(10); got != 190 {
		t.Fatalf("Opposite(10) = %f", got)
	}
	if got := Opposite(350); got != 170 {
		t.Fatalf("Opposite(350) = %f", got)
	}
}
