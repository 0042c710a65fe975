package sim

// EffectKind identifies a transient visual effect.
type EffectKind int

const (
	EffectStomp       EffectKind = iota // Dust puff where a hazard was stomped
	EffectBonus                         // Banner naming a bonus-can outcome
	EffectCelebration                   // Particle burst from the jackpot bonus
	EffectMilestone                     // Particle burst on a score milestone
)

// Effect is a short-lived visual the renderer draws; it has no gameplay weight.
type Effect struct {
	Kind      EffectKind
	Bonus     BonusOutcome // Valid for EffectBonus
	X, Y      float64      // Origin in world units
	Remaining float64      // Seconds left
	Duration  float64      // Initial lifetime
}

// Progress returns how far the effect is through its life, 0 to 1.
func (e Effect) Progress() float64 {
	if e.Duration <= 0 {
		return 1
	}
	p := 1 - e.Remaining/e.Duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func (s *Simulation) addEffect(kind EffectKind, x, y float64) {
	d := s.cfg.Loop.EffectSeconds
	s.effects = append(s.effects, Effect{Kind: kind, X: x, Y: y, Remaining: d, Duration: d})
}

func (s *Simulation) addBonusEffect(b BonusOutcome, x, y float64) {
	d := s.cfg.Loop.EffectSeconds
	s.effects = append(s.effects, Effect{Kind: EffectBonus, Bonus: b, X: x, Y: y, Remaining: d, Duration: d})
}

// tickEffects ages effects and drops the expired ones.
func (s *Simulation) tickEffects(dt float64) {
	kept := s.effects[:0]
	for _, e := range s.effects {
		e.Remaining -= dt
		if e.Remaining > 0 {
			kept = append(kept, e)
		}
	}
	s.effects = kept
}
