package sim

import "math"

// resolveCollisions tests the player against obstacles, then collectibles,
// then powerups. Each pool is walked back to front so removal in place is
// index-safe. It returns true when the run ended this tick; the caller must
// skip the rest of the update.
func (s *Simulation) resolveCollisions() bool {
	pb := s.player.Box()
	// Fixed before the loop: a stomp bounce must not turn the next
	// overlapping hazard into a hit.
	falling := s.player.VY > 0
	prevBottom := s.player.PrevBottom()

	for i := len(s.obstacles) - 1; i >= 0; i-- {
		ob := s.obstacles[i]
		if !pb.Intersects(ob.Box()) {
			continue
		}

		switch {
		case ob.Obstacle == ObstacleHazard && s.isStomp(ob, falling, prevBottom):
			s.obstacles = removeAt(s.obstacles, i)
			s.stomp(ob)

		case ob.Obstacle == ObstacleBonusCan:
			s.obstacles = removeAt(s.obstacles, i)
			s.applyBonus(s.rollBonus(), ob)

		case s.player.Filtered:
			s.obstacles = removeAt(s.obstacles, i)

		default:
			s.obstacles = removeAt(s.obstacles, i)
			s.hooks.Audio.Play(CueHit)
			s.state.Lives--
			if s.state.Lives <= 0 {
				s.state.Lives = 0
				s.gameOver()
				return true
			}
		}
	}

	for i := len(s.collectibles) - 1; i >= 0; i-- {
		if !pb.Intersects(s.collectibles[i].Box()) {
			continue
		}
		s.collectibles = removeAt(s.collectibles, i)
		s.hooks.Audio.Play(CueCollect)
		s.addScore(s.scaled(s.cfg.Scoring.CollectPoints))
	}

	for i := len(s.powerups) - 1; i >= 0; i-- {
		pu := s.powerups[i]
		if !pb.Intersects(pu.Box()) {
			continue
		}
		s.powerups = removeAt(s.powerups, i)
		s.activatePowerup(pu.Powerup)
	}

	return false
}

// isStomp reports whether the player is landing on top of ob: falling at
// the start of collision resolution, and last frame's bottom edge was at or
// above the obstacle's top plus tolerance.
func (s *Simulation) isStomp(ob Entity, falling bool, prevBottom float64) bool {
	return falling && prevBottom <= ob.Y+s.cfg.Physics.StompTolerance
}

// stomp rewards a kill and bounces the player back up.
func (s *Simulation) stomp(ob Entity) {
	s.hooks.Audio.Play(CueStomp)
	s.player.VY = s.cfg.Physics.JumpImpulse * s.cfg.Physics.StompBounceFactor
	s.player.Grounded = false
	s.addEffect(EffectStomp, ob.X+ob.W/2, ob.Y)
	s.addScore(s.scaled(s.cfg.Scoring.StompPoints))
}

// rollBonus picks one of the bonus outcomes uniformly.
func (s *Simulation) rollBonus() BonusOutcome {
	return BonusOutcome(s.rng.Intn(int(bonusOutcomeCount)))
}

// applyBonus grants a bonus-can reward. Bonus cans never cost a life.
func (s *Simulation) applyBonus(b BonusOutcome, can Entity) {
	cx, cy := can.X+can.W/2, can.Y
	s.addBonusEffect(b, cx, cy)

	switch b {
	case BonusExtraLife:
		s.hooks.Audio.Play(CuePowerup)
		s.state.Lives++
	case BonusScore:
		s.hooks.Audio.Play(CueCollect)
		s.addScore(s.cfg.Scoring.BonusPoints)
	case BonusFilter:
		s.activatePowerup(PowerupFilter)
	case BonusSpeed:
		s.activatePowerup(PowerupSpeedBoost)
	case BonusCelebration:
		s.hooks.Audio.Play(CueMilestone)
		s.addEffect(EffectCelebration, cx, cy)
		s.addScore(s.cfg.Scoring.CelebrationPoints)
	}
}

// scaled applies the profile's score multiplier, rounding to nearest.
func (s *Simulation) scaled(base int) int {
	return int(math.Round(float64(base) * s.profile.ScoreMultiplier))
}
