package sim

// Autopilot is a simple jump policy used for headless runs and demos.
// It jumps when a hazard is about to reach the player and ignores bonus
// cans, which are worth touching.
type Autopilot struct {
	// Lead is how many seconds ahead of contact to jump.
	Lead float64
}

// ShouldJump decides from a snapshot whether to request a jump now.
func (a Autopilot) ShouldJump(s Snapshot) bool {
	if !s.Running || s.Paused || !s.Player.Grounded {
		return false
	}
	lead := a.Lead
	if lead <= 0 {
		lead = 0.18
	}

	front := s.Player.X + s.Player.W
	reach := s.Speed * lead
	for _, ob := range s.Obstacles {
		if ob.Obstacle != ObstacleHazard {
			continue
		}
		gap := ob.X - front
		if gap >= 0 && gap <= reach {
			return true
		}
	}
	return false
}
