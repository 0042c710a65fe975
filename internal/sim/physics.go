package sim

// groundY returns the player's resting Y (top edge when standing).
func (s *Simulation) groundY() float64 {
	return s.cfg.World.GroundY - s.cfg.Player.Height
}

// integrate advances the player's vertical motion by dt seconds.
func (s *Simulation) integrate(dt float64) {
	p := &s.player
	p.PrevY = p.Y

	p.VY += s.cfg.Physics.Gravity * dt
	p.Y += p.VY * dt

	// Landed
	if ground := s.groundY(); p.Y >= ground {
		p.Y = ground
		p.VY = 0
		p.Grounded = true
	} else {
		p.Grounded = false
	}
}
