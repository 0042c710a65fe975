package sim

// activatePowerup applies a pickup. Extra life is instant and leaves the
// state machine alone. A timed pickup first reverts any running effect,
// then starts its own, so at most one effect is active and no side effect
// outlives its timer.
func (s *Simulation) activatePowerup(kind PowerupKind) {
	s.hooks.Audio.Play(CuePowerup)

	switch kind {
	case PowerupExtraLife:
		s.state.Lives++

	case PowerupFilter:
		s.revertPowerup()
		s.player.Filtered = true
		s.state.Active = &ActivePowerup{
			Kind:      PowerupFilter,
			Remaining: s.cfg.Powerups.FilterSeconds,
		}

	case PowerupSpeedBoost:
		s.revertPowerup()
		captured := s.state.GameSpeed
		s.state.GameSpeed += s.cfg.Powerups.SpeedBoostDelta
		s.state.Active = &ActivePowerup{
			Kind:        PowerupSpeedBoost,
			Remaining:   s.cfg.Powerups.SpeedBoostSeconds,
			RevertSpeed: captured,
		}
	}
}

// revertPowerup undoes the active effect and returns to idle.
func (s *Simulation) revertPowerup() {
	a := s.state.Active
	if a == nil {
		return
	}

	switch a.Kind {
	case PowerupFilter:
		s.player.Filtered = false
	case PowerupSpeedBoost:
		s.state.GameSpeed = a.RevertSpeed
	case PowerupExtraLife:
		// Never active
	}
	s.state.Active = nil
}

// tickPowerup counts down the active effect and expires it at zero.
func (s *Simulation) tickPowerup(dt float64) {
	a := s.state.Active
	if a == nil {
		return
	}
	a.Remaining -= dt
	if a.Remaining <= timerEpsilon {
		s.revertPowerup()
	}
}
