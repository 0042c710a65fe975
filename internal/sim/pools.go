package sim

// spawn accumulates dt and, once the profile interval is exceeded, runs one
// independent trial per entity type. Zero, one or several entities may
// appear in the same spawn tick.
func (s *Simulation) spawn(dt float64) {
	s.state.ElapsedSinceLastSpawn += dt
	if s.state.ElapsedSinceLastSpawn <= s.profile.SpawnIntervalSeconds {
		return
	}
	s.state.ElapsedSinceLastSpawn = 0

	if s.chance(s.profile.ObstacleSpawnProb) {
		s.obstacles = append(s.obstacles, s.newObstacle(ObstacleHazard))
	}
	if s.chance(s.profile.CollectibleSpawnProb) {
		s.collectibles = append(s.collectibles, s.newFloating(CategoryCollectible, s.cfg.Pickups.CollectibleSize))
	}
	if s.chance(s.profile.PowerupSpawnProb) {
		p := s.newFloating(CategoryPowerup, s.cfg.Pickups.PowerupSize)
		p.Powerup = PowerupKind(s.rng.Intn(int(powerupKindCount)))
		s.powerups = append(s.powerups, p)
	}
	if s.chance(s.profile.BonusCanSpawnProb) {
		s.obstacles = append(s.obstacles, s.newObstacle(ObstacleBonusCan))
	}
}

// chance runs a Bernoulli trial with probability p.
func (s *Simulation) chance(p float64) bool {
	return s.rng.Float64() < p
}

// spawnX is the fixed off-screen x every entity starts at.
func (s *Simulation) spawnX() float64 {
	return s.cfg.World.Width + s.cfg.World.SpawnMargin
}

// newObstacle creates a ground-aligned obstacle with randomized size.
func (s *Simulation) newObstacle(kind ObstacleKind) Entity {
	oc := s.cfg.Obstacles
	w := s.between(oc.MinWidth, oc.MaxWidth)
	h := s.between(oc.MinHeight, oc.MaxHeight)
	if kind == ObstacleBonusCan {
		w = s.between(oc.CanMinWidth, oc.CanMaxWidth)
		h = s.between(oc.CanMinHeight, oc.CanMaxHeight)
	}

	return Entity{
		X:        s.spawnX(),
		Y:        s.cfg.World.GroundY - h,
		W:        w,
		H:        h,
		Category: CategoryObstacle,
		Obstacle: kind,
	}
}

// newFloating creates a square pickup in one of the two floating bands.
func (s *Simulation) newFloating(cat Category, size float64) Entity {
	y := s.cfg.World.LowBandY
	if s.rng.Intn(2) == 1 {
		y = s.cfg.World.HighBandY
	}
	return Entity{
		X:        s.spawnX(),
		Y:        y,
		W:        size,
		H:        size,
		Category: cat,
	}
}

// between returns a uniform value in [lo, hi].
func (s *Simulation) between(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}

// advance moves every live entity left by speed*dt.
func (s *Simulation) advance(dt float64) {
	dx := s.state.GameSpeed * dt
	for i := range s.obstacles {
		s.obstacles[i].X -= dx
	}
	for i := range s.collectibles {
		s.collectibles[i].X -= dx
	}
	for i := range s.powerups {
		s.powerups[i].X -= dx
	}
}

// cull drops entities whose right edge passed the cull threshold.
func (s *Simulation) cull() {
	limit := s.cfg.World.CullThreshold
	s.obstacles = cullPool(s.obstacles, limit)
	s.collectibles = cullPool(s.collectibles, limit)
	s.powerups = cullPool(s.powerups, limit)
}

func cullPool(pool []Entity, limit float64) []Entity {
	kept := pool[:0]
	for _, e := range pool {
		if e.Right() >= limit {
			kept = append(kept, e)
		}
	}
	return kept
}

// removeAt deletes pool[i] preserving order.
func removeAt(pool []Entity, i int) []Entity {
	return append(pool[:i], pool[i+1:]...)
}
