// Package sim implements the runner's real-time simulation core.
// It integrates player physics, spawns and culls scrolling entities,
// resolves collisions and runs timed powerups. It has no knowledge of
// terminals, audio devices or databases; those are reached through the
// narrow interfaces in hooks.go.
package sim

import "github.com/vovakirdan/tui-runner/internal/core"

// Category tags which pool an entity belongs to.
type Category int

const (
	CategoryObstacle Category = iota
	CategoryCollectible
	CategoryPowerup
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryObstacle:
		return "obstacle"
	case CategoryCollectible:
		return "collectible"
	case CategoryPowerup:
		return "powerup"
	default:
		return "unknown"
	}
}

// ObstacleKind distinguishes damaging obstacles from bonus cans.
type ObstacleKind int

const (
	ObstacleHazard   ObstacleKind = iota // Costs a life unless stomped or filtered
	ObstacleBonusCan                     // Grants a random bonus on any contact
)

// PowerupKind identifies a floating pickup's effect.
type PowerupKind int

const (
	PowerupFilter     PowerupKind = iota // Timed: hazards are neutralized
	PowerupSpeedBoost                    // Timed: game speed raised
	PowerupExtraLife                     // Instant: one more life
	powerupKindCount
)

// String returns the powerup name.
func (k PowerupKind) String() string {
	switch k {
	case PowerupFilter:
		return "Filter"
	case PowerupSpeedBoost:
		return "Speed"
	case PowerupExtraLife:
		return "Life"
	default:
		return "?"
	}
}

// Timed reports whether the powerup runs through the state machine.
func (k PowerupKind) Timed() bool {
	switch k {
	case PowerupFilter, PowerupSpeedBoost:
		return true
	case PowerupExtraLife:
		return false
	default:
		return false
	}
}

// BonusOutcome is one of the fixed rewards a bonus can may grant.
type BonusOutcome int

const (
	BonusExtraLife   BonusOutcome = iota // +1 life
	BonusScore                           // Flat points
	BonusFilter                          // Filter powerup
	BonusSpeed                           // Speed boost powerup
	BonusCelebration                     // Flat points plus particles
	bonusOutcomeCount
)

// String returns the outcome's banner text.
func (b BonusOutcome) String() string {
	switch b {
	case BonusExtraLife:
		return "+1 LIFE"
	case BonusScore:
		return "BONUS"
	case BonusFilter:
		return "FILTER"
	case BonusSpeed:
		return "SPEED"
	case BonusCelebration:
		return "JACKPOT"
	default:
		return "?"
	}
}

// Entity is a scrolling obstacle, collectible or powerup.
// Entities have no identity beyond their slot in a pool.
type Entity struct {
	X, Y     float64 // Top-left corner; X decreases every tick
	W, H     float64
	Category Category
	Obstacle ObstacleKind // Valid when Category == CategoryObstacle
	Powerup  PowerupKind  // Valid when Category == CategoryPowerup
}

// Box returns the collision box for this entity.
func (e Entity) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.W, e.H)
}

// Right returns the x-coordinate of the right edge.
func (e Entity) Right() float64 {
	return e.X + e.W
}

// Player is the avatar. X is a fixed lane; Y is the top edge.
type Player struct {
	X, Y       float64
	W, H       float64
	VY         float64 // Vertical velocity, positive is down
	PrevY      float64 // Y at the start of the current tick, for stomp checks
	Grounded   bool
	Filtered   bool // Filter powerup active; drives skin and hazard immunity
	Distressed bool // Set once at game over
}

// Box returns the collision box for the player.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// PrevBottom returns the bottom edge as of the previous frame.
func (p Player) PrevBottom() float64 {
	return p.PrevY + p.H
}
