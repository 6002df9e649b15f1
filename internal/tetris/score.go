package tetris

import "time"

// awardedPoints returns the points for clearing `cleared` lines in one lock
// event. totalLines is the cumulative count after this clear is applied, so
// a clear that crosses a level boundary is paid at the new level.
func awardedPoints(cleared, totalLines int, cfg Config) int {
	base := cfg.Points[cleared]
	mult := (totalLines/cfg.LinesPerLevel + 1) * cfg.LevelMultiplier
	if mult < 1 {
		mult = 1
	}
	return base * mult
}

// gravityInterval returns the fall interval for the given cumulative line
// count: monotonically non-increasing, floored at MinGravity.
func gravityInterval(totalLines int, cfg Config) time.Duration {
	levelIndex := totalLines / cfg.LinesPerLevel
	g := cfg.InitialGravity - time.Duration(levelIndex)*cfg.GravityDecrease
	if g < cfg.MinGravity {
		return cfg.MinGravity
	}
	return g
}
