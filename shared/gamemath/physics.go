package gamemath

// ClampFall caps downward speed only. Rising speed is left untouched so a
// jump impulse larger than the fall cap still lifts the player.
func ClampFall(speedY, maxFall float64) float64 {
	if speedY > maxFall {
		return maxFall
	}
	return speedY
}

// DirectionalSpeed returns -speed, +speed or 0 from held directions.
// Left wins when both are held.
func DirectionalSpeed(left, right bool, speed float64) float64 {
	if left {
		return -speed
	}
	if right {
		return speed
	}
	return 0
}
