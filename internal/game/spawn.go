package game

import "github.com/tomz197/xevious/internal/object"

// airSpawnPeriod returns the frames between air spawns on a wave.
func airSpawnPeriod(wave int) int {
	return max(airSpawnBase-airSpawnStep*wave, airSpawnMin)
}

// groundSpawnPeriod returns the frames between ground spawns on a wave.
func groundSpawnPeriod(wave int) int {
	return max(groundSpawnBase-groundSpawnStep*wave, groundSpawnMin)
}

// waveQuota returns how many air enemies must spawn before the wave advances.
func waveQuota(wave int) int {
	return waveQuotaBase + waveQuotaPerWave*wave
}

// weighted returns an index into weights, chosen with probability
// proportional to its weight.
func weighted(r object.Random, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	pick := r.Float64() * total
	for i, w := range weights {
		if pick < w {
			return i
		}
		pick -= w
	}
	return len(weights) - 1
}

// spawn adds enemies on the current wave's cadence and advances the wave
// once its quota of air enemies has appeared.
func (g *Game) spawn() {
	if g.frame%airSpawnPeriod(g.wave) == 0 {
		t := object.AirType(weighted(g.rand, airWeights))
		g.AirEnemies = append(g.AirEnemies, object.NewAirEnemy(t, g.rand, g.screen))
		g.spawned++
	}

	if g.frame%groundSpawnPeriod(g.wave) == 0 {
		t := object.GroundType(weighted(g.rand, groundWeights))
		g.GroundEnemies = append(g.GroundEnemies, object.NewGroundEnemy(t, g.rand, g.screen))
	}

	if g.spawned >= waveQuota(g.wave) {
		g.wave++
		g.spawned = 0
		g.logger.Debug("wave advanced", "wave", g.wave, "frame", g.frame)
	}
}
