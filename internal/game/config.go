package game

// Game configuration constants.
// All tunable game parameters are centralized here for easy adjustment.

// Field
const (
	FieldWidth  = 256
	FieldHeight = 192
	FPS         = 60
)

// Spawning. Periods are in frames and shrink by the step every wave.
const (
	airSpawnBase     = 40
	airSpawnStep     = 2
	airSpawnMin      = 15
	groundSpawnBase  = 120
	groundSpawnStep  = 5
	groundSpawnMin   = 60
	waveQuotaBase    = 20
	waveQuotaPerWave = 5
	initialWave      = 1
)

// Spawn weights, in object type order.
var (
	airWeights    = []float64{0.6, 0.3, 0.1} // toroid, garu, zakato
	groundWeights = []float64{0.7, 0.1, 0.2} // domogram, barra, logram
)

// Collisions
const (
	playerReach = 12.0 // Per-axis distance for body contact
	shotReach   = 8.0
	hitboxHalf  = 8.0 // Half of the 16-unit air enemy and player sprites
)
