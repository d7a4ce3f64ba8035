package parameter

// Physics
const (
	// GravityY is the downward force applied to every rocket and spark per tick (world units/tick²)
	GravityY = 0.2

	// RocketSpeedMin/Max bound the initial launch speed; rockets move up, toward negative y
	RocketSpeedMin = 10.0
	RocketSpeedMax = 15.0

	// SparkSpeedMin/Max bound the initial burst speed of a spark in a random direction
	SparkSpeedMin = 3.0
	SparkSpeedMax = 12.0

	// SparkDrag is the per-tick velocity multiplier applied to sparks
	SparkDrag = 0.95
)

// Lifecycle
const (
	// LifespanInitial is the starting lifespan of particles and trails, doubles as opacity (0-255)
	LifespanInitial = 255.0

	// SparkFadeRate is the lifespan lost per tick by a spark (~51 ticks of life)
	SparkFadeRate = 5.0

	// TrailFadeRate is the lifespan lost per tick by a trail (~26 ticks of life)
	TrailFadeRate = 10.0

	// TrailPathMax is the number of most recent points a trail keeps
	TrailPathMax = 10

	// SparkCount is the number of sparks created by one explosion
	SparkCount = 150

	// SpawnChance is the per-tick probability of launching a new firework
	SpawnChance = 0.05
)

// Rendering
const (
	// RocketWidth is the stroke width of an ascending rocket
	RocketWidth = 5.0
	// SparkWidth is the stroke width of a spark
	SparkWidth = 3.0
	// TrailWidth is the stroke width of a trail polyline
	TrailWidth = 2.0

	// BackgroundFadeAlpha is the alpha of the per-frame background wash; low values leave motion blur
	BackgroundFadeAlpha = 25.0
)

// Background wash color channels
const (
	BackgroundR = 10
	BackgroundG = 10
	BackgroundB = 30
)
