package constants

const (
	// ScreenWidth is the logical width of the play field
	ScreenWidth float64 = 390.0
	// ScreenHeight is the logical height of the play field
	ScreenHeight float64 = 844.0

	// AvatarDiameter is the starting diameter of the avatar circle
	AvatarDiameter float64 = 210.0
	// AvatarGrowStep is how much a single grow command adds to the diameter
	AvatarGrowStep float64 = 30.0
	// AvatarShrinkStep is how much a single shrink command removes from the diameter
	AvatarShrinkStep float64 = 30.0
	// AvatarGrowCap is the diameter a grow snaps to once it reaches or exceeds it
	AvatarGrowCap float64 = 390.0
	// AvatarShrinkThreshold is the diameter below which a shrink snaps to AvatarShrinkFloor
	AvatarShrinkThreshold float64 = 100.0
	// AvatarShrinkFloor is the diameter a shrink snaps to below the threshold
	AvatarShrinkFloor float64 = 120.0
	// AvatarRotationPeriod is the time for one full avatar revolution
	AvatarRotationPeriod float64 = 5.0 // seconds

	// ObstacleWidth is the width of an obstacle bar
	ObstacleWidth float64 = 200.0
	// ObstacleHeight is the height of an obstacle bar
	ObstacleHeight float64 = 10.0
	// ObstacleSpawnInterval is the time between two spawned obstacles
	ObstacleSpawnInterval float64 = 2.0 // seconds
	// ObstacleTravelDuration is the time an obstacle takes to cross the screen
	ObstacleTravelDuration float64 = 4.0 // seconds
	// ObstacleVerticalMargin keeps spawned obstacles away from the top and bottom edges
	ObstacleVerticalMargin float64 = 75.0

	// MaxCollisions is the collision count that ends the round
	MaxCollisions int = 5
	// CollisionToleranceDivisor scales half the obstacle width into the collision slack
	CollisionToleranceDivisor float64 = 1.4
)
