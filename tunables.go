package nebula

// Layout.
const (
	// SphereRadius is the radius of the sphere words are distributed over.
	SphereRadius = 6.0
	// SizeBase is the label size of a weight-0 word, in world units.
	SizeBase = 0.2
	// SizeRange is added to SizeBase in proportion to weight.
	SizeRange = 0.55
	// HueBase is the hue (degrees) of a weight-0 word.
	HueBase = 210.0
	// HueRange is added to HueBase in proportion to weight.
	HueRange = 120.0
	// WordSaturation and WordLightness are fixed for every word color.
	WordSaturation = 0.85
	WordLightness  = 0.70
)

// Animation.
const (
	// RotationSpeed is the yaw rate of the word group in radians per second.
	RotationSpeed = 0.18
	// PitchAmplitude bounds the group's pitch oscillation in radians.
	PitchAmplitude = 0.2
	// PitchFrequency is the angular frequency of the pitch oscillation.
	PitchFrequency = 0.22

	// Float idle motion of each word.
	FloatSpeed             = 1.2
	FloatRotationIntensity = 0.35
	FloatIntensity         = 0.5
)

// Hover.
const (
	// HoverScale multiplies a word's size while a pointer is over it.
	HoverScale = 1.15
)

// Camera and interaction.
const (
	// CameraFOV is the vertical field of view in degrees.
	CameraFOV = 58.0
	// CameraDistance is the starting distance from the origin.
	CameraDistance = 14.0
	// MinDistance and MaxDistance clamp the orbit zoom.
	MinDistance = 5.0
	MaxDistance = 22.0
	// CameraNear and CameraFar bound the visible depth range.
	CameraNear = 0.1
	CameraFar  = 1000.0

	// OrbitDamping is the fraction of pending orbit motion applied per frame.
	OrbitDamping = 0.05
	// ZoomStep is the distance factor applied per wheel notch.
	ZoomStep = 0.95
	// ZoomDuration is how long a zoom change takes to settle, in seconds.
	ZoomDuration = 0.2
)

// Atmosphere.
const (
	// FogNear and FogFar bound the linear depth fog in view-space units.
	FogNear = 8.0
	FogFar  = 24.0

	// ParticleCount is the number of ambient sparkles.
	ParticleCount = 140
	// SparkleScale is the edge length of the cube sparkles are spread over.
	SparkleScale = 16.0
	// SparkleSpeed scales sparkle drift and twinkle.
	SparkleSpeed = 0.35
	// SparkleSize is the base sparkle radius in pixels at unit depth scale.
	SparkleSize = 2.5
)

// Lighting.
const (
	AmbientIntensity = 0.55
	KeyIntensity     = 1.2
	AccentIntensity  = 0.8
)

// Placeholder shown when there are no words.
const (
	PlaceholderText = "Analyze an article to begin"
	PlaceholderSize = 0.6
)

// Palette.
var (
	BackgroundColor  = MustHexColor("#0f1329")
	HighlightColor   = MustHexColor("#fffbe6")
	PlaceholderColor = MustHexColor("#f0f3ff")
	SparkleColor     = MustHexColor("#9be7ff")
	AccentColor      = MustHexColor("#8bf5ff")
)

// Light positions.
var (
	KeyLightPosition    = Vec3{12, 8, 5}
	AccentLightPosition = Vec3{-8, -4, -6}
)
