package renderer

import (
	"math/rand"

	"github.com/davg/go-parallel-raytracer/pkg/core"
	"github.com/davg/go-parallel-raytracer/pkg/scene"
)

// tMinEpsilon excludes self-intersection at the origin of a bounced ray
// (shadow acne avoidance)
const tMinEpsilon = 0.001

// tMaxInfinity is the far clip for scene queries
const tMaxInfinity = 1e9

// diffuseAlbedo is the fixed reflectance of every surface; half the bounced
// light survives each diffuse bounce
const diffuseAlbedo = 0.5

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 64,
		MaxDepth:        32,
	}
}

// Raytracer shades rays against a scene. It holds no mutable state, so a
// single instance may be used from any number of goroutines as long as each
// caller supplies its own random source.
type Raytracer struct {
	scene  *scene.Scene
	camera *Camera
	width  int
	height int
	config SamplingConfig
}

// NewRaytracer creates a raytracer for the given scene and image dimensions
func NewRaytracer(sc *scene.Scene, width, height int, config SamplingConfig) *Raytracer {
	aspectRatio := float64(width) / float64(height)
	return &Raytracer{
		scene:  sc,
		camera: NewCamera(aspectRatio),
		width:  width,
		height: height,
		config: config,
	}
}

// backgroundGradient returns the sky color for a ray that hits nothing:
// white at the horizon blending to blue straight up
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Map direction y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return core.Lerp(rt.scene.BottomColor, rt.scene.TopColor, t)
}

// RayColor returns the color for a ray, recursing on diffuse bounces up to
// depth. Depth 0 returns black: the ray is absorbed.
func (rt *Raytracer) RayColor(r core.Ray, depth int, random *rand.Rand) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, ok := rt.scene.Hit(r, tMinEpsilon, tMaxInfinity)
	if !ok {
		return rt.backgroundGradient(r)
	}

	// Diffuse bounce: new ray from the hit point into the hemisphere
	// oriented by the surface normal
	target := hit.Point.Add(core.RandomInHemisphere(hit.Normal, random))
	bounced := core.NewRay(hit.Point, target.Subtract(hit.Point))

	return rt.RayColor(bounced, depth-1, random).Multiply(diffuseAlbedo)
}

// SamplePixel runs the configured number of jittered trials for pixel (x, y),
// averages them, and applies gamma correction
func (rt *Raytracer) SamplePixel(x, y int, random *rand.Rand) core.Vec3 {
	var accum core.Vec3

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		// Jitter by half a pixel in each axis. Edge pixels may land
		// fractionally outside [0,1]; the camera extrapolates.
		u := (float64(x) + random.Float64() - 0.5) / float64(rt.width-1)
		v := (float64(y) + random.Float64() - 0.5) / float64(rt.height-1)

		ray := rt.camera.GetRay(u, v)
		accum = accum.Add(rt.RayColor(ray, rt.config.MaxDepth, random))
	}

	averaged := accum.Multiply(1.0 / float64(rt.config.SamplesPerPixel))
	return core.GammaCorrect(averaged)
}
