package geometry

import (
	"github.com/davg/go-parallel-raytracer/pkg/core"
)

// HitRecord describes the nearest surface intersection for one ray query.
// Normal always opposes the incoming ray; FrontFace records whether the
// ray struck the outer surface.
type HitRecord struct {
	Point     core.Vec3
	Normal    core.Vec3
	T         float64
	FrontFace bool
}

// SetFaceNormal sets the hit record normal from the outward surface normal,
// flipping it when the ray arrives from inside
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is anything a ray can intersect. Hit returns the nearest
// intersection with t strictly inside (tMin, tMax), or false for a miss.
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool)
}
