package scene

import (
	"github.com/davg/go-parallel-raytracer/pkg/core"
	"github.com/davg/go-parallel-raytracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering. It is read-only
// for the duration of a render and safe to share across workers.
type Scene struct {
	Objects []geometry.Hittable

	// Background gradient endpoints: BottomColor at the horizon,
	// TopColor straight up.
	TopColor    core.Vec3
	BottomColor core.Vec3
}

// NewScene creates an empty scene with the standard sky gradient
func NewScene() *Scene {
	return &Scene{
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// NewDefaultScene creates the built-in two-sphere scene: a small sphere
// in front of the camera resting on a very large ground sphere
func NewDefaultScene() *Scene {
	s := NewScene()
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5))
	s.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100))
	return s
}

// Add appends an object to the scene
func (s *Scene) Add(obj geometry.Hittable) {
	s.Objects = append(s.Objects, obj)
}

// Hit returns the nearest intersection across all objects, or false if the
// ray misses everything. The search interval's upper bound shrinks to each
// accepted hit's t, so the result is the global nearest regardless of
// object order; exact ties go to the first object encountered.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*geometry.HitRecord, bool) {
	var closest *geometry.HitRecord
	closestSoFar := tMax

	for _, obj := range s.Objects {
		if hit, ok := obj.Hit(ray, tMin, closestSoFar); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}
