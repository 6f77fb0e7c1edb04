// Package scene owns the live objects and the camera, advances them each
// frame and submits their geometry in camera-relative space.
package scene

import (
	"fmt"

	"cube3d/internal/graphics"
)

// ID is the stable index of an object within its scene.
type ID int

// Scene is an ordered, dense collection of objects.
type Scene struct {
	objects []Object
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{}
}

// Add appends obj and returns its ID.
func (s *Scene) Add(obj Object) ID {
	s.objects = append(s.objects, obj)
	return ID(len(s.objects) - 1)
}

// Get returns the object with the given ID.
func (s *Scene) Get(id ID) (Object, error) {
	if id < 0 || int(id) >= len(s.objects) {
		return nil, fmt.Errorf("scene: no object with id %d", id)
	}
	return s.objects[id], nil
}

// Len returns the number of objects.
func (s *Scene) Len() int { return len(s.objects) }

// Integrate advances every object's physics by dt seconds.
func (s *Scene) Integrate(dt float32) {
	for _, o := range s.objects {
		o.Integrate(dt)
	}
}

// Render submits every object relative to the camera and advances its
// animation by dt seconds.
func (s *Scene) Render(r graphics.Renderer, cam *Camera, dt float32) {
	for _, o := range s.objects {
		o.Render(r, o.Position().Sub(cam.Base), dt)
	}
}

// ToggleSpin pauses or resumes every spinning object. It returns the new
// state of the first spinner found.
func (s *Scene) ToggleSpin() bool {
	on := false
	first := true
	for _, o := range s.objects {
		sp, ok := o.(Spinner)
		if !ok {
			continue
		}
		if first {
			on = !sp.Spinning()
			first = false
		}
		sp.SetSpinning(on)
	}
	return on
}

// Clear drops every object.
func (s *Scene) Clear() {
	clear(s.objects)
	s.objects = s.objects[:0]
}
