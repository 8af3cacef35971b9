package world

import "Lightsim/internal/renderer"

// LightStore holds every light of the session in insertion order. Lights are
// never removed, index i always refers to the i-th light added.
type LightStore struct {
	lights []renderer.Light
}

func NewLightStore() *LightStore {
	return &LightStore{}
}

// Add appends a light and returns its index.
func (s *LightStore) Add(light renderer.Light) int {
	s.lights = append(s.lights, light)
	return len(s.lights) - 1
}

func (s *LightStore) Len() int {
	return len(s.lights)
}

func (s *LightStore) At(i int) renderer.Light {
	return s.lights[i]
}

// Last returns the most recently added light.
func (s *LightStore) Last() (renderer.Light, bool) {
	if len(s.lights) == 0 {
		return renderer.Light{}, false
	}
	return s.lights[len(s.lights)-1], true
}
