package engine

import (
	"Lightsim/internal/input"
	"Lightsim/internal/logger"
	"Lightsim/internal/renderer"
	"Lightsim/internal/world"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session is all mutable state of one run. Only the control loop touches it.
type Session struct {
	ID        string
	Camera    renderer.Camera2D
	Params    renderer.GlowParams
	Lights    *world.LightStore
	Generated *world.ChunkSet
	Generator *world.Generator
	Tick      int

	cfg  Config
	rng  *rand.Rand
	glow *renderer.GlowRenderer
	log  *zap.Logger
}

func NewSession(cfg Config) *Session {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	gen := world.NewGenerator(cfg.Width, cfg.Height, rng)
	gen.LightsPerChunk = cfg.LightsPerChunk

	id := uuid.NewString()
	return &Session{
		ID: id,
		Params: renderer.GlowParams{
			MaxRadius:   cfg.InitialRadius,
			NumSegments: cfg.InitialSegments,
		},
		Lights:    world.NewLightStore(),
		Generated: world.NewChunkSet(),
		Generator: gen,
		cfg:       cfg,
		rng:       rng,
		glow:      renderer.NewGlowRenderer(),
		log:       logger.Log.With(zap.String("session", id)),
	}
}

// ApplyControls moves the camera and adjusts the glow parameters from the
// keys held this frame.
func (s *Session) ApplyControls(in *input.State) {
	step := renderer.CameraStep
	if in.Held(input.KeyFast) {
		step = renderer.CameraFastStep
	}
	if in.Held(input.KeyUp) {
		s.Camera.Move(0, step)
	}
	if in.Held(input.KeyDown) {
		s.Camera.Move(0, -step)
	}
	if in.Held(input.KeyLeft) {
		s.Camera.Move(-step, 0)
	}
	if in.Held(input.KeyRight) {
		s.Camera.Move(step, 0)
	}

	if in.Held(input.KeyZoomIn) {
		s.Params.AdjustRadius(1)
	}
	if in.Held(input.KeyZoomOut) {
		s.Params.AdjustRadius(-1)
	}
	if in.Held(input.KeySegmentsDown) {
		s.Params.AdjustSegments(-1)
	}
	if in.Held(input.KeySegmentsUp) {
		s.Params.AdjustSegments(1)
	}
}

func (s *Session) CurrentChunk() world.ChunkKey {
	return world.KeyFor(s.Camera.X, s.Camera.Y, s.cfg.Width, s.cfg.Height)
}

// EnsureCurrentChunk generates the chunk under the camera the first time it
// is seen. It reports the key and whether lights were generated.
func (s *Session) EnsureCurrentChunk() (world.ChunkKey, bool) {
	key := s.CurrentChunk()
	if s.Generated.Contains(key) {
		return key, false
	}
	s.Generator.GenerateChunk(s.Lights, key)
	s.Generated.Add(key)
	s.log.Debug("Generated chunk",
		zap.Stringer("chunk", key),
		zap.Int("lights", s.Lights.Len()))
	return key, true
}

// PlaceLight adds one light at the world position under the pointer.
func (s *Session) PlaceLight(pointerX, pointerY float64) renderer.Light {
	pos := s.Camera.PointerToWorld(pointerX, pointerY, s.cfg.Height, s.cfg.FlipPointerY)
	light := renderer.NewLight(pos.X(), pos.Y(), s.rng)
	s.Lights.Add(light)
	return light
}

// HandlePlacement places a light if the placement policy fires this frame.
func (s *Session) HandlePlacement(in *input.State) bool {
	fire := in.ButtonPressedThisFrame(input.ButtonPrimary)
	if s.cfg.Placement == PlacementLevel {
		fire = in.ButtonHeld(input.ButtonPrimary)
	}
	if !fire {
		return false
	}
	s.PlaceLight(in.MouseX, in.MouseY)
	return true
}

// Update runs the simulation part of a frame: controls, chunk generation and placement.
func (s *Session) Update(in *input.State) {
	s.ApplyControls(in)
	s.EnsureCurrentChunk()
	s.HandlePlacement(in)
}

// Render draws every light in insertion order.
func (s *Session) Render(rend renderer.Render) int {
	return s.glow.DrawLights(rend, s.Lights, s.Camera, s.Params)
}

// AdvanceTick moves the frame counter, wrapping to 0 when it reaches FPS.
func (s *Session) AdvanceTick() int {
	s.Tick++
	if s.Tick == s.cfg.FPS {
		s.Tick = 0
		s.log.Debug("Frame counter wrapped",
			zap.Int("lights", s.Lights.Len()),
			zap.Int("chunks", s.Generated.Len()))
	}
	return s.Tick
}
