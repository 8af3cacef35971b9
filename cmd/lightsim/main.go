package main

import (
	"Lightsim/internal/engine"
	"Lightsim/internal/logger"
	"Lightsim/internal/window"
	"os"
	"runtime"

	"go.uber.org/zap"
)

func init() {
	// GLFW and GL calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	cfg := engine.DefaultConfig()
	if os.Getenv("LIGHTSIM_DEBUG") != "" {
		cfg.Debug = true
		logger.InitDevelopment()
	} else {
		logger.Init()
	}
	defer logger.Sync()

	gopher, err := engine.NewGopher(cfg, window.NewGLFWBackend())
	if err != nil {
		logger.Log.Fatal("Invalid configuration", zap.Error(err))
	}
	if err := gopher.Run(); err != nil {
		logger.Log.Error("Lightsim stopped", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
