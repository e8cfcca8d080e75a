package main

import "time"

// Server configuration constants
const (
	// Server
	ServerPort    = ":8080"
	StaticDir     = "../client"
	WebSocketPath = "/ws"

	// Env overrides read by main
	EnvAddr      = "SNAKE_ADDR"
	EnvStaticDir = "SNAKE_STATIC_DIR"
	EnvAutopilot = "SNAKE_AUTOPILOT"

	// Frame loop — the simulation ticks on its own 500ms clock, frames just poll it
	FrameRate = 60 // frames per second

	// Connections
	MaxPlayers    = 32 // concurrent viewers; all of them steer the one snake
	IPCooldownSec = 2  // seconds between connections from one IP

	// Websocket
	ReadBufferSize  = 1024
	WriteBufferSize = 4096
	WriteTimeout    = 2 * time.Second
	ShutdownTimeout = 5 * time.Second
)
