package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
)

// ipRateLimiter tracks last connection time per IP to prevent abuse
type ipRateLimiter struct {
	mu       sync.Mutex
	times    map[string]time.Time
	cooldown time.Duration
}

func newIPRateLimiter(ctx context.Context, cooldown time.Duration) *ipRateLimiter {
	rl := &ipRateLimiter{times: make(map[string]time.Time), cooldown: cooldown}
	// Cleanup stale entries every 60s
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rl.prune(time.Now())
			}
		}
	}()
	return rl
}

// allow returns true if this IP can connect, and records the attempt
func (rl *ipRateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if last, ok := rl.times[ip]; ok {
		if time.Since(last) < rl.cooldown {
			return false
		}
	}
	rl.times[ip] = time.Now()
	return true
}

// prune drops entries older than the cooldown
func (rl *ipRateLimiter) prune(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	cutoff := now.Add(-rl.cooldown)
	for ip, t := range rl.times {
		if t.Before(cutoff) {
			delete(rl.times, ip)
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins for development; tighten in production
		return true
	},
	ReadBufferSize:    ReadBufferSize,
	WriteBufferSize:   WriteBufferSize,
	EnableCompression: true,
}

// sendErrorAndClose sends an error message via WebSocket then closes the connection
func sendErrorAndClose(ws *websocket.Conn, msg string) {
	data, _ := json.Marshal(map[string]string{"t": "e", "m": msg})
	_ = ws.WriteMessage(websocket.TextMessage, data)
	ws.Close()
}

// clientIP extracts the client IP, honouring X-Forwarded-For from reverse proxies
func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// newWSHandler upgrades viewers, sends the welcome and current state, and
// runs the read loop until the client disconnects.
func newWSHandler(world *World, conns *ConnManager, limiter *ipRateLimiter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)

		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("ws upgrade error: %v", err)
			return
		}

		// Check limits after upgrade so client can receive error messages
		if conns.Count() >= MaxPlayers {
			sendErrorAndClose(ws, "Server full. Please try again later.")
			return
		}
		if !limiter.allow(ip) {
			sendErrorAndClose(ws, "Too many connections. Please wait a moment.")
			return
		}

		ws.EnableWriteCompression(true)

		conn := NewConn(ws)
		conns.Add(conn)
		log.Printf("player connected: %s", conn.ID)

		// Welcome first so the client knows the board size, then the board itself
		frame := world.Frame()
		if err := conn.Send(newWelcomeMsg(conn.ID, frame, world.TickMS())); err != nil {
			log.Printf("welcome to %s failed: %v", conn.ID, err)
		}
		if err := conn.Send(newStateMsg(frame)); err != nil {
			log.Printf("initial state to %s failed: %v", conn.ID, err)
		}

		onDisconnect := func(c *Conn) {
			conns.Remove(c.ID)
			log.Printf("player disconnected: %s", c.ID)
		}

		// Blocking read loop — runs until client disconnects
		conn.ReadLoop(onDisconnect)
	}
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	autopilot := envBool(EnvAutopilot)
	world := NewWorld(autopilot)
	conns := NewConnManager()
	loop := NewGameLoop(world, conns)
	limiter := newIPRateLimiter(ctx, IPCooldownSec*time.Second)

	mux := http.NewServeMux()
	mux.HandleFunc(WebSocketPath, newWSHandler(world, conns, limiter))

	// Serve static client files
	staticDir := StaticDir
	if env := os.Getenv(EnvStaticDir); env != "" {
		staticDir = env
	}
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))

	addr := ServerPort
	if env := os.Getenv(EnvAddr); env != "" {
		addr = env
	}
	srv := &http.Server{Addr: addr, Handler: mux}

	// Start game loop in background
	go loop.Run(ctx)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		conns.CloseAll()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	frame := world.Frame()
	log.Printf("server listening on %s (board %dx%d, game %s, autopilot=%v)",
		addr, frame.Board.Width, frame.Board.Height, frame.GameID, autopilot)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
}
