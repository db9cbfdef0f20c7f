package stats

import (
	"sync"
	"time"
)

type Stats struct {
	Frames         uint64  `json:"frames"`
	FPS            uint64  `json:"fps"`
	Uptime         float64 `json:"uptime"`
	TextureUploads uint64  `json:"texture_upload_bytes"`
	DrawCalls      uint64  `json:"draw_calls"`
	DrawCallsFrame uint64  `json:"draw_calls_per_frame"`
	WsClients      int     `json:"ws_clients"`
}

type CameraState struct {
	Position [3]float32 `json:"position"`
	Front    [3]float32 `json:"front"`
	Yaw      float32    `json:"yaw"`
	Pitch    float32    `json:"pitch"`
	Fov      float32    `json:"fov"`
}

// Collector is written by the render thread and read by the debug API.
type Collector struct {
	mu     sync.Mutex
	stats  Stats
	camera CameraState

	frameCounter  uint64
	frameTimer    time.Time
	lastDrawCalls uint64
	start         time.Time
}

func New() *Collector {
	now := time.Now()
	return &Collector{start: now, frameTimer: now}
}

// Update counts one frame. textureUploads and drawCalls are running
// totals.
func (c *Collector) Update(textureUploads, drawCalls uint64) {
	c.update(time.Now(), textureUploads, drawCalls)
}

func (c *Collector) update(now time.Time, textureUploads, drawCalls uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.frameCounter++
	c.stats.Frames++
	if now.Sub(c.frameTimer) >= time.Second {
		c.stats.FPS = c.frameCounter
		c.frameCounter = 0
		c.frameTimer = now
	}

	c.stats.Uptime = now.Sub(c.start).Seconds()
	c.stats.TextureUploads = textureUploads
	c.stats.DrawCallsFrame = drawCalls - c.lastDrawCalls
	c.stats.DrawCalls = drawCalls
	c.lastDrawCalls = drawCalls
}

func (c *Collector) SetCamera(state CameraState) {
	c.mu.Lock()
	c.camera = state
	c.mu.Unlock()
}

func (c *Collector) AddWsClients(delta int) {
	c.mu.Lock()
	c.stats.WsClients += delta
	c.mu.Unlock()
}

func (c *Collector) Snapshot() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

func (c *Collector) Camera() CameraState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.camera
}
