package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/fosdem/glexamples/lib/api/docs"
	"github.com/fosdem/glexamples/lib/config"
	"github.com/fosdem/glexamples/lib/metrics"
	"github.com/fosdem/glexamples/lib/stats"
)

// @title			glexamples debug API
// @version		1.0
// @description	Live statistics and camera state of a running example.
// @BasePath		/
type Api struct {
	srv http.Server
	mux *http.ServeMux
	cfg *config.ApiCfg
	log *slog.Logger

	Stats *stats.Collector

	// PushInterval is how often websocket clients receive stats
	PushInterval time.Duration

	wsMu      sync.Mutex
	wsClients map[*websocket.Conn]bool
}

func New(cfg *config.ApiCfg, st *stats.Collector) *Api {
	a := &Api{
		mux:          http.NewServeMux(),
		cfg:          cfg,
		log:          slog.With("module", "api"),
		Stats:        st,
		PushInterval: 2 * time.Second,
		wsClients:    make(map[*websocket.Conn]bool),
	}
	a.srv.Addr = cfg.Bind
	a.srv.Handler = a.mux

	if cfg.EnableProfiler {
		a.mux.HandleFunc("/prof", a.profileCPU)
	}
	a.mux.HandleFunc("GET /api/stats", a.getStats)
	a.mux.HandleFunc("GET /api/camera", a.getCamera)
	a.mux.HandleFunc("/api/ws", a.handleWebsocket)
	a.mux.Handle("/metrics", metrics.Handler())
	a.mux.Handle("/swagger/", httpSwagger.WrapHandler)
	return a
}

func (a *Api) Handler() http.Handler {
	return a.mux
}

func (a *Api) Serve() error {
	a.log.Info("starting web server", "bind", a.cfg.Bind)
	err := a.srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (a *Api) Shutdown(ctx context.Context) error {
	a.wsMu.Lock()
	for ws := range a.wsClients {
		_ = ws.Close()
	}
	a.wsMu.Unlock()
	return a.srv.Shutdown(ctx)
}

// @Summary	Run a CPU profile for ten seconds
// @Router		/prof [get]
// @Tags		debug
// @Produce	octet-stream
// @Success	200
func (a *Api) profileCPU(w http.ResponseWriter, _ *http.Request) {
	err := pprof.StartCPUProfile(w)
	if err != nil {
		http.Error(w, fmt.Sprintf("Could not start CPU profile: %s", err), http.StatusInternalServerError)
		return
	}
	time.Sleep(10 * time.Second)
	pprof.StopCPUProfile()
}

// @Summary	Render loop statistics
// @Router		/api/stats [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	stats.Stats
func (a *Api) getStats(w http.ResponseWriter, _ *http.Request) {
	a.writeJSON(w, a.Stats.Snapshot())
}

// @Summary	Current camera position and orientation
// @Router		/api/camera [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	stats.CameraState
func (a *Api) getCamera(w http.ResponseWriter, _ *http.Request) {
	a.writeJSON(w, a.Stats.Camera())
}

func (a *Api) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		a.log.Error("could not write response", "err", err)
	}
}

// ServeInBackground starts the API when cfg is set and returns nil
// otherwise.
func ServeInBackground(cfg *config.ApiCfg, st *stats.Collector) *Api {
	if cfg == nil || cfg.Bind == "" {
		return nil
	}
	a := New(cfg, st)
	go func() {
		err := a.Serve()
		if err != nil {
			a.log.Error("web server stopped", "err", err)
		}
	}()
	return a
}
