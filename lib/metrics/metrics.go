package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FramesRendered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glexamples_frames_rendered_total",
		Help: "Total number of frames rendered",
	}, []string{"example"})
	DrawCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glexamples_draw_calls_total",
		Help: "Total number of draw calls issued",
	}, []string{"example"})
	ShaderReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glexamples_shader_reloads_total",
		Help: "Total number of shader hot reloads",
	}, []string{"example"})
	FrameSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "glexamples_frame_seconds",
		Help:    "Time between consecutive frames",
		Buckets: []float64{0.001, 0.004, 0.008, 0.0167, 0.025, 0.0333, 0.05, 0.1, 0.25},
	}, []string{"example"})
)

type FrameMetrics struct {
	FramesRendered prometheus.Counter
	DrawCalls      prometheus.Counter
	ShaderReloads  prometheus.Counter
	FrameSeconds   prometheus.Observer
}

func NewFrameMetrics(name string) FrameMetrics {
	m := FrameMetrics{
		FramesRendered: FramesRendered.WithLabelValues(name),
		DrawCalls:      DrawCalls.WithLabelValues(name),
		ShaderReloads:  ShaderReloads.WithLabelValues(name),
		FrameSeconds:   FrameSeconds.WithLabelValues(name),
	}
	m.FramesRendered.Add(0)
	m.DrawCalls.Add(0)
	m.ShaderReloads.Add(0)
	return m
}

func (m FrameMetrics) ObserveFrame(dt float64, drawCalls uint64) {
	m.FramesRendered.Inc()
	m.DrawCalls.Add(float64(drawCalls))
	m.FrameSeconds.Observe(dt)
}

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
