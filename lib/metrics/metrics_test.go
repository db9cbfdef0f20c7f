package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameMetrics(t *testing.T) {
	m := NewFrameMetrics("metrics-test")
	m.ObserveFrame(0.016, 4)
	m.ObserveFrame(0.017, 3)
	m.ShaderReloads.Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `glexamples_frames_rendered_total{example="metrics-test"} 2`)
	assert.Contains(t, string(body), `glexamples_draw_calls_total{example="metrics-test"} 7`)
	assert.Contains(t, string(body), `glexamples_shader_reloads_total{example="metrics-test"} 1`)
	assert.Contains(t, string(body), `glexamples_frame_seconds_count{example="metrics-test"} 2`)
	assert.Contains(t, string(body), `glexamples_frame_seconds_bucket{example="metrics-test",le="0.0167"} 1`)
}
