package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/forceviz/forceviz/ingest"
	"github.com/forceviz/forceviz/input"
	"github.com/forceviz/forceviz/physics"
	"github.com/forceviz/forceviz/render"
)

func vec(x, y float64) r2.Vec {
	return r2.Vec{X: x, Y: y}
}

func testOptions() Options {
	return Options{
		Port:         0,
		TPS:          30,
		Width:        640,
		Height:       480,
		VertexRadius: 8,
		Charge:       physics.DefaultCharge,
		Stiffness:    physics.DefaultStiffness,
		Seed:         42,
		Edges:        ingest.Sample(),
	}
}

func TestIndexServesCanvasPage(t *testing.T) {
	srv := httptest.NewServer(New(testOptions()).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}

func TestSocketStreamsFrames(t *testing.T) {
	srv := httptest.NewServer(New(testOptions()).Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var frame render.Frame
	require.NoError(t, conn.ReadJSON(&frame))

	sample := ingest.Sample()
	assert.Len(t, frame.Segments, len(sample))
	assert.NotEmpty(t, frame.Rings)
}

func TestSocketAcceptsEvents(t *testing.T) {
	srv := httptest.NewServer(New(testOptions()).Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(wireEvent{Type: "wheel", Delta: -250, X: 320, Y: 240}))
	// A malformed event is logged and dropped, not fatal.
	require.NoError(t, conn.WriteJSON(wireEvent{Type: "bogus"}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var frame render.Frame
	require.NoError(t, conn.ReadJSON(&frame))
	require.NoError(t, conn.ReadJSON(&frame))
}

func TestWireEventDecode(t *testing.T) {
	cases := []struct {
		wire wireEvent
		want input.Event
	}{
		{
			wireEvent{Type: "down", Button: 0, Modifiers: 1, X: 10, Y: 20},
			input.PointerDown{Button: input.ButtonPrimary, Modifiers: input.ModShift,
				Pos: vec(10, 20)},
		},
		{
			wireEvent{Type: "up", Button: 0, X: 10, Y: 20},
			input.PointerUp{Button: input.ButtonPrimary, Pos: vec(10, 20)},
		},
		{
			wireEvent{Type: "move", X: 1, Y: 2},
			input.PointerMove{Pos: vec(1, 2)},
		},
		{
			wireEvent{Type: "wheel", Delta: 120, X: 5, Y: 6},
			input.Wheel{Delta: 120, Pos: vec(5, 6)},
		},
		{
			wireEvent{Type: "rotate", Delta: 0.2, X: 5, Y: 6},
			input.Rotate{Delta: 0.2, Pos: vec(5, 6)},
		},
	}
	for _, c := range cases {
		got, err := c.wire.decode()
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}

	_, err := wireEvent{Type: "pinch"}.decode()
	assert.Error(t, err)
}
