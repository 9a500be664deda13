package server

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"battleship/internal/codec"
	"battleship/internal/game"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	rules := game.Rules{Width: 3, Height: 3, Fleet: []game.ShipClass{{Name: "Destroyer", Length: 2}}}
	srv, err := New(rules, rand.New(rand.NewSource(5)), zerolog.Nop())
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestStatusBeforePlacement(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/v1/status")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	st := decode[codec.Status](t, resp)
	require.Equal(t, "awaiting-placement", st.Phase)
	require.Equal(t, 3, st.Width)
	require.Empty(t, st.Fleet)
	require.NotEmpty(t, st.Match)
}

func TestShootBeforePlacementConflicts(t *testing.T) {
	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/v1/shoot", codec.ShootRequest{Target: codec.CellRef{Col: 0, Row: 0}})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestAutoPlacementThenShoot(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/v1/placement", codec.PlacementRequest{Auto: true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	st := decode[codec.Status](t, resp)
	require.Equal(t, "in-progress", st.Phase)
	require.Equal(t, "human", st.Active)
	require.Len(t, st.Fleet, 2) // destroyer covers two cells

	resp = postJSON(t, ts.URL+"/v1/shoot", codec.ShootRequest{Target: codec.CellRef{Col: 0, Row: 0}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	shot := decode[codec.ShootResponse](t, resp)
	require.Equal(t, "human", shot.Human.Side)
	require.Equal(t, "A1", shot.Human.Label)
	require.Contains(t, []string{"miss", "hit", "sunk"}, shot.Human.Outcome)
	require.Len(t, shot.Status.Targets, 1)
}

func TestManualPlacementRejection(t *testing.T) {
	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/v1/placement", codec.PlacementRequest{
		Ships: []codec.ShipPlacement{{
			Name:  "Destroyer",
			Cells: []codec.CellRef{{Col: 2, Row: 0}, {Col: 3, Row: 0}}, // off a 3-wide board
		}},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[map[string]string](t, resp)
	require.Equal(t, "out-of-bounds", body["reason"])
}

func TestShootOutOfBounds(t *testing.T) {
	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/v1/placement", codec.PlacementRequest{Auto: true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, ts.URL+"/v1/shoot", codec.ShootRequest{Target: codec.CellRef{Col: 9, Row: 9}})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestParallelShotsAreSerialized(t *testing.T) {
	// The engine is single-threaded; the server must take requests in
	// turns rather than let two handlers mutate the grids at once. Run
	// distinct shots in parallel on a board big enough that the match
	// cannot finish: every request must resolve cleanly and every shot
	// must land exactly once.
	srv, err := New(game.DefaultRules(), rand.New(rand.NewSource(5)), zerolog.Nop())
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)

	resp := postJSON(t, ts.URL+"/v1/placement", codec.PlacementRequest{Auto: true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	const shots = 10
	var wg sync.WaitGroup
	codes := make([]int, shots)
	for i := 0; i < shots; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r := postJSON(t, ts.URL+"/v1/shoot", codec.ShootRequest{
				Target: codec.CellRef{Col: i, Row: 0},
			})
			codes[i] = r.StatusCode
			r.Body.Close()
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		require.Equal(t, http.StatusOK, code, "shot %d", i)
	}

	got, err := http.Get(ts.URL + "/v1/status")
	require.NoError(t, err)
	st := decode[codec.Status](t, got)
	require.Equal(t, "in-progress", st.Phase)
	require.Len(t, st.Targets, shots)
}

func TestNewMatchResets(t *testing.T) {
	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/v1/placement", codec.PlacementRequest{Auto: true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	first := decode[codec.Status](t, resp)

	resp = postJSON(t, ts.URL+"/v1/match", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	st := decode[codec.Status](t, resp)
	require.Equal(t, "awaiting-placement", st.Phase)
	require.NotEqual(t, first.Match, st.Match)
}
