// Package server exposes one human-vs-computer match over HTTP for the
// embedded browser front end. Shots and status are plain JSON; a websocket
// feed pushes shot events so the page can re-render without polling.
package server

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"battleship/internal/ai"
	"battleship/internal/app"
	"battleship/internal/codec"
	"battleship/internal/game"
	"battleship/web"
)

// Server owns the current session and the websocket subscribers.
type Server struct {
	rules game.Rules
	rng   *rand.Rand
	log   zerolog.Logger

	// The engine is strictly turn-sequential, so mu serializes every
	// session access: mutation, snapshotting, and the shared rng.
	mu   sync.Mutex
	sess *app.Session

	subMu    sync.Mutex
	subs     map[*websocket.Conn]bool
	upgrader websocket.Upgrader
}

// New builds a server and starts its first match.
func New(rules game.Rules, rng *rand.Rand, log zerolog.Logger) (*Server, error) {
	s := &Server{
		rules: rules,
		rng:   rng,
		log:   log,
		subs:  make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			// The GUI is served from this same process; any origin is fine.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.resetMatch(); err != nil {
		return nil, err
	}
	return s, nil
}

// resetMatch starts a fresh session. Callers hold s.mu.
func (s *Server) resetMatch() error {
	sess, err := app.NewSession(s.rules, ai.NewRandom(s.rng), s.rng, s.log)
	if err != nil {
		return err
	}
	s.sess = sess
	return nil
}

// Routes builds the chi router: JSON API under /v1, the embedded GUI at /.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLog)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/match", s.handleNewMatch)
		r.Post("/placement", s.handlePlacement)
		r.Post("/shoot", s.handleShoot)
		r.Get("/status", s.handleStatus)
		r.Get("/events", s.handleEvents)
	})

	r.Handle("/*", http.FileServer(web.Static()))
	return WithCORS(r)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

// === Handlers ===

func (s *Server) handleNewMatch(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	err := s.resetMatch()
	var st codec.Status
	if err == nil {
		st = s.statusPayload()
	}
	s.mu.Unlock()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handlePlacement(w http.ResponseWriter, r *http.Request) {
	var req codec.PlacementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("bad json"))
		return
	}
	s.mu.Lock()
	var err error
	if req.Auto {
		err = s.sess.AutoPlaceHumanFleet()
	} else {
		placements := make([]game.Placement, 0, len(req.Ships))
		for _, ship := range req.Ships {
			p := game.Placement{Name: ship.Name}
			for _, cell := range ship.Cells {
				p.Coords = append(p.Coords, cell.ToCoord())
			}
			placements = append(placements, p)
		}
		err = s.sess.PlaceHumanFleet(placements)
	}
	var st codec.Status
	if err == nil {
		st = s.statusPayload()
	}
	s.mu.Unlock()
	if err != nil {
		var pe *game.PlacementError
		switch {
		case errors.As(err, &pe):
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error":  pe.Detail,
				"reason": pe.Reason.String(),
			})
		case errors.Is(err, game.ErrFleetPlaced):
			writeError(w, http.StatusConflict, err)
		default:
			writeError(w, http.StatusInternalServerError, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleShoot(w http.ResponseWriter, r *http.Request) {
	var req codec.ShootRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("bad json"))
		return
	}
	s.mu.Lock()
	report, err := s.sess.HumanShot(req.Target.ToCoord())
	if err != nil {
		s.mu.Unlock()
		switch {
		case errors.Is(err, game.ErrShotOutOfBounds):
			writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, game.ErrMatchNotReady),
			errors.Is(err, game.ErrNotYourTurn),
			errors.Is(err, game.ErrGameFinished):
			writeError(w, http.StatusConflict, err)
		default:
			writeError(w, http.StatusInternalServerError, err)
		}
		return
	}
	resp := codec.ShootResponse{
		Human:  shotPayload(report.Human),
		Status: s.statusPayload(),
	}
	s.mu.Unlock()

	events := []codec.Event{{Type: "shot", Shot: &resp.Human}}
	if report.Computer != nil {
		p := shotPayload(*report.Computer)
		resp.Computer = &p
		events = append(events, codec.Event{Type: "shot", Shot: &p})
	}
	if report.State.Phase == game.Finished {
		events = append(events, codec.Event{Type: "finished", Winner: sideLabel(report.State.Winner)})
	}
	for _, evt := range events {
		s.broadcast(evt)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	st := s.statusPayload()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, st)
}

// === Websocket feed ===

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	s.subMu.Lock()
	s.subs[conn] = true
	s.subMu.Unlock()

	// Reader loop exists only to notice the peer going away.
	go func() {
		defer s.dropSubscriber(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *Server) dropSubscriber(conn *websocket.Conn) {
	s.subMu.Lock()
	delete(s.subs, conn)
	s.subMu.Unlock()
	_ = conn.Close()
}

func (s *Server) broadcast(evt codec.Event) {
	s.subMu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.subs))
	for conn := range s.subs {
		conns = append(conns, conn)
	}
	s.subMu.Unlock()
	for _, conn := range conns {
		if err := conn.WriteJSON(evt); err != nil {
			s.dropSubscriber(conn)
		}
	}
}

// === Payload building ===

// statusPayload snapshots the session. Callers hold s.mu.
func (s *Server) statusPayload() codec.Status {
	sess := s.sess
	state := sess.State()
	rules := sess.Rules()
	st := codec.Status{
		Match:  sess.ID,
		Phase:  state.Phase.String(),
		Width:  rules.Width,
		Height: rules.Height,
	}
	if state.Phase == game.InProgress {
		st.Active = sideLabel(state.Active)
	}
	if state.Phase == game.Finished {
		st.Winner = sideLabel(state.Winner)
	}

	fleet := sess.HumanFleetView()
	for row := 0; row < rules.Height; row++ {
		for col := 0; col < rules.Width; col++ {
			c := game.C(col, row)
			cell := codec.CellState{CellRef: codec.FromCoord(c)}
			if m, ok := fleet.MarkAt(c); ok {
				cell.State = "miss"
				if m == game.MarkHit {
					cell.State = "hit"
				}
			} else if name, ok := fleet.ShipAt(c); ok {
				cell.State = "ship"
				cell.Ship = name
			} else {
				continue
			}
			st.Fleet = append(st.Fleet, cell)
		}
	}

	targets := sess.HumanTargetView()
	for row := 0; row < rules.Height; row++ {
		for col := 0; col < rules.Width; col++ {
			c := game.C(col, row)
			m, ok := targets.MarkAt(c)
			if !ok {
				continue
			}
			mark := "miss"
			if m == game.MarkHit {
				mark = "hit"
			}
			st.Targets = append(st.Targets, codec.CellState{CellRef: codec.FromCoord(c), State: mark})
		}
	}
	return st
}

func shotPayload(rec app.ShotRecord) codec.ShotPayload {
	return codec.ShotPayload{
		Side:    sideLabel(rec.Side),
		Target:  codec.FromCoord(rec.Coord),
		Label:   rec.Coord.Label(),
		Outcome: rec.Result.Outcome.String(),
		Ship:    rec.Result.Ship,
	}
}

func sideLabel(side game.Side) string {
	if side == app.ComputerSide {
		return "computer"
	}
	return "human"
}

// === Middleware ===

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("request")
		next.ServeHTTP(w, r)
	})
}

// WithCORS allows the GUI to be developed off a separate origin.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
