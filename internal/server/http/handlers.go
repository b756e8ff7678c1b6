package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"draughts/internal/draughts"
	"draughts/internal/server/game"
	"draughts/internal/strategy"
)

// Handler 提供 /api/* 与 /ws/* 的处理函数
type Handler struct {
	games      *game.Manager
	hub        *Hub
	strategies map[strategy.Kind]strategy.Strategy
	fallback   strategy.Kind
}

// NewHandler 创建处理器；fallback 是 ai_move 未指定策略时使用的策略
func NewHandler(games *game.Manager, fallback strategy.Kind) (*Handler, error) {
	h := &Handler{
		games:      games,
		hub:        NewHub(),
		strategies: make(map[strategy.Kind]strategy.Strategy),
		fallback:   fallback,
	}
	for _, k := range strategy.Kinds() {
		s, err := strategy.New(k, 0)
		if err != nil {
			return nil, err
		}
		h.strategies[k] = s
	}
	if _, ok := h.strategies[fallback]; !ok {
		return nil, strategy.ErrUnknownStrategy
	}
	return h, nil
}

func (h *Handler) Hub() *Hub { return h.hub }

func (h *Handler) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]bool{"ok": true})
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.Variant == "" {
		req.Variant = draughts.Standard.String()
	}
	s, err := h.games.NewGame(req.Variant, req.FEN)
	if err != nil {
		writeError(w, err)
		return
	}
	log.Printf("[server] new game %s (%s)", s.ID, req.Variant)
	writeJSON(w, stateFor(s))
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	s, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}

	err = s.Update(func(g *draughts.Game) error {
		if g.IsOver() {
			return errGameOver
		}
		if strings.EqualFold(req.Notation, "steps") {
			return g.PushStep(strings.TrimSpace(req.Move))
		}
		m, err := g.ParseMove(req.Notation, req.Move)
		if err != nil {
			return err
		}
		return g.Apply(m)
	})
	if err != nil {
		writeError(w, err)
		return
	}
	state := stateFor(s)
	h.hub.Publish(s.ID, "state", state)
	writeJSON(w, state)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	s, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, stateFor(s))
}

func (h *Handler) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req AiMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	kind := h.fallback
	if req.Strategy != "" {
		k, err := strategy.Parse(req.Strategy)
		if err != nil {
			writeError(w, err)
			return
		}
		kind = k
	}
	s, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}

	var played MoveDTO
	err = s.Update(func(g *draughts.Game) error {
		if g.IsOver() {
			return errGameOver
		}
		m, err := h.strategies[kind].Choose(g)
		if err != nil {
			return err
		}
		pdn, err := g.ToPDN(m)
		if err != nil {
			return err
		}
		played = MoveDTO{
			Li:       draughts.ToLi(m),
			Hub:      draughts.ToHub(m),
			PDN:      pdn,
			Steps:    draughts.LiSteps(m),
			Captured: m.Captured,
		}
		return g.Apply(m)
	})
	if err != nil {
		writeError(w, err)
		return
	}
	state := stateFor(s)
	h.hub.Publish(s.ID, "state", state)
	writeJSON(w, AiMoveResponse{Strategy: kind.String(), Move: played, State: state})
}

var errGameOver = errors.New("game is over")

// writeError 把领域错误映射成状态码
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, draughts.ErrIllegalMove),
		errors.Is(err, draughts.ErrMalformedNotation),
		errors.Is(err, draughts.ErrUnknownVariant),
		errors.Is(err, draughts.ErrInvalidFEN),
		errors.Is(err, strategy.ErrUnknownStrategy):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, errGameOver), errors.Is(err, strategy.ErrNoMoves):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Printf("[server] internal error: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
