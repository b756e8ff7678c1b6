package httpserver

import (
	"draughts/internal/draughts"
	"draughts/internal/server/game"
)

// NewGameRequest 开新局；Variant 为空时用国际跳棋，FEN 为空时用初始局面
type NewGameRequest struct {
	Variant string `json:"variant"`
	FEN     string `json:"fen"`
}

// PlayRequest 走一步。Notation 为 "li"(默认)、"hub"、"pdn" 或 "steps"，
// "steps" 表示只走连吃中的一跳（"3223"）。
type PlayRequest struct {
	GameID   string `json:"game_id"`
	Move     string `json:"move"`
	Notation string `json:"notation"`
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

type AiMoveRequest struct {
	GameID   string `json:"game_id"`
	Strategy string `json:"strategy"` // 为空时用服务端默认策略
}

// 前端用的招法结构，同一步的三种记谱都给出
type MoveDTO struct {
	Li       string   `json:"li"`
	Hub      string   `json:"hub"`
	PDN      string   `json:"pdn"`
	Steps    []string `json:"steps"`
	Captured []int    `json:"captured,omitempty"`
}

type StateResponse struct {
	GameID            string    `json:"game_id"`
	Variant           string    `json:"variant"`
	Position          string    `json:"position"` // 盘面字符串
	FEN               string    `json:"fen"`      // lidraughts FEN
	ToMove            string    `json:"to_move"`
	LegalMoves        []MoveDTO `json:"legal_moves"`
	Pending           []string  `json:"pending,omitempty"` // 连吃中已走的步
	Status            string    `json:"status"`            // "ongoing" / "white_won" / "black_won" / "draw"
	History           []string  `json:"history"`
	HubHistory        []string  `json:"hub_history"`
	MovesSinceCapture int       `json:"moves_since_capture"`
}

type AiMoveResponse struct {
	Strategy string        `json:"strategy"`
	Move     MoveDTO       `json:"move"`
	State    StateResponse `json:"state"`
}

func movesToDTO(g *draughts.Game) []MoveDTO {
	legal := g.LegalMoves()
	pdns := g.PDNMoves()
	out := make([]MoveDTO, len(legal))
	for i, m := range legal {
		out[i] = MoveDTO{
			Li:       draughts.ToLi(m),
			Hub:      draughts.ToHub(m),
			PDN:      pdns[i],
			Steps:    draughts.LiSteps(m),
			Captured: m.Captured,
		}
	}
	return out
}

func statusOf(g *draughts.Game) string {
	if !g.IsOver() {
		return "ongoing"
	}
	switch g.Winner() {
	case draughts.White:
		return "white_won"
	case draughts.Black:
		return "black_won"
	}
	return "draw"
}

func stateOf(id string, g *draughts.Game) StateResponse {
	return StateResponse{
		GameID:            id,
		Variant:           g.Variant().String(),
		Position:          g.BoardString(),
		FEN:               g.LiFEN(),
		ToMove:            g.WhoseTurn().String(),
		LegalMoves:        movesToDTO(g),
		Pending:           draughts.LiSteps(g.Pending()),
		Status:            statusOf(g),
		History:           g.LiHistory(),
		HubHistory:        g.HubHistory(),
		MovesSinceCapture: g.MovesSinceCapture(),
	}
}

func stateFor(s *game.GameState) StateResponse {
	var resp StateResponse
	s.View(func(g *draughts.Game) { resp = stateOf(s.ID, g) })
	return resp
}
