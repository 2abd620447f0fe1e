package game

import "encoding/json"

// Wire envelope, both directions: {"type": "...", "data": ...}.

type ClientPacket struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

const (
	// client -> server
	PacketChatMessage = "chat-message"
	PacketDraw        = "draw"
	PacketDrawEnd     = "draw-end"
	PacketClearCanvas = "clear-canvas"

	// server -> client
	PacketAssignColor   = "assign-color"
	PacketGameJoined    = "game-joined"
	PacketLoadCanvas    = "load-canvas"
	PacketPlayersUpdate = "players-update"
	PacketTurnStart     = "turn-start"
	PacketTimerUpdate   = "timer-update"
	PacketCorrectGuess  = "correct-guess"
	PacketWordReveal    = "word-reveal"
	PacketRoundEnd      = "round-end"
	PacketGameOver      = "game-over"
	PacketWordBlocked   = "word-blocked"
)

type PlayerSummary struct {
	Username  string `json:"username"`
	Score     int    `json:"score"`
	IsDrawing bool   `json:"isDrawing"`
}

type ScoreEntry struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}

type TurnStart struct {
	Round      int    `json:"round"`
	IsDrawing  bool   `json:"isDrawing"`
	DrawerName string `json:"drawerName"`
	Word       string `json:"word,omitempty"`
	WordLength int    `json:"wordLength"`
}

type RoundEnd struct {
	Word   string       `json:"word"`
	Scores []ScoreEntry `json:"scores"`
}

type GameOver struct {
	Scores []ScoreEntry `json:"scores"`
}

type GameJoined struct {
	TotalRounds int `json:"totalRounds"`
}

func makePacket(packetType string, data any) []byte {
	var raw json.RawMessage
	if data != nil {
		raw, _ = json.Marshal(data)
	}
	b, _ := json.Marshal(struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data,omitempty"`
	}{Type: packetType, Data: raw})
	return b
}

func MakePacketAssignColor(color string) []byte {
	return makePacket(PacketAssignColor, color)
}

func MakePacketGameJoined(totalRounds int) []byte {
	return makePacket(PacketGameJoined, GameJoined{TotalRounds: totalRounds})
}

func MakePacketLoadCanvas(snapshot string) []byte {
	return makePacket(PacketLoadCanvas, snapshot)
}

func MakePacketPlayersUpdate(players []PlayerSummary) []byte {
	return makePacket(PacketPlayersUpdate, players)
}

func MakePacketChatMessage(text string) []byte {
	return makePacket(PacketChatMessage, text)
}

func MakePacketTurnStart(round int, isDrawing bool, drawerName, word string, wordLength int) []byte {
	return makePacket(PacketTurnStart, TurnStart{
		Round:      round,
		IsDrawing:  isDrawing,
		DrawerName: drawerName,
		Word:       word,
		WordLength: wordLength,
	})
}

func MakePacketTimerUpdate(seconds int) []byte {
	return makePacket(PacketTimerUpdate, seconds)
}

func MakePacketDraw(data json.RawMessage) []byte {
	return makePacket(PacketDraw, data)
}

func MakePacketDrawEnd() []byte {
	return makePacket(PacketDrawEnd, nil)
}

func MakePacketClearCanvas() []byte {
	return makePacket(PacketClearCanvas, nil)
}

func MakePacketCorrectGuess(text string) []byte {
	return makePacket(PacketCorrectGuess, text)
}

func MakePacketWordReveal(word string) []byte {
	return makePacket(PacketWordReveal, word)
}

func MakePacketRoundEnd(word string, scores []ScoreEntry) []byte {
	return makePacket(PacketRoundEnd, RoundEnd{Word: word, Scores: scores})
}

func MakePacketGameOver(scores []ScoreEntry) []byte {
	return makePacket(PacketGameOver, GameOver{Scores: scores})
}

func MakePacketWordBlocked() []byte {
	return makePacket(PacketWordBlocked, nil)
}
