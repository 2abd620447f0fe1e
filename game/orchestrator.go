package game

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/EbukaAmadiObi/drawn-together/shared/logger"
)

func (s *Session) handleJoin(req joinRequest) {
	p := req.player

	if s.registry.size() >= s.settings.MaxPlayers {
		req.errChan <- ErrSessionFull
		return
	}
	if s.registry.findByName(p.Username()) != nil {
		req.errChan <- ErrNameTaken
		return
	}

	ps := s.registry.add(p)
	req.errChan <- nil
	logger.Infof("Player %s joined the game", ps.username)

	s.notifyOne(p, MakePacketAssignColor(ps.color))
	s.notifyOne(p, MakePacketGameJoined(s.settings.TotalRounds))

	// Mid-round catch-up for the canvas: the last raster snapshot if one
	// exists, otherwise the stroke log so far.
	if s.canvas != "" {
		s.notifyOne(p, MakePacketLoadCanvas(s.canvas))
	} else {
		for _, stroke := range s.replay {
			s.notifyOne(p, MakePacketDraw(stroke))
		}
	}

	s.notifyAll(MakePacketPlayersUpdate(s.registry.summaries()))
	s.notifyAll(MakePacketChatMessage(ps.username + " has joined the game"))

	if s.phase == PhaseIdle && s.registry.size() >= 2 {
		s.startRound()
	} else if s.phase == PhaseRoundActive {
		s.notifyOne(p, MakePacketTurnStart(s.round, false, s.drawer.username, "", len(s.currentWord)))
		s.notifyOne(p, MakePacketTimerUpdate(s.countdown.remaining()))
	}
}

// startRound resets per-round state, rotates the drawer, deals the word and
// arms the clock. With fewer than two players it resolves to Idle instead;
// once the rotation has completed enough passes it resolves to MatchOver.
func (s *Session) startRound() {
	if s.registry.size() < 2 {
		s.resetToIdle()
		return
	}

	s.registry.resetFlagsForNewRound()
	s.canvas = ""
	s.replay = nil

	next := nextDrawer(s.drawer, s.registry.players)
	if next == nil {
		s.resetToIdle()
		return
	}
	next.isDrawing = true
	s.drawer = next
	s.currentWord = s.words.Generate()

	if passCompleted(next, s.registry.players) {
		s.round++
	}
	if s.round > s.settings.TotalRounds {
		s.transitionToMatchOver()
		return
	}

	s.phase = PhaseRoundActive
	s.countdown.arm(s.settings.RoundSeconds)

	// turn-start differs per recipient: only the drawer sees the word.
	for _, ps := range s.registry.players {
		word := ""
		if ps == next {
			word = s.currentWord
		}
		s.notifyOne(ps.player, MakePacketTurnStart(s.round, ps == next, next.username, word, len(s.currentWord)))
	}
	s.notifyAll(MakePacketPlayersUpdate(s.registry.summaries()))

	logger.Infof("Round %d started, %s is drawing", s.round, next.username)
}

func (s *Session) handleTick(now time.Time) {
	switch s.phase {
	case PhaseRoundActive:
		remaining, expired := s.countdown.tick()
		s.notifyAll(MakePacketTimerUpdate(remaining))
		if expired {
			s.endRound()
			return
		}
		if s.registry.allNonDrawersGuessed() {
			s.endRound()
		}
	case PhaseRoundEnding:
		if !now.Before(s.nextPhaseAt) {
			s.startRound()
		}
	case PhaseMatchOver:
		if !now.Before(s.nextPhaseAt) {
			s.resetMatch()
		}
	}
}

// endRound reveals the word and schedules the next round.
func (s *Session) endRound() {
	s.countdown.cancel()
	s.notifyAll(MakePacketRoundEnd(s.currentWord, s.scoreEntries()))
	logger.Infof("Round %d over, the word was %q", s.round, s.currentWord)

	s.currentWord = ""
	if s.drawer != nil {
		s.drawer.isDrawing = false
	}
	s.phase = PhaseRoundEnding
	s.nextPhaseAt = s.clock.Now().Add(s.settings.RoundEndDelay)
}

func (s *Session) transitionToMatchOver() {
	s.countdown.cancel()
	s.currentWord = ""
	if s.drawer != nil {
		s.drawer.isDrawing = false
	}
	s.phase = PhaseMatchOver
	s.notifyAll(MakePacketGameOver(s.standings()))
	s.nextPhaseAt = s.clock.Now().Add(s.settings.MatchOverDelay)
	logger.Info("Match over, final standings sent")
}

// resetMatch clears everything after the match-over pause and, with enough
// players still around, rolls straight into a fresh match.
func (s *Session) resetMatch() {
	s.registry.resetForNewMatch()
	s.round = 0
	s.drawer = nil
	s.currentWord = ""
	s.canvas = ""
	s.replay = nil
	s.countdown.cancel()
	s.phase = PhaseIdle

	s.notifyAll(MakePacketPlayersUpdate(s.registry.summaries()))

	if s.registry.size() >= 2 {
		s.startRound()
	}
}

// resetToIdle is the degenerate-membership reset: scores and flags cleared,
// no round pending, waiting for players.
func (s *Session) resetToIdle() {
	s.countdown.cancel()
	s.phase = PhaseIdle
	s.round = 0
	s.drawer = nil
	s.currentWord = ""
	s.canvas = ""
	s.replay = nil
	s.registry.resetForNewMatch()

	s.notifyAll(MakePacketChatMessage("Waiting for more players to join..."))
	s.notifyAll(MakePacketPlayersUpdate(s.registry.summaries()))
}

func (s *Session) handleEnvelope(env clientEnvelope) {
	ps := s.registry.find(env.from.Id())
	if ps == nil {
		return
	}

	switch env.packet.Type {
	case PacketChatMessage:
		var text string
		if err := json.Unmarshal(env.packet.Data, &text); err != nil {
			return
		}
		s.handleChatMessage(ps, text)

	case PacketDraw:
		if !ps.isDrawing {
			return
		}
		s.replay = append(s.replay, env.packet.Data)
		s.notifyOthers(ps, MakePacketDraw(env.packet.Data))

	case PacketDrawEnd:
		if !ps.isDrawing {
			return
		}
		var snapshot string
		if err := json.Unmarshal(env.packet.Data, &snapshot); err != nil {
			return
		}
		s.canvas = snapshot
		s.notifyOthers(ps, MakePacketDrawEnd())

	case PacketClearCanvas:
		if !ps.isDrawing {
			return
		}
		s.canvas = ""
		s.replay = nil
		s.notifyOthers(ps, MakePacketClearCanvas())
	}
}

func (s *Session) handleChatMessage(ps *playerState, text string) {
	if checkGuess(ps, s.drawer, text, s.currentWord, s.countdown.remaining()) {
		s.notifyAll(MakePacketCorrectGuess(ps.username + " guessed the word!"))
		s.notifyAll(MakePacketPlayersUpdate(s.registry.summaries()))
		return
	}
	if leaksWord(ps, text, s.currentWord) {
		// local-only notice, the message never reaches the guessers
		s.notifyOne(ps.player, MakePacketWordBlocked())
		return
	}
	s.notifyAll(MakePacketChatMessage(ps.username + ": " + text))
}

func (s *Session) handleRemovePlayer(p Player) {
	ps := s.registry.remove(p.Id())
	p.CancelAndRelease()
	if ps == nil {
		// already gone, benign
		return
	}
	logger.Infof("Player %s left the game", ps.username)

	s.notifyAll(MakePacketChatMessage(ps.username + " has left the game"))
	s.notifyAll(MakePacketPlayersUpdate(s.registry.summaries()))

	if ps.isDrawing && s.phase == PhaseRoundActive {
		// Drawer gone mid-round: reveal, pause, then restart or reset
		// depending on who is left when the pause elapses.
		s.countdown.cancel()
		s.notifyAll(MakePacketWordReveal(s.currentWord))
		s.notifyAll(MakePacketChatMessage("The drawer left, round over"))
		s.currentWord = ""
		s.phase = PhaseRoundEnding
		s.nextPhaseAt = s.clock.Now().Add(s.settings.RoundEndDelay)
		return
	}

	if s.registry.size() < 2 && s.phase != PhaseIdle {
		s.resetToIdle()
	}
}

func (s *Session) handlePing() {
	for _, ps := range s.registry.players {
		s.pingTasks = append(s.pingTasks, ps.player)
	}
}

// scoreEntries returns scores in membership order (round summaries).
func (s *Session) scoreEntries() []ScoreEntry {
	entries := make([]ScoreEntry, 0, s.registry.size())
	for _, ps := range s.registry.players {
		entries = append(entries, ScoreEntry{Username: ps.username, Score: ps.score})
	}
	return entries
}

// standings returns scores sorted descending, stable on ties.
func (s *Session) standings() []ScoreEntry {
	entries := s.scoreEntries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries
}
