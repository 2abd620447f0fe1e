package game

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/EbukaAmadiObi/drawn-together/shared/logger"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRoundActive
	PhaseRoundEnding
	PhaseMatchOver
)

type Settings struct {
	MaxPlayers     int
	TotalRounds    int
	RoundSeconds   int
	RoundEndDelay  time.Duration
	MatchOverDelay time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		MaxPlayers:     8,
		TotalRounds:    3,
		RoundSeconds:   80,
		RoundEndDelay:  3 * time.Second,
		MatchOverDelay: 10 * time.Second,
	}
}

type clientEnvelope struct {
	packet ClientPacket
	from   Player
}

type joinRequest struct {
	player  Player
	errChan chan error
}

type sendTask struct {
	to   Player
	data []byte
}

// Session is the single authoritative game state machine. One goroutine
// (Run) owns every field; the exported methods only push onto channels.
// Handlers accumulate outbound work in sendTasks, flushed after each event,
// so delivery never blocks a state transition.
type Session struct {
	settings Settings
	clock    clockwork.Clock
	words    RandomWordGenerator
	registry *registry

	phase       Phase
	round       int
	currentWord string
	drawer      *playerState
	countdown   roundClock
	nextPhaseAt time.Time

	canvas string
	replay []json.RawMessage

	sendTasks []sendTask
	pingTasks []Player

	inbox    chan clientEnvelope
	joinReqs chan joinRequest
	removals chan Player
}

func NewSession(settings Settings, words RandomWordGenerator, clock clockwork.Clock) *Session {
	return &Session{
		settings: settings,
		clock:    clock,
		words:    words,
		registry: newRegistry(),
		phase:    PhaseIdle,
		inbox:    make(chan clientEnvelope, 1024),
		joinReqs: make(chan joinRequest),
		removals: make(chan Player, 64),
	}
}

// RequestJoin hands a connected player to the session actor and waits for
// the verdict (nil, ErrSessionFull or ErrNameTaken).
func (s *Session) RequestJoin(ctx context.Context, p Player) error {
	req := joinRequest{player: p, errChan: make(chan error, 1)}
	select {
	case s.joinReqs <- req:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-req.errChan:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run is the actor loop. All session state is touched exclusively from here.
func (s *Session) Run(ctx context.Context) {
	ticker := s.clock.NewTicker(time.Second)
	defer ticker.Stop()
	pingTicker := s.clock.NewTicker(30 * time.Second)
	defer pingTicker.Stop()

	logger.Info("Session actor started")

	for {
		select {
		case <-ctx.Done():
			return
		case req := <-s.joinReqs:
			s.handleJoin(req)
		case env := <-s.inbox:
			s.handleEnvelope(env)
		case p := <-s.removals:
			s.handleRemovePlayer(p)
		case <-ticker.Chan():
			s.handleTick(s.clock.Now())
		case <-pingTicker.Chan():
			s.handlePing()
		}
		s.flush()
	}
}

// flush delivers the accumulated outbound work. Failures are tolerated: a
// full outbox or dead connection resolves through the write pump's removal
// request, never here.
func (s *Session) flush() {
	for _, task := range s.sendTasks {
		if err := task.to.Send(task.data); err != nil {
			logger.Debugf("Dropping packet for %s: %v", task.to.Username(), err)
		}
	}
	for _, p := range s.pingTasks {
		if err := p.Ping(); err != nil {
			logger.Debugf("Dropping ping for %s: %v", p.Username(), err)
		}
	}
	s.sendTasks = nil
	s.pingTasks = nil
}

func (s *Session) notifyOne(p Player, data []byte) {
	s.sendTasks = append(s.sendTasks, sendTask{to: p, data: data})
}

func (s *Session) notifyAll(data []byte) {
	for _, ps := range s.registry.players {
		s.sendTasks = append(s.sendTasks, sendTask{to: ps.player, data: data})
	}
}

func (s *Session) notifyOthers(except *playerState, data []byte) {
	for _, ps := range s.registry.players {
		if ps == except {
			continue
		}
		s.sendTasks = append(s.sendTasks, sendTask{to: ps.player, data: data})
	}
}
