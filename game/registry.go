package game

import "math/rand"

var palette = []string{
	"#FF5733", "#33FF57", "#3357FF", "#FF33A8",
	"#33A8FF", "#A833FF", "#FFA833", "#33FFA8",
}

// playerState is the per-connection game state owned by the session actor.
// The Player handle it wraps is only used for outbound delivery.
type playerState struct {
	player            Player
	id                string
	username          string
	color             string
	score             int
	isDrawing         bool
	hasGuessedCorrect bool
}

// registry holds the ordered membership. Insertion order is significant: it
// is the drawer rotation order.
type registry struct {
	players []*playerState
}

func newRegistry() *registry {
	return &registry{players: make([]*playerState, 0, 8)}
}

func (r *registry) add(p Player) *playerState {
	ps := &playerState{
		player:   p,
		id:       p.Id(),
		username: p.Username(),
		color:    r.assignColor(),
	}
	r.players = append(r.players, ps)
	return ps
}

// assignColor picks the first unused palette entry, or a random one once the
// palette is exhausted.
func (r *registry) assignColor() string {
	used := make(map[string]bool, len(r.players))
	for _, p := range r.players {
		used[p.color] = true
	}
	for _, color := range palette {
		if !used[color] {
			return color
		}
	}
	return palette[rand.Intn(len(palette))]
}

func (r *registry) remove(id string) *playerState {
	for i, p := range r.players {
		if p.id == id {
			r.players = append(r.players[:i], r.players[i+1:]...)
			return p
		}
	}
	return nil
}

func (r *registry) find(id string) *playerState {
	for _, p := range r.players {
		if p.id == id {
			return p
		}
	}
	return nil
}

func (r *registry) findByName(username string) *playerState {
	for _, p := range r.players {
		if p.username == username {
			return p
		}
	}
	return nil
}

func (r *registry) size() int {
	return len(r.players)
}

func (r *registry) resetForNewMatch() {
	for _, p := range r.players {
		p.score = 0
		p.isDrawing = false
		p.hasGuessedCorrect = false
	}
}

func (r *registry) resetFlagsForNewRound() {
	for _, p := range r.players {
		p.isDrawing = false
		p.hasGuessedCorrect = false
	}
}

// allNonDrawersGuessed reports whether every guessing player found the word.
// False when there is nobody to guess.
func (r *registry) allNonDrawersGuessed() bool {
	nonDrawers := 0
	for _, p := range r.players {
		if p.isDrawing {
			continue
		}
		nonDrawers++
		if !p.hasGuessedCorrect {
			return false
		}
	}
	return nonDrawers > 0
}

func (r *registry) summaries() []PlayerSummary {
	res := make([]PlayerSummary, 0, len(r.players))
	for _, p := range r.players {
		res = append(res, PlayerSummary{
			Username:  p.username,
			Score:     p.score,
			IsDrawing: p.isDrawing,
		})
	}
	return res
}
