package crunch

// Snapshot contains the observable game state for determinism tests and
// the verify command. Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick       uint64
	Mode       int // 0=Campaign, 1=Endless
	LevelID    string
	Board      string // Layout text, top row first
	Score      int
	Target     int
	MovesLeft  int
	MovesUsed  int
	Stage      int
	Shuffles   int
	LegalSwaps int
	CursorC    int
	CursorR    int
	Selected   bool
	State      string
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		Mode:      int(g.mode),
		LevelID:   g.level.ID,
		Score:     g.score,
		Target:    g.target,
		MovesLeft: g.movesLeft,
		MovesUsed: g.movesUsed,
		Stage:     g.stage,
		Shuffles:  g.shuffles,
		CursorC:   g.cursor.Column,
		CursorR:   g.cursor.Row,
		Selected:  g.selection != nil,
		State:     g.state,
	}
	if g.board != nil {
		snap.Board = g.board.String()
		snap.LegalSwaps = len(g.board.LegalSwaps())
	}
	return snap
}

// Hash returns a hash of the snapshot for quick comparison.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Mode)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Target)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MovesLeft)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MovesUsed)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Stage)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shuffles)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LegalSwaps) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CursorC)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CursorR)    //#nosec G115 -- hash computation
	if snap.Selected {
		h = h*31 + 1
	}
	for _, s := range []string{snap.LevelID, snap.Board, snap.State} {
		for i := 0; i < len(s); i++ {
			h = h*31 + uint64(s[i])
		}
	}
	return h
}
