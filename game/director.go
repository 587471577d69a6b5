package game

// Director plays a game by driving its verbs.
type Director interface {
	// Init binds the director to a game
	Init(*Game)

	// Act performs a single action. It returns false when the game has ended
	// or no action was possible.
	Act() bool
}

// Play lets director act until the game ends, it runs out of moves, or
// maxActs actions were taken (0 means no limit). It returns the number of
// actions taken.
func Play(game *Game, director Director, maxActs int) int {
	director.Init(game)

	acts := 0
	for game.CanPlay() && (maxActs == 0 || acts < maxActs) {
		if !director.Act() {
			break
		}
		acts++
	}
	return acts
}
