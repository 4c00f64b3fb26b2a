package game

// Director plays on the player's behalf. All methods are called from the
// goroutine driving the game.
type Director interface {
	/**
	 * Prepare for a freshly dealt board
	 */
	Init(*Board)

	/**
	 * Choose the next tile to select; false when there is nothing to do
	 */
	Act(*Session) (int, bool)

	/**
	 * Learn the face of a tile that was just turned up
	 */
	Observe(idx, pairID int)

	/**
	 * Stop acting; the board is gone
	 */
	End()
}
