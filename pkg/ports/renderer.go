package ports

// Renderer draws playback instructions.
// Calls arrive from the playback timer, one at a time and never concurrently
// for the same scheduler. A returned error aborts the playback.
type Renderer interface {
	HighlightNode(node, style string) error
	MoveToken(node string) error
	ShowNarration(lines []string) error
	ShowFrontier(tokens []string) error
	ClearVisuals() error
}
