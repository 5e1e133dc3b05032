package pipeline

// DefaultTitlesPerDocument is the number of title sections per document.
const DefaultTitlesPerDocument = 3

// Card is one rendered segment ready to be placed in a document.
type Card struct {
	Segment string // rendered inline HTML the card was filled from
	Title   bool   // opens a title section
	HTML    string // filled snippet
}

// Batch is the ordered list of cards flushed into one document.
type Batch struct {
	Index int
	Cards []Card
}

// AssemblyState is the batching state threaded through Step.
// The zero value is the initial state.
type AssemblyState struct {
	Pending   []Card
	Documents int // batches flushed so far
	Titles    int // title cards appended so far
}

// Step appends card to the pending batch. When card opens a title section,
// the pending batch is non-empty, and the titles seen so far are a multiple
// of titlesPerDocument, the pending batch is flushed first and returned.
// titlesPerDocument <= 0 selects DefaultTitlesPerDocument.
func Step(state AssemblyState, card Card, titlesPerDocument int) (AssemblyState, *Batch) {
	if titlesPerDocument <= 0 {
		titlesPerDocument = DefaultTitlesPerDocument
	}

	var flushed *Batch
	if card.Title && len(state.Pending) > 0 && state.Titles%titlesPerDocument == 0 {
		flushed = &Batch{Index: state.Documents, Cards: state.Pending}
		state.Pending = nil
		state.Documents++
	}

	state.Pending = append(state.Pending, card)
	if card.Title {
		state.Titles++
	}
	return state, flushed
}

// Finish flushes whatever is pending. It returns nil for an empty state.
func Finish(state AssemblyState) (AssemblyState, *Batch) {
	if len(state.Pending) == 0 {
		return state, nil
	}
	flushed := &Batch{Index: state.Documents, Cards: state.Pending}
	state.Pending = nil
	state.Documents++
	return state, flushed
}

// Assemble groups cards into batches, preserving order.
func Assemble(cards []Card, titlesPerDocument int) []Batch {
	var (
		state   AssemblyState
		batches []Batch
		flushed *Batch
	)
	for _, c := range cards {
		state, flushed = Step(state, c, titlesPerDocument)
		if flushed != nil {
			batches = append(batches, *flushed)
		}
	}
	if _, flushed = Finish(state); flushed != nil {
		batches = append(batches, *flushed)
	}
	return batches
}
