package dataset

// Record is a single row of an evaluation table: an identifier and its text.
type Record struct {
	ID   int64
	Text string
}

// Table holds an ordered evaluation table loaded from disk.
type Table struct {
	Path       string
	TextColumn string // the column the text was read from
	Records    []Record
}

// Len returns the number of records in the table.
func (t *Table) Len() int {
	return len(t.Records)
}

// Index builds an id -> text lookup. Duplicate ids resolve to the last
// occurrence in file order and the duplicate count is returned.
func (t *Table) Index() (map[int64]string, int) {
	index := make(map[int64]string, len(t.Records))
	duplicates := 0
	for _, r := range t.Records {
		if _, ok := index[r.ID]; ok {
			duplicates++
		}
		index[r.ID] = r.Text
	}
	return index, duplicates
}

// Direction identifies which way the generation task ran.
type Direction string

const (
	// DialogueToNote scores clinical notes generated from dialogues.
	DialogueToNote Direction = "dialogue-to-note"
	// NoteToDialogue scores dialogues generated from clinical notes.
	NoteToDialogue Direction = "note-to-dialogue"
)

// SubmissionColumns returns the accepted text column names for a submission
// file, in resolution order.
func (d Direction) SubmissionColumns() []string {
	if d == NoteToDialogue {
		return []string{"generated_dialogue", "dialogue"}
	}
	return []string{"generated_note", "note"}
}

// ReferenceColumns returns the accepted text column names for the ground
// truth file, in resolution order.
func (d Direction) ReferenceColumns() []string {
	if d == NoteToDialogue {
		return []string{"dialogue"}
	}
	return []string{"note"}
}
