package evaluations

import "time"

// Evaluation is an immutable, append-only record of one resume evaluation.
// Suggestions holds the flattened strengths followed by weaknesses; Keywords
// holds the skills the model found.
type Evaluation struct {
	ID           string    `json:"id"`
	UserID       string    `json:"-"`
	FileName     string    `json:"fileName"`
	ATSScore     int       `json:"atsScore"`
	GrammarScore int       `json:"grammarScore"`
	Suggestions  []string  `json:"suggestions"`
	Keywords     []string  `json:"keywords"`
	CreatedAt    time.Time `json:"createdAt"`
}
