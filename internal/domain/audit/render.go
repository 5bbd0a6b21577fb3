package audit

import "time"

type Rendered struct {
	Category Category
	Action   string
	Actor    string
	At       time.Time
	Note     string
}

// Render classifies each entry. The input order is kept as is; entries are expected
// to already be in write order, oldest first.
func Render(entries []Entry) []Rendered {
	out := make([]Rendered, len(entries))
	for i, e := range entries {
		out[i] = Rendered{
			Category: Classify(e.action),
			Action:   e.action,
			Actor:    e.actor,
			At:       e.at,
			Note:     e.note,
		}
	}
	return out
}
