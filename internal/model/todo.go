package model

// TodoItem is one entry in the to-do widget, persisted as part of the
// full list snapshot under the "todos" key.
type TodoItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}
