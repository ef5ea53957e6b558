package model

// TagRef is a name-bearing tag reference in a todo payload
type TagRef struct {
	Name string `json:"name"`
}

// CreateTodoDTO is the payload for creating a todo. Owner and creation
// timestamp are never part of the payload; they come from the
// authenticated caller and the database respectively.
type CreateTodoDTO struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     *DateTime `json:"due_date"`
	Status      string    `json:"status"`
	Tags        []TagRef  `json:"tags"`
}

// UpdateTodoDTO is the payload for full or partial updates. Nil pointers
// mean the field was omitted; for tags an omitted field leaves the
// existing set untouched while an empty list clears it.
type UpdateTodoDTO struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	DueDate     *DateTime `json:"due_date"`
	Status      *string   `json:"status"`
	Tags        *[]TagRef `json:"tags"`
}
