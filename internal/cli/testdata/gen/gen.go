package gen

// Search is the input of a search query.
//
//gql:input
type Search struct {
	Text  string
	Limit int `gql:",default=20" validate:"value <= 100"`
}
