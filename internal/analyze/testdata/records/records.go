package records

// Pagination selects a page of results.
//
//gql:input name=Paging
type Pagination struct {
	// Limit caps the number of results.
	Limit  int `gql:",default=10" validate:"value > 0"`
	Offset *int // number of skipped results
	After  string `gql:"cursor"`
	_      struct{}
	Tags   []string `gql:",default=[]string{\"a\", \"b\"}"`
}

//gql:input rename_fields=snake_case
type Filter struct {
	Pagination
	SortKey string
	Desc    bool   `gql:",default"`
	Window  Window `gql:",flatten"`
	Created Nested
}

//gql:input
type Window struct {
	From, To int
}

type (
	// Nested is declared in a group.
	//gql:input internal
	Nested struct {
		ID    string `gql:"id"`
		Count uint8  `gql:",default_with=DefaultCount"`
	}

	Plain struct {
		X int
	}
)

func DefaultCount() uint8 { return 3 }
