package invalid

//gql:input
type Scalar int

//gql:input
type Empty struct{}

//gql:input nmae=Foo
type BadDirective struct {
	A int
}

//gql:input
type BadTag struct {
	A int `gql:",flaten"`
	B int
}

//gql:input
type Generic[T any] struct {
	V T
}

//gql:input
type Alias = Plain

//gql:input
type Unsupported struct {
	Ch         chan int
	M          map[string]int
	Plain      Plain `gql:",flatten"`
	Both       int   `gql:",default=1,default_with=one"`
	Bad        int   `validate:"value >"`
	BadDefault int   `gql:",default=1 +"`
}

type Plain struct {
	X int
}

func one() int { return 1 }
