package broken

//gql:input
type Broken struct {
	Ch             chan int
	M              map[string]int
	PP             **int
	NotObj         Plain  `gql:",flatten"`
	Ptr            *Inner `gql:",flatten"`
	BadLit         int    `gql:",default=\"x\""`
	BadSyntax      int    `gql:",default=1 +"`
	Undefined      int    `gql:",default=missing"`
	BadFactory     int    `gql:",default_with=takesArg"`
	QualFactory    int    `gql:",default_with=pkg.F"`
	BadValidator   int    `validate:"value >"`
	WrongValidator string `validate:"value > 0"`
	Fine           int
}

//gql:input
type Inner struct {
	X int
}

//gql:input
type Empty struct{}

//gql:input
type Scalar int

type Plain struct {
	X int
}

func takesArg(n int) int { return n }
