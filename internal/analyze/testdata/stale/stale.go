package stale

//gql:input
type Thing struct {
	Name string
}
