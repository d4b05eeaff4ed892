package bf

// Example is a small reference program.
type Example struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Desc   string `json:"description"`
}

// Examples are the bundled demonstration programs.
var Examples = []Example{
	{Name: "reverse", Source: ",[>,]<[.<]", Desc: "Print the input, reversed."},
	{Name: "move", Source: ",[>+<-]", Desc: "Move data from a[0] to a[1]."},
	{Name: "ascii", Source: ".+[.+]", Desc: "Print the ASCII character set."},
}

// ExampleNames lists the example names in catalogue order.
func ExampleNames() []string {
	out := make([]string, len(Examples))
	for i, ex := range Examples {
		out[i] = ex.Name
	}
	return out
}
