// Package errors provides coded, actionable errors for domsugar.
//
// Every error carries a code (e.g. "E201") registered with a category, a
// short message and a longer detail. The element builder itself never
// returns errors; coded errors only appear at the edges: the host style
// surface, tree document decoding, HTML rendering and configuration.
//
// # Usage
//
//	err := errors.New("E201").
//	    WithPath("children[2].props").
//	    WithSuggestion("props must be an object")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E201: Invalid tree node
//	//
//	//   children[2].props
//	//
//	//   Hint: props must be an object
package errors
