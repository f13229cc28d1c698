// Command zoidc is the front end for the Language: a streaming lexer,
// an arena-allocated recursive-descent parser, and a Hindley-Milner
// style lowering pass producing a typed HLIR ready for an external
// backend.
package main

import "github.com/zoid-lang/zoidc/cmd"

func main() {
	cmd.Execute()
}
