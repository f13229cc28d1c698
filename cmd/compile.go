package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zoid-lang/zoidc/internal/arena"
	"github.com/zoid-lang/zoidc/pkg/lowering"
	"github.com/zoid-lang/zoidc/pkg/parser"
)

// compile options. -I/-i/-L/-l are repeatable C-interop search paths
// carried over from the Language's original options surface; none of
// them drive any behavior here, since there is no backend yet to hand
// them to.
var (
	compileOutput      string
	compileIncludeDirs []string
	compileIncludes    []string
	compileLibDirs     []string
	compileLibs        []string
)

var compileCmd = &cobra.Command{
	Use:   "compile <input>",
	Short: "Lex, parse, and lower a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompile,
}

func init() {
	f := compileCmd.Flags()
	f.StringVarP(&compileOutput, "output", "o", "", "output path (unused, no backend)")
	f.StringArrayVarP(&compileIncludeDirs, "include-dir", "I", nil, "C header search path")
	f.StringArrayVarP(&compileIncludes, "include", "i", nil, "C header to include")
	f.StringArrayVarP(&compileLibDirs, "lib-dir", "L", nil, "native library search path")
	f.StringArrayVarP(&compileLibs, "lib", "l", nil, "native library to link")
}

func runCompile(cmd *cobra.Command, args []string) (err error) {
	input := args[0]
	source, readErr := os.ReadFile(input)
	if readErr != nil {
		fmt.Fprintf(os.Stderr, "zoidc: cannot read %s: %v\n", input, readErr)
		os.Exit(2)
	}

	// Lowering failures are fatal panics by design (spec's error taxonomy
	// treats them as internal bugs, not recoverable diagnostics); recover
	// once here and report them the same way a recorded Error diagnostic
	// would be reported.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "zoidc: internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	p := parser.New(arena.New(), input, string(source))
	program := p.Parse()

	for _, d := range p.Errors() {
		d.Render(os.Stderr)
	}
	if p.HasErrors() {
		os.Exit(1)
	}

	fmt.Println(program.PrettyPrint())

	ctx := lowering.New(program, string(source))
	ctx.Lower()

	fmt.Println("Done!")
	return nil
}
