// Command genliteral emits a Go source file declaring a literal pattern's
// bytes and precomputed failure table as package-level array literals,
// for patterns known at build time.
//
// This is the zero-cost alternative to [linex.ConstPattern]'s lazy static
// holder: instead of computing the failure table at first use under a
// sync.Once, genliteral computes it once at build time and bakes the
// result directly into generated Go source, the way a language with a
// compile-time-evaluation facility would fold the computation in.
//
// Typical use, via go:generate:
//
//	//go:generate go run github.com/coregx/linex/cmd/genliteral -pattern=needle -var=Needle -package=search -out=needle_literal.go
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/coregx/linex/kmp"
	"github.com/dave/jennifer/jen"
)

func main() {
	pattern := flag.String("pattern", "", "the literal pattern to compile")
	varName := flag.String("var", "Literal", "identifier prefix for the generated bytes/failure vars")
	pkgName := flag.String("package", "main", "package name for the generated file")
	out := flag.String("out", "", "output file path (default: stdout)")
	flag.Parse()

	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "genliteral: -pattern is required")
		os.Exit(1)
	}

	if err := generate(*pattern, *varName, *pkgName, *out); err != nil {
		fmt.Fprintln(os.Stderr, "genliteral:", err)
		os.Exit(1)
	}
}

func generate(pattern, varName, pkgName, out string) error {
	b := []byte(pattern)
	failure := kmp.BuildFailure(b)

	f := jen.NewFile(pkgName)
	f.HeaderComment("Code generated by genliteral. DO NOT EDIT.")

	byteVals := make([]jen.Code, len(b))
	for i, c := range b {
		byteVals[i] = jen.Lit(int(c))
	}
	f.Var().Id(varName + "Bytes").Op("=").Index().Byte().Values(byteVals...)

	failureVals := make([]jen.Code, len(failure))
	for i, v := range failure {
		failureVals[i] = jen.Lit(v)
	}
	f.Var().Id(varName + "Failure").Op("=").Index().Int().Values(failureVals...)

	if out == "" {
		return f.Render(os.Stdout)
	}
	return f.Save(out)
}
