// Command msgfn lists the functions in Go packages that can serve as
// msgscript methods, i.e. those assignable to msgscript.Method, and prints
// them as entries of a Slots literal.
//
//	msgfn -match '^native' ./internal
package main

import (
	"fmt"
	"go/token"
	"go/types"
	"io"
	"os"
	"regexp"
	"sort"

	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/tools/go/packages"
)

type options struct {
	match, ignore string
	msgscript     string
	snake         bool
}

func main() {
	if err := newCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "msgfn [flags] PACKAGE...",
		Short:         "List functions usable as msgscript methods",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts, args)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.match, "match", ".", "include only functions matching this regular expression")
	f.StringVar(&opts.ignore, "ignore", "$^", "exclude functions matching this regular expression")
	f.StringVar(&opts.msgscript, "msgscript", "github.com/zephyrtronium/msgscript", "import path for package msgscript")
	f.BoolVar(&opts.snake, "snake", false, "print slot names in snake_case instead of lowerCamelCase")
	return cmd
}

func run(w io.Writer, opts options, pkgs []string) error {
	mre, err := regexp.Compile(opts.match)
	if err != nil {
		return errors.Wrap(err, "compiling match")
	}
	ire, err := regexp.Compile(opts.ignore)
	if err != nil {
		return errors.Wrap(err, "compiling ignore")
	}

	fset := token.NewFileSet()
	config := packages.Config{Mode: packages.NeedName | packages.NeedTypes | packages.NeedImports, Fset: fset}
	loaded, err := packages.Load(&config, append([]string{opts.msgscript}, pkgs...)...)
	if err != nil {
		return errors.Wrap(err, "loading packages")
	}
	if packages.PrintErrors(loaded) > 0 {
		return errors.New("packages contain errors")
	}
	fn, err := methodType(loaded[0])
	if err != nil {
		return err
	}
	var results []string
	for _, pkg := range loaded[1:] {
		for _, name := range find(pkg.Types.Scope(), fn, mre, ire) {
			results = append(results, pkg.Name+"."+name)
		}
	}
	sort.Strings(results)
	for _, name := range results {
		fmt.Fprintf(w, "\t%q: msgscript.Method(%s),\n", slotName(name, mre, opts.snake), name)
	}
	return nil
}

// methodType finds the underlying type of Method in the msgscript package.
func methodType(pkg *packages.Package) (types.Type, error) {
	r := pkg.Types.Scope().Lookup("Method")
	if r == nil {
		return nil, errors.Errorf("%s has no definition of Method", pkg.Name)
	}
	t, ok := r.(*types.TypeName)
	if !ok {
		return nil, errors.Errorf("%s has incorrect definition of Method: %v", pkg.Name, r)
	}
	return t.Type().Underlying(), nil
}

// find lists the names in scope which are functions assignable to fn.
func find(scope *types.Scope, fn types.Type, mre, ire *regexp.Regexp) []string {
	var r []string
	for _, name := range scope.Names() {
		if !mre.MatchString(name) || ire.MatchString(name) {
			continue
		}
		if _, ok := scope.Lookup(name).(*types.Func); !ok {
			continue
		}
		if types.AssignableTo(scope.Lookup(name).Type(), fn) {
			r = append(r, name)
		}
	}
	return r
}

// slotName derives a slot name from a qualified function name, dropping the
// package and the part of the name which the match expression matched.
func slotName(qualified string, mre *regexp.Regexp, snake bool) string {
	name := qualified
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			name = name[i+1:]
			break
		}
	}
	if mre.String() != "." {
		if k := mre.FindStringIndex(name); k != nil && k[1] < len(name) {
			name = name[k[1]:]
		}
	}
	if snake {
		return strcase.ToSnake(name)
	}
	return strcase.ToLowerCamel(name)
}
