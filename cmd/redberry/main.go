package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pkg/errors"
	"golang.org/x/term"

	redberry "github.com/MovGP0/NRedberry-sub004"
	"github.com/MovGP0/NRedberry-sub004/expr"
	"github.com/MovGP0/NRedberry-sub004/transform"
)

func main() {
	log.SetFlags(0)
	var (
		inname, cfgname string
		field, trace    string
		nl, echo        bool
		given           []string
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&cfgname, "config", "", "YAML file with settings, constants and bindings")
	flag.StringVar(&field, "field", "", "number field, real or complex (default real)")
	flag.StringVar(&trace, "trace", "", "trace level, error, info or debug (default error)")
	flag.Func("given", "name=value symbol binding (any number of times)", func(s string) error {
		given = append(given, s)
		return nil
	})
	flag.BoolVar(&nl, "n", false, "parse separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.Parse()

	cfg, err := loadConfig(cfgname)
	if err != nil {
		log.Fatal(err)
	}
	for _, g := range given {
		if err := cfg.addGiven(g); err != nil {
			log.Fatal(err)
		}
	}
	if field != "" {
		cfg.Field = field
	}
	if trace != "" {
		cfg.Trace = trace
	}
	gtrace.CoreTracer = gologadapter.New()
	if err := setTraceLevel(cfg.Trace); err != nil {
		log.Fatal(err)
	}
	color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))

	in, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	var srcs []string
	if in != nil {
		srcs, err = readExprs(in, nl)
		if err != nil {
			log.Fatal(err)
		}
	}
	srcs = append(srcs, flag.Args()...)

	var failed int
	switch cfg.Field {
	case "real":
		failed, err = evaluate(redberry.RealParser, cfg, srcs, echo, os.Stdout, os.Stderr)
	case "complex":
		failed, err = evaluate(redberry.ComplexParser, cfg, srcs, echo, os.Stdout, os.Stderr)
	default:
		err = errors.Errorf("unknown field %q", cfg.Field)
	}
	if err != nil {
		log.Fatal(err)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		return f, nil
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}

// readExprs reads the whole input as one expression, or each non-blank line
// as one if lines is set.
func readExprs(in io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(in)
		if err != nil {
			return nil, errors.Wrap(err, "reading input")
		}
		return []string{strings.TrimRight(string(b), "\r\n")}, nil
	}
	var r []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			r = append(r, s)
		}
	}
	return r, errors.Wrap(sc.Err(), "reading input")
}

// evaluate parses each source into a tree over the field of newParser, binds
// the given symbols and simplifies. Results go to out and failures to errs.
// The error is for bad settings; failed counts expressions that did not
// evaluate.
func evaluate[T expr.Scalar](newParser func(...redberry.ParseOption[T]) *redberry.Parser[T], cfg *config, srcs []string, echo bool, out, errs io.Writer) (failed int, err error) {
	plain := newParser()
	consts := make(map[string]T, len(cfg.Constants))
	for name, s := range cfg.Constants {
		if !redberry.IsConstantName(name) {
			return 0, errors.Errorf("invalid constant name %q", name)
		}
		v, err := plain.Parse(s)
		if err != nil {
			return 0, errors.Wrapf(err, "constant %s", name)
		}
		consts[name] = v
	}
	numbers := newParser(redberry.Constants(consts))
	values := make(map[string]T, len(cfg.Given))
	for name, s := range cfg.Given {
		v, err := numbers.Parse(s)
		if err != nil {
			return 0, errors.Wrapf(err, "setting %s", name)
		}
		values[name] = v
	}

	trees := expr.NewParser(numbers)
	rules := transform.Sequence(transform.PostOrder(expr.Bind(values)), expr.Simplify(numbers))
	for _, src := range srcs {
		n, err := trees.Parse(src)
		if err != nil {
			report(errs, src, err, true)
			failed++
			continue
		}
		if echo {
			fmt.Fprintf(out, "%v : ", n)
		}
		r, err := expr.Apply(n, rules)
		if err != nil {
			report(errs, src, err, false)
			failed++
			continue
		}
		fmt.Fprintln(out, r)
	}
	return failed, nil
}

var errColor = color.New(color.FgRed)

// report writes an error. If caret is set, input errors also show the column
// of src they refer to.
func report(w io.Writer, src string, err error, caret bool) {
	errColor.Fprintln(w, err)
	var ie redberry.InputError
	if caret && errors.As(err, &ie) && !strings.ContainsRune(src, '\n') {
		fmt.Fprintf(w, "\t%s\n\t%s^\n", src, strings.Repeat(" ", ie.Pos()-1))
	}
}
