package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	treeval "github.com/reoring/treeval"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "check":
		checkCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "treeval CLI\n\nUsage:\n  treeval check [-dup replace|ignore|error] [-max-depth N] [-max-bytes N] [-yaml] [file]\n\nReads a JSON (or YAML with -yaml) document from file or stdin, materializes it\nwith the given parse policy, and reports every problem found.")
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var dup string
	var maxDepth int
	var maxBytes int64
	var asYAML bool
	fs.StringVar(&dup, "dup", "replace", "duplicate object key action: replace, ignore or error")
	fs.IntVar(&maxDepth, "max-depth", 0, "maximum nesting depth (0 = unlimited)")
	fs.Int64Var(&maxBytes, "max-bytes", 0, "maximum input size in bytes (0 = unlimited)")
	fs.BoolVar(&asYAML, "yaml", false, "treat the input as YAML")
	_ = fs.Parse(args)

	dupAction, err := parseDupAction(dup)
	if err != nil {
		fatalf("%v", err)
	}
	if asYAML && jsonOnlyFlagsSet(dupAction, maxDepth, maxBytes) {
		fatalf("-dup, -max-depth and -max-bytes apply to JSON input and cannot be combined with -yaml")
	}
	opt := treeval.DefaultOptions().
		WithOnDuplicateKey(dupAction).
		WithMaxDepth(maxDepth).
		WithMaxBytes(maxBytes)

	in, name, err := openInput(fs.Args())
	if err != nil {
		fatalf("%v", err)
	}
	defer in.Close()

	if asYAML {
		_, err = treeval.ParseYAMLReader(in)
	} else {
		_, err = treeval.ParseReader(in, opt)
	}
	if err != nil {
		report(name, err)
		os.Exit(1)
	}
	fmt.Printf("%s: ok\n", name)
}

// jsonOnlyFlagsSet reports whether any parse-policy flag deviates from its
// default. The YAML path decodes through yaml.v3 and takes none of them.
func jsonOnlyFlagsSet(dup treeval.DuplicateKeyAction, maxDepth int, maxBytes int64) bool {
	return dup != treeval.DuplicateKeyReplace || maxDepth != 0 || maxBytes != 0
}

func parseDupAction(s string) (treeval.DuplicateKeyAction, error) {
	switch s {
	case "replace":
		return treeval.DuplicateKeyReplace, nil
	case "ignore":
		return treeval.DuplicateKeyIgnore, nil
	case "error":
		return treeval.DuplicateKeyError, nil
	default:
		return 0, fmt.Errorf("unknown duplicate key action %q", s)
	}
}

func openInput(args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", err
	}
	return f, args[0], nil
}

func report(name string, err error) {
	if xe, ok := treeval.AsExtractionError(err); ok {
		for _, p := range xe.Problems() {
			where := p.Path().String()
			if where == "" {
				where = "(document)"
			}
			fmt.Fprintf(os.Stderr, "%s: at %s: %s\n", name, where, p.Message())
		}
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
