// Package main provides the CLI entrypoint for optlist-canon.
//
// optlist-canon reads a JSON document (an array or an object) and
// prints its canonical opt list form:
//   - bare names become (name, no value) pairs
//   - a structured element following a name becomes that name's value
//   - -unique rejects repeated names
//   - -must restricts which structured kinds are accepted as values
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"

	"optlist-canon/options"
	"optlist-canon/optlist"
	"optlist-canon/value"
)

func main() {
	in := flag.String("in", "", "input file (default stdin)")
	moniker := flag.String("moniker", "input", "label used in error messages")
	unique := flag.Bool("unique", false, "reject repeated names")
	must := flag.String("must", "", "accepted value kinds, comma separated: sequence,mapping,callable,all")
	expand := flag.Bool("expand", false, "fold the result into a name-keyed mapping (implies -unique)")
	flag.Parse()

	if err := run(*in, *moniker, *unique, *must, *expand); err != nil {
		fmt.Fprintln(os.Stderr, "optlist-canon:", err)
		os.Exit(1)
	}
}

func run(in, moniker string, unique bool, must string, expand bool) error {
	raw, err := readInput(in)
	if err != nil {
		return err
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	input, err := value.FromAny(decoded)
	if err != nil {
		return fmt.Errorf("adapt input: %w", err)
	}

	switch k := value.KindOf(input); k {
	default:
		return fmt.Errorf("top-level JSON must be an array or an object, got %s", k)
	case value.KindSequence, value.KindMapping, value.KindAbsent:
	}

	mustBe, err := options.Parse(must)
	if err != nil {
		return err
	}

	if expand {
		m, err := optlist.Expand(input, moniker, mustBe)
		if err != nil {
			return err
		}

		spew.Dump(m)
		return nil
	}

	list, err := optlist.Canonicalize(input, moniker, unique, mustBe)
	if err != nil {
		return err
	}

	spew.Dump(list)
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path)
}
