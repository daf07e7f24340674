package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/HollowVault/keyhunt/internal/codec"
)

func runDecode(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(stderr)

	codecName := fs.String("codec", "", "Codec to decode with (see --list)")
	list := fs.Bool("list", false, "List registered codecs")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *list {
		tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tDESCRIPTION")
		for _, cd := range codec.List() {
			fmt.Fprintf(tw, "%s\t%s\n", cd.Name(), cd.Description())
		}
		if err := tw.Flush(); err != nil {
			fmt.Fprintf(stderr, "render codecs: %v\n", err)
			return 1
		}
		return 0
	}

	if *codecName == "" || fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: keyhuntctl decode --codec <name> <input>")
		return 2
	}

	cd, ok := codec.Get(*codecName)
	if !ok {
		fmt.Fprintf(stderr, "unknown codec %q (try --list)\n", *codecName)
		return 2
	}

	out, err := cd.Decode(context.Background(), fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "decode failed: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, out)
	return 0
}
