package main

import (
	"fmt"
	"io"
	"runtime/debug"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func runVersion(stdout io.Writer) int {
	v := version
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
	}
	fmt.Fprintf(stdout, "%s %s\n", productName, v)
	return 0
}
