// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"

	"github.com/hamed0406/availmon/internal/config"
)

// preflight validates an endpoints file and prints the derived domain
// grouping without issuing a single probe.
func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	ok := func(msg string) { fmt.Println("✔", msg) }

	if len(os.Args) != 2 {
		fail("usage: preflight <endpoints.yaml>")
	}

	groups, err := config.LoadEndpoints(os.Args[1])
	if err != nil {
		fail(err.Error())
	}

	for _, g := range groups {
		ok(fmt.Sprintf("%s (%d endpoints)", g.Host, len(g.Endpoints)))
		for _, ep := range g.Endpoints {
			fmt.Printf("    %s %s  %s\n", ep.Request.Method, ep.Request.URL, ep.Name)
		}
	}
	ok(fmt.Sprintf("preflight passed: %d domains", len(groups)))
}
