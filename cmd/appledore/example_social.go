// Social network: undirected friendships, introduction chains and friend circles.
//
// Scenario:
//
//	alice ─── bob
//	  │     ╱
//	carol ─┘── dave ─── erin

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/appledore/core"
	"github.com/katalvlaran/appledore/dfs"
)

func socialNetwork(w io.Writer) error {
	g, err := core.New[string, core.Unweighted](core.Undirected)
	if err != nil {
		return err
	}
	if err = g.AddVertex("alice", "bob", "carol", "dave", "erin"); err != nil {
		return err
	}
	for _, f := range [][2]string{
		{"alice", "bob"}, {"bob", "carol"}, {"carol", "alice"},
		{"carol", "dave"}, {"dave", "erin"},
	} {
		if err = g.AddUnweightedEdge(f[0], f[1]); err != nil {
			return err
		}
	}

	// Friendship is symmetric: both directions are always present.
	ab, err := g.HasEdge("alice", "bob")
	if err != nil {
		return err
	}
	ba, err := g.HasEdge("bob", "alice")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "alice↔bob: %t/%t\n", ab, ba)

	friends, err := g.Neighbors("carol")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "carol's friends: %s\n", strings.Join(friends, ", "))

	chains, err := dfs.AllPaths(g, "alice", "erin")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "introduction chains alice → erin:")
	for _, c := range chains {
		fmt.Fprintf(w, "  %s\n", strings.Join(c, " → "))
	}

	_, circles, err := dfs.DetectCycles(g)
	if err != nil {
		return err
	}
	for _, c := range circles {
		fmt.Fprintf(w, "friend circle: %s\n", strings.Join(c[:len(c)-1], ", "))
	}

	return nil
}
