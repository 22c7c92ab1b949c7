package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geoknoesis/rdfpath/rdf"
)

func newStatsCmd(root *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Short:   "Load the data files and print quad counts",
		Example: `rdfwalk stats --data people.nq --data places.jsonld`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := root.newSession()
			if err := s.load(cmd.Context()); err != nil {
				return err
			}

			graphs := make(map[string]int)
			var order []string
			for _, q := range s.store.Quads() {
				name := "(default)"
				if !q.InDefaultGraph() {
					name = q.G.String()
				}
				if _, ok := graphs[name]; !ok {
					order = append(order, name)
				}
				graphs[name]++
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "quads: %d\n", s.store.Size())
			for _, name := range order {
				fmt.Fprintf(out, "graph %s: %d\n", name, graphs[name])
			}
			fmt.Fprintf(out, "subjects with rdf:type: %d\n", distinctSubjects(s, rdf.RDFType))
			return s.dumpMetrics(out)
		},
	}
}

func distinctSubjects(s *session, pred rdf.IRI) int {
	seen := make(map[string]struct{})
	for _, q := range s.store.Match(nil, pred, nil, nil) {
		seen[rdf.Key(q.S)] = struct{}{}
	}
	return len(seen)
}
