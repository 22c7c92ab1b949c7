package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/geoknoesis/rdfpath/plan"
	"github.com/geoknoesis/rdfpath/rdf"
)

type walkOpts struct {
	planFile string
	prefixes map[string]string
	graph    string
	start    []string
	out      []string
	in       []string
	distinct bool
	list     string
}

var exampleWalk = `
  # names of everyone alice knows
  rdfwalk walk --data people.nq --prefix foaf=http://xmlns.com/foaf/0.1/ \
    --start '<http://example.org/alice>' --out foaf:knows --out foaf:givenName

  # run a plan file
  rdfwalk walk --data people.jsonld --plan friends.yaml
`

func newWalkCmd(root *rootOpts) *cobra.Command {
	opts := &walkOpts{}
	walkCmd := &cobra.Command{
		Use:   "walk",
		Short: "Walk the graph and print the reached values",
		Long: `Walk the graph from the start terms and print one value per line.

Without --plan the walk is built from flags: every --out step in order, then
every --in step in order, then --distinct, then --list.`,
		Example: exampleWalk,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.plan(root.v.GetString("plan"))
			if err != nil {
				return err
			}

			s := root.newSession()
			if err := s.load(cmd.Context()); err != nil {
				return err
			}
			logrus.Debugf("loaded %d quads", s.store.Size())

			terms, err := p.Run(s.store, plan.OptLogger(logrus.StandardLogger()))
			if err != nil {
				return errors.Wrap(err, "walk failed")
			}
			out := cmd.OutOrStdout()
			for _, t := range terms {
				fmt.Fprintln(out, rdf.Value(t))
			}
			return s.dumpMetrics(out)
		},
	}

	flags := walkCmd.Flags()
	flags.StringVarP(&opts.planFile, "plan", "p", "", "YAML plan file")
	flags.StringToStringVar(&opts.prefixes, "prefix", nil, "prefix declarations, e.g. foaf=http://xmlns.com/foaf/0.1/")
	flags.StringVarP(&opts.graph, "graph", "g", "", "restrict the walk to one graph")
	flags.StringArrayVarP(&opts.start, "start", "s", nil, "start term (repeatable)")
	flags.StringArrayVar(&opts.out, "out", nil, "follow a predicate forwards (repeatable)")
	flags.StringArrayVar(&opts.in, "in", nil, "follow a predicate backwards (repeatable)")
	flags.BoolVar(&opts.distinct, "distinct", false, "drop repeated results")
	flags.StringVar(&opts.list, "list", "", "follow a predicate and read the RDF list it points to")
	if err := root.v.BindPFlag("plan", flags.Lookup("plan")); err != nil {
		logrus.Errorf("failed to bind flag plan: %v", err)
	}
	return walkCmd
}

func (o *walkOpts) plan(planFile string) (*plan.Plan, error) {
	if planFile != "" {
		if len(o.out)+len(o.in) > 0 || o.list != "" || o.distinct {
			return nil, errors.New("--plan cannot be combined with step flags")
		}
		return plan.Load(planFile)
	}

	var steps []plan.Step
	for _, p := range o.out {
		steps = append(steps, plan.Step{Out: []string{p}})
	}
	for _, p := range o.in {
		steps = append(steps, plan.Step{In: []string{p}})
	}
	if o.distinct {
		steps = append(steps, plan.Step{Distinct: true})
	}
	if o.list != "" {
		steps = append(steps, plan.Step{List: o.list})
	}
	if len(steps) == 0 {
		return nil, errors.New("nothing to do, use --plan or at least one of --out, --in, --list")
	}
	return plan.New(plan.Plan{
		Prefixes: o.prefixes,
		Graph:    o.graph,
		Start:    o.start,
		Steps:    steps,
	})
}
