package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/frequent/builder"
	"github.com/katalvlaran/frequent/config"
	"github.com/katalvlaran/frequent/core"
)

// Config keys consulted when the matching flag is not given.
const (
	keyGraphSeed = "graph.seed"
	keyGraphIDs  = "graph.ids"
)

// graphFlags holds the options of "graph build".
type graphFlags struct {
	seed   int64
	p      float64
	m      int
	ids    string
	weight float64
	asYAML bool
}

// topology maps a KIND argument to its constructor.
func topology(kind string, n int, f graphFlags) (builder.Constructor, error) {
	switch kind {
	case "path":
		return builder.Path(n), nil
	case "cycle":
		return builder.Cycle(n), nil
	case "star":
		return builder.Star(n), nil
	case "wheel":
		return builder.Wheel(n), nil
	case "complete":
		return builder.Complete(n), nil
	case "bipartite":
		return builder.CompleteBipartite(n, f.m), nil
	case "grid":
		return builder.Grid(n, f.m), nil
	case "random":
		return builder.RandomSparse(n, f.p), nil
	}

	return nil, fmt.Errorf("unknown graph kind %q (want %s)", kind, strings.Join(kinds(), ", "))
}

func kinds() []string {
	return []string{"path", "cycle", "star", "wheel", "complete", "bipartite", "grid", "random"}
}

func (a *app) newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Graph construction",
	}

	var f graphFlags
	build := &cobra.Command{
		Use:   "build KIND N",
		Short: "Build a topology and print its nodes and edges",
		Long: `Build a topology and print its node count, edge count and edge list.

KIND is one of: ` + strings.Join(kinds(), ", ") + `.
For bipartite and grid, N is the first dimension and --m the second.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBuildGraph(cmd, args, f)
		},
	}
	build.Flags().Int64Var(&f.seed, "seed", 1, "random seed (default from "+keyGraphSeed+")")
	build.Flags().Float64Var(&f.p, "p", 0.5, "edge probability for random")
	build.Flags().IntVar(&f.m, "m", 2, "second dimension for bipartite and grid")
	build.Flags().StringVar(&f.ids, "ids", builder.SchemeDecimal,
		"node naming: "+strings.Join(builder.IDSchemeNames(), ", ")+" (default from "+keyGraphIDs+")")
	build.Flags().Float64Var(&f.weight, "weight", core.DefaultEdgeWeight, "constant edge weight")
	build.Flags().BoolVar(&f.asYAML, "yaml", false, "print the whole graph as YAML")
	cmd.AddCommand(build)

	return cmd
}

func (a *app) runBuildGraph(cmd *cobra.Command, args []string, f graphFlags) error {
	kind := args[0]
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("N: %w", err)
	}

	if !cmd.Flags().Changed("seed") {
		if s, ok := asInt64(config.GlobalOr(keyGraphSeed, nil)); ok {
			f.seed = s
		}
	}
	if !cmd.Flags().Changed("ids") {
		if s, ok := config.GlobalOr(keyGraphIDs, nil).(string); ok {
			f.ids = s
		}
	}

	ids, err := builder.IDSchemeByName(f.ids)
	if err != nil {
		return err
	}
	ctor, err := topology(kind, n, f)
	if err != nil {
		return err
	}

	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithName(kind), core.WithLogger(a.log)},
		[]builder.BuilderOption{builder.WithIDScheme(ids), builder.WithSeed(f.seed), builder.WithConstantWeight(f.weight)},
		ctor,
	)
	if err != nil {
		return err
	}
	a.log.Debug("graph built",
		zap.String("kind", kind), zap.Int("nodes", g.Len()), zap.Int("edges", g.Edges().Len()))

	out := cmd.OutOrStdout()
	if f.asYAML {
		data, err := yaml.Marshal(g.ToMap())
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, string(data))
		return err
	}

	fmt.Fprintf(out, "nodes: %d\nedges: %d\n", g.Len(), g.Edges().Len())
	for p, e := range g.Edges().All() {
		fmt.Fprintf(out, "%s - %s %g\n", p.U, p.V, e.Weight())
	}

	return nil
}

// asInt64 converts numbers decoded from YAML or JSON config files.
func asInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int64:
		return t, true
	case float64:
		return int64(t), true
	}

	return 0, false
}
