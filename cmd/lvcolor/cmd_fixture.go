package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvcolor/builder"
	"github.com/katalvlaran/lvcolor/graph"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// fixture is a resolved topology request: what to build and how many vertices it needs.
type fixture struct {
	name  string
	size  int
	ctor  builder.Constructor
	bopts []builder.BuilderOption
}

func newFixtureCmds(opts *options) []*cobra.Command {
	single := func(use, short string, ctor func(int) builder.Constructor, size func(int) int) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <n>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := parseSize("n", args[0])
				if err != nil {
					return err
				}
				return runFixture(opts, fixture{
					name: fmt.Sprintf("%s(%d)", use, n),
					size: size(n),
					ctor: ctor(n),
				})
			},
		}
	}
	same := func(n int) int { return n }

	return []*cobra.Command{
		single("cycle", "Cycle C_n", builder.Cycle, same),
		single("path", "Path P_n", builder.Path, same),
		single("star", "Star K_{1,n-1} with hub \"Center\"", builder.Star, same),
		single("wheel", "Wheel W_n: rim C_{n-1} plus hub", builder.Wheel, same),
		single("complete", "Complete graph K_n", builder.Complete, same),
		newBipartiteCmd(opts),
		newGridCmd(opts),
		newRandomCmd(opts),
	}
}

func newBipartiteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "bipartite <n1> <n2>",
		Short: "Complete bipartite graph K_{n1,n2}",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n1, err := parseSize("n1", args[0])
			if err != nil {
				return err
			}
			n2, err := parseSize("n2", args[1])
			if err != nil {
				return err
			}
			return runFixture(opts, fixture{
				name: fmt.Sprintf("bipartite(%d,%d)", n1, n2),
				size: n1 + n2,
				ctor: builder.CompleteBipartite(n1, n2),
			})
		},
	}
}

func newGridCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "grid <rows> <cols>",
		Short: "rows×cols lattice with \"r,c\" vertex IDs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := parseSize("rows", args[0])
			if err != nil {
				return err
			}
			cols, err := parseSize("cols", args[1])
			if err != nil {
				return err
			}
			return runFixture(opts, fixture{
				name: fmt.Sprintf("grid(%d,%d)", rows, cols),
				size: rows * cols,
				ctor: builder.Grid(rows, cols),
			})
		},
	}
}

func newRandomCmd(opts *options) *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "random <n> <p>",
		Short: "Random sparse graph G(n,p)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseSize("n", args[0])
			if err != nil {
				return err
			}
			p, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("p: %w", err)
			}
			return runFixture(opts, fixture{
				name:  fmt.Sprintf("random(%d,%g,seed=%d)", n, p, seed),
				size:  n,
				ctor:  builder.RandomSparse(n, p),
				bopts: []builder.BuilderOption{builder.WithSeed(seed)},
			})
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 1, "RNG seed")
	return cmd
}

// runFixture builds fx, colors it and writes the report.
func runFixture(opts *options, fx fixture) error {
	capacity := opts.maxVertices
	if capacity == 0 {
		capacity = fx.size
	}
	if capacity > maxFixtureVertices {
		return fmt.Errorf("%s: %d vertices exceeds limit %d", fx.name, capacity, maxFixtureVertices)
	}
	log := opts.log.WithFields(logrus.Fields{
		"fixture":      fx.name,
		"max_vertices": capacity,
		"max_colors":   opts.maxColors,
	})

	g, err := builder.BuildGraph(capacity, opts.maxColors, fx.bopts, fx.ctor)
	if err != nil {
		return fmt.Errorf("build %s: %w", fx.name, err)
	}
	log.WithFields(logrus.Fields{
		"vertices": g.NumVertices(),
		"edges":    g.NumEdges(),
	}).Debug("graph built")

	k, err := g.ChromaticNumber()
	if err != nil {
		log.WithError(err).Debug("coloring failed")
		return fmt.Errorf("color %s: %w", fx.name, err)
	}
	log.WithField("chromatic", k).Debug("graph colored")

	return formatters[opts.format](opts.out, newReport(fx.name, g, k))
}

// maxFixtureVertices bounds fixture sizes; the adjacency matrix holds V² cells.
const maxFixtureVertices = 4096

func parseSize(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must be ≥ 0, got %d", name, n)
	}
	if n > maxFixtureVertices {
		return 0, fmt.Errorf("%s must be ≤ %d, got %d", name, maxFixtureVertices, n)
	}
	return n, nil
}

// vertexColor is one row of the coloring, in insertion order.
type vertexColor struct {
	Vertex string `json:"vertex"`
	Color  int    `json:"color"`
}

// report is the output document of every fixture command.
type report struct {
	Fixture   string        `json:"fixture"`
	Vertices  int           `json:"vertices"`
	Edges     int           `json:"edges"`
	MaxColors int           `json:"max_colors"`
	Chromatic int           `json:"chromatic"`
	Coloring  []vertexColor `json:"coloring"`
}

func newReport(name string, g *graph.Graph[string], k int) report {
	r := report{
		Fixture:   name,
		Vertices:  g.NumVertices(),
		Edges:     g.NumEdges(),
		MaxColors: g.MaxColors(),
		Chromatic: k,
		Coloring:  make([]vertexColor, 0, g.NumVertices()),
	}
	for _, v := range g.Vertices() {
		c, _ := g.Color(v)
		r.Coloring = append(r.Coloring, vertexColor{Vertex: v, Color: c})
	}
	return r
}
