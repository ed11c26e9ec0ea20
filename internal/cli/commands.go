package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve START END",
		Short: MsgSolveShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solve(cmd, args[0], args[1])
		},
	}
}

// solve prints the welcome banner, builds the graph, searches, and prints
// the ladder or the no-solution line.
func (a *app) solve(cmd *cobra.Command, start, end string) error {
	defer a.flushMetrics()
	ctx := cmd.Context()

	a.printer.Welcome()
	s, err := a.newSolver(ctx)
	if err != nil {
		return err
	}

	var words []string
	var hops int
	var found bool
	err = a.printer.Spin(MsgSolving, func() error {
		sol, err := s.Solve(ctx, start, end)
		if err != nil {
			return err
		}
		log.Info().
			Str("query", sol.ID).
			Bool("found", sol.Found).
			Int("hops", sol.Hops).
			Int("visited", sol.Visited).
			Dur("elapsed", sol.Elapsed).
			Msg("Solved")
		words, hops, found = sol.Words, sol.Hops, sol.Found
		start, end = sol.Start, sol.End
		return nil
	})
	if err != nil {
		return err
	}

	if !found {
		a.printer.NoLadder(start, end)
		return nil
	}
	a.printer.Ladder(words, hops)
	return nil
}

func newNeighborsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors WORD",
		Short: MsgNeighborsShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.flushMetrics()
			s, err := a.newSolver(cmd.Context())
			if err != nil {
				return err
			}
			nbrs, err := s.Neighbors(args[0])
			if err != nil {
				return err
			}
			if len(nbrs) == 0 {
				a.printer.Line(MsgNoNeighbors, strings.ToLower(args[0]))
				return nil
			}
			for _, w := range nbrs {
				a.printer.Line("%s", w)
			}
			return nil
		},
	}
}

func newReachCmd(a *app) *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "reach WORD",
		Short: MsgReachShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.flushMetrics()
			s, err := a.newSolver(cmd.Context())
			if err != nil {
				return err
			}
			layers, err := s.Reach(cmd.Context(), args[0], depth)
			if err != nil {
				return err
			}
			for d, words := range layers {
				a.printer.Line(MsgReachLayer, d, strings.Join(words, " "))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 1, MsgFlagDepth)
	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: MsgStatsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.flushMetrics()
			s, err := a.newSolver(cmd.Context())
			if err != nil {
				return err
			}
			st := s.Stats()
			rows := [][]string{
				{"words", strconv.Itoa(st.Words)},
				{"word length", strconv.Itoa(st.WordLen)},
				{"links", strconv.Itoa(st.Edges)},
				{"components", strconv.Itoa(st.Components)},
				{"largest component", strconv.Itoa(st.Largest)},
				{"isolated words", strconv.Itoa(st.Isolated)},
				{"max neighbors", fmt.Sprintf("%d (%s)", st.MaxDegree, st.MaxDegreeOf)},
				{"build time", st.BuildTime.String()},
			}
			return a.printer.Table([]string{"metric", "value"}, rows)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		// version needs neither logging nor configuration
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersion, Version)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		PersistentPreRunE:     func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
