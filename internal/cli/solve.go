package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

var (
	solveParallel bool
	solveRender   bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Print the farthest loop distance and the enclosed area",
	Long: `Solve a pipe maze read from a file, or from stdin when the file is
omitted or "-".

Example:
  pipeloop solve maze.txt
  pipeloop solve --render < maze.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&solveParallel, "parallel", false, "Try candidate start shapes concurrently")
	solveCmd.Flags().BoolVar(&solveRender, "render", false, "Print the maze with enclosed tiles marked I and open tiles O")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(cmd.ErrOrStderr(), verbose)

	in := cmd.InOrStdin()
	name := "stdin"
	if len(args) == 1 && args[0] != "-" {
		name = args[0]
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("failed to open maze: %w", err)
		}
		defer f.Close()
		in = f
	}

	g, err := pipegrid.Read(in)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	logger.Debug("maze parsed", "source", name, "width", g.Width(), "height", g.Height(), "start", g.Start().String())

	res, err := loop.Solve(g,
		loop.WithContext(ctx),
		loop.WithLogger(logger),
		loop.WithParallel(solveParallel),
	)
	if err != nil {
		return fmt.Errorf("failed to solve %s: %w", name, err)
	}

	return printResult(cmd.OutOrStdout(), res, solveRender)
}

func printResult(w io.Writer, res loop.Result, render bool) error {
	if _, err := fmt.Fprintf(w, "Farthest point: %d\nEnclosed area: %d\n", res.FarthestPoint, res.EnclosedArea); err != nil {
		return err
	}
	if render {
		if _, err := fmt.Fprintf(w, "\n%s", res.Loop.Render()); err != nil {
			return err
		}
	}
	return nil
}
