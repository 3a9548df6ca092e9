// Package main provides the tinynet CLI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"slices"

	"github.com/born-ml/tinynet/internal/ranges"
	"github.com/born-ml/tinynet/internal/tensor"
	"github.com/born-ml/tinynet/nn"
)

const version = "v0.0.1-dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "tinynet: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stdout)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "tinynet %s\n", version)
		return nil
	case "quadratic":
		return quadratic(args[1:], stdout, stderr)
	case "help", "-h", "--help":
		usage(stdout)
		return nil
	default:
		usage(stderr)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "tinynet - fixed-topology feed-forward trainer")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version      Show version")
	fmt.Fprintln(w, "  quadratic    Fit x² + 2x + 3 with a [3, 1] linear network")
}

// quadratic trains a [3, 1] identity network on ([x², x, 1], [x² + 2x + 3])
// and prints the learned coefficients.
func quadratic(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("quadratic", flag.ContinueOnError)
	fs.SetOutput(stderr)
	epochs := fs.Int("epochs", 100, "Number of training epochs")
	checkpoints := fs.Int("checkpoints", 5, "Number of progress reports (0 = final epoch only)")
	lr := fs.Float64("lr", 0.01, "Learning rate")
	seed := fs.Uint64("seed", 0, "Weight initialization seed (0 = random)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	var src *rand.Rand
	if *seed != 0 {
		src = nn.SeededRand(*seed)
	}

	net, err := nn.New([]int{3, 1}, nn.Config[float64]{
		LearningRate: *lr,
		Activation:   nn.Identity[float64](),
		Rand:         src,
		Output:       stderr,
	})
	if err != nil {
		return fmt.Errorf("build network: %w", err)
	}

	xs := []float64{-2, -1, 0, 1, 2}
	data := ranges.Map(slices.Values(xs), func(x float64) nn.Sample[float64] {
		return nn.Sample[float64]{
			Input:  []float64{x * x, x, 1},
			Target: []float64{target(x)},
		}
	})

	net.Train(data, *epochs, *checkpoints)

	fmt.Fprintf(stdout, "weights: %s\n", tensor.Format(net.Weights()[0]))
	return nil
}

func target(x float64) float64 {
	return 1*x*x + 2*x + 3
}
