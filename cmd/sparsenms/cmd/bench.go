package cmd

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/MeKo-Tech/sparsenms"
	"github.com/MeKo-Tech/sparsenms/internal/common"
	"github.com/spf13/cobra"
)

// benchCmd represents the bench command.
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark sparse against naive suppression",
	Long: `Benchmark the sparse suppressor against the naive O(n²) reference on
synthetic clustered detections, and verify both return the same keep list.

Examples:
  sparsenms bench
  sparsenms bench --boxes 20000 --runs 10
  sparsenms bench --seed 7`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		nBoxes := cfg.Bench.Boxes
		if cmd.Flags().Changed("boxes") {
			nBoxes, _ = cmd.Flags().GetInt("boxes")
		}
		runs := cfg.Bench.Runs
		if cmd.Flags().Changed("runs") {
			runs, _ = cmd.Flags().GetInt("runs")
		}
		seed := cfg.Bench.Seed
		if cmd.Flags().Changed("seed") {
			seed, _ = cmd.Flags().GetInt64("seed")
		}
		iouThreshold := cfg.Suppression.IoUThreshold
		if cmd.Flags().Changed("iou-threshold") {
			iouThreshold, _ = cmd.Flags().GetFloat64("iou-threshold")
		}

		rng := rand.New(rand.NewSource(seed))
		boxes, scores := syntheticDetections(rng, nBoxes)
		suppressCfg := sparsenms.Config{IoUThreshold: iouThreshold, ScoreThreshold: 0.0}

		slog.Info("Benchmark starting", "boxes", nBoxes, "runs", runs, "iou_threshold", iouThreshold)

		sparse := common.NewTrials("sparse")
		naive := common.NewTrials("naive")
		for run := 0; run < runs; run++ {
			timer := common.NewTimer()
			keepSparse, err := sparsenms.Suppress(boxes, scores, suppressCfg)
			sparse.Add(timer.Stop())
			if err != nil {
				return fmt.Errorf("sparse run failed: %w", err)
			}

			timer = common.NewTimer()
			keepNaive, err := sparsenms.SuppressNaive(boxes, scores, suppressCfg)
			naive.Add(timer.Stop())
			if err != nil {
				return fmt.Errorf("naive run failed: %w", err)
			}

			if len(keepSparse) != len(keepNaive) {
				return fmt.Errorf("implementations disagree: sparse kept %d, naive kept %d",
					len(keepSparse), len(keepNaive))
			}
			for i := range keepSparse {
				if keepSparse[i] != keepNaive[i] {
					return fmt.Errorf("implementations disagree at position %d: sparse %d, naive %d",
						i, keepSparse[i], keepNaive[i])
				}
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, sparse.String())
		fmt.Fprintln(out, naive.String())
		fmt.Fprintf(out, "speedup: %.2fx\n", common.Speedup(naive, sparse))
		return nil
	},
}

// syntheticDetections generates clustered boxes resembling detector output,
// so suppression has realistic overlap structure.
func syntheticDetections(rng *rand.Rand, n int) ([][]float64, []float64) {
	const clusters = 64
	centers := make([][2]float64, clusters)
	for i := range centers {
		centers[i] = [2]float64{rng.Float64() * 4000, rng.Float64() * 4000}
	}

	boxes := make([][]float64, n)
	scores := make([]float64, n)
	for i := range boxes {
		c := centers[rng.Intn(clusters)]
		x := c[0] + rng.NormFloat64()*15
		y := c[1] + rng.NormFloat64()*15
		w := 20 + rng.Float64()*30
		h := 20 + rng.Float64()*30
		boxes[i] = []float64{x, y, x + w, y + h}
		scores[i] = rng.Float64()
	}
	return boxes, scores
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().Int("boxes", 10000, "number of synthetic boxes")
	benchCmd.Flags().Int("runs", 10, "number of timed runs per implementation")
	benchCmd.Flags().Int64("seed", 42, "random seed for the synthetic detections")
	benchCmd.Flags().Float64("iou-threshold", 0.5, "IoU threshold for both implementations")
}
