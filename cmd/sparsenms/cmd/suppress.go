package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/MeKo-Tech/sparsenms"
	"github.com/MeKo-Tech/sparsenms/internal/common"
	"github.com/MeKo-Tech/sparsenms/internal/detections"
	"github.com/spf13/cobra"
)

// suppressCmd represents the suppress command.
var suppressCmd = &cobra.Command{
	Use:   "suppress <detections.json>",
	Short: "Run Non-Maximum Suppression on a detection file",
	Long: `Run Non-Maximum Suppression on a JSON detection file.

The input file holds parallel arrays: "boxes" (rows of [x_min, y_min, x_max,
y_max]) and "scores". Output is either the kept indices or the filtered
detection set, as JSON.

Examples:
  sparsenms suppress detections.json
  sparsenms suppress detections.json --iou-threshold 0.3
  sparsenms suppress detections.json --format detections --output kept.json
  sparsenms suppress detections.json --naive`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		iouThreshold := cfg.Suppression.IoUThreshold
		if cmd.Flags().Changed("iou-threshold") {
			iouThreshold, _ = cmd.Flags().GetFloat64("iou-threshold")
		}
		scoreThreshold := cfg.Suppression.ScoreThreshold
		if cmd.Flags().Changed("score-threshold") {
			scoreThreshold, _ = cmd.Flags().GetFloat64("score-threshold")
		}
		format := cfg.Output.Format
		if cmd.Flags().Changed("format") {
			format, _ = cmd.Flags().GetString("format")
		}
		outputFile := cfg.Output.File
		if cmd.Flags().Changed("output") {
			outputFile, _ = cmd.Flags().GetString("output")
		}
		naive, _ := cmd.Flags().GetBool("naive")

		set, err := detections.Load(args[0])
		if err != nil {
			return err
		}

		suppressCfg := sparsenms.Config{
			IoUThreshold:   iouThreshold,
			ScoreThreshold: scoreThreshold,
		}

		timer := common.NewTimer()
		var keep []int
		if naive {
			keep, err = sparsenms.SuppressNaive(set.Boxes, set.Scores, suppressCfg)
		} else {
			keep, err = sparsenms.Suppress(set.Boxes, set.Scores, suppressCfg)
		}
		elapsed := timer.Stop()
		if err != nil {
			return fmt.Errorf("suppression failed: %w", err)
		}

		slog.Info("Suppression complete",
			"boxes_in", set.Len(),
			"boxes_kept", len(keep),
			"naive", naive,
			"duration", elapsed.String())

		return writeSuppressOutput(cmd, set, keep, format, outputFile)
	},
}

// writeSuppressOutput emits the result in the requested format, either to a
// file or to stdout.
func writeSuppressOutput(cmd *cobra.Command, set *detections.Set, keep []int, format, outputFile string) error {
	if format == "detections" {
		kept := set.Select(keep)
		if outputFile != "" {
			return kept.Save(outputFile)
		}
		data, err := json.MarshalIndent(kept, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode detections: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	data, err := json.Marshal(keep)
	if err != nil {
		return fmt.Errorf("failed to encode keep list: %w", err)
	}
	if outputFile != "" {
		if err := os.WriteFile(outputFile, append(data, '\n'), 0o600); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func init() {
	rootCmd.AddCommand(suppressCmd)
	suppressCmd.Flags().Float64("iou-threshold", 0.5, "IoU threshold at which overlapping boxes are suppressed")
	suppressCmd.Flags().Float64("score-threshold", 0.0, "drop boxes with score at or below this value")
	suppressCmd.Flags().String("format", "indices", "output format (indices, detections)")
	suppressCmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	suppressCmd.Flags().Bool("naive", false, "use the exhaustive O(n²) reference implementation")
}
