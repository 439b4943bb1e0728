// ABOUTME: CLI command for AI nutrient estimation from text or a photo.
// ABOUTME: Drives the add-form machine: collect, preview, confirm or cancel.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/nosh/internal/estimate"
	"github.com/harperreed/nosh/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	estimateImage string
	estimateDate  string
	estimateSave  bool
)

var estimateCmd = &cobra.Command{
	Use:   "estimate [description]",
	Short: "Estimate nutrients with AI and log the result",
	Long: `Ask a model to estimate the nutrients of a described meal or a photo,
preview the result, and confirm before it is logged.

Requires NOSH_AI_API_KEY. NOSH_AI_BASE_URL and NOSH_AI_MODEL select
any OpenAI-compatible endpoint and model.

EXAMPLES:

  nosh estimate "two eggs and buttered toast"
  nosh estimate --image lunch.jpg --date 2024-01-02
  nosh estimate "a banana" --save     # Skip the confirmation prompt`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && estimateImage == "" {
			return fmt.Errorf("provide a description or --image")
		}

		date, err := resolveDate(estimateDate)
		if err != nil {
			return err
		}

		client := estimate.NewClient(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel)
		form := tracker.NewFoodForm(date)
		form.Begin()

		var est *estimate.Estimate
		if estimateImage != "" {
			image, err := os.ReadFile(estimateImage)
			if err != nil {
				form.Cancel()
				return fmt.Errorf("read image: %w", err)
			}
			est, err = client.EstimateImage(cmd.Context(), image, mimeTypeFor(estimateImage))
			if err != nil {
				form.Cancel()
				return err
			}
		} else {
			est, err = client.EstimateText(cmd.Context(), args[0])
			if err != nil {
				form.Cancel()
				return err
			}
		}

		if !form.Propose(est.Name, est.Nutrients) {
			// Form was abandoned while the call was outstanding.
			return nil
		}

		fmt.Printf("Estimate for %s:\n", color.New(color.Bold).Sprint(est.Name))
		fmt.Printf("  %s\n", nutrientLine(est.Nutrients))
		fmt.Printf("  date %s\n", date)

		if !estimateSave {
			fmt.Print("Log this entry? [y/N] ")
			answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
				form.Cancel()
				fmt.Println("Discarded.")
				return nil
			}
		}

		foods, err := store.Foods()
		if err != nil {
			return err
		}
		foods, saved, err := form.Confirm(foods)
		if err != nil {
			return err
		}
		if err := store.SaveFoods(foods); err != nil {
			return fmt.Errorf("failed to save foods: %w", err)
		}
		form.Reset()

		color.Green("✓ Logged %s on %s", saved.Name, saved.Date)
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(saved.ID.String()[:8]),
			nutrientLine(saved.Nutrients))
		return nil
	},
}

func mimeTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	}
	return "image/jpeg"
}

func init() {
	estimateCmd.Flags().StringVar(&estimateImage, "image", "", "estimate from an image file instead of text")
	estimateCmd.Flags().StringVar(&estimateDate, "date", "", "calendar day (YYYY-MM-DD)")
	estimateCmd.Flags().BoolVar(&estimateSave, "save", false, "log without asking for confirmation")
	rootCmd.AddCommand(estimateCmd)
}
