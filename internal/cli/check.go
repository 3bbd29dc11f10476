package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"notice-precheck/internal/config"
	"notice-precheck/internal/display"
	"notice-precheck/internal/engine"
	"notice-precheck/internal/holidays"
	"notice-precheck/internal/model"
)

var checkCmd = &cobra.Command{
	Use:   "check <facts.json>",
	Short: "Evaluate a saved fact file and print the verdict",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	holidays.SetFeedURL(cfg.BankHolidaysURL)

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	facts := model.DefaultFacts()
	if err := json.Unmarshal(data, &facts); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	res := engine.Evaluate(&facts)
	printResult(res, cfg.MissingLabelCap)
	return nil
}

func printResult(res *model.Section21PrecheckResult, labelCap int) {
	headline := color.New(color.FgGreen, color.Bold)
	switch res.Status {
	case model.StatusRisky:
		headline = color.New(color.FgRed, color.Bold)
	case model.StatusIncomplete:
		headline = color.New(color.FgYellow, color.Bold)
	}
	headline.Println(res.Display.Headline)
	fmt.Println(res.Display.Summary)

	if res.DeemedServiceDate != "" {
		fmt.Println()
		fmt.Printf("  Deemed service date:   %s\n", res.DeemedServiceDate)
		fmt.Printf("  Earliest leaving date: %s\n", res.EarliestAfterDate)
		fmt.Printf("  Court deadline:        %s\n", res.LatestCourtStartDate)
	}

	if len(res.Blockers) > 0 {
		fmt.Println()
		color.Red("Blockers:")
		for _, b := range res.Blockers {
			fmt.Printf("  [%s] %s\n", b.Code, b.Message)
		}
	}
	if len(res.Warnings) > 0 {
		fmt.Println()
		color.Yellow("Warnings:")
		for _, w := range res.Warnings {
			fmt.Printf("  [%s] %s\n", w.Code, w.Message)
		}
	}
	if len(res.MissingLabels) > 0 {
		fmt.Println()
		color.Yellow("Still needed:")
		for _, l := range display.CappedLabels(res.MissingLabels, labelCap) {
			fmt.Printf("  - %s\n", l)
		}
	}
}
