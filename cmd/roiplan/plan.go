package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	csvadapter "mesa-roi/internal/adapter/csv"
	"mesa-roi/internal/adapter/model"
	"mesa-roi/internal/adapter/report"
	"mesa-roi/internal/adapter/usecase"
	"mesa-roi/internal/core/domain"
	"mesa-roi/internal/core/planner"
)

var planFlags struct {
	input           string
	modelPath       string
	reductionFactor float64
	lower           float64
	upper           float64
	zeroSpend       string
	top             int
	explain         int
	jsonPath        string
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute a reallocation plan from a CSV export",
	Example: `  roiplan plan --input data.csv
  roiplan plan --input data.csv --model ctr_model.yaml --reduction-factor 0.2 --json plan.json`,
	RunE: runPlan,
}

func init() {
	f := planCmd.Flags()
	f.StringVarP(&planFlags.input, "input", "i", "", "CSV file with performance rows, - for stdin")
	f.StringVar(&planFlags.modelPath, "model", "", "YAML linear model (defaults to MODEL_PATH)")
	f.Float64Var(&planFlags.reductionFactor, "reduction-factor", 0, "share of spend cut from reduce campaigns, in (0,1]")
	f.Float64Var(&planFlags.lower, "lower", 0, "ROI quantile below which campaigns are reduced")
	f.Float64Var(&planFlags.upper, "upper", 0, "ROI quantile above which campaigns are increased")
	f.StringVar(&planFlags.zeroSpend, "zero-spend", "", "zero spend policy: exclude or zero")
	f.IntVar(&planFlags.top, "top", 20, "campaigns to display, 0 for all")
	f.IntVar(&planFlags.explain, "explain", 5, "campaign explanations to display")
	f.StringVar(&planFlags.jsonPath, "json", "", "optional path to write the plan as JSON")
	_ = planCmd.MarkFlagRequired("input")
}

// plannerOptions merges the environment settings with the flags that were
// set explicitly.
func plannerOptions(cmd *cobra.Command) (planner.Options, error) {
	section := cfg.Planner
	flags := cmd.Flags()
	if flags.Changed("reduction-factor") {
		section.ReductionFactor = planFlags.reductionFactor
	}
	if flags.Changed("lower") {
		section.LowerQuantile = planFlags.lower
	}
	if flags.Changed("upper") {
		section.UpperQuantile = planFlags.upper
	}
	if flags.Changed("zero-spend") {
		section.ZeroSpendPolicy = planFlags.zeroSpend
	}
	return section.Options()
}

func runPlan(cmd *cobra.Command, args []string) error {
	opts, err := plannerOptions(cmd)
	if err != nil {
		return err
	}
	modelCfg := cfg.Model
	if planFlags.modelPath != "" {
		modelCfg.Path = planFlags.modelPath
	}
	predictor, err := model.New(modelCfg)
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if planFlags.input != "-" {
		file, err := os.Open(planFlags.input)
		if err != nil {
			return fmt.Errorf("unable to open CSV: %w", err)
		}
		defer file.Close()
		in = file
	}
	rows, err := csvadapter.ReadRows(in)
	if err != nil {
		return err
	}

	logger := cfg.Log.New(cmd.ErrOrStderr())
	svc := usecase.NewPlanUseCase(nil, predictor, opts, logger, nil)
	plan, err := svc.Preview(cmd.Context(), rows)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err = report.WriteTable(out, plan, planFlags.top); err != nil {
		return err
	}
	if planFlags.explain > 0 {
		if err = report.WriteExplanations(out, plan, planFlags.explain); err != nil {
			return err
		}
	}
	if planFlags.jsonPath != "" {
		if err = writePlanJSON(planFlags.jsonPath, plan); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nJSON written to %s\n", planFlags.jsonPath)
	}
	return nil
}

func writePlanJSON(path string, plan *domain.Plan) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create JSON output: %w", err)
	}
	defer file.Close()
	if err = report.WriteJSON(file, plan); err != nil {
		return fmt.Errorf("unable to write JSON output: %w", err)
	}
	return nil
}
