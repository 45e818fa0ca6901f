package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"career-engine/internal/model"
)

func optional(v *float64, format string) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf(format, *v)
}

func printAggregate(out io.Writer, res *model.AggregateResult) {
	w := tabwriter.NewWriter(out, 1, 1, 2, ' ', 0)
	fmt.Fprintf(w, "Trials:\t%d\n", res.NumTrials)
	fmt.Fprintf(w, "Completion rate:\t%.1f%%\n", res.CompletionRate)
	fmt.Fprintf(w, "Dropout rate:\t%.1f%%\n", res.DropoutRate)
	fmt.Fprintf(w, "Average duration:\t%.1f months\n", res.AvgDuration)
	fmt.Fprintf(w, "Average states visited:\t%.2f\n", res.AvgStatesVisited)
	fmt.Fprintf(w, "Average training cost:\t%.2f\n", res.AvgTrainingCost)
	fmt.Fprintf(w, "Average payments:\t%.2f\n", res.AvgTotalPayments)
	fmt.Fprintf(w, "Average net cash flow:\t%.2f\n", res.AvgNetCashFlow)
	fmt.Fprintf(w, "Average ROI:\t%s\n", optional(res.AvgROI, "%.3f"))
	fmt.Fprintf(w, "ROI std / p10 / p90:\t%s / %s / %s\n",
		optional(res.ROIStd, "%.3f"), optional(res.ROI10th, "%.3f"), optional(res.ROI90th, "%.3f"))
	fmt.Fprintf(w, "Average annual IRR:\t%s (%d trials)\n", optional(res.AvgAnnualIRR, "%.4f"), res.IRRDefinedTrials)
	fmt.Fprintf(w, "Breakeven rate:\t%.1f%%\n", res.BreakevenRate)
	fmt.Fprintf(w, "Repayment rate:\t%.1f%%\n", res.RepaymentRate)
	w.Flush()

	fmt.Fprintln(out)
	w = tabwriter.NewWriter(out, 1, 1, 2, ' ', 0)
	fmt.Fprintln(w, "PROVIDER\tTRIALS\tCOMPLETION\tDROPOUT\tAVG NET\tAVG ROI")
	for _, p := range res.PerProviderMetrics {
		fmt.Fprintf(w, "%s\t%d\t%.1f%%\t%.1f%%\t%.2f\t%s\n",
			p.Provider, p.Trials, p.CompletionRate, p.DropoutRate, p.AvgNetCashFlow, optional(p.AvgROI, "%.3f"))
	}
	if res.UnassignedTrials > 0 {
		fmt.Fprintf(w, "(unassigned)\t%d\t\t\t\t\n", res.UnassignedTrials)
	}
	w.Flush()

	fmt.Fprintln(out)
	w = tabwriter.NewWriter(out, 1, 1, 2, ' ', 0)
	fmt.Fprintln(w, "#\tSTATE\tENTERED\tDROPOUT\tOBSERVED\tCONFIGURED\tAVG SALARY\tAVG PAYMENT")
	for _, m := range res.PerStateMetrics {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%.1f%%\t%.1f%%\t%.2f\t%.2f\n",
			m.Index, m.Name, m.EntryCount, m.DropoutCount, m.ObservedDropoutRate, m.ConfiguredDropoutRate, m.AvgSalary, m.AvgPayment)
	}
	w.Flush()
}

func printTrace(out io.Writer, trace *model.TrialResult) {
	w := tabwriter.NewWriter(out, 1, 1, 2, ' ', 0)
	fmt.Fprintln(w, "#\tSTATE\tOUTCOME\tMONTHS\tCOST\tSALARY\tPAYMENT\tNET")
	for _, st := range trace.Steps {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\n",
			st.StateIndex, st.StateName, st.Outcome, st.DurationMonths, st.Cost, st.Salary, st.Payment, st.NetCashFlow)
	}
	w.Flush()

	provider := string(trace.SelectedProvider)
	if provider == "" {
		provider = "none"
	}
	outcome := "completed"
	if trace.Dropout {
		outcome = "dropped out"
	}
	fmt.Fprintf(out, "\nSeed %d, provider %s, %s after %d months. Net %.2f, ROI %s, annual IRR %s\n",
		trace.Seed, provider, outcome, trace.DurationMonths, trace.NetCashFlow,
		optional(trace.ROI, "%.3f"), optional(trace.AnnualIRR, "%.4f"))
}

func printSweep(out io.Writer, res *model.SweepResult) {
	w := tabwriter.NewWriter(out, 1, 1, 2, ' ', 0)
	fmt.Fprintln(w, "CRUISES\tCOMPLETION\tDROPOUT\tMONTHS\tAVG NET\tAVG ROI\tBREAKEVEN\tANNUAL IRR")
	for _, p := range res.Points {
		fmt.Fprintf(w, "%d\t%.1f%%\t%.1f%%\t%.1f\t%.2f\t%s\t%.1f%%\t%s\n",
			p.NumCruises, p.CompletionRate, p.DropoutRate, p.AvgDuration, p.AvgNetCashFlow,
			optional(p.AvgROI, "%.3f"), p.BreakevenRate, optional(p.AvgAnnualIRR, "%.4f"))
	}
	w.Flush()

	if res.BestROICruises > 0 {
		fmt.Fprintf(out, "\nBest ROI: %d cruises\n", res.BestROICruises)
	}
	fmt.Fprintf(out, "Best net return: %d cruises\n", res.BestNetReturnCruises)
}

func printComparison(out io.Writer, res *model.Comparison) {
	if len(res.Changes) == 0 {
		fmt.Fprintln(out, "Scenarios are identical.")
	} else {
		w := tabwriter.NewWriter(out, 1, 1, 2, ' ', 0)
		fmt.Fprintln(w, "OP\tFIELD\tBASE\tVARIANT")
		for _, op := range res.Changes {
			fmt.Fprintf(w, "%s\t%s\t%v\t%v\n", op.Op, op.Path, op.Previous, op.Value)
		}
		w.Flush()
	}

	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 1, 1, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tBASE\tVARIANT\tDELTA")
	for _, d := range res.Deltas {
		fmt.Fprintf(w, "%s\t%.3f\t%.3f\t%+.3f\n", d.Metric, d.Base, d.Variant, d.Delta)
	}
	w.Flush()
}
