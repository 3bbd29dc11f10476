// Package display turns a precheck result into user-facing strings. It is
// pure formatting; the host decides when (and whether) to show it.
package display

import (
	"fmt"

	"notice-precheck/internal/dates"
	"notice-precheck/internal/model"
)

// DefaultLabelCap bounds the missing-question list shown in one screen.
const DefaultLabelCap = 8

// For builds the headline and the gated and ungated summaries for a
// computed result.
func For(res *model.Section21PrecheckResult) model.Display {
	switch res.Status {
	case model.StatusValid:
		return model.Display{
			Headline:     "No blockers found",
			Summary:      validSummary(res),
			GatedSummary: gatedSummary(res),
		}
	case model.StatusRisky:
		return model.Display{
			Headline: "Serving now would be risky",
			Summary: fmt.Sprintf("%s would make a Section 21 notice served now invalid. Fix the issues below before serving.",
				count(len(res.Blockers), "problem", "problems")),
			GatedSummary: gatedSummary(res),
		}
	default:
		return model.Display{
			Headline: "A few more answers needed",
			Summary: fmt.Sprintf("Answer the remaining %s to get your result.",
				count(len(res.MissingKeys), "question", "questions")),
			GatedSummary: gatedSummary(res),
		}
	}
}

// gatedSummary names counts only; the detail stays behind the unlock.
func gatedSummary(res *model.Section21PrecheckResult) string {
	switch res.Status {
	case model.StatusValid:
		s := "Your result is ready: no blockers found."
		if n := len(res.Warnings); n > 0 {
			s = fmt.Sprintf("Your result is ready: no blockers and %s found.",
				count(n, "warning", "warnings"))
		}
		return s + " Unlock the full report for your key dates."
	case model.StatusRisky:
		return fmt.Sprintf("Your result is ready: %s that would invalidate the notice. Unlock the full report for the details.",
			count(len(res.Blockers), "problem was found", "problems were found"))
	default:
		return fmt.Sprintf("Answer the remaining %s to get your result.",
			count(len(res.MissingKeys), "question", "questions"))
	}
}

func validSummary(res *model.Section21PrecheckResult) string {
	s := "Nothing in your answers would invalidate a Section 21 notice."
	deemed, ok1 := dates.ParseISO(res.DeemedServiceDate)
	earliest, ok2 := dates.ParseISO(res.EarliestAfterDate)
	latest, ok3 := dates.ParseISO(res.LatestCourtStartDate)
	if ok1 && ok2 && ok3 {
		s += fmt.Sprintf(" The notice counts as served on %s, the earliest the tenant can be required to leave is %s, and court proceedings must start by %s.",
			dates.FormatUK(deemed), dates.FormatUK(earliest), dates.FormatUK(latest))
	}
	if n := len(res.Warnings); n > 0 {
		s += fmt.Sprintf(" %s below %s worth reviewing but %s not affect validity.",
			count(n, "warning", "warnings"), isAre(n), doesDo(n))
	}
	return s
}

// CappedLabels returns at most max labels, replacing the overflow with an
// "and N more" tail.
func CappedLabels(labels []string, max int) []string {
	if max <= 0 || len(labels) <= max {
		return labels
	}
	out := make([]string, 0, max+1)
	out = append(out, labels[:max]...)
	return append(out, fmt.Sprintf("and %d more", len(labels)-max))
}

func count(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

func isAre(n int) string {
	if n == 1 {
		return "is"
	}
	return "are"
}

func doesDo(n int) string {
	if n == 1 {
		return "does"
	}
	return "do"
}
