// Package engine is the Section 21 pre-check core: a pure decision function
// over the fact object plus its completeness checker. It is re-run on every
// field change, so everything here is allocation-light and free of I/O.
package engine

import (
	"notice-precheck/internal/dates"
	"notice-precheck/internal/display"
	"notice-precheck/internal/model"
)

// Evaluate derives the verdict for the current fact object.
//
// Incompleteness takes priority: a partially answered questionnaire is
// never reported valid or risky, though any findings already derivable are
// still returned so the host can surface early risk. With the questionnaire
// complete, any blocker forces risky; warnings never change the verdict.
// Identical input produces bit-for-bit identical output.
func Evaluate(f *model.Section21PrecheckInput) *model.Section21PrecheckResult {
	comp := Completeness(f)
	blockers, warnings := runRules(f)

	res := &model.Section21PrecheckResult{
		Blockers:      blockers,
		Warnings:      warnings,
		MissingKeys:   comp.MissingKeys,
		MissingLabels: comp.MissingLabels,
	}

	if planned, ok := dates.ParseISO(f.PlannedServiceDate); ok {
		deemed, err := dates.DeemedService(planned, f.ServiceMethod, f.ServedBeforeCutoff, f.TenantConsentedEmailService)
		if err == nil {
			earliest := dates.EarliestAfter(deemed, f)
			latest := dates.LatestCourtStart(deemed, earliest)
			res.DeemedServiceDate = dates.FormatISO(deemed)
			res.EarliestAfterDate = dates.FormatISO(earliest)
			res.LatestCourtStartDate = dates.FormatISO(latest)
		}
		// ErrNoDeemedDate is already reported by INVALID_SERVICE_METHOD;
		// the date fields stay empty rather than carrying a guess.
	}

	switch {
	case len(comp.MissingKeys) > 0:
		res.Status = model.StatusIncomplete
	case len(blockers) > 0:
		res.Status = model.StatusRisky
	default:
		res.Status = model.StatusValid
	}

	res.Display = display.For(res)
	return res
}
