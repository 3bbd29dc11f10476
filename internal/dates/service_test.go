package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notice-precheck/internal/model"
)

func TestDeemedServiceByHand(t *testing.T) {
	// Working day, before 4:30pm: same day
	got, err := DeemedService(d("2025-10-01"), model.ServiceHand, model.Yes, model.Unsure)
	require.NoError(t, err)
	assert.Equal(t, d("2025-10-01"), got)

	// After the cutoff: next working day
	got, err = DeemedService(d("2025-10-01"), model.ServiceHand, model.No, model.Unsure)
	require.NoError(t, err)
	assert.Equal(t, d("2025-10-02"), got)

	// Saturday service rolls to Monday even before the cutoff
	got, err = DeemedService(d("2025-10-04"), model.ServiceHand, model.Yes, model.Unsure)
	require.NoError(t, err)
	assert.Equal(t, d("2025-10-06"), got)
}

func TestDeemedServiceByPost(t *testing.T) {
	// Second day after posting
	got, err := DeemedService(d("2025-10-01"), model.ServiceFirstClassPost, model.Unsure, model.Unsure)
	require.NoError(t, err)
	assert.Equal(t, d("2025-10-03"), got)

	// Posted Christmas Eve 2025: second day after is Boxing Day, which
	// rolls over the holidays and the weekend to Monday the 29th.
	got, err = DeemedService(d("2025-12-24"), model.ServiceFirstClassPost, model.Unsure, model.Unsure)
	require.NoError(t, err)
	assert.Equal(t, d("2025-12-29"), got)
}

func TestDeemedServiceByEmail(t *testing.T) {
	got, err := DeemedService(d("2025-10-01"), model.ServiceEmail, model.Yes, model.Yes)
	require.NoError(t, err)
	assert.Equal(t, d("2025-10-01"), got)

	_, err = DeemedService(d("2025-10-01"), model.ServiceEmail, model.Yes, model.No)
	assert.ErrorIs(t, err, ErrNoDeemedDate)

	_, err = DeemedService(d("2025-10-01"), model.ServiceEmail, model.Yes, model.Unsure)
	assert.ErrorIs(t, err, ErrNoDeemedDate)
}

func TestDeemedServiceUnknownMethod(t *testing.T) {
	for _, m := range []model.ServiceMethod{model.ServiceOther, model.ServiceUnsure, ""} {
		_, err := DeemedService(d("2025-10-01"), m, model.Yes, model.Yes)
		assert.ErrorIs(t, err, ErrNoDeemedDate, "method %q", m)
	}
}

func TestMinNoticeMonths(t *testing.T) {
	facts := &model.Section21PrecheckInput{TenancyType: model.TenancyPeriodic, RentPeriod: model.RentMonthly}
	assert.Equal(t, 2, MinNoticeMonths(facts))

	facts.RentPeriod = model.RentQuarterly
	assert.Equal(t, 3, MinNoticeMonths(facts))

	facts.RentPeriod = model.RentYearly
	assert.Equal(t, 6, MinNoticeMonths(facts))

	// Fixed term tenancies always get the two-month minimum
	facts = &model.Section21PrecheckInput{TenancyType: model.TenancyFixedTerm, RentPeriod: model.RentYearly}
	assert.Equal(t, 2, MinNoticeMonths(facts))
}

func TestEarliestAfterPeriodic(t *testing.T) {
	facts := &model.Section21PrecheckInput{
		TenancyType:      model.TenancyPeriodic,
		RentPeriod:       model.RentMonthly,
		TenancyStartDate: "2023-06-15",
	}
	assert.Equal(t, d("2025-12-01"), EarliestAfter(d("2025-10-01"), facts))

	facts.RentPeriod = model.RentYearly
	assert.Equal(t, d("2026-04-01"), EarliestAfter(d("2025-10-01"), facts))
}

func TestEarliestAfterSixMonthFloor(t *testing.T) {
	// Young tenancy: possession cannot be required within six months of
	// the tenancy starting, even though two months' notice would end
	// sooner.
	facts := &model.Section21PrecheckInput{
		TenancyType:      model.TenancyPeriodic,
		RentPeriod:       model.RentMonthly,
		TenancyStartDate: "2025-07-01",
	}
	assert.Equal(t, d("2026-01-01"), EarliestAfter(d("2025-10-01"), facts))

	// The floor runs from the original tenancy for a replacement.
	facts.IsReplacementTenancy = model.Yes
	facts.OriginalTenancyStartDate = "2023-07-01"
	assert.Equal(t, d("2025-12-01"), EarliestAfter(d("2025-10-01"), facts))
}

func TestEarliestAfterBreakClause(t *testing.T) {
	facts := &model.Section21PrecheckInput{
		TenancyType:                model.TenancyFixedTerm,
		TenancyStartDate:           "2024-06-01",
		FixedTermEndDate:           "2026-05-31",
		HasBreakClause:             model.Yes,
		BreakClauseEarliestEndDate: "2026-02-01",
	}
	// Break date after the minimum notice point wins
	assert.Equal(t, d("2026-02-01"), EarliestAfter(d("2025-10-01"), facts))

	// Break date before the minimum notice point is clamped to it
	facts.BreakClauseEarliestEndDate = "2025-11-01"
	assert.Equal(t, d("2025-12-01"), EarliestAfter(d("2025-10-01"), facts))
}

func TestEarliestAfterFixedTermEnd(t *testing.T) {
	facts := &model.Section21PrecheckInput{
		TenancyType:      model.TenancyFixedTerm,
		TenancyStartDate: "2024-06-01",
		FixedTermEndDate: "2026-05-31",
		HasBreakClause:   model.No,
	}
	assert.Equal(t, d("2026-05-31"), EarliestAfter(d("2025-10-01"), facts))
}

func TestLatestCourtStart(t *testing.T) {
	// Plain two-month notice: six months from deemed service
	assert.Equal(t, d("2026-04-01"), LatestCourtStart(d("2025-10-01"), d("2025-12-01")))

	// Longer notice period: four months from the specified date
	assert.Equal(t, d("2026-08-01"), LatestCourtStart(d("2025-10-01"), d("2026-04-01")))
}
