package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notice-precheck/internal/model"
)

// compliantFacts is a fully answered, fully compliant periodic tenancy:
// started mid-2023, deposit protected within 30 days with prescribed
// information served, all prescribed documents given before the tenancy
// started, no licensing or council action, service by hand before 4:30pm.
func compliantFacts() model.Section21PrecheckInput {
	facts := model.DefaultFacts()

	facts.TenancyType = model.TenancyPeriodic
	facts.TenancyStartDate = "2023-06-15"
	facts.IsReplacementTenancy = model.No
	facts.RentPeriod = model.RentMonthly
	facts.LandlordType = model.LandlordPrivate

	facts.PlannedServiceDate = "2025-10-01"
	facts.ServiceMethod = model.ServiceHand
	facts.ServedBeforeCutoff = model.Yes
	facts.HasProofOfServicePlan = model.Yes

	facts.DepositTaken = model.Yes
	facts.DepositReceivedDate = "2023-06-15"
	facts.DepositProtectedDate = "2023-06-20"
	facts.DepositPaidByThirdParty = model.No
	facts.PrescribedInfoTenantDate = "2023-06-21"
	facts.DepositReturnedInFull = model.No
	facts.DepositClaimResolvedByCourt = model.No

	facts.EPCRequired = model.Yes
	facts.EPCServedDate = "2023-06-10"
	facts.GasInstalled = model.Yes
	facts.GasSafetyIssueDate = "2023-06-01"
	facts.GasSafetyServedDate = "2023-06-10"
	facts.HowToRentWasCurrent = model.Yes
	facts.HowToRentServedDate = "2023-06-15"
	facts.HowToRentServiceMethod = model.HowToRentHardCopy

	facts.HMOLicenceRequired = model.No
	facts.SelectiveLicenceRequired = model.No
	facts.ImprovementNoticeServed = model.No
	facts.EmergencyRemedialServed = model.No
	facts.ProhibitedPaymentOutstanding = model.No

	return facts
}

func blockerCodes(res *model.Section21PrecheckResult) []string {
	codes := make([]string, 0, len(res.Blockers))
	for _, b := range res.Blockers {
		codes = append(codes, b.Code)
	}
	return codes
}

func TestEvaluateCompliantPeriodicTenancy(t *testing.T) {
	facts := compliantFacts()
	res := Evaluate(&facts)

	assert.Equal(t, model.StatusValid, res.Status)
	assert.Empty(t, res.Blockers)
	assert.Empty(t, res.Warnings)
	assert.Empty(t, res.MissingKeys)

	assert.Equal(t, "2025-10-01", res.DeemedServiceDate)
	assert.Equal(t, "2025-12-01", res.EarliestAfterDate)
	assert.Equal(t, "2026-04-01", res.LatestCourtStartDate)
	assert.Equal(t, "No blockers found", res.Display.Headline)
}

func TestEvaluateDefaultFactsIncomplete(t *testing.T) {
	facts := model.DefaultFacts()
	res := Evaluate(&facts)

	assert.Equal(t, model.StatusIncomplete, res.Status)
	assert.NotEmpty(t, res.MissingKeys)
	assert.Empty(t, res.DeemedServiceDate)
}

func TestEvaluateDepositNeverProtected(t *testing.T) {
	facts := compliantFacts()
	facts.DepositProtectedDate = ""
	res := Evaluate(&facts)

	assert.Equal(t, model.StatusRisky, res.Status)
	assert.Contains(t, blockerCodes(res), "DEPOSIT_NOT_PROTECTED")
	// The dates are still computed: the defect is the deposit, not the
	// service plan.
	assert.Equal(t, "2025-10-01", res.DeemedServiceDate)
}

func TestEvaluateDepositDefectCuredByReturn(t *testing.T) {
	facts := compliantFacts()
	facts.DepositProtectedDate = ""
	facts.PrescribedInfoTenantDate = ""
	facts.DepositReturnedInFull = model.Yes
	facts.DepositReturnedDate = "2025-09-01"

	res := Evaluate(&facts)
	assert.Equal(t, model.StatusValid, res.Status)
}

func TestEvaluateDepositProtectedLate(t *testing.T) {
	facts := compliantFacts()
	facts.DepositProtectedDate = "2023-08-01" // 47 days after receipt
	res := Evaluate(&facts)

	assert.Equal(t, model.StatusRisky, res.Status)
	assert.Contains(t, blockerCodes(res), "DEPOSIT_PROTECTED_LATE")
}

func TestEvaluateMidWizardIncomplete(t *testing.T) {
	facts := model.DefaultFacts()
	facts.TenancyType = model.TenancyPeriodic
	facts.TenancyStartDate = "2023-06-15"

	res := Evaluate(&facts)
	require.Equal(t, model.StatusIncomplete, res.Status)
	assert.NotEmpty(t, res.MissingKeys)

	report := Completeness(&facts)
	var sections []string
	for _, s := range report.Sections {
		sections = append(sections, s.Name)
	}
	assert.Contains(t, sections, "deposit")
	assert.Contains(t, sections, "prescribed_documents")
	assert.Contains(t, sections, "licensing_restrictions")
}

func TestEvaluateEmailServiceWithoutConsent(t *testing.T) {
	facts := compliantFacts()
	facts.ServiceMethod = model.ServiceEmail
	facts.TenantConsentedEmailService = model.No

	res := Evaluate(&facts)
	assert.Equal(t, model.StatusRisky, res.Status)
	assert.Contains(t, blockerCodes(res), "INVALID_SERVICE_METHOD")
	// No deemed date is guessed when service cannot be established.
	assert.Empty(t, res.DeemedServiceDate)
	assert.Empty(t, res.EarliestAfterDate)
}

func TestEvaluateBreakClauseClamping(t *testing.T) {
	facts := compliantFacts()
	facts.TenancyType = model.TenancyFixedTerm
	facts.TenancyStartDate = "2024-06-01"
	facts.FixedTermEndDate = "2026-05-31"
	facts.HasBreakClause = model.Yes
	facts.BreakClauseEarliestEndDate = "2025-11-01"

	res := Evaluate(&facts)
	require.Equal(t, model.StatusValid, res.Status)
	// Break date earlier than deemed service + two months: clamped to
	// the legally permitted date, not the break date.
	assert.Equal(t, "2025-12-01", res.EarliestAfterDate)

	facts.BreakClauseEarliestEndDate = "2026-02-01"
	res = Evaluate(&facts)
	assert.Equal(t, "2026-02-01", res.EarliestAfterDate)
	assert.Equal(t, "2026-06-01", res.LatestCourtStartDate)
}

func TestEvaluateServiceTooEarly(t *testing.T) {
	facts := compliantFacts()
	facts.TenancyStartDate = "2025-07-15"
	// Prescribed documents predate the new tenancy start; keep them
	// compliant for this scenario.
	facts.EPCServedDate = "2025-07-01"
	facts.GasSafetyServedDate = "2025-07-01"
	facts.HowToRentServedDate = "2025-07-15"
	facts.DepositReceivedDate = "2025-07-15"
	facts.DepositProtectedDate = "2025-07-20"
	facts.PrescribedInfoTenantDate = "2025-07-21"

	res := Evaluate(&facts)
	assert.Equal(t, model.StatusRisky, res.Status)
	assert.Contains(t, blockerCodes(res), "SERVICE_TOO_EARLY")
}

func TestEvaluateImprovementNoticeRestriction(t *testing.T) {
	facts := compliantFacts()
	facts.ImprovementNoticeServed = model.Yes
	facts.ImprovementNoticeDate = "2025-06-01" // within 6 months of service

	res := Evaluate(&facts)
	assert.Equal(t, model.StatusRisky, res.Status)
	assert.Contains(t, blockerCodes(res), "IMPROVEMENT_NOTICE_RESTRICTION")

	// Older notices are outside the restricted window.
	facts.ImprovementNoticeDate = "2025-03-01"
	res = Evaluate(&facts)
	assert.Equal(t, model.StatusValid, res.Status)
}

func TestEvaluateHowToRentExemptionPre2015(t *testing.T) {
	facts := compliantFacts()
	facts.TenancyStartDate = "2014-06-15"
	facts.HowToRentServedDate = ""
	facts.HowToRentWasCurrent = model.No
	facts.EPCServedDate = "2014-06-01"
	facts.GasSafetyServedDate = "2014-06-01"
	facts.DepositReceivedDate = "2014-06-15"
	facts.DepositProtectedDate = "2014-06-20"
	facts.PrescribedInfoTenantDate = "2014-06-21"

	res := Evaluate(&facts)
	assert.Equal(t, model.StatusValid, res.Status)
}

func TestEvaluateWarningsDoNotBlock(t *testing.T) {
	facts := compliantFacts()
	facts.HasProofOfServicePlan = model.No

	res := Evaluate(&facts)
	assert.Equal(t, model.StatusValid, res.Status)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "NO_PROOF_OF_SERVICE", res.Warnings[0].Code)
}

func TestEvaluateUnsureAnswersRaiseAdvisoryWarnings(t *testing.T) {
	facts := compliantFacts()
	facts.HMOLicenceRequired = model.Unsure
	facts.HowToRentWasCurrent = model.Unsure

	res := Evaluate(&facts)

	// The open questions keep the verdict incomplete, but the advisory
	// warnings still surface so the user knows what to chase.
	assert.Equal(t, model.StatusIncomplete, res.Status)
	var codes []string
	for _, w := range res.Warnings {
		codes = append(codes, w.Code)
	}
	assert.Contains(t, codes, "LICENCE_REQUIREMENT_UNSURE")
	assert.Contains(t, codes, "HOW_TO_RENT_CURRENCY_UNSURE")
}

func TestEvaluateAllBlockersCollected(t *testing.T) {
	facts := compliantFacts()
	facts.DepositProtectedDate = ""
	facts.PrescribedInfoTenantDate = ""
	facts.GasSafetyServedDate = ""
	facts.ProhibitedPaymentOutstanding = model.Yes

	res := Evaluate(&facts)
	require.Equal(t, model.StatusRisky, res.Status)
	codes := blockerCodes(res)
	assert.Contains(t, codes, "DEPOSIT_NOT_PROTECTED")
	assert.Contains(t, codes, "PRESCRIBED_INFO_NOT_SERVED")
	assert.Contains(t, codes, "GAS_CERT_NOT_SERVED")
	assert.Contains(t, codes, "PROHIBITED_PAYMENT")
}

func TestEvaluateIdempotent(t *testing.T) {
	facts := compliantFacts()
	facts.DepositProtectedDate = ""
	assert.Equal(t, Evaluate(&facts), Evaluate(&facts))
}

func TestEvaluateBlockerMonotonicity(t *testing.T) {
	facts := compliantFacts()
	facts.GasSafetyServedDate = ""
	before := blockerCodes(Evaluate(&facts))

	// Adding a new non-compliant fact never removes an existing blocker.
	facts.DepositProtectedDate = ""
	after := blockerCodes(Evaluate(&facts))
	for _, code := range before {
		assert.Contains(t, after, code)
	}
	assert.Greater(t, len(after), len(before))
}

func TestEvaluateDateOrderingInvariant(t *testing.T) {
	for name, mutate := range map[string]func(*model.Section21PrecheckInput){
		"compliant":   func(f *model.Section21PrecheckInput) {},
		"yearly rent": func(f *model.Section21PrecheckInput) { f.RentPeriod = model.RentYearly },
		"postal": func(f *model.Section21PrecheckInput) {
			f.ServiceMethod = model.ServiceFirstClassPost
		},
		"late break clause": func(f *model.Section21PrecheckInput) {
			f.TenancyType = model.TenancyFixedTerm
			f.FixedTermEndDate = "2026-05-31"
			f.HasBreakClause = model.Yes
			f.BreakClauseEarliestEndDate = "2026-04-15"
		},
	} {
		facts := compliantFacts()
		mutate(&facts)
		res := Evaluate(&facts)
		require.NotEqual(t, model.StatusIncomplete, res.Status, name)
		require.NotEmpty(t, res.DeemedServiceDate, name)
		assert.LessOrEqual(t, res.DeemedServiceDate, res.EarliestAfterDate, name)
		assert.LessOrEqual(t, res.EarliestAfterDate, res.LatestCourtStartDate, name)
	}
}
