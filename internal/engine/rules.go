package engine

import (
	"fmt"

	"notice-precheck/internal/dates"
	"notice-precheck/internal/model"
)

// A rule is one independent compliance predicate. Every rule runs on every
// evaluation (no short-circuiting) so the user sees the complete defect
// list in one pass; findings keep table order.
type rule struct {
	code  string
	level string
	fires func(f *model.Section21PrecheckInput) (bool, string)
}

// howToRentCutover is when the How to Rent duty began; earlier tenancies
// are exempt.
const howToRentCutover = "2015-10-01"

// depositCured reports whether the deposit defects were cured before
// service: deposit returned in full, or the tenant's deposit claim settled
// by a court.
func depositCured(f *model.Section21PrecheckInput) bool {
	return f.DepositReturnedInFull == model.Yes || f.DepositClaimResolvedByCourt == model.Yes
}

func howToRentApplies(f *model.Section21PrecheckInput) bool {
	start, ok := dates.ParseISO(f.StartDateForStatutoryClocks())
	if !ok {
		return false
	}
	cutover, _ := dates.ParseISO(howToRentCutover)
	return !start.Before(cutover)
}

var ruleTable = []rule{
	{
		code:  "DEPOSIT_NOT_PROTECTED",
		level: model.LevelBlocker,
		fires: func(f *model.Section21PrecheckInput) (bool, string) {
			if f.DepositTaken != model.Yes || depositCured(f) {
				return false, ""
			}
			if _, ok := dates.ParseISO(f.DepositProtectedDate); ok {
				return false, ""
			}
			return true, "The deposit was never protected in an authorised scheme. Protect it or return it in full before serving a Section 21 notice."
		},
	},
	{
		code:  "DEPOSIT_PROTECTED_LATE",
		level: model.LevelBlocker,
		fires: func(f *model.Section21PrecheckInput) (bool, string) {
			if f.DepositTaken != model.Yes || depositCured(f) {
				return false, ""
			}
			protected, ok := dates.ParseISO(f.DepositProtectedDate)
			if !ok {
				return false, ""
			}
			received, ok := dates.ParseISO(f.DepositReceivedDate)
			if !ok {
				return false, ""
			}
			deadline := received.AddDate(0, 0, 30)
			if !protected.After(deadline) {
				return false, ""
			}
			return true, fmt.Sprintf("The deposit was protected on %s, after the 30-day deadline of %s. Late protection cannot be fixed by protecting now; the deposit must be returned in full first.",
				dates.FormatUK(protected), dates.FormatUK(deadline))
		},
	},
	{
		code:  "DEPOSIT_PROTECTED_AFTER_SERVICE",
		level: model.LevelBlocker,
		fires: func(f *model.Section21PrecheckInput) (bool, string) {
			if f.DepositTaken != model.Yes || depositCured(f) {
				return false, ""
			}
			protected, ok := dates.ParseISO(f.DepositProtectedDate)
			if !ok {
				return false, ""
			}
			planned, ok := dates.ParseISO(f.PlannedServiceDate)
			if !ok || !protected.After(planned) {
				return false, ""
			}
			return true, "The deposit would only be protected after the notice is served. Protection must be in place before service."
		},
	},
	{
		code:  "PRESCRIBED_INFO_NOT_SERVED",
		level: model.LevelBlocker,
		fires: func(f *model.Section21PrecheckInput) (bool, string) {
			if f.DepositTaken != model.Yes || depositCured(f) {
				return false, ""
			}
			if _, ok := dates.ParseISO(f.PrescribedInfoTenantDate); ok {
				return false, ""
			}
			return true, "The prescribed information about the deposit scheme was never given to the tenant. Serve it before serving the notice."
		},
	},
	{
		code:  "PRESCRIBED_INFO_AFTER_SERVICE",
		level: model.LevelBlocker,
		fires: func(f *model.Section21PrecheckInput) (bool, string) {
			if f.DepositTaken != model.Yes || depositCured(f) {
				return false, ""
			}
			pi, ok := dates.ParseISO(f.PrescribedInfoTenantDate)
			if !ok {
				return false, ""
			}
			planned, ok := dates.ParseISO(f.PlannedServiceDate)
			if !ok || !pi.After(planned) {
				return false, ""
			}
			return true, "The prescribed information would only be given after the notice is served. It must be given before service."
		},
	},
	{
		code:  "PRESCRIBED_INFO_RELEVANT_PERSON",
		level: model.LevelBlocker,
		fires: func(f *model.Section21PrecheckInput) (bool, string) {
			if f.DepositTaken != model.Yes || depositCured(f) || f.DepositPaidByThirdParty != model.Yes {
				return false, ""
			}
			if _, ok := dates.ParseISO(f.PrescribedInfoRelevantPersonDate); ok {
				return false, ""
			}
			return true, "The deposit was paid by a third party, who must also be given the prescribed information before the notice is served."
		},
	},
	{
		code:  "EPC_NOT_SERVED",
		level: model.LevelBlocker,
		fires: func(f *model.Section21PrecheckInput) (bool, string) {
			if f.EPCRequired != model.Yes {
				return false, ""
			}
			served, ok := dates.ParseISO(f.EPCServedDate)
			if !ok {
				return true, "An Energy Performance Certificate is required but was never given to the tenant."
			}
			if start, ok := dates.ParseISO(f.TenancyStartDate); ok && served.After(start) {
				return true, fmt.Sprintf("The Energy Performance Certificate was only given on %s, after the tenancy started.", dates.FormatUK(served))
			}
			return false, ""
		},
	},
	{
		code:  "GAS_CERT_NOT_SERVED",
		level: model.LevelBlocker,
		fires: func(f *model.Section21PrecheckInput) (bool, string) {
			if f.GasInstalled != model.Yes {
				return false, ""
			}
			if _, ok := dates.ParseISO(f.GasSafetyServedDate); ok {
				return false, ""
			}
			return true, "The property has gas but no gas safety certificate was ever given to the tenant."
		},
	},
	{
		code:  "HOW_TO_RENT_NOT_SERVED",
		level: model.LevelBlocker,
		fires: func(f *model.Section21PrecheckInput) (bool, string) {
			if !howToRentApplies(f) {
				return false, ""
			}
			if _, ok := dates.ParseISO(f.HowToRentServedDate); ok {
				return false, ""
			}
			return true, "The government's How to Rent guide was never given to the tenant. Give the current version before serving the notice."
		},
	},
	{
		code:  "HOW_TO_RENT_OUTDATED",
		level: model.LevelBlocker,
		fires: func(f *model.Section21PrecheckInput) (bool, string) {
			if !howToRentApplies(f) || f.HowToRentWasCurrent != model.No {
				return false, ""
			}
			if _, ok := dates.ParseISO(f.HowToRentServedDate); !ok {
				return false, ""
			}
			return true, "The How to Rent guide given was not the version current at the time. Give the current version before serving the notice."
		},
	},
	{
		code:  "HOW_TO_RENT_CURRENCY_UNSURE",
		level: model.LevelWarning,
		fires: func(f *model.Section21PrecheckInput) (bool, string) {
			if !howToRentApplies(f) || f.HowToRentWasCurrent != model.Unsure {
				return false, ""
			}
			if _, ok := dates.ParseISO(f.HowToRentServedDate); !ok {
				return false, ""
			}
			return true, "Check that the How to Rent guide given was the version current at the time. An outdated guide invalidates a Section 21 notice until the current one is served."
		},
	},
	{
		code:  "HMO_LICENCE_MISSING",
		level: model.LevelBlocker,
		fires: func(f *model.Section21PrecheckInput) (bool, string) {
			if f.HMOLicenceRequired != model.Yes || f.HMOLicenceInPlace == model.Yes {
				return false, ""
			}
			return true, "The property needs an HMO licence that is not in place. A Section 21 notice cannot be served until the licence is granted or applied for."
		},
	},
	{
		code:  "SELECTIVE_LICENCE_MISSING",
		level: model.LevelBlocker,
		fires: func(f *model.Section21PrecheckInput) (bool, string) {
			if f.SelectiveLicenceRequired != model.Yes || f.SelectiveLicenceInPlace == model.Yes {
				return false, ""
			}
			return true, "The property is in a selective licensing area and the licence is not in place. A Section 21 notice cannot be served until it is."
		},
	},
	{
		code:  "LICENCE_REQUIREMENT_UNSURE",
		level: model.LevelWarning,
		fires: func(f *model.Section21PrecheckInput) (bool, string) {
			if f.HMOLicenceRequired != model.Unsure && f.SelectiveLicenceRequired != model.Unsure {
				return false, ""
			}
			return true, "Check with the local council whether the property needs an HMO or selective licence. Serving a Section 21 notice without a required licence makes it invalid."
		},
	},
	{
		code:  "IMPROVEMENT_NOTICE_RESTRICTION",
		level: model.LevelBlocker,
		fires: func(f *model.Section21PrecheckInput) (bool, string) {
			if f.ImprovementNoticeServed != model.Yes {
				return false, ""
			}
			notice, ok := dates.ParseISO(f.ImprovementNoticeDate)
			if !ok {
				return false, ""
			}
			planned, ok := dates.ParseISO(f.PlannedServiceDate)
			barEnd := dates.AddMonths(notice, 6)
			if !ok || !planned.Before(barEnd) {
				return false, ""
			}
			return true, fmt.Sprintf("The council served an improvement notice on %s. A Section 21 notice cannot be served until %s.",
				dates.FormatUK(notice), dates.FormatUK(barEnd))
		},
	},
	{
		code:  "EMERGENCY_REMEDIAL_RESTRICTION",
		level: model.LevelBlocker,
		fires: func(f *model.Section21PrecheckInput) (bool, string) {
			if f.EmergencyRemedialServed != model.Yes {
				return false, ""
			}
			action, ok := dates.ParseISO(f.EmergencyRemedialDate)
			if !ok {
				return false, ""
			}
			planned, ok := dates.ParseISO(f.PlannedServiceDate)
			barEnd := dates.AddMonths(action, 6)
			if !ok || !planned.Before(barEnd) {
				return false, ""
			}
			return true, fmt.Sprintf("The council took emergency remedial action on %s. A Section 21 notice cannot be served until %s.",
				dates.FormatUK(action), dates.FormatUK(barEnd))
		},
	},
	{
		code:  "PROHIBITED_PAYMENT",
		level: model.LevelBlocker,
		fires: func(f *model.Section21PrecheckInput) (bool, string) {
			if f.ProhibitedPaymentOutstanding != model.Yes {
				return false, ""
			}
			return true, "A banned fee or unrefunded holding deposit is still outstanding. Repay it before serving a Section 21 notice."
		},
	},
	{
		code:  "INVALID_SERVICE_METHOD",
		level: model.LevelBlocker,
		fires: func(f *model.Section21PrecheckInput) (bool, string) {
			switch f.ServiceMethod {
			case model.ServiceHand, model.ServiceFirstClassPost, model.ServiceDocumentExchange:
				return false, ""
			case model.ServiceEmail:
				if f.TenantConsentedEmailService == model.Yes {
					return false, ""
				}
				return true, "The tenant has not agreed in writing to service by email, so email service cannot establish a deemed service date. Choose another method."
			}
			return true, "The chosen service method cannot establish a deemed service date. Serve by hand, first-class post or document exchange."
		},
	},
	{
		code:  "SERVICE_TOO_EARLY",
		level: model.LevelBlocker,
		fires: func(f *model.Section21PrecheckInput) (bool, string) {
			start, ok := dates.ParseISO(f.StartDateForStatutoryClocks())
			if !ok {
				return false, ""
			}
			planned, ok := dates.ParseISO(f.PlannedServiceDate)
			floor := dates.AddMonths(start, 4)
			if !ok || !planned.Before(floor) {
				return false, ""
			}
			return true, fmt.Sprintf("A Section 21 notice cannot be served within four months of the tenancy starting. The earliest service date is %s.", dates.FormatUK(floor))
		},
	},
	{
		code:  "NO_PROOF_OF_SERVICE",
		level: model.LevelWarning,
		fires: func(f *model.Section21PrecheckInput) (bool, string) {
			if f.HasProofOfServicePlan != model.No {
				return false, ""
			}
			return true, "Without proof of service (a certificate of service, witness or recorded hand delivery) the notice is hard to defend if the tenant disputes receiving it."
		},
	},
}

func runRules(f *model.Section21PrecheckInput) (blockers, warnings []model.Finding) {
	blockers = []model.Finding{}
	warnings = []model.Finding{}
	for _, r := range ruleTable {
		fired, msg := r.fires(f)
		if !fired {
			continue
		}
		finding := model.Finding{Level: r.level, Code: r.code, Message: msg}
		if r.level == model.LevelBlocker {
			blockers = append(blockers, finding)
		} else {
			warnings = append(warnings, finding)
		}
	}
	return blockers, warnings
}
