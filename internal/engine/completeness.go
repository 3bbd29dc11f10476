package engine

import (
	"notice-precheck/internal/dates"
	"notice-precheck/internal/model"
)

// A requirement is one question the wizard must have a usable answer for
// before a verdict can be produced. Requirements with an applies guard are
// only demanded while their governing flag is "yes" (or their governing
// enum selected); stale dependent values are ignored, never demanded.
type requirement struct {
	key      model.FieldKey
	label    string
	applies  func(f *model.Section21PrecheckInput) bool
	answered func(f *model.Section21PrecheckInput) bool
}

type section struct {
	name         string
	requirements []requirement
}

// SectionReport lists the unanswered keys of one wizard section.
type SectionReport struct {
	Name string           `json:"name"`
	Keys []model.FieldKey `json:"keys"`
}

// Report is the completeness verdict: the ordered keys and labels still
// needed, plus the same keys grouped by section for step gating.
type Report struct {
	MissingKeys   []model.FieldKey `json:"missing_keys"`
	MissingLabels []string         `json:"missing_labels"`
	Sections      []SectionReport  `json:"sections"`
}

func flagAnswered(get func(f *model.Section21PrecheckInput) model.Answer) func(*model.Section21PrecheckInput) bool {
	return func(f *model.Section21PrecheckInput) bool { return get(f).Answered() }
}

// Malformed dates count as unanswered: the engine degrades bad input to
// incompleteness rather than failing.
func dateAnswered(get func(f *model.Section21PrecheckInput) string) func(*model.Section21PrecheckInput) bool {
	return func(f *model.Section21PrecheckInput) bool {
		_, ok := dates.ParseISO(get(f))
		return ok
	}
}

var sections = []section{
	{
		name: "tenancy_service",
		requirements: []requirement{
			{
				key:   "tenancy_type",
				label: "Tenancy type (fixed term or periodic)",
				answered: func(f *model.Section21PrecheckInput) bool {
					return f.TenancyType == model.TenancyFixedTerm || f.TenancyType == model.TenancyPeriodic
				},
			},
			{
				key:      "tenancy_start_date",
				label:    "Tenancy start date",
				answered: dateAnswered(func(f *model.Section21PrecheckInput) string { return f.TenancyStartDate }),
			},
			{
				key:      "is_replacement_tenancy",
				label:    "Whether this tenancy replaced an earlier one for the same property",
				answered: flagAnswered(func(f *model.Section21PrecheckInput) model.Answer { return f.IsReplacementTenancy }),
			},
			{
				key:      "original_tenancy_start_date",
				label:    "Start date of the original tenancy",
				applies:  func(f *model.Section21PrecheckInput) bool { return f.IsReplacementTenancy == model.Yes },
				answered: dateAnswered(func(f *model.Section21PrecheckInput) string { return f.OriginalTenancyStartDate }),
			},
			{
				key:      "fixed_term_end_date",
				label:    "Fixed term end date",
				applies:  func(f *model.Section21PrecheckInput) bool { return f.TenancyType == model.TenancyFixedTerm },
				answered: dateAnswered(func(f *model.Section21PrecheckInput) string { return f.FixedTermEndDate }),
			},
			{
				key:      "has_break_clause",
				label:    "Whether the agreement contains a break clause",
				applies:  func(f *model.Section21PrecheckInput) bool { return f.TenancyType == model.TenancyFixedTerm },
				answered: flagAnswered(func(f *model.Section21PrecheckInput) model.Answer { return f.HasBreakClause }),
			},
			{
				key:   "break_clause_earliest_end_date",
				label: "Earliest date the break clause allows the tenancy to end",
				applies: func(f *model.Section21PrecheckInput) bool {
					return f.TenancyType == model.TenancyFixedTerm && f.HasBreakClause == model.Yes
				},
				answered: dateAnswered(func(f *model.Section21PrecheckInput) string { return f.BreakClauseEarliestEndDate }),
			},
			{
				key:     "rent_period",
				label:   "How often rent is due",
				applies: func(f *model.Section21PrecheckInput) bool { return f.TenancyType == model.TenancyPeriodic },
				answered: func(f *model.Section21PrecheckInput) bool {
					return f.RentPeriod != model.RentUnsure && f.RentPeriod != ""
				},
			},
			{
				key:   "landlord_type",
				label: "Whether the landlord is a private landlord or social provider",
				answered: func(f *model.Section21PrecheckInput) bool {
					return f.LandlordType == model.LandlordPrivate || f.LandlordType == model.LandlordSocial
				},
			},
			{
				key:      "planned_service_date",
				label:    "Date you plan to serve the notice",
				answered: dateAnswered(func(f *model.Section21PrecheckInput) string { return f.PlannedServiceDate }),
			},
			{
				key:   "service_method",
				label: "How the notice will be served",
				answered: func(f *model.Section21PrecheckInput) bool {
					switch f.ServiceMethod {
					case model.ServiceHand, model.ServiceFirstClassPost, model.ServiceDocumentExchange,
						model.ServiceEmail, model.ServiceOther:
						return true
					}
					return false
				},
			},
			{
				key:   "served_before_cutoff",
				label: "Whether service will happen before 4:30pm",
				applies: func(f *model.Section21PrecheckInput) bool {
					switch f.ServiceMethod {
					case model.ServiceHand, model.ServiceDocumentExchange, model.ServiceEmail:
						return true
					}
					return false
				},
				answered: flagAnswered(func(f *model.Section21PrecheckInput) model.Answer { return f.ServedBeforeCutoff }),
			},
			{
				key:      "tenant_consented_email_service",
				label:    "Whether the tenant agreed in writing to service by email",
				applies:  func(f *model.Section21PrecheckInput) bool { return f.ServiceMethod == model.ServiceEmail },
				answered: flagAnswered(func(f *model.Section21PrecheckInput) model.Answer { return f.TenantConsentedEmailService }),
			},
			{
				key:      "has_proof_of_service_plan",
				label:    "Whether you have a plan to prove service happened",
				answered: flagAnswered(func(f *model.Section21PrecheckInput) model.Answer { return f.HasProofOfServicePlan }),
			},
		},
	},
	{
		name: "deposit",
		requirements: []requirement{
			{
				key:      "deposit_taken",
				label:    "Whether a tenancy deposit was taken",
				answered: flagAnswered(func(f *model.Section21PrecheckInput) model.Answer { return f.DepositTaken }),
			},
			{
				key:      "deposit_received_date",
				label:    "Date the deposit was received",
				applies:  func(f *model.Section21PrecheckInput) bool { return f.DepositTaken == model.Yes },
				answered: dateAnswered(func(f *model.Section21PrecheckInput) string { return f.DepositReceivedDate }),
			},
			{
				key:      "deposit_paid_by_third_party",
				label:    "Whether someone other than the tenant paid the deposit",
				applies:  func(f *model.Section21PrecheckInput) bool { return f.DepositTaken == model.Yes },
				answered: flagAnswered(func(f *model.Section21PrecheckInput) model.Answer { return f.DepositPaidByThirdParty }),
			},
		},
	},
	{
		name: "prescribed_documents",
		requirements: []requirement{
			{
				key:      "epc_required",
				label:    "Whether the property needs an Energy Performance Certificate",
				answered: flagAnswered(func(f *model.Section21PrecheckInput) model.Answer { return f.EPCRequired }),
			},
			{
				key:      "gas_installed",
				label:    "Whether the property has a gas installation",
				answered: flagAnswered(func(f *model.Section21PrecheckInput) model.Answer { return f.GasInstalled }),
			},
			{
				key:      "how_to_rent_was_current",
				label:    "Whether the How to Rent guide given was the current version",
				applies:  func(f *model.Section21PrecheckInput) bool { return howToRentApplies(f) && f.HowToRentServedDate != "" },
				answered: flagAnswered(func(f *model.Section21PrecheckInput) model.Answer { return f.HowToRentWasCurrent }),
			},
			{
				key:     "how_to_rent_service_method",
				label:   "How the How to Rent guide was given to the tenant",
				applies: func(f *model.Section21PrecheckInput) bool { return f.HowToRentServedDate != "" },
				answered: func(f *model.Section21PrecheckInput) bool {
					return f.HowToRentServiceMethod == model.HowToRentHardCopy || f.HowToRentServiceMethod == model.HowToRentEmail
				},
			},
		},
	},
	{
		name: "licensing_restrictions",
		requirements: []requirement{
			{
				key:      "hmo_licence_required",
				label:    "Whether the property needs an HMO licence",
				answered: flagAnswered(func(f *model.Section21PrecheckInput) model.Answer { return f.HMOLicenceRequired }),
			},
			{
				key:      "hmo_licence_in_place",
				label:    "Whether the HMO licence is in place",
				applies:  func(f *model.Section21PrecheckInput) bool { return f.HMOLicenceRequired == model.Yes },
				answered: flagAnswered(func(f *model.Section21PrecheckInput) model.Answer { return f.HMOLicenceInPlace }),
			},
			{
				key:      "selective_licence_required",
				label:    "Whether the property is in a selective licensing area",
				answered: flagAnswered(func(f *model.Section21PrecheckInput) model.Answer { return f.SelectiveLicenceRequired }),
			},
			{
				key:      "selective_licence_in_place",
				label:    "Whether the selective licence is in place",
				applies:  func(f *model.Section21PrecheckInput) bool { return f.SelectiveLicenceRequired == model.Yes },
				answered: flagAnswered(func(f *model.Section21PrecheckInput) model.Answer { return f.SelectiveLicenceInPlace }),
			},
			{
				key:      "improvement_notice_served",
				label:    "Whether the council served an improvement notice",
				answered: flagAnswered(func(f *model.Section21PrecheckInput) model.Answer { return f.ImprovementNoticeServed }),
			},
			{
				key:      "improvement_notice_date",
				label:    "Date of the improvement notice",
				applies:  func(f *model.Section21PrecheckInput) bool { return f.ImprovementNoticeServed == model.Yes },
				answered: dateAnswered(func(f *model.Section21PrecheckInput) string { return f.ImprovementNoticeDate }),
			},
			{
				key:      "emergency_remedial_served",
				label:    "Whether the council took emergency remedial action",
				answered: flagAnswered(func(f *model.Section21PrecheckInput) model.Answer { return f.EmergencyRemedialServed }),
			},
			{
				key:      "emergency_remedial_date",
				label:    "Date of the emergency remedial action",
				applies:  func(f *model.Section21PrecheckInput) bool { return f.EmergencyRemedialServed == model.Yes },
				answered: dateAnswered(func(f *model.Section21PrecheckInput) string { return f.EmergencyRemedialDate }),
			},
			{
				key:      "prohibited_payment_outstanding",
				label:    "Whether a banned fee or unrefunded holding deposit is outstanding",
				answered: flagAnswered(func(f *model.Section21PrecheckInput) model.Answer { return f.ProhibitedPaymentOutstanding }),
			},
		},
	},
}

// Completeness walks the requirement table in order and reports every
// question still unanswered. It is pure and idempotent; the host re-runs it
// on every field change.
func Completeness(f *model.Section21PrecheckInput) Report {
	report := Report{
		MissingKeys:   []model.FieldKey{},
		MissingLabels: []string{},
	}
	for _, sec := range sections {
		sr := SectionReport{Name: sec.name}
		for _, req := range sec.requirements {
			if req.applies != nil && !req.applies(f) {
				continue
			}
			if req.answered(f) {
				continue
			}
			report.MissingKeys = append(report.MissingKeys, req.key)
			report.MissingLabels = append(report.MissingLabels, req.label)
			sr.Keys = append(sr.Keys, req.key)
		}
		if len(sr.Keys) > 0 {
			report.Sections = append(report.Sections, sr)
		}
	}
	return report
}
