package model

// Answer is a tri-state reply to a yes/no question. The zero value means the
// question has not been asked yet; Unsure means the user actively answered
// "not sure". Both count as unanswered for completeness purposes.
type Answer string

const (
	Yes    Answer = "yes"
	No     Answer = "no"
	Unsure Answer = "unsure"
)

// Answered reports whether the user gave a definite yes or no.
func (a Answer) Answered() bool {
	return a == Yes || a == No
}

type TenancyType string

const (
	TenancyFixedTerm TenancyType = "fixed_term"
	TenancyPeriodic  TenancyType = "periodic"
	TenancyUnsure    TenancyType = "unsure"
)

type RentPeriod string

const (
	RentWeekly      RentPeriod = "weekly"
	RentFortnightly RentPeriod = "fortnightly"
	RentFourWeekly  RentPeriod = "four_weekly"
	RentMonthly     RentPeriod = "monthly"
	RentQuarterly   RentPeriod = "quarterly"
	RentYearly      RentPeriod = "yearly"
	RentOther       RentPeriod = "other"
	RentUnsure      RentPeriod = "unsure"
)

type ServiceMethod string

const (
	ServiceHand             ServiceMethod = "hand"
	ServiceFirstClassPost   ServiceMethod = "first_class_post"
	ServiceDocumentExchange ServiceMethod = "document_exchange"
	ServiceEmail            ServiceMethod = "email"
	ServiceOther            ServiceMethod = "other"
	ServiceUnsure           ServiceMethod = "unsure"
)

type LandlordType string

const (
	LandlordPrivate LandlordType = "private_landlord"
	LandlordSocial  LandlordType = "social_provider"
	LandlordUnsure  LandlordType = "unsure"
)

type HowToRentMethod string

const (
	HowToRentHardCopy HowToRentMethod = "hard_copy"
	HowToRentEmail    HowToRentMethod = "email"
	HowToRentUnsure   HowToRentMethod = "unsure"
)

// FieldKey identifies one question in the fact schema. Keys match the JSON
// tags on Section21PrecheckInput.
type FieldKey string

// Section21PrecheckInput is the full fact object the wizard populates. Date
// fields hold ISO YYYY-MM-DD strings and are empty until answered. A
// dependent field is only meaningful while its governing flag is "yes";
// consumers must gate on the flag and never assume stale values were
// cleared.
type Section21PrecheckInput struct {
	// Tenancy
	TenancyType                TenancyType  `json:"tenancy_type"`
	TenancyStartDate           string       `json:"tenancy_start_date"`
	IsReplacementTenancy       Answer       `json:"is_replacement_tenancy"`
	OriginalTenancyStartDate   string       `json:"original_tenancy_start_date"`
	FixedTermEndDate           string       `json:"fixed_term_end_date"`
	HasBreakClause             Answer       `json:"has_break_clause"`
	BreakClauseEarliestEndDate string       `json:"break_clause_earliest_end_date"`
	RentPeriod                 RentPeriod   `json:"rent_period"`
	LandlordType               LandlordType `json:"landlord_type"`

	// Service of the notice
	PlannedServiceDate          string        `json:"planned_service_date"`
	ServiceMethod               ServiceMethod `json:"service_method"`
	ServedBeforeCutoff          Answer        `json:"served_before_cutoff"`
	TenantConsentedEmailService Answer        `json:"tenant_consented_email_service"`
	HasProofOfServicePlan       Answer        `json:"has_proof_of_service_plan"`

	// Deposit
	DepositTaken                     Answer `json:"deposit_taken"`
	DepositReceivedDate              string `json:"deposit_received_date"`
	DepositProtectedDate             string `json:"deposit_protected_date"`
	DepositPaidByThirdParty          Answer `json:"deposit_paid_by_third_party"`
	PrescribedInfoTenantDate         string `json:"prescribed_info_tenant_date"`
	PrescribedInfoRelevantPersonDate string `json:"prescribed_info_relevant_person_date"`
	DepositReturnedInFull            Answer `json:"deposit_returned_in_full"`
	DepositReturnedDate              string `json:"deposit_returned_date"`
	DepositClaimResolvedByCourt      Answer `json:"deposit_claim_resolved_by_court"`

	// Prescribed documents
	EPCRequired            Answer          `json:"epc_required"`
	EPCServedDate          string          `json:"epc_served_date"`
	GasInstalled           Answer          `json:"gas_installed"`
	GasSafetyIssueDate     string          `json:"gas_safety_issue_date"`
	GasSafetyServedDate    string          `json:"gas_safety_served_date"`
	HowToRentWasCurrent    Answer          `json:"how_to_rent_was_current"`
	HowToRentServedDate    string          `json:"how_to_rent_served_date"`
	HowToRentServiceMethod HowToRentMethod `json:"how_to_rent_service_method"`

	// Licensing and restrictions
	HMOLicenceRequired           Answer `json:"hmo_licence_required"`
	HMOLicenceInPlace            Answer `json:"hmo_licence_in_place"`
	SelectiveLicenceRequired     Answer `json:"selective_licence_required"`
	SelectiveLicenceInPlace      Answer `json:"selective_licence_in_place"`
	ImprovementNoticeServed      Answer `json:"improvement_notice_served"`
	ImprovementNoticeDate        string `json:"improvement_notice_date"`
	EmergencyRemedialServed      Answer `json:"emergency_remedial_served"`
	EmergencyRemedialDate        string `json:"emergency_remedial_date"`
	ProhibitedPaymentOutstanding Answer `json:"prohibited_payment_outstanding"`
}

// DefaultFacts returns the blank questionnaire: every flag and enum at
// "unsure", every date empty. It always evaluates to incomplete.
func DefaultFacts() Section21PrecheckInput {
	return Section21PrecheckInput{
		TenancyType:                  TenancyUnsure,
		IsReplacementTenancy:         Unsure,
		HasBreakClause:               Unsure,
		RentPeriod:                   RentUnsure,
		LandlordType:                 LandlordUnsure,
		ServiceMethod:                ServiceUnsure,
		ServedBeforeCutoff:           Unsure,
		TenantConsentedEmailService:  Unsure,
		HasProofOfServicePlan:        Unsure,
		DepositTaken:                 Unsure,
		DepositPaidByThirdParty:      Unsure,
		DepositReturnedInFull:        Unsure,
		DepositClaimResolvedByCourt:  Unsure,
		EPCRequired:                  Unsure,
		GasInstalled:                 Unsure,
		HowToRentWasCurrent:          Unsure,
		HowToRentServiceMethod:       HowToRentUnsure,
		HMOLicenceRequired:           Unsure,
		HMOLicenceInPlace:            Unsure,
		SelectiveLicenceRequired:     Unsure,
		SelectiveLicenceInPlace:      Unsure,
		ImprovementNoticeServed:      Unsure,
		EmergencyRemedialServed:      Unsure,
		ProhibitedPaymentOutstanding: Unsure,
	}
}

// StartDateForStatutoryClocks returns the date the four-month and six-month
// tenancy clocks run from: the original tenancy start for a replacement
// tenancy, otherwise the current tenancy start.
func (f *Section21PrecheckInput) StartDateForStatutoryClocks() string {
	if f.IsReplacementTenancy == Yes && f.OriginalTenancyStartDate != "" {
		return f.OriginalTenancyStartDate
	}
	return f.TenancyStartDate
}
