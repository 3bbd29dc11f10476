package model

type Status string

const (
	StatusIncomplete Status = "incomplete"
	StatusRisky      Status = "risky"
	StatusValid      Status = "valid"
)

const (
	LevelBlocker = "BLOCKER"
	LevelWarning = "WARNING"
)

// Finding is one fired rule: a stable code for the host to branch on plus a
// user-facing message.
type Finding struct {
	Level   string `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Display carries the user-facing strings for a result. Summary is the
// full ungated text; GatedSummary is the teaser shown before the user
// unlocks the report, naming counts but no detail.
type Display struct {
	Headline     string `json:"headline"`
	Summary      string `json:"summary"`
	GatedSummary string `json:"gated_summary"`
}

// Section21PrecheckResult is the computed verdict. Date fields hold ISO
// strings and are empty whenever a deemed service date could not be
// established. Blockers and warnings keep rule-table order.
type Section21PrecheckResult struct {
	Status               Status     `json:"status"`
	Display              Display    `json:"display"`
	Blockers             []Finding  `json:"blockers"`
	Warnings             []Finding  `json:"warnings"`
	DeemedServiceDate    string     `json:"deemed_service_date"`
	EarliestAfterDate    string     `json:"earliest_after_date"`
	LatestCourtStartDate string     `json:"latest_court_start_date"`
	MissingKeys          []FieldKey `json:"missing_keys"`
	MissingLabels        []string   `json:"missing_labels"`
}
