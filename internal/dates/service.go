package dates

import (
	"errors"
	"time"

	"notice-precheck/internal/model"
)

// ErrNoDeemedDate means the chosen service method cannot establish a deemed
// service date (unknown method, or email without tenant consent). Callers
// surface this as a blocker, never as a crash.
var ErrNoDeemedDate = errors.New("deemed service date cannot be established")

// DeemedService computes the date the notice is legally treated as served.
//
// Personal service, document exchange and consented email land on the
// planned day when effected before 16:30 on a working day, otherwise the
// next working day. First-class post is deemed served on the second day
// after posting, rolled forward to a working day.
func DeemedService(planned time.Time, method model.ServiceMethod, beforeCutoff, emailConsent model.Answer) (time.Time, error) {
	switch method {
	case model.ServiceHand, model.ServiceDocumentExchange:
		return sameOrNextWorkingDay(planned, beforeCutoff), nil
	case model.ServiceEmail:
		if emailConsent != model.Yes {
			return time.Time{}, ErrNoDeemedDate
		}
		return sameOrNextWorkingDay(planned, beforeCutoff), nil
	case model.ServiceFirstClassPost:
		// Second day after posting: one clear day, then roll off
		// weekends and bank holidays.
		return RollToWorkingDay(AddClearDays(planned, 1)), nil
	default:
		return time.Time{}, ErrNoDeemedDate
	}
}

func sameOrNextWorkingDay(planned time.Time, beforeCutoff model.Answer) time.Time {
	if beforeCutoff == model.Yes && IsWorkingDay(planned) {
		return planned
	}
	return NextWorkingDay(planned)
}

// MinNoticeMonths returns the statutory minimum notice period in months:
// two months, extended to one full rent period for quarterly and yearly
// periodic tenancies.
func MinNoticeMonths(facts *model.Section21PrecheckInput) int {
	if facts.TenancyType != model.TenancyPeriodic {
		return 2
	}
	switch facts.RentPeriod {
	case model.RentQuarterly:
		return 3
	case model.RentYearly:
		return 6
	}
	return 2
}

// EarliestAfter computes the earliest date the tenant can be required to
// leave: deemed service plus the minimum notice period, then clamped
// forward to the fixed-term end (or the break clause earliest end when one
// exists) and to six months from the start of the original tenancy.
func EarliestAfter(deemed time.Time, facts *model.Section21PrecheckInput) time.Time {
	earliest := AddMonths(deemed, MinNoticeMonths(facts))

	if facts.TenancyType == model.TenancyFixedTerm {
		if facts.HasBreakClause == model.Yes {
			if brk, ok := ParseISO(facts.BreakClauseEarliestEndDate); ok && brk.After(earliest) {
				earliest = brk
			}
		} else if end, ok := ParseISO(facts.FixedTermEndDate); ok && end.After(earliest) {
			earliest = end
		}
	}

	if start, ok := ParseISO(facts.StartDateForStatutoryClocks()); ok {
		if floor := AddMonths(start, 6); floor.After(earliest) {
			earliest = floor
		}
	}
	return earliest
}

// LatestCourtStart computes the deadline for beginning possession
// proceedings: six months from deemed service, or four months from the
// specified date where the notice period ran longer than two months from
// service. The notice expires and must be re-served after this date.
func LatestCourtStart(deemed, earliest time.Time) time.Time {
	byGiving := AddMonths(deemed, 6)
	bySpecified := AddMonths(earliest, 4)
	if bySpecified.After(byGiving) {
		return bySpecified
	}
	return byGiving
}
