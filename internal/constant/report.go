package constant

const (
	ReportTypeMissingPerson = "MISSING_PERSON"
	ReportTypeLostItem      = "LOST_ITEM"
	ReportTypeFoundPerson   = "FOUND_PERSON"
	ReportTypeFoundItem     = "FOUND_ITEM"
)

const (
	ReportStatusActive    = "ACTIVE"
	ReportStatusResolved  = "RESOLVED"
	ReportStatusCancelled = "CANCELLED"
	ReportStatusExpired   = "EXPIRED"
)

var ReportTypes = []string{
	ReportTypeMissingPerson,
	ReportTypeLostItem,
	ReportTypeFoundPerson,
	ReportTypeFoundItem,
}

var ReportStatuses = []string{
	ReportStatusActive,
	ReportStatusResolved,
	ReportStatusCancelled,
	ReportStatusExpired,
}

func IsValidReportType(t string) bool {
	for _, v := range ReportTypes {
		if v == t {
			return true
		}
	}
	return false
}

func IsValidReportStatus(s string) bool {
	for _, v := range ReportStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsPersonType reports whether the type carries person details.
func IsPersonType(t string) bool {
	return t == ReportTypeMissingPerson || t == ReportTypeFoundPerson
}

// IsItemType reports whether the type carries item details.
func IsItemType(t string) bool {
	return t == ReportTypeLostItem || t == ReportTypeFoundItem
}
