package model

// Category classifies a life event.
type Category string

const (
	CategoryHealth  Category = "HEALTH"
	CategoryFinance Category = "FINANCE"
	CategoryHome    Category = "HOME"
	CategoryWork    Category = "WORK"
	CategorySocial  Category = "SOCIAL"
	CategoryTravel  Category = "TRAVEL"
	CategoryRenewal Category = "RENEWAL"
	CategoryOther   Category = "OTHER"
)

// Categories lists every valid category, in display order.
var Categories = []Category{
	CategoryHealth, CategoryFinance, CategoryHome, CategoryWork,
	CategorySocial, CategoryTravel, CategoryRenewal, CategoryOther,
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// SourceType records where an event came from. Voice input is transcribed
// upstream and arrives as text.
type SourceType string

const (
	SourceFile SourceType = "file"
	SourceText SourceType = "text"
)

// Frequency is the recurrence step unit.
type Frequency string

const (
	FreqDaily   Frequency = "DAILY"
	FreqWeekly  Frequency = "WEEKLY"
	FreqMonthly Frequency = "MONTHLY"
	FreqYearly  Frequency = "YEARLY"
)

// RecurrenceRule describes how one base event expands into a dated series.
type RecurrenceRule struct {
	Frequency Frequency // DAILY / WEEKLY / MONTHLY / YEARLY
	Interval  int       // every N units; values < 1 are treated as 1
	Until     string    // YYYY-MM-DD inclusive bound; empty = default 3 months out
	Count     int       // max occurrences; values < 1 default to 20
}

// Event is the central entity of the planner.
//
// Optional string fields use "" for absent. Date strings are canonical
// YYYY-MM-DD, times are local HH:MM (24h). An empty Date means the event is
// undated ("anytime").
type Event struct {
	ID          string
	Title       string
	Description string
	Date        string // "" = undated
	StartTime   string
	EndTime     string
	Category    Category
	Amount      string
	Currency    string
	SourceType  SourceType

	// Renewal obligations: Date holds the reminder date (expiry - 30 days),
	// ExpiryDate the real expiration.
	IsRenewal  bool
	ExpiryDate string

	Recurrence *RecurrenceRule

	// Set only on instances produced by recurrence expansion. All instances
	// of one expansion share GroupID; SeriesIndex is 1-based.
	GroupID     string
	SeriesIndex int
	SeriesTotal int

	// Derived flags, owned by the issue detector. Never set at creation.
	IsConflict bool
	IsPast     bool

	// Free-text hint shown to the user; cleared when a conflict is resolved.
	AISuggestion string
}

// Resolution actions for conflicting events.
const (
	ActionReschedule = "RESCHEDULE"
	ActionDelete     = "DELETE"
)

// IssueConflict is the only issue type the resolution planner handles.
// Past-due events are deliberately excluded from remediation.
const IssueConflict = "CONFLICT"

// Resolution is a proposed remediation for one conflicting event.
type Resolution struct {
	EventID      string
	IssueType    string // always IssueConflict
	Message      string
	Action       string // default ActionReschedule
	NewDate      string
	NewStartTime string
	NewEndTime   string
}
