package datemath

// Canonical layouts. A normalized due date is always in one of these two shapes.
const (
	LayoutDate     = "2006-01-02"
	LayoutDateTime = "2006-01-02T15:04:05"

	startOfDayClock = "T00:00:00"
	endOfDayClock   = "T23:59:59"
)

// isoLayouts are tried first. Every entry carries a time component.
// time.Parse accepts a fractional second after the seconds field even when
// the layout does not mention it.
var isoLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// plainDateLayout accepts both padded and unpadded month/day.
const plainDateLayout = "2006-1-2"

type fallbackLayout struct {
	layout  string
	hasTime bool
}

var fallbackLayouts = []fallbackLayout{
	{layout: "2006-1-2 15:04:05", hasTime: true},
	{layout: "2006-1-2 15:04", hasTime: true},
	{layout: "2006/1/2 15:04", hasTime: true},
	{layout: "2006/1/2", hasTime: false},
	{layout: "2006.1.2", hasTime: false},
}
