package quakerisk

// EventKind is the classification outcome of an event.
type EventKind int

const (
	// Unclassified events have not been through a classification pass.
	Unclassified EventKind = iota
	// Land events fall inside one of the loaded regions.
	Land
	// Ocean events matched no region. This is a valid outcome, not an error.
	Ocean
)

func (k EventKind) String() string {
	switch k {
	case Land:
		return "land"
	case Ocean:
		return "ocean"
	default:
		return "unclassified"
	}
}

// Event is a located earthquake. Location, magnitude and depth are fixed at
// construction; the region tag is write-once and the hidden flag belongs to
// the selection protocol.
type Event struct {
	Location  Point
	Magnitude float64
	Depth     float64 // km; negative values are passed through unvalidated
	Title     string
	Key       string // geohash-derived identity used for duplicate detection

	region     string
	classified bool
	Hidden     bool
}

// Region returns the tagged region ID and whether the event is tagged.
func (e *Event) Region() (string, bool) {
	return e.region, e.region != ""
}

// SetRegion tags the event with a region ID if it has none yet. It reports
// whether the tag now equals id; an existing different tag is never replaced.
func (e *Event) SetRegion(id string) bool {
	if id == "" {
		return false
	}
	if e.region == "" {
		e.region = id
	}
	return e.region == id
}

// Kind returns the event's classification outcome.
func (e *Event) Kind() EventKind {
	switch {
	case e.region != "":
		return Land
	case e.classified:
		return Ocean
	default:
		return Unclassified
	}
}

// Radius returns the display radius derived from the magnitude.
func (e *Event) Radius() float64 {
	return Radius(e.Magnitude)
}

// ThreatCircleKm returns the event's threat-circle distance.
func (e *Event) ThreatCircleKm() float64 {
	return ThreatCircleKm(e.Magnitude)
}

// City is a named populated place.
type City struct {
	Location   Point
	Name       string
	Population *int64 // nil when the source has no figure
	Hidden     bool
}
