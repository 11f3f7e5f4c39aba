package quakerisk

// Classify resolves the event to the first region, in caller order, that
// contains its location. On a match the event is tagged; an event that was
// already tagged keeps its tag and that tag is returned without re-testing.
// An event outside every region is oceanic and returns ("", false).
func Classify(e *Event, regions []*Region) (string, bool) {
	if id, ok := e.Region(); ok {
		return id, true
	}
	e.classified = true

	for _, r := range regions {
		if r.Contains(e.Location) {
			e.SetRegion(r.ID)
			return r.ID, true
		}
	}
	return "", false
}

// ClassifyAll classifies every event and returns a fresh tally. The tally is
// stamped with the zero time; use Engine.ClassifyAll for a timestamped pass.
func ClassifyAll(events []*Event, regions []*Region) RiskTally {
	for _, e := range events {
		Classify(e, regions)
	}
	return Aggregate(events, regions)
}
