package quakerisk

// Session binds one set of events and cities to an engine and holds the
// current selection between actions. The city index is built once, since
// cities do not change within a session.
type Session struct {
	engine *Engine
	events []*Event
	cities []*City
	index  *CityIndex
	sel    Selection
}

// NewSession starts an idle session over events and cities.
func (e *Engine) NewSession(events []*Event, cities []*City) *Session {
	return &Session{
		engine: e,
		events: events,
		cities: cities,
		index:  NewCityIndex(cities),
	}
}

// Selection returns the current selection.
func (s *Session) Selection() Selection {
	return s.sel
}

// Events returns the session's events.
func (s *Session) Events() []*Event {
	return s.events
}

// Cities returns the session's cities.
func (s *Session) Cities() []*City {
	return s.cities
}

// Select applies one selection action and returns the new selection.
func (s *Session) Select(target Target) Selection {
	transition := transitionOf(s.sel, target)
	s.sel = onSelect(s.sel, target, s.events, s.cities, s.index)
	s.engine.recordTransition(transition, s.sel)
	return s.sel
}

// Deselect clears every hidden flag and returns to idle.
func (s *Session) Deselect() Selection {
	s.sel = s.engine.OnDeselect(s.events, s.cities)
	return s.sel
}

// VisibleEvents returns the events that are not hidden.
func (s *Session) VisibleEvents() []*Event {
	var out []*Event
	for _, e := range s.events {
		if !e.Hidden {
			out = append(out, e)
		}
	}
	return out
}

// VisibleCities returns the cities that are not hidden.
func (s *Session) VisibleCities() []*City {
	var out []*City
	for _, c := range s.cities {
		if !c.Hidden {
			out = append(out, c)
		}
	}
	return out
}
