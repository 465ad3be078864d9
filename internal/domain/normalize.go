package domain

import (
	"bytes"
	"encoding/json"
)

// MemberIDs unions the circle's bare users list with the user ids of its
// member records, preserving first-seen order and dropping duplicates and
// empty ids.
func (c Circle) MemberIDs() []string {
	seen := make(map[string]struct{}, len(c.Users)+len(c.Members))
	ids := make([]string, 0, len(c.Users)+len(c.Members))
	add := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, id := range c.Users {
		add(id)
	}
	for _, m := range c.Members {
		add(m.UserID)
	}
	return ids
}

// HasMember reports whether userID belongs to the circle under either
// member representation.
func (c Circle) HasMember(userID string) bool {
	if userID == "" {
		return false
	}
	for _, id := range c.MemberIDs() {
		if id == userID {
			return true
		}
	}
	return false
}

// TripList decodes both list shapes the trips endpoints return: a bare JSON
// array and an object wrapping the array under "trips".
type TripList []Trip

func (l *TripList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var trips []Trip
		if err := json.Unmarshal(trimmed, &trips); err != nil {
			return err
		}
		*l = trips
		return nil
	}
	var wrapped struct {
		Trips []Trip `json:"trips"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return err
	}
	*l = wrapped.Trips
	return nil
}

// CircleList tolerates the same wrapping inconsistency for circle listings.
type CircleList []Circle

func (l *CircleList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var circles []Circle
		if err := json.Unmarshal(trimmed, &circles); err != nil {
			return err
		}
		*l = circles
		return nil
	}
	var wrapped struct {
		Circles []Circle `json:"circles"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return err
	}
	*l = wrapped.Circles
	return nil
}
