package model

import (
	"strconv"
	"strings"
)

// ParseValue converts a form field to a danger value. Empty or unparsable
// text yields 0, as do negative numbers.
func ParseValue(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// FormModel holds the raw text of one input slot per station, addressable by
// station name. The set of stations is fixed at construction.
type FormModel struct {
	order []string
	text  map[string]string
}

// NewFormModel creates one empty slot per station, in the given order.
func NewFormModel(stations []string) *FormModel {
	m := &FormModel{order: append([]string(nil), stations...), text: make(map[string]string, len(stations))}
	for _, s := range stations {
		m.text[s] = ""
	}
	return m
}

// Stations returns the slot keys in form order.
func (m *FormModel) Stations() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.order...)
}

// SetText stores raw text for station. Unknown stations are ignored.
func (m *FormModel) SetText(station, text string) {
	if m == nil {
		return
	}
	if _, ok := m.text[station]; ok {
		m.text[station] = text
	}
}

// Text returns the raw text for station.
func (m *FormModel) Text(station string) string {
	if m == nil {
		return ""
	}
	return m.text[station]
}

// Values snapshots the coerced value of every slot.
func (m *FormModel) Values() map[string]int {
	if m == nil {
		return map[string]int{}
	}
	out := make(map[string]int, len(m.order))
	for _, s := range m.order {
		out[s] = ParseValue(m.text[s])
	}
	return out
}
