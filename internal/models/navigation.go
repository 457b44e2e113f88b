package models

import "time"

// Navigation tabs
const (
	TabOverview   = "overview"
	TabDictionary = "dictionary"
	TabProgress   = "progress"
	TabProfile    = "profile"
)

// ValidTab reports whether tab is one of the known navigation tabs
func ValidTab(tab string) bool {
	switch tab {
	case TabOverview, TabDictionary, TabProgress, TabProfile:
		return true
	}
	return false
}

// NavigationState records which tab the client last had active
type NavigationState struct {
	CurrentTab string `json:"currentTab"`
}

// NewNavigationState returns the default navigation state
func NewNavigationState() *NavigationState {
	return &NavigationState{CurrentTab: TabOverview}
}

// NavigationSnapshot is the persisted form of NavigationState
type NavigationSnapshot struct {
	CurrentTab string    `json:"currentTab"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
