package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MetricsSnapshot aggregates the headline numbers for one time window.
// Fields degraded by a backend failure are zero rather than absent.
type MetricsSnapshot struct {
	WindowStart time.Time       `json:"window_start"`
	NewLeads    int             `json:"new_leads"`
	NewClients  int             `json:"new_clients"`
	OpenTickets int             `json:"open_tickets"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// LeadStats is the payload of the leads query
type LeadStats struct {
	WindowStart time.Time      `json:"window_start"`
	Total       int            `json:"total"`
	ByStage     map[string]int `json:"by_stage"`
	Recent      []Lead         `json:"recent"`
}

// RevenueStats is the payload of the revenue query
type RevenueStats struct {
	WindowStart  time.Time       `json:"window_start"`
	Total        decimal.Decimal `json:"total"`
	PaymentCount int             `json:"payment_count"`
	Recent       []Payment       `json:"recent"`
}

// SupportStats is the payload of the support query
type SupportStats struct {
	WindowStart time.Time       `json:"window_start"`
	Total       int             `json:"total"`
	ByStatus    map[string]int  `json:"by_status"`
	Recent      []SupportTicket `json:"recent"`
}

// ClientMatches is the payload of the client query. NoMatches is the
// sentinel for "we looked and found nothing", so the synthesizer can say so
// instead of rendering an empty list.
type ClientMatches struct {
	Query     string   `json:"query"`
	Matches   []Client `json:"matches"`
	NoMatches bool     `json:"no_matches"`
}

// TaskList is the payload of the tasks query. NotConfigured is the sentinel
// for a missing task tracker and is distinct from an empty Tasks slice.
type TaskList struct {
	Tasks         []TrackedTask `json:"tasks"`
	NotConfigured bool          `json:"not_configured"`
}

// HelpPayload is the payload of the general fallback handler
type HelpPayload struct {
	Help string `json:"help"`
}
