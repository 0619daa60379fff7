// ABOUTME: Data models for CRM entities exchanged with the REST backend
// ABOUTME: Defines Property, Lead, Team, Agent, Visit and related enums
package models

import (
	"strings"
	"time"
)

// Property status values as stored by the backend.
const (
	PropertyAvailable = "AVAILABLE"
	PropertyReserved  = "RESERVED"
	PropertySold      = "SOLD"
	PropertyCancelled = "CANCELLED"
)

// PropertyStatuses lists every status in display order.
var PropertyStatuses = []string{
	PropertyAvailable,
	PropertyReserved,
	PropertySold,
	PropertyCancelled,
}

type Property struct {
	ID                int64    `json:"id"`
	Reference         string   `json:"reference"`
	Title             string   `json:"title"`
	BusinessType      string   `json:"business_type"`
	PropertyType      string   `json:"property_type"`
	Typology          string   `json:"typology"`
	Price             *float64 `json:"price"`
	UsableArea        *float64 `json:"usable_area,omitempty"`
	LandArea          *float64 `json:"land_area,omitempty"`
	District          string   `json:"district"`
	Municipality      string   `json:"municipality"`
	Parish            string   `json:"parish"`
	Street            string   `json:"street,omitempty"`
	Condition         string   `json:"condition,omitempty"`
	EnergyCertificate string   `json:"energy_certificate,omitempty"`
	Published         bool     `json:"published"`
	Featured          bool     `json:"featured"`
	Latitude          *float64 `json:"latitude,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"`
	Bedrooms          int      `json:"bedrooms"`
	Bathrooms         int      `json:"bathrooms"`
	ParkingSpaces     int      `json:"parking_spaces"`
	Images            []string `json:"images"`
	VideoURL          string   `json:"video_url,omitempty"`
	Status            string   `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayAddress joins the address parts into the single display string
// shown in list rows. Empty parts are skipped.
func (p *Property) DisplayAddress() string {
	parts := []string{p.Street, p.Parish, p.Municipality, p.District}
	var kept []string
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, ", ")
}

// Lead status values. The backend stores the lower-case snake form.
const (
	LeadNew            = "new"
	LeadContacted      = "contacted"
	LeadQualified      = "qualified"
	LeadProposalSent   = "proposal_sent"
	LeadVisitScheduled = "visit_scheduled"
	LeadNegotiation    = "negotiation"
	LeadConverted      = "converted"
	LeadLost           = "lost"
)

var LeadStatuses = []string{
	LeadNew,
	LeadContacted,
	LeadQualified,
	LeadProposalSent,
	LeadVisitScheduled,
	LeadNegotiation,
	LeadConverted,
	LeadLost,
}

// Lead origin values.
const (
	SourceWebsite  = "website"
	SourcePortal   = "portal"
	SourceReferral = "referral"
	SourcePhone    = "phone"
	SourceWalkIn   = "walk_in"
)

type Lead struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	Source          string `json:"source,omitempty"`
	Status          string `json:"status"`
	AssignedAgentID *int64 `json:"assigned_agent_id,omitempty"`
	Notes           string `json:"notes,omitempty"`

	// Criteria is present only on buyer leads.
	Criteria *BuyerCriteria `json:"criteria,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Team struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ManagerID   *int64 `json:"manager_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Agent struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Role          string `json:"role"`
	TeamID        *int64 `json:"team_id,omitempty"`
	Bio           string `json:"bio,omitempty"`
	LicenseNumber string `json:"license_number,omitempty"`
	Website       string `json:"website,omitempty"`
	Facebook      string `json:"facebook,omitempty"`
	Instagram     string `json:"instagram,omitempty"`
	LinkedIn      string `json:"linkedin,omitempty"`
	PhotoURL      string `json:"photo_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Visit status values used by the mobile surface.
const (
	VisitScheduled = "scheduled"
	VisitCheckedIn = "checked_in"
	VisitCompleted = "completed"
	VisitCancelled = "cancelled"
)

type Visit struct {
	ID          int64      `json:"id"`
	PropertyID  int64      `json:"property_id"`
	LeadID      int64      `json:"lead_id"`
	AgentID     int64      `json:"agent_id"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	Status      string     `json:"status"`
	CheckInAt   *time.Time `json:"check_in_at,omitempty"`
	CheckOutAt  *time.Time `json:"check_out_at,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

type DashboardStats struct {
	ActiveProperties int `json:"active_properties"`
	NewLeads         int `json:"new_leads"`
	UpcomingVisits   int `json:"upcoming_visits"`
	ConvertedLeads   int `json:"converted_leads"`
	SoldThisMonth    int `json:"sold_this_month"`
}

// Session is the decoded result of GET /auth/me. A missing or non-OK
// response is treated as no session at all, never as an error state.
type Session struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Valid bool   `json:"valid"`
	Exp   *int64 `json:"exp,omitempty"`
}
