package models

// ProviderID names the calendar provider an object was mapped from.
type ProviderID string

const (
	ProviderGoogle ProviderID = "google"
)

// Calendar is a provider-agnostic calendar belonging to one account.
type Calendar struct {
	ID          string     `json:"id"`
	ProviderID  ProviderID `json:"providerId"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	TimeZone    string     `json:"timeZone,omitempty"`
	Primary     bool       `json:"primary"`
	AccountID   string     `json:"accountId"`
	Color       string     `json:"color,omitempty"`
	ReadOnly    bool       `json:"readOnly"`
}
