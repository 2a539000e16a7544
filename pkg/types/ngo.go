package types

// NGO is a verified partner organization. NGOs are created from the seed set
// at load time and never mutated.
type NGO struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Location       string `json:"location"`
	Verified       bool   `json:"verified"`
	Description    string `json:"description"`
	Image          string `json:"image,omitempty"`
	OpenNeeds      int    `json:"needs"`
	TotalSupported int    `json:"totalSupported"`
}

// PlatformStats holds the display strings shown on the home page.
type PlatformStats struct {
	TotalDonations string
	NGOPartners    string
	Volunteers     string
	ItemsDonated   string
}
