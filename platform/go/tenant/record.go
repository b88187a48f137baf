package tenant

// Record is the full content unit for one tenant. Records are decoded from
// the embedded content documents at startup and never mutated afterwards.
type Record struct {
	ID           ID          `json:"id"`
	Name         string      `json:"name"`
	ShortName    string      `json:"shortName"`
	Tagline      string      `json:"tagline"`
	Slogan       string      `json:"slogan"`
	HeroSubtitle string      `json:"heroSubtitle"`
	Description  string      `json:"description"`
	Founded      string      `json:"founded"`
	LogoRef      string      `json:"logoRef"`
	About        About       `json:"about"`
	Leaders      []Leader    `json:"leaders"`
	Campaigns    []Campaign  `json:"campaigns"`
	Contact      Contact     `json:"contact"`
	Highlights   []Highlight `json:"highlights"`
}

// About holds the four narrative sections of the about page.
type About struct {
	History  string `json:"history"`
	Ideology string `json:"ideology"`
	Mission  string `json:"mission"`
	Vision   string `json:"vision"`
}

// Leader is one entry of the leadership roster. IDs are unique within a
// tenant and serve as stable identity for list rendering.
type Leader struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	ImageRef    string `json:"imageRef"`
	Description string `json:"description"`
}

// CampaignStatus is the fixed three-value campaign state set.
type CampaignStatus string

const (
	CampaignOngoing   CampaignStatus = "Ongoing"
	CampaignVictory   CampaignStatus = "Victory"
	CampaignCompleted CampaignStatus = "Completed"
)

// Campaign is one entry of a tenant's campaign history.
type Campaign struct {
	ID          int            `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Year        string         `json:"year"`
	Status      CampaignStatus `json:"status"`
}

// Contact holds the tenant's office and social coordinates.
type Contact struct {
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Social  Social `json:"social"`
}

// Social holds the tenant's social profile URLs.
type Social struct {
	Twitter   string `json:"twitter"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	YouTube   string `json:"youtube"`
}

// Highlight is a display statistic shown on the home page. The values are
// editorial copy, not computed figures.
type Highlight struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}
