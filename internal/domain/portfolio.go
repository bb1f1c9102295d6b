package domain

// Profile is the hero section identity.
type Profile struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Location string `json:"location"`
	Photo    string `json:"photo"`
}

// Badge is one of the labels orbiting the profile photo.
type Badge struct {
	Label    string  `json:"label"`
	Color    string  `json:"color"`
	Rotation float64 `json:"rotation"`
}

// ProjectType controls the device frame a project screenshot is shown in.
type ProjectType string

const (
	ProjectWeb    ProjectType = "web"
	ProjectMobile ProjectType = "mobile"
)

// Project is a featured gallery entry.
type Project struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Stacks      []string    `json:"stacks"`
	Image       string      `json:"image"`
	Link        string      `json:"link,omitempty"`
	Type        ProjectType `json:"type"`
}

// Stat is a development-impact counter.
type Stat struct {
	Number      string `json:"number"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Metric is a small headline number under the stats grid.
type Metric struct {
	Number string `json:"number"`
	Label  string `json:"label"`
	Color  string `json:"color"`
}

// Experience is a work-history timeline entry.
type Experience struct {
	Company          string   `json:"company"`
	Role             string   `json:"role"`
	Period           string   `json:"period"`
	Responsibilities []string `json:"responsibilities"`
}

// ContactChannel is one contact card; Href is empty for plain text.
type ContactChannel struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
	Value string `json:"value"`
	Href  string `json:"href,omitempty"`
}

// NavItem is a navigation bar link.
type NavItem struct {
	Label     string `json:"label"`
	Href      string `json:"href"`
	NewWindow bool   `json:"newWindow,omitempty"`
}

// MetaTag is a document head tag; exactly one of Name and Property is set.
type MetaTag struct {
	Name     string `json:"name,omitempty"`
	Property string `json:"property,omitempty"`
	Content  string `json:"content"`
}

// Theme is the site color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme maps unknown values to ThemeLight.
func ParseTheme(raw string) Theme {
	if Theme(raw) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
