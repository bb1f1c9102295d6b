// Package content holds the static portfolio tables rendered by the site.
package content

import (
	"math/rand"
	"slices"

	"flashlight-portfolio/internal/domain"
)

// BadgeColors is the palette badges pick from.
var BadgeColors = []string{
	"bg-blue-500",
	"bg-purple-500",
	"bg-pink-500",
	"bg-indigo-500",
	"bg-teal-500",
	"bg-green-500",
	"bg-orange-500",
	"bg-red-500",
}

var badgeLabels = []string{
	"FULL", "STACK", "DEV", "★", "WEB", "EXPERT", "2025", "⚡",
	"FULL", "STACK", "DEV", "★", "WEB", "EXPERT", "2025", "⚡",
}

// badgeStep is the rotation between neighbouring badges, 360/16.
const badgeStep = 22.5

// Picker chooses an index in [0, n).
type Picker interface {
	Intn(n int) int
}

type globalPicker struct{}

func (globalPicker) Intn(n int) int { return rand.Intn(n) }

func Profile() domain.Profile {
	return domain.Profile{
		Name:     "Azim",
		Role:     "Software Engineer",
		Location: "Bandung, Indonesia",
		Photo:    "/static/azim.png",
	}
}

// Badges returns the orbiting hero badges with freshly picked colors.
func Badges(p Picker) []domain.Badge {
	if p == nil {
		p = globalPicker{}
	}
	out := make([]domain.Badge, len(badgeLabels))
	for i, label := range badgeLabels {
		out[i] = domain.Badge{
			Label:    label,
			Color:    BadgeColors[p.Intn(len(BadgeColors))],
			Rotation: float64(i) * badgeStep,
		}
	}
	return out
}

var projects = []domain.Project{
	{
		Title:       "Dimedika",
		Description: "Medical Record App",
		Stacks:      []string{"NestJS", "NextJS", "Mantine UI", "MongoDB"},
		Image:       "/static/dimedika.png",
		Link:        "https://dimedika.id",
		Type:        domain.ProjectWeb,
	},
	{
		Title:       "Triadhipa Logistic CMS",
		Description: "Website for Profile Company Triadhipa Logistic",
		Stacks:      []string{"ExpressJS", "PostgreSQL", "AWS EC2", "Bootstrap"},
		Image:       "/static/trd.png",
		Link:        "https://trd.co.id",
		Type:        domain.ProjectWeb,
	},
	{
		Title:       "Eroses",
		Description: "Web app for organization get funds from government",
		Stacks:      []string{"NextJS", "Typescript", "Material UI", "Refine UI"},
		Image:       "/static/eroses.png",
		Type:        domain.ProjectWeb,
	},
	{
		Title:       "Life by IFG",
		Description: "Insurance App in IOS, Android PWA Platform for revenue and subscription product's insurance",
		Stacks:      []string{"NextJS", "Tailwind", "Redux Saga", "React Native"},
		Image:       "/static/lifeid.png",
		Type:        domain.ProjectMobile,
	},
	{
		Title:       "Tweakmove Pass",
		Description: "Sandboxing Application for Check in gym room",
		Stacks:      []string{"ReactJS", "Redux", "Electron", "Firebase"},
		Image:       "/static/project-placeholder.jpg",
		Type:        domain.ProjectWeb,
	},
	{
		Title:       "Fishlog WMS",
		Description: "Warehouse management system application for fish logistics",
		Stacks:      []string{"ReactJS", "Redux", "NodeJS", "PostgreSQL"},
		Image:       "/static/project-placeholder.jpg",
		Type:        domain.ProjectWeb,
	},
	{
		Title:       "Kata Konsumen",
		Description: "CMS And blog web for internal",
		Stacks:      []string{"NextJS", "Tailwind", "Redux Saga", "MongoDB"},
		Image:       "/static/project-placeholder.jpg",
		Type:        domain.ProjectWeb,
	},
	{
		Title:       "Sherpa",
		Description: "Application for sales forecasting",
		Stacks:      []string{"NestJS", "MongoDB", "VueJS", "Google Cloud"},
		Image:       "/static/project-placeholder.jpg",
		Type:        domain.ProjectWeb,
	},
}

// Projects returns the featured gallery in display order. Odd entries are
// rendered with the image on the right.
func Projects() []domain.Project {
	out := make([]domain.Project, len(projects))
	for i, p := range projects {
		p.Stacks = slices.Clone(p.Stacks)
		out[i] = p
	}
	return out
}

// TechStack lists every distinct stack across projects in first-seen order.
func TechStack() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range projects {
		for _, s := range p.Stacks {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

func Stats() []domain.Stat {
	return []domain.Stat{
		{Number: "8+", Label: "Web Apps", Description: "Production Ready"},
		{Number: "2+", Label: "Mobile Apps", Description: "Cross Platform"},
		{Number: "3+", Label: "Desktop Apps", Description: "Electron Based"},
		{Number: "5+", Label: "CMS Apps", Description: "Admin Dashboards"},
	}
}

func Metrics() []domain.Metric {
	return []domain.Metric{
		{Number: "99.9%", Label: "Uptime", Color: "text-green-600"},
		{Number: "50K+", Label: "Active Users", Color: "text-blue-600"},
		{Number: "24/7", Label: "Support", Color: "text-purple-600"},
	}
}

func Experience() []domain.Experience {
	return []domain.Experience{
		{
			Company: "Hanel Asia Indonesia",
			Role:    "Frontend Developer",
			Period:  "September 2024 - Jan 2025",
			Responsibilities: []string{
				"Slicing new design",
				"Create Core Component",
				"Integrate web frontend to REST API",
			},
		},
		{
			Company: "OBS Solution",
			Role:    "React Developer",
			Period:  "May - Aug 2024",
			Responsibilities: []string{
				"Create master data for FX Currency",
				"Create layout multi project",
				"Integrate service in frontend",
			},
		},
		{
			Company: "PT IFG Life (Life Insurance)",
			Role:    "Lead Frontend React Developer",
			Period:  "February 2023 - February 2024",
			Responsibilities: []string{
				"Review pull request for merge",
				"Create helper, const and hooks for concrete function",
				"Implementation animation for landing page",
				"Build app to iOS and Android for SIT",
				"Integrate appsflyer in web react application",
				"Help tech lead for report to management",
			},
		},
		{
			Company: "PT Walden Global Service",
			Role:    "Fullstack Developer",
			Period:  "February 2022 - February 2023",
			Responsibilities: []string{
				"Analyze and fixing bug and issues in application",
				"Slicing design figma into react app",
				"Integrate to service backend and implementation business flow",
				"Deploy application to staging or build react app to desktop",
				"Build Rest API for provide frontend",
			},
		},
	}
}

func Contacts() []domain.ContactChannel {
	return []domain.ContactChannel{
		{Kind: "phone", Label: "Phone", Value: "+62 895-3234-96371", Href: "tel:+62895323496371"},
		{Kind: "email", Label: "Email", Value: "budazimbud@gmail.com", Href: "mailto:budazimbud@gmail.com"},
		{Kind: "location", Label: "Location", Value: "Soreang Kab Bandung, Indonesia"},
		{Kind: "linkedin", Label: "LinkedIn", Value: "linkedin.com/in/azim-dot", Href: "https://linkedin.com/in/azim-dot"},
	}
}

// NavItems are the section anchors plus the game link, which opens in a new window.
func NavItems() []domain.NavItem {
	return []domain.NavItem{
		{Label: "Portfolio", Href: "#portfolio"},
		{Label: "Experience", Href: "#experience"},
		{Label: "Contact", Href: "#contact"},
		{Label: "Games", Href: "/games/flashlight", NewWindow: true},
	}
}

func MetaTags() []domain.MetaTag {
	const (
		title       = "Azim - Web and Mobile Developer Portfolio"
		description = "Azim Dev specializes in React, Vue, Angular, and full-stack development. Explore projects, skills, and more on his portfolio."
		image       = "https://porto-azim.vercel.app/images/azim-profile.jpg"
	)
	return []domain.MetaTag{
		{Name: "description", Content: "Azim Dev - Web and mobile developer specializing in React, Vue, Angular, and full-stack development. Portfolio and projects available."},
		{Name: "keywords", Content: "Azim, Azim Dev, Azim Cimahi, Azim Flashlight Games, React, Vue, Angular, Fullstack Developer, Web Developer, Mobile Developer"},
		{Name: "author", Content: "Azim"},
		{Property: "og:title", Content: title},
		{Property: "og:description", Content: description},
		{Property: "og:url", Content: "https://porto-azim.vercel.app/"},
		{Property: "og:image", Content: image},
		{Property: "og:type", Content: "website"},
		{Name: "twitter:card", Content: "summary_large_image"},
		{Name: "twitter:site", Content: "@AzimDev"},
		{Name: "twitter:title", Content: title},
		{Name: "twitter:description", Content: description},
		{Name: "twitter:image", Content: image},
	}
}

// Portfolio is the full page payload served by /api/portfolio and the index template.
type Portfolio struct {
	Profile    domain.Profile          `json:"profile"`
	Badges     []domain.Badge          `json:"badges"`
	Projects   []domain.Project        `json:"projects"`
	TechStack  []string                `json:"techStack"`
	Stats      []domain.Stat           `json:"stats"`
	Metrics    []domain.Metric         `json:"metrics"`
	Experience []domain.Experience     `json:"experience"`
	Contacts   []domain.ContactChannel `json:"contacts"`
	Nav        []domain.NavItem        `json:"nav"`
	Meta       []domain.MetaTag        `json:"meta"`
}

// Load assembles every table into one Portfolio.
func Load(p Picker) Portfolio {
	return Portfolio{
		Profile:    Profile(),
		Badges:     Badges(p),
		Projects:   Projects(),
		TechStack:  TechStack(),
		Stats:      Stats(),
		Metrics:    Metrics(),
		Experience: Experience(),
		Contacts:   Contacts(),
		Nav:        NavItems(),
		Meta:       MetaTags(),
	}
}
