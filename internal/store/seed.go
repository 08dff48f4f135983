package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"folio-go/internal/auth"
	"folio-go/internal/model"
)

// AdminCredentials are the seeded admin account credentials, taken from
// configuration at startup.
type AdminCredentials struct {
	Username string
	Password string
}

// Seed creates the initial data set: the admin account, the editable content
// records for every page section, and the sample portfolio entries. It is
// idempotent; with a file-backed database a second run is a no-op.
func Seed(ctx context.Context, db *sql.DB, admin AdminCredentials) error {
	queries := New(db)

	if _, err := queries.GetUserByUsername(ctx, admin.Username); err == nil {
		slog.Info("admin user already exists, skipping seed")
		return nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking for admin user: %w", err)
	}

	passwordHash, err := auth.HashPassword(admin.Password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	user, err := queries.CreateUser(ctx, CreateUserParams{
		Username:     admin.Username,
		PasswordHash: passwordHash,
		IsAdmin:      true,
		CreatedAt:    nowUTC(),
	})
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}
	slog.Info("created admin user", "id", user.ID, "username", user.Username)

	if err := seedContent(ctx, queries); err != nil {
		return fmt.Errorf("seeding content: %w", err)
	}
	if err := seedProjects(ctx, queries); err != nil {
		return fmt.Errorf("seeding projects: %w", err)
	}
	if err := seedBlogPosts(ctx, queries); err != nil {
		return fmt.Errorf("seeding blog posts: %w", err)
	}

	return nil
}

func seedContent(ctx context.Context, queries *Queries) error {
	records := []CreateContentParams{
		{Section: "hero", Key: "title", Value: "Marketing Technology, Engineered", Kind: model.ContentKindText},
		{Section: "hero", Key: "subtitle", Value: "I build integrations, automations, and AI tooling that make marketing teams faster.", Kind: model.ContentKindText},
		{Section: "hero", Key: "cta_label", Value: "See my work", Kind: model.ContentKindText},
		{Section: "hero", Key: "background", Value: "/static/img/hero-bg.jpg", Kind: model.ContentKindImage},
		{Section: "about", Key: "title", Value: "About", Kind: model.ContentKindText},
		{Section: "about", Key: "bio", Value: "I spent the last decade connecting CRMs, analytics platforms, and\ncontent pipelines for nonprofits and B2B teams.\n\nThese days I focus on AI-assisted marketing workflows.", Kind: model.ContentKindRichText},
		{Section: "about", Key: "portrait", Value: "/static/img/portrait.jpg", Kind: model.ContentKindImage},
		{Section: "ai", Key: "title", Value: "AI Expertise", Kind: model.ContentKindText},
		{Section: "ai", Key: "description", Value: "Practical machine learning for segmentation, forecasting, and conversational marketing.", Kind: model.ContentKindText},
		{Section: "integrations", Key: "title", Value: "Marketing Integrations", Kind: model.ContentKindText},
		{Section: "integrations", Key: "description", Value: "HubSpot, Salesforce, Blackbaud, Mailchimp and the glue between them.", Kind: model.ContentKindText},
		{Section: "integrations", Key: "platforms", Value: `["HubSpot","Salesforce","Blackbaud","Mailchimp","Asana"]`, Kind: model.ContentKindJSON},
		{Section: "contact", Key: "title", Value: "Get in touch", Kind: model.ContentKindText},
		{Section: "contact", Key: "email", Value: "hello@example.com", Kind: model.ContentKindText},
	}

	now := nowUTC()
	for _, r := range records {
		r.UpdatedAt = now
		if _, err := queries.CreateContent(ctx, r); err != nil {
			return fmt.Errorf("content %s/%s: %w", r.Section, r.Key, err)
		}
	}
	return nil
}

func seedProjects(ctx context.Context, queries *Queries) error {
	projects := []CreateProjectParams{
		{
			Title:        "Impact Wrapped for Community Food Share",
			Description:  "An interactive 'Year in Review' experience for nonprofit donors, showcasing their impact through personalized data visualizations.",
			Category:     "crm-integration",
			Image:        "/static/img/projects/impact-wrapped.jpg",
			Technologies: []string{"React", "Chart.js", "Node.js", "HubSpot Integration"},
			Link:         "https://impact-wrapped.example.com/",
			Featured:     true,
		},
		{
			Title:        "RankZone - Marketing Performance Tracker",
			Description:  "An analytics dashboard for marketing teams to track KPIs, SEO rankings, and competitor analysis with AI-powered recommendations.",
			Category:     "ai-marketing",
			Image:        "/static/img/projects/rankzone.jpg",
			Technologies: []string{"Vue.js", "D3.js", "Express", "Google Analytics API"},
			Link:         "https://rankzone.example.com/",
			Featured:     true,
		},
		{
			Title:        "Marketing Content Calendar System",
			Description:  "An AI-powered content planning platform that synchronizes across marketing channels and integrates with major automation systems.",
			Category:     "automation",
			Image:        "/static/img/projects/content-calendar.jpg",
			Technologies: []string{"React", "Node.js", "Google Calendar API", "OpenAI"},
			Link:         "https://calendar.example.com/",
			Featured:     true,
		},
		{
			Title:        "AI Trivia Generator",
			Description:  "An engagement tool for marketers to create industry-specific trivia games for lead generation and brand awareness campaigns.",
			Category:     "lead-generation",
			Image:        "/static/img/projects/trivia.jpg",
			Technologies: []string{"React", "TypeScript", "OpenAI", "Firebase"},
			Featured:     false,
		},
	}

	for _, p := range projects {
		if _, err := queries.CreateProject(ctx, p); err != nil {
			return fmt.Errorf("project %q: %w", p.Title, err)
		}
	}
	return nil
}

func seedBlogPosts(ctx context.Context, queries *Queries) error {
	posts := []CreateBlogPostParams{
		{
			Title:    "Synergizing HubSpot and Salesforce: The Ultimate MarTech Stack",
			Excerpt:  "Actionable strategies to maximize the integration between two of the most powerful marketing platforms.",
			Content:  "Disconnected marketing systems are a liability modern businesses can't afford.\n\nThis guide explores creating a seamless data flow between **HubSpot's** marketing automation and **Salesforce's** CRM: custom field mappings, workflow automation triggers, and closed-loop reporting dashboards.",
			Category: "MarTech Integration",
			Image:    "/static/img/blog/hubspot-salesforce.jpg",
			Slug:     "synergizing-hubspot-salesforce-martech-stack",
		},
		{
			Title:    "Beyond Basic Automation: AI-Powered Marketing Workflows That Convert",
			Excerpt:  "How to implement AI-driven marketing workflows that improve conversion rates while reducing team workload.",
			Content:  "Marketing automation has evolved far beyond drip campaigns and basic lead scoring.\n\nFrom *predictive lead scoring* to content recommendation engines, these techniques adapt in real time to prospect behavior.",
			Category: "Marketing Automation",
			Image:    "/static/img/blog/ai-workflows.jpg",
			Slug:     "ai-powered-marketing-workflows",
		},
		{
			Title:    "Nonprofit Technology Transformation: Maximizing Impact with Limited Resources",
			Excerpt:  "Strategic approaches for nonprofits to leverage affordable MarTech to amplify their mission and donor engagement.",
			Content:  "Nonprofits compete for donor attention with limited budgets.\n\nThis guide covers segmentation that increases donor retention, automation that nurtures first-time donors into recurring supporters, and impact visualization tools.",
			Category: "Nonprofit MarTech",
			Image:    "/static/img/blog/nonprofit.jpg",
			Slug:     "nonprofit-technology-transformation",
		},
	}

	for _, p := range posts {
		if _, err := queries.CreateBlogPost(ctx, p); err != nil {
			return fmt.Errorf("blog post %q: %w", p.Slug, err)
		}
	}
	return nil
}
