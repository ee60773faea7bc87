package domain

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Project is a portfolio case study, publicly addressed by slug.
type Project struct {
	ID                    string   `json:"id" yaml:"id"`
	Title                 string   `json:"title" yaml:"title"`
	Slug                  string   `json:"slug" yaml:"slug"`
	Thumbnail             string   `json:"thumbnail" yaml:"thumbnail"`
	OneLiner              string   `json:"oneLiner" yaml:"oneLiner"`
	TechStack             []string `json:"techStack" yaml:"techStack"`
	Featured              bool     `json:"featured" yaml:"featured"`
	Status                string   `json:"status" yaml:"status"`
	Overview              string   `json:"overview" yaml:"overview"`
	Motivation            string   `json:"motivation" yaml:"motivation"`
	HLD                   string   `json:"hld" yaml:"hld"`
	LLD                   string   `json:"lld" yaml:"lld"`
	ArchitectureDecisions string   `json:"architectureDecisions" yaml:"architectureDecisions"`
	FailurePoints         string   `json:"failurePoints" yaml:"failurePoints"`
	LiveDemo              *string  `json:"liveDemo,omitempty" yaml:"liveDemo"`
	GitHub                *string  `json:"github,omitempty" yaml:"github"`
}

func (p *Project) Kind() Kind        { return KindProject }
func (p *Project) GetID() string     { return p.ID }
func (p *Project) SetID(id string)   { p.ID = id }
func (p *Project) GetSlug() string   { return p.Slug }
func (p *Project) IsPublished() bool { return p.Status == StatusPublished }

func (p *Project) Normalize() {
	trimAll(&p.Title, &p.Slug, &p.Thumbnail, &p.OneLiner, &p.Status, &p.Overview)
	trimOptional(&p.LiveDemo)
	trimOptional(&p.GitHub)
	p.TechStack = cleanList(p.TechStack)
	p.Slug = deriveSlug(p.Slug, p.Title)
	if p.Status == "" {
		p.Status = StatusPublished
	}
}

func (p *Project) Validate() error {
	if p.Status != StatusDraft && p.Status != StatusPublished {
		return Invalid("status", "must be %q or %q", StatusDraft, StatusPublished)
	}
	return firstError(
		required("title", p.Title),
		validSlug(p.Slug),
		required("thumbnail", p.Thumbnail),
		required("oneLiner", p.OneLiner),
		required("overview", p.Overview),
		optionalURL("liveDemo", p.LiveDemo),
		optionalURL("github", p.GitHub),
	)
}
