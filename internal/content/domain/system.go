package domain

// SystemEntry describes a tool or platform in the "systems" catalogue.
type SystemEntry struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	Category      string `json:"category" yaml:"category"`
	Logo          string `json:"logo" yaml:"logo"`
	Usage         string `json:"usage" yaml:"usage"`
	WhyChosen     string `json:"whyChosen" yaml:"whyChosen"`
	WhereItBreaks string `json:"whereItBreaks" yaml:"whereItBreaks"`
}

func (s *SystemEntry) Kind() Kind      { return KindSystem }
func (s *SystemEntry) GetID() string   { return s.ID }
func (s *SystemEntry) SetID(id string) { s.ID = id }
func (s *SystemEntry) GetSlug() string { return "" }

func (s *SystemEntry) Normalize() {
	trimAll(&s.Name, &s.Category, &s.Logo, &s.Usage, &s.WhyChosen, &s.WhereItBreaks)
}

func (s *SystemEntry) Validate() error {
	return firstError(
		required("name", s.Name),
		required("category", s.Category),
		required("logo", s.Logo),
		required("usage", s.Usage),
		required("whyChosen", s.WhyChosen),
		required("whereItBreaks", s.WhereItBreaks),
	)
}
