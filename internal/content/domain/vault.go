package domain

// VaultEntry is a short knowledge note grouped by category.
type VaultEntry struct {
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Category string   `json:"category" yaml:"category"`
	Tags     []string `json:"tags" yaml:"tags"`
	Content  string   `json:"content" yaml:"content"`
}

func (v *VaultEntry) Kind() Kind      { return KindVault }
func (v *VaultEntry) GetID() string   { return v.ID }
func (v *VaultEntry) SetID(id string) { v.ID = id }
func (v *VaultEntry) GetSlug() string { return "" }

func (v *VaultEntry) Normalize() {
	trimAll(&v.Title, &v.Category)
	v.Tags = cleanList(v.Tags)
}

func (v *VaultEntry) Validate() error {
	return firstError(
		required("title", v.Title),
		required("category", v.Category),
		required("content", v.Content),
	)
}
