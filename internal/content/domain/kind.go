package domain

// Kind names a top-level content collection.
type Kind string

const (
	KindProject Kind = "projects"
	KindWriting Kind = "writings"
	KindSystem  Kind = "systems"
	KindVault   Kind = "vault"
	KindArena   Kind = "arena"
)

// Kinds lists every stored collection in a stable order.
var Kinds = []Kind{KindProject, KindWriting, KindSystem, KindVault, KindArena}

func (k Kind) Singular() string {
	switch k {
	case KindProject:
		return "project"
	case KindWriting:
		return "writing"
	case KindSystem:
		return "system"
	case KindVault:
		return "vault entry"
	case KindArena:
		return "thread"
	}
	return string(k)
}

// HasSlug reports whether records of this kind are addressable by slug.
func (k Kind) HasSlug() bool {
	return k == KindProject || k == KindWriting
}

// Entity is implemented by pointers to every stored record type.
type Entity interface {
	Kind() Kind
	GetID() string
	SetID(id string)
	// GetSlug returns "" for kinds without slugs.
	GetSlug() string
	Normalize()
	Validate() error
}

// Preserver is implemented by entities whose fields are owned by dedicated
// actions and must survive a general update.
type Preserver interface {
	PreserveFrom(stored Entity)
}
