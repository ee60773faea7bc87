package explain

import (
	"strings"

	"github.com/Developer-Sahil/portfolio-system/internal/content/domain"
)

// Persona selects how deep and in which register a project is explained.
type Persona string

const (
	PersonaRecruiter Persona = "recruiter"
	PersonaEngineer  Persona = "engineer"
	PersonaArchitect Persona = "architect"
)

var Personas = []Persona{PersonaRecruiter, PersonaEngineer, PersonaArchitect}

func (p Persona) Valid() bool {
	switch p {
	case PersonaRecruiter, PersonaEngineer, PersonaArchitect:
		return true
	}
	return false
}

// ParsePersona accepts the persona name in any case.
func ParsePersona(raw string) (Persona, error) {
	p := Persona(strings.ToLower(strings.TrimSpace(raw)))
	if !p.Valid() {
		return "", domain.Invalid("persona", "must be one of recruiter, engineer, architect")
	}
	return p, nil
}
