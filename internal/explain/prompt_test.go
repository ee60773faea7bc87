package explain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Developer-Sahil/portfolio-system/internal/content/domain"
)

func TestBuildPrompt(t *testing.T) {
	p := &domain.Project{
		Title:                 "Ledger Service",
		OneLiner:              "double-entry bookkeeping",
		TechStack:             []string{"Go", "Postgres", "Kafka", "Redis"},
		Overview:              "A ledger.",
		LLD:                   "Tables per account.",
		ArchitectureDecisions: "Postgres over Cassandra.",
	}

	recruiter := BuildPrompt(p, PersonaRecruiter)
	assert.Contains(t, recruiter, "Project: Ledger Service\n")
	assert.Contains(t, recruiter, "Description: double-entry bookkeeping\n")
	assert.Contains(t, recruiter, "Tech Stack: Go, Postgres, Kafka\n")
	assert.NotContains(t, recruiter, "Redis")
	assert.NotContains(t, recruiter, "Tables per account")

	engineer := BuildPrompt(p, PersonaEngineer)
	assert.Contains(t, engineer, "Overview: A ledger.\n")
	assert.Contains(t, engineer, "Tech Stack: Go, Postgres, Kafka, Redis\n")
	assert.Contains(t, engineer, "LLD: Tables per account.\n")

	architect := BuildPrompt(p, PersonaArchitect)
	assert.Contains(t, architect, "HLD: N/A\n")
	assert.Contains(t, architect, "LLD: Tables per account.\n")
	assert.Contains(t, architect, "Architecture Decisions: Postgres over Cassandra.\n")
	assert.Contains(t, architect, "Failure Points: N/A\n")

	assert.Equal(t, architect, BuildPrompt(p, PersonaArchitect))
	assert.NotEqual(t, recruiter, engineer)
}

func TestParsePersona(t *testing.T) {
	p, err := ParsePersona(" ARCHITECT ")
	assert.NoError(t, err)
	assert.Equal(t, PersonaArchitect, p)

	_, err = ParsePersona("bogus-persona")
	assert.True(t, domain.IsValidation(err))
}
