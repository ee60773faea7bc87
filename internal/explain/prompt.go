package explain

import (
	"fmt"
	"strings"

	"github.com/Developer-Sahil/portfolio-system/internal/content/domain"
)

const missing = "N/A"

const (
	recruiterBrief = `You are an expert technical recruiter. Explain the following project so its business value and technical complexity come across in under 30 seconds (maximum 100 words).
Focus on what it does, the key tech stack and the impact.
Use professional, concise language.`

	engineerBrief = `You are a senior software engineer. Write a technical overview of this project that takes about five minutes to read.
Focus on architecture, design patterns, the hardest implementation details and how the tech stack was used.
Structure the answer with Markdown headers (##, ###).`

	architectBrief = `You are a principal system architect. Write a deep dive on this project.
Focus on scalability, trade-offs, system design choices, data flow and reliability. Critique the architecture where it deserves it.
Structure the answer with Markdown headers (##, ###).`
)

// BuildPrompt renders the prompt for p at the depth of persona. The output
// depends only on its inputs.
func BuildPrompt(p *domain.Project, persona Persona) string {
	var b strings.Builder
	switch persona {
	case PersonaRecruiter:
		b.WriteString(recruiterBrief)
		b.WriteString("\n\n")
		field(&b, "Project", p.Title)
		field(&b, "Description", p.OneLiner)
		field(&b, "Tech Stack", joinStack(p.TechStack, 3))
	case PersonaEngineer:
		b.WriteString(engineerBrief)
		b.WriteString("\n\n")
		field(&b, "Project", p.Title)
		field(&b, "Overview", p.Overview)
		field(&b, "Tech Stack", joinStack(p.TechStack, 0))
		field(&b, "LLD", p.LLD)
	case PersonaArchitect:
		b.WriteString(architectBrief)
		b.WriteString("\n\n")
		field(&b, "Project", p.Title)
		field(&b, "HLD", p.HLD)
		field(&b, "LLD", p.LLD)
		field(&b, "Architecture Decisions", p.ArchitectureDecisions)
		field(&b, "Failure Points", p.FailurePoints)
	}
	return b.String()
}

func field(b *strings.Builder, label, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		value = missing
	}
	fmt.Fprintf(b, "%s: %s\n", label, value)
}

// joinStack joins the first n entries of stack, or all of them when n is 0.
func joinStack(stack []string, n int) string {
	if n > 0 && len(stack) > n {
		stack = stack[:n]
	}
	return strings.Join(stack, ", ")
}
