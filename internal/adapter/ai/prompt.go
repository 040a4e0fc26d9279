package ai

import (
	"fmt"
	"strings"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
)

const systemPrompt = `You are a project planner. Break the user's project into concrete tasks.
Reply with exactly one JSON array and nothing else. Each element is an object:
{"name": string, "description": string, "date": "YYYY-MM-DD", "tag_name": string, "tag_color": "#RRGGBB"}
Rules:
- Dates fall between the start and end date when an end date is given.
- Reuse the same tag_name and tag_color for tasks of the same kind.
- Keep names short; put details in description.`

const dateLayout = "2006-01-02"

// buildPrompt renders the user message for a generation request.
func buildPrompt(req entity.GenerationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Project description:\n%s\n\n", strings.TrimSpace(req.Description))
	fmt.Fprintf(&b, "Start date: %s\n", req.StartDate.Format(dateLayout))
	if req.EndDate != nil {
		fmt.Fprintf(&b, "End date: %s\n", req.EndDate.Format(dateLayout))
	} else {
		b.WriteString("End date: not fixed, propose a realistic schedule\n")
	}
	if p := strings.TrimSpace(req.Priority); p != "" {
		fmt.Fprintf(&b, "Priority: %s\n", p)
	}
	return b.String()
}
