package kit

import (
	_ "embed"
	"text/template"
)

//go:embed prompts/application_kit.md
var applicationKitPromptRaw string

// applicationKitTemplate is parsed once at package init and reused on
// every Generate call.
var applicationKitTemplate = template.Must(template.New("application_kit").Parse(applicationKitPromptRaw))

type promptData struct {
	FullName        string
	Headline        string
	YearsExperience string
	Skills          string
	ResumeSummary   string
	JobTitle        string
	Company         string
	Location        string
	Description     string
}
