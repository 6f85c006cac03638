package kit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"jobdeck/internal/domain/job"
	"jobdeck/internal/domain/user"
	"jobdeck/internal/llm"
)

var ErrEmptyDraft = errors.New("generated kit is empty")

const maxDescriptionChars = 6000

// Draft is the text bundle produced for one job, before persistence.
type Draft struct {
	ResumeSummary   string
	CoverLetter     string
	OutreachMessage string
	Model           *string
}

type llmOutput struct {
	ResumeSummary   string `json:"resume_summary"`
	CoverLetter     string `json:"cover_letter"`
	OutreachMessage string `json:"outreach_message"`
}

type Service struct {
	client llm.Client
	logger *log.Logger
}

// NewService accepts a nil client; every Generate call then uses the
// template fallback.
func NewService(client llm.Client, logger *log.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// Generate drafts application material for the job. LLM output that
// cannot be parsed as the expected JSON object falls back to templated
// text rather than failing the request.
func (s *Service) Generate(ctx context.Context, j job.Job, p user.Profile) (Draft, error) {
	if s == nil || s.client == nil {
		return templateDraft(j, p), nil
	}

	prompt, err := buildPrompt(j, p)
	if err != nil {
		return templateDraft(j, p), nil
	}

	raw, err := s.client.Complete(ctx, prompt)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("[Kit] LLM call failed, using template fallback | err=%v", err)
		}
		return templateDraft(j, p), nil
	}

	out, err := parseOutput(raw)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("[Kit] Unparseable LLM output, using template fallback | err=%v", err)
		}
		return templateDraft(j, p), nil
	}

	model := s.client.Model()
	return Draft{
		ResumeSummary:   out.ResumeSummary,
		CoverLetter:     out.CoverLetter,
		OutreachMessage: out.OutreachMessage,
		Model:           &model,
	}, nil
}

func buildPrompt(j job.Job, p user.Profile) (string, error) {
	desc := strOr(j.Description, "")
	if len(desc) > maxDescriptionChars {
		desc = desc[:maxDescriptionChars] + "..."
	}

	years := ""
	if p.YearsExperience != nil {
		years = strconv.Itoa(int(*p.YearsExperience))
	}

	data := promptData{
		FullName:        strOr(p.FullName, ""),
		Headline:        strOr(p.Headline, ""),
		YearsExperience: years,
		Skills:          strings.Join(p.Skills, ", "),
		ResumeSummary:   strOr(p.ResumeSummary, ""),
		JobTitle:        strOr(j.Title, "the role"),
		Company:         strOr(j.Company, "the company"),
		Location:        strOr(j.Location, ""),
		Description:     desc,
	}

	var sb strings.Builder
	if err := applicationKitTemplate.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// parseOutput tolerates markdown fences and leading prose around the
// JSON object, which smaller models sometimes emit despite the prompt.
func parseOutput(raw string) (llmOutput, error) {
	raw = strings.TrimSpace(raw)
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return llmOutput{}, fmt.Errorf("no JSON object in output")
	}

	var out llmOutput
	if err := json.Unmarshal([]byte(raw[start:end+1]), &out); err != nil {
		return llmOutput{}, err
	}

	out.ResumeSummary = strings.TrimSpace(out.ResumeSummary)
	out.CoverLetter = strings.TrimSpace(out.CoverLetter)
	out.OutreachMessage = strings.TrimSpace(out.OutreachMessage)
	if out.ResumeSummary == "" && out.CoverLetter == "" && out.OutreachMessage == "" {
		return llmOutput{}, ErrEmptyDraft
	}
	return out, nil
}

// templateDraft produces a serviceable kit without any LLM involved.
func templateDraft(j job.Job, p user.Profile) Draft {
	name := strOr(p.FullName, "")
	title := strOr(j.Title, "the open role")
	company := strOr(j.Company, "your company")
	skills := strings.Join(p.Skills, ", ")

	summary := fmt.Sprintf("Candidate for %s at %s.", title, company)
	if background := strOr(p.ResumeSummary, ""); background != "" {
		summary = fmt.Sprintf("%s %s", summary, background)
	}
	if skills != "" {
		summary = fmt.Sprintf("%s Key skills: %s.", summary, skills)
	}

	letter := fmt.Sprintf(
		"Dear hiring team at %s,\n\nI am writing to apply for the %s position. "+
			"My background and skills are a strong match for what the role asks for",
		company, title)
	if skills != "" {
		letter += fmt.Sprintf(", in particular %s", skills)
	}
	letter += ".\n\nI would welcome the chance to discuss how I can contribute.\n\nBest regards"
	if name != "" {
		letter += ",\n" + name
	}

	outreach := fmt.Sprintf(
		"Hi, I came across the %s opening at %s and it looks like a great fit for my background. "+
			"I just applied and would love to connect about the role.", title, company)

	return Draft{
		ResumeSummary:   summary,
		CoverLetter:     letter,
		OutreachMessage: outreach,
	}
}

func strOr(s *string, def string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return def
	}
	return *s
}
