package kit

import (
	"context"
	"errors"
	"strings"
	"testing"

	"jobdeck/internal/domain/job"
	"jobdeck/internal/domain/user"
)

type fakeClient struct {
	out string
	err error
}

func (f fakeClient) Complete(context.Context, string) (string, error) { return f.out, f.err }
func (f fakeClient) Model() string                                    { return "fake-model" }

func strPtr(s string) *string { return &s }

func testJob() job.Job {
	return job.Job{
		Title:       strPtr("Go Engineer"),
		Company:     strPtr("Acme"),
		Description: strPtr("Build backend services in Go."),
	}
}

func testProfile() user.Profile {
	return user.Profile{
		FullName: strPtr("Sam Doe"),
		Skills:   []string{"Go", "PostgreSQL"},
	}
}

func TestParseOutput_PlainJSON(t *testing.T) {
	out, err := parseOutput(`{"resume_summary":"a","cover_letter":"b","outreach_message":"c"}`)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.ResumeSummary != "a" || out.CoverLetter != "b" || out.OutreachMessage != "c" {
		t.Fatalf("unexpected output: %+v", out)
	}
}

func TestParseOutput_ToleratesFences(t *testing.T) {
	raw := "Here is the kit:\n```json\n{\"resume_summary\":\"a\",\"cover_letter\":\"b\",\"outreach_message\":\"c\"}\n```"
	out, err := parseOutput(raw)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.CoverLetter != "b" {
		t.Fatalf("unexpected output: %+v", out)
	}
}

func TestParseOutput_NoJSON(t *testing.T) {
	if _, err := parseOutput("sorry, I cannot help"); err == nil {
		t.Fatalf("expected error for non-JSON output")
	}
}

func TestParseOutput_AllEmpty(t *testing.T) {
	_, err := parseOutput(`{"resume_summary":" ","cover_letter":"","outreach_message":""}`)
	if !errors.Is(err, ErrEmptyDraft) {
		t.Fatalf("expected ErrEmptyDraft, got %v", err)
	}
}

func TestGenerate_NilClientUsesTemplate(t *testing.T) {
	svc := NewService(nil, nil)

	draft, err := svc.Generate(context.Background(), testJob(), testProfile())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if draft.Model != nil {
		t.Fatalf("template drafts must not claim a model")
	}
	if !strings.Contains(draft.CoverLetter, "Acme") {
		t.Fatalf("cover letter must mention the company: %s", draft.CoverLetter)
	}
	if !strings.Contains(draft.CoverLetter, "Sam Doe") {
		t.Fatalf("cover letter must sign with the candidate name: %s", draft.CoverLetter)
	}
}

func TestGenerate_ClientErrorFallsBack(t *testing.T) {
	svc := NewService(fakeClient{err: errors.New("rate limited")}, nil)

	draft, err := svc.Generate(context.Background(), testJob(), testProfile())
	if err != nil {
		t.Fatalf("fallback must not error: %v", err)
	}
	if draft.Model != nil {
		t.Fatalf("fallback draft must not claim a model")
	}
	if draft.CoverLetter == "" {
		t.Fatalf("fallback draft must not be empty")
	}
}

func TestGenerate_ValidOutputCarriesModel(t *testing.T) {
	svc := NewService(fakeClient{out: `{"resume_summary":"a","cover_letter":"b","outreach_message":"c"}`}, nil)

	draft, err := svc.Generate(context.Background(), testJob(), testProfile())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if draft.Model == nil || *draft.Model != "fake-model" {
		t.Fatalf("expected model fake-model, got %v", draft.Model)
	}
	if draft.ResumeSummary != "a" {
		t.Fatalf("unexpected draft: %+v", draft)
	}
}

func TestGenerate_UnparseableOutputFallsBack(t *testing.T) {
	svc := NewService(fakeClient{out: "no json here"}, nil)

	draft, err := svc.Generate(context.Background(), testJob(), testProfile())
	if err != nil {
		t.Fatalf("fallback must not error: %v", err)
	}
	if draft.Model != nil {
		t.Fatalf("fallback draft must not claim a model")
	}
}
