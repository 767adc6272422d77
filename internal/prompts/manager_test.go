package prompts

import (
	"strings"
	"testing"
)

func TestNewPromptManagerLoadsAllQuestionTypes(t *testing.T) {
	pm, err := NewPromptManager()
	if err != nil {
		t.Fatalf("NewPromptManager returned error: %v", err)
	}

	templates := pm.GetTemplates()
	for _, questionType := range QuestionTypes {
		if _, ok := templates[questionType]; !ok {
			t.Fatalf("expected template for question type %q", questionType)
		}
	}
}

func TestBuildProblemPrompt(t *testing.T) {
	pm, err := NewPromptManager()
	if err != nil {
		t.Fatalf("NewPromptManager returned error: %v", err)
	}

	variety := Variety{QuestionType: "multiple choice", Context: "sports", Difficulty: "easy"}
	prompt, err := pm.BuildProblemPrompt("10", "geometry", variety)
	if err != nil {
		t.Fatalf("BuildProblemPrompt returned error: %v", err)
	}

	for _, want := range []string{"grade 10", "geometry", "sports", "easy", "exactly 4"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("expected prompt to contain %q, got:\n%s", want, prompt)
		}
	}
	if strings.Contains(prompt, "{{.") {
		t.Fatalf("expected all placeholders substituted, got:\n%s", prompt)
	}
}

func TestBuildProblemPromptUnknownType(t *testing.T) {
	pm, err := NewPromptManager()
	if err != nil {
		t.Fatalf("NewPromptManager returned error: %v", err)
	}

	if _, err := pm.BuildProblemPrompt("10", "geometry", Variety{QuestionType: "essay"}); err == nil {
		t.Fatal("expected error for unknown question type")
	}
}

func TestPickVarietyMembership(t *testing.T) {
	types := map[string]bool{}
	for _, qt := range QuestionTypes {
		types[qt] = true
	}
	contexts := map[string]bool{}
	for _, c := range Contexts {
		contexts[c] = true
	}
	difficulties := map[string]bool{}
	for _, d := range Difficulties {
		difficulties[d] = true
	}

	for i := 0; i < 50; i++ {
		v := PickVariety()
		if !types[v.QuestionType] || !contexts[v.Context] || !difficulties[v.Difficulty] {
			t.Fatalf("PickVariety returned value outside candidate sets: %+v", v)
		}
	}
}
