package prompts

import (
	"embed"
	"fmt"
	"math/rand"
	"strings"

	"gopkg.in/yaml.v3"
)

// embeds all .yaml files in the templates folder into Go program at compile time
//
//go:embed templates/*.yaml
var templateFS embed.FS

// Fixed enumerations used to vary the generation prompt between
// attempts. Tests treat selection as non-deterministic and assert
// membership only.
var (
	QuestionTypes = []string{"word problem", "calculation", "multiple choice", "real-world application"}
	Contexts      = []string{"sports", "cooking", "shopping", "space exploration", "nature"}
	Difficulties  = []string{"easy", "medium", "challenging"}
)

// MultipleChoiceType is the one question type that carries options.
const MultipleChoiceType = "multiple choice"

// Variety is one random draw from the prompt enumerations.
type Variety struct {
	QuestionType string
	Context      string
	Difficulty   string
}

// PickVariety draws a uniform random combination for one attempt.
func PickVariety() Variety {
	return Variety{
		QuestionType: QuestionTypes[rand.Intn(len(QuestionTypes))],
		Context:      Contexts[rand.Intn(len(Contexts))],
		Difficulty:   Difficulties[rand.Intn(len(Difficulties))],
	}
}

// PromptProvider is the surface handlers and the generator depend on,
// so tests can substitute a mock.
type PromptProvider interface {
	BuildProblemPrompt(grade, topic string, variety Variety) (string, error)
	GetTemplates() map[string]string
}

type PromptManager struct {
	prompts map[string]string // question type -> complete prompt template
}

// loaded prompt template
type promptTemplate struct {
	BasePrompt    string            `yaml:"base_prompt"`
	QuestionTypes map[string]string `yaml:"question_types"`
}

// creates a new prompt manager and loads templates
func NewPromptManager() (*PromptManager, error) {
	pm := &PromptManager{
		prompts: make(map[string]string),
	}

	if err := pm.loadPrompts(); err != nil {
		return nil, fmt.Errorf("failed to load prompt templates: %w", err)
	}

	return pm, nil
}

// BuildProblemPrompt assembles the prompt for one generation attempt.
func (pm *PromptManager) BuildProblemPrompt(grade, topic string, variety Variety) (string, error) {
	promptTemplate, exists := pm.prompts[variety.QuestionType]
	if !exists {
		return "", fmt.Errorf("no prompt template for question type: %s", variety.QuestionType)
	}

	// Simple string replacement instead of template execution
	result := strings.ReplaceAll(promptTemplate, "{{.Grade}}", grade)
	result = strings.ReplaceAll(result, "{{.Topic}}", topic)
	result = strings.ReplaceAll(result, "{{.QuestionType}}", variety.QuestionType)
	result = strings.ReplaceAll(result, "{{.Context}}", variety.Context)
	result = strings.ReplaceAll(result, "{{.Difficulty}}", variety.Difficulty)

	return result, nil
}

// GetTemplates returns the loaded question-type templates.
func (pm *PromptManager) GetTemplates() map[string]string {
	return pm.prompts
}

// loadPrompts loads all YAML prompt files from the embedded filesystem
func (pm *PromptManager) loadPrompts() error {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return fmt.Errorf("failed to read templates directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		data, err := templateFS.ReadFile("templates/" + entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", entry.Name(), err)
		}

		var tmpl promptTemplate
		if err := yaml.Unmarshal(data, &tmpl); err != nil {
			return fmt.Errorf("failed to parse template file %s: %w", entry.Name(), err)
		}

		for questionType, instructions := range tmpl.QuestionTypes {
			var fullPrompt strings.Builder
			if tmpl.BasePrompt != "" {
				fullPrompt.WriteString(tmpl.BasePrompt)
				fullPrompt.WriteString("\n")
			}
			fullPrompt.WriteString(instructions)

			pm.prompts[questionType] = fullPrompt.String()
		}
	}

	return nil
}
