// Package fallback provides the static problem bank used when
// generation fails or the retry budget is exhausted.
package fallback

import (
	_ "embed"
	"fmt"
	"math/rand"

	"gopkg.in/yaml.v3"

	"github.com/rekhamallam/LCPSMathLearningApp/internal/models"
)

//go:embed bank.yaml
var bankYAML []byte

type bankEntry struct {
	Question string   `yaml:"question"`
	Answer   string   `yaml:"answer"`
	Options  []string `yaml:"options"`
}

type bankFile struct {
	Grades map[string]map[string][]bankEntry `yaml:"grades"`
}

// Bank is a read-only grade -> topic -> canned problems mapping.
type Bank struct {
	problems map[string]map[string][]models.Problem
}

// NewBank parses the embedded problem bank. The bank is loaded once at
// startup and never mutated afterwards.
func NewBank() (*Bank, error) {
	var file bankFile
	if err := yaml.Unmarshal(bankYAML, &file); err != nil {
		return nil, fmt.Errorf("failed to parse embedded problem bank: %w", err)
	}

	problems := make(map[string]map[string][]models.Problem, len(file.Grades))
	for grade, topics := range file.Grades {
		problems[grade] = make(map[string][]models.Problem, len(topics))
		for topic, entries := range topics {
			list := make([]models.Problem, 0, len(entries))
			for _, entry := range entries {
				options := entry.Options
				if options == nil {
					options = []string{}
				}
				list = append(list, models.Problem{
					Question: entry.Question,
					Answer:   entry.Answer,
					Options:  options,
					Type:     topic,
				})
			}
			problems[grade][topic] = list
		}
	}

	return &Bank{problems: problems}, nil
}

// Lookup returns the canned problems for a grade/topic pair, or nil if
// the bank has no entry for it.
func (b *Bank) Lookup(grade, topic string) []models.Problem {
	return b.problems[grade][topic]
}

// Pick returns one problem for the grade/topic pair, chosen uniformly
// at random from the bank. When the bank has no entry it synthesizes a
// generic placeholder naming the grade and topic, so the caller always
// receives a well-formed problem.
func (b *Bank) Pick(grade, topic string) models.Problem {
	candidates := b.Lookup(grade, topic)
	if len(candidates) == 0 {
		return models.Problem{
			Question: fmt.Sprintf("Practice problem for grade %s %s: review your %s notes and write one example problem with its solution.", grade, topic, topic),
			Answer:   "Answers will vary",
			Options:  []string{},
			Type:     topic,
		}
	}
	return candidates[rand.Intn(len(candidates))]
}

// Size returns the total number of canned problems in the bank.
func (b *Bank) Size() int {
	total := 0
	for _, topics := range b.problems {
		for _, list := range topics {
			total += len(list)
		}
	}
	return total
}
