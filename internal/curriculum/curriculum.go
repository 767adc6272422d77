// Package curriculum holds the static grade-to-topics map used to
// validate incoming requests before any generation is attempted.
package curriculum

import (
	_ "embed"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed curriculum.yaml
var curriculumYAML []byte

type curriculumFile struct {
	Grades map[string][]string `yaml:"grades"`
}

// grade -> ordered topic list, loaded once at package init
var topicsByGrade map[string][]string

func init() {
	var file curriculumFile
	if err := yaml.Unmarshal(curriculumYAML, &file); err != nil {
		panic("curriculum: failed to parse embedded curriculum.yaml: " + err.Error())
	}
	topicsByGrade = file.Grades
}

// Grades returns all grades in the curriculum, sorted.
func Grades() []string {
	grades := make([]string, 0, len(topicsByGrade))
	for grade := range topicsByGrade {
		grades = append(grades, grade)
	}
	sort.Strings(grades)
	return grades
}

// Topics returns the ordered topic list for a grade, or nil if the
// grade is not in the curriculum.
func Topics(grade string) []string {
	topics, ok := topicsByGrade[grade]
	if !ok {
		return nil
	}
	out := make([]string, len(topics))
	copy(out, topics)
	return out
}

// IsValidTopic reports whether the grade/topic pair is in the curriculum.
// Topic comparison is case-insensitive.
func IsValidTopic(grade, topic string) bool {
	topic = strings.ToLower(strings.TrimSpace(topic))
	for _, t := range topicsByGrade[grade] {
		if t == topic {
			return true
		}
	}
	return false
}
