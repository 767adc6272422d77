package curriculum

import "testing"

func TestGradesLoaded(t *testing.T) {
	grades := Grades()
	if len(grades) == 0 {
		t.Fatal("expected embedded curriculum to contain grades")
	}
}

func TestTopicsForKnownGrade(t *testing.T) {
	topics := Topics("10")
	if len(topics) == 0 {
		t.Fatal("expected grade 10 to have topics")
	}

	found := false
	for _, topic := range topics {
		if topic == "geometry" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected grade 10 topics to include geometry, got %v", topics)
	}
}

func TestTopicsForUnknownGrade(t *testing.T) {
	if topics := Topics("14"); topics != nil {
		t.Fatalf("expected nil topics for unknown grade, got %v", topics)
	}
}

func TestIsValidTopic(t *testing.T) {
	if !IsValidTopic("10", "geometry") {
		t.Fatal("expected geometry to be valid for grade 10")
	}
	if !IsValidTopic("10", " Geometry ") {
		t.Fatal("expected topic matching to be case-insensitive")
	}
	if IsValidTopic("10", "calculus") {
		t.Fatal("expected calculus to be invalid for grade 10")
	}
	if IsValidTopic("99", "geometry") {
		t.Fatal("expected unknown grade to be invalid")
	}
}
