package normalize

import "testing"

func TestTitleNormalize(t *testing.T) {
	n := NewTitle()

	tests := []struct {
		input    string
		expected string
	}{
		{"Разработка Грунта", "разработка грунта"},
		{"  Кладка,   кирпичная (М-150)  ", "кладка кирпичная м 150"},
		{"Établi", "etabli"},
		{"", ""},
		{"   ", ""},
		{"123", "123"},
	}

	for _, tt := range tests {
		if got := n.Normalize(tt.input); got != tt.expected {
			t.Errorf("Normalize(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestTitleNormalizeMemoized(t *testing.T) {
	n := NewTitle()
	first := n.Normalize("Разработка Грунта")
	second := n.Normalize("Разработка Грунта")
	if first != second {
		t.Errorf("Expected stable results, got %q then %q", first, second)
	}
	if _, ok := n.memo.Get("Разработка Грунта"); !ok {
		t.Error("Expected the title to be memoized")
	}
}
