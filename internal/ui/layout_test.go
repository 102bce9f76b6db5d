package ui

import "testing"

func TestSplitWidths(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		percent  int
		wantMain int
		wantTodo int
	}{
		{name: "default split", total: 100, percent: 80, wantMain: 80, wantTodo: 20},
		{name: "even split", total: 200, percent: 50, wantMain: 100, wantTodo: 100},
		{name: "sliver folds into clock", total: 100, percent: 90, wantMain: 100, wantTodo: 0},
		{name: "todo at minimum", total: 80, percent: 80, wantMain: 64, wantTodo: 16},
		{name: "narrow terminal", total: 40, percent: 80, wantMain: 40, wantTodo: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			main, todo := splitWidths(tt.total, tt.percent)
			if main != tt.wantMain || todo != tt.wantTodo {
				t.Fatalf("splitWidths(%d, %d) = (%d, %d), want (%d, %d)",
					tt.total, tt.percent, main, todo, tt.wantMain, tt.wantTodo)
			}
		})
	}
}
