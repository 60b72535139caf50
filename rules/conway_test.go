package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	tests := []struct {
		name      string
		neighbors int
		alive     bool
		want      bool
	}{
		{"lonely live cell dies", 0, true, false},
		{"underpopulated live cell dies", 1, true, false},
		{"live cell with two survives", 2, true, true},
		{"live cell with three survives", 3, true, true},
		{"overpopulated live cell dies", 4, true, false},
		{"crowded live cell dies", 8, true, false},
		{"dead cell with three is born", 3, false, true},
		{"dead cell with two stays dead", 2, false, false},
		{"dead cell with four stays dead", 4, false, false},
		{"dead cell with none stays dead", 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyConwayRules(tt.neighbors, tt.alive); got != tt.want {
				t.Errorf("ApplyConwayRules(%d, %v) = %v, want %v", tt.neighbors, tt.alive, got, tt.want)
			}
		})
	}
}
