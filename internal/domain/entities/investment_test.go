package entities

import "testing"

func TestChange24h(t *testing.T) {
	tests := []struct {
		name     string
		latest   float64
		previous float64
		want     float64
	}{
		{"alta de 10%", 110, 100, 10.0},
		{"queda de 10%", 90, 100, -10.0},
		{"anterior zero resulta em zero", 50, 0, 0},
		{"sem variação", 100, 100, 0},
		{"arredonda a 2 casas", 301, 300, 0.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Change24h(tt.latest, tt.previous); got != tt.want {
				t.Errorf("Change24h(%v, %v) = %v, esperava %v", tt.latest, tt.previous, got, tt.want)
			}
		})
	}
}

func TestRiskLevel_IsValid(t *testing.T) {
	for _, level := range ValidRiskLevels {
		if !level.IsValid() {
			t.Errorf("esperava '%s' válido", level)
		}
	}

	if RiskLevel("extreme").IsValid() {
		t.Error("esperava 'extreme' inválido")
	}
	if RiskLevel("").IsValid() {
		t.Error("esperava string vazia inválida")
	}
}
