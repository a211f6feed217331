package entities

// RiskLevel representa o perfil de risco do portfólio simulado
type RiskLevel string

const (
	RiskStandard RiskLevel = "standard"
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
)

// ValidRiskLevels lista os níveis aceitos pelo setup de investimentos
var ValidRiskLevels = []RiskLevel{RiskStandard, RiskLow, RiskMedium, RiskHigh}

// IsValid verifica se o nível de risco é um dos aceitos
func (r RiskLevel) IsValid() bool {
	for _, level := range ValidRiskLevels {
		if r == level {
			return true
		}
	}
	return false
}
