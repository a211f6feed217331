package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/unplugapp/unplug-backend/internal/domain/entities"
)

// RegisterValidations registra as validações customizadas no engine de
// binding do gin. Deve ser chamado uma vez na inicialização.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	return v.RegisterValidation("risklevel", func(fl validator.FieldLevel) bool {
		return entities.RiskLevel(fl.Field().String()).IsValid()
	})
}
