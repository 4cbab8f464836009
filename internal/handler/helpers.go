package handler

import (
	"net/http"
	"reflect"

	"github.com/Pedro-Mesquita/devImpacto/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Registra decimal.Decimal como tipo numérico para que tags como min=0 e
	// gt=0 funcionem sem panic ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate faz o bind do JSON e roda as tags do go-playground/validator.
// Devolve false já tendo escrito a resposta de erro — o chamador retorna
// imediatamente sem escrever outra.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parseUUIDParam extrai e valida um parâmetro de rota UUID. Devolve false já
// tendo escrito a resposta 400.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(name+" inválido: deve ser um UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// parseUUIDs converte uma lista de strings já validadas como uuid pelo
// validator em uuid.UUID.
func parseUUIDs(raw []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		if id, err := uuid.Parse(s); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
