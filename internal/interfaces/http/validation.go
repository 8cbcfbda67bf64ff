package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
)

// validate instancia compartida; validator.Validate es seguro para uso concurrente y cachea los structs.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// En los errores se usa el nombre JSON del campo.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})
	// Los montos opcionales se validan por su valor; NULL cuenta como vacío para omitempty.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if nd, ok := field.Interface().(decimal.NullDecimal); ok && nd.Valid {
			return nd.Decimal.InexactFloat64()
		}
		return nil
	}, decimal.NullDecimal{})
	return v
}

// ValidationErrors valida s y devuelve campo -> mensaje; nil si es válido.
func ValidationErrors(s any) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}
	fields := make(map[string]string, len(verrs))
	for _, e := range verrs {
		fields[e.Field()] = validationMessage(e)
	}
	return fields
}

// bindAndValidate parsea el body en dst y lo valida. Si falla ya escribió la respuesta
// (400 o 422) y devuelve false.
func bindAndValidate(c *fiber.Ctx, dst any) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := ValidationErrors(dst); fields != nil {
		return false, c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			Code:    "VALIDATION",
			Message: "revise los campos marcados",
			Fields:  fields,
		})
	}
	return true, nil
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "es obligatorio"
	case "oneof":
		return "debe ser uno de: " + strings.ReplaceAll(e.Param(), "'", "")
	case "datetime":
		return "debe tener formato AAAA-MM-DD"
	case "min":
		if e.Kind() == reflect.String {
			return "debe tener al menos " + e.Param() + " caracteres"
		}
		return "debe ser mayor o igual a " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "debe tener como máximo " + e.Param() + " caracteres"
		}
		return "debe ser menor o igual a " + e.Param()
	case "gt", "lt":
		return "monto fuera de rango (máximo 12 dígitos enteros)"
	default:
		return "valor inválido"
	}
}
