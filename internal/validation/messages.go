package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/habito/internal/constants"
	"github.com/julianstephens/habito/internal/models"
)

const (
	MsgInvalidID         = "ID deve ser um UUID válido"
	MsgNameTooShort      = "Nome deve ter no mínimo 3 caracteres"
	MsgNameRequired      = "Nome é obrigatório"
	MsgFrequencyTooLow   = "Frequência deve ser no mínimo 1 dia por semana"
	MsgFrequencyTooHigh  = "Frequência deve ser no máximo 7 dias por semana"
	MsgGoalNotPositive   = "Meta diária deve ser maior que 0 minutos"
	MsgStartDateFormat   = "Data de início deve estar no formato AAAA-MM-DD"
	MsgStartDateInFuture = "Data de início não pode ser uma data futura"
)

// messages is keyed by "<field>.<tag>"
var messages = map[string]string{
	constants.FieldID + ".uuid":                   MsgInvalidID,
	constants.FieldName + ".min":                  MsgNameTooShort,
	constants.FieldWeeklyFrequency + ".min":       MsgFrequencyTooLow,
	constants.FieldWeeklyFrequency + ".max":       MsgFrequencyTooHigh,
	constants.FieldDailyGoalMinutes + ".gt":       MsgGoalNotPositive,
	constants.FieldStartDate + ".datetime":        MsgStartDateFormat,
	constants.FieldStartDate + "." + tagNotFuture: MsgStartDateInFuture,
}

func addMessages(fe models.FieldErrors, field, tag string, value any) {
	msg, ok := messages[field+"."+tag]
	if !ok {
		msg = fmt.Sprintf("%s inválido (%s)", field, tag)
	}
	fe.Add(field, msg)

	// An empty name fails both the length and the presence rule
	if field == constants.FieldName && isBlank(value) {
		fe.Add(field, MsgNameRequired)
	}
}

func isBlank(value any) bool {
	switch v := value.(type) {
	case string:
		return v == ""
	case *string:
		return v == nil || *v == ""
	}
	return false
}

// FormatReport returns a human-readable report of a validation error.
// Errors that are not field errors are reported as-is.
func FormatReport(err error) string {
	if err == nil {
		return "No problems detected."
	}

	var fe models.FieldErrors
	if !errors.As(err, &fe) {
		return err.Error()
	}

	var b strings.Builder
	b.WriteString("Validation failed:\n")
	for _, field := range fe.Fields() {
		for _, msg := range fe.Messages(field) {
			fmt.Fprintf(&b, "- %s: %s\n", field, msg)
		}
	}
	return b.String()
}
