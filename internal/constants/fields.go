package constants

const (
	// Field keys, shared by encoding tags and validation reports
	FieldID               = "id"
	FieldName             = "nome"
	FieldWeeklyFrequency  = "frequenciaSemanal"
	FieldDailyGoalMinutes = "metaDiariaMinutos"
	FieldStartDate        = "dataInicio"
	FieldActive           = "ativo"

	// Rule bounds
	MinNameLength      = 3
	MinWeeklyFrequency = 1
	MaxWeeklyFrequency = 7

	// Default form values
	DefaultWeeklyFrequency  = 1
	DefaultDailyGoalMinutes = 30
	DefaultActive           = true
)
