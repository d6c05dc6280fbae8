package models

// Habit represents a recurring practice to track
type Habit struct {
	ID               string `json:"id" yaml:"id" validate:"uuid"`
	Name             string `json:"nome" yaml:"nome" validate:"min=3"`
	WeeklyFrequency  int    `json:"frequenciaSemanal" yaml:"frequenciaSemanal" validate:"min=1,max=7"`
	DailyGoalMinutes int    `json:"metaDiariaMinutos" yaml:"metaDiariaMinutos" validate:"gt=0"`
	StartDate        string `json:"dataInicio" yaml:"dataInicio" validate:"datetime=2006-01-02,notfuture"` // YYYY-MM-DD format
	Active           bool   `json:"ativo" yaml:"ativo"`
}

// CreateInput is a candidate habit as collected by a form, before validation.
// Active is optional and defaults to true.
type CreateInput struct {
	Name             string `json:"nome" yaml:"nome" validate:"min=3"`
	WeeklyFrequency  int    `json:"frequenciaSemanal" yaml:"frequenciaSemanal" validate:"min=1,max=7"`
	DailyGoalMinutes int    `json:"metaDiariaMinutos" yaml:"metaDiariaMinutos" validate:"gt=0"`
	StartDate        string `json:"dataInicio" yaml:"dataInicio" validate:"datetime=2006-01-02,notfuture"`
	Active           *bool  `json:"ativo,omitempty" yaml:"ativo,omitempty"`
}

// UpdateInput is a candidate change to an existing habit. Only ID is
// required; nil fields are left untouched.
type UpdateInput struct {
	ID               string  `json:"id" yaml:"id" validate:"uuid"`
	Name             *string `json:"nome,omitempty" yaml:"nome,omitempty" validate:"omitempty,min=3"`
	WeeklyFrequency  *int    `json:"frequenciaSemanal,omitempty" yaml:"frequenciaSemanal,omitempty" validate:"omitempty,min=1,max=7"`
	DailyGoalMinutes *int    `json:"metaDiariaMinutos,omitempty" yaml:"metaDiariaMinutos,omitempty" validate:"omitempty,gt=0"`
	StartDate        *string `json:"dataInicio,omitempty" yaml:"dataInicio,omitempty" validate:"omitempty,datetime=2006-01-02,notfuture"`
	Active           *bool   `json:"ativo,omitempty" yaml:"ativo,omitempty"`
}

// Draft is a create payload that passed validation
type Draft struct {
	Name             string
	WeeklyFrequency  int
	DailyGoalMinutes int
	StartDate        string
	Active           bool
}

// Habit builds the record a store keeps for this draft under the given id.
func (d Draft) Habit(id string) Habit {
	return Habit{
		ID:               id,
		Name:             d.Name,
		WeeklyFrequency:  d.WeeklyFrequency,
		DailyGoalMinutes: d.DailyGoalMinutes,
		StartDate:        d.StartDate,
		Active:           d.Active,
	}
}

// Patch is an update payload that passed validation
type Patch struct {
	ID               string
	Name             *string
	WeeklyFrequency  *int
	DailyGoalMinutes *int
	StartDate        *string
	Active           *bool
}

// IsEmpty reports whether the patch carries no field besides the ID
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.WeeklyFrequency == nil && p.DailyGoalMinutes == nil &&
		p.StartDate == nil && p.Active == nil
}

// Apply returns a copy of h with every field present in the patch replaced.
// The ID is never changed.
func (p Patch) Apply(h Habit) Habit {
	if p.Name != nil {
		h.Name = *p.Name
	}
	if p.WeeklyFrequency != nil {
		h.WeeklyFrequency = *p.WeeklyFrequency
	}
	if p.DailyGoalMinutes != nil {
		h.DailyGoalMinutes = *p.DailyGoalMinutes
	}
	if p.StartDate != nil {
		h.StartDate = *p.StartDate
	}
	if p.Active != nil {
		h.Active = *p.Active
	}
	return h
}

// Ptr returns a pointer to v. Handy for building UpdateInput literals.
func Ptr[T any](v T) *T {
	return &v
}
