package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/julianstephens/habito/internal/constants"
	"github.com/julianstephens/habito/internal/models"
)

const tagNotFuture = "notfuture"

// fieldRules holds the rule set for each field key. They match the
// validate tags declared on the models.
var fieldRules = map[string]string{
	constants.FieldID:               "uuid",
	constants.FieldName:             "min=3",
	constants.FieldWeeklyFrequency:  "min=1,max=7",
	constants.FieldDailyGoalMinutes: "gt=0",
	constants.FieldStartDate:        "datetime=2006-01-02," + tagNotFuture,
}

// Option configures a Validator
type Option func(*Validator)

// WithClock sets the clock used to decide whether a start date is in the future
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

// Validator checks habit payloads against the business rules
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// New creates a new Validator
func New(opts ...Option) *Validator {
	v := &Validator{now: time.Now}
	for _, opt := range opts {
		opt(v)
	}

	v.validate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their encoding key so errors line up with form fields
	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.validate.RegisterValidation(tagNotFuture, v.validateNotFuture); err != nil {
		panic(fmt.Sprintf("failed to register %s validator: %v", tagNotFuture, err))
	}

	return v
}

// ValidateCreate checks a create payload. On success the returned draft has
// Active defaulted to true when the input left it unset. On failure the
// error is a models.FieldErrors holding every failing field.
func (v *Validator) ValidateCreate(in models.CreateInput) (models.Draft, error) {
	if err := v.validate.Struct(in); err != nil {
		return models.Draft{}, v.report(err)
	}

	active := constants.DefaultActive
	if in.Active != nil {
		active = *in.Active
	}

	return models.Draft{
		Name:             in.Name,
		WeeklyFrequency:  in.WeeklyFrequency,
		DailyGoalMinutes: in.DailyGoalMinutes,
		StartDate:        in.StartDate,
		Active:           active,
	}, nil
}

// ValidateUpdate checks an update payload. The ID must be a UUID; every other
// field is checked only when present.
func (v *Validator) ValidateUpdate(in models.UpdateInput) (models.Patch, error) {
	if err := v.validate.Struct(in); err != nil {
		return models.Patch{}, v.report(err)
	}

	return models.Patch{
		ID:               in.ID,
		Name:             clone(in.Name),
		WeeklyFrequency:  clone(in.WeeklyFrequency),
		DailyGoalMinutes: clone(in.DailyGoalMinutes),
		StartDate:        clone(in.StartDate),
		Active:           clone(in.Active),
	}, nil
}

// ValidateHabit checks a complete habit record, ID included
func (v *Validator) ValidateHabit(h models.Habit) error {
	if err := v.validate.Struct(h); err != nil {
		return v.report(err)
	}
	return nil
}

// ValidateField checks a single value against the rules of the given field
// key and returns the messages it fails, or nil. Fields without rules always pass.
func (v *Validator) ValidateField(field string, value any) []string {
	tag, ok := fieldRules[field]
	if !ok {
		return nil
	}

	err := v.validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	fe := models.FieldErrors{}
	for _, e := range verrs {
		addMessages(fe, field, e.Tag(), e.Value())
	}
	return fe.Messages(field)
}

// report converts validator errors into field errors
func (v *Validator) report(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError: a programming mistake, not bad input
		return fmt.Errorf("validate habit: %w", err)
	}

	fe := models.FieldErrors{}
	for _, e := range verrs {
		addMessages(fe, e.Field(), e.Tag(), e.Value())
	}
	return fe
}

func (v *Validator) validateNotFuture(fl validator.FieldLevel) bool {
	return notAfterToday(fl.Field().String(), v.now())
}

// notAfterToday reports whether date (YYYY-MM-DD) falls on or before the
// day of now. The bound is the last millisecond of that day.
func notAfterToday(date string, now time.Time) bool {
	loc := now.Location()
	d, err := time.ParseInLocation(constants.DateFormat, date, loc)
	if err != nil {
		return false
	}
	endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, int(999*time.Millisecond), loc)
	return !d.After(endOfDay)
}

func clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
