package validation

import (
	"FinanceTracker/pkg/response"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

const CalendarDateTag = "calendar_date"

// DateLayouts are the accepted spellings of a calendar date.
var DateLayouts = []string{"2006-01-02", time.RFC3339}

type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func New() (*Validator, error) {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	if err := validate.RegisterValidation(CalendarDateTag, isCalendarDate); err != nil {
		return nil, err
	}

	eng := en.New()
	uni := ut.New(eng, eng)
	translator, found := uni.GetTranslator("en")
	if !found {
		return nil, errors.New("english translator not found")
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		return nil, err
	}

	err := validate.RegisterTranslation(CalendarDateTag, translator,
		func(t ut.Translator) error {
			return t.Add(CalendarDateTag, "{0} must be a date formatted as YYYY-MM-DD", true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(CalendarDateTag, fe.Field())
			return msg
		},
	)
	if err != nil {
		return nil, err
	}

	return &Validator{validate: validate, translator: translator}, nil
}

// Struct validates s and returns nil or the field errors in English.
func (v *Validator) Struct(s interface{}) *response.ValidationError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return response.NewValidationError("body", err.Error())
	}

	result := &response.ValidationError{}
	for _, fe := range fieldErrs {
		result.Add(fe.Field(), fe.Translate(v.translator))
	}
	return result
}

func ParseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range DateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func isCalendarDate(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String())
	return err == nil
}
