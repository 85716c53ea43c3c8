package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Validator struct{}

func (v *Validator) ValidateStruct(payload interface{}) *[]error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errs := []error{err}
		return &errs
	}
	errs := []error{}
	for _, fieldErr := range validationErrors {
		errs = append(errs, fmt.Errorf("%s failed validation on rule %s", fieldErr.Field(), fieldErr.Tag()))
	}
	return &errs
}

func (v *Validator) ValidateValue(value any, rules string) error {
	return validate.Var(value, rules)
}

var ValidatorInstance = Validator{}
