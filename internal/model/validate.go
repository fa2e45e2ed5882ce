package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		return ValidationFailure(fmt.Sprintf("%s is %s", strings.ToLower(f.Field()), f.Tag()))
	}
	return ValidationFailure(err.Error())
}

func (r CreatePostRequest) Validate() error { return validateStruct(r) }

func (r UpdatePostRequest) Validate() error { return validateStruct(r) }

func (r RaiseComplaintRequest) Validate() error { return validateStruct(r) }
