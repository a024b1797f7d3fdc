package shape

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// InvalidParamsError lists the members of a request that failed validation.
type InvalidParamsError struct {
	// Context is the name of the validated shape.
	Context string
	// Fields are the failing member paths, e.g. "Tags[0].Key".
	Fields []string
}

// Error implements the error interface.
func (e *InvalidParamsError) Error() string {
	return fmt.Sprintf("%d validation error(s) found in %s: missing required field(s) %s",
		len(e.Fields), e.Context, strings.Join(e.Fields, ", "))
}

// Validate checks the required members of a shape, including those of
// nested shapes and list elements. It returns nil or an *InvalidParamsError.
func Validate(v any) error {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() == reflect.Pointer && rv.IsNil()) {
		return &InvalidParamsError{Context: "request", Fields: []string{"(nil)"}}
	}

	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &InvalidParamsError{Context: reflect.Indirect(rv).Type().Name()}
	for _, fe := range verrs {
		ns := fe.StructNamespace()
		if i := strings.IndexByte(ns, '.'); i >= 0 {
			ns = ns[i+1:]
		}
		out.Fields = append(out.Fields, ns)
	}
	return out
}
