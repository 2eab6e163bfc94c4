package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/itchan-dev/threadline/shared/domain"
	internal_errors "github.com/itchan-dev/threadline/shared/errors"
)

// Records validates normalized records against the struct tags on the domain types.
// Safe for concurrent use.
type Records struct {
	validate *validator.Validate
}

func New() *Records {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names so reasons match the input schema
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &Records{validate: v}
}

func (r *Records) Post(p *domain.Post) error {
	if err := r.validate.Struct(p); err != nil {
		return &internal_errors.RecordError{Kind: internal_errors.KindPost, Id: p.Id, Reason: describe(err)}
	}
	return nil
}

func (r *Records) Message(m *domain.Message) error {
	if err := r.validate.Struct(m); err != nil {
		return &internal_errors.RecordError{Kind: internal_errors.KindMessage, Id: m.Id, Reason: describe(err)}
	}
	return nil
}
