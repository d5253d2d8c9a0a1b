package errorlog

import (
	"fmt"
	"sync"

	smerrors "github.com/Station-Manager/errors"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate
var once sync.Once

func validatorInstance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// validateRecord checks the structural integrity of a record before it is
// logged: location and description fields non-empty, line non-negative.
func validateRecord(r *Record) error {
	if r == nil {
		return ErrNilValue
	}
	if err := validatorInstance().Struct(r); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRecord, err)
	}
	return nil
}

func validateConfig(cfg *Config) error {
	const op smerrors.Op = "errorlog.validateConfig"
	if cfg == nil {
		return ErrNilValue
	}
	if err := validatorInstance().Struct(cfg); err != nil {
		return smerrors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}
	return nil
}
