package http

import (
	"errors"

	"github.com/MKhiriev/go-web-server/internal/service"
	"github.com/MKhiriev/go-web-server/internal/store"
	"github.com/MKhiriev/go-web-server/internal/validators"
)

var errorKinds = []struct {
	target error
	kind   Kind
	public bool
}{
	{service.ErrInvalidDataProvided, KindValidationFailed, true},
	{service.ErrWrongPassword, KindLoginFailed, false},
	{service.ErrForbidden, KindForbidden, false},
	{service.ErrTokenIsExpired, KindUnauthorized, false},
	{service.ErrTokenIsInvalid, KindUnauthorized, false},

	{validators.ErrInvalidTaskID, KindValidationFailed, true},
	{validators.ErrInvalidOwnerID, KindValidationFailed, true},
	{validators.ErrEmptyTitle, KindValidationFailed, true},
	{validators.ErrTitleTooLong, KindValidationFailed, true},
	{validators.ErrNoFieldsToUpdate, KindValidationFailed, true},

	{store.ErrLoginAlreadyExists, KindValidationFailed, true},
	{store.ErrNoUserWasFound, KindLoginFailed, false},
	{store.ErrTaskNotFound, KindNotFound, false},
}

// toPipelineError maps err onto the pipeline taxonomy. Typed errors keep
// their kind, known sentinels are looked up in errorKinds and everything
// else becomes Internal. For public sentinels the sentinel text is used as
// the client message.
func toPipelineError(err error) *PipelineError {
	var perr *PipelineError
	if errors.As(err, &perr) {
		return perr
	}

	for _, e := range errorKinds {
		if errors.Is(err, e.target) {
			message := ""
			if e.public {
				message = e.target.Error()
			}
			return newError(e.kind, message, err)
		}
	}

	return newError(KindInternal, "", err)
}
