package repository

import (
	"errors"

	"gorm.io/gorm"

	"apt-be-svc/pkg/apperror"
)

// translate maps gorm errors onto the shared error kinds. Missing rows become
// NOT_FOUND, everything else is treated as a transient store failure.
func translate(err error, entity, id string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.WithMetadata(apperror.KindNotFound, entity+" not found", map[string]string{"id": id})
	}
	return apperror.Wrap(apperror.KindTransient, "failed to access "+entity, err)
}

func notFound(entity, id string) error {
	return apperror.WithMetadata(apperror.KindNotFound, entity+" not found", map[string]string{"id": id})
}
