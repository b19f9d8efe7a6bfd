// Package settings contains use cases for the settings record.
package settings

import (
	"errors"

	domainerror "github.com/finapple/backend/internal/domain/error"
)

// wrap gives the settings record's sentinel errors their codes.
func wrap(err error) error {
	switch {
	case errors.Is(err, domainerror.ErrBlankSettingsItem):
		return domainerror.NewSettingsError(domainerror.ErrCodeBlankSettingsItem, "name must not be blank", err)
	case errors.Is(err, domainerror.ErrUnknownCategoryKind):
		return domainerror.NewSettingsError(domainerror.ErrCodeUnknownCategoryKind, "kind must be income, expense or investment", err)
	}
	return err
}
