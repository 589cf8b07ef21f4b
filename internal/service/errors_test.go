package service_test

import (
	"testing"

	"github.com/colis-app/colis-api/internal/domain"
	"github.com/colis-app/colis-api/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestErrAdminRegistration(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, service.ErrAdminRegistration, domain.ErrValidation)
	assert.Contains(t, service.ErrAdminRegistration.Error(), "cannot be self-registered")
}
