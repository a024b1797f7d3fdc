package api_test

import (
	"errors"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandemo-ya/dms-go/internal/api"
)

func TestNewAPIError(t *testing.T) {
	err := api.NewAPIError("ResourceNotFoundFault", "no such instance")

	var notFound *api.ResourceNotFoundFault
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "no such instance", notFound.ErrorMessage())
	assert.Equal(t, "ResourceNotFoundFault: no such instance", err.Error())

	var apiErr smithy.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "ResourceNotFoundFault", apiErr.ErrorCode())
	assert.Equal(t, smithy.FaultClient, apiErr.ErrorFault())
}

func TestNewAPIErrorUnknownCode(t *testing.T) {
	err := api.NewAPIError("ThrottlingException", "slow down")

	var generic *smithy.GenericAPIError
	require.True(t, errors.As(err, &generic))
	assert.Equal(t, "ThrottlingException", generic.ErrorCode())
	assert.Equal(t, "slow down", generic.ErrorMessage())
}

func TestFaultWithoutMessage(t *testing.T) {
	fault := &api.InvalidResourceStateFault{}
	assert.Equal(t, "", fault.ErrorMessage())
	assert.Equal(t, "InvalidResourceStateFault: ", fault.Error())
}
