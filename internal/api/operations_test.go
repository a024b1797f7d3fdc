package api_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandemo-ya/dms-go/internal/api"
)

func TestOperationNames(t *testing.T) {
	names := api.OperationNames()
	assert.Len(t, names, 43)
	assert.Contains(t, names, "CreateReplicationInstance")
	assert.IsIncreasing(t, names)

	names[0] = "mutated"
	assert.NotEqual(t, "mutated", api.OperationNames()[0])
}

func TestNewRequestMatchesOperation(t *testing.T) {
	for _, name := range api.OperationNames() {
		req, ok := api.NewRequest(name)
		require.True(t, ok, name)
		assert.Equal(t, name, req.OperationName())

		resp, ok := api.NewResponse(name)
		require.True(t, ok, name)
		assert.NotNil(t, resp)
	}

	_, ok := api.NewRequest("DescribeNothing")
	assert.False(t, ok)
	_, ok = api.NewResponse("DescribeNothing")
	assert.False(t, ok)
}

type partialService struct {
	api.UnimplementedDMSAPI
}

func (partialService) DescribeAccountAttributes(context.Context, *api.DescribeAccountAttributesRequest) (*api.DescribeAccountAttributesResponse, error) {
	return &api.DescribeAccountAttributesResponse{}, nil
}

func TestUnimplementedDMSAPI(t *testing.T) {
	var svc api.DMSAPI = partialService{}

	_, err := svc.DescribeAccountAttributes(context.Background(), nil)
	assert.NoError(t, err)

	_, err = svc.RefreshSchemas(context.Background(), &api.RefreshSchemasRequest{})
	var apiErr smithy.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "NotImplemented", apiErr.ErrorCode())
	assert.Equal(t, smithy.FaultServer, apiErr.ErrorFault())
}

func TestServiceConstants(t *testing.T) {
	assert.Equal(t, "AmazonDMSv20160101", api.ServiceID)
	assert.Equal(t, "dms", api.SigningName)
	assert.Equal(t, "2016-01-01", api.APIVersion)
}
