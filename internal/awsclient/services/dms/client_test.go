package dms

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandemo-ya/dms-go/internal/api"
	"github.com/nandemo-ya/dms-go/internal/awsclient"
)

func newTestClient(endpoint string) *Client {
	return NewClient(awsclient.Config{
		Endpoint: endpoint,
		Credentials: awsclient.Credentials{
			AccessKeyID:     "test-key",
			SecretAccessKey: "test-secret",
		},
		Region:     "us-west-2",
		MaxRetries: -1,
	})
}

func TestClient_CreateReplicationInstance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-amz-json-1.1", r.Header.Get("Content-Type"))
		assert.Equal(t, "AmazonDMSv20160101.CreateReplicationInstance", r.Header.Get("X-Amz-Target"))
		assert.Contains(t, r.Header.Get("Authorization"), "/us-west-2/dms/aws4_request")

		var req api.CreateReplicationInstanceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "dms.t3.medium", *req.ReplicationInstanceClass)
		assert.Equal(t, "ri1", *req.ReplicationInstanceIdentifier)
		assert.Equal(t, int32(50), *req.AllocatedStorage)

		w.Header().Set("Content-Type", "application/x-amz-json-1.1")
		w.Header().Set("x-amzn-RequestId", "req-1")
		json.NewEncoder(w).Encode(map[string]any{
			"ReplicationInstance": map[string]any{
				"ReplicationInstanceIdentifier": "ri1",
				"ReplicationInstanceStatus":     "creating",
				"InstanceCreateTime":            1700000000.5,
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	input := (&api.CreateReplicationInstanceRequest{}).
		SetReplicationInstanceClass("dms.t3.medium").
		SetReplicationInstanceIdentifier("ri1").
		SetAllocatedStorage(50)

	output, err := client.CreateReplicationInstance(context.Background(), input)
	require.NoError(t, err)
	require.NotNil(t, output.ReplicationInstance)
	assert.Equal(t, "ri1", *output.ReplicationInstance.ReplicationInstanceIdentifier)
	assert.Equal(t, "creating", *output.ReplicationInstance.ReplicationInstanceStatus)
	assert.Equal(t, time.UnixMilli(1700000000500).UTC(), output.ReplicationInstance.InstanceCreateTime.Time)
}

func TestClient_NilInputSendsEmptyRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{}`, string(body))
		assert.Equal(t, "AmazonDMSv20160101.DescribeAccountAttributes", r.Header.Get("X-Amz-Target"))
		w.Write([]byte(`{"AccountQuotas":[{"AccountQuotaName":"ReplicationInstances","Used":1,"Max":20}]}`))
	}))
	defer server.Close()

	output, err := newTestClient(server.URL).DescribeAccountAttributes(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, output.AccountQuotas, 1)
	assert.Equal(t, int64(20), *output.AccountQuotas[0].Max)
}

func TestClient_EmptyResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	output, err := newTestClient(server.URL).AddTagsToResource(context.Background(),
		(&api.AddTagsToResourceRequest{}).
			SetResourceArn("arn:aws:dms:us-west-2:123456789012:rep:ri1").
			AddTags(*(&api.Tag{}).SetKey("env").SetValue("test")))
	require.NoError(t, err)
	assert.NotNil(t, output)
}

func TestClient_ValidationFailsBeforeSending(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.CreateReplicationInstance(context.Background(),
		(&api.CreateReplicationInstanceRequest{}).SetReplicationInstanceIdentifier("ri1"))

	var invalid *InvalidParamsError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "CreateReplicationInstanceRequest", invalid.Context)
	assert.Equal(t, []string{"ReplicationInstanceClass"}, invalid.Fields)

	_, err = client.StartReplicationTask(context.Background(), nil)
	require.ErrorAs(t, err, &invalid)
	assert.ElementsMatch(t, []string{"ReplicationTaskArn", "StartReplicationTaskType"}, invalid.Fields)

	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestClient_ErrorResponses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		header  map[string]string
		body    string
		target  error
		code    string
		message string
		fault   smithy.ErrorFault
	}{
		{
			name:    "typed fault",
			status:  http.StatusBadRequest,
			body:    `{"__type":"ResourceNotFoundFault","message":"no such instance"}`,
			target:  &api.ResourceNotFoundFault{},
			code:    "ResourceNotFoundFault",
			message: "no such instance",
			fault:   smithy.FaultClient,
		},
		{
			name:    "namespaced type with capitalised message",
			status:  http.StatusBadRequest,
			body:    `{"__type":"com.amazonaws.dms#InvalidResourceStateFault","Message":"task is running"}`,
			target:  &api.InvalidResourceStateFault{},
			code:    "InvalidResourceStateFault",
			message: "task is running",
			fault:   smithy.FaultClient,
		},
		{
			name:    "error type header",
			status:  http.StatusBadRequest,
			header:  map[string]string{"X-Amzn-ErrorType": "AccessDeniedFault:http://internal.amazon.com/"},
			body:    `{"message":"denied"}`,
			target:  &api.AccessDeniedFault{},
			code:    "AccessDeniedFault",
			message: "denied",
			fault:   smithy.FaultClient,
		},
		{
			name:    "unknown code",
			status:  http.StatusBadRequest,
			body:    `{"__type":"SomethingNew","message":"huh"}`,
			target:  &smithy.GenericAPIError{},
			code:    "SomethingNew",
			message: "huh",
			fault:   smithy.FaultUnknown,
		},
		{
			name:    "server error without body",
			status:  http.StatusInternalServerError,
			body:    ``,
			target:  &smithy.GenericAPIError{},
			code:    "Internal Server Error",
			fault:   smithy.FaultServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.header {
					w.Header().Set(k, v)
				}
				w.Header().Set("x-amzn-RequestId", "req-42")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestClient(server.URL).DeleteReplicationInstance(context.Background(),
				(&api.DeleteReplicationInstanceRequest{}).SetReplicationInstanceArn("arn"))
			require.Error(t, err)

			var respErr *ResponseError
			require.ErrorAs(t, err, &respErr)
			assert.Equal(t, "DeleteReplicationInstance", respErr.Operation)
			assert.Equal(t, tt.status, respErr.StatusCode)
			assert.Equal(t, "req-42", respErr.RequestID)

			assert.IsType(t, tt.target, respErr.Err)

			var apiErr smithy.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.code, apiErr.ErrorCode())
			assert.Equal(t, tt.message, apiErr.ErrorMessage())
			assert.Equal(t, tt.fault, apiErr.ErrorFault())
		})
	}
}

func TestClient_TypedFaultWithErrorsAs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"__type":"ResourceAlreadyExistsFault","message":"exists"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).CreateReplicationSubnetGroup(context.Background(),
		(&api.CreateReplicationSubnetGroupRequest{}).
			SetReplicationSubnetGroupIdentifier("sg").
			SetReplicationSubnetGroupDescription("d").
			AddSubnetIds("subnet-1"))

	var exists *api.ResourceAlreadyExistsFault
	require.True(t, errors.As(err, &exists))
	assert.Equal(t, "exists", *exists.Message)
}

func TestClient_Invoke(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "AmazonDMSv20160101.DescribeEndpoints", r.Header.Get("X-Amz-Target"))
		w.Write([]byte(`{"Endpoints":[{"EndpointIdentifier":"src"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	out, err := client.Invoke(context.Background(), &api.DescribeEndpointsRequest{})
	require.NoError(t, err)

	resp, ok := out.(*api.DescribeEndpointsResponse)
	require.True(t, ok)
	require.Len(t, resp.Endpoints, 1)
	assert.Equal(t, "src", *resp.Endpoints[0].EndpointIdentifier)

	_, err = client.Invoke(context.Background(), nil)
	assert.Error(t, err)
}

func TestClient_InvokeCoversEveryOperation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	for _, name := range api.OperationNames() {
		req, ok := api.NewRequest(name)
		require.True(t, ok, name)

		_, err := client.Invoke(context.Background(), req)
		if err != nil {
			var invalid *InvalidParamsError
			assert.ErrorAs(t, err, &invalid, name)
		}
	}
}

func TestNewClientEndpoint(t *testing.T) {
	client := NewClient(awsclient.Config{Region: "eu-west-1"})
	assert.Equal(t, "https://dms.eu-west-1.amazonaws.com", client.Endpoint())
	assert.Equal(t, "eu-west-1", client.Region())

	local := NewClient(awsclient.Config{Endpoint: "http://localhost:8700"})
	assert.Equal(t, "http://localhost:8700", local.Endpoint())
}
