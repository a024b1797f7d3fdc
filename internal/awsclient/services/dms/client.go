// Package dms is the AWS Database Migration Service client.
package dms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/nandemo-ya/dms-go/internal/api"
	"github.com/nandemo-ya/dms-go/internal/awsclient"
	"github.com/nandemo-ya/dms-go/internal/logging"
	"github.com/nandemo-ya/dms-go/internal/version"
)

const (
	jsonVersion = "1.1"
	contentType = "application/x-amz-json-" + jsonVersion
)

// Client is a DMS service client. It is safe for concurrent use.
type Client struct {
	client   *awsclient.Client
	endpoint string
}

var _ api.DMSAPI = (*Client)(nil)

// NewClient creates a new DMS client
func NewClient(config awsclient.Config) *Client {
	client := awsclient.NewClient(config)
	return &Client{
		client:   client,
		endpoint: client.BuildEndpoint(api.EndpointPrefix),
	}
}

// Endpoint returns the URL requests are sent to
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Region returns the region requests are signed for
func (c *Client) Region() string {
	return c.client.Region()
}

// AddTagsToResource adds tags to a DMS resource.
func (c *Client) AddTagsToResource(ctx context.Context, input *api.AddTagsToResourceRequest) (*api.AddTagsToResourceResponse, error) {
	return doRequest[api.AddTagsToResourceRequest, api.AddTagsToResourceResponse](ctx, c, input)
}

// ApplyPendingMaintenanceAction applies a pending maintenance action to a replication instance.
func (c *Client) ApplyPendingMaintenanceAction(ctx context.Context, input *api.ApplyPendingMaintenanceActionRequest) (*api.ApplyPendingMaintenanceActionResponse, error) {
	return doRequest[api.ApplyPendingMaintenanceActionRequest, api.ApplyPendingMaintenanceActionResponse](ctx, c, input)
}

// CreateEndpoint creates a source or target endpoint.
func (c *Client) CreateEndpoint(ctx context.Context, input *api.CreateEndpointRequest) (*api.CreateEndpointResponse, error) {
	return doRequest[api.CreateEndpointRequest, api.CreateEndpointResponse](ctx, c, input)
}

// CreateEventSubscription creates an SNS event subscription.
func (c *Client) CreateEventSubscription(ctx context.Context, input *api.CreateEventSubscriptionRequest) (*api.CreateEventSubscriptionResponse, error) {
	return doRequest[api.CreateEventSubscriptionRequest, api.CreateEventSubscriptionResponse](ctx, c, input)
}

// CreateReplicationInstance creates a replication instance.
func (c *Client) CreateReplicationInstance(ctx context.Context, input *api.CreateReplicationInstanceRequest) (*api.CreateReplicationInstanceResponse, error) {
	return doRequest[api.CreateReplicationInstanceRequest, api.CreateReplicationInstanceResponse](ctx, c, input)
}

// CreateReplicationSubnetGroup creates a replication subnet group.
func (c *Client) CreateReplicationSubnetGroup(ctx context.Context, input *api.CreateReplicationSubnetGroupRequest) (*api.CreateReplicationSubnetGroupResponse, error) {
	return doRequest[api.CreateReplicationSubnetGroupRequest, api.CreateReplicationSubnetGroupResponse](ctx, c, input)
}

// CreateReplicationTask creates a replication task.
func (c *Client) CreateReplicationTask(ctx context.Context, input *api.CreateReplicationTaskRequest) (*api.CreateReplicationTaskResponse, error) {
	return doRequest[api.CreateReplicationTaskRequest, api.CreateReplicationTaskResponse](ctx, c, input)
}

// DeleteCertificate deletes a certificate.
func (c *Client) DeleteCertificate(ctx context.Context, input *api.DeleteCertificateRequest) (*api.DeleteCertificateResponse, error) {
	return doRequest[api.DeleteCertificateRequest, api.DeleteCertificateResponse](ctx, c, input)
}

// DeleteEndpoint deletes an endpoint.
func (c *Client) DeleteEndpoint(ctx context.Context, input *api.DeleteEndpointRequest) (*api.DeleteEndpointResponse, error) {
	return doRequest[api.DeleteEndpointRequest, api.DeleteEndpointResponse](ctx, c, input)
}

// DeleteEventSubscription deletes an event subscription.
func (c *Client) DeleteEventSubscription(ctx context.Context, input *api.DeleteEventSubscriptionRequest) (*api.DeleteEventSubscriptionResponse, error) {
	return doRequest[api.DeleteEventSubscriptionRequest, api.DeleteEventSubscriptionResponse](ctx, c, input)
}

// DeleteReplicationInstance deletes a replication instance.
func (c *Client) DeleteReplicationInstance(ctx context.Context, input *api.DeleteReplicationInstanceRequest) (*api.DeleteReplicationInstanceResponse, error) {
	return doRequest[api.DeleteReplicationInstanceRequest, api.DeleteReplicationInstanceResponse](ctx, c, input)
}

// DeleteReplicationSubnetGroup deletes a replication subnet group.
func (c *Client) DeleteReplicationSubnetGroup(ctx context.Context, input *api.DeleteReplicationSubnetGroupRequest) (*api.DeleteReplicationSubnetGroupResponse, error) {
	return doRequest[api.DeleteReplicationSubnetGroupRequest, api.DeleteReplicationSubnetGroupResponse](ctx, c, input)
}

// DeleteReplicationTask deletes a replication task.
func (c *Client) DeleteReplicationTask(ctx context.Context, input *api.DeleteReplicationTaskRequest) (*api.DeleteReplicationTaskResponse, error) {
	return doRequest[api.DeleteReplicationTaskRequest, api.DeleteReplicationTaskResponse](ctx, c, input)
}

// DescribeAccountAttributes lists the account quotas for the region.
func (c *Client) DescribeAccountAttributes(ctx context.Context, input *api.DescribeAccountAttributesRequest) (*api.DescribeAccountAttributesResponse, error) {
	return doRequest[api.DescribeAccountAttributesRequest, api.DescribeAccountAttributesResponse](ctx, c, input)
}

// DescribeCertificates describes certificates.
func (c *Client) DescribeCertificates(ctx context.Context, input *api.DescribeCertificatesRequest) (*api.DescribeCertificatesResponse, error) {
	return doRequest[api.DescribeCertificatesRequest, api.DescribeCertificatesResponse](ctx, c, input)
}

// DescribeConnections describes endpoint connection tests.
func (c *Client) DescribeConnections(ctx context.Context, input *api.DescribeConnectionsRequest) (*api.DescribeConnectionsResponse, error) {
	return doRequest[api.DescribeConnectionsRequest, api.DescribeConnectionsResponse](ctx, c, input)
}

// DescribeEndpointTypes lists the supported endpoint types.
func (c *Client) DescribeEndpointTypes(ctx context.Context, input *api.DescribeEndpointTypesRequest) (*api.DescribeEndpointTypesResponse, error) {
	return doRequest[api.DescribeEndpointTypesRequest, api.DescribeEndpointTypesResponse](ctx, c, input)
}

// DescribeEndpoints describes endpoints.
func (c *Client) DescribeEndpoints(ctx context.Context, input *api.DescribeEndpointsRequest) (*api.DescribeEndpointsResponse, error) {
	return doRequest[api.DescribeEndpointsRequest, api.DescribeEndpointsResponse](ctx, c, input)
}

// DescribeEventCategories lists event categories per source type.
func (c *Client) DescribeEventCategories(ctx context.Context, input *api.DescribeEventCategoriesRequest) (*api.DescribeEventCategoriesResponse, error) {
	return doRequest[api.DescribeEventCategoriesRequest, api.DescribeEventCategoriesResponse](ctx, c, input)
}

// DescribeEventSubscriptions describes event subscriptions.
func (c *Client) DescribeEventSubscriptions(ctx context.Context, input *api.DescribeEventSubscriptionsRequest) (*api.DescribeEventSubscriptionsResponse, error) {
	return doRequest[api.DescribeEventSubscriptionsRequest, api.DescribeEventSubscriptionsResponse](ctx, c, input)
}

// DescribeEvents lists events.
func (c *Client) DescribeEvents(ctx context.Context, input *api.DescribeEventsRequest) (*api.DescribeEventsResponse, error) {
	return doRequest[api.DescribeEventsRequest, api.DescribeEventsResponse](ctx, c, input)
}

// DescribeOrderableReplicationInstances lists the orderable replication instance classes.
func (c *Client) DescribeOrderableReplicationInstances(ctx context.Context, input *api.DescribeOrderableReplicationInstancesRequest) (*api.DescribeOrderableReplicationInstancesResponse, error) {
	return doRequest[api.DescribeOrderableReplicationInstancesRequest, api.DescribeOrderableReplicationInstancesResponse](ctx, c, input)
}

// DescribePendingMaintenanceActions lists pending maintenance actions.
func (c *Client) DescribePendingMaintenanceActions(ctx context.Context, input *api.DescribePendingMaintenanceActionsRequest) (*api.DescribePendingMaintenanceActionsResponse, error) {
	return doRequest[api.DescribePendingMaintenanceActionsRequest, api.DescribePendingMaintenanceActionsResponse](ctx, c, input)
}

// DescribeRefreshSchemasStatus returns the schema refresh status of an endpoint.
func (c *Client) DescribeRefreshSchemasStatus(ctx context.Context, input *api.DescribeRefreshSchemasStatusRequest) (*api.DescribeRefreshSchemasStatusResponse, error) {
	return doRequest[api.DescribeRefreshSchemasStatusRequest, api.DescribeRefreshSchemasStatusResponse](ctx, c, input)
}

// DescribeReplicationInstances describes replication instances.
func (c *Client) DescribeReplicationInstances(ctx context.Context, input *api.DescribeReplicationInstancesRequest) (*api.DescribeReplicationInstancesResponse, error) {
	return doRequest[api.DescribeReplicationInstancesRequest, api.DescribeReplicationInstancesResponse](ctx, c, input)
}

// DescribeReplicationSubnetGroups describes replication subnet groups.
func (c *Client) DescribeReplicationSubnetGroups(ctx context.Context, input *api.DescribeReplicationSubnetGroupsRequest) (*api.DescribeReplicationSubnetGroupsResponse, error) {
	return doRequest[api.DescribeReplicationSubnetGroupsRequest, api.DescribeReplicationSubnetGroupsResponse](ctx, c, input)
}

// DescribeReplicationTasks describes replication tasks.
func (c *Client) DescribeReplicationTasks(ctx context.Context, input *api.DescribeReplicationTasksRequest) (*api.DescribeReplicationTasksResponse, error) {
	return doRequest[api.DescribeReplicationTasksRequest, api.DescribeReplicationTasksResponse](ctx, c, input)
}

// DescribeSchemas lists the schemas of an endpoint.
func (c *Client) DescribeSchemas(ctx context.Context, input *api.DescribeSchemasRequest) (*api.DescribeSchemasResponse, error) {
	return doRequest[api.DescribeSchemasRequest, api.DescribeSchemasResponse](ctx, c, input)
}

// DescribeTableStatistics returns table statistics of a replication task.
func (c *Client) DescribeTableStatistics(ctx context.Context, input *api.DescribeTableStatisticsRequest) (*api.DescribeTableStatisticsResponse, error) {
	return doRequest[api.DescribeTableStatisticsRequest, api.DescribeTableStatisticsResponse](ctx, c, input)
}

// ImportCertificate uploads a certificate.
func (c *Client) ImportCertificate(ctx context.Context, input *api.ImportCertificateRequest) (*api.ImportCertificateResponse, error) {
	return doRequest[api.ImportCertificateRequest, api.ImportCertificateResponse](ctx, c, input)
}

// ListTagsForResource lists the tags of a DMS resource.
func (c *Client) ListTagsForResource(ctx context.Context, input *api.ListTagsForResourceRequest) (*api.ListTagsForResourceResponse, error) {
	return doRequest[api.ListTagsForResourceRequest, api.ListTagsForResourceResponse](ctx, c, input)
}

// ModifyEndpoint modifies an endpoint.
func (c *Client) ModifyEndpoint(ctx context.Context, input *api.ModifyEndpointRequest) (*api.ModifyEndpointResponse, error) {
	return doRequest[api.ModifyEndpointRequest, api.ModifyEndpointResponse](ctx, c, input)
}

// ModifyEventSubscription modifies an event subscription.
func (c *Client) ModifyEventSubscription(ctx context.Context, input *api.ModifyEventSubscriptionRequest) (*api.ModifyEventSubscriptionResponse, error) {
	return doRequest[api.ModifyEventSubscriptionRequest, api.ModifyEventSubscriptionResponse](ctx, c, input)
}

// ModifyReplicationInstance modifies a replication instance.
func (c *Client) ModifyReplicationInstance(ctx context.Context, input *api.ModifyReplicationInstanceRequest) (*api.ModifyReplicationInstanceResponse, error) {
	return doRequest[api.ModifyReplicationInstanceRequest, api.ModifyReplicationInstanceResponse](ctx, c, input)
}

// ModifyReplicationSubnetGroup modifies a replication subnet group.
func (c *Client) ModifyReplicationSubnetGroup(ctx context.Context, input *api.ModifyReplicationSubnetGroupRequest) (*api.ModifyReplicationSubnetGroupResponse, error) {
	return doRequest[api.ModifyReplicationSubnetGroupRequest, api.ModifyReplicationSubnetGroupResponse](ctx, c, input)
}

// ModifyReplicationTask modifies a replication task.
func (c *Client) ModifyReplicationTask(ctx context.Context, input *api.ModifyReplicationTaskRequest) (*api.ModifyReplicationTaskResponse, error) {
	return doRequest[api.ModifyReplicationTaskRequest, api.ModifyReplicationTaskResponse](ctx, c, input)
}

// RebootReplicationInstance reboots a replication instance.
func (c *Client) RebootReplicationInstance(ctx context.Context, input *api.RebootReplicationInstanceRequest) (*api.RebootReplicationInstanceResponse, error) {
	return doRequest[api.RebootReplicationInstanceRequest, api.RebootReplicationInstanceResponse](ctx, c, input)
}

// RefreshSchemas refreshes the schemas of an endpoint.
func (c *Client) RefreshSchemas(ctx context.Context, input *api.RefreshSchemasRequest) (*api.RefreshSchemasResponse, error) {
	return doRequest[api.RefreshSchemasRequest, api.RefreshSchemasResponse](ctx, c, input)
}

// ReloadTables reloads tables of a running replication task.
func (c *Client) ReloadTables(ctx context.Context, input *api.ReloadTablesRequest) (*api.ReloadTablesResponse, error) {
	return doRequest[api.ReloadTablesRequest, api.ReloadTablesResponse](ctx, c, input)
}

// RemoveTagsFromResource removes tags from a DMS resource.
func (c *Client) RemoveTagsFromResource(ctx context.Context, input *api.RemoveTagsFromResourceRequest) (*api.RemoveTagsFromResourceResponse, error) {
	return doRequest[api.RemoveTagsFromResourceRequest, api.RemoveTagsFromResourceResponse](ctx, c, input)
}

// StartReplicationTask starts a replication task.
func (c *Client) StartReplicationTask(ctx context.Context, input *api.StartReplicationTaskRequest) (*api.StartReplicationTaskResponse, error) {
	return doRequest[api.StartReplicationTaskRequest, api.StartReplicationTaskResponse](ctx, c, input)
}

// StopReplicationTask stops a replication task.
func (c *Client) StopReplicationTask(ctx context.Context, input *api.StopReplicationTaskRequest) (*api.StopReplicationTaskResponse, error) {
	return doRequest[api.StopReplicationTaskRequest, api.StopReplicationTaskResponse](ctx, c, input)
}

// TestConnection tests the connection between a replication instance and an endpoint.
func (c *Client) TestConnection(ctx context.Context, input *api.TestConnectionRequest) (*api.TestConnectionResponse, error) {
	return doRequest[api.TestConnectionRequest, api.TestConnectionResponse](ctx, c, input)
}

// Invoke sends req to the operation it is the input of and returns the
// operation's response shape.
func (c *Client) Invoke(ctx context.Context, req api.Request) (any, error) {
	switch req := req.(type) {
	case *api.AddTagsToResourceRequest:
		return invoke(c.AddTagsToResource(ctx, req))
	case *api.ApplyPendingMaintenanceActionRequest:
		return invoke(c.ApplyPendingMaintenanceAction(ctx, req))
	case *api.CreateEndpointRequest:
		return invoke(c.CreateEndpoint(ctx, req))
	case *api.CreateEventSubscriptionRequest:
		return invoke(c.CreateEventSubscription(ctx, req))
	case *api.CreateReplicationInstanceRequest:
		return invoke(c.CreateReplicationInstance(ctx, req))
	case *api.CreateReplicationSubnetGroupRequest:
		return invoke(c.CreateReplicationSubnetGroup(ctx, req))
	case *api.CreateReplicationTaskRequest:
		return invoke(c.CreateReplicationTask(ctx, req))
	case *api.DeleteCertificateRequest:
		return invoke(c.DeleteCertificate(ctx, req))
	case *api.DeleteEndpointRequest:
		return invoke(c.DeleteEndpoint(ctx, req))
	case *api.DeleteEventSubscriptionRequest:
		return invoke(c.DeleteEventSubscription(ctx, req))
	case *api.DeleteReplicationInstanceRequest:
		return invoke(c.DeleteReplicationInstance(ctx, req))
	case *api.DeleteReplicationSubnetGroupRequest:
		return invoke(c.DeleteReplicationSubnetGroup(ctx, req))
	case *api.DeleteReplicationTaskRequest:
		return invoke(c.DeleteReplicationTask(ctx, req))
	case *api.DescribeAccountAttributesRequest:
		return invoke(c.DescribeAccountAttributes(ctx, req))
	case *api.DescribeCertificatesRequest:
		return invoke(c.DescribeCertificates(ctx, req))
	case *api.DescribeConnectionsRequest:
		return invoke(c.DescribeConnections(ctx, req))
	case *api.DescribeEndpointTypesRequest:
		return invoke(c.DescribeEndpointTypes(ctx, req))
	case *api.DescribeEndpointsRequest:
		return invoke(c.DescribeEndpoints(ctx, req))
	case *api.DescribeEventCategoriesRequest:
		return invoke(c.DescribeEventCategories(ctx, req))
	case *api.DescribeEventSubscriptionsRequest:
		return invoke(c.DescribeEventSubscriptions(ctx, req))
	case *api.DescribeEventsRequest:
		return invoke(c.DescribeEvents(ctx, req))
	case *api.DescribeOrderableReplicationInstancesRequest:
		return invoke(c.DescribeOrderableReplicationInstances(ctx, req))
	case *api.DescribePendingMaintenanceActionsRequest:
		return invoke(c.DescribePendingMaintenanceActions(ctx, req))
	case *api.DescribeRefreshSchemasStatusRequest:
		return invoke(c.DescribeRefreshSchemasStatus(ctx, req))
	case *api.DescribeReplicationInstancesRequest:
		return invoke(c.DescribeReplicationInstances(ctx, req))
	case *api.DescribeReplicationSubnetGroupsRequest:
		return invoke(c.DescribeReplicationSubnetGroups(ctx, req))
	case *api.DescribeReplicationTasksRequest:
		return invoke(c.DescribeReplicationTasks(ctx, req))
	case *api.DescribeSchemasRequest:
		return invoke(c.DescribeSchemas(ctx, req))
	case *api.DescribeTableStatisticsRequest:
		return invoke(c.DescribeTableStatistics(ctx, req))
	case *api.ImportCertificateRequest:
		return invoke(c.ImportCertificate(ctx, req))
	case *api.ListTagsForResourceRequest:
		return invoke(c.ListTagsForResource(ctx, req))
	case *api.ModifyEndpointRequest:
		return invoke(c.ModifyEndpoint(ctx, req))
	case *api.ModifyEventSubscriptionRequest:
		return invoke(c.ModifyEventSubscription(ctx, req))
	case *api.ModifyReplicationInstanceRequest:
		return invoke(c.ModifyReplicationInstance(ctx, req))
	case *api.ModifyReplicationSubnetGroupRequest:
		return invoke(c.ModifyReplicationSubnetGroup(ctx, req))
	case *api.ModifyReplicationTaskRequest:
		return invoke(c.ModifyReplicationTask(ctx, req))
	case *api.RebootReplicationInstanceRequest:
		return invoke(c.RebootReplicationInstance(ctx, req))
	case *api.RefreshSchemasRequest:
		return invoke(c.RefreshSchemas(ctx, req))
	case *api.ReloadTablesRequest:
		return invoke(c.ReloadTables(ctx, req))
	case *api.RemoveTagsFromResourceRequest:
		return invoke(c.RemoveTagsFromResource(ctx, req))
	case *api.StartReplicationTaskRequest:
		return invoke(c.StartReplicationTask(ctx, req))
	case *api.StopReplicationTaskRequest:
		return invoke(c.StopReplicationTask(ctx, req))
	case *api.TestConnectionRequest:
		return invoke(c.TestConnection(ctx, req))
	case nil:
		return nil, fmt.Errorf("nil request")
	}
	return nil, fmt.Errorf("unsupported request type %T", req)
}

func userAgent() string {
	return "dms-go/" + version.GetVersion()
}

func invoke[T any](out *T, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return out, nil
}

// doRequest performs a DMS JSON 1.1 request. A nil input is sent as an
// empty request. Inputs are validated before anything is sent.
func doRequest[TInput any, TOutput any, PInput interface {
	*TInput
	api.Request
}](ctx context.Context, c *Client, input PInput) (*TOutput, error) {
	if input == nil {
		input = PInput(new(TInput))
	}
	operation := input.OperationName()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Amz-Target", fmt.Sprintf("%s.%s", api.ServiceID, operation))
	req.Header.Set("User-Agent", userAgent())

	logging.DebugContext(ctx, "sending DMS request", "operation", operation, "endpoint", c.endpoint)

	resp, err := c.client.DoRequest(ctx, req, api.SigningName)
	if err != nil {
		return nil, fmt.Errorf("operation %s: %w", operation, err)
	}
	defer resp.Body.Close()

	respData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, decodeError(operation, resp.StatusCode, resp.Header, respData)
	}

	var output TOutput
	if len(bytes.TrimSpace(respData)) > 0 {
		if err := json.Unmarshal(respData, &output); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s response: %w", operation, err)
		}
	}

	return &output, nil
}
