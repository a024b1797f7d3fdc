package dms

import (
	"context"
	"errors"

	"github.com/nandemo-ya/dms-go/internal/api"
)

// ErrNoMorePages is returned by NextPage once the last page was read.
var ErrNoMorePages = errors.New("no more pages available")

// PaginatorOptions configures a paginator.
type PaginatorOptions struct {
	// Limit is the MaxRecords value sent with every page request. Zero
	// leaves it to the service.
	Limit int32
}

// Paginator walks the pages of a Marker paginated operation. The first
// request is sent with the caller's Marker. A page whose Marker is empty,
// or equal to the Marker that fetched it, is the last one.
type Paginator[Req any, Resp any] struct {
	fetch      func(context.Context, *Req) (*Resp, error)
	params     Req
	marker     func(*Req) **string
	nextMarker func(*Resp) *string

	next      *string
	firstPage bool
}

func newPaginator[Req any, Resp any](
	params *Req,
	fetch func(context.Context, *Req) (*Resp, error),
	marker func(*Req) **string,
	limit func(*Req) **int32,
	nextMarker func(*Resp) *string,
	optFns []func(*PaginatorOptions),
) *Paginator[Req, Resp] {
	var options PaginatorOptions
	for _, fn := range optFns {
		fn(&options)
	}

	p := &Paginator[Req, Resp]{
		fetch:      fetch,
		marker:     marker,
		nextMarker: nextMarker,
		firstPage:  true,
	}
	if params != nil {
		p.params = *params
	}
	if options.Limit > 0 {
		n := options.Limit
		*limit(&p.params) = &n
	}
	return p
}

// HasMorePages reports whether NextPage can be called.
func (p *Paginator[Req, Resp]) HasMorePages() bool {
	return p.firstPage || (p.next != nil && *p.next != "")
}

// NextPage fetches the next page.
func (p *Paginator[Req, Resp]) NextPage(ctx context.Context) (*Resp, error) {
	if !p.HasMorePages() {
		return nil, ErrNoMorePages
	}

	params := p.params
	if !p.firstPage {
		*p.marker(&params) = p.next
	}

	resp, err := p.fetch(ctx, &params)
	if err != nil {
		return nil, err
	}
	p.firstPage = false

	next := p.nextMarker(resp)
	if sent := *p.marker(&params); next != nil && sent != nil && *sent == *next {
		next = nil
	}
	p.next = next

	return resp, nil
}

// NewDescribeCertificatesPaginator returns a paginator over DescribeCertificates.
func NewDescribeCertificatesPaginator(client api.DMSAPI, params *api.DescribeCertificatesRequest, optFns ...func(*PaginatorOptions)) *Paginator[api.DescribeCertificatesRequest, api.DescribeCertificatesResponse] {
	return newPaginator(params, client.DescribeCertificates,
		func(r *api.DescribeCertificatesRequest) **string { return &r.Marker },
		func(r *api.DescribeCertificatesRequest) **int32 { return &r.MaxRecords },
		func(r *api.DescribeCertificatesResponse) *string { return r.Marker },
		optFns)
}

// NewDescribeConnectionsPaginator returns a paginator over DescribeConnections.
func NewDescribeConnectionsPaginator(client api.DMSAPI, params *api.DescribeConnectionsRequest, optFns ...func(*PaginatorOptions)) *Paginator[api.DescribeConnectionsRequest, api.DescribeConnectionsResponse] {
	return newPaginator(params, client.DescribeConnections,
		func(r *api.DescribeConnectionsRequest) **string { return &r.Marker },
		func(r *api.DescribeConnectionsRequest) **int32 { return &r.MaxRecords },
		func(r *api.DescribeConnectionsResponse) *string { return r.Marker },
		optFns)
}

// NewDescribeEndpointTypesPaginator returns a paginator over DescribeEndpointTypes.
func NewDescribeEndpointTypesPaginator(client api.DMSAPI, params *api.DescribeEndpointTypesRequest, optFns ...func(*PaginatorOptions)) *Paginator[api.DescribeEndpointTypesRequest, api.DescribeEndpointTypesResponse] {
	return newPaginator(params, client.DescribeEndpointTypes,
		func(r *api.DescribeEndpointTypesRequest) **string { return &r.Marker },
		func(r *api.DescribeEndpointTypesRequest) **int32 { return &r.MaxRecords },
		func(r *api.DescribeEndpointTypesResponse) *string { return r.Marker },
		optFns)
}

// NewDescribeEndpointsPaginator returns a paginator over DescribeEndpoints.
func NewDescribeEndpointsPaginator(client api.DMSAPI, params *api.DescribeEndpointsRequest, optFns ...func(*PaginatorOptions)) *Paginator[api.DescribeEndpointsRequest, api.DescribeEndpointsResponse] {
	return newPaginator(params, client.DescribeEndpoints,
		func(r *api.DescribeEndpointsRequest) **string { return &r.Marker },
		func(r *api.DescribeEndpointsRequest) **int32 { return &r.MaxRecords },
		func(r *api.DescribeEndpointsResponse) *string { return r.Marker },
		optFns)
}

// NewDescribeEventSubscriptionsPaginator returns a paginator over DescribeEventSubscriptions.
func NewDescribeEventSubscriptionsPaginator(client api.DMSAPI, params *api.DescribeEventSubscriptionsRequest, optFns ...func(*PaginatorOptions)) *Paginator[api.DescribeEventSubscriptionsRequest, api.DescribeEventSubscriptionsResponse] {
	return newPaginator(params, client.DescribeEventSubscriptions,
		func(r *api.DescribeEventSubscriptionsRequest) **string { return &r.Marker },
		func(r *api.DescribeEventSubscriptionsRequest) **int32 { return &r.MaxRecords },
		func(r *api.DescribeEventSubscriptionsResponse) *string { return r.Marker },
		optFns)
}

// NewDescribeEventsPaginator returns a paginator over DescribeEvents.
func NewDescribeEventsPaginator(client api.DMSAPI, params *api.DescribeEventsRequest, optFns ...func(*PaginatorOptions)) *Paginator[api.DescribeEventsRequest, api.DescribeEventsResponse] {
	return newPaginator(params, client.DescribeEvents,
		func(r *api.DescribeEventsRequest) **string { return &r.Marker },
		func(r *api.DescribeEventsRequest) **int32 { return &r.MaxRecords },
		func(r *api.DescribeEventsResponse) *string { return r.Marker },
		optFns)
}

// NewDescribeOrderableReplicationInstancesPaginator returns a paginator over DescribeOrderableReplicationInstances.
func NewDescribeOrderableReplicationInstancesPaginator(client api.DMSAPI, params *api.DescribeOrderableReplicationInstancesRequest, optFns ...func(*PaginatorOptions)) *Paginator[api.DescribeOrderableReplicationInstancesRequest, api.DescribeOrderableReplicationInstancesResponse] {
	return newPaginator(params, client.DescribeOrderableReplicationInstances,
		func(r *api.DescribeOrderableReplicationInstancesRequest) **string { return &r.Marker },
		func(r *api.DescribeOrderableReplicationInstancesRequest) **int32 { return &r.MaxRecords },
		func(r *api.DescribeOrderableReplicationInstancesResponse) *string { return r.Marker },
		optFns)
}

// NewDescribePendingMaintenanceActionsPaginator returns a paginator over DescribePendingMaintenanceActions.
func NewDescribePendingMaintenanceActionsPaginator(client api.DMSAPI, params *api.DescribePendingMaintenanceActionsRequest, optFns ...func(*PaginatorOptions)) *Paginator[api.DescribePendingMaintenanceActionsRequest, api.DescribePendingMaintenanceActionsResponse] {
	return newPaginator(params, client.DescribePendingMaintenanceActions,
		func(r *api.DescribePendingMaintenanceActionsRequest) **string { return &r.Marker },
		func(r *api.DescribePendingMaintenanceActionsRequest) **int32 { return &r.MaxRecords },
		func(r *api.DescribePendingMaintenanceActionsResponse) *string { return r.Marker },
		optFns)
}

// NewDescribeReplicationInstancesPaginator returns a paginator over DescribeReplicationInstances.
func NewDescribeReplicationInstancesPaginator(client api.DMSAPI, params *api.DescribeReplicationInstancesRequest, optFns ...func(*PaginatorOptions)) *Paginator[api.DescribeReplicationInstancesRequest, api.DescribeReplicationInstancesResponse] {
	return newPaginator(params, client.DescribeReplicationInstances,
		func(r *api.DescribeReplicationInstancesRequest) **string { return &r.Marker },
		func(r *api.DescribeReplicationInstancesRequest) **int32 { return &r.MaxRecords },
		func(r *api.DescribeReplicationInstancesResponse) *string { return r.Marker },
		optFns)
}

// NewDescribeReplicationSubnetGroupsPaginator returns a paginator over DescribeReplicationSubnetGroups.
func NewDescribeReplicationSubnetGroupsPaginator(client api.DMSAPI, params *api.DescribeReplicationSubnetGroupsRequest, optFns ...func(*PaginatorOptions)) *Paginator[api.DescribeReplicationSubnetGroupsRequest, api.DescribeReplicationSubnetGroupsResponse] {
	return newPaginator(params, client.DescribeReplicationSubnetGroups,
		func(r *api.DescribeReplicationSubnetGroupsRequest) **string { return &r.Marker },
		func(r *api.DescribeReplicationSubnetGroupsRequest) **int32 { return &r.MaxRecords },
		func(r *api.DescribeReplicationSubnetGroupsResponse) *string { return r.Marker },
		optFns)
}

// NewDescribeReplicationTasksPaginator returns a paginator over DescribeReplicationTasks.
func NewDescribeReplicationTasksPaginator(client api.DMSAPI, params *api.DescribeReplicationTasksRequest, optFns ...func(*PaginatorOptions)) *Paginator[api.DescribeReplicationTasksRequest, api.DescribeReplicationTasksResponse] {
	return newPaginator(params, client.DescribeReplicationTasks,
		func(r *api.DescribeReplicationTasksRequest) **string { return &r.Marker },
		func(r *api.DescribeReplicationTasksRequest) **int32 { return &r.MaxRecords },
		func(r *api.DescribeReplicationTasksResponse) *string { return r.Marker },
		optFns)
}

// NewDescribeSchemasPaginator returns a paginator over DescribeSchemas.
func NewDescribeSchemasPaginator(client api.DMSAPI, params *api.DescribeSchemasRequest, optFns ...func(*PaginatorOptions)) *Paginator[api.DescribeSchemasRequest, api.DescribeSchemasResponse] {
	return newPaginator(params, client.DescribeSchemas,
		func(r *api.DescribeSchemasRequest) **string { return &r.Marker },
		func(r *api.DescribeSchemasRequest) **int32 { return &r.MaxRecords },
		func(r *api.DescribeSchemasResponse) *string { return r.Marker },
		optFns)
}

// NewDescribeTableStatisticsPaginator returns a paginator over DescribeTableStatistics.
func NewDescribeTableStatisticsPaginator(client api.DMSAPI, params *api.DescribeTableStatisticsRequest, optFns ...func(*PaginatorOptions)) *Paginator[api.DescribeTableStatisticsRequest, api.DescribeTableStatisticsResponse] {
	return newPaginator(params, client.DescribeTableStatistics,
		func(r *api.DescribeTableStatisticsRequest) **string { return &r.Marker },
		func(r *api.DescribeTableStatisticsRequest) **int32 { return &r.MaxRecords },
		func(r *api.DescribeTableStatisticsResponse) *string { return r.Marker },
		optFns)
}
