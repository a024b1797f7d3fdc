package mockserver

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/nandemo-ya/dms-go/internal/api"
)

// operationHandler decodes a request body, calls the operation and returns
// its response shape.
type operationHandler func(ctx context.Context, body []byte) (any, error)

// requestDecodeError reports a body that is not a JSON document of the
// operation input.
type requestDecodeError struct {
	err error
}

func (e *requestDecodeError) Error() string {
	return "failed to decode request body: " + e.err.Error()
}

func (e *requestDecodeError) Unwrap() error {
	return e.err
}

func bind[Req any, Resp any, PReq interface {
	*Req
	api.Request
}](fn func(context.Context, PReq) (*Resp, error)) operationHandler {
	return func(ctx context.Context, body []byte) (any, error) {
		req := PReq(new(Req))
		if len(bytes.TrimSpace(body)) > 0 {
			if err := json.Unmarshal(body, req); err != nil {
				return nil, &requestDecodeError{err: err}
			}
		}
		if err := req.Validate(); err != nil {
			return nil, err
		}
		resp, err := fn(ctx, req)
		if err != nil {
			return nil, err
		}
		return resp, nil
	}
}

// operationHandlers maps every DMS operation name to svc.
func operationHandlers(svc api.DMSAPI) map[string]operationHandler {
	return map[string]operationHandler{
		"AddTagsToResource":                     bind(svc.AddTagsToResource),
		"ApplyPendingMaintenanceAction":         bind(svc.ApplyPendingMaintenanceAction),
		"CreateEndpoint":                        bind(svc.CreateEndpoint),
		"CreateEventSubscription":               bind(svc.CreateEventSubscription),
		"CreateReplicationInstance":             bind(svc.CreateReplicationInstance),
		"CreateReplicationSubnetGroup":          bind(svc.CreateReplicationSubnetGroup),
		"CreateReplicationTask":                 bind(svc.CreateReplicationTask),
		"DeleteCertificate":                     bind(svc.DeleteCertificate),
		"DeleteEndpoint":                        bind(svc.DeleteEndpoint),
		"DeleteEventSubscription":               bind(svc.DeleteEventSubscription),
		"DeleteReplicationInstance":             bind(svc.DeleteReplicationInstance),
		"DeleteReplicationSubnetGroup":          bind(svc.DeleteReplicationSubnetGroup),
		"DeleteReplicationTask":                 bind(svc.DeleteReplicationTask),
		"DescribeAccountAttributes":             bind(svc.DescribeAccountAttributes),
		"DescribeCertificates":                  bind(svc.DescribeCertificates),
		"DescribeConnections":                   bind(svc.DescribeConnections),
		"DescribeEndpointTypes":                 bind(svc.DescribeEndpointTypes),
		"DescribeEndpoints":                     bind(svc.DescribeEndpoints),
		"DescribeEventCategories":               bind(svc.DescribeEventCategories),
		"DescribeEventSubscriptions":            bind(svc.DescribeEventSubscriptions),
		"DescribeEvents":                        bind(svc.DescribeEvents),
		"DescribeOrderableReplicationInstances": bind(svc.DescribeOrderableReplicationInstances),
		"DescribePendingMaintenanceActions":     bind(svc.DescribePendingMaintenanceActions),
		"DescribeRefreshSchemasStatus":          bind(svc.DescribeRefreshSchemasStatus),
		"DescribeReplicationInstances":          bind(svc.DescribeReplicationInstances),
		"DescribeReplicationSubnetGroups":       bind(svc.DescribeReplicationSubnetGroups),
		"DescribeReplicationTasks":              bind(svc.DescribeReplicationTasks),
		"DescribeSchemas":                       bind(svc.DescribeSchemas),
		"DescribeTableStatistics":               bind(svc.DescribeTableStatistics),
		"ImportCertificate":                     bind(svc.ImportCertificate),
		"ListTagsForResource":                   bind(svc.ListTagsForResource),
		"ModifyEndpoint":                        bind(svc.ModifyEndpoint),
		"ModifyEventSubscription":               bind(svc.ModifyEventSubscription),
		"ModifyReplicationInstance":             bind(svc.ModifyReplicationInstance),
		"ModifyReplicationSubnetGroup":          bind(svc.ModifyReplicationSubnetGroup),
		"ModifyReplicationTask":                 bind(svc.ModifyReplicationTask),
		"RebootReplicationInstance":             bind(svc.RebootReplicationInstance),
		"RefreshSchemas":                        bind(svc.RefreshSchemas),
		"ReloadTables":                          bind(svc.ReloadTables),
		"RemoveTagsFromResource":                bind(svc.RemoveTagsFromResource),
		"StartReplicationTask":                  bind(svc.StartReplicationTask),
		"StopReplicationTask":                   bind(svc.StopReplicationTask),
		"TestConnection":                        bind(svc.TestConnection),
	}
}
