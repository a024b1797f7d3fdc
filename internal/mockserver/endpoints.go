package mockserver

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/nandemo-ya/dms-go/internal/api"
	"github.com/nandemo-ya/dms-go/internal/api/ptr"
)

const (
	statusActive     = "active"
	statusTesting    = "testing"
	statusSuccessful = "successful"
)

// engine describes a database engine the service can connect to
type engine struct {
	name        string
	source      bool
	target      bool
	supportsCDC bool
}

var engines = []engine{
	{name: "aurora", source: true, target: true, supportsCDC: true},
	{name: "aurora-postgresql", source: true, target: true, supportsCDC: true},
	{name: "azuredb", source: true, target: false, supportsCDC: false},
	{name: "db2", source: true, target: false, supportsCDC: true},
	{name: "dynamodb", source: false, target: true, supportsCDC: false},
	{name: "mariadb", source: true, target: true, supportsCDC: true},
	{name: "mongodb", source: true, target: false, supportsCDC: true},
	{name: "mysql", source: true, target: true, supportsCDC: true},
	{name: "oracle", source: true, target: true, supportsCDC: true},
	{name: "postgres", source: true, target: true, supportsCDC: true},
	{name: "redshift", source: false, target: true, supportsCDC: false},
	{name: "s3", source: true, target: true, supportsCDC: true},
	{name: "sqlserver", source: true, target: true, supportsCDC: true},
	{name: "sybase", source: true, target: true, supportsCDC: true},
}

var endpointFilters = filterFields[api.Endpoint]{
	"endpoint-arn":  func(e *api.Endpoint) []string { return values(e.EndpointArn) },
	"endpoint-type": func(e *api.Endpoint) []string { return values(e.EndpointType) },
	"endpoint-id":   func(e *api.Endpoint) []string { return values(e.EndpointIdentifier) },
	"engine-name":   func(e *api.Endpoint) []string { return values(e.EngineName) },
}

var endpointTypeFilters = filterFields[api.SupportedEndpointType]{
	"engine-name":   func(t *api.SupportedEndpointType) []string { return values(t.EngineName) },
	"endpoint-type": func(t *api.SupportedEndpointType) []string { return values(t.EndpointType) },
}

var connectionFilters = filterFields[api.Connection]{
	"endpoint-arn":             func(c *api.Connection) []string { return values(c.EndpointArn) },
	"endpoint-id":              func(c *api.Connection) []string { return values(c.EndpointIdentifier) },
	"replication-instance-arn": func(c *api.Connection) []string { return values(c.ReplicationInstanceArn) },
	"replication-instance-id":  func(c *api.Connection) []string { return values(c.ReplicationInstanceIdentifier) },
}

func supportedEndpointTypes() []api.SupportedEndpointType {
	var types []api.SupportedEndpointType
	for _, e := range engines {
		for _, t := range []api.ReplicationEndpointTypeValue{api.ReplicationEndpointTypeValueSource, api.ReplicationEndpointTypeValueTarget} {
			if (t == api.ReplicationEndpointTypeValueSource && !e.source) || (t == api.ReplicationEndpointTypeValueTarget && !e.target) {
				continue
			}
			types = append(types, *(&api.SupportedEndpointType{}).
				SetEngineName(e.name).
				SetEndpointTypeValue(t).
				SetSupportsCDC(e.supportsCDC))
		}
	}
	return types
}

// checkEngine validates the endpoint type and engine and returns them
// lower-cased.
func checkEngine(endpointType, engineName string) (string, string, error) {
	endpointType = strings.ToLower(endpointType)
	engineName = strings.ToLower(engineName)

	if !slices.Contains(api.ReplicationEndpointTypeValue("").Values(), api.ReplicationEndpointTypeValue(endpointType)) {
		return "", "", invalidParameter("endpoint type %s is not one of source, target", endpointType)
	}
	i := slices.IndexFunc(engines, func(e engine) bool { return e.name == engineName })
	if i < 0 {
		return "", "", invalidParameter("engine %s is not supported", engineName)
	}
	e := engines[i]
	if (endpointType == "source" && !e.source) || (endpointType == "target" && !e.target) {
		return "", "", invalidParameter("engine %s cannot be used as a %s endpoint", engineName, endpointType)
	}
	return endpointType, engineName, nil
}

func (s *Service) findEndpointByIdentifier(ctx context.Context, id string) (bool, error) {
	endpoints, err := s.endpoints.List(ctx)
	if err != nil {
		return false, err
	}
	return slices.ContainsFunc(endpoints, func(e api.Endpoint) bool {
		return ptr.ToString(e.EndpointIdentifier) == id
	}), nil
}

func (s *Service) endpointInUse(ctx context.Context, arn string) (bool, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return false, err
	}
	return slices.ContainsFunc(tasks, func(t api.ReplicationTask) bool {
		return ptr.ToString(t.SourceEndpointArn) == arn || ptr.ToString(t.TargetEndpointArn) == arn
	}), nil
}

func (s *Service) checkCertificate(ctx context.Context, arn *string) error {
	if arn == nil {
		return nil
	}
	_, err := lookup(ctx, s.certificates, "certificate", *arn)
	return err
}

// withoutPassword copies MongoDB settings and drops the password, which is
// never returned.
func withoutPassword(m *api.MongoDbSettings) *api.MongoDbSettings {
	if m == nil {
		return nil
	}
	c := *m
	c.Password = nil
	return &c
}

// CreateEndpoint creates an active endpoint
func (s *Service) CreateEndpoint(ctx context.Context, req *api.CreateEndpointRequest) (*api.CreateEndpointResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := normalizeIdentifier("EndpointIdentifier", req.EndpointIdentifier, 255)
	if err != nil {
		return nil, err
	}
	endpointType, engineName, err := checkEngine(ptr.ToString(req.EndpointType), ptr.ToString(req.EngineName))
	if err != nil {
		return nil, err
	}
	exists, err := s.findEndpointByIdentifier(ctx, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, alreadyExists("endpoint %s already exists", id)
	}
	if s.endpoints.Len() >= maxEndpoints {
		return nil, &api.ResourceQuotaExceededFault{Message: ptr.String(
			fmt.Sprintf("endpoint quota of %d exceeded", maxEndpoints))}
	}
	if err := s.checkCertificate(ctx, req.CertificateArn); err != nil {
		return nil, err
	}

	arn := s.arn("endpoint")
	e := &api.Endpoint{
		EndpointArn:               ptr.String(arn),
		EndpointIdentifier:        ptr.String(id),
		EndpointType:              ptr.String(endpointType),
		EngineName:                ptr.String(engineName),
		Status:                    ptr.String(statusActive),
		CertificateArn:            req.CertificateArn,
		DatabaseName:              req.DatabaseName,
		ExtraConnectionAttributes: req.ExtraConnectionAttributes,
		Port:                      req.Port,
		ServerName:                req.ServerName,
		SslMode:                   req.SslMode,
		Username:                  req.Username,
		DynamoDbSettings:          req.DynamoDbSettings,
		MongoDbSettings:           withoutPassword(req.MongoDbSettings),
		S3Settings:                req.S3Settings,
		ExternalId:                ptr.String(uuid.NewString()),
	}
	if e.SslMode == nil {
		e.SetSslModeValue(api.DmsSslModeValueNone)
	}
	if req.KmsKeyId != nil {
		e.SetKmsKeyId(*req.KmsKeyId)
	} else {
		e.SetKmsKeyId(fmt.Sprintf("arn:aws:kms:%s:%s:key/%s", s.region, s.accountID, uuid.NewString()))
	}

	if err := s.endpoints.Create(ctx, arn, *e); err != nil {
		return nil, err
	}
	if err := s.registerTags(ctx, arn, req.Tags); err != nil {
		return nil, err
	}
	return (&api.CreateEndpointResponse{}).SetEndpoint(e), nil
}

// DescribeEndpoints lists endpoints
func (s *Service) DescribeEndpoints(ctx context.Context, req *api.DescribeEndpointsRequest) (*api.DescribeEndpointsResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	endpoints, err := s.endpoints.List(ctx)
	if err != nil {
		return nil, err
	}
	endpoints, err = applyFilters(endpoints, req.Filters, endpointFilters)
	if err != nil {
		return nil, err
	}
	page, next, err := paginate(endpoints, req.Marker, req.MaxRecords)
	if err != nil {
		return nil, err
	}
	return &api.DescribeEndpointsResponse{Endpoints: page, Marker: next}, nil
}

// ModifyEndpoint changes the members that are set in the request
func (s *Service) ModifyEndpoint(ctx context.Context, req *api.ModifyEndpointRequest) (*api.ModifyEndpointResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	arn := ptr.ToString(req.EndpointArn)
	e, err := lookup(ctx, s.endpoints, "endpoint", arn)
	if err != nil {
		return nil, err
	}

	if req.EndpointIdentifier != nil {
		id, err := normalizeIdentifier("EndpointIdentifier", req.EndpointIdentifier, 255)
		if err != nil {
			return nil, err
		}
		if id != ptr.ToString(e.EndpointIdentifier) {
			exists, err := s.findEndpointByIdentifier(ctx, id)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, alreadyExists("endpoint %s already exists", id)
			}
			e.SetEndpointIdentifier(id)
		}
	}

	if req.EndpointType != nil || req.EngineName != nil {
		endpointType := ptr.ToString(e.EndpointType)
		if req.EndpointType != nil {
			endpointType = *req.EndpointType
		}
		engineName := ptr.ToString(e.EngineName)
		if req.EngineName != nil {
			engineName = *req.EngineName
		}
		endpointType, engineName, err = checkEngine(endpointType, engineName)
		if err != nil {
			return nil, err
		}
		e.SetEndpointType(endpointType).SetEngineName(engineName)
	}

	if req.CertificateArn != nil {
		if err := s.checkCertificate(ctx, req.CertificateArn); err != nil {
			return nil, err
		}
		e.SetCertificateArn(*req.CertificateArn)
	}
	if req.DatabaseName != nil {
		e.SetDatabaseName(*req.DatabaseName)
	}
	if req.ExtraConnectionAttributes != nil {
		e.SetExtraConnectionAttributes(*req.ExtraConnectionAttributes)
	}
	if req.Port != nil {
		e.SetPort(*req.Port)
	}
	if req.ServerName != nil {
		e.SetServerName(*req.ServerName)
	}
	if req.SslMode != nil {
		e.SetSslMode(*req.SslMode)
	}
	if req.Username != nil {
		e.SetUsername(*req.Username)
	}
	if req.DynamoDbSettings != nil {
		e.SetDynamoDbSettings(req.DynamoDbSettings)
	}
	if req.MongoDbSettings != nil {
		e.SetMongoDbSettings(withoutPassword(req.MongoDbSettings))
	}
	if req.S3Settings != nil {
		e.SetS3Settings(req.S3Settings)
	}

	if err := s.endpoints.Update(ctx, arn, e); err != nil {
		return nil, err
	}
	return (&api.ModifyEndpointResponse{}).SetEndpoint(&e), nil
}

// DeleteEndpoint deletes an endpoint no task uses
func (s *Service) DeleteEndpoint(ctx context.Context, req *api.DeleteEndpointRequest) (*api.DeleteEndpointResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	arn := ptr.ToString(req.EndpointArn)
	if _, err := lookup(ctx, s.endpoints, "endpoint", arn); err != nil {
		return nil, err
	}
	inUse, err := s.endpointInUse(ctx, arn)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, invalidState("endpoint %s is used by a replication task", arn)
	}

	e, err := s.endpoints.Delete(ctx, arn)
	if err != nil {
		return nil, err
	}
	if err := s.dropConnections(ctx, func(c api.Connection) bool {
		return ptr.ToString(c.EndpointArn) == arn
	}); err != nil {
		return nil, err
	}
	_, _ = s.tags.Delete(ctx, arn)

	e.SetStatus(statusDeleting)
	return (&api.DeleteEndpointResponse{}).SetEndpoint(&e), nil
}

// DescribeEndpointTypes lists the supported engines per endpoint type
func (s *Service) DescribeEndpointTypes(ctx context.Context, req *api.DescribeEndpointTypesRequest) (*api.DescribeEndpointTypesResponse, error) {
	types, err := applyFilters(supportedEndpointTypes(), req.Filters, endpointTypeFilters)
	if err != nil {
		return nil, err
	}
	page, next, err := paginate(types, req.Marker, req.MaxRecords)
	if err != nil {
		return nil, err
	}
	return &api.DescribeEndpointTypesResponse{SupportedEndpointTypes: page, Marker: next}, nil
}

// Connections

func connectionKey(instanceArn, endpointArn string) string {
	return instanceArn + "|" + endpointArn
}

func (s *Service) dropConnections(ctx context.Context, match func(api.Connection) bool) error {
	connections, err := s.connections.List(ctx)
	if err != nil {
		return err
	}
	for _, c := range connections {
		if match(c) {
			key := connectionKey(ptr.ToString(c.ReplicationInstanceArn), ptr.ToString(c.EndpointArn))
			if _, err := s.connections.Delete(ctx, key); err != nil {
				return err
			}
		}
	}
	return nil
}

// TestConnection starts a connection test. The response reports the test
// as running; DescribeConnections shows it as successful afterwards.
func (s *Service) TestConnection(ctx context.Context, req *api.TestConnectionRequest) (*api.TestConnectionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	instanceArn := ptr.ToString(req.ReplicationInstanceArn)
	ri, err := lookup(ctx, s.instances, "replication instance", instanceArn)
	if err != nil {
		return nil, err
	}
	endpointArn := ptr.ToString(req.EndpointArn)
	e, err := lookup(ctx, s.endpoints, "endpoint", endpointArn)
	if err != nil {
		return nil, err
	}

	conn := (&api.Connection{}).
		SetReplicationInstanceArn(instanceArn).
		SetReplicationInstanceIdentifier(ptr.ToString(ri.ReplicationInstanceIdentifier)).
		SetEndpointArn(endpointArn).
		SetEndpointIdentifier(ptr.ToString(e.EndpointIdentifier))

	stored := *conn
	stored.SetStatus(statusSuccessful)

	key := connectionKey(instanceArn, endpointArn)
	save := s.connections.Create
	if _, getErr := s.connections.Get(ctx, key); getErr == nil {
		save = s.connections.Update
	}
	if err := save(ctx, key, stored); err != nil {
		return nil, err
	}

	return (&api.TestConnectionResponse{}).SetConnection(conn.SetStatus(statusTesting)), nil
}

// DescribeConnections lists the results of connection tests
func (s *Service) DescribeConnections(ctx context.Context, req *api.DescribeConnectionsRequest) (*api.DescribeConnectionsResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	connections, err := s.connections.List(ctx)
	if err != nil {
		return nil, err
	}
	connections, err = applyFilters(connections, req.Filters, connectionFilters)
	if err != nil {
		return nil, err
	}
	page, next, err := paginate(connections, req.Marker, req.MaxRecords)
	if err != nil {
		return nil, err
	}
	return &api.DescribeConnectionsResponse{Connections: page, Marker: next}, nil
}
