package mockserver

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandemo-ya/dms-go/internal/api"
	"github.com/nandemo-ya/dms-go/internal/api/ptr"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestService() (*Service, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	return NewService(WithRegion("eu-west-1"), WithClock(clock.Now)), clock
}

func createInstance(t *testing.T, s *Service, id string, storage int32) *api.ReplicationInstance {
	t.Helper()
	resp, err := s.CreateReplicationInstance(context.Background(), (&api.CreateReplicationInstanceRequest{}).
		SetReplicationInstanceIdentifier(id).
		SetReplicationInstanceClass("dms.t2.medium").
		SetAllocatedStorage(storage))
	require.NoError(t, err)
	return resp.ReplicationInstance
}

func createEndpoint(t *testing.T, s *Service, id, endpointType, engine string) *api.Endpoint {
	t.Helper()
	resp, err := s.CreateEndpoint(context.Background(), (&api.CreateEndpointRequest{}).
		SetEndpointIdentifier(id).
		SetEndpointType(endpointType).
		SetEngineName(engine).
		SetServerName("db.example.com").
		SetPort(5432).
		SetUsername("admin").
		SetPassword("secret"))
	require.NoError(t, err)
	return resp.Endpoint
}

func createTask(t *testing.T, s *Service, id string, ri *api.ReplicationInstance, source, target *api.Endpoint) *api.ReplicationTask {
	t.Helper()
	resp, err := s.CreateReplicationTask(context.Background(), (&api.CreateReplicationTaskRequest{}).
		SetReplicationTaskIdentifier(id).
		SetReplicationInstanceArn(*ri.ReplicationInstanceArn).
		SetSourceEndpointArn(*source.EndpointArn).
		SetTargetEndpointArn(*target.EndpointArn).
		SetMigrationTypeValue(api.MigrationTypeValueFullLoad).
		SetTableMappings(`{"rules":[]}`))
	require.NoError(t, err)
	return resp.ReplicationTask
}

func TestNormalizeIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		valid    bool
	}{
		{"MyInstance", "myinstance", true},
		{"a", "a", true},
		{"rep-1-b", "rep-1-b", true},
		{"", "", false},
		{"1abc", "", false},
		{"abc-", "", false},
		{"ab--c", "", false},
		{"ab_c", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := normalizeIdentifier("Identifier", ptr.String(tt.input), 63)
			if !tt.valid {
				var fault *api.InvalidParameterValueException
				require.ErrorAs(t, err, &fault)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := normalizeIdentifier("Identifier", ptr.String("abcdef"), 5)
	assert.Error(t, err)
}

func TestPaginate(t *testing.T) {
	records := make([]int, 45)
	for i := range records {
		records[i] = i
	}

	page, next, err := paginate(records, nil, ptr.Int32(20))
	require.NoError(t, err)
	assert.Equal(t, records[:20], page)
	require.NotNil(t, next)

	page, next, err = paginate(records, next, ptr.Int32(20))
	require.NoError(t, err)
	assert.Equal(t, records[20:40], page)

	page, next, err = paginate(records, next, ptr.Int32(20))
	require.NoError(t, err)
	assert.Equal(t, records[40:], page)
	assert.Nil(t, next)

	// clamped to 20..100
	page, _, _ = paginate(records, nil, ptr.Int32(5))
	assert.Len(t, page, 20)
	page, next, _ = paginate(records, nil, nil)
	assert.Len(t, page, 45)
	assert.Nil(t, next)

	_, _, err = paginate(records, ptr.String("not-a-marker"), nil)
	var fault *api.InvalidParameterValueException
	assert.ErrorAs(t, err, &fault)
}

func TestReplicationInstanceLifecycle(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService()

	ri := createInstance(t, s, "MyRepInstance", 100)
	assert.Equal(t, "myrepinstance", *ri.ReplicationInstanceIdentifier)
	assert.Equal(t, "available", *ri.ReplicationInstanceStatus)
	assert.Regexp(t, `^arn:aws:dms:eu-west-1:123456789012:rep:[A-Z0-9]{26}$`, *ri.ReplicationInstanceArn)
	assert.Equal(t, "eu-west-1a", *ri.AvailabilityZone)
	assert.Equal(t, "default", *ri.ReplicationSubnetGroup.ReplicationSubnetGroupIdentifier)
	assert.Equal(t, int32(100), *ri.AllocatedStorage)

	_, err := s.CreateReplicationInstance(ctx, (&api.CreateReplicationInstanceRequest{}).
		SetReplicationInstanceIdentifier("myrepinstance").
		SetReplicationInstanceClass("dms.t2.medium"))
	var exists *api.ResourceAlreadyExistsFault
	require.ErrorAs(t, err, &exists)

	_, err = s.CreateReplicationInstance(ctx, (&api.CreateReplicationInstanceRequest{}).
		SetReplicationInstanceIdentifier("other").
		SetReplicationInstanceClass("dms.x9.huge"))
	var invalid *api.InvalidParameterValueException
	require.ErrorAs(t, err, &invalid)

	modified, err := s.ModifyReplicationInstance(ctx, (&api.ModifyReplicationInstanceRequest{}).
		SetReplicationInstanceArn(*ri.ReplicationInstanceArn).
		SetReplicationInstanceClass("dms.c4.large").
		SetPreferredMaintenanceWindow("mon:01:00-mon:01:30"))
	require.NoError(t, err)
	assert.Equal(t, "dms.t2.medium", *modified.ReplicationInstance.ReplicationInstanceClass)
	assert.Equal(t, "dms.c4.large", *modified.ReplicationInstance.PendingModifiedValues.ReplicationInstanceClass)
	assert.Equal(t, "mon:01:00-mon:01:30", *modified.ReplicationInstance.PreferredMaintenanceWindow)

	rebooted, err := s.RebootReplicationInstance(ctx, (&api.RebootReplicationInstanceRequest{}).
		SetReplicationInstanceArn(*ri.ReplicationInstanceArn))
	require.NoError(t, err)
	assert.Equal(t, "dms.c4.large", *rebooted.ReplicationInstance.ReplicationInstanceClass)
	assert.Nil(t, rebooted.ReplicationInstance.PendingModifiedValues)

	immediate, err := s.ModifyReplicationInstance(ctx, (&api.ModifyReplicationInstanceRequest{}).
		SetReplicationInstanceArn(*ri.ReplicationInstanceArn).
		SetMultiAZ(true).
		SetApplyImmediately(true))
	require.NoError(t, err)
	assert.True(t, *immediate.ReplicationInstance.MultiAZ)
	assert.Equal(t, "eu-west-1b", *immediate.ReplicationInstance.SecondaryAvailabilityZone)

	// ForceFailover needs Multi-AZ, which the instance now has
	failover, err := s.RebootReplicationInstance(ctx, (&api.RebootReplicationInstanceRequest{}).
		SetReplicationInstanceArn(*ri.ReplicationInstanceArn).
		SetForceFailover(true))
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1b", *failover.ReplicationInstance.AvailabilityZone)

	deleted, err := s.DeleteReplicationInstance(ctx, (&api.DeleteReplicationInstanceRequest{}).
		SetReplicationInstanceArn(*ri.ReplicationInstanceArn))
	require.NoError(t, err)
	assert.Equal(t, "deleting", *deleted.ReplicationInstance.ReplicationInstanceStatus)

	_, err = s.DeleteReplicationInstance(ctx, (&api.DeleteReplicationInstanceRequest{}).
		SetReplicationInstanceArn(*ri.ReplicationInstanceArn))
	var missing *api.ResourceNotFoundFault
	require.ErrorAs(t, err, &missing)
}

func TestReplicationInstanceQuotas(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService()

	for i := 0; i < DefaultReplicationInstanceQuota; i++ {
		createInstance(t, s, fmt.Sprintf("ri%d", i), 5)
	}
	_, err := s.CreateReplicationInstance(ctx, (&api.CreateReplicationInstanceRequest{}).
		SetReplicationInstanceIdentifier("one-too-many").
		SetReplicationInstanceClass("dms.t2.micro"))
	var quota *api.ResourceQuotaExceededFault
	require.ErrorAs(t, err, &quota)

	s2, _ := newTestService()
	createInstance(t, s2, "big1", 6000)
	_, err = s2.CreateReplicationInstance(ctx, (&api.CreateReplicationInstanceRequest{}).
		SetReplicationInstanceIdentifier("big2").
		SetReplicationInstanceClass("dms.t2.micro").
		SetAllocatedStorage(5000))
	var storageQuota *api.StorageQuotaExceededFault
	require.ErrorAs(t, err, &storageQuota)

	attrs, err := s2.DescribeAccountAttributes(ctx, &api.DescribeAccountAttributesRequest{})
	require.NoError(t, err)
	quotas := map[string][2]int64{}
	for _, q := range attrs.AccountQuotas {
		quotas[*q.AccountQuotaName] = [2]int64{*q.Used, *q.Max}
	}
	assert.Equal(t, [2]int64{1, 20}, quotas["ReplicationInstances"])
	assert.Equal(t, [2]int64{6000, 10000}, quotas["AllocatedStorage"])
}

func TestDescribeReplicationInstancesFiltersAndPages(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	s := NewService(WithClock(clock.Now), WithReplicationInstanceQuota(30))
	for i := 0; i < 25; i++ {
		createInstance(t, s, fmt.Sprintf("ri%02d", i), 10)
	}

	resp, err := s.DescribeReplicationInstances(ctx, (&api.DescribeReplicationInstancesRequest{}).
		AddFilters(*(&api.Filter{}).SetName("replication-instance-id").SetValues([]string{"ri03", "ri07"})))
	require.NoError(t, err)
	require.Len(t, resp.ReplicationInstances, 2)
	assert.Equal(t, "ri03", *resp.ReplicationInstances[0].ReplicationInstanceIdentifier)
	assert.Nil(t, resp.Marker)

	_, err = s.DescribeReplicationInstances(ctx, (&api.DescribeReplicationInstancesRequest{}).
		AddFilters(*(&api.Filter{}).SetName("no-such-filter").SetValues([]string{"x"})))
	var invalid *api.InvalidParameterValueException
	require.ErrorAs(t, err, &invalid)

	// MaxRecords below the minimum is raised to 20
	first, err := s.DescribeReplicationInstances(ctx, (&api.DescribeReplicationInstancesRequest{}).SetMaxRecords(5))
	require.NoError(t, err)
	assert.Len(t, first.ReplicationInstances, 20)
	require.NotNil(t, first.Marker)

	second, err := s.DescribeReplicationInstances(ctx, (&api.DescribeReplicationInstancesRequest{}).
		SetMaxRecords(20).SetMarker(*first.Marker))
	require.NoError(t, err)
	assert.Len(t, second.ReplicationInstances, 5)
	assert.Nil(t, second.Marker)

	attrs, err := s.DescribeAccountAttributes(ctx, &api.DescribeAccountAttributesRequest{})
	require.NoError(t, err)
	assert.Equal(t, "ReplicationInstances", *attrs.AccountQuotas[0].AccountQuotaName)
	assert.Equal(t, int64(30), *attrs.AccountQuotas[0].Max)
}

func TestReplicationSubnetGroups(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService()

	_, err := s.CreateReplicationSubnetGroup(ctx, (&api.CreateReplicationSubnetGroupRequest{}).
		SetReplicationSubnetGroupIdentifier("one-az").
		SetReplicationSubnetGroupDescription("d").
		SetSubnetIds([]string{"subnet-1"}))
	var azs *api.ReplicationSubnetGroupDoesNotCoverEnoughAZs
	require.ErrorAs(t, err, &azs)

	_, err = s.CreateReplicationSubnetGroup(ctx, (&api.CreateReplicationSubnetGroupRequest{}).
		SetReplicationSubnetGroupIdentifier("default").
		SetReplicationSubnetGroupDescription("d").
		SetSubnetIds([]string{"subnet-1", "subnet-2"}))
	var invalid *api.InvalidParameterValueException
	require.ErrorAs(t, err, &invalid)

	created, err := s.CreateReplicationSubnetGroup(ctx, (&api.CreateReplicationSubnetGroupRequest{}).
		SetReplicationSubnetGroupIdentifier("Private").
		SetReplicationSubnetGroupDescription("private subnets").
		SetSubnetIds([]string{"subnet-2", "subnet-1"}))
	require.NoError(t, err)
	group := created.ReplicationSubnetGroup
	assert.Equal(t, "private", *group.ReplicationSubnetGroupIdentifier)
	require.Len(t, group.Subnets, 2)
	assert.Equal(t, "subnet-1", *group.Subnets[0].SubnetIdentifier)
	assert.Equal(t, "eu-west-1a", *group.Subnets[0].SubnetAvailabilityZone.Name)
	assert.Equal(t, "eu-west-1b", *group.Subnets[1].SubnetAvailabilityZone.Name)

	ri, err := s.CreateReplicationInstance(ctx, (&api.CreateReplicationInstanceRequest{}).
		SetReplicationInstanceIdentifier("ri").
		SetReplicationInstanceClass("dms.t2.micro").
		SetReplicationSubnetGroupIdentifier("private"))
	require.NoError(t, err)
	assert.Equal(t, *group.VpcId, *ri.ReplicationInstance.ReplicationSubnetGroup.VpcId)

	_, err = s.DeleteReplicationSubnetGroup(ctx, (&api.DeleteReplicationSubnetGroupRequest{}).
		SetReplicationSubnetGroupIdentifier("private"))
	var state *api.InvalidResourceStateFault
	require.ErrorAs(t, err, &state)

	modified, err := s.ModifyReplicationSubnetGroup(ctx, (&api.ModifyReplicationSubnetGroupRequest{}).
		SetReplicationSubnetGroupIdentifier("private").
		SetSubnetIds([]string{"subnet-3", "subnet-4", "subnet-5"}))
	require.NoError(t, err)
	assert.Len(t, modified.ReplicationSubnetGroup.Subnets, 3)
	assert.Equal(t, "private subnets", *modified.ReplicationSubnetGroup.ReplicationSubnetGroupDescription)

	_, err = s.DeleteReplicationInstance(ctx, (&api.DeleteReplicationInstanceRequest{}).
		SetReplicationInstanceArn(*ri.ReplicationInstance.ReplicationInstanceArn))
	require.NoError(t, err)
	_, err = s.DeleteReplicationSubnetGroup(ctx, (&api.DeleteReplicationSubnetGroupRequest{}).
		SetReplicationSubnetGroupIdentifier("private"))
	require.NoError(t, err)

	groups, err := s.DescribeReplicationSubnetGroups(ctx, &api.DescribeReplicationSubnetGroupsRequest{})
	require.NoError(t, err)
	assert.Empty(t, groups.ReplicationSubnetGroups)
}

func TestEndpoints(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService()

	source := createEndpoint(t, s, "Source", "SOURCE", "postgres")
	assert.Equal(t, "source", *source.EndpointIdentifier)
	assert.Equal(t, "source", *source.EndpointType)
	assert.Equal(t, "active", *source.Status)
	assert.Equal(t, "none", *source.SslMode)

	_, err := s.CreateEndpoint(ctx, (&api.CreateEndpointRequest{}).
		SetEndpointIdentifier("bad").SetEndpointType("both").SetEngineName("mysql"))
	var invalid *api.InvalidParameterValueException
	require.ErrorAs(t, err, &invalid)

	_, err = s.CreateEndpoint(ctx, (&api.CreateEndpointRequest{}).
		SetEndpointIdentifier("bad").SetEndpointType("source").SetEngineName("redshift"))
	require.ErrorAs(t, err, &invalid)

	_, err = s.CreateEndpoint(ctx, (&api.CreateEndpointRequest{}).
		SetEndpointIdentifier("bad").SetEndpointType("target").SetEngineName("mysql").
		SetCertificateArn("arn:aws:dms:eu-west-1:123456789012:cert:NOPE"))
	var missing *api.ResourceNotFoundFault
	require.ErrorAs(t, err, &missing)

	modified, err := s.ModifyEndpoint(ctx, (&api.ModifyEndpointRequest{}).
		SetEndpointArn(*source.EndpointArn).
		SetPort(6543).
		SetEngineName("mysql"))
	require.NoError(t, err)
	assert.Equal(t, int32(6543), *modified.Endpoint.Port)
	assert.Equal(t, "mysql", *modified.Endpoint.EngineName)
	assert.Equal(t, "db.example.com", *modified.Endpoint.ServerName)

	createEndpoint(t, s, "target", "target", "s3")
	listed, err := s.DescribeEndpoints(ctx, (&api.DescribeEndpointsRequest{}).
		AddFilters(*(&api.Filter{}).SetName("endpoint-type").SetValues([]string{"target"})))
	require.NoError(t, err)
	require.Len(t, listed.Endpoints, 1)
	assert.Equal(t, "s3", *listed.Endpoints[0].EngineName)

	types, err := s.DescribeEndpointTypes(ctx, (&api.DescribeEndpointTypesRequest{}).
		AddFilters(*(&api.Filter{}).SetName("engine-name").SetValues([]string{"redshift"})))
	require.NoError(t, err)
	require.Len(t, types.SupportedEndpointTypes, 1)
	assert.Equal(t, "target", *types.SupportedEndpointTypes[0].EndpointType)
}

func TestConnections(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService()
	ri := createInstance(t, s, "ri", 50)
	e := createEndpoint(t, s, "src", "source", "mysql")

	resp, err := s.TestConnection(ctx, (&api.TestConnectionRequest{}).
		SetReplicationInstanceArn(*ri.ReplicationInstanceArn).
		SetEndpointArn(*e.EndpointArn))
	require.NoError(t, err)
	assert.Equal(t, "testing", *resp.Connection.Status)
	assert.Equal(t, "src", *resp.Connection.EndpointIdentifier)

	// a second test of the same pair replaces the first
	_, err = s.TestConnection(ctx, (&api.TestConnectionRequest{}).
		SetReplicationInstanceArn(*ri.ReplicationInstanceArn).
		SetEndpointArn(*e.EndpointArn))
	require.NoError(t, err)

	conns, err := s.DescribeConnections(ctx, (&api.DescribeConnectionsRequest{}).
		AddFilters(*(&api.Filter{}).SetName("endpoint-arn").SetValues([]string{*e.EndpointArn})))
	require.NoError(t, err)
	require.Len(t, conns.Connections, 1)
	assert.Equal(t, "successful", *conns.Connections[0].Status)

	_, err = s.TestConnection(ctx, (&api.TestConnectionRequest{}).
		SetReplicationInstanceArn(*ri.ReplicationInstanceArn).
		SetEndpointArn("arn:aws:dms:eu-west-1:123456789012:endpoint:NOPE"))
	var missing *api.ResourceNotFoundFault
	require.ErrorAs(t, err, &missing)

	_, err = s.DeleteEndpoint(ctx, (&api.DeleteEndpointRequest{}).SetEndpointArn(*e.EndpointArn))
	require.NoError(t, err)
	conns, err = s.DescribeConnections(ctx, &api.DescribeConnectionsRequest{})
	require.NoError(t, err)
	assert.Empty(t, conns.Connections)
}

func TestReplicationTaskStateMachine(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService()
	ri := createInstance(t, s, "ri", 50)
	source := createEndpoint(t, s, "src", "source", "mysql")
	target := createEndpoint(t, s, "dst", "target", "postgres")

	task := createTask(t, s, "Task1", ri, source, target)
	arn := *task.ReplicationTaskArn
	assert.Equal(t, "task1", *task.ReplicationTaskIdentifier)
	assert.Equal(t, "ready", *task.Status)

	stop := (&api.StopReplicationTaskRequest{}).SetReplicationTaskArn(arn)
	start := (&api.StartReplicationTaskRequest{}).
		SetReplicationTaskArn(arn).
		SetStartReplicationTaskTypeValue(api.StartReplicationTaskTypeValueStartReplication)

	var state *api.InvalidResourceStateFault
	_, err := s.StopReplicationTask(ctx, stop)
	require.ErrorAs(t, err, &state)

	started, err := s.StartReplicationTask(ctx, start)
	require.NoError(t, err)
	assert.Equal(t, "running", *started.ReplicationTask.Status)
	assert.NotNil(t, started.ReplicationTask.ReplicationTaskStartDate)

	_, err = s.StartReplicationTask(ctx, start)
	require.ErrorAs(t, err, &state)

	_, err = s.DeleteReplicationTask(ctx, (&api.DeleteReplicationTaskRequest{}).SetReplicationTaskArn(arn))
	require.ErrorAs(t, err, &state)

	_, err = s.ModifyReplicationTask(ctx, (&api.ModifyReplicationTaskRequest{}).
		SetReplicationTaskArn(arn).SetTableMappings(`{}`))
	require.ErrorAs(t, err, &state)

	_, err = s.DeleteReplicationInstance(ctx, (&api.DeleteReplicationInstanceRequest{}).
		SetReplicationInstanceArn(*ri.ReplicationInstanceArn))
	require.ErrorAs(t, err, &state)

	_, err = s.DeleteEndpoint(ctx, (&api.DeleteEndpointRequest{}).SetEndpointArn(*source.EndpointArn))
	require.ErrorAs(t, err, &state)

	stopped, err := s.StopReplicationTask(ctx, stop)
	require.NoError(t, err)
	assert.Equal(t, "stopped", *stopped.ReplicationTask.Status)
	assert.NotNil(t, stopped.ReplicationTask.StopReason)

	resumed, err := s.StartReplicationTask(ctx, (&api.StartReplicationTaskRequest{}).
		SetReplicationTaskArn(arn).
		SetStartReplicationTaskTypeValue(api.StartReplicationTaskTypeValueResumeProcessing))
	require.NoError(t, err)
	assert.Equal(t, "running", *resumed.ReplicationTask.Status)
	assert.Nil(t, resumed.ReplicationTask.StopReason)
	_, err = s.StopReplicationTask(ctx, stop)
	require.NoError(t, err)

	deleted, err := s.DeleteReplicationTask(ctx, (&api.DeleteReplicationTaskRequest{}).SetReplicationTaskArn(arn))
	require.NoError(t, err)
	assert.Equal(t, "deleting", *deleted.ReplicationTask.Status)

	_, err = s.DeleteReplicationInstance(ctx, (&api.DeleteReplicationInstanceRequest{}).
		SetReplicationInstanceArn(*ri.ReplicationInstanceArn))
	assert.NoError(t, err)
}

func TestCreateReplicationTaskValidation(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService()
	ri := createInstance(t, s, "ri", 50)
	source := createEndpoint(t, s, "src", "source", "mysql")
	target := createEndpoint(t, s, "dst", "target", "postgres")

	base := func() *api.CreateReplicationTaskRequest {
		return (&api.CreateReplicationTaskRequest{}).
			SetReplicationTaskIdentifier("task").
			SetReplicationInstanceArn(*ri.ReplicationInstanceArn).
			SetSourceEndpointArn(*source.EndpointArn).
			SetTargetEndpointArn(*target.EndpointArn).
			SetMigrationType("full-load").
			SetTableMappings(`{"rules":[]}`)
	}

	var invalid *api.InvalidParameterValueException
	_, err := s.CreateReplicationTask(ctx, base().SetMigrationType("sometimes"))
	require.ErrorAs(t, err, &invalid)

	_, err = s.CreateReplicationTask(ctx, base().SetTableMappings("{not json"))
	require.ErrorAs(t, err, &invalid)

	_, err = s.CreateReplicationTask(ctx, base().SetSourceEndpointArn(*target.EndpointArn))
	require.ErrorAs(t, err, &invalid)

	var missing *api.ResourceNotFoundFault
	_, err = s.CreateReplicationTask(ctx, base().SetReplicationInstanceArn("arn:nope"))
	require.ErrorAs(t, err, &missing)

	_, err = s.CreateReplicationTask(ctx, base())
	require.NoError(t, err)
	_, err = s.CreateReplicationTask(ctx, base())
	var exists *api.ResourceAlreadyExistsFault
	require.ErrorAs(t, err, &exists)

	tasks, err := s.DescribeReplicationTasks(ctx, (&api.DescribeReplicationTasksRequest{}).
		AddFilters(*(&api.Filter{}).SetName("endpoint-arn").SetValues([]string{*target.EndpointArn})))
	require.NoError(t, err)
	assert.Len(t, tasks.ReplicationTasks, 1)
}

func selfSignedPEM(t *testing.T) (string, *x509.Certificate) {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "db.example.com"},
		NotBefore:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)
	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)

	return string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})), cert
}

func TestReturnedShapesDoNotShareState(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService()
	ri := createInstance(t, s, "ri", 50)
	source := createEndpoint(t, s, "src", "source", "mysql")
	target := createEndpoint(t, s, "dst", "target", "postgres")

	req := (&api.CreateReplicationTaskRequest{}).
		SetReplicationTaskIdentifier("task").
		SetReplicationInstanceArn(*ri.ReplicationInstanceArn).
		SetSourceEndpointArn(*source.EndpointArn).
		SetTargetEndpointArn(*target.EndpointArn).
		SetMigrationTypeValue(api.MigrationTypeValueFullLoad).
		SetTableMappings(`{"rules":[]}`)
	created, err := s.CreateReplicationTask(ctx, req)
	require.NoError(t, err)
	arn := *created.ReplicationTask.ReplicationTaskArn

	*req.TableMappings = "{}"
	*req.ReplicationInstanceArn = "arn:changed"
	*created.ReplicationTask.Status = "running"

	describe := func() api.ReplicationTask {
		resp, err := s.DescribeReplicationTasks(ctx, (&api.DescribeReplicationTasksRequest{}).
			AddFilters(*(&api.Filter{}).SetName("replication-task-arn").SetValues([]string{arn})))
		require.NoError(t, err)
		require.Len(t, resp.ReplicationTasks, 1)
		return resp.ReplicationTasks[0]
	}
	task := describe()
	assert.Equal(t, "ready", *task.Status)
	assert.Equal(t, `{"rules":[]}`, *task.TableMappings)
	assert.Equal(t, *ri.ReplicationInstanceArn, *task.ReplicationInstanceArn)

	*task.Status = "stopped"
	assert.Equal(t, "ready", *describe().Status)

	*ri.ReplicationInstanceStatus = "deleting"
	instances, err := s.DescribeReplicationInstances(ctx, &api.DescribeReplicationInstancesRequest{})
	require.NoError(t, err)
	assert.Equal(t, "available", *instances.ReplicationInstances[0].ReplicationInstanceStatus)

	events, err := s.DescribeEvents(ctx, &api.DescribeEventsRequest{})
	require.NoError(t, err)
	require.NotEmpty(t, events.Events)
	*events.Events[0].Message = "rewritten"
	again, err := s.DescribeEvents(ctx, &api.DescribeEventsRequest{})
	require.NoError(t, err)
	assert.NotEqual(t, "rewritten", *again.Events[0].Message)
}

func TestCertificates(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService()
	pemData, parsed := selfSignedPEM(t)

	imported, err := s.ImportCertificate(ctx, (&api.ImportCertificateRequest{}).
		SetCertificateIdentifier("DbCert").
		SetCertificatePem(pemData))
	require.NoError(t, err)
	c := imported.Certificate
	assert.Equal(t, "dbcert", *c.CertificateIdentifier)
	assert.Equal(t, int32(256), *c.KeyLength)
	assert.Equal(t, parsed.SignatureAlgorithm.String(), *c.SigningAlgorithm)
	assert.True(t, c.ValidFromDate.Time.Equal(parsed.NotBefore))
	assert.True(t, c.ValidToDate.Time.Equal(parsed.NotAfter))
	assert.Equal(t, "123456789012", *c.CertificateOwner)

	var badCert *api.InvalidCertificateFault
	_, err = s.ImportCertificate(ctx, (&api.ImportCertificateRequest{}).
		SetCertificateIdentifier("garbage").SetCertificatePem("not a certificate"))
	require.ErrorAs(t, err, &badCert)

	_, err = s.ImportCertificate(ctx, (&api.ImportCertificateRequest{}).SetCertificateIdentifier("empty"))
	require.ErrorAs(t, err, &badCert)

	wallet, err := s.ImportCertificate(ctx, (&api.ImportCertificateRequest{}).
		SetCertificateIdentifier("wallet").SetCertificateWallet([]byte{0x01, 0x02}))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, wallet.Certificate.CertificateWallet)

	_, err = s.CreateEndpoint(ctx, (&api.CreateEndpointRequest{}).
		SetEndpointIdentifier("tls").SetEndpointType("source").SetEngineName("mysql").
		SetCertificateArn(*c.CertificateArn))
	require.NoError(t, err)

	_, err = s.DeleteCertificate(ctx, (&api.DeleteCertificateRequest{}).SetCertificateArn(*c.CertificateArn))
	var state *api.InvalidResourceStateFault
	require.ErrorAs(t, err, &state)

	listed, err := s.DescribeCertificates(ctx, (&api.DescribeCertificatesRequest{}).
		AddFilters(*(&api.Filter{}).SetName("certificate-id").SetValues([]string{"wallet"})))
	require.NoError(t, err)
	require.Len(t, listed.Certificates, 1)

	deleted, err := s.DeleteCertificate(ctx, (&api.DeleteCertificateRequest{}).
		SetCertificateArn(*wallet.Certificate.CertificateArn))
	require.NoError(t, err)
	assert.Equal(t, "wallet", *deleted.Certificate.CertificateIdentifier)
}

func TestTags(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService()
	ri, err := s.CreateReplicationInstance(ctx, (&api.CreateReplicationInstanceRequest{}).
		SetReplicationInstanceIdentifier("ri").
		SetReplicationInstanceClass("dms.t2.micro").
		AddTags(*(&api.Tag{}).SetKey("env").SetValue("dev")))
	require.NoError(t, err)
	arn := *ri.ReplicationInstance.ReplicationInstanceArn

	_, err = s.AddTagsToResource(ctx, (&api.AddTagsToResourceRequest{}).
		SetResourceArn(arn).
		AddTags(*(&api.Tag{}).SetKey("env").SetValue("prod"), *(&api.Tag{}).SetKey("team").SetValue("data")))
	require.NoError(t, err)

	listed, err := s.ListTagsForResource(ctx, (&api.ListTagsForResourceRequest{}).SetResourceArn(arn))
	require.NoError(t, err)
	assert.Equal(t, []api.Tag{
		*(&api.Tag{}).SetKey("env").SetValue("prod"),
		*(&api.Tag{}).SetKey("team").SetValue("data"),
	}, listed.TagList)

	_, err = s.RemoveTagsFromResource(ctx, (&api.RemoveTagsFromResourceRequest{}).
		SetResourceArn(arn).SetTagKeys([]string{"env"}))
	require.NoError(t, err)
	listed, err = s.ListTagsForResource(ctx, (&api.ListTagsForResourceRequest{}).SetResourceArn(arn))
	require.NoError(t, err)
	require.Len(t, listed.TagList, 1)
	assert.Equal(t, "team", *listed.TagList[0].Key)

	_, err = s.ListTagsForResource(ctx, (&api.ListTagsForResourceRequest{}).SetResourceArn("arn:unknown"))
	var missing *api.ResourceNotFoundFault
	require.ErrorAs(t, err, &missing)
}

func TestDescribeEvents(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestService()
	ri := createInstance(t, s, "ri", 50)

	clock.Advance(2 * time.Hour)
	_, err := s.RebootReplicationInstance(ctx, (&api.RebootReplicationInstanceRequest{}).
		SetReplicationInstanceArn(*ri.ReplicationInstanceArn))
	require.NoError(t, err)

	// default window is the last hour
	recent, err := s.DescribeEvents(ctx, &api.DescribeEventsRequest{})
	require.NoError(t, err)
	require.Len(t, recent.Events, 1)
	assert.Equal(t, "Replication instance rebooted", *recent.Events[0].Message)

	all, err := s.DescribeEvents(ctx, (&api.DescribeEventsRequest{}).SetDuration(180))
	require.NoError(t, err)
	assert.Len(t, all.Events, 2)

	created, err := s.DescribeEvents(ctx, (&api.DescribeEventsRequest{}).
		SetStartTime(clock.t.Add(-3*time.Hour)).
		SetEventCategories([]string{"creation"}).
		SetSourceIdentifier("ri").
		SetSourceTypeValue(api.SourceTypeReplicationInstance))
	require.NoError(t, err)
	require.Len(t, created.Events, 1)
	assert.Equal(t, "Replication instance created", *created.Events[0].Message)

	_, err = s.DescribeEvents(ctx, (&api.DescribeEventsRequest{}).
		SetStartTime(clock.t).SetEndTime(clock.t.Add(-time.Minute)))
	var invalid *api.InvalidParameterValueException
	require.ErrorAs(t, err, &invalid)

	categories, err := s.DescribeEventCategories(ctx, (&api.DescribeEventCategoriesRequest{}).
		SetSourceType("replication-instance"))
	require.NoError(t, err)
	require.Len(t, categories.EventCategoryGroupList, 1)
	assert.Contains(t, categories.EventCategoryGroupList[0].EventCategories, "creation")
}

func TestDescribeOrderableReplicationInstances(t *testing.T) {
	s, _ := newTestService()
	resp, err := s.DescribeOrderableReplicationInstances(context.Background(), &api.DescribeOrderableReplicationInstancesRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.OrderableReplicationInstances, len(replicationInstanceClasses))
	assert.Equal(t, int32(50), *resp.OrderableReplicationInstances[0].DefaultAllocatedStorage)
}

func TestUnsupportedOperation(t *testing.T) {
	s, _ := newTestService()
	_, err := s.RefreshSchemas(context.Background(), &api.RefreshSchemasRequest{})
	var apiErr smithy.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "NotImplemented", apiErr.ErrorCode())
	assert.Equal(t, smithy.FaultServer, apiErr.ErrorFault())
}
