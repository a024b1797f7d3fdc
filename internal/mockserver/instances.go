package mockserver

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/nandemo-ya/dms-go/internal/api"
	"github.com/nandemo-ya/dms-go/internal/api/ptr"
	"github.com/nandemo-ya/dms-go/internal/shape"
)

const (
	defaultAllocatedStorage  = 50
	minAllocatedStorage      = 5
	maxInstanceStorage       = 6144
	defaultEngineVersion     = "3.5.3"
	defaultMaintenanceWindow = "sun:06:00-sun:06:30"
	defaultSubnetGroupID     = "default"

	statusAvailable = "available"
	statusDeleting  = "deleting"
)

var replicationInstanceClasses = []string{
	"dms.c4.2xlarge", "dms.c4.4xlarge", "dms.c4.large", "dms.c4.xlarge",
	"dms.r4.large", "dms.r4.xlarge",
	"dms.t2.large", "dms.t2.medium", "dms.t2.micro", "dms.t2.small",
	"dms.t3.large", "dms.t3.medium", "dms.t3.micro", "dms.t3.small",
}

var instanceFilters = filterFields[api.ReplicationInstance]{
	"replication-instance-arn":   func(r *api.ReplicationInstance) []string { return values(r.ReplicationInstanceArn) },
	"replication-instance-id":    func(r *api.ReplicationInstance) []string { return values(r.ReplicationInstanceIdentifier) },
	"replication-instance-class": func(r *api.ReplicationInstance) []string { return values(r.ReplicationInstanceClass) },
	"engine-version":             func(r *api.ReplicationInstance) []string { return values(r.EngineVersion) },
}

var subnetGroupFilters = filterFields[api.ReplicationSubnetGroup]{
	"replication-subnet-group-id": func(g *api.ReplicationSubnetGroup) []string {
		return values(g.ReplicationSubnetGroupIdentifier)
	},
}

func checkInstanceClass(class string) error {
	if !slices.Contains(replicationInstanceClasses, class) {
		return invalidParameter("replication instance class %s is not supported", class)
	}
	return nil
}

func checkInstanceStorage(gb int32) error {
	if gb < minAllocatedStorage || gb > maxInstanceStorage {
		return invalidParameter("allocated storage must be between %d and %d GB", minAllocatedStorage, maxInstanceStorage)
	}
	return nil
}

// allocatedStorage sums the storage of all instances except exclude.
func (s *Service) allocatedStorage(ctx context.Context, exclude string) (int, error) {
	instances, err := s.instances.List(ctx)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, ri := range instances {
		if ptr.ToString(ri.ReplicationInstanceArn) != exclude {
			total += int(ptr.ToInt32(ri.AllocatedStorage))
		}
	}
	return total, nil
}

func (s *Service) checkStorageQuota(ctx context.Context, exclude string, gb int32) error {
	used, err := s.allocatedStorage(ctx, exclude)
	if err != nil {
		return err
	}
	if used+int(gb) > maxAllocatedStorageGB {
		return &api.StorageQuotaExceededFault{Message: ptr.String(
			fmt.Sprintf("allocated storage quota of %d GB exceeded", maxAllocatedStorageGB))}
	}
	return nil
}

func (s *Service) findInstanceByIdentifier(ctx context.Context, id string) (bool, error) {
	instances, err := s.instances.List(ctx)
	if err != nil {
		return false, err
	}
	return slices.ContainsFunc(instances, func(ri api.ReplicationInstance) bool {
		return ptr.ToString(ri.ReplicationInstanceIdentifier) == id
	}), nil
}

func (s *Service) instanceInUse(ctx context.Context, arn string) (bool, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return false, err
	}
	return slices.ContainsFunc(tasks, func(t api.ReplicationTask) bool {
		return ptr.ToString(t.ReplicationInstanceArn) == arn
	}), nil
}

func (s *Service) nextIP(prefix string) string {
	s.ipSeq++
	return fmt.Sprintf("%s.%d.%d", prefix, s.ipSeq/250, s.ipSeq%250+1)
}

func (s *Service) defaultSubnetGroup() api.ReplicationSubnetGroup {
	return *(&api.ReplicationSubnetGroup{}).
		SetReplicationSubnetGroupIdentifier(defaultSubnetGroupID).
		SetReplicationSubnetGroupDescription(defaultSubnetGroupID).
		SetSubnetGroupStatus("Complete").
		SetVpcId("vpc-default")
}

func securityGroups(ids []string) []api.VpcSecurityGroupMembership {
	var groups []api.VpcSecurityGroupMembership
	for _, id := range ids {
		groups = append(groups, *(&api.VpcSecurityGroupMembership{}).SetVpcSecurityGroupId(id).SetStatus("active"))
	}
	return groups
}

// CreateReplicationInstance creates an available replication instance
func (s *Service) CreateReplicationInstance(ctx context.Context, req *api.CreateReplicationInstanceRequest) (*api.CreateReplicationInstanceResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := normalizeIdentifier("ReplicationInstanceIdentifier", req.ReplicationInstanceIdentifier, 63)
	if err != nil {
		return nil, err
	}
	class := ptr.ToString(req.ReplicationInstanceClass)
	if err := checkInstanceClass(class); err != nil {
		return nil, err
	}

	exists, err := s.findInstanceByIdentifier(ctx, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, alreadyExists("replication instance %s already exists", id)
	}
	if s.instances.Len() >= s.instanceQuota {
		return nil, &api.ResourceQuotaExceededFault{Message: ptr.String(
			fmt.Sprintf("replication instance quota of %d exceeded", s.instanceQuota))}
	}

	gb := int32(defaultAllocatedStorage)
	if req.AllocatedStorage != nil {
		gb = *req.AllocatedStorage
	}
	if err := checkInstanceStorage(gb); err != nil {
		return nil, err
	}
	if err := s.checkStorageQuota(ctx, "", gb); err != nil {
		return nil, err
	}

	group := s.defaultSubnetGroup()
	if req.ReplicationSubnetGroupIdentifier != nil {
		group, err = lookup(ctx, s.subnetGroups, "replication subnet group", ptr.ToString(req.ReplicationSubnetGroupIdentifier))
		if err != nil {
			return nil, err
		}
	}

	az := ptr.ToString(req.AvailabilityZone)
	if az == "" {
		az = s.region + "a"
	}
	engineVersion := ptr.ToString(req.EngineVersion)
	if engineVersion == "" {
		engineVersion = defaultEngineVersion
	}
	window := ptr.ToString(req.PreferredMaintenanceWindow)
	if window == "" {
		window = defaultMaintenanceWindow
	}
	autoUpgrade := req.AutoMinorVersionUpgrade == nil || *req.AutoMinorVersionUpgrade
	public := req.PubliclyAccessible == nil || *req.PubliclyAccessible
	multiAZ := ptr.ToBool(req.MultiAZ)

	arn := s.arn("rep")
	privateIP := s.nextIP("10.0")
	ri := (&api.ReplicationInstance{}).
		SetReplicationInstanceArn(arn).
		SetReplicationInstanceIdentifier(id).
		SetReplicationInstanceClass(class).
		SetReplicationInstanceStatus(statusAvailable).
		SetAllocatedStorage(gb).
		SetInstanceCreateTime(s.timestamp()).
		SetAvailabilityZone(az).
		SetEngineVersion(engineVersion).
		SetAutoMinorVersionUpgrade(autoUpgrade).
		SetPreferredMaintenanceWindow(window).
		SetPubliclyAccessible(public).
		SetMultiAZ(multiAZ).
		SetReplicationSubnetGroup(&group).
		SetReplicationInstancePrivateIpAddress(privateIP).
		SetReplicationInstancePrivateIpAddresses([]string{privateIP}).
		SetVpcSecurityGroups(securityGroups(req.VpcSecurityGroupIds))
	if req.KmsKeyId != nil {
		ri.SetKmsKeyId(*req.KmsKeyId)
	} else {
		ri.SetKmsKeyId(fmt.Sprintf("arn:aws:kms:%s:%s:key/%s", s.region, s.accountID, uuid.NewString()))
	}
	if multiAZ {
		ri.SetSecondaryAvailabilityZone(s.region + "b")
	}
	if public {
		publicIP := s.nextIP("54.0")
		ri.SetReplicationInstancePublicIpAddress(publicIP).SetReplicationInstancePublicIpAddresses([]string{publicIP})
	}

	if err := s.instances.Create(ctx, arn, *ri); err != nil {
		return nil, err
	}
	if err := s.registerTags(ctx, arn, req.Tags); err != nil {
		return nil, err
	}
	s.recordEvent(sourceReplicationInstance, id, "Replication instance created", categoryCreation)

	return (&api.CreateReplicationInstanceResponse{}).SetReplicationInstance(ri), nil
}

// DescribeReplicationInstances lists replication instances
func (s *Service) DescribeReplicationInstances(ctx context.Context, req *api.DescribeReplicationInstancesRequest) (*api.DescribeReplicationInstancesResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	instances, err := s.instances.List(ctx)
	if err != nil {
		return nil, err
	}
	instances, err = applyFilters(instances, req.Filters, instanceFilters)
	if err != nil {
		return nil, err
	}
	page, next, err := paginate(instances, req.Marker, req.MaxRecords)
	if err != nil {
		return nil, err
	}
	return &api.DescribeReplicationInstancesResponse{ReplicationInstances: page, Marker: next}, nil
}

// ModifyReplicationInstance changes an instance. Class, storage, engine
// version and Multi-AZ changes stay pending until the next reboot unless
// ApplyImmediately is set.
func (s *Service) ModifyReplicationInstance(ctx context.Context, req *api.ModifyReplicationInstanceRequest) (*api.ModifyReplicationInstanceResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	arn := ptr.ToString(req.ReplicationInstanceArn)
	ri, err := lookup(ctx, s.instances, "replication instance", arn)
	if err != nil {
		return nil, err
	}

	if req.ReplicationInstanceIdentifier != nil {
		id, err := normalizeIdentifier("ReplicationInstanceIdentifier", req.ReplicationInstanceIdentifier, 63)
		if err != nil {
			return nil, err
		}
		if id != ptr.ToString(ri.ReplicationInstanceIdentifier) {
			exists, err := s.findInstanceByIdentifier(ctx, id)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, alreadyExists("replication instance %s already exists", id)
			}
			ri.SetReplicationInstanceIdentifier(id)
		}
	}
	if req.ReplicationInstanceClass != nil {
		if err := checkInstanceClass(*req.ReplicationInstanceClass); err != nil {
			return nil, err
		}
	}
	if req.AllocatedStorage != nil {
		if err := checkInstanceStorage(*req.AllocatedStorage); err != nil {
			return nil, err
		}
		if err := s.checkStorageQuota(ctx, arn, *req.AllocatedStorage); err != nil {
			return nil, err
		}
	}

	if req.AutoMinorVersionUpgrade != nil {
		ri.SetAutoMinorVersionUpgrade(*req.AutoMinorVersionUpgrade)
	}
	if req.PreferredMaintenanceWindow != nil {
		ri.SetPreferredMaintenanceWindow(*req.PreferredMaintenanceWindow)
	}
	if req.VpcSecurityGroupIds != nil {
		ri.SetVpcSecurityGroups(securityGroups(req.VpcSecurityGroupIds))
	}

	pending := &api.ReplicationPendingModifiedValues{}
	if ri.PendingModifiedValues != nil {
		*pending = *ri.PendingModifiedValues
	}
	if req.ReplicationInstanceClass != nil {
		pending.SetReplicationInstanceClass(*req.ReplicationInstanceClass)
	}
	if req.AllocatedStorage != nil {
		pending.SetAllocatedStorage(*req.AllocatedStorage)
	}
	if req.EngineVersion != nil {
		pending.SetEngineVersion(*req.EngineVersion)
	}
	if req.MultiAZ != nil {
		pending.SetMultiAZ(*req.MultiAZ)
	}

	if ptr.ToBool(req.ApplyImmediately) {
		s.applyPending(&ri, pending)
	} else if !shape.Equal(pending, &api.ReplicationPendingModifiedValues{}) {
		ri.SetPendingModifiedValues(pending)
	}

	if err := s.instances.Update(ctx, arn, ri); err != nil {
		return nil, err
	}
	s.recordEvent(sourceReplicationInstance, ptr.ToString(ri.ReplicationInstanceIdentifier),
		"Replication instance modified", categoryConfigurationChange)

	return (&api.ModifyReplicationInstanceResponse{}).SetReplicationInstance(&ri), nil
}

func (s *Service) applyPending(ri *api.ReplicationInstance, pending *api.ReplicationPendingModifiedValues) {
	if pending == nil {
		return
	}
	if pending.ReplicationInstanceClass != nil {
		ri.SetReplicationInstanceClass(*pending.ReplicationInstanceClass)
	}
	if pending.AllocatedStorage != nil {
		ri.SetAllocatedStorage(*pending.AllocatedStorage)
	}
	if pending.EngineVersion != nil {
		ri.SetEngineVersion(*pending.EngineVersion)
	}
	if pending.MultiAZ != nil {
		ri.SetMultiAZ(*pending.MultiAZ)
		if *pending.MultiAZ {
			ri.SetSecondaryAvailabilityZone(s.region + "b")
		} else {
			ri.SecondaryAvailabilityZone = nil
		}
	}
	ri.PendingModifiedValues = nil
}

// RebootReplicationInstance reboots an instance and applies pending changes
func (s *Service) RebootReplicationInstance(ctx context.Context, req *api.RebootReplicationInstanceRequest) (*api.RebootReplicationInstanceResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	arn := ptr.ToString(req.ReplicationInstanceArn)
	ri, err := lookup(ctx, s.instances, "replication instance", arn)
	if err != nil {
		return nil, err
	}
	if ptr.ToString(ri.ReplicationInstanceStatus) != statusAvailable {
		return nil, invalidState("replication instance %s is not available", arn)
	}
	if ptr.ToBool(req.ForceFailover) && !ptr.ToBool(ri.MultiAZ) {
		return nil, invalidParameter("ForceFailover requires a Multi-AZ replication instance")
	}

	s.applyPending(&ri, ri.PendingModifiedValues)
	if ptr.ToBool(req.ForceFailover) {
		primary, secondary := ri.AvailabilityZone, ri.SecondaryAvailabilityZone
		ri.AvailabilityZone, ri.SecondaryAvailabilityZone = secondary, primary
	}
	if err := s.instances.Update(ctx, arn, ri); err != nil {
		return nil, err
	}

	id := ptr.ToString(ri.ReplicationInstanceIdentifier)
	s.recordEvent(sourceReplicationInstance, id, "Replication instance rebooted", categoryMaintenance)
	if ptr.ToBool(req.ForceFailover) {
		s.recordEvent(sourceReplicationInstance, id, "Replication instance failed over", categoryFailover)
	}

	return (&api.RebootReplicationInstanceResponse{}).SetReplicationInstance(&ri), nil
}

// DeleteReplicationInstance deletes an instance that no task uses
func (s *Service) DeleteReplicationInstance(ctx context.Context, req *api.DeleteReplicationInstanceRequest) (*api.DeleteReplicationInstanceResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	arn := ptr.ToString(req.ReplicationInstanceArn)
	if _, err := lookup(ctx, s.instances, "replication instance", arn); err != nil {
		return nil, err
	}
	inUse, err := s.instanceInUse(ctx, arn)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, invalidState("replication instance %s is used by a replication task", arn)
	}

	ri, err := s.instances.Delete(ctx, arn)
	if err != nil {
		return nil, err
	}
	if err := s.dropConnections(ctx, func(c api.Connection) bool {
		return ptr.ToString(c.ReplicationInstanceArn) == arn
	}); err != nil {
		return nil, err
	}
	_, _ = s.tags.Delete(ctx, arn)
	s.recordEvent(sourceReplicationInstance, ptr.ToString(ri.ReplicationInstanceIdentifier),
		"Replication instance deleted", categoryDeletion)

	ri.SetReplicationInstanceStatus(statusDeleting)
	return (&api.DeleteReplicationInstanceResponse{}).SetReplicationInstance(&ri), nil
}

// DescribeOrderableReplicationInstances lists the instance classes that can
// be created
func (s *Service) DescribeOrderableReplicationInstances(ctx context.Context, req *api.DescribeOrderableReplicationInstancesRequest) (*api.DescribeOrderableReplicationInstancesResponse, error) {
	var orderable []api.OrderableReplicationInstance
	for _, class := range replicationInstanceClasses {
		orderable = append(orderable, *(&api.OrderableReplicationInstance{}).
			SetReplicationInstanceClass(class).
			SetEngineVersion(defaultEngineVersion).
			SetStorageType("gp2").
			SetMinAllocatedStorage(minAllocatedStorage).
			SetMaxAllocatedStorage(maxInstanceStorage).
			SetDefaultAllocatedStorage(defaultAllocatedStorage).
			SetIncludedAllocatedStorage(defaultAllocatedStorage))
	}

	page, next, err := paginate(orderable, req.Marker, req.MaxRecords)
	if err != nil {
		return nil, err
	}
	return &api.DescribeOrderableReplicationInstancesResponse{OrderableReplicationInstances: page, Marker: next}, nil
}

// Replication subnet groups

func (s *Service) subnetGroupARN(id string) string {
	return fmt.Sprintf("arn:aws:dms:%s:%s:subgrp:%s", s.region, s.accountID, id)
}

// buildSubnets spreads the subnets over two availability zones. DMS needs
// a group to cover at least two.
func (s *Service) buildSubnets(ids []string) ([]api.Subnet, error) {
	ids = slices.Compact(slices.Sorted(slices.Values(ids)))
	if len(ids) < 2 {
		return nil, &api.ReplicationSubnetGroupDoesNotCoverEnoughAZs{Message: ptr.String(
			"the replication subnet group must cover at least two availability zones")}
	}

	subnets := make([]api.Subnet, 0, len(ids))
	for i, id := range ids {
		if id == "" {
			return nil, &api.InvalidSubnet{Message: ptr.String("subnet identifier must not be empty")}
		}
		az := s.region + string(rune('a'+i%2))
		subnets = append(subnets, *(&api.Subnet{}).
			SetSubnetIdentifier(id).
			SetSubnetStatus("Active").
			SetSubnetAvailabilityZone((&api.AvailabilityZone{}).SetName(az)))
	}
	return subnets, nil
}

// CreateReplicationSubnetGroup creates a subnet group
func (s *Service) CreateReplicationSubnetGroup(ctx context.Context, req *api.CreateReplicationSubnetGroupRequest) (*api.CreateReplicationSubnetGroupResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := normalizeIdentifier("ReplicationSubnetGroupIdentifier", req.ReplicationSubnetGroupIdentifier, 255)
	if err != nil {
		return nil, err
	}
	if id == defaultSubnetGroupID {
		return nil, invalidParameter("the replication subnet group identifier %s is reserved", id)
	}
	if _, err := s.subnetGroups.Get(ctx, id); err == nil {
		return nil, alreadyExists("replication subnet group %s already exists", id)
	}
	if s.subnetGroups.Len() >= maxSubnetGroups {
		return nil, &api.ResourceQuotaExceededFault{Message: ptr.String(
			fmt.Sprintf("replication subnet group quota of %d exceeded", maxSubnetGroups))}
	}

	subnets, err := s.buildSubnets(req.SubnetIds)
	if err != nil {
		return nil, err
	}

	group := (&api.ReplicationSubnetGroup{}).
		SetReplicationSubnetGroupIdentifier(id).
		SetReplicationSubnetGroupDescription(ptr.ToString(req.ReplicationSubnetGroupDescription)).
		SetSubnetGroupStatus("Complete").
		SetVpcId("vpc-" + uuid.NewString()[:8]).
		SetSubnets(subnets)

	if err := s.subnetGroups.Create(ctx, id, *group); err != nil {
		return nil, err
	}
	if err := s.registerTags(ctx, s.subnetGroupARN(id), req.Tags); err != nil {
		return nil, err
	}

	return (&api.CreateReplicationSubnetGroupResponse{}).SetReplicationSubnetGroup(group), nil
}

// DescribeReplicationSubnetGroups lists subnet groups
func (s *Service) DescribeReplicationSubnetGroups(ctx context.Context, req *api.DescribeReplicationSubnetGroupsRequest) (*api.DescribeReplicationSubnetGroupsResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	groups, err := s.subnetGroups.List(ctx)
	if err != nil {
		return nil, err
	}
	groups, err = applyFilters(groups, req.Filters, subnetGroupFilters)
	if err != nil {
		return nil, err
	}
	page, next, err := paginate(groups, req.Marker, req.MaxRecords)
	if err != nil {
		return nil, err
	}
	return &api.DescribeReplicationSubnetGroupsResponse{ReplicationSubnetGroups: page, Marker: next}, nil
}

// ModifyReplicationSubnetGroup replaces the description and subnets
func (s *Service) ModifyReplicationSubnetGroup(ctx context.Context, req *api.ModifyReplicationSubnetGroupRequest) (*api.ModifyReplicationSubnetGroupResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := ptr.ToString(req.ReplicationSubnetGroupIdentifier)
	group, err := lookup(ctx, s.subnetGroups, "replication subnet group", id)
	if err != nil {
		return nil, err
	}

	subnets, err := s.buildSubnets(req.SubnetIds)
	if err != nil {
		return nil, err
	}
	group.SetSubnets(subnets)
	if req.ReplicationSubnetGroupDescription != nil {
		group.SetReplicationSubnetGroupDescription(*req.ReplicationSubnetGroupDescription)
	}

	if err := s.subnetGroups.Update(ctx, id, group); err != nil {
		return nil, err
	}
	return (&api.ModifyReplicationSubnetGroupResponse{}).SetReplicationSubnetGroup(&group), nil
}

// DeleteReplicationSubnetGroup deletes a subnet group no instance uses
func (s *Service) DeleteReplicationSubnetGroup(ctx context.Context, req *api.DeleteReplicationSubnetGroupRequest) (*api.DeleteReplicationSubnetGroupResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := ptr.ToString(req.ReplicationSubnetGroupIdentifier)
	if _, err := lookup(ctx, s.subnetGroups, "replication subnet group", id); err != nil {
		return nil, err
	}

	instances, err := s.instances.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, ri := range instances {
		if ri.ReplicationSubnetGroup != nil && ptr.ToString(ri.ReplicationSubnetGroup.ReplicationSubnetGroupIdentifier) == id {
			return nil, invalidState("replication subnet group %s is used by replication instance %s",
				id, ptr.ToString(ri.ReplicationInstanceIdentifier))
		}
	}

	if _, err := s.subnetGroups.Delete(ctx, id); err != nil {
		return nil, err
	}
	_, _ = s.tags.Delete(ctx, s.subnetGroupARN(id))
	return &api.DeleteReplicationSubnetGroupResponse{}, nil
}
