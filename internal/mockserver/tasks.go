package mockserver

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/nandemo-ya/dms-go/internal/api"
	"github.com/nandemo-ya/dms-go/internal/api/ptr"
)

const (
	taskStatusReady   = "ready"
	taskStatusRunning = "running"
	taskStatusStopped = "stopped"

	stopReasonUser = "Stop Reason USER_REQUEST"
)

var taskFilters = filterFields[api.ReplicationTask]{
	"replication-task-arn":     func(t *api.ReplicationTask) []string { return values(t.ReplicationTaskArn) },
	"replication-task-id":      func(t *api.ReplicationTask) []string { return values(t.ReplicationTaskIdentifier) },
	"migration-type":           func(t *api.ReplicationTask) []string { return values(t.MigrationType) },
	"endpoint-arn":             func(t *api.ReplicationTask) []string { return values(t.SourceEndpointArn, t.TargetEndpointArn) },
	"replication-instance-arn": func(t *api.ReplicationTask) []string { return values(t.ReplicationInstanceArn) },
}

func checkMigrationType(v string) error {
	if !slices.Contains(api.MigrationTypeValue("").Values(), api.MigrationTypeValue(v)) {
		return invalidParameter("migration type %s is not one of full-load, cdc, full-load-and-cdc", v)
	}
	return nil
}

func checkJSONDocument(member string, v *string) error {
	if v != nil && !json.Valid([]byte(*v)) {
		return invalidParameter("%s is not a valid JSON document", member)
	}
	return nil
}

func (s *Service) checkTaskEndpoint(ctx context.Context, arn, endpointType string) error {
	e, err := lookup(ctx, s.endpoints, "endpoint", arn)
	if err != nil {
		return err
	}
	if ptr.ToString(e.EndpointType) != endpointType {
		return invalidParameter("endpoint %s is not a %s endpoint", arn, endpointType)
	}
	return nil
}

func (s *Service) findTaskByIdentifier(ctx context.Context, id string) (bool, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return false, err
	}
	return slices.ContainsFunc(tasks, func(t api.ReplicationTask) bool {
		return ptr.ToString(t.ReplicationTaskIdentifier) == id
	}), nil
}

// CreateReplicationTask creates a task in the ready state
func (s *Service) CreateReplicationTask(ctx context.Context, req *api.CreateReplicationTaskRequest) (*api.CreateReplicationTaskResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := normalizeIdentifier("ReplicationTaskIdentifier", req.ReplicationTaskIdentifier, 255)
	if err != nil {
		return nil, err
	}
	if err := checkMigrationType(ptr.ToString(req.MigrationType)); err != nil {
		return nil, err
	}
	if err := checkJSONDocument("TableMappings", req.TableMappings); err != nil {
		return nil, err
	}
	if err := checkJSONDocument("ReplicationTaskSettings", req.ReplicationTaskSettings); err != nil {
		return nil, err
	}

	exists, err := s.findTaskByIdentifier(ctx, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, alreadyExists("replication task %s already exists", id)
	}
	if s.tasks.Len() >= maxReplicationTasks {
		return nil, &api.ResourceQuotaExceededFault{Message: ptr.String(
			fmt.Sprintf("replication task quota of %d exceeded", maxReplicationTasks))}
	}

	if _, err := lookup(ctx, s.instances, "replication instance", ptr.ToString(req.ReplicationInstanceArn)); err != nil {
		return nil, err
	}
	source, target := ptr.ToString(req.SourceEndpointArn), ptr.ToString(req.TargetEndpointArn)
	if source == target {
		return nil, invalidParameter("the source and target endpoints must differ")
	}
	if err := s.checkTaskEndpoint(ctx, source, "source"); err != nil {
		return nil, err
	}
	if err := s.checkTaskEndpoint(ctx, target, "target"); err != nil {
		return nil, err
	}

	arn := s.arn("task")
	task := &api.ReplicationTask{
		ReplicationTaskArn:        ptr.String(arn),
		ReplicationTaskIdentifier: ptr.String(id),
		ReplicationInstanceArn:    req.ReplicationInstanceArn,
		SourceEndpointArn:         req.SourceEndpointArn,
		TargetEndpointArn:         req.TargetEndpointArn,
		MigrationType:             req.MigrationType,
		TableMappings:             req.TableMappings,
		ReplicationTaskSettings:   req.ReplicationTaskSettings,
		CdcStartPosition:          req.CdcStartPosition,
		CdcStopPosition:           req.CdcStopPosition,
		Status:                    ptr.String(taskStatusReady),
	}
	task.SetReplicationTaskCreationDate(s.timestamp())

	if err := s.tasks.Create(ctx, arn, *task); err != nil {
		return nil, err
	}
	if err := s.registerTags(ctx, arn, req.Tags); err != nil {
		return nil, err
	}
	s.recordEvent(sourceReplicationTask, id, "Replication task created", categoryCreation)

	return (&api.CreateReplicationTaskResponse{}).SetReplicationTask(task), nil
}

// DescribeReplicationTasks lists tasks
func (s *Service) DescribeReplicationTasks(ctx context.Context, req *api.DescribeReplicationTasksRequest) (*api.DescribeReplicationTasksResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err = applyFilters(tasks, req.Filters, taskFilters)
	if err != nil {
		return nil, err
	}
	page, next, err := paginate(tasks, req.Marker, req.MaxRecords)
	if err != nil {
		return nil, err
	}
	return &api.DescribeReplicationTasksResponse{ReplicationTasks: page, Marker: next}, nil
}

// ModifyReplicationTask changes a task that is not running
func (s *Service) ModifyReplicationTask(ctx context.Context, req *api.ModifyReplicationTaskRequest) (*api.ModifyReplicationTaskResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	arn := ptr.ToString(req.ReplicationTaskArn)
	task, err := lookup(ctx, s.tasks, "replication task", arn)
	if err != nil {
		return nil, err
	}
	if ptr.ToString(task.Status) == taskStatusRunning {
		return nil, invalidState("replication task %s must be stopped before it can be modified", arn)
	}

	if req.ReplicationTaskIdentifier != nil {
		id, err := normalizeIdentifier("ReplicationTaskIdentifier", req.ReplicationTaskIdentifier, 255)
		if err != nil {
			return nil, err
		}
		if id != ptr.ToString(task.ReplicationTaskIdentifier) {
			exists, err := s.findTaskByIdentifier(ctx, id)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, alreadyExists("replication task %s already exists", id)
			}
			task.SetReplicationTaskIdentifier(id)
		}
	}
	if req.MigrationType != nil {
		if err := checkMigrationType(*req.MigrationType); err != nil {
			return nil, err
		}
		task.SetMigrationType(*req.MigrationType)
	}
	if req.TableMappings != nil {
		if err := checkJSONDocument("TableMappings", req.TableMappings); err != nil {
			return nil, err
		}
		task.SetTableMappings(*req.TableMappings)
	}
	if req.ReplicationTaskSettings != nil {
		if err := checkJSONDocument("ReplicationTaskSettings", req.ReplicationTaskSettings); err != nil {
			return nil, err
		}
		task.SetReplicationTaskSettings(*req.ReplicationTaskSettings)
	}
	if req.CdcStartPosition != nil {
		task.SetCdcStartPosition(*req.CdcStartPosition)
	}
	if req.CdcStopPosition != nil {
		task.SetCdcStopPosition(*req.CdcStopPosition)
	}

	if err := s.tasks.Update(ctx, arn, task); err != nil {
		return nil, err
	}
	return (&api.ModifyReplicationTaskResponse{}).SetReplicationTask(&task), nil
}

// StartReplicationTask moves a task that is not running to running
func (s *Service) StartReplicationTask(ctx context.Context, req *api.StartReplicationTaskRequest) (*api.StartReplicationTaskResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	startType := ptr.ToString(req.StartReplicationTaskType)
	if !slices.Contains(api.StartReplicationTaskTypeValue("").Values(), api.StartReplicationTaskTypeValue(startType)) {
		return nil, invalidParameter("start type %s is not one of start-replication, resume-processing, reload-target", startType)
	}

	arn := ptr.ToString(req.ReplicationTaskArn)
	task, err := lookup(ctx, s.tasks, "replication task", arn)
	if err != nil {
		return nil, err
	}
	if ptr.ToString(task.Status) == taskStatusRunning {
		return nil, invalidState("replication task %s is already running", arn)
	}
	if startType == string(api.StartReplicationTaskTypeValueResumeProcessing) && task.ReplicationTaskStartDate == nil {
		return nil, invalidState("replication task %s has never been started", arn)
	}

	if req.CdcStartPosition != nil {
		task.SetCdcStartPosition(*req.CdcStartPosition)
	}
	if req.CdcStopPosition != nil {
		task.SetCdcStopPosition(*req.CdcStopPosition)
	}
	task.StopReason = nil
	task.SetStatus(taskStatusRunning).
		SetReplicationTaskStartDate(s.timestamp()).
		SetReplicationTaskStats((&api.ReplicationTaskStats{}).
			SetFullLoadProgressPercent(0).
			SetElapsedTimeMillis(0).
			SetTablesLoaded(0).
			SetTablesLoading(0).
			SetTablesQueued(0).
			SetTablesErrored(0))

	if err := s.tasks.Update(ctx, arn, task); err != nil {
		return nil, err
	}
	s.recordEvent(sourceReplicationTask, ptr.ToString(task.ReplicationTaskIdentifier),
		"Replication task started", categoryStateChange)

	return (&api.StartReplicationTaskResponse{}).SetReplicationTask(&task), nil
}

// StopReplicationTask stops a running task
func (s *Service) StopReplicationTask(ctx context.Context, req *api.StopReplicationTaskRequest) (*api.StopReplicationTaskResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	arn := ptr.ToString(req.ReplicationTaskArn)
	task, err := lookup(ctx, s.tasks, "replication task", arn)
	if err != nil {
		return nil, err
	}
	if ptr.ToString(task.Status) != taskStatusRunning {
		return nil, invalidState("replication task %s is not running", arn)
	}

	task.SetStatus(taskStatusStopped).SetStopReason(stopReasonUser)
	if err := s.tasks.Update(ctx, arn, task); err != nil {
		return nil, err
	}
	s.recordEvent(sourceReplicationTask, ptr.ToString(task.ReplicationTaskIdentifier),
		"Replication task stopped", categoryStateChange)

	return (&api.StopReplicationTaskResponse{}).SetReplicationTask(&task), nil
}

// DeleteReplicationTask deletes a task that is not running
func (s *Service) DeleteReplicationTask(ctx context.Context, req *api.DeleteReplicationTaskRequest) (*api.DeleteReplicationTaskResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	arn := ptr.ToString(req.ReplicationTaskArn)
	task, err := lookup(ctx, s.tasks, "replication task", arn)
	if err != nil {
		return nil, err
	}
	if ptr.ToString(task.Status) == taskStatusRunning {
		return nil, invalidState("replication task %s is running", arn)
	}

	if _, err := s.tasks.Delete(ctx, arn); err != nil {
		return nil, err
	}
	_, _ = s.tags.Delete(ctx, arn)
	s.recordEvent(sourceReplicationTask, ptr.ToString(task.ReplicationTaskIdentifier),
		"Replication task deleted", categoryDeletion)

	task.SetStatus(statusDeleting)
	return (&api.DeleteReplicationTaskResponse{}).SetReplicationTask(&task), nil
}
