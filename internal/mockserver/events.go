package mockserver

import (
	"context"
	"maps"
	"slices"
	"time"

	"github.com/nandemo-ya/dms-go/internal/api"
	"github.com/nandemo-ya/dms-go/internal/api/ptr"
	"github.com/nandemo-ya/dms-go/internal/shape"
)

const (
	sourceReplicationInstance = string(api.SourceTypeReplicationInstance)
	sourceReplicationTask     = "replication-task"

	categoryConfigurationChange = "configuration change"
	categoryCreation            = "creation"
	categoryDeletion            = "deletion"
	categoryFailover            = "failover"
	categoryMaintenance         = "maintenance"
	categoryStateChange         = "state change"
)

var eventCategories = map[string][]string{
	sourceReplicationInstance: {
		categoryConfigurationChange, categoryCreation, categoryDeletion,
		categoryFailover, categoryMaintenance,
	},
	sourceReplicationTask: {
		categoryCreation, categoryDeletion, categoryStateChange,
	},
}

// recordEvent appends an event. Callers hold s.mu.
func (s *Service) recordEvent(sourceType, sourceID, message string, categories ...string) {
	s.events = append(s.events, *(&api.Event{}).
		SetSourceType(sourceType).
		SetSourceIdentifier(sourceID).
		SetMessage(message).
		SetEventCategories(categories).
		SetDate(s.timestamp()))
}

// DescribeEvents lists events by source, category and time window. Without
// StartTime or EndTime the window is the last Duration minutes, 60 by
// default.
func (s *Service) DescribeEvents(ctx context.Context, req *api.DescribeEventsRequest) (*api.DescribeEventsResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	var start, end time.Time
	if req.StartTime != nil || req.EndTime != nil {
		start = ptr.ToTime(req.StartTime)
		end = now
		if req.EndTime != nil {
			end = req.EndTime.Time
		}
	} else {
		duration := defaultEventDuration
		if req.Duration != nil {
			if *req.Duration < 0 {
				return nil, invalidParameter("Duration must not be negative")
			}
			duration = time.Duration(*req.Duration) * time.Minute
		}
		start = now.Add(-duration)
		end = now
	}
	if end.Before(start) {
		return nil, invalidParameter("EndTime must not be before StartTime")
	}

	var matched []api.Event
	for _, e := range s.events {
		date := ptr.ToTime(e.Date)
		if date.Before(start) || date.After(end) {
			continue
		}
		if req.SourceType != nil && ptr.ToString(e.SourceType) != *req.SourceType {
			continue
		}
		if req.SourceIdentifier != nil && ptr.ToString(e.SourceIdentifier) != *req.SourceIdentifier {
			continue
		}
		if len(req.EventCategories) > 0 && !slices.ContainsFunc(e.EventCategories, func(c string) bool {
			return slices.Contains(req.EventCategories, c)
		}) {
			continue
		}
		matched = append(matched, shape.Clone(e))
	}

	page, next, err := paginate(matched, req.Marker, req.MaxRecords)
	if err != nil {
		return nil, err
	}
	return &api.DescribeEventsResponse{Events: page, Marker: next}, nil
}

// DescribeEventCategories lists the categories events are recorded with
func (s *Service) DescribeEventCategories(ctx context.Context, req *api.DescribeEventCategoriesRequest) (*api.DescribeEventCategoriesResponse, error) {
	resp := &api.DescribeEventCategoriesResponse{}
	for _, source := range slices.Sorted(maps.Keys(eventCategories)) {
		if req.SourceType != nil && *req.SourceType != source {
			continue
		}
		resp.AddEventCategoryGroupList(*(&api.EventCategoryGroup{}).
			SetSourceType(source).
			SetEventCategories(eventCategories[source]))
	}
	return resp, nil
}
