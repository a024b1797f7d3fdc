// Package mockserver is an in-memory DMS fake served over the AWS JSON 1.1
// protocol. It is meant for local development and integration tests.
package mockserver

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nandemo-ya/dms-go/internal/api"
	"github.com/nandemo-ya/dms-go/internal/api/ptr"
	"github.com/nandemo-ya/dms-go/internal/shape"
	"github.com/nandemo-ya/dms-go/internal/storage"
	"github.com/nandemo-ya/dms-go/internal/storage/memory"
)

const (
	// DefaultAccountID is the account that owns every resource
	DefaultAccountID = "123456789012"

	// DefaultRegion is used in ARNs when no region is configured
	DefaultRegion = "us-east-1"

	// DefaultReplicationInstanceQuota is the number of replication
	// instances an account may own
	DefaultReplicationInstanceQuota = 20

	maxAllocatedStorageGB = 10000
	maxEndpoints          = 100
	maxReplicationTasks   = 200
	maxSubnetGroups       = 20

	defaultMaxRecords = 100
	minMaxRecords     = 20
	maxMaxRecords     = 100

	defaultEventDuration = 60 * time.Minute
)

var identifierPattern = regexp.MustCompile(`^[a-zA-Z](?:-?[a-zA-Z0-9])*$`)

// Service implements api.DMSAPI in memory. Operations without a local
// implementation return the NotImplemented error of the embedded
// api.UnimplementedDMSAPI.
type Service struct {
	api.UnimplementedDMSAPI

	region        string
	accountID     string
	now           func() time.Time
	instanceQuota int

	// mu serializes checks that span more than one table
	mu           sync.RWMutex
	instances    storage.Table[api.ReplicationInstance]
	subnetGroups storage.Table[api.ReplicationSubnetGroup]
	endpoints    storage.Table[api.Endpoint]
	certificates storage.Table[api.Certificate]
	tasks        storage.Table[api.ReplicationTask]
	connections  storage.Table[api.Connection]
	tags         storage.Table[[]api.Tag]
	events       []api.Event
	ipSeq        int
}

var _ api.DMSAPI = (*Service)(nil)

// Option configures a Service
type Option func(*Service)

// WithRegion sets the region used in ARNs and availability zones
func WithRegion(region string) Option {
	return func(s *Service) {
		if region != "" {
			s.region = region
		}
	}
}

// WithAccountID sets the account used in ARNs
func WithAccountID(accountID string) Option {
	return func(s *Service) {
		if accountID != "" {
			s.accountID = accountID
		}
	}
}

// WithClock replaces the time source
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithReplicationInstanceQuota overrides the replication instance quota
func WithReplicationInstanceQuota(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.instanceQuota = n
		}
	}
}

// newTable returns a table that deep copies records, so shapes handed to
// callers never alias stored state.
func newTable[T any]() storage.Table[T] {
	return memory.NewTable[T](memory.WithCopy(shape.Clone[T]))
}

// NewService creates an empty Service
func NewService(opts ...Option) *Service {
	s := &Service{
		region:        DefaultRegion,
		accountID:     DefaultAccountID,
		now:           time.Now,
		instanceQuota: DefaultReplicationInstanceQuota,
		instances:     newTable[api.ReplicationInstance](),
		subnetGroups:  newTable[api.ReplicationSubnetGroup](),
		endpoints:     newTable[api.Endpoint](),
		certificates:  newTable[api.Certificate](),
		tasks:         newTable[api.ReplicationTask](),
		connections:   newTable[api.Connection](),
		tags:          newTable[[]api.Tag](),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Region returns the region of the service
func (s *Service) Region() string {
	return s.region
}

func (s *Service) arn(kind string) string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:26]
	return fmt.Sprintf("arn:aws:dms:%s:%s:%s:%s", s.region, s.accountID, kind, id)
}

func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

// Errors

func invalidParameter(format string, args ...any) error {
	return &api.InvalidParameterValueException{Message: ptr.String(fmt.Sprintf(format, args...))}
}

func notFound(format string, args ...any) error {
	return &api.ResourceNotFoundFault{Message: ptr.String(fmt.Sprintf(format, args...))}
}

func alreadyExists(format string, args ...any) error {
	return &api.ResourceAlreadyExistsFault{Message: ptr.String(fmt.Sprintf(format, args...))}
}

func invalidState(format string, args ...any) error {
	return &api.InvalidResourceStateFault{Message: ptr.String(fmt.Sprintf(format, args...))}
}

// lookup maps storage.ErrNotFound to a ResourceNotFoundFault.
func lookup[T any](ctx context.Context, table storage.Table[T], kind, key string) (T, error) {
	v, err := table.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return v, notFound("%s %s not found", kind, key)
	}
	return v, err
}

// normalizeIdentifier checks a user supplied identifier and lower-cases it.
func normalizeIdentifier(member string, id *string, maxLen int) (string, error) {
	value := ptr.ToString(id)
	if value == "" {
		return "", invalidParameter("%s must not be empty", member)
	}
	if len(value) > maxLen {
		return "", invalidParameter("%s must not be longer than %d characters", member, maxLen)
	}
	if !identifierPattern.MatchString(value) {
		return "", invalidParameter("%s must begin with a letter and contain only ASCII letters, digits, and hyphens. It cannot end with a hyphen or contain two consecutive hyphens", member)
	}
	return strings.ToLower(value), nil
}

// Filters

// filterFields maps a DMS filter name to the values a record exposes for it.
type filterFields[T any] map[string]func(*T) []string

func applyFilters[T any](records []T, filters []api.Filter, fields filterFields[T]) ([]T, error) {
	for _, f := range filters {
		if _, ok := fields[ptr.ToString(f.Name)]; !ok {
			return nil, invalidParameter("unsupported filter name %q", ptr.ToString(f.Name))
		}
	}

	result := make([]T, 0, len(records))
	for i := range records {
		if matchesFilters(&records[i], filters, fields) {
			result = append(result, records[i])
		}
	}
	return result, nil
}

func matchesFilters[T any](record *T, filters []api.Filter, fields filterFields[T]) bool {
	for _, f := range filters {
		got := fields[ptr.ToString(f.Name)](record)
		matched := false
		for _, v := range got {
			if slices.Contains(f.Values, v) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

func values(p ...*string) []string {
	out := make([]string, 0, len(p))
	for _, v := range p {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// Pagination

func encodeMarker(offset int) string {
	return base64.RawURLEncoding.EncodeToString([]byte("offset:" + strconv.Itoa(offset)))
}

func decodeMarker(marker string) (int, error) {
	data, err := base64.RawURLEncoding.DecodeString(marker)
	if err != nil {
		return 0, invalidParameter("invalid marker")
	}
	n, ok := strings.CutPrefix(string(data), "offset:")
	if !ok {
		return 0, invalidParameter("invalid marker")
	}
	offset, err := strconv.Atoi(n)
	if err != nil || offset < 0 {
		return 0, invalidParameter("invalid marker")
	}
	return offset, nil
}

// paginate returns one page of records and the marker of the next page.
// MaxRecords defaults to 100 and is clamped to 20..100.
func paginate[T any](records []T, marker *string, maxRecords *int32) ([]T, *string, error) {
	limit := defaultMaxRecords
	if maxRecords != nil {
		limit = min(max(int(*maxRecords), minMaxRecords), maxMaxRecords)
	}

	offset := 0
	if m := ptr.ToString(marker); m != "" {
		var err error
		if offset, err = decodeMarker(m); err != nil {
			return nil, nil, err
		}
	}
	offset = min(offset, len(records))

	end := min(offset+limit, len(records))
	var next *string
	if end < len(records) {
		next = ptr.String(encodeMarker(end))
	}
	return records[offset:end], next, nil
}

// Tags

func (s *Service) registerTags(ctx context.Context, arn string, tags []api.Tag) error {
	return s.tags.Create(ctx, arn, mergeTags(nil, tags))
}

func mergeTags(existing, tags []api.Tag) []api.Tag {
	merged := slices.Clone(existing)
	for _, t := range tags {
		i := slices.IndexFunc(merged, func(e api.Tag) bool { return ptr.ToString(e.Key) == ptr.ToString(t.Key) })
		if i >= 0 {
			merged[i] = t
			continue
		}
		merged = append(merged, t)
	}
	return merged
}

// AddTagsToResource adds or replaces tags on a resource
func (s *Service) AddTagsToResource(ctx context.Context, req *api.AddTagsToResourceRequest) (*api.AddTagsToResourceResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	arn := ptr.ToString(req.ResourceArn)
	existing, err := lookup(ctx, s.tags, "resource", arn)
	if err != nil {
		return nil, err
	}
	for _, t := range req.Tags {
		if ptr.ToString(t.Key) == "" {
			return nil, invalidParameter("tag key must not be empty")
		}
	}
	if err := s.tags.Update(ctx, arn, mergeTags(existing, req.Tags)); err != nil {
		return nil, err
	}
	return &api.AddTagsToResourceResponse{}, nil
}

// RemoveTagsFromResource removes tags by key
func (s *Service) RemoveTagsFromResource(ctx context.Context, req *api.RemoveTagsFromResourceRequest) (*api.RemoveTagsFromResourceResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	arn := ptr.ToString(req.ResourceArn)
	existing, err := lookup(ctx, s.tags, "resource", arn)
	if err != nil {
		return nil, err
	}
	kept := slices.DeleteFunc(slices.Clone(existing), func(t api.Tag) bool {
		return slices.Contains(req.TagKeys, ptr.ToString(t.Key))
	})
	if err := s.tags.Update(ctx, arn, kept); err != nil {
		return nil, err
	}
	return &api.RemoveTagsFromResourceResponse{}, nil
}

// ListTagsForResource lists the tags of a resource
func (s *Service) ListTagsForResource(ctx context.Context, req *api.ListTagsForResourceRequest) (*api.ListTagsForResourceResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tags, err := lookup(ctx, s.tags, "resource", ptr.ToString(req.ResourceArn))
	if err != nil {
		return nil, err
	}
	return (&api.ListTagsForResourceResponse{}).SetTagList(tags), nil
}

// DescribeAccountAttributes reports the resource quotas and their usage
func (s *Service) DescribeAccountAttributes(ctx context.Context, req *api.DescribeAccountAttributesRequest) (*api.DescribeAccountAttributesResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	storageUsed, err := s.allocatedStorage(ctx, "")
	if err != nil {
		return nil, err
	}

	quota := func(name string, used, limit int) api.AccountQuota {
		return *(&api.AccountQuota{}).SetAccountQuotaName(name).SetUsed(int64(used)).SetMax(int64(limit))
	}
	return (&api.DescribeAccountAttributesResponse{}).AddAccountQuotas(
		quota("ReplicationInstances", s.instances.Len(), s.instanceQuota),
		quota("AllocatedStorage", storageUsed, maxAllocatedStorageGB),
		quota("Endpoints", s.endpoints.Len(), maxEndpoints),
		quota("ReplicationTasks", s.tasks.Len(), maxReplicationTasks),
		quota("ReplicationSubnetGroups", s.subnetGroups.Len(), maxSubnetGroups),
	), nil
}
