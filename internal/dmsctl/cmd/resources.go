package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/nandemo-ya/dms-go/internal/api"
	"github.com/nandemo-ya/dms-go/internal/awsclient/services/dms"
)

// parseFilters turns "name=value1,value2" arguments into DMS filters
func parseFilters(args []string) ([]api.Filter, error) {
	var filters []api.Filter
	for _, arg := range args {
		name, values, ok := strings.Cut(arg, "=")
		if !ok || name == "" || values == "" {
			return nil, fmt.Errorf("invalid filter %q, expected name=value[,value...]", arg)
		}
		filters = append(filters, *(&api.Filter{}).SetName(name).SetValues(strings.Split(values, ",")))
	}
	return filters, nil
}

// parseTags turns "key=value" arguments into tags
func parseTags(args []string) ([]api.Tag, error) {
	var tags []api.Tag
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid tag %q, expected key=value", arg)
		}
		tags = append(tags, *(&api.Tag{}).SetKey(key).SetValue(value))
	}
	return tags, nil
}

// collect reads every page of a paginator
func collect[Req, Resp, T any](ctx context.Context, p *dms.Paginator[Req, Resp], items func(*Resp) []T) ([]T, error) {
	all := make([]T, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		all = append(all, items(page)...)
	}
	return all, nil
}

// resolveARN returns ref when it is an ARN, or else looks it up as an
// identifier with find.
func resolveARN(ctx context.Context, kind, ref string, find func(context.Context, string) (*string, error)) (string, error) {
	if strings.HasPrefix(ref, "arn:") {
		return ref, nil
	}
	arn, err := find(ctx, strings.ToLower(ref))
	if err != nil {
		return "", err
	}
	if arn == nil {
		return "", fmt.Errorf("%s %q not found", kind, ref)
	}
	return *arn, nil
}

func idFilter(name, id string) api.Filter {
	return *(&api.Filter{}).SetName(name).AddValues(id)
}
