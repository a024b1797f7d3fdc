package dms_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nandemo-ya/dms-go/internal/api"
	"github.com/nandemo-ya/dms-go/internal/awsclient/services/dms"
)

// pagedEvents serves DescribeEvents from a fixed list of pages keyed by
// the request Marker.
type pagedEvents struct {
	api.UnimplementedDMSAPI

	pages   map[string]*api.DescribeEventsResponse
	markers []string
	limits  []int32
	err     error
}

func (p *pagedEvents) DescribeEvents(_ context.Context, req *api.DescribeEventsRequest) (*api.DescribeEventsResponse, error) {
	marker := ""
	if req.Marker != nil {
		marker = *req.Marker
	}
	p.markers = append(p.markers, marker)
	if req.MaxRecords != nil {
		p.limits = append(p.limits, *req.MaxRecords)
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.pages[marker], nil
}

func eventsPage(next string, ids ...string) *api.DescribeEventsResponse {
	resp := &api.DescribeEventsResponse{}
	for _, id := range ids {
		resp.AddEvents(*(&api.Event{}).SetSourceIdentifier(id))
	}
	if next != "" {
		resp.SetMarker(next)
	}
	return resp
}

func collect(p *dms.Paginator[api.DescribeEventsRequest, api.DescribeEventsResponse]) []string {
	var ids []string
	for p.HasMorePages() {
		page, err := p.NextPage(context.Background())
		Expect(err).NotTo(HaveOccurred())
		for _, e := range page.Events {
			ids = append(ids, *e.SourceIdentifier)
		}
	}
	return ids
}

var _ = Describe("Paginator", func() {
	It("follows markers until a page has none", func() {
		svc := &pagedEvents{pages: map[string]*api.DescribeEventsResponse{
			"":   eventsPage("m1", "a", "b"),
			"m1": eventsPage("m2", "c"),
			"m2": eventsPage("", "d"),
		}}

		p := dms.NewDescribeEventsPaginator(svc, nil)
		Expect(collect(p)).To(Equal([]string{"a", "b", "c", "d"}))
		Expect(svc.markers).To(Equal([]string{"", "m1", "m2"}))
		Expect(p.HasMorePages()).To(BeFalse())
	})

	It("stops when the service repeats the marker", func() {
		svc := &pagedEvents{pages: map[string]*api.DescribeEventsResponse{
			"":   eventsPage("m1", "a"),
			"m1": eventsPage("m1", "b"),
		}}

		p := dms.NewDescribeEventsPaginator(svc, &api.DescribeEventsRequest{})
		Expect(collect(p)).To(Equal([]string{"a", "b"}))
		Expect(svc.markers).To(HaveLen(2))
	})

	It("treats an empty marker as the last page", func() {
		svc := &pagedEvents{pages: map[string]*api.DescribeEventsResponse{
			"": eventsPage("", "a"),
		}}
		svc.pages[""].SetMarker("")

		p := dms.NewDescribeEventsPaginator(svc, nil)
		Expect(collect(p)).To(Equal([]string{"a"}))
	})

	It("starts from the caller's marker and sends the limit on every page", func() {
		svc := &pagedEvents{pages: map[string]*api.DescribeEventsResponse{
			"m1": eventsPage("m2", "c"),
			"m2": eventsPage("", "d"),
		}}

		params := (&api.DescribeEventsRequest{}).SetMarker("m1")
		p := dms.NewDescribeEventsPaginator(svc, params, func(o *dms.PaginatorOptions) {
			o.Limit = 20
		})
		Expect(collect(p)).To(Equal([]string{"c", "d"}))
		Expect(svc.limits).To(Equal([]int32{20, 20}))
		Expect(*params.Marker).To(Equal("m1"))
		Expect(params.MaxRecords).To(BeNil())
	})

	It("returns errors from the service and ErrNoMorePages when done", func() {
		boom := errors.New("boom")
		svc := &pagedEvents{err: boom}

		p := dms.NewDescribeEventsPaginator(svc, nil)
		_, err := p.NextPage(context.Background())
		Expect(err).To(MatchError(boom))
		Expect(p.HasMorePages()).To(BeTrue())

		svc.err = nil
		svc.pages = map[string]*api.DescribeEventsResponse{"": eventsPage("")}
		_, err = p.NextPage(context.Background())
		Expect(err).NotTo(HaveOccurred())

		_, err = p.NextPage(context.Background())
		Expect(err).To(MatchError(dms.ErrNoMorePages))
	})
})
