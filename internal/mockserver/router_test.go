package mockserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/aws/smithy-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nandemo-ya/dms-go/internal/api"
	"github.com/nandemo-ya/dms-go/internal/api/ptr"
	"github.com/nandemo-ya/dms-go/internal/awsclient"
	"github.com/nandemo-ya/dms-go/internal/awsclient/services/dms"
	"github.com/nandemo-ya/dms-go/internal/mockserver"
)

var _ = Describe("Router", func() {
	var (
		ctx    context.Context
		server *httptest.Server
		client *dms.Client
	)

	BeforeEach(func() {
		ctx = context.Background()
		server = httptest.NewServer(mockserver.NewRouter(mockserver.NewService(mockserver.WithRegion("ap-northeast-1"))))
		client = dms.NewClient(awsclient.Config{
			Endpoint:   server.URL,
			Region:     "ap-northeast-1",
			MaxRetries: -1,
			Credentials: awsclient.Credentials{
				AccessKeyID:     "test",
				SecretAccessKey: "test",
			},
		})
	})

	AfterEach(func() {
		server.Close()
	})

	post := func(target, body string) *http.Response {
		req, err := http.NewRequest(http.MethodPost, server.URL+"/", strings.NewReader(body))
		Expect(err).NotTo(HaveOccurred())
		req.Header.Set("Content-Type", "application/x-amz-json-1.1")
		if target != "" {
			req.Header.Set("X-Amz-Target", target)
		}
		resp, err := http.DefaultClient.Do(req)
		Expect(err).NotTo(HaveOccurred())
		return resp
	}

	errorBody := func(resp *http.Response) map[string]string {
		defer resp.Body.Close()
		var body map[string]string
		Expect(json.NewDecoder(resp.Body).Decode(&body)).To(Succeed())
		return body
	}

	Context("through the DMS client", func() {
		It("creates and describes a replication instance", func() {
			created, err := client.CreateReplicationInstance(ctx, (&api.CreateReplicationInstanceRequest{}).
				SetReplicationInstanceIdentifier("MyRepInstance").
				SetReplicationInstanceClass("dms.t2.medium").
				SetAllocatedStorage(100))
			Expect(err).NotTo(HaveOccurred())
			Expect(ptr.ToString(created.ReplicationInstance.ReplicationInstanceIdentifier)).To(Equal("myrepinstance"))
			Expect(created.ReplicationInstance.InstanceCreateTime).NotTo(BeNil())

			described, err := client.DescribeReplicationInstances(ctx, (&api.DescribeReplicationInstancesRequest{}).
				AddFilters(*(&api.Filter{}).SetName("replication-instance-id").AddValues("myrepinstance")))
			Expect(err).NotTo(HaveOccurred())
			Expect(described.ReplicationInstances).To(HaveLen(1))
			Expect(described.ReplicationInstances[0].Equal(created.ReplicationInstance)).To(BeTrue())
		})

		It("decodes typed faults", func() {
			_, err := client.DeleteReplicationTask(ctx, (&api.DeleteReplicationTaskRequest{}).
				SetReplicationTaskArn("arn:aws:dms:ap-northeast-1:123456789012:task:MISSING"))
			Expect(err).To(HaveOccurred())

			var notFound *api.ResourceNotFoundFault
			Expect(errors.As(err, &notFound)).To(BeTrue())

			var respErr *dms.ResponseError
			Expect(errors.As(err, &respErr)).To(BeTrue())
			Expect(respErr.StatusCode).To(Equal(http.StatusBadRequest))
			Expect(respErr.RequestID).NotTo(BeEmpty())
		})

		It("reports unsupported operations as NotImplemented", func() {
			_, err := client.DescribeSchemas(ctx, (&api.DescribeSchemasRequest{}).SetEndpointArn("arn:endpoint"))

			var apiErr smithy.APIError
			Expect(errors.As(err, &apiErr)).To(BeTrue())
			Expect(apiErr.ErrorCode()).To(Equal("NotImplemented"))

			var respErr *dms.ResponseError
			Expect(errors.As(err, &respErr)).To(BeTrue())
			Expect(respErr.StatusCode).To(Equal(http.StatusNotImplemented))
		})

		It("pages through endpoints with the paginator", func() {
			for _, id := range []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8", "a9", "b1",
				"b2", "b3", "b4", "b5", "b6", "b7", "b8", "b9", "c1", "c2", "c3", "c4", "c5"} {
				_, err := client.CreateEndpoint(ctx, (&api.CreateEndpointRequest{}).
					SetEndpointIdentifier(id).
					SetEndpointType("source").
					SetEngineName("postgres"))
				Expect(err).NotTo(HaveOccurred())
			}

			paginator := dms.NewDescribeEndpointsPaginator(client, &api.DescribeEndpointsRequest{},
				func(o *dms.PaginatorOptions) { o.Limit = 20 })

			var ids []string
			pages := 0
			for paginator.HasMorePages() {
				page, err := paginator.NextPage(ctx)
				Expect(err).NotTo(HaveOccurred())
				pages++
				for _, e := range page.Endpoints {
					ids = append(ids, ptr.ToString(e.EndpointIdentifier))
				}
			}
			Expect(pages).To(Equal(2))
			Expect(ids).To(HaveLen(23))
			Expect(ids[0]).To(Equal("a1"))
			Expect(ids[22]).To(Equal("c5"))
		})

		It("dispatches any request through Invoke", func() {
			out, err := client.Invoke(ctx, &api.DescribeAccountAttributesRequest{})
			Expect(err).NotTo(HaveOccurred())
			attrs, ok := out.(*api.DescribeAccountAttributesResponse)
			Expect(ok).To(BeTrue())
			Expect(attrs.AccountQuotas).To(HaveLen(5))
		})
	})

	Context("over raw HTTP", func() {
		It("sets a request id on every response", func() {
			resp := post("AmazonDMSv20160101.DescribeAccountAttributes", "{}")
			defer resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(resp.Header.Get("x-amzn-RequestId")).NotTo(BeEmpty())
			Expect(resp.Header.Get("Content-Type")).To(Equal("application/x-amz-json-1.1"))
		})

		It("accepts an empty body", func() {
			resp := post("AmazonDMSv20160101.DescribeReplicationTasks", "")
			defer resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
		})

		It("rejects unknown targets", func() {
			resp := post("AmazonDMSv20160101.LaunchRockets", "{}")
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			Expect(errorBody(resp)["__type"]).To(Equal("UnknownOperationException"))

			resp = post("OtherService.DescribeEvents", "{}")
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			Expect(errorBody(resp)["__type"]).To(Equal("UnknownOperationException"))

			resp = post("", "{}")
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})

		It("rejects malformed bodies", func() {
			resp := post("AmazonDMSv20160101.DescribeEvents", "{not json")
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			Expect(errorBody(resp)["__type"]).To(Equal("SerializationException"))
		})

		It("validates required members", func() {
			resp := post("AmazonDMSv20160101.CreateReplicationInstance", `{"ReplicationInstanceIdentifier":"x"}`)
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			body := errorBody(resp)
			Expect(body["__type"]).To(Equal("InvalidParameterValueException"))
			Expect(body["message"]).To(ContainSubstring("ReplicationInstanceClass"))
		})

		It("serves the health check", func() {
			resp, err := http.Get(server.URL + "/healthz")
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var health mockserver.HealthResponse
			Expect(json.NewDecoder(resp.Body).Decode(&health)).To(Succeed())
			Expect(health.Status).To(Equal("OK"))
		})

		It("rejects other methods", func() {
			resp, err := http.Get(server.URL + "/")
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusMethodNotAllowed))
			resp.Body.Close()
		})
	})
})

var _ = Describe("Server", func() {
	It("listens on a free port and shuts down", func() {
		srv := mockserver.NewServer(mockserver.Config{Port: 0, Region: "us-west-1"})
		Expect(srv.Listen()).To(Succeed())
		Expect(srv.URL()).To(HavePrefix("http://localhost:"))
		Expect(srv.Service().Region()).To(Equal("us-west-1"))

		done := make(chan error, 1)
		go func() { done <- srv.Start() }()

		Eventually(func() error {
			resp, err := http.Get(srv.URL() + "/healthz")
			if err != nil {
				return err
			}
			return resp.Body.Close()
		}).Should(Succeed())

		Expect(srv.Shutdown(context.Background())).To(Succeed())
		Eventually(done).Should(Receive(BeNil()))
	})
})
