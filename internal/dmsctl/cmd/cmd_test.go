package cmd_test

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/json"
	"encoding/pem"
	"io"
	"math/big"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/nandemo-ya/dms-go/internal/api"
	"github.com/nandemo-ya/dms-go/internal/config"
	"github.com/nandemo-ya/dms-go/internal/dmsctl/cmd"
	"github.com/nandemo-ya/dms-go/internal/mockserver"
)

var _ = Describe("dmsctl", func() {
	var (
		server  *httptest.Server
		tempDir string
		stdin   io.Reader
	)

	BeforeEach(func() {
		config.ResetConfig()
		tempDir = GinkgoT().TempDir()
		wd, err := os.Getwd()
		Expect(err).NotTo(HaveOccurred())
		Expect(os.Chdir(tempDir)).To(Succeed())
		DeferCleanup(os.Chdir, wd)
		GinkgoT().Setenv("HOME", tempDir)

		server = httptest.NewServer(mockserver.NewRouter(mockserver.NewService()))
		stdin = strings.NewReader("")
	})

	AfterEach(func() {
		server.Close()
		config.ResetConfig()
	})

	run := func(args ...string) (string, error) {
		config.ResetConfig()
		root := cmd.NewRootCommand()
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetErr(io.Discard)
		root.SetIn(stdin)
		root.SetArgs(append(args, "--endpoint", server.URL))
		err := root.ExecuteContext(context.Background())
		return out.String(), err
	}

	mustRun := func(args ...string) string {
		out, err := run(args...)
		Expect(err).NotTo(HaveOccurred(), out)
		return out
	}

	writeFile := func(name, content string) string {
		path := filepath.Join(tempDir, name)
		Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
		return path
	}

	Describe("version", func() {
		It("prints the build information as JSON", func() {
			var info map[string]string
			Expect(json.Unmarshal([]byte(mustRun("version", "--json")), &info)).To(Succeed())
			Expect(info).To(HaveKeyWithValue("version", "dev"))
			Expect(info).To(HaveKey("goVersion"))
		})

		It("prints a human readable summary", func() {
			Expect(mustRun("version")).To(ContainSubstring("Version:    dev"))
		})
	})

	Describe("call", func() {
		It("lists the operations without arguments", func() {
			out := mustRun("call")
			Expect(out).To(ContainSubstring("CreateReplicationInstance\n"))
			Expect(strings.Count(out, "\n")).To(Equal(len(api.OperationNames())))
		})

		It("rejects unknown operations", func() {
			_, err := run("call", "LaunchRockets")
			Expect(err).To(MatchError(ContainSubstring("unknown operation")))
		})

		It("sends a YAML input document", func() {
			input := writeFile("create.yaml", `
ReplicationInstanceIdentifier: FromYaml
ReplicationInstanceClass: dms.t3.small
AllocatedStorage: 20
Tags:
  - Key: team
    Value: data
`)
			var resp api.CreateReplicationInstanceResponse
			Expect(json.Unmarshal([]byte(mustRun("call", "CreateReplicationInstance", "--input", input, "-o", "json")), &resp)).To(Succeed())
			Expect(*resp.ReplicationInstance.ReplicationInstanceIdentifier).To(Equal("fromyaml"))
			Expect(*resp.ReplicationInstance.AllocatedStorage).To(Equal(int32(20)))
		})

		It("reads JSON from standard input", func() {
			stdin = strings.NewReader(`{"ReplicationInstanceIdentifier":"stdin","ReplicationInstanceClass":"dms.t3.small"}`)
			mustRun("call", "CreateReplicationInstance", "--input", "-")

			out := mustRun("call", "DescribeReplicationInstances", "-o", "yaml")
			Expect(out).To(ContainSubstring("ReplicationInstanceIdentifier: stdin"))
		})

		It("reports validation errors before sending", func() {
			_, err := run("call", "StartReplicationTask")
			Expect(err).To(MatchError(ContainSubstring("ReplicationTaskArn")))
		})

		It("rejects input that is not a mapping", func() {
			input := writeFile("list.yaml", "- a\n- b\n")
			_, err := run("call", "DescribeEvents", "--input", input)
			Expect(err).To(MatchError(ContainSubstring("mapping")))
		})
	})

	Describe("replication-instances", func() {
		It("creates, lists and deletes an instance", func() {
			out := mustRun("replication-instances", "create", "MyInstance", "--class", "dms.t2.micro", "--tag", "env=dev")
			Expect(out).To(ContainSubstring("myinstance"))
			Expect(out).To(ContainSubstring("available"))

			mustRun("ri", "create", "other", "--allocated-storage", "100")

			out = mustRun("replication-instances", "list", "--filter", "replication-instance-class=dms.t2.micro")
			Expect(out).To(ContainSubstring("myinstance"))
			Expect(out).NotTo(ContainSubstring("other"))

			var instances []api.ReplicationInstance
			Expect(json.Unmarshal([]byte(mustRun("ri", "list", "-o", "json")), &instances)).To(Succeed())
			Expect(instances).To(HaveLen(2))

			out = mustRun("replication-instances", "delete", "myinstance")
			Expect(out).To(ContainSubstring("deleting"))

			_, err := run("replication-instances", "delete", "myinstance")
			Expect(err).To(MatchError(ContainSubstring("not found")))
		})

		It("rejects malformed filters", func() {
			_, err := run("replication-instances", "list", "--filter", "no-value")
			Expect(err).To(MatchError(ContainSubstring("invalid filter")))
		})

		It("prints an empty list", func() {
			Expect(mustRun("replication-instances", "list")).To(ContainSubstring("No resources found"))
			Expect(strings.TrimSpace(mustRun("replication-instances", "list", "-o", "json"))).To(Equal("[]"))
		})
	})

	Describe("tasks", func() {
		BeforeEach(func() {
			mustRun("ri", "create", "ri1")
			for _, e := range []string{
				`{"EndpointIdentifier":"src","EndpointType":"source","EngineName":"mysql"}`,
				`{"EndpointIdentifier":"dst","EndpointType":"target","EngineName":"postgres"}`,
			} {
				stdin = strings.NewReader(e)
				mustRun("call", "CreateEndpoint", "--input", "-")
			}

			var instances []api.ReplicationInstance
			Expect(json.Unmarshal([]byte(mustRun("ri", "list", "-o", "json")), &instances)).To(Succeed())
			var endpoints []api.Endpoint
			Expect(json.Unmarshal([]byte(mustRun("endpoints", "list", "-o", "json")), &endpoints)).To(Succeed())
			Expect(endpoints).To(HaveLen(2))

			task, err := json.Marshal(map[string]string{
				"ReplicationTaskIdentifier": "task1",
				"ReplicationInstanceArn":    *instances[0].ReplicationInstanceArn,
				"SourceEndpointArn":         *endpoints[0].EndpointArn,
				"TargetEndpointArn":         *endpoints[1].EndpointArn,
				"MigrationType":             "full-load-and-cdc",
				"TableMappings":             `{"rules":[]}`,
			})
			Expect(err).NotTo(HaveOccurred())
			stdin = bytes.NewReader(task)
			mustRun("call", "CreateReplicationTask", "--input", "-")
		})

		It("starts and stops a task by identifier", func() {
			Expect(mustRun("tasks", "list")).To(ContainSubstring("ready"))

			Expect(mustRun("tasks", "start", "task1")).To(ContainSubstring("running"))
			_, err := run("tasks", "start", "task1")
			Expect(err).To(MatchError(ContainSubstring("InvalidResourceStateFault")))

			Expect(mustRun("tasks", "list", "-o", "yaml")).To(ContainSubstring("Status: running"))
			Expect(mustRun("tasks", "stop", "task1")).To(ContainSubstring("stopped"))
			Expect(mustRun("tasks", "start", "task1", "--type", "resume-processing")).To(ContainSubstring("running"))
		})

		It("lists endpoints filtered by type", func() {
			out := mustRun("endpoints", "list", "--filter", "endpoint-type=target")
			Expect(out).To(ContainSubstring("dst"))
			Expect(out).NotTo(ContainSubstring("mysql"))
		})
	})

	Describe("certificates", func() {
		It("imports, lists and deletes a PEM certificate", func() {
			_, key, err := ed25519.GenerateKey(rand.Reader)
			Expect(err).NotTo(HaveOccurred())
			template := &x509.Certificate{
				SerialNumber: big.NewInt(7),
				Subject:      pkix.Name{CommonName: "dms test"},
				NotBefore:    time.Now().Add(-time.Hour),
				NotAfter:     time.Now().Add(24 * time.Hour),
			}
			der, err := x509.CreateCertificate(rand.Reader, template, template, key.Public(), key)
			Expect(err).NotTo(HaveOccurred())
			pemFile := writeFile("cert.pem", string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})))

			out := mustRun("certificates", "import", "db-cert", "--pem-file", pemFile)
			Expect(out).To(ContainSubstring("db-cert"))
			Expect(out).To(ContainSubstring("Ed25519"))

			Expect(mustRun("certs", "list")).To(ContainSubstring("db-cert"))
			Expect(mustRun("certificates", "delete", "db-cert")).To(ContainSubstring("db-cert"))
			Expect(mustRun("certificates", "list")).To(ContainSubstring("No resources found"))
		})

		It("requires exactly one source", func() {
			_, err := run("certificates", "import", "nothing")
			Expect(err).To(MatchError(ContainSubstring("exactly one of")))
		})

		It("surfaces invalid certificates", func() {
			pemFile := writeFile("bad.pem", "not a certificate")
			_, err := run("certificates", "import", "bad", "--pem-file", pemFile)
			Expect(err).To(MatchError(ContainSubstring("InvalidCertificateFault")))
		})
	})

	Describe("configuration", func() {
		It("takes the output format from the config file", func() {
			path := writeFile("dms.yaml", "output: json\n")
			out := mustRun("replication-instances", "list", "--config", path)
			Expect(strings.TrimSpace(out)).To(Equal("[]"))
		})

		It("lets flags override the config file", func() {
			path := writeFile("dms.yaml", "output: json\n")
			Expect(mustRun("ri", "list", "--config", path, "-o", "table")).To(ContainSubstring("No resources found"))
		})

		It("rejects an unknown output format", func() {
			_, err := run("ri", "list", "-o", "xml")
			Expect(err).To(MatchError(ContainSubstring("invalid output format")))
		})
	})
})

var _ = Describe("local", func() {
	It("serves until the context is cancelled", func() {
		config.ResetConfig()
		DeferCleanup(config.ResetConfig)

		root := cmd.NewRootCommand()
		out := gbytes.NewBuffer()
		root.SetOut(out)
		root.SetErr(io.Discard)
		root.SetArgs([]string{"local", "--port", "0", "--region", "eu-north-1"})

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- root.ExecuteContext(ctx) }()

		Eventually(out).Should(gbytes.Say(`DMS server listening on http://localhost:\d+ \(region eu-north-1\)`))
		cancel()
		Eventually(done, 5*time.Second).Should(Receive(BeNil()))
	})
})
