package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"

	"github.com/nandemo-ya/dms-go/internal/config"
)

var _ = Describe("Config", func() {
	var tempDir string

	BeforeEach(func() {
		config.ResetConfig()
		tempDir = GinkgoT().TempDir()

		// keep a dms.yaml in the working directory out of the way
		wd, err := os.Getwd()
		Expect(err).NotTo(HaveOccurred())
		Expect(os.Chdir(tempDir)).To(Succeed())
		DeferCleanup(os.Chdir, wd)
		GinkgoT().Setenv("HOME", tempDir)
	})

	AfterEach(func() {
		config.ResetConfig()
	})

	Describe("LoadConfig", func() {
		Context("without a config file", func() {
			It("returns the defaults", func() {
				cfg, err := config.LoadConfig("")
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.AWS.Region).To(Equal("us-east-1"))
				Expect(cfg.AWS.Endpoint).To(BeEmpty())
				Expect(cfg.AWS.MaxRetries).To(Equal(3))
				Expect(cfg.AWS.Timeout).To(Equal(30 * time.Second))
				Expect(cfg.Log.Level).To(Equal("info"))
				Expect(cfg.Log.Format).To(Equal("compact"))
				Expect(cfg.Server.Port).To(Equal(8700))
				Expect(cfg.Output).To(Equal(config.OutputTable))
			})
		})

		Context("when the config file does not exist", func() {
			It("returns an error", func() {
				_, err := config.LoadConfig(filepath.Join(tempDir, "missing.yaml"))
				Expect(err).To(MatchError(ContainSubstring("config file does not exist")))
			})
		})

		Context("when a config file exists", func() {
			It("loads values from the file", func() {
				configPath := filepath.Join(tempDir, "custom.yaml")
				Expect(os.WriteFile(configPath, []byte(`
aws:
  region: eu-central-1
  endpoint: http://localhost:8700
  timeout: 5s
log:
  level: debug
  format: json
output: yaml
`), 0o644)).To(Succeed())

				cfg, err := config.LoadConfig(configPath)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.AWS.Region).To(Equal("eu-central-1"))
				Expect(cfg.AWS.Endpoint).To(Equal("http://localhost:8700"))
				Expect(cfg.AWS.Timeout).To(Equal(5 * time.Second))
				Expect(cfg.Log.Level).To(Equal("debug"))
				Expect(cfg.Log.Format).To(Equal("json"))
				Expect(cfg.Output).To(Equal(config.OutputYAML))
				Expect(cfg.Server.Port).To(Equal(8700))
			})

			It("finds dms.yaml in $HOME/.dms", func() {
				dir := filepath.Join(tempDir, ".dms")
				Expect(os.MkdirAll(dir, 0o755)).To(Succeed())
				Expect(os.WriteFile(filepath.Join(dir, "dms.yaml"), []byte("server:\n  port: 9999\n"), 0o644)).To(Succeed())

				cfg, err := config.LoadConfig("")
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Server.Port).To(Equal(9999))
			})

			It("rejects invalid values", func() {
				configPath := filepath.Join(tempDir, "bad.yaml")
				Expect(os.WriteFile(configPath, []byte("output: xml\n"), 0o644)).To(Succeed())

				_, err := config.LoadConfig(configPath)
				Expect(err).To(MatchError(ContainSubstring("invalid output format")))
			})
		})
	})

	Describe("environment variables", func() {
		It("override defaults", func() {
			GinkgoT().Setenv("DMS_AWS_REGION", "ap-southeast-2")
			GinkgoT().Setenv("DMS_LOG_LEVEL", "warn")
			GinkgoT().Setenv("DMS_AWS_MAX_RETRIES", "7")

			cfg, err := config.LoadConfig("")
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.AWS.Region).To(Equal("ap-southeast-2"))
			Expect(cfg.Log.Level).To(Equal("warn"))
			Expect(cfg.AWS.MaxRetries).To(Equal(7))
			Expect(config.GetString("aws.region")).To(Equal("ap-southeast-2"))
		})
	})

	Describe("BindFlag", func() {
		It("prefers a flag that was set", func() {
			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			flags.String("region", "", "")
			Expect(config.BindFlag("aws.region", flags.Lookup("region"))).To(Succeed())
			Expect(flags.Parse([]string{"--region", "sa-east-1"})).To(Succeed())

			cfg, err := config.LoadConfig("")
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.AWS.Region).To(Equal("sa-east-1"))
		})
	})

	Describe("GetConfig", func() {
		It("loads the defaults on first use", func() {
			Expect(config.GetConfig().Server.Port).To(Equal(8700))
		})

		It("returns values set at runtime after a reload", func() {
			config.Set("output", config.OutputJSON)
			cfg, err := config.LoadConfig("")
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Output).To(Equal(config.OutputJSON))
		})
	})

	Describe("Validate", func() {
		DescribeTable("rejects",
			func(mutate func(*config.Config), message string) {
				cfg := config.GetConfig()
				c := *cfg
				mutate(&c)
				Expect(c.Validate()).To(MatchError(ContainSubstring(message)))
			},
			Entry("a port out of range", func(c *config.Config) { c.Server.Port = 70000 }, "invalid server port"),
			Entry("an empty region", func(c *config.Config) { c.AWS.Region = "" }, "region cannot be empty"),
			Entry("an unknown log level", func(c *config.Config) { c.Log.Level = "loud" }, "invalid log level"),
			Entry("an unknown log format", func(c *config.Config) { c.Log.Format = "xml" }, "invalid log format"),
			Entry("a short account id", func(c *config.Config) { c.Server.AccountID = "42" }, "12 digits"),
		)
	})
})
