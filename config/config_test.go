package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/akyratzis/keepalive-demo/config"
)

func TestConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Config Suite")
}

var _ = Describe("Config", func() {
	var tempDir string

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "config-test-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
	})

	Describe("Load", func() {
		Context("with valid config file", func() {
			BeforeEach(func() {
				configContent := `
server:
  address: ":5000"
  environment: "dev"

keep_alive:
  timeout_seconds: 72

logging:
  level: "info"
`
				configPath := filepath.Join(tempDir, "config.yaml")
				err := os.WriteFile(configPath, []byte(configContent), 0644)
				Expect(err).NotTo(HaveOccurred())

				err = os.Chdir(tempDir)
				Expect(err).NotTo(HaveOccurred())
			})

			It("should load configuration successfully", func() {
				cfg, err := config.Load()
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg).NotTo(BeNil())
			})

			It("should parse the server address", func() {
				cfg, _ := config.Load()
				Expect(cfg.Server.Address).To(Equal(":5000"))
			})

			It("should parse the keep-alive timeout", func() {
				cfg, _ := config.Load()
				Expect(cfg.KeepAlive.TimeoutSeconds).To(Equal(72))
				Expect(cfg.IdleTimeout()).To(Equal(72 * time.Second))
			})
		})

		Context("without a config file", func() {
			BeforeEach(func() {
				err := os.Chdir(tempDir)
				Expect(err).NotTo(HaveOccurred())
			})

			It("should use defaults", func() {
				cfg, err := config.Load()
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Server.Address).To(Equal(":5000"))
				Expect(cfg.Server.Environment).To(Equal(config.EnvDev))
				Expect(cfg.KeepAlive.TimeoutSeconds).To(Equal(72))
				Expect(cfg.Logging.Level).To(Equal(config.LogLevelInfo))
			})
		})
	})

	Describe("Validate", func() {
		var cfg *config.Config

		BeforeEach(func() {
			cfg = &config.Config{
				Server:    config.ServerConfig{Address: ":5000", Environment: config.EnvDev},
				KeepAlive: config.KeepAliveConfig{TimeoutSeconds: 72},
				Logging:   config.LoggingConfig{Level: config.LogLevelInfo},
			}
		})

		It("should accept a valid config", func() {
			Expect(cfg.Validate()).To(Succeed())
		})

		It("should reject an unknown environment", func() {
			cfg.Server.Environment = "qa"
			Expect(cfg.Validate()).NotTo(Succeed())
		})

		It("should reject a bad address", func() {
			cfg.Server.Address = "not-an-address"
			Expect(cfg.Validate()).NotTo(Succeed())
		})

		It("should reject an unknown log level", func() {
			cfg.Logging.Level = "trace"
			Expect(cfg.Validate()).NotTo(Succeed())
		})

		It("should reject a non-positive keep-alive timeout", func() {
			cfg.KeepAlive.TimeoutSeconds = 0
			Expect(cfg.Validate()).NotTo(Succeed())
		})
	})
})
