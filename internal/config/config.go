package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported store drivers.
const (
	DriverRedis = "redis"
	DriverMongo = "mongo"
)

// Config holds the searchspeed configuration.
type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Index     IndexConfig     `yaml:"index"`
	Benchmark BenchmarkConfig `yaml:"benchmark"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
	Env   string `yaml:"env"`   // prod, local, dev, docker (default: the config environment)
}

// loggerEnvs are the environments the logger has an encoder setup for.
var loggerEnvs = []string{"prod", "local", "dev", "docker"}

// DatabaseConfig holds store connection settings.
type DatabaseConfig struct {
	Driver           string   `yaml:"driver"` // redis, mongo (default: redis)
	Addrs            []string `yaml:"addrs"`  // redis
	URI              string   `yaml:"uri"`    // mongo
	Username         string   `yaml:"username"`
	Password         string   `yaml:"password"`
	DB               int      `yaml:"db"` // redis logical database
	Name             string   `yaml:"name"`
	Collection       string   `yaml:"collection"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// IndexConfig holds text index settings.
type IndexConfig struct {
	Name     string `yaml:"name"`
	Create   bool   `yaml:"create"`
	Recreate bool   `yaml:"recreate"` // drop before create, implies create
}

// BenchmarkConfig holds run parameters.
type BenchmarkConfig struct {
	Paragraphs int    `yaml:"paragraphs"`
	Query      string `yaml:"query"`
	Cleanup    bool   `yaml:"cleanup"`
	Seed       uint64 `yaml:"seed"` // 0 = random
	MaxResults int    `yaml:"max_results"`
}

// MetricsConfig holds metrics export settings.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"` // node_exporter textfile path, empty = disabled
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	return LoadFile(findConfigPath(env))
}

// LoadFile reads configuration from an explicit YAML path.
func LoadFile(configPath string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	return Parse(data)
}

// Parse decodes YAML with ${VAR} expansion, then applies defaults and validates.
func Parse(data []byte) (Config, error) {
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Database.Driver == "" {
		c.Database.Driver = DriverRedis
	}
	if c.Database.Name == "" {
		c.Database.Name = "test"
	}
	if c.Database.Collection == "" {
		c.Database.Collection = "speed_test"
	}
	if c.Database.ReadinessTimeout <= 0 {
		c.Database.ReadinessTimeout = 10
	}
	if c.Index.Name == "" {
		c.Index.Name = "large_doc_test"
	}
	if c.Benchmark.Paragraphs <= 0 {
		c.Benchmark.Paragraphs = 9000
	}
	if c.Benchmark.Query == "" {
		c.Benchmark.Query = "magnam"
	}
	if c.Benchmark.MaxResults <= 0 {
		c.Benchmark.MaxResults = 10000
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverRedis:
		if len(c.Database.Addrs) == 0 {
			return fmt.Errorf("database.addrs is required for driver %q", DriverRedis)
		}
	case DriverMongo:
		if c.Database.URI == "" {
			return fmt.Errorf("database.uri is required for driver %q", DriverMongo)
		}
	default:
		return fmt.Errorf("database.driver must be %q or %q, got %q", DriverRedis, DriverMongo, c.Database.Driver)
	}
	if c.Logging.Env != "" && !slices.Contains(loggerEnvs, c.Logging.Env) {
		return fmt.Errorf("logging.env must be one of %v, got %q", loggerEnvs, c.Logging.Env)
	}
	if strings.ContainsAny(c.Database.Collection, "$\x00") {
		return fmt.Errorf("database.collection contains invalid characters: %q", c.Database.Collection)
	}
	return nil
}

// LoggerEnv picks the environment the logger is built for. logging.env wins.
// Otherwise env is used when the file was found by environment name, and
// "local" when it was given by path, since env then says nothing about the file.
func (c *Config) LoggerEnv(env string, explicitPath bool) string {
	if c.Logging.Env != "" {
		return c.Logging.Env
	}
	if explicitPath {
		return "local"
	}
	return env
}

// KeyPrefix returns the Redis key prefix that scopes the collection: "<name>:<collection>:".
func (c *Config) KeyPrefix() string {
	return c.Database.Name + ":" + c.Database.Collection + ":"
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
