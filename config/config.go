package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

// JWTConfig holds the signing material and lifetime of access tokens.
type JWTConfig struct {
	SecretKey      string        `mapstructure:"secretKey"`
	AccessTokenTTL time.Duration `mapstructure:"accessTokenTTL"`
	Issuer         string        `mapstructure:"issuer"`
}

// HashingConfig holds the argon2id cost parameters used for new password hashes.
type HashingConfig struct {
	Memory      uint32 `mapstructure:"memory"` // KiB
	Iterations  uint32 `mapstructure:"iterations"`
	Parallelism uint8  `mapstructure:"parallelism"`
	SaltLength  uint32 `mapstructure:"saltLength"`
	KeyLength   uint32 `mapstructure:"keyLength"`
}

type Config struct {
	Mode     string `mapstructure:"mode"`
	Handlers struct {
		Prometheus struct {
			Port    string `mapstructure:"port"`
			Enabled bool   `mapstructure:"enabled"`
		} `mapstructure:"prometheus"`
	} `mapstructure:"handlers"`
	Repositories struct {
		Postgres struct {
			URL      string `mapstructure:"url"`
			Host     string `mapstructure:"host"`
			Password string `mapstructure:"password"`
			Port     string `mapstructure:"port"`
			Username string `mapstructure:"username"`
			DB       string `mapstructure:"db"`
			SSLMODE  string `mapstructure:"SSLMODE"`
		} `mapstructure:"postgres"`
	} `mapstructure:"repositories"`
	Server struct {
		HTTPPort string        `mapstructure:"HTTPPort"`
		Timeout  time.Duration `mapstructure:"HTTPTimeout"`
		BaseURL  string        `mapstructure:"baseURL"`
	} `mapstructure:"server"`
	CORS struct {
		AllowedOrigins []string `mapstructure:"allowedOrigins"`
	} `mapstructure:"cors"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	Hashing HashingConfig `mapstructure:"hashing"`
}

func InitConfig() (Config, error) {
	v := viper.New()

	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %w", err)
		}
	}

	return load(v)
}

// load applies env overrides on top of whatever v has read and decodes the result.
func load(v *viper.Viper) (Config, error) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Names kept compatible with existing deployments.
	bindings := map[string]string{
		"jwt.secretKey":             "JWT_SECRET",
		"server.HTTPPort":           "PORT",
		"server.baseURL":            "BASE_URL",
		"repositories.postgres.url": "DATABASE_URL",
		"mode":                      "APP_ENV",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate rejects configurations the server must not start with.
func (c *Config) Validate() error {
	var errs []error
	if c.JWT.SecretKey == "" {
		errs = append(errs, errors.New("jwt.secretKey (JWT_SECRET) is required"))
	}
	if c.JWT.AccessTokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("jwt.accessTokenTTL must be positive, got %s", c.JWT.AccessTokenTTL))
	}
	if c.Hashing.Memory == 0 || c.Hashing.Iterations == 0 || c.Hashing.Parallelism == 0 {
		errs = append(errs, errors.New("hashing memory, iterations and parallelism must be set"))
	}
	if c.Hashing.SaltLength < 8 || c.Hashing.KeyLength < 16 {
		errs = append(errs, errors.New("hashing saltLength must be >= 8 and keyLength >= 16"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
