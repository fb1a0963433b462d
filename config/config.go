package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	attendance "tapacademy.com/attendance/attendance/core"
	"tapacademy.com/attendance/core"
	"tapacademy.com/attendance/infrastructure/communication"
	"tapacademy.com/attendance/infrastructure/devops"
	"tapacademy.com/attendance/security"
	"tapacademy.com/attendance/utils"
)

const (
	DefaultFile = "config.yaml"
	EnvFile     = "ATTENDANCE_CONFIG"
	EnvSSM      = "ATTENDANCE_CONFIG_SSM"
)

type Slack struct {
	BotToken       string `yaml:"botToken"`
	InfoChannelID  string `yaml:"infoChannel"`
	ErrorChannelID string `yaml:"errorChannel"`
}

type ReportEmail struct {
	From string   `yaml:"from"`
	To   []string `yaml:"to"`
}

type Config struct {
	Addr           string        `yaml:"addr"`
	DSN            string        `yaml:"dsn"`
	SigningSecret  string        `yaml:"signingSecret"`
	TimeZone       string        `yaml:"timeZone"`
	LateCutoff     string        `yaml:"lateCutoff"`
	HalfDayHours   float64       `yaml:"halfDayHours"`
	LogLevel       string        `yaml:"logLevel"`
	MaxConnections int           `yaml:"maxConnections"`
	CORSOrigins    []string      `yaml:"corsOrigins"`
	TokenTTL       time.Duration `yaml:"tokenTTL"`
	Slack          Slack         `yaml:"slack"`
	ReportBucket   string        `yaml:"reportBucket"`
	ReportPrefix   string        `yaml:"reportPrefix"`
	ReportEmail    ReportEmail   `yaml:"reportEmail"`
}

func Default() Config {
	return Config{
		Addr:           ":8080",
		TimeZone:       "Local",
		LateCutoff:     "10:00:00",
		HalfDayHours:   4,
		LogLevel:       "warn",
		MaxConnections: 10,
		TokenTTL:       security.DefaultTTL,
		ReportPrefix:   "attendance/",
	}
}

// Load reads .env, then the YAML document from SSM or a file, then
// environment overrides. Missing files are not an error.
func Load(ctx context.Context) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	doc, err := readDocument(ctx)
	if err != nil {
		return cfg, err
	}
	if err := Parse(doc, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func readDocument(ctx context.Context) ([]byte, error) {
	if name := os.Getenv(EnvSSM); name != "" {
		client, err := devops.NewSSMClient(ctx)
		if err != nil {
			return nil, err
		}
		return devops.GetParameter(ctx, client, name)
	}

	path := utils.OrDefault(os.Getenv(EnvFile), DefaultFile)
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return b, nil
}

// Parse overlays a YAML document on cfg.
func Parse(doc []byte, cfg *Config) error {
	if len(doc) == 0 {
		return nil
	}
	if err := yaml.Unmarshal(doc, cfg); err != nil {
		return fmt.Errorf("unmarshal yaml: %w", err)
	}
	return nil
}

// ApplyEnv overlays environment variables on cfg.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	str("DSN", &c.DSN)
	str("SIGNING_SECRET", &c.SigningSecret)
	str("TZ_NAME", &c.TimeZone)
	str("LATE_CUTOFF", &c.LateCutoff)
	str("LOG_LEVEL", &c.LogLevel)
	str("SLACK_BOT_TOKEN", &c.Slack.BotToken)
	str("SLACK_INFO_CHANNEL", &c.Slack.InfoChannelID)
	str("SLACK_ERROR_CHANNEL", &c.Slack.ErrorChannelID)
	str("REPORT_BUCKET", &c.ReportBucket)
	str("REPORT_PREFIX", &c.ReportPrefix)
	str("REPORT_EMAIL_FROM", &c.ReportEmail.From)

	if v, ok := lookup("PORT"); ok && v != "" {
		c.Addr = ":" + strings.TrimPrefix(v, ":")
	}
	if v, ok := lookup("CORS_ORIGINS"); ok && v != "" {
		c.CORSOrigins = splitList(v)
	}
	if v, ok := lookup("REPORT_EMAIL_TO"); ok && v != "" {
		c.ReportEmail.To = splitList(v)
	}
	if v, ok := lookup("TOKEN_TTL"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid TOKEN_TTL %q: %w", v, err)
		}
		c.TokenTTL = d
	}
	if v, ok := lookup("MAX_CONNECTIONS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid MAX_CONNECTIONS %q: %w", v, err)
		}
		c.MaxConnections = n
	}
	return nil
}

func splitList(v string) []string {
	return utils.Filter(utils.Map(strings.Split(v, ","), strings.TrimSpace), func(s string) bool { return s != "" })
}

// Validate checks the settings the server cannot start without.
func (c Config) Validate() error {
	var errs []error
	if c.DSN == "" {
		errs = append(errs, errors.New("DSN is required"))
	}
	if _, err := c.Secret(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Rules(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c Config) Secret() ([]byte, error) {
	if c.SigningSecret == "" {
		return nil, errors.New("SIGNING_SECRET is required")
	}
	return security.DecodeSecret(c.SigningSecret)
}

func (c Config) Location() (*time.Location, error) {
	return utils.LoadLocation(c.TimeZone)
}

func (c Config) GormLogLevel() core.LogLevel {
	return core.ParseLogLevel(c.LogLevel)
}

// HalfDayThreshold converts HalfDayHours to a duration.
func (c Config) HalfDayThreshold() time.Duration {
	return time.Duration(c.HalfDayHours * float64(time.Hour))
}

// Rules builds the status derivation rules for the configured zone.
func (c Config) Rules() (attendance.Rules, error) {
	loc, err := c.Location()
	if err != nil {
		return attendance.Rules{}, err
	}
	rules := attendance.DefaultRules(loc)
	if c.LateCutoff != "" {
		cutoff, err := utils.ParseClock(c.LateCutoff)
		if err != nil {
			return attendance.Rules{}, fmt.Errorf("lateCutoff: %w", err)
		}
		rules.LateCutoff = cutoff
	}
	if c.HalfDayHours > 0 {
		rules.HalfDayThreshold = c.HalfDayThreshold()
	}
	return rules, nil
}

// Notifier posts to Slack when a bot token is configured.
func (c Config) Notifier() communication.Notifier {
	if c.Slack.BotToken == "" {
		return communication.Nop{}
	}
	return communication.NewSlack(c.Slack.BotToken, communication.SlackOption{
		InfoChannelID:  c.Slack.InfoChannelID,
		ErrorChannelID: c.Slack.ErrorChannelID,
	})
}
