package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "6MB"
	defaultLoginTimeout       = 10 * time.Second
	defaultBcryptCost         = 12
	defaultAccessTokenTTL     = time.Hour
	defaultRefreshTokenTTL    = 30 * 24 * time.Hour
	defaultProductBucket      = "products"
	defaultMaxUploadBytes     = 5 << 20
	defaultFeedProvider       = FeedProviderMemory
	defaultRequestsPerSecond  = 20
	defaultBurst              = 40
	defaultRateLimitExpiry    = 3 * time.Minute
)

// Change feed providers.
const (
	FeedProviderMemory = "memory"
	FeedProviderGoogle = "google"
)

var defaultServiceFee = decimal.RequireFromString("2.00")

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	OAuth struct {
		Google *OAuthProviderConfig `json:"google" yaml:"google"`
		Apple  *OAuthProviderConfig `json:"apple" yaml:"apple"`
	} `json:"oauth" yaml:"oauth"`

	// Storage configuration for product images
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Feed configuration for realtime row-insert events
	Feed *FeedConfig `json:"feed" yaml:"feed"`

	// LocalState configuration for the persisted client flags
	LocalState *LocalStateConfig `json:"localState" yaml:"localState"`

	Checkout *CheckoutConfig `json:"checkout" yaml:"checkout"`

	// QRCode configuration for store share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// Cron schedules of the background mirror refreshes
	Cron *CronConfig `json:"cron" yaml:"cron"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost      int           `json:"bcryptCost" yaml:"bcryptCost"`
	LoginTimeout    time.Duration `json:"loginTimeout" yaml:"loginTimeout"`
	AccessTokenTTL  time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`
	RefreshTokenTTL time.Duration `json:"refreshTokenTtl" yaml:"refreshTokenTtl"`
}

// OAuthProviderConfig holds the client registration of one identity provider.
type OAuthProviderConfig struct {
	ClientID     string   `json:"clientId" yaml:"clientId"`
	ClientSecret string   `json:"clientSecret" yaml:"clientSecret"`
	RedirectURL  string   `json:"redirectUrl" yaml:"redirectUrl"`
	Scopes       []string `json:"scopes" yaml:"scopes"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig points at the object bucket.
type StorageConfig struct {
	// BucketURL is a gocloud.dev/blob URL (file://, mem://, s3://)
	BucketURL      string `json:"bucketUrl" yaml:"bucketUrl"`
	PublicBaseURL  string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	ProductBucket  string `json:"productBucket" yaml:"productBucket"`
	MaxUploadBytes int64  `json:"maxUploadBytes" yaml:"maxUploadBytes"`
}

// FeedConfig selects the change feed transport.
type FeedConfig struct {
	// Provider type: "memory" for in-process delivery or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Pub/Sub subscription ID (for google provider)
	SubscriptionID string `json:"subscriptionId" yaml:"subscriptionId"`
}

// LocalStateConfig locates the persisted client flags.
type LocalStateConfig struct {
	// URL is a gocloud.dev/blob URL, usually file://
	URL string `json:"url" yaml:"url"`
}

// CheckoutConfig holds the order pricing knobs.
type CheckoutConfig struct {
	ServiceFee decimal.Decimal `json:"serviceFee" yaml:"serviceFee"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// RateLimitConfig bounds the request rate of each client IP.
type RateLimitConfig struct {
	Enabled           bool          `json:"enabled" yaml:"enabled"`
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int           `json:"burst" yaml:"burst"`
	ExpiresIn         time.Duration `json:"expiresIn" yaml:"expiresIn"`
}

// CronConfig holds robfig/cron specs. An empty spec disables the job.
type CronConfig struct {
	CatalogRefresh       string `json:"catalogRefresh" yaml:"catalogRefresh"`
	ConversationsRefresh string `json:"conversationsRefresh" yaml:"conversationsRefresh"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Example: AUTH_LOGINTIMEOUT -> auth.loginTimeout (not auth.logintimeout)
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
				mapstructure.TextUnmarshallerHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults fills every optional section so consumers never nil-check.
func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	if cfg.Auth.LoginTimeout <= 0 {
		cfg.Auth.LoginTimeout = defaultLoginTimeout
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}
	if cfg.Auth.RefreshTokenTTL <= 0 {
		cfg.Auth.RefreshTokenTTL = defaultRefreshTokenTTL
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{BucketURL: "mem://"}
	}
	if cfg.Storage.ProductBucket == "" {
		cfg.Storage.ProductBucket = defaultProductBucket
	}
	if cfg.Storage.MaxUploadBytes <= 0 {
		cfg.Storage.MaxUploadBytes = defaultMaxUploadBytes
	}

	if cfg.Feed == nil {
		cfg.Feed = &FeedConfig{}
	}
	if cfg.Feed.Provider == "" {
		cfg.Feed.Provider = defaultFeedProvider
	}

	if cfg.LocalState == nil {
		cfg.LocalState = &LocalStateConfig{URL: "mem://"}
	}

	if cfg.Checkout == nil {
		cfg.Checkout = &CheckoutConfig{ServiceFee: defaultServiceFee}
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
	}

	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{}
	}
	if cfg.RateLimit.RequestsPerSecond <= 0 {
		cfg.RateLimit.RequestsPerSecond = defaultRequestsPerSecond
	}
	if cfg.RateLimit.Burst <= 0 {
		cfg.RateLimit.Burst = defaultBurst
	}
	if cfg.RateLimit.ExpiresIn <= 0 {
		cfg.RateLimit.ExpiresIn = defaultRateLimitExpiry
	}

	if cfg.Cron == nil {
		cfg.Cron = &CronConfig{}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
