package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션 식별자. 로그 파일명과 설정 파일명에 사용됩니다.
	AppName string = "catalog-server"

	// DefaultFilename 기본 설정 파일명
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두어 (예: CATALOG_API__LISTEN_PORT=9090)
	EnvPrefix = "CATALOG_"
)

const (
	DefaultEndpoint         = "https://dummyjson.com/products"
	DefaultPageSize         = 20
	DefaultRequestTimeout   = "30s"
	DefaultMaxResponseBytes = 10 * 1024 * 1024
	DefaultDataDir          = "data"
	DefaultStorageKey       = "seller-products"

	DefaultMaxRetries = 3
	DefaultRetryDelay = "2s"

	DefaultListenPort         = 8080
	DefaultAPIRequestTimeout  = "60s"
	DefaultRateLimitPerSecond = 20
	DefaultRateLimitBurst     = 40
)

// AppConfig 애플리케이션 전체 설정입니다.
type AppConfig struct {
	Debug     bool            `json:"debug"`
	Catalog   CatalogConfig   `json:"catalog"`
	HTTPRetry HTTPRetryConfig `json:"http_retry"`
	API       APIConfig       `json:"api"`
}

func (c *AppConfig) validate() error {
	if err := c.Catalog.validate(); err != nil {
		return err
	}
	if err := c.HTTPRetry.validate(); err != nil {
		return err
	}
	return c.API.validate()
}

// CatalogConfig 원격 상품 API와 로컬 저장소 설정입니다.
type CatalogConfig struct {
	Endpoint         string `json:"endpoint" validate:"required,url"`
	PageSize         int    `json:"page_size" validate:"min=1,max=100"`
	RequestTimeout   string `json:"request_timeout" validate:"required,duration"`
	MaxResponseBytes int64  `json:"max_response_bytes" validate:"min=-1"`
	DataDir          string `json:"data_dir" validate:"required"`
	StorageKey       string `json:"storage_key" validate:"required"`

	// RefreshSchedule 비어있지 않으면 해당 Cron 스케줄마다 원격 목록을 처음부터 다시 불러옵니다.
	RefreshSchedule string `json:"refresh_schedule" validate:"omitempty,cron_spec"`
}

func (c *CatalogConfig) validate() error {
	return checkStruct(validate, c, "카탈로그(catalog)")
}

// Timeout 원격 API 요청 타임아웃을 반환합니다. validate()를 통과한 설정에서만 호출해야 합니다.
func (c *CatalogConfig) Timeout() time.Duration {
	return mustParseDuration(c.RequestTimeout)
}

// HTTPRetryConfig 원격 API 요청의 전송 계층 재시도 설정입니다.
type HTTPRetryConfig struct {
	MaxRetries int    `json:"max_retries" validate:"min=0,max=10"`
	RetryDelay string `json:"retry_delay" validate:"required,duration"`
}

func (c *HTTPRetryConfig) validate() error {
	return checkStruct(validate, c, "HTTP 재시도(http_retry)")
}

// Delay 재시도 최소 대기 시간을 반환합니다.
func (c *HTTPRetryConfig) Delay() time.Duration {
	return mustParseDuration(c.RetryDelay)
}

// APIConfig 카탈로그 HTTP API 서버 설정입니다.
type APIConfig struct {
	ListenPort     int             `json:"listen_port" validate:"min=1,max=65535"`
	RequestTimeout string          `json:"request_timeout" validate:"required,duration"`
	CORS           CORSConfig      `json:"cors"`
	RateLimit      RateLimitConfig `json:"rate_limit"`
}

func (c *APIConfig) validate() error {
	if err := checkStruct(validate, c, "API 서버(api)"); err != nil {
		return err
	}
	return c.CORS.validate()
}

// Timeout 요청 처리 타임아웃을 반환합니다.
func (c *APIConfig) Timeout() time.Duration {
	return mustParseDuration(c.RequestTimeout)
}

// CORSConfig 허용할 Origin 목록입니다.
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"min=1,dive,cors_origin"`
}

func (c *CORSConfig) validate() error {
	for _, origin := range c.AllowOrigins {
		if origin == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}
	return nil
}

// RateLimitConfig IP별 요청 속도 제한 설정입니다.
type RateLimitConfig struct {
	RequestsPerSecond int `json:"requests_per_second" validate:"min=1"`
	Burst             int `json:"burst" validate:"min=1"`
}

func defaultConfig() AppConfig {
	return AppConfig{
		Catalog: CatalogConfig{
			Endpoint:         DefaultEndpoint,
			PageSize:         DefaultPageSize,
			RequestTimeout:   DefaultRequestTimeout,
			MaxResponseBytes: DefaultMaxResponseBytes,
			DataDir:          DefaultDataDir,
			StorageKey:       DefaultStorageKey,
		},
		HTTPRetry: HTTPRetryConfig{
			MaxRetries: DefaultMaxRetries,
			RetryDelay: DefaultRetryDelay,
		},
		API: APIConfig{
			ListenPort:     DefaultListenPort,
			RequestTimeout: DefaultAPIRequestTimeout,
			CORS:           CORSConfig{AllowOrigins: []string{"*"}},
			RateLimit: RateLimitConfig{
				RequestsPerSecond: DefaultRateLimitPerSecond,
				Burst:             DefaultRateLimitBurst,
			},
		},
	}
}

// Load 기본 설정 파일(catalog-server.json)을 읽어 설정을 구성합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 설정을 다음 순서로 병합한 뒤 검증합니다.
//
//  1. 기본값
//  2. JSON 설정 파일 (파일이 없으면 건너뜀)
//  3. CATALOG_ 접두어 환경 변수 (중첩 키는 "__"로 구분)
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	if filename != "" {
		if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}

	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	if err := appConfig.validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}

func mustParseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		panic(fmt.Sprintf("검증되지 않은 duration 값입니다: %q", s))
	}
	return d
}
