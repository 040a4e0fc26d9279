// Package config는 애플리케이션 설정을 관리하는 패키지입니다.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 인터페이스는 설정 값에 액세스하기 위한 메서드를 정의합니다.
type Config interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetFloat64(key string) float64
	GetDuration(key string) time.Duration
	GetStringSlice(key string) []string
	GetStringMap(key string) map[string]interface{}
	IsSet(key string) bool
	GetAll() map[string]interface{}
}

// viperConfig는 viper를 사용하여 Config 인터페이스를 구현합니다.
type viperConfig struct {
	v *viper.Viper
}

func (c *viperConfig) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *viperConfig) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *viperConfig) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *viperConfig) GetFloat64(key string) float64 {
	return c.v.GetFloat64(key)
}

// GetDuration은 "30s" 같은 문자열이나 나노초 정수를 time.Duration으로 반환합니다.
func (c *viperConfig) GetDuration(key string) time.Duration {
	return c.v.GetDuration(key)
}

func (c *viperConfig) GetStringSlice(key string) []string {
	return c.v.GetStringSlice(key)
}

func (c *viperConfig) GetStringMap(key string) map[string]interface{} {
	return c.v.GetStringMap(key)
}

func (c *viperConfig) IsSet(key string) bool {
	return c.v.IsSet(key)
}

// GetAll은 전체 설정을 맵으로 반환합니다.
func (c *viperConfig) GetAll() map[string]interface{} {
	return c.v.AllSettings()
}

// 설정 디렉토리 경로
const configDir = "configs"

// Option은 Load 동작을 조정합니다.
type Option func(*loadOptions)

type loadOptions struct {
	defaults map[string]interface{}
	env      string
}

// WithDefaults는 설정 파일과 환경 변수에 값이 없을 때 사용할 기본값을 지정합니다.
func WithDefaults(defaults map[string]interface{}) Option {
	return func(o *loadOptions) {
		for k, v := range defaults {
			o.defaults[k] = v
		}
	}
}

// WithEnv는 APP_ENV 대신 사용할 환경 이름을 지정합니다.
func WithEnv(env string) Option {
	return func(o *loadOptions) {
		o.env = env
	}
}

// Load는 지정된 서비스 이름에 해당하는 설정 파일을 로드합니다.
// 탐색 순서: $CONFIG_PATH, configs/{env}, configs/example
func Load(serviceName string, opts ...Option) (Config, error) {
	o := &loadOptions{defaults: map[string]interface{}{}}
	for _, opt := range opts {
		opt(o)
	}

	env := o.env
	if env == "" {
		env = os.Getenv("APP_ENV")
	}
	if env == "" {
		env = "dev"
	}

	v := viper.New()
	v.SetConfigType("yaml")

	for k, val := range o.defaults {
		v.SetDefault(k, val)
	}

	// PLANNER_DATABASE_HOST 같은 환경 변수가 database.host 를 덮어씁니다.
	v.SetEnvPrefix(strings.ToUpper(serviceName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(serviceName)
	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(filepath.Join(configDir, env))
	v.AddConfigPath(filepath.Join(configDir, "example"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !asConfigNotFound(err, &notFound) {
			return nil, fmt.Errorf("설정 파일 로드 실패: %w", err)
		}
		// 파일이 없어도 기본값과 환경 변수만으로 동작할 수 있습니다.
	}

	return &viperConfig{v: v}, nil
}

func asConfigNotFound(err error, target *viper.ConfigFileNotFoundError) bool {
	nf, ok := err.(viper.ConfigFileNotFoundError)
	if ok {
		*target = nf
	}
	return ok
}
