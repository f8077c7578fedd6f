package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

const (
	BackendCookie = "cookie"
	BackendSCS    = "scs"
	BackendRedis  = "redis"
)

// Path is the location of the yaml config file.
type Path string

type Config struct {
	Server    Server    `yaml:"server"`
	API       API       `yaml:"api"`
	Session   Session   `yaml:"session"`
	Redis     Redis     `yaml:"redis"`
	RateLimit RateLimit `yaml:"rate_limit"`
	Log       Log       `yaml:"log"`
}

type Server struct {
	Host string `yaml:"host" env:"HBNB_SERVER_HOST"`
	Port int    `yaml:"port" env:"HBNB_SERVER_PORT"`
}

// API points at the remote hbnb api.
type API struct {
	BaseURL string        `yaml:"base_url" env:"HBNB_API_BASE_URL"`
	Timeout time.Duration `yaml:"timeout" env:"HBNB_API_TIMEOUT"`
}

type Session struct {
	Backend    string `yaml:"backend" env:"HBNB_SESSION_BACKEND"`
	CookieName string `yaml:"cookie_name" env:"HBNB_SESSION_COOKIE_NAME"`
	CookiePath string `yaml:"cookie_path" env:"HBNB_SESSION_COOKIE_PATH"`
	Secure     bool   `yaml:"secure" env:"HBNB_SESSION_SECURE"`
	HTTPOnly   bool   `yaml:"http_only" env:"HBNB_SESSION_HTTP_ONLY"`

	// Lifetime only applies to server side sessions, the token cookie
	// has no expiry.
	Lifetime time.Duration `yaml:"lifetime" env:"HBNB_SESSION_LIFETIME"`
}

type Redis struct {
	Addr     string `yaml:"addr" env:"HBNB_REDIS_ADDR"`
	Password string `yaml:"password" env:"HBNB_REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"HBNB_REDIS_DB"`
	Prefix   string `yaml:"prefix" env:"HBNB_REDIS_PREFIX"`
}

// RateLimit applies to login submissions per client ip.
type RateLimit struct {
	LoginRPS   float64 `yaml:"login_rps" env:"HBNB_RATE_LIMIT_LOGIN_RPS"`
	LoginBurst int     `yaml:"login_burst" env:"HBNB_RATE_LIMIT_LOGIN_BURST"`
}

type Log struct {
	Production bool `yaml:"production" env:"HBNB_LOG_PRODUCTION"`
}

// Default returns the configuration used when neither the config file nor
// the environment set a value.
func Default() *Config {
	return &Config{
		Server: Server{
			Host: "localhost",
			Port: 8123,
		},
		API: API{
			BaseURL: "http://localhost:5000",
			Timeout: 10 * time.Second,
		},
		Session: Session{
			Backend:    BackendCookie,
			CookieName: "token",
			CookiePath: "/",
			HTTPOnly:   true,
			Lifetime:   24 * time.Hour,
		},
		Redis: Redis{
			Addr:   "localhost:6379",
			Prefix: "hbnb:session:",
		},
		RateLimit: RateLimit{
			LoginRPS:   1,
			LoginBurst: 5,
		},
	}
}

// New loads the config from defaults, the yaml file at path and the
// environment, in that order.
func New(path Path) (*Config, error) {
	cfg := Default()

	if err := loadFile(string(path), cfg); err != nil {
		return nil, err
	}

	if err := loadEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}

	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		errs = append(errs, fmt.Errorf("api.base_url: %w", err))
	} else if u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("api.base_url %q must be absolute", c.API.BaseURL))
	}

	if c.API.Timeout <= 0 {
		errs = append(errs, errors.New("api.timeout must be positive"))
	}

	switch c.Session.Backend {
	case BackendCookie, BackendSCS, BackendRedis:
	default:
		errs = append(errs, fmt.Errorf("session.backend %q is not one of cookie, scs, redis", c.Session.Backend))
	}

	if c.Session.CookieName == "" {
		errs = append(errs, errors.New("session.cookie_name is required"))
	}

	if c.Session.Backend == BackendRedis && c.Redis.Addr == "" {
		errs = append(errs, errors.New("redis.addr is required for the redis session backend"))
	}

	if c.RateLimit.LoginRPS <= 0 || c.RateLimit.LoginBurst <= 0 {
		errs = append(errs, errors.New("rate_limit values must be positive"))
	}

	return errors.Join(errs...)
}
