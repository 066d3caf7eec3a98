package config

type Config struct {
	Application Application `yaml:"Application" env:"APP" flag:""`
	Server      Server      `yaml:"Server" env:"SERVER" flag:"server"`
	Resolver    Resolver    `yaml:"Resolver" env:"RESOLVER" flag:"resolver"`
	Cache       Cache       `yaml:"Cache" env:"CACHE" flag:"cache"`
	UI          UI          `yaml:"UI" env:"UI" flag:"ui"`
}

type Application struct {
	LogLevel string `yaml:"LogLevel" env:"LOGLEVEL"`
	ProxyURL string `yaml:"ProxyURL" env:"PROXY_URL" flag:"proxy-url" usage:"Proxy for outgoing requests" cli:"optional"`
}

type Server struct {
	Addr         string   `yaml:"Addr" env:"ADDR" flag:"addr" usage:"Listen address"`
	ReadTimeout  Duration `yaml:"ReadTimeout" env:"READ_TIMEOUT"`
	WriteTimeout Duration `yaml:"WriteTimeout" env:"WRITE_TIMEOUT"`
}

type Resolver struct {
	BaseURL   string   `yaml:"BaseURL" env:"BASE_URL" usage:"Upstream tweet metadata endpoint"`
	UserAgent string   `yaml:"UserAgent" env:"USER_AGENT"`
	Timeout   Duration `yaml:"Timeout" env:"TIMEOUT"`
}

type Cache struct {
	RedisAddr string   `yaml:"RedisAddr" env:"REDIS_ADDR" usage:"Redis address, empty disables the descriptor cache" cli:"optional"`
	TTL       Duration `yaml:"TTL" env:"TTL"`
}

// UI holds the per-deployment constants injected into the submission page.
type UI struct {
	DebounceMS      int  `yaml:"DebounceMS" env:"DEBOUNCE_MS" usage:"Input error-clearing debounce, ms"`
	RevealStaggerMS int  `yaml:"RevealStaggerMS" env:"REVEAL_STAGGER_MS" usage:"Preview reveal animation stagger, ms"`
	BatchedDOM      bool `yaml:"BatchedDOM" env:"BATCHED_DOM" usage:"Insert quality selectors via a single fragment" cli:"optional"`
}
