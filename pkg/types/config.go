package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Key-value store. The file store is the default; set USE_REDIS to point
	// at a redis instance instead.
	DataDir       string `envconfig:"DATA_DIR" default:"./data"`
	UseRedis      bool   `envconfig:"USE_REDIS"`
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`

	// Notification auto-dismiss window.
	NotifyTTLSec uint `envconfig:"NOTIFY_TTL_SEC" default:"3"`

	// Session cookie
	CookieName string `envconfig:"SESSION_COOKIE_NAME" default:"hopebridge_session"`

	// Cookie encryption keys (base64 encoded)
	// openssl rand -base64 32
	// to generate values
	CookieHashKey  string `envconfig:"COOKIE_HASH_KEY"`  // 32 or 64 bytes
	CookieBlockKey string `envconfig:"COOKIE_BLOCK_KEY"` // 16, 24, or 32 bytes
}
