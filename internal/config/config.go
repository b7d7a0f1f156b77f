package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Digest   DigestConfig   `yaml:"digest"`
	Trello   TrelloConfig   `yaml:"trello"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig holds PostgreSQL connection settings for the hosted store.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// DigestConfig holds settings for the daily digest job.
type DigestConfig struct {
	OutDir string `yaml:"out_dir" env:"DIGEST_OUT_DIR" env-default:"drafts"`
}

// TrelloConfig holds credentials for the downstream task-card step.
// It is not validated by the digest job itself; only cmd/taskcard needs it.
type TrelloConfig struct {
	BaseURL  string `yaml:"base_url"  env:"TRELLO_BASE_URL" env-default:"https://api.trello.com/1"`
	Key      string `yaml:"key"       env:"TRELLO_KEY"`
	Token    string `yaml:"token"     env:"TRELLO_TOKEN"`
	ListID   string `yaml:"list_id"   env:"TRELLO_LIST_ID"`
	MemberID string `yaml:"member_id" env:"TRELLO_MEMBER_ID"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
