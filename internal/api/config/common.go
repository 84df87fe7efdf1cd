package config

// Config configuração principal
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	DB      DBConfig      `mapstructure:"database"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Mongo   MongoConfig   `mapstructure:"mongo"`
	MinIO   MinIOConfig   `mapstructure:"minio"`
	LLM     LLMConfig     `mapstructure:"llm"`
	Kafka   KafkaConfig   `mapstructure:"kafka"`
	Mail    MailConfig    `mapstructure:"mail"`
	Cron    CronConfig    `mapstructure:"cron"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig configuração do servidor HTTP
type ServerConfig struct {
	Port      int    `mapstructure:"port"`
	JWTSecret string `mapstructure:"jwt_secret"`
}

// DBConfig configuração do banco de dados
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

// MinIOConfig configuração do armazenamento de mídia
type MinIOConfig struct {
	Endpoint   string `mapstructure:"endpoint"`
	AccessKey  string `mapstructure:"access_key"`
	SecretKey  string `mapstructure:"secret_key"`
	MainBucket string `mapstructure:"main_bucket"`
	UseSSL     bool   `mapstructure:"use_ssl"`
}

// LLMConfig configuração do cliente de geração de texto
type LLMConfig struct {
	URL            string `mapstructure:"url"`
	Model          string `mapstructure:"model"`
	ApiKey         string `mapstructure:"api_key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	PromptPath     string `mapstructure:"prompt_path"`
}

type KafkaConfig struct {
	Enabled  bool           `mapstructure:"enabled"`
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
	Notify   NotifyConsumer `mapstructure:"notify_consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type NotifyConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

// MailConfig gateway HTTP de envio de e-mail
type MailConfig struct {
	GatewayURL string `mapstructure:"gateway_url"`
	ApiKey     string `mapstructure:"api_key"`
	From       string `mapstructure:"from"`
}

// CronConfig segredo do gatilho externo e agendador interno
type CronConfig struct {
	Secret           string `mapstructure:"secret"`
	EnableGeneration bool   `mapstructure:"enable_generation"`
}

type LoggingConfig struct {
	LogstashAddress string `mapstructure:"logstash_address"`
	LogstashIndex   string `mapstructure:"logstash_index"`
	LogstashToken   string `mapstructure:"logstash_token"`
}
