package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "10MB"
	defaultSASExpiry          = time.Hour
	defaultContractValidity   = 30 * 24 * time.Hour
	defaultSigningTokenTTL    = 30 * 24 * time.Hour
	defaultCreditBatchSize    = 500
	defaultEmailHost          = "smtp.gmail.com"
	defaultEmailPort          = 587
	defaultEmailFrom          = `"FitSAGA" <noreply@fitsaga.com>`
	defaultContractsLocalDir  = "public"
	defaultTemplatePath       = "templates/contract-template.pdf"
)

// DefaultThumbnailContainers lists the blob containers searched by the thumbnail proxy.
var DefaultThumbnailContainers = []string{"sagafitvideos", "sagathumbnails", "saga-videos", "sagavideos"}

// DefaultVideoContainers lists the blob containers searched by the video proxy.
var DefaultVideoContainers = []string{"sagafitvideos", "sagathumbnails", "saga-videos", "sagavideos", "videos", "sagafit"}

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Worker configuration for the Pub/Sub push worker process
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	// Firebase configuration for Firestore, Auth, Storage and Messaging
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Azure configuration for video and thumbnail blobs
	Azure *AzureConfig `json:"azure" yaml:"azure"`

	Contracts *ContractsConfig `json:"contracts" yaml:"contracts"`

	Email *EmailConfig `json:"email" yaml:"email"`

	Cron struct {
		Secret string `json:"secret" yaml:"secret"`
	} `json:"cron" yaml:"cron"`

	Credits struct {
		// Writes per Firestore batch commit during the credit reset
		BatchSize int `json:"batchSize" yaml:"batchSize"`
	} `json:"credits" yaml:"credits"`

	// Postgres enables the relational audit store when set
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// PubSub configuration for member event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for contract signing links
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// WorkerConfig defines the push worker listener
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
}

// FirebaseConfig defines Firebase project access
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	StorageBucket   string `json:"storageBucket" yaml:"storageBucket"`
}

// AzureConfig defines Azure Blob Storage access
type AzureConfig struct {
	AccountName   string `json:"accountName" yaml:"accountName"`
	AccountKey    string `json:"accountKey" yaml:"accountKey"`
	ContainerName string `json:"containerName" yaml:"containerName"`

	// Containers tried in order by the thumbnail proxy
	ThumbnailContainers []string `json:"thumbnailContainers" yaml:"thumbnailContainers"`

	// Containers tried in order by the video proxy
	VideoContainers []string `json:"videoContainers" yaml:"videoContainers"`

	SASExpiry time.Duration `json:"sasExpiry" yaml:"sasExpiry"`
}

// ContractsConfig defines contract rendering, storage and signing links
type ContractsConfig struct {
	TemplatePath string `json:"templatePath" yaml:"templatePath"`

	// Directory used by the local storage fallback
	LocalDir string `json:"localDir" yaml:"localDir"`

	// Public base URL of the portal, used for signing links and local file URLs
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	// HS256 secret for signing-link tokens. Empty disables token checks.
	SigningSecret   string        `json:"signingSecret" yaml:"signingSecret"`
	SigningTokenTTL time.Duration `json:"signingTokenTtl" yaml:"signingTokenTtl"`

	// How long a pending contract stays signable
	Validity time.Duration `json:"validity" yaml:"validity"`
}

// EmailConfig defines the SMTP sender. Leaving Host or User empty disables SMTP.
type EmailConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Secure   bool   `json:"secure" yaml:"secure"`
	User     string `json:"user" yaml:"user"`
	Password string `json:"password" yaml:"password"`
	From     string `json:"from" yaml:"from"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// New reads config.yaml, overlays environment variables (a .env file is loaded first when
// present), then fills defaults.
func New() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyLegacyEnv(cfg)
	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv(os.Getenv)
	}

	return cfg, nil
}

// applyLegacyEnv maps the variable names used by existing deployments onto config keys.
func applyLegacyEnv(cfg *Config) {
	legacy := func(current *string, name string) {
		if *current == "" {
			*current = os.Getenv(name)
		}
	}

	if cfg.Azure == nil && os.Getenv("AZURE_STORAGE_ACCOUNT_NAME") != "" {
		cfg.Azure = &AzureConfig{}
	}
	if cfg.Azure != nil {
		legacy(&cfg.Azure.AccountName, "AZURE_STORAGE_ACCOUNT_NAME")
		legacy(&cfg.Azure.AccountKey, "AZURE_STORAGE_ACCOUNT_KEY")
		legacy(&cfg.Azure.ContainerName, "AZURE_STORAGE_CONTAINER_NAME")
	}

	legacy(&cfg.Cron.Secret, "CRON_SECRET")
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Credits.BatchSize <= 0 || cfg.Credits.BatchSize > defaultCreditBatchSize {
		cfg.Credits.BatchSize = defaultCreditBatchSize
	}

	if cfg.Azure != nil {
		if len(cfg.Azure.ThumbnailContainers) == 0 {
			cfg.Azure.ThumbnailContainers = DefaultThumbnailContainers
		}
		if len(cfg.Azure.VideoContainers) == 0 {
			cfg.Azure.VideoContainers = DefaultVideoContainers
		}
		if cfg.Azure.SASExpiry <= 0 {
			cfg.Azure.SASExpiry = defaultSASExpiry
		}
	}

	if cfg.Contracts == nil {
		cfg.Contracts = &ContractsConfig{}
	}
	if cfg.Contracts.TemplatePath == "" {
		cfg.Contracts.TemplatePath = defaultTemplatePath
	}
	if cfg.Contracts.LocalDir == "" {
		cfg.Contracts.LocalDir = defaultContractsLocalDir
	}
	if cfg.Contracts.Validity <= 0 {
		cfg.Contracts.Validity = defaultContractValidity
	}
	if cfg.Contracts.SigningTokenTTL <= 0 {
		cfg.Contracts.SigningTokenTTL = defaultSigningTokenTTL
	}
	cfg.Contracts.PublicBaseURL = strings.TrimRight(cfg.Contracts.PublicBaseURL, "/")

	if cfg.Email == nil {
		cfg.Email = &EmailConfig{}
	}
	if cfg.Email.Host == "" {
		cfg.Email.Host = defaultEmailHost
	}
	if cfg.Email.Port == 0 {
		cfg.Email.Port = defaultEmailPort
	}
	if cfg.Email.From == "" {
		cfg.Email.From = defaultEmailFrom
	}
}
