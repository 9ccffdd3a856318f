package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type AppConfig struct {
	AppPort        int          `yaml:"app_port"`
	MigratesFolder string       `yaml:"migrates_folder"`
	ConfigDB       DBConf       `yaml:"db"`
	ConfigStorage  StorageConf  `yaml:"storage"`
	ConfigQueue    QueueConf    `yaml:"queue"`
	ConfigRedis    RedisConf    `yaml:"redis"`
	ConfigSMTP     SMTPConf     `yaml:"smtp"`
	Pipeline       PipelineConf `yaml:"pipeline"`
}

type DBConf struct {
	Address        string `yaml:"address"`
	Port           string `yaml:"port"`
	User           string `yaml:"user"`
	Pass           string `yaml:"pass"`
	DBName         string `yaml:"db_name"`
	MaxConnections int    `yaml:"max_connections"`
}

// StorageConf points at the S3-compatible bucket holding raw uploads.
// Endpoint is optional and used for non-AWS providers.
type StorageConf struct {
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Bucket          string `yaml:"bucket"`
	UploadURLTTLMin int    `yaml:"upload_url_ttl_min"`
}

type QueueConf struct {
	Region   string `yaml:"region"`
	QueueURL string `yaml:"queue_url"`
}

type RedisConf struct {
	Address string `yaml:"address"`
}

type SMTPConf struct {
	Address string `yaml:"address"`
	From    string `yaml:"from"`
}

type PipelineConf struct {
	ChunkSize int `yaml:"chunk_size"`
	BatchSize int `yaml:"batch_size"`
}

func InitConf(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}
	var conf AppConfig
	if err = yaml.Unmarshal(data, &conf); err != nil {
		return nil, fmt.Errorf("unable to parse config file: %w", err)
	}
	conf.applyDefaults()
	return &conf, nil
}

func (c *AppConfig) applyDefaults() {
	if c.Pipeline.ChunkSize <= 0 {
		c.Pipeline.ChunkSize = 5000
	}
	if c.Pipeline.BatchSize <= 0 {
		c.Pipeline.BatchSize = 1000
	}
	if c.ConfigStorage.UploadURLTTLMin <= 0 {
		c.ConfigStorage.UploadURLTTLMin = 60
	}
	if c.ConfigDB.MaxConnections <= 0 {
		c.ConfigDB.MaxConnections = 10
	}
}
