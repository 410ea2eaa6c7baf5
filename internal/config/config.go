package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr string
	}
	Database struct {
		Path string
	}
	AI struct {
		BaseURL string
		APIKey  string
		Model   string
	}
	Storage struct {
		AccessKey     string
		SecretKey     string
		AccountID     string
		Bucket        string
		PublicBaseURL string
	}
}

// Load reads configuration from environment variables and optional config files.
// It fails when any required key is missing so startup can abort early.
func Load() (Config, error) {
	loadDotEnv()

	v := viper.New()
	v.SetEnvPrefix("SOCIAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "0.0.0.0:8080")
	v.SetDefault("database.path", "")
	v.SetDefault("ai.baseurl", "https://openrouter.ai/api/v1")
	v.SetDefault("ai.apikey", "")
	v.SetDefault("ai.model", "google/gemini-pro")
	v.SetDefault("storage.accesskey", "")
	v.SetDefault("storage.secretkey", "")
	v.SetDefault("storage.accountid", "")
	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.publicbaseurl", "")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func validate(cfg Config) error {
	required := []struct {
		key   string
		value string
	}{
		{"database.path", cfg.Database.Path},
		{"ai.apikey", cfg.AI.APIKey},
		{"storage.accesskey", cfg.Storage.AccessKey},
		{"storage.secretkey", cfg.Storage.SecretKey},
		{"storage.accountid", cfg.Storage.AccountID},
		{"storage.bucket", cfg.Storage.Bucket},
		{"storage.publicbaseurl", cfg.Storage.PublicBaseURL},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("required config %s is not set", field.key)
		}
	}
	return nil
}

func loadDotEnv() {
	file, err := os.Open(".env")
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		partsIndex := strings.Index(line, "=")
		if partsIndex <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:partsIndex])
		value := strings.TrimSpace(line[partsIndex+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}

		if _, exists := os.LookupEnv(key); !exists {
			_ = os.Setenv(key, value)
		}
	}
}
