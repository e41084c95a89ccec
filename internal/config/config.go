package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Addr       string     `koanf:"addr"`
	Frontend   Frontend   `koanf:"frontend"`
	Square     Square     `koanf:"square"`
	Events     Events     `koanf:"events"`
	Admin      Admin      `koanf:"admin"`
	Newsletter Newsletter `koanf:"newsletter"`
	Contact    Contact    `koanf:"contact"`
}

type Frontend struct {
	Enabled bool   `koanf:"enabled"`
	Dir     string `koanf:"dir"`
}

type Square struct {
	AccessToken string `koanf:"accesstoken"`
	Environment string `koanf:"environment"` // "production" or "sandbox"
	BaseURL     string `koanf:"baseurl"`     // overrides the environment default when set
	CacheTTL    string `koanf:"cachettl"`    // Go duration, e.g. "5m"
}

type Events struct {
	FilePath string `koanf:"filepath"`
}

type Admin struct {
	Username     string `koanf:"username"`
	Password     string `koanf:"password"`
	TokenSecret  string `koanf:"tokensecret"`
	SessionHours int    `koanf:"sessionhours"`
}

type Newsletter struct {
	APIKey       string `koanf:"apikey"`
	ServerPrefix string `koanf:"serverprefix"` // e.g. "us21"
	ListID       string `koanf:"listid"`
	BaseURL      string `koanf:"baseurl"` // overrides the server-prefix default when set
}

type Contact struct {
	Provider    string `koanf:"provider"` // "ses" or "noop"
	FromAddress string `koanf:"fromaddress"`
	FromName    string `koanf:"fromname"`
	ToAddress   string `koanf:"toaddress"`
	TimeoutSecs int    `koanf:"timeoutsecs"`
	SES         SES    `koanf:"ses"`
}

type SES struct {
	Region          string `koanf:"region"`
	AccessKeyID     string `koanf:"accesskeyid"`
	SecretAccessKey string `koanf:"secretaccesskey"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Addr: ":3001",
		Frontend: Frontend{
			Enabled: true,
			Dir:     "site",
		},
		Square: Square{
			Environment: "production",
			CacheTTL:    "5m",
		},
		Events: Events{
			FilePath: "data/events.json",
		},
		Admin: Admin{
			SessionHours: 12,
		},
		Contact: Contact{
			Provider:    "noop",
			TimeoutSecs: 10,
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "THREESTRANDS_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "THREESTRANDS_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
