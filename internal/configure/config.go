package configure

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func checkErr(err error) {
	if err != nil {
		zap.S().Fatalw("config",
			"error", err,
		)
	}
}

func defaultConfig() Config {
	return Config{
		ConfigFile: "config.yaml",
		Limits: Limits{
			DefaultPage: 10,
			MaxPage:     100,
		},
	}
}

func New() *Config {
	initLogging("info")

	config := viper.New()

	// Default config
	b, _ := json.Marshal(defaultConfig())
	tmp := viper.New()

	tmp.SetConfigType("json")
	checkErr(tmp.ReadConfig(bytes.NewReader(b)))
	checkErr(config.MergeConfigMap(tmp.AllSettings()))

	pflag.String("config", "config.yaml", "Config file location")
	pflag.Bool("noheader", false, "Disable the startup header")

	pflag.Parse()
	checkErr(config.BindPFlags(pflag.CommandLine))

	// File
	config.SetConfigFile(config.GetString("config"))
	config.AddConfigPath(".")

	if err := config.ReadInConfig(); err == nil {
		checkErr(config.MergeInConfig())
	}

	bindEnvs(config, Config{})

	// Environment
	config.AutomaticEnv()
	config.SetEnvPrefix("API")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AllowEmptyEnv(true)

	c := &Config{}
	checkErr(config.Unmarshal(&c))

	initLogging(c.Level)

	return c
}

func bindEnvs(config *viper.Viper, iface interface{}, parts ...string) {
	ifv := reflect.ValueOf(iface)
	ift := reflect.TypeOf(iface)

	for i := 0; i < ift.NumField(); i++ {
		v := ifv.Field(i)
		t := ift.Field(i)

		tv, ok := t.Tag.Lookup("mapstructure")
		if !ok {
			continue
		}

		switch v.Kind() {
		case reflect.Struct:
			bindEnvs(config, v.Interface(), append(parts, tv)...)
		default:
			_ = config.BindEnv(strings.Join(append(parts, tv), "."))
		}
	}
}

type Config struct {
	Level      string `mapstructure:"level" json:"level"`
	ConfigFile string `mapstructure:"config" json:"config"`
	NoHeader   bool   `mapstructure:"noheader" json:"noheader"`

	Http struct {
		Addr     string `mapstructure:"addr" json:"addr"`
		Graphiql bool   `mapstructure:"graphiql" json:"graphiql"`
		Ports    struct {
			GQL int `mapstructure:"gql" json:"gql"`
		} `mapstructure:"ports" json:"ports"`
	} `mapstructure:"http" json:"http"`

	Health struct {
		Enabled bool   `mapstructure:"enabled" json:"enabled"`
		Bind    string `mapstructure:"bind" json:"bind"`
	} `mapstructure:"health" json:"health"`

	Monitoring struct {
		Enabled bool   `mapstructure:"enabled" json:"enabled"`
		Bind    string `mapstructure:"bind" json:"bind"`
		Labels  Labels `mapstructure:"labels" json:"labels"`
	} `mapstructure:"monitoring" json:"monitoring"`

	Nats struct {
		Servers []string `mapstructure:"servers" json:"servers"`
		Name    string   `mapstructure:"name" json:"name"`
	} `mapstructure:"nats" json:"nats"`

	Limits Limits `mapstructure:"limits" json:"limits"`

	Credentials struct {
		JWTSecret string `mapstructure:"jwt_secret" json:"jwt_secret"`
	} `mapstructure:"credentials" json:"credentials"`
}

type Limits struct {
	// DefaultPage is the page size used when neither first nor last is
	// given; MaxPage caps the page size for non-admin requesters.
	DefaultPage int `mapstructure:"default_page" json:"default_page"`
	MaxPage     int `mapstructure:"max_page" json:"max_page"`
}

type Labels []struct {
	Key   string `mapstructure:"key" json:"key"`
	Value string `mapstructure:"value" json:"value"`
}

func (l Labels) ToPrometheus() map[string]string {
	mp := map[string]string{}

	for _, v := range l {
		mp[v.Key] = v.Value
	}

	return mp
}
