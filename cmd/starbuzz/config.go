package main

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	keyBase     = "base"
	keyWith     = "with"
	keyOutput   = "output"
	keyLogLevel = "log-level"
	keyConfig   = "config"
)

type config struct {
	Base       string
	Condiments []string
	Output     string
	LogLevel   string
}

// loadConfig merges flags, STARBUZZ_* environment variables and the optional config file,
// in that order of precedence.
func loadConfig(flags *pflag.FlagSet) (*config, error) {
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}
	v.SetEnvPrefix("STARBUZZ")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return &config{
		Base:       v.GetString(keyBase),
		Condiments: splitNames(v.GetStringSlice(keyWith)),
		Output:     v.GetString(keyOutput),
		LogLevel:   v.GetString(keyLogLevel),
	}, nil
}

// splitNames accepts "Mocha,Whip" as well as repeated values.
func splitNames(values []string) []string {
	var names []string
	for _, value := range values {
		for _, name := range strings.Split(value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}
