package main

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the settings of C.REPL.
type Config struct {
	Capacity uint   `mapstructure:"capacity"` // capacity of the span collection
	Prompt   string `mapstructure:"prompt"`
	Trace    string `mapstructure:"trace"`   // Debug|Info|Error
	History  string `mapstructure:"history"` // readline history file, empty for none
}

// LoadConfig reads settings from file, or, if file is empty, from an optional
// crepl.yaml in the current directory. Environment variables CREPL_<KEY>
// override the file.
func LoadConfig(file string) (*Config, error) {
	v := viper.New()
	v.SetDefault("capacity", 10)
	v.SetDefault("prompt", "crepl> ")
	v.SetDefault("trace", "Info")
	v.SetDefault("history", "")
	v.SetEnvPrefix("crepl")
	v.AutomaticEnv()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("crepl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading configuration: %w", err)
		}
		tracer().Debugf("no configuration file found, using defaults")
	}
	conf := &Config{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	return conf, nil
}
