package config

import (
	"os"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database struct {
		URI    string `yaml:"uri"`
		DBName string `yaml:"dbname"`
	} `yaml:"database"`
	JWT struct {
		Secret string `yaml:"secret"`
	} `yaml:"jwt"`
	Server struct {
		Port             int    `yaml:"port"`
		BaseURL          string `yaml:"base_url"`
		DefaultMenuURL   string `yaml:"default_menu_url"`
		DefaultBlogURL   string `yaml:"default_blog_url"`
	} `yaml:"server"`
	SMTP struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		User string `yaml:"user"`
		Pass string `yaml:"pass"`
		From string `yaml:"from"`
	} `yaml:"smtp"`
}

func LoadConfig(path string) (*Config, error) {
	config := &Config{}
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	err = yaml.Unmarshal(file, config)
	if err != nil {
		return nil, err
	}
	return config, nil
}
