package config

import (
	"os"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var Path = "preview-core.yaml"

var instance *RepoConfig
var singletonLock = &sync.Once{}

func reloadConfig() (*RepoConfig, error) {
	c := NewDefaultRepoConfig()

	// Write a default config if the one given doesn't exist
	_, err := os.Stat(Path)
	exists := err == nil || !os.IsNotExist(err)
	if !exists {
		logrus.Info("Generating new configuration...")
		configBytes, err := yaml.Marshal(c)
		if err != nil {
			return nil, errors.Wrap(err, "config: marshal defaults")
		}

		if err = os.WriteFile(Path, configBytes, 0644); err != nil {
			return nil, errors.Wrap(err, "config: write defaults")
		}
	}

	buffer, err := os.ReadFile(Path)
	if err != nil {
		return nil, errors.Wrap(err, "config: read "+Path)
	}
	if err = yaml.Unmarshal(buffer, &c); err != nil {
		return nil, errors.Wrap(err, "config: parse "+Path)
	}

	return &c, nil
}

func Get() *RepoConfig {
	if instance == nil {
		singletonLock.Do(func() {
			c, err := reloadConfig()
			if err != nil {
				logrus.Fatal(err)
			}
			instance = c
		})
	}
	return instance
}
