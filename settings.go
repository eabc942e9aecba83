package main

import (
	"io/ioutil"
	"os"

	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

const settingsFile = "lox.yaml"

type loxSettings struct {
	Prompt     string `yaml:"Prompt"`
	LogLevel   string `yaml:"LogLevel"`
	Color      bool   `yaml:"Color"`
	EchoTokens bool   `yaml:"EchoTokens"`
}

func defaultSettings() loxSettings {
	return loxSettings{
		Prompt:   "> ",
		LogLevel: "WARNING",
		Color:    true,
	}
}

// loadSettings reads path over the defaults. A missing file is only an
// error when the user asked for it explicitly.
func loadSettings(path string, explicit bool) (loxSettings, error) {
	doc := defaultSettings()

	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return doc, nil
	}
	if err != nil {
		return doc, tracerr.Wrap(err)
	}

	err = yaml.Unmarshal(data, &doc)
	if err != nil {
		return doc, tracerr.Wrap(err)
	}
	return doc, nil
}

func writeSettings(path string, doc loxSettings) error {
	fi, err := os.Create(path)
	if err != nil {
		return tracerr.Wrap(err)
	}
	defer fi.Close()

	out, err := yaml.Marshal(doc)
	if err != nil {
		return tracerr.Wrap(err)
	}

	_, err = fi.Write(out)
	return tracerr.Wrap(err)
}
