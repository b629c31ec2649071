package main

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

type script struct {
	Precision *int     `yaml:"precision"`
	History   *int     `yaml:"history"`
	Commands  []string `yaml:"commands"`
}

var errEmptyScript = errors.New("script has no commands")

func readScript(r io.Reader) (*script, error) {
	s := &script{}
	if err := yaml.NewDecoder(r).Decode(s); err != nil {
		return nil, err
	}
	if len(s.Commands) == 0 {
		return nil, errEmptyScript
	}
	return s, nil
}
