package main

import (
	"github.com/kobibe/tibco-developer-hub/internal/action"
	createyamlaction "github.com/kobibe/tibco-developer-hub/internal/actions/createyaml"
)

func newActionRegistry() (*action.Registry, error) {
	registry := action.NewRegistry()
	if err := registry.Register(createyamlaction.New()); err != nil {
		return nil, err
	}
	return registry, nil
}
