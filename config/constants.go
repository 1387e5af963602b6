package config

import "regexp"

const (
	DefaultTagName   = "default"
	SeparatorTagName = "separator"
	KeyEnv           = "env_key"
)

var (
	matchFirstCap = regexp.MustCompile("(.)([A-Z][a-z]+)")
	matchAllCap   = regexp.MustCompile("([a-z0-9])([A-Z])")
)
