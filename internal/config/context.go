package config

import "context"

type configKey struct{}

func ToContext(parent context.Context, cfg *Config) context.Context {
	return context.WithValue(parent, configKey{}, cfg)
}

// FromContext returns the config stored in ctx, or an empty one.
func FromContext(ctx context.Context) *Config {
	cfg, _ := ctx.Value(configKey{}).(*Config)
	if cfg == nil {
		return &Config{}
	}
	return cfg
}
