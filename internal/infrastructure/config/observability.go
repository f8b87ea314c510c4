package config

// LoggingConfig controls the logger handed to the API session
type LoggingConfig struct {
	// debug logs every request; warn and above only transport failures
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`

	// Line format: json or text
	Format string `mapstructure:"format" validate:"required,oneof=json text"`

	// Where log lines go: stdout, stderr or file. Command output always goes to stdout.
	Output string `mapstructure:"output" validate:"required,oneof=stdout stderr file"`

	// Log file, appended to when Output is "file"
	FilePath string `mapstructure:"file_path" validate:"required_if=Output file"`
}

// MetricsConfig holds metrics collection configuration
type MetricsConfig struct {
	// Enabled controls whether API request metrics are collected
	Enabled bool `mapstructure:"enabled"`

	// Namespace prefixes every metric name
	Namespace string `mapstructure:"namespace" validate:"omitempty,alphanum"`

	// Textfile receives the collected metrics in Prometheus text format after
	// each CLI command, for pickup by a node exporter textfile collector
	Textfile string `mapstructure:"textfile"`
}
