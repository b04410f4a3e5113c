package validator

// Config holds engine settings loadable with pkg/config from the
// environment or a YAML file.
type Config struct {
	// TransformationMode is one of "copy", "mutate" or "none".
	TransformationMode string `env:"VALIDATOR_TRANSFORMATION_MODE" envDefault:"copy" yaml:"transformation_mode"`
	// LogSkipped emits a debug record for every skipped check.
	LogSkipped bool `env:"VALIDATOR_LOG_SKIPPED" envDefault:"false" yaml:"log_skipped"`
}
