// Package logger is a thin factory around log/slog plus the attribute
// helpers used across the module, so that every package names its log keys
// the same way.
//
// # Usage
//
//	log := logger.New(logger.WithDevelopment("signup-api"))
//	logger.SetAsDefault(log)
//
//	log.Debug("check failed",
//	    logger.Component("validator"),
//	    logger.Check("email"),
//	    logger.Path("user.email"),
//	)
//
// # Configuration
//
//   - WithDevelopment / WithProduction / WithEnvironment – per-environment defaults.
//   - WithFormat – text or json; unknown formats panic.
//   - WithLevel / WithLevelName – minimum level.
//   - WithAttr – static attributes on every record.
//   - WithOutput – destination writer, stdout by default.
//
// Error and Errors return an empty Attr for nil errors, which slog drops:
//
//	log.Info("config loaded", logger.Error(err))
package logger
