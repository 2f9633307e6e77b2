// Package config loads the connection profile used by ewsctl.
//
// A profile is a YAML file:
//
//	endpoint: https://mail.example.com/EWS/Exchange.asmx
//	username: ann@example.com
//	serverVersion: Exchange2013_SP1
//	timeout: 30s
//	log:
//	  level: debug
//	  format: json
//
// Values are resolved in order: defaults, the file, then EWS_* environment
// variables. Config.Sources records which one supplied each key:
//
//	cfg, err := config.Load(path, os.LookupEnv)
//	if err != nil {
//	    return err
//	}
//	if res := config.Validate(cfg); !res.IsValid() {
//	    return res
//	}
//	svc := ews.NewService(cfg.Transport(), cfg.ServiceOptions(cfg.Logger(os.Stderr))...)
package config
