// Package config loads colorctx.json.
//
// A missing file is not an error: Load returns defaults. Fields present in
// the file override defaults; command line flags override both.
//
//	{
//	  "initial": {"color": "black", "subcolor": "tomato"},
//	  "swatchSize": 50,
//	  "dev": {"host": "localhost", "port": 3000},
//	  "logLevel": "info"
//	}
package config
