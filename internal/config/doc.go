// Package config provides configuration parsing for htmlkit projects.
//
// The configuration is stored in htmlkit.json at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "name": "my-site",
//	  "output": "dist",
//	  "generator": ".",
//	  "render": {
//	    "indent": "    ",
//	    "lang": "en"
//	  },
//	  "preview": {
//	    "port": 3000,
//	    "host": "localhost",
//	    "openBrowser": false,
//	    "reload": true,
//	    "watch": ["."]
//	  },
//	  "publish": {
//	    "bucket": "my-site-bucket",
//	    "region": "us-east-1",
//	    "prefix": "www"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Output:", cfg.OutputPath())
package config
