package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/lifearchive/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g. ":8080")
//	-s string   storage backend: file, postgres or s3
//	-f string   data file of the file backend
//	-d string   hosted table DSN
//	-k string   hosted table key
//	-u string   S3 access key
//	-p string   S3 secret key
//	-b string   S3 bucket
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g. "http://127.0.0.1:9000/")
//	-o string   S3 object key
//	-l string   log file
//	-v string   log level: debug, info, warn or error
//
// Only these flags are taken from os.Args, filtered with flagx.FilterArgs.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-f", "-d", "-k", "-u", "-p", "-b", "-g", "-e", "-o", "-l", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to run server")
	fs.StringVar(&config.Storage, "s", config.Storage, "storage backend (file, postgres, s3)")
	fs.StringVar(&config.DataFile, "f", config.DataFile, "archive data file")
	fs.StringVar(&config.TableURL, "d", config.TableURL, "hosted table DSN")
	fs.StringVar(&config.TableKey, "k", config.TableKey, "hosted table key")
	fs.StringVar(&config.S3AccessKey, "u", config.S3AccessKey, "S3 access key")
	fs.StringVar(&config.S3SecretKey, "p", config.S3SecretKey, "S3 secret key")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.S3ObjectKey, "o", config.S3ObjectKey, "S3 object key")
	fs.StringVar(&config.LogFile, "l", config.LogFile, "log file")
	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
