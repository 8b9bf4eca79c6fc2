package main

import (
	"fmt"
	"os"

	"github.com/fulldump/goconfig"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/candidatedb/bootstrap"
	"github.com/fulldump/candidatedb/candidate"
	"github.com/fulldump/candidatedb/collector"
	"github.com/fulldump/candidatedb/configuration"
	"github.com/fulldump/candidatedb/console"
	"github.com/fulldump/candidatedb/logger"
	"github.com/fulldump/candidatedb/service"
)

func main() {

	c := configuration.Default()
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowConfig {
		json.MarshalWrite(os.Stdout, c, jsontext.WithIndent("    "))
		fmt.Println()
	}

	l, err := logger.New(os.Stderr, logger.Config{
		Version: bootstrap.VERSION,
		Level:   c.LogLevel,
		Json:    c.LogJson,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err.Error())
		os.Exit(1)
	}

	s := service.NewService(
		collector.New(candidate.Read, collector.WithLogger(l)),
		c.DataFile,
	)

	if c.Serve {
		start, _, err := bootstrap.Bootstrap(&c, s, l)
		if err != nil {
			l.Error("bootstrap", "error", err.Error())
			os.Exit(1)
		}
		start()
		return
	}

	err = console.New(s, os.Stdout, os.Stderr).Run(os.Stdin)
	if err != nil {
		os.Exit(1)
	}
}
