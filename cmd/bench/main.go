package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/fulldump/goconfig"
)

type Config struct {
	Test    string `usage:"name of the test: ALL | INSERT | REMOVE | PERSIST"`
	Base    string `usage:"base URL, empty to start an embedded server"`
	N       int64  `usage:"number of candidates"`
	Workers int    `usage:"number of workers"`
}

var cleanups []func()

func main() {

	defer func() {
		fmt.Println("Cleaning up...")
		for _, cleanup := range cleanups {
			cleanup()
		}
	}()

	c := Config{
		Test:    "insert",
		Base:    "",
		N:       100_000,
		Workers: 16,
	}
	goconfig.Read(&c)

	switch strings.ToUpper(c.Test) {
	case "ALL":
		TestInsert(c)
		TestRemove(c)
		TestPersist(c)
	case "INSERT":
		TestInsert(c)
	case "REMOVE":
		TestRemove(c)
	case "PERSIST":
		TestPersist(c)
	default:
		log.Fatalf("Unknown test %s", c.Test)
	}

}
