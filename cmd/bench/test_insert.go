package main

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"
)

func insertAll(c Config) {

	items := c.N

	t0 := time.Now()
	Parallel(c.Workers, func() {
		for {
			n := atomic.AddInt64(&items, -1)
			if n < 0 {
				return
			}
			err := Do("POST", c.Base+"/v1/candidates", Candidate(n))
			if err != nil {
				fmt.Println("ERROR: insert:", err.Error())
				os.Exit(3)
			}
		}
	})
	Report(c.N, time.Since(t0))
}

func TestInsert(c Config) {

	if c.Base == "" {
		start, stop := CreateServer(&c)
		defer stop()
		go start()
	}

	fmt.Println("Inserting...")
	insertAll(c)
}
