package main

import (
	"fmt"
	"os"
	"strconv"
	"sync/atomic"
	"time"
)

func TestRemove(c Config) {

	if c.Base == "" {
		start, stop := CreateServer(&c)
		defer stop()
		go start()
	}

	err := Do("POST", c.Base+"/v1/collection:clean", nil)
	if err != nil {
		fmt.Println("ERROR: clean:", err.Error())
		os.Exit(3)
	}

	fmt.Println("Preloading...")
	insertAll(c)

	fmt.Println("Removing...")
	items := c.N
	t0 := time.Now()
	Parallel(c.Workers, func() {
		for {
			n := atomic.AddInt64(&items, -1)
			if n < 0 {
				return
			}
			err := Do("POST", c.Base+"/v1/candidates/"+strconv.FormatInt(n, 10)+":remove", nil)
			if err != nil {
				fmt.Println("ERROR: remove:", err.Error())
				os.Exit(4)
			}
		}
	})
	Report(c.N, time.Since(t0))
}
