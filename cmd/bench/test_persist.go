package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fulldump/candidatedb/candidate"
	"github.com/fulldump/candidatedb/collector"
)

// TestPersist measures save and load of the binary file without HTTP.
func TestPersist(c Config) {

	dir, cleanup := TempDir()
	cleanups = append(cleanups, cleanup)
	filename := filepath.Join(dir, "hw.data")

	col := collector.New(candidate.Read)
	for n := int64(0); n < c.N; n++ {
		item, err := candidate.New(
			fmt.Sprintf("Name%d", n),
			"Petrovich",
			uint32(candidate.MinAge+n%(candidate.MaxAge-candidate.MinAge+1)),
			uint32(n),
			candidate.Fraction(n%int64(candidate.FractionUnknown+1)),
			uint32(n*3),
		)
		if err != nil {
			fmt.Println("ERROR: new candidate:", err.Error())
			os.Exit(3)
		}
		col.Add(item)
		if n%10 == 0 {
			col.Remove(int(n))
		}
	}

	fmt.Println("Saving...")
	t0 := time.Now()
	err := col.Save(filename)
	if err != nil {
		fmt.Println("ERROR: save:", err.Error())
		os.Exit(4)
	}
	Report(c.N, time.Since(t0))

	if info, err := os.Stat(filename); err == nil {
		fmt.Println("file size:", info.Size())
	}

	fmt.Println("Loading...")
	loaded := collector.New(candidate.Read)
	t0 = time.Now()
	err = loaded.Load(filename)
	if err != nil {
		fmt.Println("ERROR: load:", err.Error())
		os.Exit(5)
	}
	Report(int64(loaded.Size()), time.Since(t0))
	fmt.Println("live:", loaded.Live())
}
