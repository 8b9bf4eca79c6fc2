package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-json-experiment/json"

	"github.com/fulldump/candidatedb/bootstrap"
	"github.com/fulldump/candidatedb/candidate"
	"github.com/fulldump/candidatedb/collector"
	"github.com/fulldump/candidatedb/configuration"
	"github.com/fulldump/candidatedb/service"
)

type JSON = map[string]any

var client = &http.Client{
	Transport: &http.Transport{
		MaxConnsPerHost:     1024,
		MaxIdleConnsPerHost: 1024,
		MaxIdleConns:        1024,
	},
}

func Parallel(workers int, f func()) {
	wg := &sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}
	wg.Wait()
}

func TempDir() (string, func()) {
	dir, err := os.MkdirTemp("", "candidatedb_bench_*")
	if err != nil {
		panic("Could not create temp directory: " + err.Error())
	}

	cleanup := func() {
		os.RemoveAll(dir)
	}

	return dir, cleanup
}

func CreateServer(c *Config) (start, stop func()) {
	dir, cleanup := TempDir()
	cleanups = append(cleanups, cleanup)

	conf := configuration.Default()
	c.Base = "http://" + conf.HttpAddr

	s := service.NewService(collector.New(candidate.Read), filepath.Join(dir, "hw.data"))
	l := slog.New(slog.DiscardHandler)

	start, stop, err := bootstrap.Bootstrap(&conf, s, l)
	if err != nil {
		panic("Could not start server: " + err.Error())
	}
	return start, stop
}

func Candidate(n int64) JSON {
	return JSON{
		"name":     fmt.Sprintf("Name%d", n),
		"surname":  "Petrovich",
		"age":      candidate.MinAge + n%(candidate.MaxAge-candidate.MinAge+1),
		"income":   n,
		"fraction": candidate.Fraction(n % int64(candidate.FractionUnknown+1)).String(),
		"voices":   n * 3,
	}
}

func Do(method, url string, body any) error {

	var r io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		r = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, r)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return nil
}

func Report(n int64, took time.Duration) {
	fmt.Println("sent:", n)
	fmt.Println("took:", took)
	fmt.Printf("Throughput: %.2f rows/sec\n", float64(n)/took.Seconds())
}
