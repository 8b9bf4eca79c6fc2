package service

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fulldump/apitest"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Save renders a request/response pair as a markdown example. Nothing is
// written unless API_EXAMPLES_PATH points to a directory.
func Save(response *apitest.Response, title, description string) {

	examplesPath := os.Getenv("API_EXAMPLES_PATH")
	if examplesPath == "" {
		return
	}

	request := response.Request

	query := request.URL.RawQuery
	if query != "" {
		query = "?" + query
	}

	b := &strings.Builder{}

	fmt.Fprintf(b, "# %s\n", title)
	if description != "" {
		fmt.Fprintf(b, "%s\n", strings.TrimSpace(description))
	}

	b.WriteString("\nCurl example:\n\n```sh\ncurl ")
	if request.Method != "GET" {
		fmt.Fprintf(b, "-X %s ", request.Method)
	}
	fmt.Fprintf(b, "\"https://example.com%s%s\"", request.URL.Path, query)
	requestBody := formatJSON(response.BodyRequestString())
	if requestBody != "" {
		fmt.Fprintf(b, " \\\n-d '%s'", requestBody)
	}
	b.WriteString("\n```\n\n\nHTTP request/response example:\n\n```http\n")

	fmt.Fprintf(b, "%s %s%s %s\n", request.Method, request.URL.Path, query, request.Proto)
	b.WriteString("Host: example.com\n\n")
	if requestBody != "" {
		fmt.Fprintf(b, "%s\n\n", requestBody)
	}

	fmt.Fprintf(b, "%s %s\n", response.Proto, response.Status)
	headerKeys := make([]string, 0, len(response.Header))
	for k := range response.Header {
		headerKeys = append(headerKeys, k)
	}
	slices.Sort(headerKeys)
	for _, k := range headerKeys {
		if k == "Date" {
			continue
		}
		for _, v := range response.Header[k] {
			fmt.Fprintf(b, "%s: %s\n", k, v)
		}
	}
	fmt.Fprintf(b, "\n%s\n```\n", formatJSON(response.BodyString()))

	filename := strings.ReplaceAll(strings.ToLower(title), " ", "_") + ".md"
	p := filepath.Join(examplesPath, filepath.Clean(filename))
	err := os.WriteFile(p, []byte(b.String()), 0666)
	if err != nil {
		fmt.Fprintln(os.Stderr, "saving example:", err)
	}
}

func formatJSON(body string) string {

	var i any
	err := json.Unmarshal([]byte(body), &i)
	if err != nil {
		return strings.TrimSpace(body)
	}

	formatted, err := json.Marshal(i, json.Deterministic(true), jsontext.WithIndent("    "))
	if err != nil {
		return strings.TrimSpace(body)
	}

	return string(formatted)
}
