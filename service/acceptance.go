package service

import (
	"net/http"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
)

type JSON = map[string]interface{}

// Acceptance walks the HTTP surface. apiRequest must point to a server whose
// collection starts empty and whose default data file does not exist yet.
func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	ivanov := JSON{
		"name":     "Ivanov",
		"surname":  "Petrovich",
		"age":      45,
		"income":   60000,
		"fraction": "EDRO",
		"voices":   1200,
	}

	a.Alternative("Insert candidate", func(a *biff.A) {
		resp := apiRequest("POST", "/candidates").
			WithBodyJson(ivanov).Do()
		Save(resp, "Insert candidate", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"index":     0,
			"removed":   false,
			"candidate": ivanov,
		})

		a.Alternative("Retrieve candidate", func(a *biff.A) {
			resp := apiRequest("GET", "/candidates/0").Do()
			Save(resp, "Retrieve candidate", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"index":     0,
				"removed":   false,
				"candidate": ivanov,
			})
		})

		a.Alternative("List candidates", func(a *biff.A) {
			resp := apiRequest("GET", "/candidates").Do()
			Save(resp, "List candidates", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"items": []JSON{
					{"index": 0, "removed": false, "candidate": ivanov},
				},
				"count": 1,
			})
		})

		a.Alternative("Update candidate", func(a *biff.A) {
			older := JSON{
				"name":     "Ivanov",
				"surname":  "Petrovich",
				"age":      46,
				"income":   70000,
				"fraction": "NOVIE LUDI",
				"voices":   1300,
			}
			resp := apiRequest("PUT", "/candidates/0").
				WithBodyJson(older).Do()
			Save(resp, "Update candidate", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"index":     0,
				"removed":   false,
				"candidate": older,
			})
		})

		a.Alternative("Update candidate - invalid age", func(a *biff.A) {
			resp := apiRequest("PUT", "/candidates/0").
				WithBodyJson(JSON{
					"name":     "Ivanov",
					"surname":  "Petrovich",
					"age":      15,
					"fraction": "EDRO",
				}).Do()
			Save(resp, "Update candidate - invalid age", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"error": JSON{
					"message":     "invalid age '15': must be between 21 and 120",
					"description": "Invalid candidate",
				},
			})
		})

		a.Alternative("Remove candidate", func(a *biff.A) {
			resp := apiRequest("POST", "/candidates/0:remove").Do()
			Save(resp, "Remove candidate", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"index":     0,
				"removed":   true,
				"candidate": ivanov,
			})

			a.Alternative("List without removed", func(a *biff.A) {
				resp := apiRequest("GET", "/candidates").Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), JSON{
					"items": []JSON{},
					"count": 0,
				})
			})

			a.Alternative("Remove again", func(a *biff.A) {
				resp := apiRequest("POST", "/candidates/0:remove").Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqual(resp.BodyJsonMap()["removed"], true)
			})
		})

		a.Alternative("Save collection", func(a *biff.A) {
			resp := apiRequest("POST", "/collection:save").Do()
			Save(resp, "Save collection", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJsonMap()["size"], 1)

			a.Alternative("Clean and load", func(a *biff.A) {
				resp := apiRequest("POST", "/collection:clean").Do()
				Save(resp, "Clean collection", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), JSON{"filename": "", "size": 0})

				resp = apiRequest("POST", "/collection:load").
					WithBodyJson(JSON{"filename": ""}).Do()
				Save(resp, "Load collection", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJsonMap()["size"], 1)

				resp = apiRequest("GET", "/candidates/0").Do()
				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJsonMap()["candidate"], ivanov)
			})
		})
	})

	a.Alternative("Retrieve candidate - out of range", func(a *biff.A) {
		resp := apiRequest("GET", "/candidates/5").Do()
		Save(resp, "Retrieve candidate - out of range", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		biff.AssertEqualJson(resp.BodyJsonMap()["error"], JSON{
			"message":     "index out of range: 5 (size 0)",
			"description": "Candidate not found",
		})
	})

	a.Alternative("Retrieve candidate - bad index", func(a *biff.A) {
		resp := apiRequest("GET", "/candidates/first").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Insert candidate - malformed JSON", func(a *biff.A) {
		resp := apiRequest("POST", "/candidates").
			WithBodyString(`{"name": "Ivanov",`).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		biff.AssertEqual(resp.BodyJsonMap()["error"].(JSON)["description"], "Malformed JSON")
	})

	a.Alternative("Insert candidate - name too long", func(a *biff.A) {
		resp := apiRequest("POST", "/candidates").
			WithBodyJson(JSON{
				"name":     "Abcdefghijklmnopqrstuvwxyzabcde",
				"surname":  "Petrovich",
				"age":      45,
				"fraction": "EDRO",
			}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Load collection - missing file", func(a *biff.A) {
		resp := apiRequest("POST", "/collection:load").Do()
		Save(resp, "Load collection - missing file", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
	})
}
