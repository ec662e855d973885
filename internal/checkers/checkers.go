// Package checkers provides quicktest checkers shared by the test suites.
package checkers

import (
	"encoding/json"
	"fmt"

	qt "github.com/frankban/quicktest"
	"github.com/yalp/jsonpath"
)

type jsonPathChecker struct {
	path string
}

// JSONPathEquals returns a checker that evaluates a JSONPath expression
// against a JSON document (string or []byte) and compares the result with
// qt.DeepEquals. Numbers decode as float64.
//
//	c.Assert(data, checkers.JSONPathEquals("$.name"), "sunset")
func JSONPathEquals(path string) qt.Checker {
	return &jsonPathChecker{path: path}
}

// ArgNames implements qt.Checker.
func (c *jsonPathChecker) ArgNames() []string {
	return []string{"got", "want"}
}

// Check implements qt.Checker.
func (c *jsonPathChecker) Check(got any, args []any, note func(key string, value any)) error {
	var raw []byte
	switch v := got.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return qt.BadCheckf("first argument is not a JSON string or []byte (%T)", got)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("cannot parse JSON: %w", err)
	}
	value, err := jsonpath.Read(doc, c.path)
	if err != nil {
		return fmt.Errorf("cannot evaluate %s: %w", c.path, err)
	}
	note("path", c.path)
	return qt.DeepEquals.Check(value, args, note)
}
