// Package debug provides env-var gated debug logging for the engine.
// Set GEDCOM_DEBUG_<AREA>=1 to enable an area.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse    bool
	Store    bool
	Validate bool
	Query    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("GEDCOM_DEBUG_PARSE")
	d.Store = boolEnv("GEDCOM_DEBUG_STORE")
	d.Validate = boolEnv("GEDCOM_DEBUG_VALIDATE")
	d.Query = boolEnv("GEDCOM_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Store() bool {
	return d.Store
}
func Validate() bool {
	return d.Validate
}
func Query() bool {
	return d.Query
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
