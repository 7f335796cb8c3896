package main

import "strings"

func Module() map[string]any {
	return map[string]any{"backend": strings.ToLower("BOLT")}
}
